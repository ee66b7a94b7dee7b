package adapters

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

func TestNewAssetFetcher(t *testing.T) {
	t.Run("nilチェック: 依存関係が足りない場合はエラーを返すのだ", func(t *testing.T) {
		_, err := NewAssetFetcher(nil, &mockReader{}, "key")
		assert.Error(t, err)

		_, err = NewAssetFetcher(&mockHTTPClient{}, nil, "key")
		assert.Error(t, err)
	})

	t.Run("APIキー未設定は ErrMissingAPIKey なのだ", func(t *testing.T) {
		_, err := NewAssetFetcher(&mockHTTPClient{}, &mockReader{}, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMissingAPIKey))
	})
}

func TestAssetFetcher_FetchAsDataURI(t *testing.T) {
	ctx := context.Background()

	t.Run("httpsアセット: APIキーがクエリに付与されて data URI が返るのだ", func(t *testing.T) {
		var requestedURL string
		httpClient := &mockHTTPClient{
			fetchFunc: func(ctx context.Context, u string) ([]byte, error) {
				requestedURL = u
				return []byte("mp4-bytes"), nil
			},
		}

		fetcher, err := NewAssetFetcher(httpClient, &mockReader{}, "secret-key")
		require.NoError(t, err)

		// IP直指定で名前解決に依存しないようにするのだ
		got, err := fetcher.FetchAsDataURI(ctx, "https://8.8.8.8/files/video.mp4?alt=media", "video/mp4")
		require.NoError(t, err)
		assert.Equal(t, domain.EncodeDataURI("video/mp4", []byte("mp4-bytes")), got)

		parsed, err := url.Parse(requestedURL)
		require.NoError(t, err)
		assert.Equal(t, "secret-key", parsed.Query().Get("key"))
		assert.Equal(t, "media", parsed.Query().Get("alt"), "元のクエリは保持されるのだ")
	})

	t.Run("gs://アセットは InputReader 経由で読むのだ", func(t *testing.T) {
		reader := &mockReader{data: []byte("gcs-bytes")}
		fetcher, _ := NewAssetFetcher(&mockHTTPClient{}, reader, "secret-key")

		got, err := fetcher.FetchAsDataURI(ctx, "gs://veo-results/op/video.mp4", "video/mp4")
		require.NoError(t, err)
		assert.True(t, reader.openedGS)
		assert.Equal(t, "gs://veo-results/op/video.mp4", reader.lastURI)
		assert.Equal(t, domain.EncodeDataURI("video/mp4", []byte("gcs-bytes")), got)
	})

	t.Run("ダウンロード失敗は ErrFetch なのだ", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			fetchFunc: func(ctx context.Context, u string) ([]byte, error) {
				return nil, errors.New("status 404")
			},
		}
		fetcher, _ := NewAssetFetcher(httpClient, &mockReader{}, "secret-key")

		_, err := fetcher.FetchAsDataURI(ctx, "https://8.8.8.8/missing.mp4", "video/mp4")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFetch))
	})

	t.Run("空ボディは ErrFetch なのだ", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			fetchFunc: func(ctx context.Context, u string) ([]byte, error) {
				return []byte{}, nil
			},
		}
		fetcher, _ := NewAssetFetcher(httpClient, &mockReader{}, "secret-key")

		_, err := fetcher.FetchAsDataURI(ctx, "https://8.8.8.8/empty.mp4", "video/mp4")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrFetch))
	})

	t.Run("SSRF: 制限ネットワーク宛のURLはブロックされるのだ", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			fetchFunc: func(ctx context.Context, u string) ([]byte, error) {
				t.Fatal("ブロックされたURLへ到達してはいけないのだ")
				return nil, nil
			},
		}
		fetcher, _ := NewAssetFetcher(httpClient, &mockReader{}, "secret-key")

		for _, target := range []string{
			"http://127.0.0.1/admin",
			"http://10.255.255.254/metadata",
			"ftp://8.8.8.8/file",
		} {
			_, err := fetcher.FetchAsDataURI(ctx, target, "video/mp4")
			require.Error(t, err, target)
			assert.True(t, errors.Is(err, domain.ErrFetch), target)
		}
	})
}
