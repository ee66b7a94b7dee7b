package adapters

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// AssetFetcher はモデル側ストレージの生成済みアセットを取得し、data URI に変換します。
//
// アセットは短尺の生成メディアである前提で、全体をメモリに読み切ってから返します。
// https のアセットURLにはAPIキーをクエリとして付与し、gs:// は InputReader 経由で
// 読み出します（Vertex バックエンドの Veo は gs:// 参照を返すため）。
type AssetFetcher struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	apiKey     string
}

// NewAssetFetcher は依存関係を注入して AssetFetcher を初期化します。
func NewAssetFetcher(httpClient httpkit.ClientInterface, reader remoteio.InputReader, apiKey string) (*AssetFetcher, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	return &AssetFetcher{httpClient: httpClient, reader: reader, apiKey: apiKey}, nil
}

// FetchAsDataURI はアセットを取得して 'data:<mime>;base64,<payload>' にして返します。
func (f *AssetFetcher) FetchAsDataURI(ctx context.Context, rawURL string, mimeType string) (string, error) {
	data, err := f.fetchBytes(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: asset response had no body: %s", domain.ErrFetch, rawURL)
	}
	return domain.EncodeDataURI(mimeType, data), nil
}

func (f *AssetFetcher) fetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := f.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrFetch, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrFetch, err)
		}
		return data, nil
	}

	authorized, err := f.authorizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	data, err := f.httpClient.FetchBytes(ctx, authorized)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to download asset: %v", domain.ErrFetch, err)
	}
	return data, nil
}

// authorizeURL はアセットURLを検証し、APIキーをクエリパラメータとして付与します。
func (f *AssetFetcher) authorizeURL(rawURL string) (string, error) {
	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return "", fmt.Errorf("%w: unsafe asset URL: %v", domain.ErrFetch, err)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	query := parsed.Query()
	query.Set("key", f.apiKey)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// isSafeURL は SSRF 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("名前解決失敗: %w", err)
		}
		ips = resolvedIPs
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
