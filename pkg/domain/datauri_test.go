package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI(t *testing.T) {
	t.Run("バイト列を正しい封筒形式に包むのだ", func(t *testing.T) {
		uri := EncodeDataURI("image/png", []byte("fake-png"))
		assert.Equal(t, "data:image/png;base64,ZmFrZS1wbmc=", uri)
	})
}

func TestDecodeDataURI(t *testing.T) {
	t.Run("正常系: エンコードしたものがそのまま復元できるのだ", func(t *testing.T) {
		original := []byte{0x00, 0x01, 0xFF, 0xFE}
		uri := EncodeDataURI("video/mp4", original)

		media, err := DecodeDataURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "video/mp4", media.MIMEType)
		assert.Equal(t, original, media.Data)
	})

	tests := []struct {
		name string
		uri  string
	}{
		{"data: プレフィックスがない", "image/png;base64,aGVsbG8="},
		{"カンマ区切りがない", "data:image/png;base64"},
		{"base64指定がない", "data:image/png,aGVsbG8="},
		{"MIMEタイプが空", "data:;base64,aGVsbG8="},
		{"base64として不正", "data:image/png;base64,%%%%"},
	}

	for _, tt := range tests {
		t.Run("異常系: "+tt.name, func(t *testing.T) {
			_, err := DecodeDataURI(tt.uri)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "ErrValidation であるべきなのだ: %v", err)
		})
	}
}
