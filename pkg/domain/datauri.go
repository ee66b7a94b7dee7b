package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// すべての境界でインラインメディアの交換形式として使う 'data:<mime>;base64,<payload>' を扱います。
// ペイロードの中身（画像として正しいか等）は検証しません。封筒だけを検証します。

const dataURIPrefix = "data:"

// InlineMedia は data URI からデコードされたインラインメディアです。
type InlineMedia struct {
	MIMEType string
	Data     []byte
}

// EncodeDataURI はバイト列を data URI 形式の文字列に包みます。
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI は data URI を検証しつつデコードします。
// 形式不正・base64不正の場合は ErrValidation をラップして返します。
func DecodeDataURI(uri string) (*InlineMedia, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, fmt.Errorf("%w: data URI must start with %q", ErrValidation, dataURIPrefix)
	}

	meta, payload, found := strings.Cut(uri[len(dataURIPrefix):], ",")
	if !found {
		return nil, fmt.Errorf("%w: data URI has no payload separator", ErrValidation)
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("%w: only base64-encoded data URIs are supported", ErrValidation)
	}
	if mimeType == "" {
		return nil, fmt.Errorf("%w: data URI is missing a MIME type", ErrValidation)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: data URI payload is not valid base64: %v", ErrValidation, err)
	}

	return &InlineMedia{MIMEType: mimeType, Data: data}, nil
}
