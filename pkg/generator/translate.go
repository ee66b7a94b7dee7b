package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// 翻訳処理が未実装のため、検証を通過した要求にはこの固定アセットを返します。
const translatePlaceholderVideoURL = "https://firebasestorage.googleapis.com/v0/b/ai-prototyper-2-prod.appspot.com/o/public%2Fvideos%2Fplaceholder.mp4?alt=media&token=e3933c16-9e6b-42e3-93d4-c3e8e7a7e127"

// VideoTranslator は動画翻訳の窓口です。
//
// 現状はシミュレーション実装で、入力の検証のみを行い変換は行いません。
// 実運用にはソース取得・文字起こし・翻訳・声質クローン合成・リップシンク・
// 再多重化という独立したサブシステム群が必要になります。
type VideoTranslator struct{}

// NewVideoTranslator は VideoTranslator を初期化します。
func NewVideoTranslator() *VideoTranslator {
	return &VideoTranslator{}
}

// TranslateVideo は入力を検証し、プレースホルダーの翻訳済み動画URLを返します。
func (g *VideoTranslator) TranslateVideo(ctx context.Context, req domain.TranslateVideoRequest) (*domain.TranslateVideoResponse, error) {
	if err := validateTranslateRequest(req); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "動画翻訳はシミュレーション応答を返します",
		"source_type", string(req.SourceType),
		"target_language", req.TargetLanguage,
		"mode", string(req.Mode))

	return &domain.TranslateVideoResponse{TranslatedVideoURL: translatePlaceholderVideoURL}, nil
}

func validateTranslateRequest(req domain.TranslateVideoRequest) error {
	switch req.SourceType {
	case domain.TranslateSourceUpload, domain.TranslateSourceLink:
	default:
		return fmt.Errorf("%w: unknown source type %q", domain.ErrValidation, req.SourceType)
	}

	if strings.TrimSpace(req.SourceURL) == "" {
		return fmt.Errorf("%w: source URL is empty", domain.ErrValidation)
	}
	// アップロードの場合は data URI の封筒だけを検証します。
	if req.SourceType == domain.TranslateSourceUpload {
		if _, err := domain.DecodeDataURI(req.SourceURL); err != nil {
			return fmt.Errorf("uploaded video: %w", err)
		}
	}

	if strings.TrimSpace(req.TargetLanguage) == "" {
		return fmt.Errorf("%w: target language is empty", domain.ErrValidation)
	}

	switch req.Mode {
	case domain.TranslateModeLipSync, domain.TranslateModeAudioOnly:
	default:
		return fmt.Errorf("%w: unknown translation mode %q", domain.ErrValidation, req.Mode)
	}

	return nil
}
