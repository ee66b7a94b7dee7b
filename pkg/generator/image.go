package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// ImageBatchGenerator は同一プロンプトでの一括画像生成を担当します。
type ImageBatchGenerator struct {
	client ContentGenerator
	cfg    Config
}

// NewImageBatchGenerator は依存関係を注入して ImageBatchGenerator を初期化します。
func NewImageBatchGenerator(client ContentGenerator, cfg Config) (*ImageBatchGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}
	if cfg.ImageFanOut <= 0 {
		return nil, fmt.Errorf("ImageFanOut must be positive, got %d", cfg.ImageFanOut)
	}
	return &ImageBatchGenerator{client: client, cfg: cfg}, nil
}

// GenerateImages は同一ペイロードの独立した生成呼び出しを ImageFanOut 件並行に発行し、
// すべての完了を待ってから結果を確定します（先行失敗による打ち切りはしません）。
// 1件でも画像を得られなかった場合は ErrPartialGeneration となり、部分的な成功は返しません。
func (g *ImageBatchGenerator) GenerateImages(ctx context.Context, req domain.ImageBatchRequest) (*domain.ImageBatchResponse, error) {
	contents, config, err := buildImageCall(req)
	if err != nil {
		return nil, err
	}

	fanOut := g.cfg.ImageFanOut
	slog.InfoContext(ctx, "一括画像生成を開始します", "model", g.cfg.ImageModel, "fan_out", fanOut)

	// 各ブランチは自分のスロットだけに書き込むため、ロックは不要です。
	urls := make([]string, fanOut)
	errs := make([]error, fanOut)

	var wg sync.WaitGroup
	for i := 0; i < fanOut; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()

			resp, err := g.client.GenerateContent(ctx, g.cfg.ImageModel, contents, config)
			if err != nil {
				errs[slot] = err
				return
			}
			blob, ok := firstInlineMedia(resp)
			if !ok {
				errs[slot] = fmt.Errorf("%w: no image data in response", domain.ErrEmptyResponse)
				return
			}
			urls[slot] = domain.EncodeDataURI(blob.MIMEType, blob.Data)
		}(i)
	}
	wg.Wait()

	failed := 0
	var firstErr error
	for _, err := range errs {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if failed > 0 {
		slog.WarnContext(ctx, "一括画像生成の一部が失敗しました", "failed", failed, "fan_out", fanOut)
		return nil, fmt.Errorf("%w: %d of %d generations failed: %v", domain.ErrPartialGeneration, failed, fanOut, firstErr)
	}

	return &domain.ImageBatchResponse{ImageURLs: urls}, nil
}
