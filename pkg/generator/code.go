package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// CodeGenerator はコード生成を担当します。状態は保持しません。
type CodeGenerator struct {
	client ContentGenerator
	cfg    Config
}

// NewCodeGenerator は依存関係を注入して CodeGenerator を初期化します。
func NewCodeGenerator(client ContentGenerator, cfg Config) (*CodeGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}
	return &CodeGenerator{client: client, cfg: cfg}, nil
}

// GenerateCode はプロンプト（と任意の参照画像）からコードを生成します。
// チャットと異なり、空応答は ErrEmptyResponse として必ずエラーになります。
func (g *CodeGenerator) GenerateCode(ctx context.Context, req domain.CodeRequest) (*domain.CodeResponse, error) {
	contents, config, err := buildCodeCall(g.cfg, req)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.GenerateContent(ctx, g.cfg.CodeModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("code generation: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("%w: the model did not return any code", domain.ErrEmptyResponse)
	}
	return &domain.CodeResponse{Code: text}, nil
}
