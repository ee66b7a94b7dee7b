package adapters

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// GeminiClient は genai SDK を包んで generator 側のインターフェースを実装します。
// プロセス全体で共有される唯一のモデルクライアントですが、グローバルには置かず
// 各ジェネレーターへ明示的に注入します。
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient はAPIキーを使って Gemini API バックエンドのクライアントを生成します。
// キー未設定は構成エラー（ErrMissingAPIKey）です。
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// GenerateContent はテキスト・画像・音声の生成呼び出しをそのまま委譲します。
func (c *GeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// GenerateVideos は動画生成の長時間実行オペレーションを開始します。
func (c *GeminiClient) GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return c.client.Models.GenerateVideos(ctx, model, prompt, image, config)
}

// CheckVideosOperation はオペレーションの最新状態を取得します。
func (c *GeminiClient) CheckVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return c.client.Operations.GetVideosOperation(ctx, operation, nil)
}
