package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// モデルがテキストを返さなかった場合にチャットだけが返す定型文です。
// コード生成には安全な代替が存在しないため、この代替はチャット限定です。
const chatFallbackResponse = "I'm sorry, I couldn't generate a response."

// ChatGenerator はチャット応答の生成を担当します。状態は保持しません。
type ChatGenerator struct {
	client ContentGenerator
	cfg    Config
}

// NewChatGenerator は依存関係を注入して ChatGenerator を初期化します。
func NewChatGenerator(client ContentGenerator, cfg Config) (*ChatGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}
	return &ChatGenerator{client: client, cfg: cfg}, nil
}

// Chat はユーザーのメッセージに対するAI応答を生成します。
// モデルが空応答を返した場合は定型文で代替し、エラーにはしません。
func (g *ChatGenerator) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	contents, config, err := buildChatCall(g.cfg, req.Message)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.GenerateContent(ctx, g.cfg.ChatModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("chat generation: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return &domain.ChatResponse{Response: chatFallbackResponse}, nil
	}
	return &domain.ChatResponse{Response: text}, nil
}
