package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-media-kit/pkg/domain"
	"github.com/shouni/gemini-media-kit/pkg/wavutil"
)

// VoiceChatGenerator はチャット応答と音声合成を連結した音声チャットを担当します。
type VoiceChatGenerator struct {
	chat   *ChatGenerator
	client ContentGenerator
	cfg    Config
}

// NewVoiceChatGenerator は依存関係を注入して VoiceChatGenerator を初期化します。
func NewVoiceChatGenerator(chat *ChatGenerator, client ContentGenerator, cfg Config) (*VoiceChatGenerator, error) {
	if chat == nil {
		return nil, fmt.Errorf("chat (ChatGenerator) is required")
	}
	if client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}
	return &VoiceChatGenerator{chat: chat, client: client, cfg: cfg}, nil
}

// VoiceChat はテキスト応答を生成し、その応答を音声合成してWAVとして返します。
// 上流のチャット結果が得られなければ、音声合成を試みる前に打ち切ります。
func (g *VoiceChatGenerator) VoiceChat(ctx context.Context, req domain.VoiceChatRequest) (*domain.VoiceChatResponse, error) {
	chatResp, err := g.chat.Chat(ctx, domain.ChatRequest{Message: req.Message})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get a text response from the chat model: %v", domain.ErrChainedGeneration, err)
	}
	if chatResp == nil || chatResp.Response == "" {
		return nil, fmt.Errorf("%w: failed to get a text response from the chat model", domain.ErrChainedGeneration)
	}
	textResponse := chatResp.Response

	speechContents, speechConfig, err := buildSpeechCall(g.cfg, textResponse)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.GenerateContent(ctx, g.cfg.TTSModel, speechContents, speechConfig)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}

	blob, ok := firstInlineMedia(resp)
	if !ok {
		return nil, fmt.Errorf("%w: no audio media returned from TTS model", domain.ErrChainedGeneration)
	}

	encoded, err := wavutil.EncodeBase64(blob.Data)
	if err != nil {
		return nil, err
	}

	return &domain.VoiceChatResponse{
		TextResponse: textResponse,
		AudioURL:     "data:audio/wav;base64," + encoded,
	}, nil
}
