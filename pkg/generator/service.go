package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// Service は全生成種別をひとまとめにした利用窓口です。
// ホスト側（HTTPハンドラやUIイベント）はこの窓口のメソッドだけを呼びます。
type Service struct {
	chat       *ChatGenerator
	code       *CodeGenerator
	images     *ImageBatchGenerator
	video      *VideoGenerator
	voiceChat  *VoiceChatGenerator
	translator *VideoTranslator
}

// NewService は依存関係を注入して全ジェネレーターを組み立てます。
func NewService(client ContentGenerator, video VideoOperator, fetcher AssetFetcher, cfg Config) (*Service, error) {
	chat, err := NewChatGenerator(client, cfg)
	if err != nil {
		return nil, fmt.Errorf("chat generator: %w", err)
	}
	code, err := NewCodeGenerator(client, cfg)
	if err != nil {
		return nil, fmt.Errorf("code generator: %w", err)
	}
	images, err := NewImageBatchGenerator(client, cfg)
	if err != nil {
		return nil, fmt.Errorf("image batch generator: %w", err)
	}
	videoGen, err := NewVideoGenerator(client, video, fetcher, cfg)
	if err != nil {
		return nil, fmt.Errorf("video generator: %w", err)
	}
	voiceChat, err := NewVoiceChatGenerator(chat, client, cfg)
	if err != nil {
		return nil, fmt.Errorf("voice chat generator: %w", err)
	}

	return &Service{
		chat:       chat,
		code:       code,
		images:     images,
		video:      videoGen,
		voiceChat:  voiceChat,
		translator: NewVideoTranslator(),
	}, nil
}

// Chat は ChatGenerator.Chat を呼び出します。
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	return s.chat.Chat(ctx, req)
}

// GenerateCode は CodeGenerator.GenerateCode を呼び出します。
func (s *Service) GenerateCode(ctx context.Context, req domain.CodeRequest) (*domain.CodeResponse, error) {
	return s.code.GenerateCode(ctx, req)
}

// GenerateImages は ImageBatchGenerator.GenerateImages を呼び出します。
func (s *Service) GenerateImages(ctx context.Context, req domain.ImageBatchRequest) (*domain.ImageBatchResponse, error) {
	return s.images.GenerateImages(ctx, req)
}

// GenerateVideo は VideoGenerator.GenerateVideo を呼び出します。
func (s *Service) GenerateVideo(ctx context.Context, req domain.VideoRequest) (*domain.VideoResponse, error) {
	return s.video.GenerateVideo(ctx, req)
}

// VoiceChat は VoiceChatGenerator.VoiceChat を呼び出します。
func (s *Service) VoiceChat(ctx context.Context, req domain.VoiceChatRequest) (*domain.VoiceChatResponse, error) {
	return s.voiceChat.VoiceChat(ctx, req)
}

// TranslateVideo は VideoTranslator.TranslateVideo を呼び出します。
func (s *Service) TranslateVideo(ctx context.Context, req domain.TranslateVideoRequest) (*domain.TranslateVideoResponse, error) {
	return s.translator.TranslateVideo(ctx, req)
}
