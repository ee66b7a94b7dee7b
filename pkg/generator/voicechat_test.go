package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

func TestVoiceChatGenerator_VoiceChat(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()

	t.Run("成功: チャット応答がそのまま音声合成の入力になるのだ", func(t *testing.T) {
		client := &mockContentGenerator{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				if model == cfg.ChatModel {
					return newTextResponse("hi there"), nil
				}
				// TTS呼び出し: 入力はチャット応答のはず
				assert.Equal(t, cfg.TTSModel, model)
				assert.Equal(t, "hi there", contents[0].Parts[0].Text)
				return newMediaResponse("audio/L16;rate=24000", []byte{0x0A, 0x0B}), nil
			},
		}

		chat, err := NewChatGenerator(client, cfg)
		require.NoError(t, err)
		gen, err := NewVoiceChatGenerator(chat, client, cfg)
		require.NoError(t, err)

		resp, err := gen.VoiceChat(ctx, domain.VoiceChatRequest{Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "hi there", resp.TextResponse)
		assert.True(t, strings.HasPrefix(resp.AudioURL, "data:audio/wav;base64,"))
	})

	t.Run("上流のチャットが失敗したら音声合成せずに ErrChainedGeneration なのだ", func(t *testing.T) {
		ttsCalled := false
		client := &mockContentGenerator{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				if model == cfg.ChatModel {
					return nil, errors.New("chat model down")
				}
				ttsCalled = true
				return nil, nil
			},
		}

		chat, _ := NewChatGenerator(client, cfg)
		gen, _ := NewVoiceChatGenerator(chat, client, cfg)

		_, err := gen.VoiceChat(ctx, domain.VoiceChatRequest{Message: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrChainedGeneration))
		assert.False(t, ttsCalled, "音声合成まで進んではいけないのだ")
	})

	t.Run("音声合成がメディアを返さなければ ErrChainedGeneration なのだ", func(t *testing.T) {
		client := &mockContentGenerator{
			generateFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				if model == cfg.ChatModel {
					return newTextResponse("hi there"), nil
				}
				return newEmptyResponse(), nil
			},
		}

		chat, _ := NewChatGenerator(client, cfg)
		gen, _ := NewVoiceChatGenerator(chat, client, cfg)

		_, err := gen.VoiceChat(ctx, domain.VoiceChatRequest{Message: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrChainedGeneration))
		assert.Contains(t, err.Error(), "no audio media")
	})
}
