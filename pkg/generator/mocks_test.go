package generator

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// --- Mocks ---

type mockContentGenerator struct {
	mu           sync.Mutex
	calls        int
	generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockContentGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.generateFunc(ctx, model, contents, config)
}

func (m *mockContentGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockVideoOperator struct {
	generateFunc func(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	checkFunc    func(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

func (m *mockVideoOperator) GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return m.generateFunc(ctx, model, prompt, image, config)
}

func (m *mockVideoOperator) CheckVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, operation)
	}
	return operation, nil
}

type mockAssetFetcher struct {
	fetchFunc func(ctx context.Context, rawURL string, mimeType string) (string, error)
}

func (m *mockAssetFetcher) FetchAsDataURI(ctx context.Context, rawURL string, mimeType string) (string, error) {
	return m.fetchFunc(ctx, rawURL, mimeType)
}

// --- レスポンス組み立てヘルパー ---

func newTextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func newMediaResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			},
		}},
	}
}

func newEmptyResponse() *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}
}
