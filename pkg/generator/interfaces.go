package generator

import (
	"context"

	"google.golang.org/genai"
)

// ContentGenerator はテキスト・画像・音声のコンテンツ生成を担当します。
// 本物は pkg/adapters の Gemini クライアントで、テストではモックに差し替えます。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// VideoOperator は動画生成の長時間実行オペレーションを担当します。
type VideoOperator interface {
	// GenerateVideos は動画生成ジョブを開始し、オペレーションハンドルを返します。
	GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	// CheckVideosOperation はオペレーションの最新状態を取得して返します。
	CheckVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

// AssetFetcher は生成済みのリモートアセットを取得し、data URI として返します。
type AssetFetcher interface {
	FetchAsDataURI(ctx context.Context, rawURL string, mimeType string) (string, error)
}
