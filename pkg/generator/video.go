package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/genai"

	"github.com/shouni/gemini-media-kit/pkg/domain"
	"github.com/shouni/gemini-media-kit/pkg/wavutil"
)

// VideoGenerator は動画と音声のペア生成を担当します。
//
// 動画はジョブ開始 → ポーリング → アセット取得という長時間実行の経路を辿り、
// 音声は同期的に返ったPCMをWAVに変換します。両方が揃わなければ全体失敗です。
type VideoGenerator struct {
	client  ContentGenerator
	video   VideoOperator
	fetcher AssetFetcher
	cfg     Config
}

// NewVideoGenerator は依存関係を注入して VideoGenerator を初期化します。
func NewVideoGenerator(client ContentGenerator, video VideoOperator, fetcher AssetFetcher, cfg Config) (*VideoGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (ContentGenerator) is required")
	}
	if video == nil {
		return nil, fmt.Errorf("video (VideoOperator) is required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher (AssetFetcher) is required")
	}
	return &VideoGenerator{client: client, video: video, fetcher: fetcher, cfg: cfg}, nil
}

// GenerateVideo はひとつのプロンプトから動画（mp4）と読み上げ音声（wav）を生成します。
func (g *VideoGenerator) GenerateVideo(ctx context.Context, req domain.VideoRequest) (*domain.VideoResponse, error) {
	videoPrompt, refImage, videoConfig, err := buildVideoCall(g.cfg, req)
	if err != nil {
		return nil, err
	}
	speechContents, speechConfig, err := buildSpeechCall(g.cfg, req.Prompt)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "動画・音声の生成を開始します",
		"video_model", g.cfg.VideoModel, "tts_model", g.cfg.TTSModel)

	// 動画ジョブの開始と音声合成は依存関係がないため並行に発行します。
	var (
		wg        sync.WaitGroup
		operation *genai.GenerateVideosOperation
		videoErr  error
		audioResp *genai.GenerateContentResponse
		audioErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		operation, videoErr = g.video.GenerateVideos(ctx, g.cfg.VideoModel, videoPrompt, refImage, videoConfig)
	}()
	go func() {
		defer wg.Done()
		audioResp, audioErr = g.client.GenerateContent(ctx, g.cfg.TTSModel, speechContents, speechConfig)
	}()
	wg.Wait()

	if videoErr != nil {
		return nil, fmt.Errorf("%w: failed to start video generation: %v", domain.ErrGeneration, videoErr)
	}
	if operation == nil {
		return nil, fmt.Errorf("%w: expected the model to return a video operation", domain.ErrGeneration)
	}
	if audioErr != nil {
		return nil, fmt.Errorf("%w: speech synthesis failed: %v", domain.ErrGeneration, audioErr)
	}
	audioBlob, ok := firstInlineMedia(audioResp)
	if !ok {
		return nil, fmt.Errorf("%w: no audio media returned", domain.ErrGeneration)
	}

	// 動画ジョブを終端状態まで追跡します。
	operation, err = pollVideosOperation(ctx, operation, g.video.CheckVideosOperation, g.cfg.PollInterval, g.cfg.MaxPollAttempts)
	if err != nil {
		return nil, err
	}

	generated, err := extractGeneratedVideo(operation)
	if err != nil {
		return nil, err
	}

	// アセット取得とWAV変換も互いに独立なので並行に進めます。
	var (
		videoURL string
		fetchErr error
		audioURL string
		wavErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		videoURL, fetchErr = g.resolveVideoURL(ctx, generated)
	}()
	go func() {
		defer wg.Done()
		var encoded string
		encoded, wavErr = wavutil.EncodeBase64(audioBlob.Data)
		if wavErr == nil {
			audioURL = "data:audio/wav;base64," + encoded
		}
	}()
	wg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if wavErr != nil {
		return nil, wavErr
	}

	return &domain.VideoResponse{VideoURL: videoURL, AudioURL: audioURL}, nil
}

// extractGeneratedVideo は完了済みオペレーションから動画メディアを取り出します。
func extractGeneratedVideo(operation *genai.GenerateVideosOperation) (*genai.Video, error) {
	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 {
		return nil, fmt.Errorf("%w: failed to find the generated video in operation result", domain.ErrGeneration)
	}
	video := operation.Response.GeneratedVideos[0].Video
	if video == nil || (video.URI == "" && len(video.VideoBytes) == 0) {
		return nil, fmt.Errorf("%w: failed to find the generated video in operation result", domain.ErrGeneration)
	}
	return video, nil
}

// resolveVideoURL は動画メディアを data URI に正規化します。
// バイト列が同梱されていればそのまま包み、URI参照ならフェッチャー経由で取得します。
func (g *VideoGenerator) resolveVideoURL(ctx context.Context, video *genai.Video) (string, error) {
	mimeType := video.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	if len(video.VideoBytes) > 0 {
		return domain.EncodeDataURI(mimeType, video.VideoBytes), nil
	}
	return g.fetcher.FetchAsDataURI(ctx, video.URI, mimeType)
}
