package domain

import "errors"

// 生成パイプライン全体で共有するエラー種別です。
// 各層は fmt.Errorf("...: %w", err) でこれらをラップし、呼び出し側は errors.Is で判定します。
var (
	// ErrValidation はモデル呼び出し前のリクエスト検証エラーです。
	ErrValidation = errors.New("invalid generation request")

	// ErrEmptyResponse はモデルが利用可能なコンテンツを返さなかったことを示します。
	ErrEmptyResponse = errors.New("model returned no usable content")

	// ErrPartialGeneration は全件成功が要求されるファンアウトの一部が失敗したことを示します。
	ErrPartialGeneration = errors.New("one or more generations in the batch failed")

	// ErrGeneration はリモートジョブの失敗、または完了出力から成果物を取り出せなかったことを示します。
	ErrGeneration = errors.New("generation failed")

	// ErrChainedGeneration は後続ステップの前提となる上流の結果が欠けていたことを示します。
	ErrChainedGeneration = errors.New("upstream result missing for chained generation")

	// ErrFetch は生成済みアセットの取得失敗です。
	ErrFetch = errors.New("failed to fetch remote asset")

	// ErrEncoding はWAVコンテナへの変換失敗です。
	ErrEncoding = errors.New("failed to encode audio")

	// ErrPollTimeout はポーリングが試行上限に達したことを示します。
	ErrPollTimeout = errors.New("operation polling exceeded attempt limit")

	// ErrMissingAPIKey はAPIキー未設定の構成エラーです。コアロジックのエラーではありません。
	ErrMissingAPIKey = errors.New("gemini api key is not configured")
)
