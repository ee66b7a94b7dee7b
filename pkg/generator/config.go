package generator

import "time"

// Config は生成パイプライン全体のチューニング項目を保持します。
// ゼロ値での利用は想定していないため、DefaultConfig() を起点にしてください。
type Config struct {
	// 各生成種別で使うモデルID
	ChatModel  string
	CodeModel  string
	ImageModel string
	TTSModel   string
	VideoModel string

	// 音声合成で使うプリセットボイスID
	VoiceName string

	// チャットは創造性をやや高めに、コードは決定性を優先して低めに固定
	ChatTemperature float32
	CodeTemperature float32

	// 一括画像生成の並列呼び出し数。結果の要素数はこの値と常に一致します
	ImageFanOut int

	// 動画生成の固定パラメータ
	VideoDurationSeconds int32
	VideoAspectRatio     string

	// 長時間実行オペレーションのポーリング設定。
	// MaxPollAttempts は状態確認の回数上限で、超過すると ErrPollTimeout になります。
	PollInterval    time.Duration
	MaxPollAttempts int
}

// DefaultConfig は既定の設定を返します。
func DefaultConfig() Config {
	return Config{
		ChatModel:  "gemini-1.5-pro",
		CodeModel:  "gemini-1.5-pro",
		ImageModel: "gemini-2.0-flash-preview-image-generation",
		TTSModel:   "gemini-2.5-flash-preview-tts",
		VideoModel: "veo-2.0-generate-001",

		VoiceName: "Algenib",

		ChatTemperature: 0.7,
		CodeTemperature: 0.2,

		ImageFanOut: 16,

		VideoDurationSeconds: 8,
		VideoAspectRatio:     "16:9",

		PollInterval:    5 * time.Second,
		MaxPollAttempts: 120,
	}
}
