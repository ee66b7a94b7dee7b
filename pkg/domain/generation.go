package domain

// ChatRequest はチャット応答の生成要求です。
type ChatRequest struct {
	Message string
}

// ChatResponse はAIが生成したチャット応答を保持します。
type ChatResponse struct {
	Response string
}

// CodeRequest はコード生成の要求です。
// ReferenceImage には UIモックのスクリーンショット等を data URI 形式で渡せます。
type CodeRequest struct {
	Prompt         string
	ReferenceImage string // 省略可。'data:<mime>;base64,<payload>' 形式
}

// CodeResponse は生成されたコード（Markdownコードブロックを含むプレーンテキスト）です。
type CodeResponse struct {
	Code string
}

// ImageBatchRequest は複数枚の一括画像生成要求です。
// ReferenceImage を渡すと、写っている人物の容姿を保ったまま生成が行われます。
type ImageBatchRequest struct {
	Prompt         string
	ReferenceImage string // 省略可。data URI 形式
}

// ImageBatchResponse は生成された画像の data URI 群です。
// 要素数は設定されたファンアウト数（既定16）と常に一致します。
type ImageBatchResponse struct {
	ImageURLs []string
}

// VideoRequest は動画と音声のペア生成要求です。
type VideoRequest struct {
	Prompt         string
	ReferenceImage string // 省略可。動画生成の参照画像（data URI 形式）
}

// VideoResponse は生成された動画（mp4）と音声（wav）の data URI ペアです。
// どちらか一方だけが返ることはありません（全体失敗として扱われます）。
type VideoResponse struct {
	VideoURL string
	AudioURL string
}

// VoiceChatRequest は音声チャットの要求です。Message は音声認識済みのテキストです。
type VoiceChatRequest struct {
	Message string
}

// VoiceChatResponse はテキスト応答と、それを音声合成した wav の data URI です。
type VoiceChatResponse struct {
	TextResponse string
	AudioURL     string
}

// TranslateSource は動画翻訳の入力ソース種別です。
type TranslateSource string

// TranslateMode は動画翻訳のモードです。
type TranslateMode string

const (
	TranslateSourceUpload TranslateSource = "upload"
	TranslateSourceLink   TranslateSource = "link"

	TranslateModeLipSync   TranslateMode = "lip-sync"
	TranslateModeAudioOnly TranslateMode = "audio-only"
)

// TranslateVideoRequest は動画の話し言葉を別言語へ翻訳する要求です。
type TranslateVideoRequest struct {
	SourceType     TranslateSource
	SourceURL      string // upload の場合は data URI、link の場合は動画URL
	TargetLanguage string // 言語コード（例: "bn"）
	Mode           TranslateMode
}

// TranslateVideoResponse は翻訳済み動画のURLです。
type TranslateVideoResponse struct {
	TranslatedVideoURL string
}
