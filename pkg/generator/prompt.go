package generator

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// 各生成種別のプロバイダ呼び出しペイロード（パーツ列 + 設定）をここで組み立てます。
// パーツ列の構成は常に「テキスト → 参照画像（あれば）」の順です。

const chatSystemPrompt = `You are ChatGPT 4.5, a highly advanced and helpful AI assistant created by Progpt. You are proficient in both English and Bengali. You should provide detailed, intelligent, and creative responses. Respond to the user's message in the language they use.`

const codeSystemPrompt = `You are an expert software developer and coding assistant named "Progpt Code Assistant".
- Your primary goal is to help users by providing clean, efficient, and well-explained code.
- Always wrap the generated code in Markdown code blocks with the correct language identifier (e.g., ` + "```javascript" + `).
- If the user provides an image, analyze it carefully to understand the context. For example, if it's a UI mockup, generate the corresponding HTML/CSS or React/Vue/Svelte component.
- If the request is ambiguous, ask clarifying questions.
- Provide explanations for your code, but keep them concise.
- If you are generating a full component or page (e.g., in React or Next.js), provide all the necessary imports.`

// 参照画像がある場合は、人物の容姿を保ったまま生成するようモデルへ指示します。
const imageLikenessPromptFormat = `Using the provided image as a reference for the person's face and appearance, generate a new image based on the following description: %s. Ensure the person's likeness is maintained.`

// validatePrompt はモデル呼び出し前の共通検証です。
func validatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("%w: prompt text is empty", domain.ErrValidation)
	}
	return nil
}

// referenceImagePart は data URI の参照画像を InlineData パーツへ変換します。
// 封筒が不正な場合は ErrValidation を返します。中身までは検証しません。
func referenceImagePart(referenceImage string) (*genai.Part, error) {
	media, err := domain.DecodeDataURI(referenceImage)
	if err != nil {
		return nil, fmt.Errorf("reference image: %w", err)
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: media.MIMEType, Data: media.Data}}, nil
}

func systemInstruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// buildChatCall はチャット応答生成の呼び出しを組み立てます。
func buildChatCall(cfg Config, message string) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	if err := validatePrompt(message); err != nil {
		return nil, nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{{Text: message}}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(chatSystemPrompt),
		Temperature:       genai.Ptr(cfg.ChatTemperature),
	}
	return contents, config, nil
}

// buildCodeCall はコード生成の呼び出しを組み立てます。
// 参照画像（UIモック等）はテキストの後ろに追加されます。
func buildCodeCall(cfg Config, req domain.CodeRequest) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	if err := validatePrompt(req.Prompt); err != nil {
		return nil, nil, err
	}

	parts := []*genai.Part{{Text: req.Prompt}}
	if req.ReferenceImage != "" {
		imgPart, err := referenceImagePart(req.ReferenceImage)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, imgPart)
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(codeSystemPrompt),
		Temperature:       genai.Ptr(cfg.CodeTemperature),
	}
	return contents, config, nil
}

// buildImageCall は一括画像生成の呼び出しを組み立てます。
// ファンアウトする全呼び出しで同一のペイロードを使い回します（独立同一プロンプト生成）。
func buildImageCall(req domain.ImageBatchRequest) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	if err := validatePrompt(req.Prompt); err != nil {
		return nil, nil, err
	}

	var parts []*genai.Part
	if req.ReferenceImage != "" {
		imgPart, err := referenceImagePart(req.ReferenceImage)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts,
			imgPart,
			&genai.Part{Text: fmt.Sprintf(imageLikenessPromptFormat, req.Prompt)},
		)
	} else {
		parts = append(parts, &genai.Part{Text: req.Prompt})
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}
	return contents, config, nil
}

// buildSpeechCall は音声合成の呼び出しを組み立てます。
func buildSpeechCall(cfg Config, text string) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	if err := validatePrompt(text); err != nil {
		return nil, nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{{Text: text}}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: cfg.VoiceName},
			},
		},
	}
	return contents, config, nil
}

// buildVideoCall は動画生成ジョブ開始の呼び出しを組み立てます。
// 参照画像は genai.Image として渡します。
func buildVideoCall(cfg Config, req domain.VideoRequest) (string, *genai.Image, *genai.GenerateVideosConfig, error) {
	if err := validatePrompt(req.Prompt); err != nil {
		return "", nil, nil, err
	}

	var image *genai.Image
	if req.ReferenceImage != "" {
		media, err := domain.DecodeDataURI(req.ReferenceImage)
		if err != nil {
			return "", nil, nil, fmt.Errorf("reference image: %w", err)
		}
		image = &genai.Image{ImageBytes: media.Data, MIMEType: media.MIMEType}
	}

	config := &genai.GenerateVideosConfig{
		AspectRatio:     cfg.VideoAspectRatio,
		DurationSeconds: genai.Ptr(cfg.VideoDurationSeconds),
	}
	return req.Prompt, image, config, nil
}
