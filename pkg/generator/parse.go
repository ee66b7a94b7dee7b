package generator

import (
	"google.golang.org/genai"
)

// レスポンス解析の共通ヘルパー。最初の候補 (Candidate) のみを利用します。

// firstInlineMedia はレスポンスから最初のインラインメディアパーツを探します。
func firstInlineMedia(resp *genai.GenerateContentResponse) (*genai.Blob, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, false
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, false
	}
	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData, true
		}
	}
	return nil, false
}

// responseText はレスポンスのテキストを安全に取り出します。
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
