package generator

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// checkOperationFunc はオペレーションの最新状態を問い合わせます。
type checkOperationFunc func(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)

// pollVideosOperation はオペレーションが終端状態になるまで問い合わせを繰り返します。
//
// すでに Done のオペレーションには待機も問い合わせも行わず即座に返します。
// それ以外は「interval 待機 → 状態確認」を繰り返し、確認回数が maxAttempts を
// 超えると ErrPollTimeout を返します。ctx のキャンセルは待機中にも反映されます。
// 終端状態で Error が設定されていた場合は ErrGeneration を返し、結果は返しません。
func pollVideosOperation(
	ctx context.Context,
	operation *genai.GenerateVideosOperation,
	check checkOperationFunc,
	interval time.Duration,
	maxAttempts int,
) (*genai.GenerateVideosOperation, error) {
	if operation == nil {
		return nil, fmt.Errorf("%w: no operation to poll", domain.ErrGeneration)
	}

	for attempts := 0; ; attempts++ {
		if operation.Done {
			if len(operation.Error) > 0 {
				return nil, fmt.Errorf("%w: %s", domain.ErrGeneration, operationErrorMessage(operation.Error))
			}
			return operation, nil
		}

		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: operation %q still running after %d checks", domain.ErrPollTimeout, operation.Name, attempts)
		}

		// 初回の確認だけは待機なしで行い、以降は interval 間隔を空けます。
		if attempts > 0 {
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		next, err := check(ctx, operation)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check operation state: %v", domain.ErrGeneration, err)
		}
		if next == nil {
			return nil, fmt.Errorf("%w: operation check returned nothing", domain.ErrGeneration)
		}
		operation = next
	}
}

// operationErrorMessage はオペレーションのエラー情報からメッセージを取り出します。
func operationErrorMessage(errInfo map[string]any) string {
	if msg, ok := errInfo["message"].(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("%v", errInfo)
}
