package wavutil

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/shouni/gemini-media-kit/pkg/domain"
)

// 音声モデルが出力するPCMの形式は全システムで固定です（モノラル・16bit・24kHz）。
// リクエストごとの交渉は行いません。
const (
	NumChannels   = 1
	BitsPerSample = 16
	SampleRate    = 24000

	headerSize = 44
)

// EncodeBase64 は生のPCMバイト列をWAVコンテナに包み、base64文字列として返します。
// 同じ入力に対して常に同一の出力を返します（決定的）。
func EncodeBase64(pcm []byte) (string, error) {
	wav, err := Encode(pcm)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(wav), nil
}

// Encode は生のPCMバイト列の先頭にRIFF/WAVEヘッダを付与して返します。
// 途中で失敗した場合、部分的な出力は返しません。
func Encode(pcm []byte) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, fmt.Errorf("%w: empty PCM input", domain.ErrEncoding)
	}
	if len(pcm)%(NumChannels*BitsPerSample/8) != 0 {
		return nil, fmt.Errorf("%w: PCM length %d is not aligned to the 16-bit sample size", domain.ErrEncoding, len(pcm))
	}

	byteRate := SampleRate * NumChannels * BitsPerSample / 8
	blockAlign := NumChannels * BitsPerSample / 8

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(pcm)))

	// RIFF チャンク
	buf.WriteString("RIFF")
	if err := binary.Write(buf, binary.LittleEndian, uint32(headerSize-8+len(pcm))); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	buf.WriteString("WAVE")

	// fmt サブチャンク（PCMは16バイト固定）
	buf.WriteString("fmt ")
	for _, v := range []any{
		uint32(16),
		uint16(1), // PCM
		uint16(NumChannels),
		uint32(SampleRate),
		uint32(byteRate),
		uint16(blockAlign),
		uint16(BitsPerSample),
	} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
		}
	}

	// data サブチャンク
	buf.WriteString("data")
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(pcm))); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	buf.Write(pcm)

	return buf.Bytes(), nil
}
