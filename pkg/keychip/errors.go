package keychip

import (
	"errors"
	"fmt"
)

// ErrTruncatedInput は入力が解析に必要な長さに満たない場合のエラー
var ErrTruncatedInput = errors.New("truncated input")

// 解析ステージ名
const (
	StageAppInfo = "appinfo"
	StageRing    = "ring"
	StageNu      = "nu"
)

// TruncatedInputError は入力の不足を詳細付きで表します
type TruncatedInputError struct {
	Stage  string // 解析していたステージ
	Offset int    // 読み込もうとした絶対オフセット
	Need   int    // Offsetから必要なバイト数
	Have   int    // 入力全体のバイト数
}

// Error はエラーメッセージを返します
func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("%s: %v: need %d bytes at offset %d, have %d bytes total",
		e.Stage, ErrTruncatedInput, e.Need, e.Offset, e.Have)
}

// Unwrap は ErrTruncatedInput を返します
func (e *TruncatedInputError) Unwrap() error {
	return ErrTruncatedInput
}

// IsTruncatedInput はエラーが入力不足によるものかを判定します
func IsTruncatedInput(err error) bool {
	return errors.Is(err, ErrTruncatedInput)
}

// checkLength はdataのoffsetからneedバイトを読めるか確認します
func checkLength(stage string, data []byte, offset, need int) error {
	if len(data) < offset+need {
		return &TruncatedInputError{
			Stage:  stage,
			Offset: offset,
			Need:   need,
			Have:   len(data),
		}
	}
	return nil
}
