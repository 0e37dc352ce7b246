package config

import "errors"

var (
	// ErrUnknownFormat は未対応の出力形式が指定された場合のエラー
	ErrUnknownFormat = errors.New("未対応の出力形式です (text または yaml を指定してください)")

	// ErrInvalidWorkers はワーカー数が不正な場合のエラー
	ErrInvalidWorkers = errors.New("ワーカー数は1以上を指定してください")
)
