package report

import "errors"

// ErrMarshalYAML はYAMLへの変換に失敗した場合のエラー
var ErrMarshalYAML = errors.New("YAMLへの変換に失敗しました")
