package app

import "errors"

var (
	// ErrNoKeychipFiles はKeychipファイルが見つからない場合のエラー
	ErrNoKeychipFiles = errors.New(".binファイルが見つかりません。解析するファイルを引数で指定してください")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrFormat は出力の整形に失敗した場合のエラー
	ErrFormat = errors.New("出力の整形に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrOutputCollision は別々の入力が同じ出力ファイル名になる場合のエラー
	ErrOutputCollision = errors.New("出力ファイル名が重複しています")
)
