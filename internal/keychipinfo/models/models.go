// Package models はkeychip_infoコマンドで使用するデータモデルを定義します
package models

import "github.com/shiroemons/go-keychip/pkg/keychip"

// Input はファイルから読み込んだKeychipバイナリを表します
type Input struct {
	Path string
	Data []byte
}

// Result は1ファイル分の解析結果を表します
type Result struct {
	InputFile string
	Record    keychip.Record
	Report    string // 整形済みの出力
	Err       error
}
