// Package interfaces はkeychip_infoコマンドで使用するインターフェースを定義します
package interfaces

import (
	"github.com/shiroemons/go-keychip/pkg/keychip"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	ReadDir(dirname string) ([]DirEntry, error)
	Getwd() (string, error)
	Executable() (string, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// FileFinder はKeychipバイナリを検索するインターフェース
type FileFinder interface {
	Find() ([]string, error)
}

// Formatter は解析結果を整形するインターフェース
type Formatter interface {
	Format(rec keychip.Record) (string, error)
	Extension() string
}
