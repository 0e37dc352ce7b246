// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrDecodeFailure はKeychipデータの解析に失敗した場合のエラー
	ErrDecodeFailure = errors.New("Keychipデータの解析に失敗しました")
)

// FileError はファイル操作関連のエラー
type FileError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError は新しいFileErrorを作成します
func NewFileError(op, path string, err error) *FileError {
	return &FileError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// DecodeError は解析関連のエラー
type DecodeError struct {
	File string // ファイル名
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%sの解析エラー: %v", e.File, e.Err)
}

// Unwrap は元のエラーとErrDecodeFailureを返します
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecodeFailure, e.Err}
}

// NewDecodeError は新しいDecodeErrorを作成します
func NewDecodeError(file string, err error) *DecodeError {
	return &DecodeError{
		File: file,
		Err:  err,
	}
}
