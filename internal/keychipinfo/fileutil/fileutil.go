// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/interfaces"
)

var (
	// KeychipFilePattern は SDED.bin や sbzv_keychip.bin のようなKeychipバイナリのパターン
	KeychipFilePattern = regexp.MustCompile(`(?i)^[^.].*\.bin$`)
)

var utf8bom = []byte{0xEF, 0xBB, 0xBF}

// SaveToFileWithBOM はUTF-8 BOMありでファイルに保存します
func SaveToFileWithBOM(fs interfaces.FileSystem, outputPath string, content string) error {
	// 出力先ディレクトリを作成（存在しない場合）
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	data := make([]byte, 0, len(utf8bom)+len(content))
	data = append(data, utf8bom...)
	data = append(data, content...)

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}

// GenerateOutputFilename は入力ファイル名から出力ファイル名を生成します
func GenerateOutputFilename(inputPath string, ext string) string {
	// ファイル名の部分だけを取得（拡張子なし）
	baseName := filepath.Base(inputPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// keychip_XXX.ext 形式の名前を生成
	return fmt.Sprintf("keychip_%s.%s", baseName, ext)
}
