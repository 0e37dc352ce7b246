package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// ReadDir はディレクトリを読み込みます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = entry
	}
	return result, nil
}

// Getwd は現在の作業ディレクトリを取得します
func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Executable は実行ファイルのパスを取得します
func (fs *OSFileSystem) Executable() (string, error) {
	return os.Executable()
}

// KeychipFileFinder はKeychipバイナリの検索を行います
type KeychipFileFinder struct {
	fs interfaces.FileSystem
}

// NewKeychipFileFinder は新しいKeychipFileFinderを作成します
func NewKeychipFileFinder(fs interfaces.FileSystem) *KeychipFileFinder {
	return &KeychipFileFinder{fs: fs}
}

// Find はカレントディレクトリおよび実行ファイルと同じディレクトリから.binファイルを検索します。
// カレントディレクトリで見つかった場合は実行ファイルのディレクトリは検索しません。
func (f *KeychipFileFinder) Find() ([]string, error) {
	currentDir, err := f.fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetCurrentDirectory, err)
	}

	files, err := f.findInDir(currentDir)
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		return files, nil
	}

	execPath, err := f.fs.Executable()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetExecutablePath, err)
	}

	execDir := filepath.Dir(execPath)
	if execDir == currentDir {
		return nil, nil
	}
	return f.findInDir(execDir)
}

// findInDir は指定されたディレクトリ内の.binファイルを名前順に返します
func (f *KeychipFileFinder) findInDir(dir string) ([]string, error) {
	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if KeychipFilePattern.MatchString(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}
