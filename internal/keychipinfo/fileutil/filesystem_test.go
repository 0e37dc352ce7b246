package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/mocks"
)

func TestKeychipFileFinder_Find(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockFileSystem)
		wantFiles []string
		wantError error
	}{
		{
			name: "カレントディレクトリに1つのbinファイル",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.Dirs["/current"] = true
				fs.Files["/current/SDED.bin"] = []byte("test")
			},
			wantFiles: []string{"/current/SDED.bin"},
		},
		{
			name: "カレントディレクトリに複数のbinファイル",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.Dirs["/current"] = true
				fs.Files["/current/SDEY.bin"] = []byte("test")
				fs.Files["/current/SBZV.bin"] = []byte("test")
				fs.Files["/current/readme.txt"] = []byte("test")
			},
			wantFiles: []string{"/current/SBZV.bin", "/current/SDEY.bin"},
		},
		{
			name: "実行ファイルディレクトリにbinファイル",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.ExecPath = "/exec/program"
				fs.Dirs["/current"] = true
				fs.Dirs["/exec"] = true
				fs.Files["/exec/SDDT.bin"] = []byte("test")
			},
			wantFiles: []string{"/exec/SDDT.bin"},
		},
		{
			name: "binファイルが存在しない",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.ExecPath = "/exec/program"
				fs.Dirs["/current"] = true
				fs.Dirs["/exec"] = true
			},
			wantFiles: nil,
		},
		{
			name: "ディレクトリ名は対象外",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/current"
				fs.ExecPath = "/current/program"
				fs.Dirs["/current"] = true
				fs.Dirs["/current/dump.bin"] = true
			},
			wantFiles: nil,
		},
		{
			name: "カレントディレクトリが読めない",
			setupMock: func(fs *mocks.MockFileSystem) {
				fs.WorkingDir = "/missing"
			},
			wantError: ErrReadDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystem()
			tt.setupMock(fs)

			files, err := NewKeychipFileFinder(fs).Find()
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected %v, got %v", tt.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(files, tt.wantFiles) {
				t.Errorf("Find() = %v, want %v", files, tt.wantFiles)
			}
		})
	}
}

func TestKeychipFileFinder_GetwdError(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Error = errors.New("getwd error")

	_, err := NewKeychipFileFinder(fs).Find()
	if !errors.Is(err, ErrGetCurrentDirectory) {
		t.Errorf("expected ErrGetCurrentDirectory, got %v", err)
	}
}

func TestOSFileSystem(t *testing.T) {
	fs := NewOSFileSystem()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "SDED.bin")

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := fs.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !fs.FileExists(path) {
		t.Error("FileExists returned false for existing file")
	}
	if fs.FileExists(filepath.Join(tmpDir, "missing.bin")) {
		t.Error("FileExists returned true for non-existing file")
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !reflect.DeepEqual(data, []byte{1, 2, 3}) {
		t.Errorf("ReadFile() = %v", data)
	}

	entries, err := fs.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "nested" || !entries[0].IsDir() {
		t.Errorf("ReadDir() returned unexpected entries")
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("file should exist: %v", err)
	}
}
