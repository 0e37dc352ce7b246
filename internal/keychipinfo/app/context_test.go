package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/config"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/mocks"
)

// cancelOnReadFileSystem は最初のReadFileでコンテキストをキャンセルするファイルシステム
type cancelOnReadFileSystem struct {
	*mocks.MockFileSystem
	cancel context.CancelFunc
}

func (fs *cancelOnReadFileSystem) ReadFile(filename string) ([]byte, error) {
	fs.cancel()
	return fs.MockFileSystem.ReadFile(filename)
}

func TestApp_Run_ContextCancellation(t *testing.T) {
	tests := []struct {
		name string
		// setup はコンテキストとAppに渡すファイルシステムを準備します
		setup func(mfs *mocks.MockFileSystem) (context.Context, *cancelOnReadFileSystem)
	}{
		{
			name: "実行前にキャンセルされたコンテキスト",
			setup: func(mfs *mocks.MockFileSystem) (context.Context, *cancelOnReadFileSystem) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, &cancelOnReadFileSystem{MockFileSystem: mfs, cancel: func() {}}
			},
		},
		{
			name: "ジョブ送信中にキャンセル",
			setup: func(mfs *mocks.MockFileSystem) (context.Context, *cancelOnReadFileSystem) {
				ctx, cancel := context.WithCancel(context.Background())
				return ctx, &cancelOnReadFileSystem{MockFileSystem: mfs, cancel: cancel}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := mocks.NewMockFileSystem()
			var paths []string
			for i := 0; i < 8; i++ {
				path := fmt.Sprintf("/in/G%03d.bin", i)
				mfs.Files[path] = ringBinary(fmt.Sprintf("G%03d", i))
				paths = append(paths, path)
			}

			ctx, fs := tt.setup(mfs)
			cfg := &config.Config{
				InputPaths: paths,
				OutputDir:  "/out",
				Format:     config.FormatText,
				Workers:    1,
			}
			app := NewWithOptions(cfg, Options{
				FileSystem: fs,
				Logger:     config.NewDebugLoggerWithOutput(false, io.Discard),
				Stdout:     &strings.Builder{},
				Stderr:     &strings.Builder{},
			})

			err := app.Run(ctx)
			assert.True(t, errors.Is(err, context.Canceled), "got %v", err)

			for name := range mfs.Files {
				assert.False(t, strings.HasPrefix(name, "/out/"), "%s should not be saved", name)
			}
			assert.Empty(t, mfs.Dirs, "no output directory should be created")
		})
	}
}
