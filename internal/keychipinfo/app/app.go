// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/config"
	kerrors "github.com/shiroemons/go-keychip/internal/keychipinfo/errors"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/fileutil"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/interfaces"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/models"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/report"
	"github.com/shiroemons/go-keychip/pkg/keychip"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config     *config.Config
	logger     *config.DebugLogger
	fs         interfaces.FileSystem
	fileFinder interfaces.FileFinder
	stdout     io.Writer
	stderr     io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	FileFinder interfaces.FileFinder
	Logger     *config.DebugLogger
	Stdout     io.Writer
	Stderr     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = config.NewDebugLogger(cfg.DebugMode)
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	fileFinder := opts.FileFinder
	if fileFinder == nil {
		fileFinder = fileutil.NewKeychipFileFinder(fs)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		config:     cfg,
		logger:     logger,
		fs:         fs,
		fileFinder: fileFinder,
		stdout:     stdout,
		stderr:     stderr,
	}
}

// Run はアプリケーションを実行します。
// 全てのファイルを処理した後、最初に発生したエラーを返します。
func (a *App) Run(ctx context.Context) error {
	formatter, err := report.New(a.config.Format)
	if err != nil {
		return err
	}

	paths, err := a.resolveInputs(ctx)
	if err != nil {
		return err
	}

	results, err := a.decodeAll(ctx, paths, formatter)
	if err != nil {
		return err
	}

	var firstErr error
	written := make(map[string]string)
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(a.stderr, "エラー: %v\n", result.Err)
			if firstErr == nil {
				firstErr = result.Err
			}
			continue
		}

		if len(results) > 1 {
			fmt.Fprintf(a.stdout, "==> %s <==\n", result.InputFile)
		}
		fmt.Fprintln(a.stdout, result.Report)

		if a.config.DryRun {
			continue
		}
		outputPath := a.outputPath(result.InputFile, formatter.Extension())
		if prev, ok := written[outputPath]; ok {
			err := fmt.Errorf("%w: %s (%s と %s)", ErrOutputCollision, outputPath, prev, result.InputFile)
			fmt.Fprintf(a.stderr, "エラー: %v\n", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		written[outputPath] = result.InputFile

		if err := a.save(result, outputPath); err != nil {
			fmt.Fprintf(a.stderr, "エラー: %v\n", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// resolveInputs は処理対象のファイル一覧を決定します
func (a *App) resolveInputs(ctx context.Context) ([]string, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if len(a.config.InputPaths) > 0 {
		return a.config.InputPaths, nil
	}

	paths, err := a.fileFinder.Find()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoKeychipFiles
	}
	for _, path := range paths {
		a.logger.Printf("自動検出したKeychipファイル %s を読み込みます", filepath.Base(path))
	}
	return paths, nil
}

// decodeJob はワーカーに渡す処理単位
type decodeJob struct {
	index int
	path  string
}

// decodeAll は複数ファイルをワーカーで並列に解析し、入力順の結果を返します
func (a *App) decodeAll(ctx context.Context, paths []string, formatter interfaces.Formatter) ([]models.Result, error) {
	workers := a.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]models.Result, len(paths))
	jobs := make(chan decodeJob)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = a.processFile(job.path, formatter)
			}
		}()
	}

	var ctxErr error
	for i, path := range paths {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
		case jobs <- decodeJob{index: i, path: path}:
		}
		if ctxErr != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	// 最後のジョブを送った後のキャンセルも結果を破棄する
	if ctxErr == nil {
		ctxErr = ctx.Err()
	}
	if ctxErr != nil {
		return nil, ctxErr
	}
	return results, nil
}

// processFile は1ファイルを読み込み、解析して整形します
func (a *App) processFile(path string, formatter interfaces.Formatter) models.Result {
	result := models.Result{InputFile: path}

	input, err := a.readInput(path)
	if err != nil {
		result.Err = err
		return result
	}

	rec, err := keychip.Decode(input.Data)
	if err != nil {
		result.Err = kerrors.NewDecodeError(path, err)
		return result
	}
	result.Record = rec

	a.logger.WithField("file", filepath.Base(path)).
		WithField("variant", rec.Data.Variant()).
		WithField("bytes", len(input.Data)).
		Debug("解析しました")

	out, err := formatter.Format(rec)
	if err != nil {
		result.Err = fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
		return result
	}
	result.Report = out

	return result
}

// readInput はKeychipバイナリを読み込みます
func (a *App) readInput(path string) (models.Input, error) {
	if !a.fs.FileExists(path) {
		return models.Input{}, kerrors.NewFileError("open", path, kerrors.ErrFileNotFound)
	}
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return models.Input{}, kerrors.NewFileError("read", path, fmt.Errorf("%w: %w", ErrReadFile, err))
	}
	return models.Input{Path: path, Data: data}, nil
}

// outputPath は入力ファイルに対応する出力先のパスを返します
func (a *App) outputPath(inputPath, ext string) string {
	return filepath.Join(a.config.OutputDir, fileutil.GenerateOutputFilename(inputPath, ext))
}

// save は整形済みの出力をoutputPathに保存します
func (a *App) save(result models.Result, outputPath string) error {
	if err := fileutil.SaveToFileWithBOM(a.fs, outputPath, result.Report); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}

	a.logger.Printf("データを %s に保存しました", outputPath)
	return nil
}
