// Package config はkeychip_infoコマンドの設定管理を行います
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// 出力形式
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	InputPaths  []string
	OutputDir   string
	Format      string
	Workers     int
	DebugMode   bool
	DryRun      bool
	ShowVersion bool
}

// NewRootCommand はコマンドライン引数を解析してrunに設定を渡すコマンドを返します
func NewRootCommand(run func(cmd *cobra.Command, cfg *Config) error) *cobra.Command {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:           "keychip_info [flags] [file ...]",
		Short:         "Decode keychip application binaries",
		Long:          "keychip_info decodes keychip application binaries (AppInfo + Ring/Nu AppData).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// バージョン表示の処理
			if cfg.ShowVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "keychip_info version %s\n", Version)
				return nil
			}
			cfg.InputPaths = args
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutputDir, "output", "o", ".", "output directory for the generated files")
	flags.StringVarP(&cfg.Format, "format", "f", FormatText, "report format (text or yaml)")
	flags.IntVarP(&cfg.Workers, "workers", "w", 4, "number of parallel decode workers")
	flags.BoolVarP(&cfg.DebugMode, "debug", "d", false, "enable debug output")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "perform a dry run without writing output files")
	flags.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version information")

	return cmd
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	logger *logrus.Logger
}

// NewDebugLogger は標準エラー出力に書き込むDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithOutput(enabled, os.Stderr)
}

// NewDebugLoggerWithOutput はwに書き込むDebugLoggerを作成します
func NewDebugLoggerWithOutput(enabled bool, w io.Writer) *DebugLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return &DebugLogger{logger: logger}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	d.logger.Debugf(format, a...)
}

// WithField はフィールド付きのエントリを返します
func (d *DebugLogger) WithField(key string, value any) *logrus.Entry {
	return d.logger.WithField(key, value)
}
