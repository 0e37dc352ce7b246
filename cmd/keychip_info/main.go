package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/app"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/config"
)

func main() {
	// Ctrl+C で処理を中断できるようにする
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// コマンドライン引数の解析とアプリケーションの実行
	rootCmd := config.NewRootCommand(func(cmd *cobra.Command, cfg *config.Config) error {
		application := app.New(cfg)
		return application.Run(cmd.Context())
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}
