package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shouni/go-fashion-kit/internal/builder"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var addr string

// serveCmd は、生成機能を HTTP API として公開するのだ。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API サーバーを起動します。",
	Long: `POST /api/gemini（{action, payload} → {success, data}）と、
セッションを使ったフロー用エンドポイント、GET /api/catalog を公開します。`,
	RunE: serveCommand,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "待ち受けアドレス（省略時は HTTP_ADDR）。")
}

func serveCommand(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx, err := loadApp(ctx)
	if err != nil {
		return err
	}
	srv, err := builder.BuildServer(appCtx)
	if err != nil {
		return fmt.Errorf("サーバーの初期化に失敗しました: %w", err)
	}

	listen := addr
	if listen == "" {
		listen = cfg.HTTPAddr
	}
	httpServer := &http.Server{
		Addr:              listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP サーバーを起動します", "addr", listen)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP サーバーが停止しました: %w", err)
	case <-ctx.Done():
	}

	slog.Info("HTTP サーバーを停止します")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
