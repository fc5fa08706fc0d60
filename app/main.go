// Файл: main.go

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"virtusim-backend/internal/integrations/virtusim"
	"virtusim-backend/internal/routes"
	"virtusim-backend/pkg/config"
	applogger "virtusim-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "virtusim-backend",
		Short:        "HTTP backend для VirtuSIM с наценкой на услуги",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Запустить HTTP-сервер",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServer(cmd.Context())
			},
		},
		newScenariosCmd(),
		newQuoteCmd(),
	)
	return root
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	if !cfg.APIKeyConfigured() {
		logger.Warn("VIRTUSIM_API_KEY не задан, ключ будет браться из заголовка Authorization")
	}

	// 2. Echo, middleware и маршруты
	e, err := routes.NewEcho(cfg, logger)
	if err != nil {
		logger.Error("Ошибка регистрации кастомных правил валидации", zap.Error(err))
		return err
	}
	provider := virtusim.New(cfg.VirtuSIM, logger)
	routes.InitRouter(e, provider, routes.NewLoggers(logger), cfg)

	// 3. Сервер и ожидание сигнала
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Server.Port
		logger.Info("🚀 Сервер запущен", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Остановка сервера")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Сервер остановлен с ошибкой", zap.Error(err))
		return err
	}
	logger.Info("Сервер остановлен")
	return nil
}
