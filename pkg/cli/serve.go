package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/cli/config"
	controller "github.com/rosterhub/rosterhub/pkg/controller/http"
	"github.com/rosterhub/rosterhub/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		backendCfg  config.Backend
		fixturesCfg config.Fixtures
	)

	flags := joinFlags(
		serverCfg.Flags(),
		backendCfg.Flags(),
		fixturesCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the aggregation gateway HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting rosterhub server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("backend", backendCfg),
				slog.Any("fixtures", fixturesCfg),
			)

			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := fixturesCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			resolver := usecase.NewResolver(client)
			invitesUC := usecase.NewInvites(client, resolver)
			searchUC := usecase.NewSearch(client, repo)

			server := controller.NewServer(ctx, serverCfg.Addr, invitesUC, searchUC, fixturesCfg.IncludeMocks)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
