package servecmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/quailyquaily/cronsay/internal/configutil"
	"github.com/quailyquaily/cronsay/internal/daemonruntime"
	"github.com/quailyquaily/cronsay/internal/records"
	"github.com/spf13/cobra"
)

const defaultListen = "127.0.0.1:9191"

type Dependencies struct {
	LoggerFromViper func() (*slog.Logger, error)
}

var deps Dependencies

func NewCommand(d Dependencies) *cobra.Command {
	deps = d
	return newServeCmd()
}

type serveConfig struct {
	listen     string
	authToken  string
	historyMax int
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the describe HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadServeConfig(cmd)
			logger, err := loggerFromViper()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := daemonruntime.NewMemoryStore(cfg.historyMax)
			_, _, err = daemonruntime.StartServer(ctx, logger, daemonruntime.ServerOptions{
				Listen: cfg.listen,
				Routes: daemonruntime.RoutesOptions{
					Mode:          "serve",
					AuthToken:     cfg.authToken,
					History:       store,
					Describe:      newDescribeFunc(store, logger),
					HealthEnabled: true,
				},
			})
			if err != nil {
				return fmt.Errorf("start server: %w", err)
			}
			<-ctx.Done()
			logger.Info("serve_stop", "addr", cfg.listen)
			return nil
		},
	}

	cmd.Flags().String("listen", defaultListen, "HTTP listen address.")
	cmd.Flags().String("auth-token", "", "Bearer token required on /describe and /history (empty disables auth).")
	cmd.Flags().Int("history-max", 1000, "Maximum number of describe results kept in memory.")
	return cmd
}

func loadServeConfig(cmd *cobra.Command) serveConfig {
	listen := strings.TrimSpace(configutil.FlagOrViperString(cmd, "listen", "serve.listen"))
	if listen == "" {
		listen = defaultListen
	}
	historyMax := configutil.FlagOrViperInt(cmd, "history-max", "serve.history_max")
	if historyMax <= 0 {
		historyMax = 1000
	}
	return serveConfig{
		listen:     listen,
		authToken:  strings.TrimSpace(configutil.FlagOrViperString(cmd, "auth-token", "serve.auth_token")),
		historyMax: historyMax,
	}
}

func newDescribeFunc(store *daemonruntime.MemoryStore, logger *slog.Logger) daemonruntime.DescribeFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(_ context.Context, expression string) (records.Record, error) {
		rec := records.Describe(expression, time.Now())
		store.Add(rec)
		if rec.Failed() {
			logger.Info("describe_failed", "id", rec.ID, "expression", rec.Expression, "error", rec.Error)
		} else {
			logger.Debug("describe_ok", "id", rec.ID, "expression", rec.Expression)
		}
		return rec, nil
	}
}

func loggerFromViper() (*slog.Logger, error) {
	if deps.LoggerFromViper == nil {
		return slog.Default(), nil
	}
	return deps.LoggerFromViper()
}
