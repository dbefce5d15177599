package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve ordering requests over HTTP",
	Long: `Start an HTTP server exposing POST /v1/orders and GET /healthz.

Server settings are read from the environment and from $SHOWORDER_ROOT/.env.
When redis is reachable, order requests are rate limited per client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, paths, err := newEngine()
		if err != nil {
			return err
		}

		cfg, err := config.LoadServerConfig(paths.Env)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		r := newReport(cmd)
		var rdb *redis.Client
		if cfg.RateLimit.Enabled {
			rdb = config.NewRedisClient(ctx, cfg.Redis)
			if rdb == nil {
				r.warn("Redis unreachable at %s; rate limiting disabled", cfg.Redis.Addr)
			} else {
				defer rdb.Close()
			}
		}

		r.success("Serving on %s", cfg.Addr)
		r.note("Press Ctrl+C to stop")
		return server.New(eng, cfg, rdb, &clock.RealClock{}).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides SHOWORDER_ADDR)")
}
