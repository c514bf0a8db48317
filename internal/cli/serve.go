package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/claimscope/claimscope/internal/classify"
	"github.com/claimscope/claimscope/internal/logging"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/server"
	"github.com/claimscope/claimscope/internal/store"
)

var (
	serveAddr     string
	serveStore    string
	serveInMemory bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the claim verification HTTP service",
	Long: `Serve starts the HTTP API:

  POST /api/v1/check         verify one claim
  GET  /api/v1/map           per-region fake-claim counts and status
  GET  /api/v1/state/{name}  accumulated fake claims for one region
  GET  /healthz              liveness probe

Example:
  claimscope serve --addr :8080
  NEWSAPI_KEY=... FACTCHECK_KEY=... claimscope serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveStore, "store-path", "", "SQLite store directory (overrides config)")
	serveCmd.Flags().BoolVar(&serveInMemory, "in-memory", false, "use a volatile in-memory store")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveStore != "" {
		cfg.Store.Path = serveStore
	}
	if serveInMemory {
		cfg.Store.InMemory = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log := logging.New(cfg.Logging)

	classifier, err := classify.NewProvider(cfg.Classifier)
	if err != nil {
		return fmt.Errorf("configure classifier: %w", err)
	}
	log.Info().Str("provider", classifier.Name()).Msg("classifier configured")

	var st store.Store
	if cfg.Store.InMemory {
		st = store.NewMemoryStore()
	} else {
		st, err = store.OpenSQLite(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("store close failed")
		}
	}()

	p := pipeline.New(cfg, classifier, st, log)
	srv := server.New(cfg.Server, p, st, p.Regions(), log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
