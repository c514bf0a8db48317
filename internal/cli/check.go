package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimscope/claimscope/internal/classify"
	"github.com/claimscope/claimscope/internal/logging"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/store"
)

var (
	checkLocation string
	checkTimeout  time.Duration
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Verify a single claim and print the verdict",
	Long: `Check runs the full verification pipeline once for the given claim
and prints the result as JSON. History is kept in a volatile in-memory
store, so nothing is persisted across invocations.

Example:
  claimscope check "WHO recommends vaccination"
  claimscope check "Free electricity announced" --location "Kerala"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkLocation, "location", "", "caller-supplied location hint")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "overall check timeout")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	log := logging.New(cfg.Logging)

	classifier, err := classify.NewProvider(cfg.Classifier)
	if err != nil {
		return fmt.Errorf("configure classifier: %w", err)
	}

	st := store.NewMemoryStore()
	p := pipeline.New(cfg, classifier, st, log)

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	result, err := p.Check(ctx, args[0], checkLocation)
	if err != nil {
		return fmt.Errorf("check claim: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
