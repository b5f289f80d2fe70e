// schemagen exports the upstream BendV3 schemas as a JSON Schema fixture and
// checks the Go mirror of the BendV3 contract for drift.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bookstrack/contracts/internal/config"
	"github.com/bookstrack/contracts/internal/generator"
	"github.com/bookstrack/contracts/internal/logging"
	"github.com/bookstrack/contracts/internal/source"
)

// app carries state shared by the subcommands
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	src    source.Source

	verbose    bool
	envDir     string
	bendv3Path string
	subpath    string
	exports    map[string]string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "schemagen",
		Short: "Export BendV3 schemas and check the Go mirror for drift",
		Long: `schemagen loads the schema module of a BendV3 checkout, translates the
configured exports to JSON Schema (Draft-07) and writes them to
test/fixtures/bendv3_schemas.json. The drift command compares the Go mirror in
internal/mirror against that fixture or a live upstream load.

Configuration comes from the environment (BENDV3_PATH, BENDV3_EXPORTS,
SCHEMAGEN_OUTPUT, ...), optionally via .env and .env.local files. Flags win.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.envDir, "env-dir", ".", "Directory holding .env and .env.local")
	flags.StringVar(&a.bendv3Path, "bendv3-path", "", "BendV3 checkout or base URL (overrides BENDV3_PATH)")
	flags.StringVar(&a.subpath, "subpath", "", "Schema module inside the checkout (overrides BENDV3_SCHEMA_SUBPATH)")
	flags.StringToStringVar(&a.exports, "export", nil, "Entity=Export pairs, same syntax as BENDV3_EXPORTS (overrides it)")

	root.AddCommand(a.generateCmd(), a.driftCmd(), a.validateCmd(), versionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	config.LoadEnvFiles(a.envDir)
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if a.bendv3Path != "" {
		cfg.BendV3Path = a.bendv3Path
	}
	if a.subpath != "" {
		cfg.SchemaSubpath = a.subpath
	}
	if len(a.exports) > 0 {
		cfg.Exports = a.exports
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	if a.logger, err = logging.New(level); err != nil {
		return err
	}

	if a.src == nil {
		a.src = source.NewAuto(&http.Client{Timeout: cfg.LoadTimeout})
	}
	return nil
}

func (a *app) options(output string) generator.Options {
	return generator.Options{
		Root:        a.cfg.BendV3Path,
		Subpath:     a.cfg.SchemaSubpath,
		Exports:     generator.ExportsFromMap(a.cfg.Exports),
		Output:      output,
		LoadTimeout: a.cfg.LoadTimeout,
	}
}

// hint suggests the override for errors caused by a missing or outdated
// checkout
func hint(err error) string {
	var loadErr *source.SchemaLoadError
	var notFound *source.SchemaNotFoundError
	if errors.As(err, &loadErr) || errors.As(err, &notFound) {
		return "Set BENDV3_PATH to the location of your bendv3 checkout."
	}
	return ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if h := hint(err); h != "" {
		fmt.Fprintln(os.Stderr, h)
	}
	stop()
	os.Exit(1)
}
