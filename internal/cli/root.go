package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardinalkit/surveybuilder/internal/config"
	"github.com/cardinalkit/surveybuilder/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Drafts service.DraftService
	Import service.ImportService
	Export service.ExportService

	Config config.Config
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command only starts the TUI when it is.
	IsInteractive func() bool
}

// Wire builds an App for cfg. The returned function releases whatever the
// App holds open (database, log file).
type Wire func(cfg config.Config) (*App, func() error, error)

// NewRootCmd creates the top-level "surveybuilder" command. Services are
// wired lazily so that --db can change the store before anything opens it.
func NewRootCmd(cfg config.Config, wire Wire) *cobra.Command {
	app := &App{}
	var closeApp func() error

	root := &cobra.Command{
		Use:   "surveybuilder",
		Short: "Terminal survey builder with local draft recovery",
		Long: `Build FHIR questionnaires in the terminal.

The survey being edited is saved locally after every change. If the
program exits with an unfinished survey, the next start offers to
resume it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, closer, err := wire(cfg)
			if err != nil {
				return err
			}
			*app = *built
			closeApp = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeApp == nil {
				return nil
			}
			return closeApp()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the survey editor needs an interactive terminal; see --help for scripted commands")
			}
			return runTUI(cmdContext(cmd), app)
		},
	}

	root.PersistentFlags().AddFlagSet(storeFlags(&cfg))

	root.AddCommand(
		newDraftCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}

// storeFlags binds the flags that override the store configuration.
func storeFlags(cfg *config.Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("store", pflag.ContinueOnError)
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the local draft store")
	fs.BoolVar(&cfg.Compress, "compress", cfg.Compress, "zstd-compress saved drafts")
	return fs
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
