// Package cli implements the deckgen command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasuya3/INT-YAMAE/config"
	"github.com/kasuya3/INT-YAMAE/export"
	"github.com/kasuya3/INT-YAMAE/logger"
)

// Exit codes.
const (
	exitSuccess = 0
	exitFailure = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	outputDir  string
	logDir     string
	verbose    bool
}

// NewRootCmd creates the top-level "deckgen" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate the logistics proposal decks",
		Long:  "deckgen writes the logistics solution proposal, its collaboration plan and\nthe redesigned visual deck as .pptx files.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/deckgen.yaml)")
	root.PersistentFlags().StringVar(&flags.outputDir, "output-dir", "", "directory for generated files (default: .)")
	root.PersistentFlags().StringVar(&flags.logDir, "log-dir", "", "directory for run logs (default: logs)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "echo the run log to stderr")

	root.AddCommand(newBuildCmd(&flags))
	root.AddCommand(newInspectCmd())
	root.AddCommand(newRenderCmd(&flags))
	root.AddCommand(newWorkbookCmd(&flags))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

// session is the loaded configuration plus the run log of one command.
type session struct {
	cfg config.Config
	log *logger.Logger
	out export.Logger
}

// openSession loads the configuration and starts the run log.
func openSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg, err := config.Load(flags.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			return nil, err
		}
	}
	s := &session{cfg: cfg, log: log, out: log}
	if cfg.Verbose {
		s.out = teeLogger{log: log, w: cmd.ErrOrStderr()}
	}
	s.out.Logf("[CONFIG] output=%s assets=%s page=%.3fx%.3f", cfg.OutputDir, cfg.AssetDir, cfg.PageWidth, cfg.PageHeight)
	return s, nil
}

func (s *session) options(title string) export.Options {
	return export.Options{Grid: s.cfg.Grid(), Logger: s.out, Title: title, Creator: s.cfg.Creator}
}

func (s *session) close() {
	s.log.Close()
}

// teeLogger copies run-log lines to a writer.
type teeLogger struct {
	log *logger.Logger
	w   io.Writer
}

func (t teeLogger) Logf(format string, args ...interface{}) {
	t.log.Logf(format, args...)
	fmt.Fprintf(t.w, format+"\n", args...)
}
