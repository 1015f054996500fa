// Package cmd provides the root command and CLI setup for prefix-by-date.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mouse-blink/prefix-by-date/internal/adapter"
	"github.com/mouse-blink/prefix-by-date/internal/config"
	"github.com/mouse-blink/prefix-by-date/internal/controller"
	"github.com/mouse-blink/prefix-by-date/internal/domain"
	"github.com/mouse-blink/prefix-by-date/internal/logging"
	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var reportStore adapter.ReportStore
var renameFS adapter.RenameFS
var newUI = controller.NewUI
var now = time.Now
var logger = zap.NewNop()

func init() {
	reportStore = adapter.NewReportStore()
	renameFS = adapter.NewLocalRenameFS()
}

// Metadata flag values.
const (
	metadataNone     = "none"
	metadataCreated  = "created"
	metadataModified = "modified"
	metadataBoth     = "both"
)

type rootOptions struct {
	configDir   string
	today       bool
	withTime    bool
	noTime      bool
	interactive string
	metadata    string
	verbosity   int
	report      string
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "prefix-by-date [paths...]",
		Short: "Prefix file names with a date",
		Long: `prefix-by-date renames files so their name starts with a date.

The date is found by the matchers enabled in config.toml, in order:
  - today's date (--today)
  - the configured regular expression patterns
  - the file creation then modification time (--metadata)

Every rename is confirmed through the selected interface (--interactive).
Existing files are never overwritten.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
	}

	cmd.Flags().StringVarP(&opts.configDir, "config", "C", "", "configuration directory (default $XDG_CONFIG_HOME/prefix-by-date)")
	cmd.Flags().BoolVar(&opts.today, "today", false, "prefix by today's date")
	cmd.Flags().BoolVar(&opts.withTime, "time", false, "include the time in the default format")
	cmd.Flags().BoolVar(&opts.noTime, "no-time", false, "only use the date in the default format")
	cmd.Flags().StringVarP(&opts.interactive, "interactive", "i", "", "interface to confirm renames: off, text or tui (default text on a terminal, off otherwise)")
	cmd.Flags().StringVarP(&opts.metadata, "metadata", "m", "", "use file timestamps: none, created, modified or both")
	cmd.Flags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	cmd.Flags().StringVar(&opts.report, "report", "", "save the outcome of the batch to this YAML file")
	cmd.MarkFlagsMutuallyExclusive("time", "no-time")

	cmd.AddCommand(newReportCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	env, err := config.LoadEnvironment()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configDir, env)
	if err != nil {
		return err
	}

	if err := opts.apply(cmd, &cfg); err != nil {
		return err
	}

	kind, err := opts.kind()
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Verbosity: opts.verbosity,
		Level:     env.LogLevel,
		Console:   kind != controller.KindTUI,
		File:      cfg.LogFile,
	})
	if err != nil {
		return err
	}

	logger = log

	chain, err := domain.BuildMatchers(cfg, now(), log)
	if err != nil {
		return fmt.Errorf("failed to build matchers: %w", err)
	}

	journal := adapter.NewJournalReporter()
	reporters := domain.NewReporters(log, adapter.NewLogReporter(log), journal)

	ui := newUI(kind, cmd)
	if err := ui.Start(controller.WithMatchers(chain)); err != nil {
		return fmt.Errorf("failed to start interface: %w", err)
	}

	processing := domain.NewProcessing(
		domain.Compose(ui, reporters),
		chain,
		m.Paths(args),
		domain.WithFS(renameFS),
		domain.WithLogger(log),
	)

	runErr := processing.Run()

	ui.Close()
	ui.Wait()

	if opts.report != "" {
		batch := journal.Finish(errors.Is(runErr, domain.ErrAbort))
		if err := reportStore.SaveJournal(m.Path(opts.report), batch); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		log.Info("Report saved", zap.String("path", opts.report), zap.String("batch", batch.BatchID))
	}

	return runErr
}

// loadConfig reads config.toml from the -C directory or the one implied by
// the environment. Without either the defaults are used.
func loadConfig(override string, env config.Environment) (config.Config, error) {
	fallback, err := env.DefaultDir()
	if err != nil && !errors.Is(err, config.ErrNoConfigDir) {
		return config.Config{}, err
	}

	dir := config.ResolveDir(override, fallback)
	if dir == "" {
		return config.Default(), nil
	}

	return config.Load(dir)
}

// apply overrides the configuration with the flags set on the command line.
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if o.today {
		cfg.Matchers.PredeterminedDate.Today = true
	}

	if flags.Changed("time") {
		cfg.Time = o.withTime
	}

	if flags.Changed("no-time") {
		cfg.Time = !o.noTime
	}

	switch o.metadata {
	case "":
	case metadataNone:
		cfg.Matchers.Metadata.Created, cfg.Matchers.Metadata.Modified = false, false
	case metadataCreated:
		cfg.Matchers.Metadata.Created, cfg.Matchers.Metadata.Modified = true, false
	case metadataModified:
		cfg.Matchers.Metadata.Created, cfg.Matchers.Metadata.Modified = false, true
	case metadataBoth:
		cfg.Matchers.Metadata.Created, cfg.Matchers.Metadata.Modified = true, true
	default:
		return fmt.Errorf("unknown metadata %q, expected one of none, created, modified or both", o.metadata)
	}

	return nil
}

// kind resolves --interactive. Without the flag a terminal gets the text
// interface and anything else gets none.
func (o *rootOptions) kind() (controller.Kind, error) {
	if o.interactive != "" {
		return controller.ParseKind(o.interactive)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return controller.KindText, nil
	}

	return controller.KindOff, nil
}
