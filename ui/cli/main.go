// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/seriousbug/littletools/buildvars"
	"github.com/seriousbug/littletools/internal/config"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/internal/logging"
	"github.com/seriousbug/littletools/ui/tui"
	"github.com/seriousbug/littletools/ui/tui/clipboard"
	"github.com/seriousbug/littletools/ui/tui/models/views/shell"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errReported is returned by commands that already wrote their error to
// stderr, so Execute does not print it a second time.
var errReported = errors.New("error reported")

// app is the state shared by the commands of one root command.
type app struct {
	cfgFile string
	verbose bool

	config    config.Config
	logCloser io.Closer

	// replaced in tests
	now        func() time.Time
	isTerminal func() bool
	runTUI     func(tui.Options) error
}

func newApp() *app {
	return &app{
		now: time.Now,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		runTUI: tui.Run,
	}
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
		return err
	}
	return nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "littletools",
		Short: "Little Tools is a set of small, private utilities for everyday tasks.",
		Long: `Little Tools bundles a Base64 encoder/decoder and a Unix timestamp
converter. Nothing leaves your machine.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}
	cmd.Version = compositeVersion()

	// Define flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("language", "en", `UI language ("en", "de")`)
	flags.String("timezone", "Local", `IANA time zone used to show dates, e.g. "Europe/Berlin"`)
	flags.String("start-page", shell.PathAbout, "Page shown when the TUI starts (/, /timestamp, /base64)")
	flags.Bool("clipboard", true, "Allow the Copy button to write to the system clipboard")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file")

	cmd.AddCommand(
		newBase64Cmd(),
		newTimestampCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and prepares logging and i18n for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	cfgPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, used, err := config.LoadConfig[config.Config](cmd, config.Defaults(), config.FlagKeys, cfgPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.config = cfg

	// the TUI owns the terminal, its logs go to log.file or nowhere
	var fallback io.Writer = cmd.ErrOrStderr()
	if cmd == cmd.Root() {
		fallback = nil
	}
	a.logCloser, err = logging.Setup(logging.Options{
		Level:    cfg.Log.Level,
		File:     cfg.Log.File,
		Fallback: fallback,
		Debug:    a.verbose,
	})
	if err != nil {
		return err
	}

	i18n.Init(cfg.Language)
	if used != "" {
		logging.Debugf("using config file %s", used)
	}
	return nil
}

func (a *app) runInteractive() error {
	if !a.isTerminal() {
		return errors.New(i18n.T("cli.not_a_terminal"))
	}
	loc, err := a.config.Location()
	if err != nil {
		return err
	}
	return a.runTUI(tui.Options{
		Version: buildvars.VersionOrDefault(version),
		Shell: shell.Options{
			StartPage: a.config.StartPage,
			Location:  loc,
			Now:       a.now,
			Clipboard: clipboard.New(a.config.Clipboard),
		},
	})
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}
