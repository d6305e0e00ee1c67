// Rubra is a minimal browser shell: an address bar that turns free-form
// text into a destination, and a persisted set of engine settings.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rubra/config"
	"rubra/engine/chrome"
	"rubra/omnibox"
	"rubra/settings"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// app carries what every command needs once flags are parsed.
type app struct {
	out    io.Writer
	cfg    *config.Config
	logger *logrus.Logger
	parser *omnibox.Parser

	configPath   string
	settingsPath string
	logLevel     string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "rubra",
		Short:         "Rubra - a minimal browser shell",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Configuration file path")
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "Engine settings file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.resolveCmd(),
		a.openCmd(),
		a.settingsCmd(),
		initConfigCmd(out),
	)
	return root
}

func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("%s", config.FormatError(err))
	}

	if a.settingsPath != "" {
		a.cfg.Settings.Path = a.settingsPath
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	a.logger = newLogger(a.cfg.Log)
	a.parser = omnibox.NewParser()
	a.parser.SetDefaultSearch(a.cfg.Search.Template)
	return nil
}

func newLogger(cfg config.Log) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	switch cfg.Level {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// openStore opens the settings file. A corrupt file is an error the
// process exits on; it is never silently replaced.
func (a *app) openStore() (*settings.Store, error) {
	path, err := a.cfg.SettingsPath()
	if err != nil {
		return nil, fmt.Errorf("locating settings file: %w", err)
	}
	store, err := settings.Open(path, a.logger)
	if err != nil {
		return nil, fmt.Errorf("%w (fix or remove the file, or run 'rubra settings reset')", err)
	}
	return store, nil
}

func (a *app) resolveCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "resolve <text...>",
		Short: "Resolve address bar text to a destination",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.parser.Classify(strings.Join(args, " "))
			if explain {
				fmt.Fprintf(a.out, "%s\t%s\n", res.Kind, res.URL)
				return nil
			}
			fmt.Fprintln(a.out, res.URL)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show how the input was classified")
	return cmd
}

func (a *app) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [text...]",
		Short: "Open address bar text in the engine with the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.cfg.Engine.HomePage
			if len(args) > 0 {
				target = a.parser.Resolve(strings.Join(args, " "))
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			browser := chrome.New(chrome.Options{
				ChromePath: a.cfg.Engine.ChromePath,
				UserAgent:  a.cfg.Engine.UserAgent,
				Timeout:    a.cfg.Timeout(),
				Headless:   a.cfg.IsHeadless(),
			}, a.logger)
			browser.SetConsole(a.out)
			detach := settings.Attach(store, browser, settings.NewApplier(a.logger))
			defer detach()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			page, err := browser.Open(ctx, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\n%s\n", page.URL, page.Title)
			return nil
		},
	}
}

func initConfigCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Print the default configuration file",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(out, config.DefaultTOML())
			return err
		},
	}
}
