package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"rubra/engine"
	"rubra/render"
	"rubra/settings"
)

func (a *app) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change engine settings",
	}

	var showEngine bool
	setCmd := &cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change a setting and re-apply it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: want true or false", args[1])
			}
			return a.change(args[0], func(*settings.Store) bool { return on }, showEngine)
		},
	}
	setCmd.Flags().BoolVar(&showEngine, "show-engine", false, "Print the resulting engine state")

	toggleCmd := &cobra.Command{
		Use:   "toggle <key>",
		Short: "Flip a setting and re-apply it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.change(args[0], func(s *settings.Store) bool {
				v, _ := s.Get(args[0])
				return v != settings.True
			}, showEngine)
		},
	}
	toggleCmd.Flags().BoolVar(&showEngine, "show-engine", false, "Print the resulting engine state")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List settings by category",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				return a.printDocument(store.Document())
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				v, ok := store.Get(args[0])
				if !ok {
					return fmt.Errorf("unknown setting %q", args[0])
				}
				fmt.Fprintln(a.out, v)
				return nil
			},
		},
		setCmd,
		toggleCmd,
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.cfg.SettingsPath()
				if err != nil {
					return err
				}
				store, err := settings.Open(path, a.logger)
				if err == nil {
					return store.Reset()
				}
				if !errors.Is(err, settings.ErrInvalidDocument) {
					return err
				}
				// A corrupt file cannot be opened, so overwrite it directly.
				if err := settings.Save(path, settings.Default()); err != nil {
					return err
				}
				a.logger.WithField("path", path).Warn("Replaced corrupt settings file with defaults")
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.cfg.SettingsPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "engine",
			Short: "Print the engine state the current settings produce",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				var profile engine.Profile
				settings.Attach(store, &profile, settings.NewApplier(a.logger))()
				return a.printProfile(&profile)
			},
		},
	)
	return cmd
}

// change runs one toggle through the store: set, save, re-apply.
func (a *app) change(key string, value func(*settings.Store) bool, showEngine bool) error {
	if _, ok := settings.ParseKey(key); !ok {
		a.logger.WithField("key", key).Warn("Setting is not recognised by the engine")
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}

	var profile engine.Profile
	detach := settings.Attach(store, &profile, settings.NewApplier(a.logger))
	defer detach()

	ok, err := store.Toggle(key, value(store))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}

	v, _ := store.Get(key)
	fmt.Fprintf(a.out, "%s = %s\n", key, v)
	if showEngine {
		return a.printProfile(&profile)
	}
	return nil
}

func (a *app) printDocument(doc *settings.Document) error {
	tbl := render.NewTable("Setting", "Value")
	for _, c := range doc.Categories {
		tbl.AddSection(c.Name)
		for _, s := range c.Settings {
			tbl.AddRow(s.Key, s.Value)
		}
	}

	width := 0
	if f, ok := a.out.(*os.File); ok && render.IsTerminal(f) {
		width = render.Width(f)
	}
	return tbl.Render(a.out, width)
}

func (a *app) printProfile(p *engine.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
