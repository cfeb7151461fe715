package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/expenses/internal/config"
	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/tracker"
	"github.com/idilsaglam/expenses/internal/tui"
	"github.com/idilsaglam/expenses/internal/ui"
)

const defaultConfigFile = "expenses.yaml"

func newAddCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "add <expense...>",
		Short:   "Add an expense (words are joined with spaces)",
		Example: `  expenses add "Coffee 4.50"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, f, func(s *session) error {
				if _, err := s.tracker.SubmitText(cmd.Context(), s.state, strings.Join(args, " ")); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "added")
				return nil
			})
		},
	}
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List expenses with their 1-based index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, f, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(listLines(s.state)))
				return nil
			})
		},
	}
}

func newRemoveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"delete"},
		Short:   "Remove the expense at a 1-based index",
		Example: "  expenses rm 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("rm: not a number: %s", args[0])
			}
			return withSession(cmd, f, func(s *session) error {
				sel := tracker.NoSelection
				if n >= 1 && n <= s.state.Len() {
					sel = tracker.Select(n - 1)
				}
				if _, err := s.tracker.RequestDelete(cmd.Context(), s.state, sel); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "removed")
				return nil
			})
		},
	}
}

func newThemeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, f, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.state.Theme)
				return nil
			})
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, f, func(s *session) error {
					next, err := s.tracker.ToggleTheme(cmd.Context(), s.state)
					if err != nil {
						return err
					}
					ui.OK(cmd.OutOrStdout(), next.Theme.String()+" mode")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Set the theme explicitly",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"light", "dark"},
			RunE: func(cmd *cobra.Command, args []string) error {
				var theme model.Theme
				switch strings.ToLower(args[0]) {
				case "light":
					theme = model.Light
				case "dark":
					theme = model.Dark
				default:
					return usagef("theme: want light or dark, got %q", args[0])
				}
				return withSession(cmd, f, func(s *session) error {
					if _, err := s.tracker.SetTheme(cmd.Context(), s.state, theme); err != nil {
						return err
					}
					ui.OK(cmd.OutOrStdout(), theme.String()+" mode")
					return nil
				})
			},
		},
	)
	return cmd
}

func newKeysCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the interactive key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, f, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMarkdown(tui.HelpMarkdown, s.state.Theme, 80))
				return nil
			})
		},
	}
}

func newConfigCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the YAML config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective config as YAML (default expenses.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			switch {
			case len(args) == 1:
				path = args[0]
			case f.configPath != "":
				path = f.configPath
			}
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			if f.dataDir != "" {
				cfg.DataDir = f.dataDir
			}
			if f.backend != "" {
				cfg.Backend = strings.ToLower(f.backend)
			}
			if err := cfg.Validate(); err != nil {
				return usagef("config: %v", err)
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	})
	return cmd
}

// -------------- rendering helpers --------------

func listLines(st tracker.State) []string {
	lines := []string{fmt.Sprintf("Expenses  %s", ui.Muted(fmt.Sprintf("Total %d", st.Len()))), ""}
	if st.Len() == 0 {
		lines = append(lines, ui.Muted("no expenses"))
	}
	for i, e := range st.Entries {
		text := e.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s", ui.Muted(fmt.Sprintf("%2d.", i+1)), text))
	}
	lines = append(lines, "", ui.Muted(`Tip: add with expenses add "Coffee 4.50"`))
	return lines
}

func isCobraUsage(err error) bool {
	msg := err.Error()
	for _, p := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "accepts ", "requires at least", "invalid argument"} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
