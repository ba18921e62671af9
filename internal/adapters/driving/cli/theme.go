package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

const themeToggle = "toggle"

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the colour theme",
	Long:      `Without an argument, prints the current theme. The choice is remembered across runs.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), themeToggle},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if themeService == nil {
		return errors.New("theme service not configured")
	}
	ctx := cmd.Context()

	var (
		theme domain.Theme
		err   error
	)
	switch {
	case len(args) == 0:
		theme, err = themeService.Current(ctx)
	case args[0] == themeToggle:
		theme, err = themeService.Toggle(ctx)
	default:
		theme, err = domain.ParseTheme(args[0])
		if err == nil {
			err = themeService.Apply(ctx, theme)
		}
	}
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	cmd.Printf("Theme: %s\n", theme)
	return nil
}
