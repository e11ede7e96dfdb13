package cmd

import (
	"fmt"
	"strconv"

	"finq/internal/config"
	"finq/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	trailing := strconv.Itoa(cfg.General.TrailingMonths)
	themeName := cfg.Appearance.Theme

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Folder holding actuals.csv, budget.csv, fx.csv, cash.csv").
				Value(&dataDir),
			huh.NewSelect[string]().
				Title("Burn-rate window").
				Description("Trailing months used for cash runway").
				Options(
					huh.NewOption("3 months", "3"),
					huh.NewOption("6 months", "6"),
					huh.NewOption("12 months", "12"),
				).
				Value(&trailing),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.General.DataDir = dataDir
	if n, err := strconv.Atoi(trailing); err == nil && n > 0 {
		cfg.General.TrailingMonths = n
	}
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `finq setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
