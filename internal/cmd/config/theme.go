package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

func newThemeCmd() *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage color themes",
		Long: `Manage color themes for the board.

The board supports both built-in themes and custom user-defined themes.
Custom themes are stored in ~/.config/kanban/themes/ as YAML files.

Use 'theme list' to see all available themes.
Use 'theme export' to create a template for custom themes.
Use 'theme info' to view details about a specific theme.`,
	}

	themeCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all available themes",
			RunE:  runThemeList,
		},
		&cobra.Command{
			Use:   "export <theme-name> [output-file]",
			Short: "Export a theme to YAML",
			Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  kanban config theme export default                 # Print default theme to stdout
  kanban config theme export dracula my-theme.yaml   # Save dracula theme to file`,
			Args: cobra.RangeArgs(1, 2),
			RunE: runThemeExport,
		},
		&cobra.Command{
			Use:   "info <theme-name>",
			Short: "Show information about a theme",
			Args:  cobra.ExactArgs(1),
			RunE:  runThemeInfo,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show the custom themes directory path",
			RunE:  runThemePath,
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a new custom theme from the default template",
			Long: `Create a new custom theme file in your themes directory.

Example:
  kanban config theme create solarized
  # Creates ~/.config/kanban/themes/solarized.yaml`,
			Args: cobra.ExactArgs(1),
			RunE: runThemeCreate,
		},
	)
	return themeCmd
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Discover custom themes and report any load errors
	_, loadErrs := styles.DiscoverCustomThemes()
	if len(loadErrs) > 0 {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(errOut, "  - %v\n", err)
		}
		fmt.Fprintln(errOut)
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if customNames := styles.CustomThemeNames(); len(customNames) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range customNames {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme == nil {
				continue
			}
			if theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", styles.ThemesDir())
	return nil
}

// lookupTheme discovers custom themes and checks that name is usable. A
// custom theme that exists but failed to load is reported with its error.
func lookupTheme(name string) error {
	_, loadErrs := styles.DiscoverCustomThemes()
	if styles.IsValidTheme(name) {
		return nil
	}
	for _, err := range loadErrs {
		errStr := err.Error()
		for _, prefix := range []string{name + ".yaml:", name + ".yml:", name + ":"} {
			if strings.HasPrefix(errStr, prefix) {
				return fmt.Errorf("theme '%s' exists but failed to load: %v\n\nFix the errors in your theme file and try again", name, err)
			}
		}
	}
	return fmt.Errorf("unknown theme: %s\n\nRun 'kanban config theme list' to see available themes.\nCustom themes should be placed in: %s", name, styles.ThemesDir())
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if err := lookupTheme(themeName); err != nil {
		return err
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if err := lookupTheme(themeName); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Theme: %s\n", themeName)
	fmt.Fprintln(out)

	if styles.IsBuiltinTheme(themeName) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: Custom")
		if theme := styles.GetCustomTheme(styles.ThemeName(themeName)); theme != nil {
			if theme.Author != "" {
				fmt.Fprintf(out, "Author: %s\n", theme.Author)
			}
			if theme.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", theme.Description)
			}
		}
	}

	palette := styles.GetPalette(styles.ThemeName(themeName))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Base Colors:")
	fmt.Fprintf(out, "  Primary:   %s\n", palette.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", palette.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", palette.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", palette.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", palette.Muted)
	fmt.Fprintf(out, "  Surface:   %s\n", palette.Surface)
	fmt.Fprintf(out, "  Text:      %s\n", palette.Text)
	fmt.Fprintf(out, "  Border:    %s\n", palette.Border)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Column Colors:")
	fmt.Fprintf(out, "  To Do:       %s\n", palette.ColumnTodo)
	fmt.Fprintf(out, "  In Progress: %s\n", palette.ColumnInProgress)
	fmt.Fprintf(out, "  Done:        %s\n", palette.ColumnDone)

	return nil
}

func runThemePath(cmd *cobra.Command, args []string) error {
	themesDir := styles.ThemesDir()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, themesDir)

	if _, err := os.Stat(themesDir); os.IsNotExist(err) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: This directory does not exist yet.")
		fmt.Fprintln(out, "It will be created when you add your first custom theme.")
	}
	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\:*?\"<>| ") {
		return fmt.Errorf("theme name contains invalid characters")
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	themePath := filepath.Join(styles.ThemesDir(), name+".yaml")
	if _, err := os.Stat(themePath); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, themePath)
	}

	theme := styles.ThemeFromPalette(capitalizeFirst(name), styles.DefaultPalette())
	theme.Description = "A custom kanban theme"

	if err := styles.SaveTheme(name, theme); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created new theme: %s\n", themePath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Edit this file to customize your theme colors.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "To use your new theme, run:\n")
	fmt.Fprintf(out, "  kanban config set tui.theme %s\n", name)
	return nil
}

// capitalizeFirst capitalizes the first character of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
