package main

import (
	"fmt"
	"os"

	"fspaths/internal/app"
	"fspaths/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config, falling back to defaults when no config file
// exists, and creates an App. The caller must defer app.Close().
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadOrDefault(defaults["config_path"], defaults["base_dir"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:          "fspaths",
	Short:        "Resolve paths that are guaranteed to exist",
	SilenceUsage: true,
}

// dir command
var dirCmd = &cobra.Command{
	Use:   "dir PATH",
	Short: "Print PATH if it is an existing directory, otherwise the temp directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		a, err := newApp("ResolveDirectory")
		if err != nil {
			return err
		}
		defer a.Close()

		dir, err := a.ResolveDirectory(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), dir.String())
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "substituted: %t\n", dir.Substituted())
		}
		return nil
	},
}

// file command
var fileCmd = &cobra.Command{
	Use:   "file PATH",
	Short: "Print PATH if it exists, otherwise an empty temp file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		a, err := newApp("ResolveFile")
		if err != nil {
			return err
		}
		defer a.Close()

		file, err := a.ResolveFile(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), file.String())
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "substituted: %t\n", file.Substituted())
		}
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Log Level: %s\n", cfg.LogLevel)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	dirCmd.Flags().BoolP("verbose", "v", false, "Also report whether the temp directory was substituted")
	fileCmd.Flags().BoolP("verbose", "v", false, "Also report whether the temp file was substituted")

	rootCmd.AddCommand(dirCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(configCmd)
}
