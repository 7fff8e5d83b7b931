// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpgen/cli/internal/config"
	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.Resolved
)

// skipConfigAnnotation marks commands that run without loading the config file.
const skipConfigAnnotation = "wp-gen/skip-config"

// configFlags maps flag names to the config keys they override.
var configFlags = map[string]string{
	"output":         config.KeyOutput,
	"author":         config.KeyAuthor,
	"plugin-version": config.KeyPluginVersion,
	"timestamps":     config.KeyLogTimestamps,
}

// NewRootCmd creates the root command for wp-gen.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wp-gen",
		Short: "WordPress content type plugin generator",
		Long: `wp-gen generates a self-contained WordPress plugin for one custom content
type: post type registration, ACF field group, shortcodes, single and
archive templates, and an installation README.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: WPGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewModuleCmd())
	rootCmd.AddCommand(NewListTypesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and resolves configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(output.LogConfig{Verbose: verboseFlag})
	resolvedConfig = nil

	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return nil
	}

	resolved, err := config.Resolve(config.ResolveOptions{
		ConfigFlag: configFlag,
		Flags:      changedFlags(cmd),
	})
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	resolvedConfig = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: resolved.Config.Log.Timestamps,
	})

	output.Debug("initializing CLI",
		"command", cmd.CommandPath(),
		"config", resolved.ConfigPath.Value,
		"config_source", resolved.ConfigPath.Source,
	)
	config.LogResolvedValues(resolved.Values)

	return nil
}

// changedFlags returns the config-backed flags the user set explicitly.
func changedFlags(cmd *cobra.Command) map[string]string {
	flags := make(map[string]string)
	for name, key := range configFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			flags[key] = f.Value.String()
		}
	}
	return flags
}

// GetConfig returns the effective configuration, or the defaults when
// the current command did not load one.
func GetConfig() *config.Config {
	if resolvedConfig != nil {
		return resolvedConfig.Config
	}
	return config.DefaultConfig()
}
