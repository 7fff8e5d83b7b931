package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wpgen/cli/internal/config"
	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/output"
)

var configInitForce bool

const configHeader = `# wp-gen configuration.
# Every value can be overridden by a WPGEN_* environment variable or a flag.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default wp-gen configuration to ~/.wp-gen/config.yaml,
or to the path given by --config or WPGEN_CONFIG.

Examples:
  # Initialize configuration
  wp-gen config init

  # Overwrite existing configuration
  wp-gen config init --force`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return exitError(fmt.Errorf("could not determine home directory: %w: %w", oerrors.ErrNotFound, err))
	}
	path, err := config.ExpandPath(resolved.Value)
	if err != nil {
		return exitError(fmt.Errorf("could not expand config path: %w: %w", oerrors.ErrNotFound, err))
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return exitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return exitError(fmt.Errorf("encoding default configuration: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return exitError(fmt.Errorf("could not create %s: %w", filepath.Dir(path), err))
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return exitError(fmt.Errorf("could not write %s: %w", path, err))
	}

	output.Debug("wrote configuration", "path", path, "source", resolved.Source)
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))

	return nil
}
