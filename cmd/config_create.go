package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Write the example configuration (the built-in mapping and defaults) to the
active config path so it can be adjusted for a different export layout.

An existing configuration file is never overwritten.`,
	Example: `
  # Create default config at $HOME/.traysheet.yaml
  traysheet config create

  # Create a project-specific config
  traysheet --configFile ./.traysheet.yaml config create
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createConfigFile(cmd.OutOrStdout())
	},
}

func createConfigFile(out io.Writer) error {
	configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(out, "Config file already exists at: %s\n", configPath)
		return nil
	}
	fmt.Fprintf(out, "New config file created at: %s\n", configPath)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
