/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"traysheet/config"
)

var (
	cfgFile      string
	inputFormat  string
	outputFormat string

	// configErr keeps a config file read failure until a command needs config.
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "traysheet <input.csv> [output.xls]",
	Short: "Convert product catalog CSV exports into the Tray product import sheet.",
	Long: `
**********************************************
*              TRAYSHEET                     *
**********************************************

Reads a product catalog export (for example a Shopify products CSV), maps its
columns onto the twelve columns of the Tray product import template and writes
a spreadsheet with a styled header row.

Column mapping, default values and output settings can be changed in the
configuration file (see "traysheet config create").

When the output path is omitted, the input path is reused with the configured
output extension (default ".xls").
`,
	Example: `
  # Convert a CSV export next to the source file (products.xls)
  traysheet products.csv

  # Choose the output file
  traysheet products.csv ./tray/import.xlsx

  # Preview the converted rows as CSV
  traysheet products.csv ./preview.csv

  # Read a Windows-1252 export with a custom config file
  traysheet --configFile ./latin1.yaml products.csv
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid at this point; runtime errors need no usage text.
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		options := convertOptions{
			InputPath:    args[0],
			InputFormat:  inputFormat,
			OutputFormat: outputFormat,
		}
		if len(args) > 1 {
			options.OutputPath = args[1]
		}

		return runConvert(cmd.OutOrStdout(), *cfg, options)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Progress, warnings and usage text all go to stdout; cobra keeps error
	// messages on stderr.
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.traysheet.yaml, then ./.traysheet.yaml)")
	rootCmd.Flags().StringVarP(&inputFormat, "input-format", "i", "", "Input format: csv|excel (optional, inferred from input extension)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: excel|csv (optional, inferred from output extension)")
}

func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	return config.LoadAndValidate()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = nil
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".traysheet" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".traysheet")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Built-in defaults apply when no config file is discovered. An explicit
	// --configFile must be readable.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("read config file: %w", err)
		}
	}
}
