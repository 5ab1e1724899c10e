package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage traysheet configuration file values.",
	Long: `Create, edit and display the traysheet configuration file.

The configuration stores the column mapping and conversion defaults:
- mapping.<field>.primary / fallbacks
- columns.stock / availability / title / handle / weight_unit
- defaults.lead_time / product_id_offset / name_prefix / active_marker / ...
- csv.delimiter / encoding / missing_values
- output.sheet_name / extension / min_column_width / column_padding`,
	Example: `
  # Create default config in $HOME/.traysheet.yaml
  traysheet config create

  # Show effective config and source file
  traysheet config show

  # Open active config in editor (creates example if missing)
  traysheet config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
