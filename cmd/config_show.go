package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"traysheet/config"
	"traysheet/product"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration.",
	Long: `Display the configuration used for conversions: built-in defaults merged with
the config file (if one was found) and TRAYSHEET_* environment variables.

This command validates the configuration before printing values.`,
	Example: `
  # Show effective configuration
  traysheet config show
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		printConfig(cmd.OutOrStdout(), *cfg, viper.ConfigFileUsed())
		return nil
	},
}

func printConfig(out io.Writer, cfg config.Config, source string) {
	if source == "" {
		source = "(built-in defaults)"
	}
	fmt.Fprintln(out, "Config file loaded from:", source)
	fmt.Fprintln(out, "Configuration:")

	for _, field := range product.Fields() {
		mapping := cfg.MappingFor(field)
		switch field {
		case product.Stock:
			fmt.Fprintf(out, "mapping.%s: columns.stock\n", field.Key())
		case product.LeadTime:
			fmt.Fprintf(out, "mapping.%s: columns.availability\n", field.Key())
		default:
			fmt.Fprintf(out, "mapping.%s.primary: %s\n", field.Key(), mapping.Primary)
			fmt.Fprintf(out, "mapping.%s.fallbacks: %s\n", field.Key(), strings.Join(mapping.Fallbacks, ", "))
		}
	}

	fmt.Fprintf(out, "columns.stock: %s\n", strings.Join(cfg.Columns.Stock, ", "))
	fmt.Fprintf(out, "columns.availability: %s\n", cfg.Columns.Availability)
	fmt.Fprintf(out, "columns.title: %s\n", cfg.Columns.Title)
	fmt.Fprintf(out, "columns.handle: %s\n", cfg.Columns.Handle)
	fmt.Fprintf(out, "columns.weight_unit: %s\n", cfg.Columns.WeightUnit)

	fmt.Fprintf(out, "defaults.lead_time: %s\n", cfg.Defaults.LeadTime)
	fmt.Fprintf(out, "defaults.product_id_offset: %d\n", cfg.Defaults.ProductIDOffset)
	fmt.Fprintf(out, "defaults.name_prefix: %q\n", cfg.Defaults.NamePrefix)
	fmt.Fprintf(out, "defaults.active_marker: %s\n", cfg.Defaults.ActiveMarker)
	fmt.Fprintf(out, "defaults.inactive_marker: %s\n", cfg.Defaults.InactiveMarker)
	fmt.Fprintf(out, "defaults.kilogram_unit: %s\n", cfg.Defaults.KilogramUnit)
	fmt.Fprintf(out, "defaults.kilogram_threshold: %g\n", cfg.Defaults.KilogramThreshold)
	fmt.Fprintf(out, "defaults.grams_per_kilogram: %g\n", cfg.Defaults.GramsPerKilogram)

	fmt.Fprintf(out, "csv.delimiter: %q\n", cfg.CSV.Delimiter)
	fmt.Fprintf(out, "csv.encoding: %s\n", cfg.CSV.Encoding)
	fmt.Fprintf(out, "csv.missing_values: %q\n", cfg.CSV.MissingValues)

	fmt.Fprintf(out, "output.sheet_name: %s\n", cfg.Output.SheetName)
	fmt.Fprintf(out, "output.extension: %s\n", cfg.Output.Extension)
	fmt.Fprintf(out, "output.min_column_width: %g\n", cfg.Output.MinColumnWidth)
	fmt.Fprintf(out, "output.column_padding: %g\n", cfg.Output.ColumnPadding)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
