package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"traysheet/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active traysheet config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

If no config file exists yet, this command creates one with the example template first.
After the editor exits the file is validated. Invalid keys are listed by name
(for example mapping.colour or csv.delimiter) and the file is kept so it can
be fixed. On success the keys that differ from the built-in defaults are shown.`,
	Args: cobra.NoArgs,
	Example: `
  # Edit active config
  traysheet config edit

  # Edit with a specific editor
  EDITOR="code --wait" traysheet config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		editor := resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
		return editConfigFile(cmd.OutOrStdout(), configPath, systemEditor(editor))
	},
}

// editorFunc opens path for interactive editing and returns once the user
// is done.
type editorFunc func(path string) error

func systemEditor(editorValue string) editorFunc {
	return func(path string) error {
		editorCommand, err := buildEditorCommand(editorValue, path)
		if err != nil {
			return err
		}
		editorCommand.Stdin = os.Stdin
		editorCommand.Stdout = os.Stdout
		editorCommand.Stderr = os.Stderr
		return editorCommand.Run()
	}
}

func editConfigFile(out io.Writer, configPath string, openEditor editorFunc) error {
	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "No config file found. Created example config at: %s\n", configPath)
	}

	if err := openEditor(configPath); err != nil {
		return fmt.Errorf("opening editor failed: %w", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading edited config failed: %w", err)
	}

	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		problems := config.Problems(err)
		if len(problems) == 0 {
			return fmt.Errorf("config %s: %w", configPath, err)
		}
		fmt.Fprintf(out, "Configuration kept at %s but it has %d invalid key(s):\n", configPath, len(problems))
		for _, problem := range problems {
			fmt.Fprintf(out, "  %s\n", problem)
		}
		fmt.Fprintln(out, "Run \"traysheet config edit\" again to fix them.")
		return fmt.Errorf("config validation failed in %s", configPath)
	}

	fmt.Fprintf(out, "Configuration saved and validated: %s\n", configPath)

	defaults, err := config.Defaults()
	if err != nil {
		return err
	}
	changed := changedKeys(*defaults, *cfg)
	if len(changed) == 0 {
		fmt.Fprintln(out, "No changes from the built-in defaults.")
		return nil
	}
	fmt.Fprintf(out, "Changed from defaults: %s\n", strings.Join(changed, ", "))
	return nil
}

// changedKeys compares the printed form of two configs and returns the keys
// whose values differ, in printing order.
func changedKeys(base, edited config.Config) []string {
	var before, after bytes.Buffer
	printConfig(&before, base, "")
	printConfig(&after, edited, "")

	baseLines := strings.Split(before.String(), "\n")
	editedLines := strings.Split(after.String(), "\n")

	var keys []string
	for i := range editedLines {
		if i < len(baseLines) && baseLines[i] == editedLines[i] {
			continue
		}
		key, _, ok := strings.Cut(editedLines[i], ": ")
		if ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func resolveEditorValue(visual, editor string) string {
	if strings.TrimSpace(visual) != "" {
		return visual
	}
	if strings.TrimSpace(editor) != "" {
		return editor
	}
	return "vi"
}

func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	args := append(fields[1:], configPath)
	return exec.Command(fields[0], args...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
