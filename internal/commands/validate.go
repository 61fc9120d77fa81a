// internal/commands/validate.go
package gradegen

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gradegen/internal/subset"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Validate a submission-set manifest against the embedded schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading submission set: %w", err)
		}

		if err := subset.Validate(raw); err != nil {
			color.Red("FAIL %s", args[0])
			return err
		}

		color.Green("PASS %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
