// internal/commands/show.go
package gradegen

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gradegen/internal/artifact"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <artifact>",
	Short: "Summarize a generated evaluation artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		art, err := artifact.Read(args[0])
		if err != nil {
			return err
		}

		// Every graded submission appears in the artifact, so grade rows
		// stand in for the source set when classifying comparisons.
		graded := make(map[string]struct{}, len(art.Grades))
		for _, g := range art.Grades {
			graded[g.SubmissionID] = struct{}{}
		}
		inSet, external := art.External(func(id string) bool {
			_, ok := graded[id]
			return ok
		})

		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
		labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

		fmt.Println(titleStyle.Render(fmt.Sprintf("Artifact %s", art.ID)))
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Source:           %s", art.Source)))
		if art.Description != "" {
			fmt.Println(labelStyle.Render(fmt.Sprintf("  Description:      %s", art.Description)))
		}
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Created:          %s", time.UnixMilli(art.CreatedAt).Format(time.RFC3339))))
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Accuracy target:  %.0f%%", art.AccuracyTarget*100)))
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Seed:             %d", art.Seed)))
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Grades:           %d", len(art.Grades))))
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Comparisons:      %d (%d in-set, %d anchor)", len(art.Comparisons), len(inSet), len(external))))
		fmt.Println(labelStyle.Render(fmt.Sprintf("  Call records:     %d", len(art.Calls))))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
