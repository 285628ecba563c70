package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/notegen/internal/markdown"
)

var (
	previewStyle string
	previewWidth int
)

var previewCmd = &cobra.Command{
	Use:   "preview <note.md>",
	Short: "Renders a note in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read note: %w", err)
		}
		out, err := markdown.RenderTerminal(src, markdown.TerminalOptions{
			Style:    previewStyle,
			WordWrap: previewWidth,
		})
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "Glamour style (dark, light, notty); detected from the terminal if empty")
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 80, "Word wrap width")
	rootCmd.AddCommand(previewCmd)
}
