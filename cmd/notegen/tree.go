package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sevigo/notegen/internal/core"
	"github.com/sevigo/notegen/internal/navtree"
	"github.com/sevigo/notegen/internal/wire"
)

var currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)

var treeCmd = &cobra.Command{
	Use:   "tree [note-path]",
	Short: "Prints the navigation tree",
	Long: `Without arguments, prints every folder and note below the source directory.
With a note or folder path, prints the navigation block that page would carry.
The path may be given relative to the source directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		application, cleanup, err := wire.InitializeApp()
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		root, err := application.Discover(ctx)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Print(navtree.Outline(root))
			return nil
		}

		node := core.Find(root, args[0])
		if node == nil {
			node = core.Find(root, filepath.Join(root.Path(), args[0]))
		}
		if node == nil {
			return fmt.Errorf("no note or folder at %s", args[0])
		}

		text := navtree.RenderReverse(node, node, application.Cfg.TreeDepth, navtree.Options{})
		fmt.Print(highlightCurrent(text))
		return nil
	},
}

// highlightCurrent styles the line that carries the current-node marker.
func highlightCurrent(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSuffix(line, "\n")
		if strings.HasSuffix(trimmed, navtree.CurrentMarker) {
			lines[i] = currentStyle.Render(trimmed) + strings.TrimPrefix(line, trimmed)
		}
	}
	return strings.Join(lines, "")
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(treeCmd)
}
