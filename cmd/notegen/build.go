package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/notegen/internal/app"
	"github.com/sevigo/notegen/internal/wire"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generates the HTML site from the notes directory",
	Long: `Discovers every .md note below the source directory and writes one page per
note and per folder into the output directory, then copies the media directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// A media directory named on the command line has to exist.
		if cmd.Flags().Changed("media") {
			viper.Set("MEDIA_REQUIRED", true)
		}

		application, cleanup, err := wire.InitializeApp()
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		start := time.Now()
		res, err := application.Build(ctx)
		if err != nil {
			return err
		}
		printBuildSummary(res, time.Since(start))
		return nil
	},
}

func printBuildSummary(res *app.BuildResult, elapsed time.Duration) {
	title := "Site generated"
	if res.SiteConfig.Title != "" {
		title = res.SiteConfig.Title
	}
	titleColor.Println(title)
	fmt.Printf("  %s %s\n", dimColor.Sprint("source:"), res.SourceDir)
	fmt.Printf("  %s %s\n", dimColor.Sprint("output:"), res.OutputDir)
	fmt.Printf("  %s %s\n", dimColor.Sprint("pages: "), boldColor.Sprint(len(res.Pages)))
	if res.Stylesheet != "" {
		fmt.Printf("  %s %s\n", dimColor.Sprint("css:   "), res.Stylesheet)
	}
	if res.MediaDir != "" {
		fmt.Printf("  %s %s\n", dimColor.Sprint("media: "), res.MediaDir)
	}

	if len(res.Collisions) > 0 {
		fmt.Println()
		warnColor.Printf("%d output file(s) written by more than one note:\n", len(res.Collisions))
		for _, c := range res.Collisions {
			fmt.Printf("  %s\n", boldColor.Sprint(c.Filename))
			for _, p := range c.Paths {
				fmt.Printf("    %s\n", dimColor.Sprint(p))
			}
		}
	}

	fmt.Println()
	successColor.Printf("Done in %s\n", elapsed.Round(time.Millisecond))
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	buildCmd.Flags().String("media", "", "Media directory copied to <output>/media (default Notes/media)")
	buildCmd.Flags().String("style", "", "Code highlighting style (default monokai)")

	bindFlag("MEDIA_DIR", buildCmd.Flags().Lookup("media"))
	bindFlag("HIGHLIGHT_STYLE", buildCmd.Flags().Lookup("style"))

	rootCmd.AddCommand(buildCmd)
}
