package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/notegen/internal/core"
	"github.com/sevigo/notegen/internal/wire"
)

var buildBeforeServe bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generated site over HTTP",
	Long: `Serves the output directory until interrupted. "/" redirects to the page of the
first top-level entry unless the output contains an index.html.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		application, cleanup, err := wire.InitializeApp()
		if err != nil {
			return fmt.Errorf("failed to initialize app services: %w", err)
		}
		defer cleanup()

		var root *core.Folder
		if buildBeforeServe {
			res, err := application.Build(ctx)
			if err != nil {
				return err
			}
			root = res.Root
		} else if root, err = application.Discover(ctx); err != nil {
			return err
		}

		successColor.Printf("Serving %s on http://localhost:%s\n", application.Cfg.OutputDir, application.Cfg.ServerPort)
		return application.Serve(ctx, landingPage(root))
	},
}

// landingPage is the output file of the first top-level entry.
func landingPage(root *core.Folder) string {
	children := root.Children()
	if len(children) == 0 {
		return ""
	}
	return children[0].OutputFilename()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default 8080)")
	serveCmd.Flags().BoolVar(&buildBeforeServe, "build", false, "Build the site before serving")
	bindFlag("SERVER_PORT", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}
