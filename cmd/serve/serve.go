// Package serve handles the HTTP upload server command
package serve

import (
	"gsd/a2z-flashing/cmd/root"
	"gsd/a2z-flashing/internal/web"

	"github.com/spf13/cobra"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload form and processing endpoint over HTTP",
	Long: `Start an HTTP server with a file upload form. Uploaded CSV and
Excel exports are processed and returned as a downloadable A2Z Flashing
CSV.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	cfg := root.Cfg
	if addr != "" {
		cfg.Server.Addr = addr
	}

	server := web.NewServer(cfg, logger)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatalf("HTTP server failed: %v", err)
	}
}
