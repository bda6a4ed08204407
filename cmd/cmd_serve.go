// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmendieta/plotproof/audit"
)

var (
	serveListen   string
	serveEndpoint string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive audit dashboard (local only)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		server := audit.NewServer(audit.NewNativeLandClient(serveEndpoint))

		fmt.Println("⚖️  EUDR audit dashboard starting...")
		fmt.Printf("📍 Open http://%s in your browser\n", serveListen)
		fmt.Println("🔒 Local only - not exposed to internet")

		return server.Run(serveListen)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "localhost:8080", "address to serve the dashboard on")
	serveCmd.Flags().StringVar(&serveEndpoint, "endpoint", "", "territory index endpoint override")

	rootCmd.AddCommand(serveCmd)
}
