package cmd

import (
	"fmt"
	"log"
	"os"

	"distrohub/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "distrohub",
	Short: "DistroHub is a music distribution catalog and player service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting DistroHub server...")
		// server.Start handles its own configuration and startup logging.
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
