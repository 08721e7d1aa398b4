package cmd

import (
	"distrohub/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the DistroHub HTTP server",
	Long:  `Start the HTTP server serving the catalog API, the shared playback session and the public content endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
