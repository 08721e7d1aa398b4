package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"distrohub/catalog"
	"distrohub/config"

	"github.com/spf13/cobra"
)

var (
	catalogSearch string
	catalogGenre  string
	catalogYear   string
	catalogType   string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch and list the release catalog",
	Long:  `Fetch the complete release catalog from the configured endpoint, apply the given filters and print the matching releases.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		client := catalog.NewClient(cfg)

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.CatalogTimeoutSec)*time.Second)
		defer cancel()

		fmt.Println("Fetching catalog...")
		releases, err := client.Fetch(ctx)
		if err != nil {
			log.Fatalf("Catalog fetch failed: %v", err)
		}

		engine := catalog.NewEngine(cfg.CatalogPageSize)
		engine.SetReleases(releases)
		engine.SetQuery(catalog.Query{
			Search:      catalogSearch,
			Genre:       catalogGenre,
			Year:        catalogYear,
			ReleaseType: catalogType,
		})

		filtered := engine.Filtered()
		fmt.Printf("\n%d of %d releases match:\n", len(filtered), len(releases))
		for i, r := range filtered {
			fmt.Printf("%d. %s - %s [%s, %s] (%d tracks)\n",
				i+1, r.ArtistName, r.Title, r.ReleaseType, r.Year(), len(r.Tracks))
		}

		fmt.Printf("\nGenres: %v\nYears: %v\nTypes: %v\n",
			engine.Genres(), engine.Years(), engine.ReleaseTypes())
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "substring match on title, artist or track title")
	catalogCmd.Flags().StringVarP(&catalogGenre, "genre", "g", "", "exact genre filter")
	catalogCmd.Flags().StringVarP(&catalogYear, "year", "y", "", "release year filter")
	catalogCmd.Flags().StringVarP(&catalogType, "type", "t", "", "release type filter (single, ep, album)")
	rootCmd.AddCommand(catalogCmd)
}
