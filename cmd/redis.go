package cmd

import (
	"context"
	"fmt"
	"log"

	"distrohub/cache"
	"distrohub/config"

	"github.com/spf13/cobra"
)

var redisClearState bool

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Check the Redis connection",
	Long:  `Connect to Redis with the configured settings and report whether a playback session snapshot is stored.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("Redis: %s:%s, DB: %d\n", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)

		if err := cache.ConnectRedis(cfg); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer cache.CloseRedis()
		fmt.Println("Redis connection successful.")

		if redisClearState {
			if err := cache.ClearSessionState(context.Background()); err != nil {
				log.Fatalf("Failed to clear session snapshot: %v", err)
			}
			fmt.Println("Playback session snapshot cleared.")
			return
		}

		state, ok, err := cache.LoadSessionState(context.Background())
		if err != nil {
			log.Fatalf("Failed to load session snapshot: %v", err)
		}
		if !ok {
			fmt.Println("No playback session snapshot stored.")
			return
		}
		if state.CurrentTrack != nil {
			fmt.Printf("Stored session: %s - %s, %d queued\n",
				state.CurrentTrack.Artist, state.CurrentTrack.Title, len(state.Queue))
		} else {
			fmt.Printf("Stored session: idle, %d queued\n", len(state.Queue))
		}
	},
}

func init() {
	redisCmd.Flags().BoolVar(&redisClearState, "clear", false, "clear the stored playback session snapshot")
	rootCmd.AddCommand(redisCmd)
}
