package cli

import (
	"context"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/clipkeeper/clipkeeperd/internal/config"
	"github.com/clipkeeper/clipkeeperd/internal/logger"
	"github.com/clipkeeper/clipkeeperd/internal/redis"
	"github.com/clipkeeper/clipkeeperd/internal/seed"
	redisstore "github.com/clipkeeper/clipkeeperd/internal/store/redis"
)

func init() {
	importCmd.Flags().StringP("file", "f", "", "Seed file to import (overrides CLIPKEEPER_SEED_FILE)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import [flags]",
	Short: "Import a bookmarks seed file once and exit",
	Long: `Merge a bookmarks.yaml seed file into the Redis records without
starting the daemon. Entries whose timestamp already exists in a record
(within tolerance) are skipped, so existing bookmarks are never clobbered.`,
	Example: dedent.Dedent(`
		# Import the file configured via CLIPKEEPER_SEED_FILE
		clipkeeperd import

		# Import an explicit file
		clipkeeperd import -f ./bookmarks.yaml`),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		seedFile, err := cmd.Flags().GetString("file")
		if err != nil || seedFile == "" {
			seedFile = cfg.SeedFile
		}
		if seedFile == "" {
			red.Println("No seed file given: pass -f or set CLIPKEEPER_SEED_FILE")
			os.Exit(1)
		}

		log := logger.New(cfg.LogLevel, cfg.PrettyLog)

		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			red.Printf("Failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}
		defer client.Close()

		store := redisstore.NewStore(client)

		file, err := seed.NewLoader(seedFile).Load()
		if err != nil {
			red.Printf("Failed to load seed file: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		mapper := seed.NewMapper()

		totalAdded := 0
		failed := 0
		for videoKey, entries := range file {
			incoming := mapper.MapEntries(entries)
			if len(incoming) == 0 {
				continue
			}

			existing, err := store.FetchBookmarks(ctx, videoKey)
			if err != nil {
				red.Printf("  %s: %v\n", videoKey, err)
				failed++
				continue
			}

			merged, added := seed.Merge(existing, incoming)
			if added == 0 {
				continue
			}

			if err := store.SaveBookmarks(ctx, videoKey, merged); err != nil {
				red.Printf("  %s: %v\n", videoKey, err)
				failed++
				continue
			}

			cyan.Printf("  %s: +%d bookmark(s)\n", videoKey, added)
			totalAdded += added
		}

		if failed > 0 {
			red.Printf("Import finished with %d failed video(s)\n", failed)
			os.Exit(1)
		}
		green.Printf("Imported %d bookmark(s) across %d video(s)\n", totalAdded, len(file))
	},
}
