package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ddb-importer/internal/config"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	redisclient "github.com/KirkDiggler/ddb-importer/internal/redis"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/content"
)

var storeFix bool

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Custom content store maintenance",
}

var storeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Find corrupted or unreachable documents in the Redis content store",
	Long: `Scan the Redis custom content store for documents that no longer decode and
for ids the index cannot reach. With --fix they are removed, so the next import
synthesizes them again.`,
	Args: cobra.NoArgs,
	RunE: runStoreCheck,
}

func init() {
	storeCheckCmd.Flags().BoolVar(&storeFix, "fix", false, "Remove the problems found")
	storeCmd.AddCommand(storeCheckCmd)
	rootCmd.AddCommand(storeCmd)
}

func runStoreCheck(cmd *cobra.Command, _ []string) error {
	if cfg.StoreBackend != config.BackendRedis {
		return errors.FailedPreconditionf("store check needs the redis backend, have %s", cfg.StoreBackend)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	report, err := content.CheckRedis(cmd.Context(), client, cfg.StoreID, storeFix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked %d documents in %s\n", report.Checked, report.StoreID)
	if report.Clean() {
		fmt.Fprintln(out, "No problems found")
		return nil
	}
	for _, id := range report.Corrupted {
		fmt.Fprintf(out, "  corrupted: %s\n", id)
	}
	for _, id := range report.Dangling {
		fmt.Fprintf(out, "  dangling:  %s\n", id)
	}
	if report.Repaired {
		fmt.Fprintln(out, "Repaired")
	} else {
		fmt.Fprintln(out, "Run with --fix to remove them")
	}
	return nil
}
