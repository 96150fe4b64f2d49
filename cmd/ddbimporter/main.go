// Package main is the entry point for the ddbimporter CLI and gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ddb-importer/cmd/ddbimporter/client"
	"github.com/KirkDiggler/ddb-importer/internal/config"
)

var (
	envFile string
	cfg     *config.Config

	logLevel     string
	logFormat    string
	redisAddr    string
	storeBackend string
	sqlitePath   string
	orderFile    string
	noSRD        bool
)

var rootCmd = &cobra.Command{
	Use:   "ddbimporter",
	Short: "D&D Beyond character importer",
	Long: `ddbimporter turns D&D Beyond character exports into Foundry VTT actors,
resolving classes, items, spells and features against reference compendiums
and caching anything it has to build itself.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", config.DefaultEnvFile, "Env file loaded when present")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address")
	flags.StringVar(&storeBackend, "store", "", "Custom content store backend (redis, sqlite, none)")
	flags.StringVar(&sqlitePath, "sqlite-path", "", "SQLite database for the sqlite store")
	flags.StringVar(&orderFile, "order-file", "", "YAML file overriding the reference store order")
	flags.BoolVar(&noSRD, "no-srd", false, "Do not search the SRD API")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("store") {
		loaded.StoreBackend = storeBackend
	}
	if flags.Changed("sqlite-path") {
		loaded.SQLitePath = sqlitePath
	}
	if flags.Changed("order-file") {
		loaded.OrderFile = orderFile
	}
	if flags.Changed("no-srd") {
		loaded.SRDDisabled = noSRD
	}
	if flags.Changed("port") {
		loaded.GRPCPort = grpcPort
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(loaded.Handler(cmd.ErrOrStderr())))
	cfg = loaded
	return nil
}
