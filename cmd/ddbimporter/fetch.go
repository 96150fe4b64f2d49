package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ddb-importer/internal/clients/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

var (
	fetchOut        string
	fetchSession    string
	fetchCompendium bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url-or-id>",
	Short: "Fetch a character from D&D Beyond as an import payload",
	Long: `Fetch a character sheet from the D&D Beyond character service and write it
in the export format "import" reads. Private characters need a CobaltSession
cookie (--session or DDB_IMPORTER_COBALT_SESSION); it is never written out.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "-", "Output file, - for stdout")
	fetchCmd.Flags().StringVar(&fetchSession, "session", "", "CobaltSession cookie value")
	fetchCmd.Flags().BoolVar(&fetchCompendium, "compendium", false, "Include the item and class compendium bundle")
}

func runFetch(cmd *cobra.Command, args []string) error {
	session := cfg.DDBSession
	if cmd.Flags().Changed("session") {
		session = fetchSession
	}

	client, err := ddb.New(&ddb.Config{
		BaseURL:     cfg.DDBBaseURL,
		HTTPTimeout: cfg.DDBTimeout,
	})
	if err != nil {
		return err
	}

	export, err := client.Export(cmd.Context(), &ddb.ExportInput{
		URLOrID:    args[0],
		Session:    session,
		Compendium: fetchCompendium,
	})
	if err != nil {
		return err
	}

	if fetchOut == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(export.Payload))
		return err
	}
	if err := os.WriteFile(fetchOut, export.Payload, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", fetchOut)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Fetched %s into %s\n", export.Name, fetchOut)
	return nil
}
