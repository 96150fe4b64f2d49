package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
	importorch "github.com/KirkDiggler/ddb-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/ddb-importer/internal/report"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
)

var (
	importTarget string
	importReport string
)

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import a character export",
	Long: `Import the pasted export JSON in the given file ("-" reads stdin) onto the
character actor of the same name, or onto --target.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importTarget, "target", "", "Existing actor id to import onto")
	importCmd.Flags().StringVar(&importReport, "report", "", "Write an xlsx import report to this path")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	payload, err := readPayload(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	notifier := importorch.NotifierFunc(func(_ context.Context, n importer.Notification) {
		fmt.Fprintf(out, "[%s] %s\n", n.Level, n.Message)
	})

	a, err := newApp(ctx, cfg, notifier)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.importer.ImportCharacter(ctx, &importer.ImportCharacterInput{
		Payload:       payload,
		TargetActorID: importTarget,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nActor: %s (%s)\n", result.Actor.Name, result.Actor.ID)
	fmt.Fprintf(out, "Created: %t\n", result.Created)
	fmt.Fprintf(out, "Attached: %d\n", len(result.Attachments))
	for _, att := range result.Attachments {
		cached := ""
		if att.Cached {
			cached = " (cached)"
		}
		fmt.Fprintf(out, "  - %s [%s] from %s%s\n", att.Document.Name, att.Document.Type, att.Source, cached)
	}

	if importReport != "" {
		if err := report.Save(importReport, result); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nReport written to %s\n", importReport)
	}
	return nil
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return raw, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to read %s: %v", path, err)
	}
	return raw, nil
}
