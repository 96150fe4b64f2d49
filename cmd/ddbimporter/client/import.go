package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	importv1 "github.com/KirkDiggler/ddb-importer/internal/handlers/ddbimporter/v1"
)

var importTarget string

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import a character export through the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importTarget, "target", "", "Existing actor id to import onto")
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	client, cleanup, err := createImportClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	fields := map[string]interface{}{
		importv1.FieldPayload: string(raw),
	}
	if importTarget != "" {
		fields[importv1.FieldTargetActorID] = importTarget
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.ImportCharacter(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to import character: %w", err)
	}

	out := cmd.OutOrStdout()
	got := resp.GetFields()
	for _, m := range got[importv1.FieldMessages].GetListValue().GetValues() {
		msg := m.GetStructValue().GetFields()
		fmt.Fprintf(out, "[%s] %s\n", msg["level"].GetStringValue(), msg["message"].GetStringValue())
	}

	fmt.Fprintf(out, "\nActor: %s (%s)\n", got[importv1.FieldActorName].GetStringValue(), got[importv1.FieldActorID].GetStringValue())
	fmt.Fprintf(out, "Created: %t\n", got[importv1.FieldCreated].GetBoolValue())
	fmt.Fprintf(out, "Attached: %d\n", int(got[importv1.FieldAttached].GetNumberValue()))
	for _, a := range got[importv1.FieldAttachments].GetListValue().GetValues() {
		att := a.GetStructValue().GetFields()
		fmt.Fprintf(out, "  - %s [%s] from %s\n",
			att["name"].GetStringValue(), att["type"].GetStringValue(), att["source"].GetStringValue())
	}
	return nil
}
