// Package v1 handles the ddbimporter.v1.ImportService grpc service
package v1

import (
	"context"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
)

// Request and response field names
const (
	FieldPayload       = "payload"
	FieldTargetActorID = "targetActorId"
	FieldActorID       = "actorId"
	FieldActorName     = "actorName"
	FieldCreated       = "created"
	FieldAttached      = "attached"
	FieldAttachments   = "attachments"
	FieldMessages      = "messages"
)

// HandlerConfig holds dependencies for the import handler
type HandlerConfig struct {
	ImportService importer.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.ImportService == nil {
		return errors.InvalidArgument("import service is required")
	}
	return nil
}

// Handler implements ImportServiceServer
type Handler struct {
	importService importer.Service
}

var _ ImportServiceServer = (*Handler)(nil)

// NewHandler creates a new import handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{importService: cfg.ImportService}, nil
}

// ImportCharacter imports the pasted export in req.payload. The payload may
// be the export object itself or its JSON text.
func (h *Handler) ImportCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	payload, err := payloadBytes(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.importService.ImportCharacter(ctx, &importer.ImportCharacterInput{
		Payload:       payload,
		TargetActorID: req.GetFields()[FieldTargetActorID].GetStringValue(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toResponse(output)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return resp, nil
}

func payloadBytes(req *structpb.Struct) ([]byte, error) {
	value, ok := req.GetFields()[FieldPayload]
	if !ok {
		return nil, errors.InvalidArgument("payload is required")
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		return []byte(kind.StringValue), nil
	case *structpb.Value_StructValue:
		raw, err := protojson.Marshal(kind.StructValue)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "payload cannot be encoded")
		}
		return raw, nil
	default:
		return nil, errors.InvalidArgument("payload must be an object or a JSON string")
	}
}

func toResponse(output *importer.ImportCharacterOutput) (*structpb.Struct, error) {
	attachments := make([]interface{}, 0, len(output.Attachments))
	for _, a := range output.Attachments {
		attachments = append(attachments, map[string]interface{}{
			"name":   a.Document.Name,
			"type":   string(a.Document.Type),
			"source": a.Source,
			"cached": a.Cached,
		})
	}

	messages := make([]interface{}, 0, len(output.Messages))
	for _, m := range output.Messages {
		messages = append(messages, map[string]interface{}{
			"level":   string(m.Level),
			"message": m.Message,
		})
	}

	return structpb.NewStruct(map[string]interface{}{
		FieldActorID:     output.Actor.ID,
		FieldActorName:   output.Actor.Name,
		FieldCreated:     output.Created,
		FieldAttached:    len(output.Attachments),
		FieldAttachments: attachments,
		FieldMessages:    messages,
	})
}
