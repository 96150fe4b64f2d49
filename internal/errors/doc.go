// Package errors is the importer's coded error type.
//
// Every layer returns *Error values (or plain errors that get wrapped into
// one). The code survives wrapping, so a handler can map a failure deep in a
// repository straight onto a gRPC status:
//
//	actor, err := repo.Get(ctx, &actor.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load actor %s", id)
//	}
//
// Metadata rides along with WithMeta and is shipped to gRPC clients as a
// google.protobuf.Struct status detail.
//
// Config and input validation goes through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
package errors
