package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service and method names on the wire
const (
	ServiceName                  = "ddbimporter.v1.ImportService"
	ImportCharacterMethod        = "ImportCharacter"
	ImportServiceImportCharacter = "/" + ServiceName + "/" + ImportCharacterMethod
)

// ImportServiceServer is the server API for ImportService. Messages are
// google.protobuf.Struct so the payload can be forwarded untouched.
type ImportServiceServer interface {
	ImportCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterImportServiceServer registers srv with s
func RegisterImportServiceServer(s grpc.ServiceRegistrar, srv ImportServiceServer) {
	s.RegisterService(&ImportServiceDesc, srv)
}

func importCharacterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImportServiceServer).ImportCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ImportServiceImportCharacter,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImportServiceServer).ImportCharacter(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ImportServiceDesc is the grpc.ServiceDesc for ImportService
var ImportServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ImportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: ImportCharacterMethod,
			Handler:    importCharacterHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ddbimporter/v1/import.proto",
}

// ImportServiceClient is the client API for ImportService
type ImportServiceClient interface {
	ImportCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type importServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewImportServiceClient creates a client over cc
func NewImportServiceClient(cc grpc.ClientConnInterface) ImportServiceClient {
	return &importServiceClient{cc: cc}
}

func (c *importServiceClient) ImportCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ImportServiceImportCharacter, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
