package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "vop.sheet.v1alpha1.SheetService"

// Method names, as they appear in FullMethod
const (
	MethodGetCharacter   = "GetCharacter"
	MethodUpdateField    = "UpdateField"
	MethodSetRace        = "SetRace"
	MethodAddRow         = "AddRow"
	MethodAddFromCatalog = "AddFromCatalog"
	MethodMoveRow        = "MoveRow"
	MethodRemoveRow      = "RemoveRow"
	MethodListOptions    = "ListOptions"
	MethodExport         = "Export"
	MethodImport         = "Import"
	MethodReset          = "Reset"
)

// SheetServiceServer is the server API for the sheet service. Requests and
// responses are free-form structs; the fields each method reads and writes
// are documented on Handler.
type SheetServiceServer interface {
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateField(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetRace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddRow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddFromCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MoveRow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveRow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListOptions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Export(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Import(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reset(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call serverMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SheetServiceDesc describes the sheet service for grpc.ServiceRegistrar
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodGetCharacter, SheetServiceServer.GetCharacter),
		unaryHandler(MethodUpdateField, SheetServiceServer.UpdateField),
		unaryHandler(MethodSetRace, SheetServiceServer.SetRace),
		unaryHandler(MethodAddRow, SheetServiceServer.AddRow),
		unaryHandler(MethodAddFromCatalog, SheetServiceServer.AddFromCatalog),
		unaryHandler(MethodMoveRow, SheetServiceServer.MoveRow),
		unaryHandler(MethodRemoveRow, SheetServiceServer.RemoveRow),
		unaryHandler(MethodListOptions, SheetServiceServer.ListOptions),
		unaryHandler(MethodExport, SheetServiceServer.Export),
		unaryHandler(MethodImport, SheetServiceServer.Import),
		unaryHandler(MethodReset, SheetServiceServer.Reset),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vop/sheet/v1alpha1/sheet.proto",
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

// SheetServiceClient calls a sheet service by method name
type SheetServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type sheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client over cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) SheetServiceClient {
	return &sheetServiceClient{cc: cc}
}

func (c *sheetServiceClient) Call(
	ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
