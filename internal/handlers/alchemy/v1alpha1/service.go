package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "alchemy.api.v1alpha1.AlchemyService"

// Full method names
const (
	BuildIndexFullMethodName    = "/" + ServiceName + "/BuildIndex"
	GetIndexFullMethodName      = "/" + ServiceName + "/GetIndex"
	ResolveGrantsFullMethodName = "/" + ServiceName + "/ResolveGrants"
	LevelChangedFullMethodName  = "/" + ServiceName + "/LevelChanged"
	SaveActorFullMethodName     = "/" + ServiceName + "/SaveActor"
	GetActorFullMethodName      = "/" + ServiceName + "/GetActor"
)

// AlchemyServiceServer is the server API for the alchemy service. Every
// message is a google.protobuf.Struct holding the JSON form of the
// request and response types in messages.go.
type AlchemyServiceServer interface {
	BuildIndex(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetIndex(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveGrants(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LevelChanged(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveActor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetActor(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterAlchemyServiceServer registers srv on s
func RegisterAlchemyServiceServer(s grpc.ServiceRegistrar, srv AlchemyServiceServer) {
	s.RegisterService(&AlchemyServiceDesc, srv)
}

// AlchemyServiceDesc is the grpc.ServiceDesc for the alchemy service
var AlchemyServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlchemyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "BuildIndex", Handler: unaryHandler(BuildIndexFullMethodName, AlchemyServiceServer.BuildIndex)},
		{MethodName: "GetIndex", Handler: unaryHandler(GetIndexFullMethodName, AlchemyServiceServer.GetIndex)},
		{MethodName: "ResolveGrants", Handler: unaryHandler(ResolveGrantsFullMethodName, AlchemyServiceServer.ResolveGrants)},
		{MethodName: "LevelChanged", Handler: unaryHandler(LevelChangedFullMethodName, AlchemyServiceServer.LevelChanged)},
		{MethodName: "SaveActor", Handler: unaryHandler(SaveActorFullMethodName, AlchemyServiceServer.SaveActor)},
		{MethodName: "GetActor", Handler: unaryHandler(GetActorFullMethodName, AlchemyServiceServer.GetActor)},
	},
	Streams: []grpc.StreamDesc{},
}

type unaryMethod func(AlchemyServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(AlchemyServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(srv.(AlchemyServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
