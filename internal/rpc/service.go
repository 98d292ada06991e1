// Package rpc exposes transfers and alerts over gRPC.
//
// Messages are protobuf well-known types: requests and responses are structpb.Struct values
// carrying the same JSON shapes as the HTTP API, so no generated code is needed.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "omnipos.inventory.v1.InventoryService"

const (
	MethodTransfer         = "/" + ServiceName + "/Transfer"
	MethodListTransfers    = "/" + ServiceName + "/ListTransfers"
	MethodListAlerts       = "/" + ServiceName + "/ListAlerts"
	MethodApplyAlertAction = "/" + ServiceName + "/ApplyAlertAction"
)

type InventoryServiceServer interface {
	Transfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTransfers(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListAlerts(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ApplyAlertAction(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Transfer", Handler: transferHandler},
		{MethodName: "ListTransfers", Handler: listTransfersHandler},
		{MethodName: "ListAlerts", Handler: listAlertsHandler},
		{MethodName: "ApplyAlertAction", Handler: applyAlertActionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/inventory/v1/inventory.proto",
}

func transferHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).Transfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodTransfer}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).Transfer(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listTransfersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListTransfers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodListTransfers}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListTransfers(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func listAlertsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListAlerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodListAlerts}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListAlerts(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func applyAlertActionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ApplyAlertAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodApplyAlertAction}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ApplyAlertAction(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
