package grpc

// proto.go defines the gRPC server interface derived from
// olist/satisfaction/v1/satisfaction.proto. This file serves as a stand-in
// for buf-generated code; once `buf generate` is run, replace it with the
// generated package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SatisfactionServiceServer is the server API for SatisfactionService.
type SatisfactionServiceServer interface {
	PredictOrder(context.Context, *PredictOrderRequest) (*PredictOrderResponse, error)
	GetPrediction(context.Context, *GetPredictionRequest) (*GetPredictionResponse, error)
	mustEmbedUnimplementedSatisfactionServiceServer()
}

// UnimplementedSatisfactionServiceServer provides forward-compatible default implementations.
type UnimplementedSatisfactionServiceServer struct{}

func (UnimplementedSatisfactionServiceServer) PredictOrder(context.Context, *PredictOrderRequest) (*PredictOrderResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictOrder not implemented")
}
func (UnimplementedSatisfactionServiceServer) GetPrediction(context.Context, *GetPredictionRequest) (*GetPredictionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPrediction not implemented")
}
func (UnimplementedSatisfactionServiceServer) mustEmbedUnimplementedSatisfactionServiceServer() {}

// RegisterSatisfactionServiceServer registers the server with the gRPC server.
func RegisterSatisfactionServiceServer(s *grpclib.Server, srv SatisfactionServiceServer) {
	s.RegisterService(&_SatisfactionService_serviceDesc, srv)
}

var _SatisfactionService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "olist.satisfaction.v1.SatisfactionService",
	HandlerType: (*SatisfactionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PredictOrder", Handler: _SatisfactionService_PredictOrder_Handler},
		{MethodName: "GetPrediction", Handler: _SatisfactionService_GetPrediction_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _SatisfactionService_PredictOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(PredictOrderRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(SatisfactionServiceServer).PredictOrder(ctx, req)
}

func _SatisfactionService_GetPrediction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetPredictionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(SatisfactionServiceServer).GetPrediction(ctx, req)
}
