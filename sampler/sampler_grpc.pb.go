// Copyright 2024 InternEvo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: sampler.proto

package sampler

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	Sampler_Init_FullMethodName     = "/sampler.Sampler/Init"
	Sampler_Schedule_FullMethodName = "/sampler.Sampler/Schedule"
	Sampler_Reset_FullMethodName    = "/sampler.Sampler/Reset"
	Sampler_Finalize_FullMethodName = "/sampler.Sampler/Finalize"
)

// SamplerClient is the client API for Sampler service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SamplerClient interface {
	// Init initializes the training environment.
	Init(ctx context.Context, in *Arguments, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Schedule returns the given rank's index share for the given epoch.
	Schedule(ctx context.Context, in *ScheduleRequest, opts ...grpc.CallOption) (*Schedule, error)
	// Reset is called at the end of an epoch during training.
	Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Finalize terminates the training environment.
	Finalize(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type samplerClient struct {
	cc grpc.ClientConnInterface
}

func NewSamplerClient(cc grpc.ClientConnInterface) SamplerClient {
	return &samplerClient{cc}
}

func (c *samplerClient) Init(ctx context.Context, in *Arguments, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Sampler_Init_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerClient) Schedule(ctx context.Context, in *ScheduleRequest, opts ...grpc.CallOption) (*Schedule, error) {
	out := new(Schedule)
	err := c.cc.Invoke(ctx, Sampler_Schedule_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerClient) Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Sampler_Reset_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *samplerClient) Finalize(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Sampler_Finalize_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SamplerServer is the server API for Sampler service.
// All implementations must embed UnimplementedSamplerServer
// for forward compatibility
type SamplerServer interface {
	// Init initializes the training environment.
	Init(context.Context, *Arguments) (*emptypb.Empty, error)
	// Schedule returns the given rank's index share for the given epoch.
	Schedule(context.Context, *ScheduleRequest) (*Schedule, error)
	// Reset is called at the end of an epoch during training.
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	// Finalize terminates the training environment.
	Finalize(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	mustEmbedUnimplementedSamplerServer()
}

// UnimplementedSamplerServer must be embedded to have forward compatible implementations.
type UnimplementedSamplerServer struct {
}

func (UnimplementedSamplerServer) Init(context.Context, *Arguments) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Init not implemented")
}
func (UnimplementedSamplerServer) Schedule(context.Context, *ScheduleRequest) (*Schedule, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Schedule not implemented")
}
func (UnimplementedSamplerServer) Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Reset not implemented")
}
func (UnimplementedSamplerServer) Finalize(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Finalize not implemented")
}
func (UnimplementedSamplerServer) mustEmbedUnimplementedSamplerServer() {}

// UnsafeSamplerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SamplerServer will
// result in compilation errors.
type UnsafeSamplerServer interface {
	mustEmbedUnimplementedSamplerServer()
}

func RegisterSamplerServer(s grpc.ServiceRegistrar, srv SamplerServer) {
	s.RegisterService(&Sampler_ServiceDesc, srv)
}

func _Sampler_Init_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Arguments)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServer).Init(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Sampler_Init_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServer).Init(ctx, req.(*Arguments))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sampler_Schedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServer).Schedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Sampler_Schedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServer).Schedule(ctx, req.(*ScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sampler_Reset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Sampler_Reset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServer).Reset(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sampler_Finalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SamplerServer).Finalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Sampler_Finalize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SamplerServer).Finalize(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Sampler_ServiceDesc is the grpc.ServiceDesc for Sampler service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Sampler_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sampler.Sampler",
	HandlerType: (*SamplerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Init",
			Handler:    _Sampler_Init_Handler,
		},
		{
			MethodName: "Schedule",
			Handler:    _Sampler_Schedule_Handler,
		},
		{
			MethodName: "Reset",
			Handler:    _Sampler_Reset_Handler,
		},
		{
			MethodName: "Finalize",
			Handler:    _Sampler_Finalize_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sampler.proto",
}
