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

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.30.0
// 	protoc        (unknown)
// source: sampler.proto

package sampler

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// GroupMeta describes a single dataset partition.
type GroupMeta struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Type        string  `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Len         int64   `protobuf:"varint,2,opt,name=len,proto3" json:"len,omitempty"`
	ItemLenList []int64 `protobuf:"varint,3,rep,packed,name=item_len_list,json=itemLenList,proto3" json:"item_len_list,omitempty"`
	Ratio       float64 `protobuf:"fixed64,4,opt,name=ratio,proto3" json:"ratio,omitempty"`
}

func (x *GroupMeta) Reset() {
	*x = GroupMeta{}
	if protoimpl.UnsafeEnabled {
		mi := &file_sampler_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GroupMeta) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupMeta) ProtoMessage() {}

func (x *GroupMeta) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupMeta.ProtoReflect.Descriptor instead.
func (*GroupMeta) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{0}
}

func (x *GroupMeta) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *GroupMeta) GetLen() int64 {
	if x != nil {
		return x.Len
	}
	return 0
}

func (x *GroupMeta) GetItemLenList() []int64 {
	if x != nil {
		return x.ItemLenList
	}
	return nil
}

func (x *GroupMeta) GetRatio() float64 {
	if x != nil {
		return x.Ratio
	}
	return 0
}

// Arguments holds the sampling parameters shared by all workers.
type Arguments struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	WorldSize              int64        `protobuf:"varint,1,opt,name=world_size,json=worldSize,proto3" json:"world_size,omitempty"`
	MicroBatchSize         int64        `protobuf:"varint,2,opt,name=micro_batch_size,json=microBatchSize,proto3" json:"micro_batch_size,omitempty"`
	AccGrad                int64        `protobuf:"varint,3,opt,name=acc_grad,json=accGrad,proto3" json:"acc_grad,omitempty"`
	Seed                   int64        `protobuf:"varint,4,opt,name=seed,proto3" json:"seed,omitempty"`
	Shuffle                bool         `protobuf:"varint,5,opt,name=shuffle,proto3" json:"shuffle,omitempty"`
	LengthClustering       bool         `protobuf:"varint,6,opt,name=length_clustering,json=lengthClustering,proto3" json:"length_clustering,omitempty"`
	AllowMixedTaskAmongAcc bool         `protobuf:"varint,7,opt,name=allow_mixed_task_among_acc,json=allowMixedTaskAmongAcc,proto3" json:"allow_mixed_task_among_acc,omitempty"`
	Metas                  []*GroupMeta `protobuf:"bytes,8,rep,name=metas,proto3" json:"metas,omitempty"`
}

func (x *Arguments) Reset() {
	*x = Arguments{}
	if protoimpl.UnsafeEnabled {
		mi := &file_sampler_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Arguments) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Arguments) ProtoMessage() {}

func (x *Arguments) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Arguments.ProtoReflect.Descriptor instead.
func (*Arguments) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{1}
}

func (x *Arguments) GetWorldSize() int64 {
	if x != nil {
		return x.WorldSize
	}
	return 0
}

func (x *Arguments) GetMicroBatchSize() int64 {
	if x != nil {
		return x.MicroBatchSize
	}
	return 0
}

func (x *Arguments) GetAccGrad() int64 {
	if x != nil {
		return x.AccGrad
	}
	return 0
}

func (x *Arguments) GetSeed() int64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *Arguments) GetShuffle() bool {
	if x != nil {
		return x.Shuffle
	}
	return false
}

func (x *Arguments) GetLengthClustering() bool {
	if x != nil {
		return x.LengthClustering
	}
	return false
}

func (x *Arguments) GetAllowMixedTaskAmongAcc() bool {
	if x != nil {
		return x.AllowMixedTaskAmongAcc
	}
	return false
}

func (x *Arguments) GetMetas() []*GroupMeta {
	if x != nil {
		return x.Metas
	}
	return nil
}

// ScheduleRequest identifies the requesting worker and its epoch position.
type ScheduleRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Rank      int64 `protobuf:"varint,1,opt,name=rank,proto3" json:"rank,omitempty"`
	Epoch     int64 `protobuf:"varint,2,opt,name=epoch,proto3" json:"epoch,omitempty"`
	StartIter int64 `protobuf:"varint,3,opt,name=start_iter,json=startIter,proto3" json:"start_iter,omitempty"`
}

func (x *ScheduleRequest) Reset() {
	*x = ScheduleRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_sampler_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleRequest) ProtoMessage() {}

func (x *ScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleRequest.ProtoReflect.Descriptor instead.
func (*ScheduleRequest) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{2}
}

func (x *ScheduleRequest) GetRank() int64 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *ScheduleRequest) GetEpoch() int64 {
	if x != nil {
		return x.Epoch
	}
	return 0
}

func (x *ScheduleRequest) GetStartIter() int64 {
	if x != nil {
		return x.StartIter
	}
	return 0
}

// Schedule holds a worker's flat index share for one epoch.
type Schedule struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Indices []int64 `protobuf:"varint,1,rep,packed,name=indices,proto3" json:"indices,omitempty"`
}

func (x *Schedule) Reset() {
	*x = Schedule{}
	if protoimpl.UnsafeEnabled {
		mi := &file_sampler_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Schedule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Schedule) ProtoMessage() {}

func (x *Schedule) ProtoReflect() protoreflect.Message {
	mi := &file_sampler_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Schedule.ProtoReflect.Descriptor instead.
func (*Schedule) Descriptor() ([]byte, []int) {
	return file_sampler_proto_rawDescGZIP(), []int{3}
}

func (x *Schedule) GetIndices() []int64 {
	if x != nil {
		return x.Indices
	}
	return nil
}

var File_sampler_proto protoreflect.FileDescriptor

var file_sampler_proto_rawDesc = []byte{
	0x0a, 0x0d, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12,
	0x07, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x1a, 0x1b, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65,
	0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x65, 0x6d, 0x70, 0x74, 0x79, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x6b, 0x0a, 0x09, 0x47, 0x72, 0x6f, 0x75, 0x70, 0x4d, 0x65,
	0x74, 0x61, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x6c, 0x65, 0x6e, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x03, 0x6c, 0x65, 0x6e, 0x12, 0x22, 0x0a, 0x0d, 0x69, 0x74, 0x65, 0x6d,
	0x5f, 0x6c, 0x65, 0x6e, 0x5f, 0x6c, 0x69, 0x73, 0x74, 0x18, 0x03, 0x20, 0x03, 0x28, 0x03, 0x52,
	0x0b, 0x69, 0x74, 0x65, 0x6d, 0x4c, 0x65, 0x6e, 0x4c, 0x69, 0x73, 0x74, 0x12, 0x14, 0x0a, 0x05,
	0x72, 0x61, 0x74, 0x69, 0x6f, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x72, 0x61, 0x74,
	0x69, 0x6f, 0x22, 0xb0, 0x02, 0x0a, 0x09, 0x41, 0x72, 0x67, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x73,
	0x12, 0x1d, 0x0a, 0x0a, 0x77, 0x6f, 0x72, 0x6c, 0x64, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x77, 0x6f, 0x72, 0x6c, 0x64, 0x53, 0x69, 0x7a, 0x65, 0x12,
	0x28, 0x0a, 0x10, 0x6d, 0x69, 0x63, 0x72, 0x6f, 0x5f, 0x62, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x73,
	0x69, 0x7a, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x6d, 0x69, 0x63, 0x72, 0x6f,
	0x42, 0x61, 0x74, 0x63, 0x68, 0x53, 0x69, 0x7a, 0x65, 0x12, 0x19, 0x0a, 0x08, 0x61, 0x63, 0x63,
	0x5f, 0x67, 0x72, 0x61, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x61, 0x63, 0x63,
	0x47, 0x72, 0x61, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x65, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x04, 0x73, 0x65, 0x65, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x68, 0x75, 0x66,
	0x66, 0x6c, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x68, 0x75, 0x66, 0x66,
	0x6c, 0x65, 0x12, 0x2b, 0x0a, 0x11, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68, 0x5f, 0x63, 0x6c, 0x75,
	0x73, 0x74, 0x65, 0x72, 0x69, 0x6e, 0x67, 0x18, 0x06, 0x20, 0x01, 0x28, 0x08, 0x52, 0x10, 0x6c,
	0x65, 0x6e, 0x67, 0x74, 0x68, 0x43, 0x6c, 0x75, 0x73, 0x74, 0x65, 0x72, 0x69, 0x6e, 0x67, 0x12,
	0x3a, 0x0a, 0x1a, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x5f, 0x6d, 0x69, 0x78, 0x65, 0x64, 0x5f, 0x74,
	0x61, 0x73, 0x6b, 0x5f, 0x61, 0x6d, 0x6f, 0x6e, 0x67, 0x5f, 0x61, 0x63, 0x63, 0x18, 0x07, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x16, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x4d, 0x69, 0x78, 0x65, 0x64, 0x54,
	0x61, 0x73, 0x6b, 0x41, 0x6d, 0x6f, 0x6e, 0x67, 0x41, 0x63, 0x63, 0x12, 0x28, 0x0a, 0x05, 0x6d,
	0x65, 0x74, 0x61, 0x73, 0x18, 0x08, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x73, 0x61, 0x6d,
	0x70, 0x6c, 0x65, 0x72, 0x2e, 0x47, 0x72, 0x6f, 0x75, 0x70, 0x4d, 0x65, 0x74, 0x61, 0x52, 0x05,
	0x6d, 0x65, 0x74, 0x61, 0x73, 0x22, 0x5a, 0x0a, 0x0f, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x12, 0x14, 0x0a, 0x05,
	0x65, 0x70, 0x6f, 0x63, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x65, 0x70, 0x6f,
	0x63, 0x68, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x69, 0x74, 0x65, 0x72,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x73, 0x74, 0x61, 0x72, 0x74, 0x49, 0x74, 0x65,
	0x72, 0x22, 0x24, 0x0a, 0x08, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x12, 0x18, 0x0a,
	0x07, 0x69, 0x6e, 0x64, 0x69, 0x63, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x03, 0x52, 0x07,
	0x69, 0x6e, 0x64, 0x69, 0x63, 0x65, 0x73, 0x32, 0xf3, 0x01, 0x0a, 0x07, 0x53, 0x61, 0x6d, 0x70,
	0x6c, 0x65, 0x72, 0x12, 0x34, 0x0a, 0x04, 0x49, 0x6e, 0x69, 0x74, 0x12, 0x12, 0x2e, 0x73, 0x61,
	0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x41, 0x72, 0x67, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x1a,
	0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x22, 0x00, 0x12, 0x39, 0x0a, 0x08, 0x53, 0x63, 0x68,
	0x65, 0x64, 0x75, 0x6c, 0x65, 0x12, 0x18, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e,
	0x53, 0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x11, 0x2e, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x2e, 0x53, 0x63, 0x68, 0x65, 0x64, 0x75,
	0x6c, 0x65, 0x22, 0x00, 0x12, 0x39, 0x0a, 0x05, 0x52, 0x65, 0x73, 0x65, 0x74, 0x12, 0x16, 0x2e,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e,
	0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x22, 0x00, 0x12,
	0x3c, 0x0a, 0x08, 0x46, 0x69, 0x6e, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x12, 0x16, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d,
	0x70, 0x74, 0x79, 0x1a, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x22, 0x00, 0x42, 0x28, 0x5a,
	0x26, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x53, 0x48, 0x73, 0x68,
	0x65, 0x6e, 0x68, 0x61, 0x6f, 0x2f, 0x49, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x45, 0x76, 0x6f, 0x2f,
	0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x72, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_sampler_proto_rawDescOnce sync.Once
	file_sampler_proto_rawDescData = file_sampler_proto_rawDesc
)

func file_sampler_proto_rawDescGZIP() []byte {
	file_sampler_proto_rawDescOnce.Do(func() {
		file_sampler_proto_rawDescData = protoimpl.X.CompressGZIP(file_sampler_proto_rawDescData)
	})
	return file_sampler_proto_rawDescData
}

var file_sampler_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_sampler_proto_goTypes = []interface{}{
	(*GroupMeta)(nil),       // 0: sampler.GroupMeta
	(*Arguments)(nil),       // 1: sampler.Arguments
	(*ScheduleRequest)(nil), // 2: sampler.ScheduleRequest
	(*Schedule)(nil),        // 3: sampler.Schedule
	(*emptypb.Empty)(nil),   // 4: google.protobuf.Empty
}
var file_sampler_proto_depIdxs = []int32{
	0, // 0: sampler.Arguments.metas:type_name -> sampler.GroupMeta
	1, // 1: sampler.Sampler.Init:input_type -> sampler.Arguments
	2, // 2: sampler.Sampler.Schedule:input_type -> sampler.ScheduleRequest
	4, // 3: sampler.Sampler.Reset:input_type -> google.protobuf.Empty
	4, // 4: sampler.Sampler.Finalize:input_type -> google.protobuf.Empty
	4, // 5: sampler.Sampler.Init:output_type -> google.protobuf.Empty
	3, // 6: sampler.Sampler.Schedule:output_type -> sampler.Schedule
	4, // 7: sampler.Sampler.Reset:output_type -> google.protobuf.Empty
	4, // 8: sampler.Sampler.Finalize:output_type -> google.protobuf.Empty
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_sampler_proto_init() }
func file_sampler_proto_init() {
	if File_sampler_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_sampler_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GroupMeta); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_sampler_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Arguments); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_sampler_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ScheduleRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_sampler_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Schedule); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_sampler_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sampler_proto_goTypes,
		DependencyIndexes: file_sampler_proto_depIdxs,
		MessageInfos:      file_sampler_proto_msgTypes,
	}.Build()
	File_sampler_proto = out.File
	file_sampler_proto_rawDesc = nil
	file_sampler_proto_goTypes = nil
	file_sampler_proto_depIdxs = nil
}
