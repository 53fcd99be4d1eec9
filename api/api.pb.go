// Package api holds the protobuf wire types for api/api.proto. The
// message plumbing follows the protoc-gen-go layout; the raw file
// descriptor is assembled from descriptorpb at init time (see
// descriptor.go) so the checked-in source has no opaque byte blob.
package api

import (
	reflect "reflect"

	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

type Empty struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *Empty) Reset() {
	*x = Empty{}
	mi := &file_api_api_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Empty) String() string { return protoimpl.X.MessageStringOf(x) }

func (*Empty) ProtoMessage() {}

func (x *Empty) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type InputState struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PlayerIndex uint32 `protobuf:"varint,1,opt,name=player_index,json=playerIndex,proto3" json:"player_index,omitempty"`
	A           bool   `protobuf:"varint,2,opt,name=a,proto3" json:"a,omitempty"`
	B           bool   `protobuf:"varint,3,opt,name=b,proto3" json:"b,omitempty"`
	Select      bool   `protobuf:"varint,4,opt,name=select,proto3" json:"select,omitempty"`
	Start       bool   `protobuf:"varint,5,opt,name=start,proto3" json:"start,omitempty"`
	Up          bool   `protobuf:"varint,6,opt,name=up,proto3" json:"up,omitempty"`
	Down        bool   `protobuf:"varint,7,opt,name=down,proto3" json:"down,omitempty"`
	Left        bool   `protobuf:"varint,8,opt,name=left,proto3" json:"left,omitempty"`
	Right       bool   `protobuf:"varint,9,opt,name=right,proto3" json:"right,omitempty"`
}

func (x *InputState) Reset() {
	*x = InputState{}
	mi := &file_api_api_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InputState) String() string { return protoimpl.X.MessageStringOf(x) }

func (*InputState) ProtoMessage() {}

func (x *InputState) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *InputState) GetPlayerIndex() uint32 {
	if x != nil {
		return x.PlayerIndex
	}
	return 0
}

func (x *InputState) GetA() bool {
	if x != nil {
		return x.A
	}
	return false
}

func (x *InputState) GetB() bool {
	if x != nil {
		return x.B
	}
	return false
}

func (x *InputState) GetSelect() bool {
	if x != nil {
		return x.Select
	}
	return false
}

func (x *InputState) GetStart() bool {
	if x != nil {
		return x.Start
	}
	return false
}

func (x *InputState) GetUp() bool {
	if x != nil {
		return x.Up
	}
	return false
}

func (x *InputState) GetDown() bool {
	if x != nil {
		return x.Down
	}
	return false
}

func (x *InputState) GetLeft() bool {
	if x != nil {
		return x.Left
	}
	return false
}

func (x *InputState) GetRight() bool {
	if x != nil {
		return x.Right
	}
	return false
}

type FrameResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Pixels []byte `protobuf:"bytes,1,opt,name=pixels,proto3" json:"pixels,omitempty"`
}

func (x *FrameResponse) Reset() {
	*x = FrameResponse{}
	mi := &file_api_api_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FrameResponse) String() string { return protoimpl.X.MessageStringOf(x) }

func (*FrameResponse) ProtoMessage() {}

func (x *FrameResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *FrameResponse) GetPixels() []byte {
	if x != nil {
		return x.Pixels
	}
	return nil
}

type MemoryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Address uint32 `protobuf:"varint,1,opt,name=address,proto3" json:"address,omitempty"`
	Size    uint32 `protobuf:"varint,2,opt,name=size,proto3" json:"size,omitempty"`
}

func (x *MemoryRequest) Reset() {
	*x = MemoryRequest{}
	mi := &file_api_api_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemoryRequest) String() string { return protoimpl.X.MessageStringOf(x) }

func (*MemoryRequest) ProtoMessage() {}

func (x *MemoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *MemoryRequest) GetAddress() uint32 {
	if x != nil {
		return x.Address
	}
	return 0
}

func (x *MemoryRequest) GetSize() uint32 {
	if x != nil {
		return x.Size
	}
	return 0
}

type MemoryResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (x *MemoryResponse) Reset() {
	*x = MemoryResponse{}
	mi := &file_api_api_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemoryResponse) String() string { return protoimpl.X.MessageStringOf(x) }

func (*MemoryResponse) ProtoMessage() {}

func (x *MemoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *MemoryResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type CpuStateResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	A      uint32 `protobuf:"varint,1,opt,name=a,proto3" json:"a,omitempty"`
	X      uint32 `protobuf:"varint,2,opt,name=x,proto3" json:"x,omitempty"`
	Y      uint32 `protobuf:"varint,3,opt,name=y,proto3" json:"y,omitempty"`
	Sp     uint32 `protobuf:"varint,4,opt,name=sp,proto3" json:"sp,omitempty"`
	P      uint32 `protobuf:"varint,5,opt,name=p,proto3" json:"p,omitempty"`
	Pc     uint32 `protobuf:"varint,6,opt,name=pc,proto3" json:"pc,omitempty"`
	Cycles uint64 `protobuf:"varint,7,opt,name=cycles,proto3" json:"cycles,omitempty"`
}

func (x *CpuStateResponse) Reset() {
	*x = CpuStateResponse{}
	mi := &file_api_api_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CpuStateResponse) String() string { return protoimpl.X.MessageStringOf(x) }

func (*CpuStateResponse) ProtoMessage() {}

func (x *CpuStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CpuStateResponse) GetA() uint32 {
	if x != nil {
		return x.A
	}
	return 0
}

func (x *CpuStateResponse) GetX() uint32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *CpuStateResponse) GetY() uint32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *CpuStateResponse) GetSp() uint32 {
	if x != nil {
		return x.Sp
	}
	return 0
}

func (x *CpuStateResponse) GetP() uint32 {
	if x != nil {
		return x.P
	}
	return 0
}

func (x *CpuStateResponse) GetPc() uint32 {
	if x != nil {
		return x.Pc
	}
	return 0
}

func (x *CpuStateResponse) GetCycles() uint64 {
	if x != nil {
		return x.Cycles
	}
	return 0
}

type StateRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Filename string `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
}

func (x *StateRequest) Reset() {
	*x = StateRequest{}
	mi := &file_api_api_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StateRequest) String() string { return protoimpl.X.MessageStringOf(x) }

func (*StateRequest) ProtoMessage() {}

func (x *StateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_api_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *StateRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_api_api_proto protoreflect.FileDescriptor

var file_api_api_proto_msgTypes = make([]protoimpl.MessageInfo, 7)

var file_api_api_proto_goTypes = []any{
	(*Empty)(nil),            // 0: api.Empty
	(*InputState)(nil),       // 1: api.InputState
	(*FrameResponse)(nil),    // 2: api.FrameResponse
	(*MemoryRequest)(nil),    // 3: api.MemoryRequest
	(*MemoryResponse)(nil),   // 4: api.MemoryResponse
	(*CpuStateResponse)(nil), // 5: api.CpuStateResponse
	(*StateRequest)(nil),     // 6: api.StateRequest
}

var file_api_api_proto_depIdxs = []int32{
	1, // 0: api.ControllerService.SendInput:input_type -> api.InputState
	0, // 1: api.ControllerService.GetFrame:input_type -> api.Empty
	3, // 2: api.ControllerService.ReadMemory:input_type -> api.MemoryRequest
	0, // 3: api.ControllerService.GetCpuState:input_type -> api.Empty
	0, // 4: api.ControllerService.Pause:input_type -> api.Empty
	0, // 5: api.ControllerService.Resume:input_type -> api.Empty
	0, // 6: api.ControllerService.Step:input_type -> api.Empty
	0, // 7: api.ControllerService.Reset:input_type -> api.Empty
	6, // 8: api.ControllerService.LoadState:input_type -> api.StateRequest
	0, // 9: api.ControllerService.SendInput:output_type -> api.Empty
	2, // 10: api.ControllerService.GetFrame:output_type -> api.FrameResponse
	4, // 11: api.ControllerService.ReadMemory:output_type -> api.MemoryResponse
	5, // 12: api.ControllerService.GetCpuState:output_type -> api.CpuStateResponse
	0, // 13: api.ControllerService.Pause:output_type -> api.Empty
	0, // 14: api.ControllerService.Resume:output_type -> api.Empty
	0, // 15: api.ControllerService.Step:output_type -> api.Empty
	0, // 16: api.ControllerService.Reset:output_type -> api.Empty
	0, // 17: api.ControllerService.LoadState:output_type -> api.Empty
	9, // [9:18] is the sub-list for method output_type
	0, // [0:9] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_api_api_proto_init() }
func file_api_api_proto_init() {
	if File_api_api_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_api_proto_rawDesc(),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_api_proto_goTypes,
		DependencyIndexes: file_api_api_proto_depIdxs,
		MessageInfos:      file_api_api_proto_msgTypes,
	}.Build()
	File_api_api_proto = out.File
	file_api_api_proto_goTypes = nil
	file_api_api_proto_depIdxs = nil
}
