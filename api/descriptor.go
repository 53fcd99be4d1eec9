package api

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// file_api_api_proto_rawDesc serializes the descriptor for
// api/api.proto. Keep this in sync with the .proto file.
func file_api_api_proto_rawDesc() []byte {
	field := func(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(number),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   typ.Enum(),
		}
	}
	boolField := func(name string, number int32) *descriptorpb.FieldDescriptorProto {
		return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_BOOL)
	}
	u32Field := func(name string, number int32) *descriptorpb.FieldDescriptorProto {
		return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_UINT32)
	}
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(".api." + in),
			OutputType: proto.String(".api." + out),
		}
	}

	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("api/api.proto"),
		Package: proto.String("api"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/meadori/dotnes/api"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("Empty")},
			{Name: proto.String("InputState"), Field: []*descriptorpb.FieldDescriptorProto{
				u32Field("player_index", 1),
				boolField("a", 2),
				boolField("b", 3),
				boolField("select", 4),
				boolField("start", 5),
				boolField("up", 6),
				boolField("down", 7),
				boolField("left", 8),
				boolField("right", 9),
			}},
			{Name: proto.String("FrameResponse"), Field: []*descriptorpb.FieldDescriptorProto{
				field("pixels", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			}},
			{Name: proto.String("MemoryRequest"), Field: []*descriptorpb.FieldDescriptorProto{
				u32Field("address", 1),
				u32Field("size", 2),
			}},
			{Name: proto.String("MemoryResponse"), Field: []*descriptorpb.FieldDescriptorProto{
				field("data", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			}},
			{Name: proto.String("CpuStateResponse"), Field: []*descriptorpb.FieldDescriptorProto{
				u32Field("a", 1),
				u32Field("x", 2),
				u32Field("y", 3),
				u32Field("sp", 4),
				u32Field("p", 5),
				u32Field("pc", 6),
				field("cycles", 7, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			}},
			{Name: proto.String("StateRequest"), Field: []*descriptorpb.FieldDescriptorProto{
				field("filename", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			}},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("ControllerService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					method("SendInput", "InputState", "Empty"),
					method("GetFrame", "Empty", "FrameResponse"),
					method("ReadMemory", "MemoryRequest", "MemoryResponse"),
					method("GetCpuState", "Empty", "CpuStateResponse"),
					method("Pause", "Empty", "Empty"),
					method("Resume", "Empty", "Empty"),
					method("Step", "Empty", "Empty"),
					method("Reset", "Empty", "Empty"),
					method("LoadState", "StateRequest", "Empty"),
				},
			},
		},
	}

	raw, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}
	return raw
}
