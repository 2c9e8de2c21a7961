// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: groups.proto

package groups

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Signature     string                 `protobuf:"bytes,1,opt,name=signature,proto3" json:"signature,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupRequest) Reset() {
	*x = GroupRequest{}
	mi := &file_groups_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupRequest) ProtoMessage() {}

func (x *GroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_groups_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupRequest.ProtoReflect.Descriptor instead.
func (*GroupRequest) Descriptor() ([]byte, []int) {
	return file_groups_proto_rawDescGZIP(), []int{0}
}

func (x *GroupRequest) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

type GroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Signature     string                 `protobuf:"bytes,1,opt,name=signature,proto3" json:"signature,omitempty"`
	Opened        bool                   `protobuf:"varint,2,opt,name=opened,proto3" json:"opened,omitempty"`
	Participants  []string               `protobuf:"bytes,3,rep,name=participants,proto3" json:"participants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupResponse) Reset() {
	*x = GroupResponse{}
	mi := &file_groups_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupResponse) ProtoMessage() {}

func (x *GroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_groups_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupResponse.ProtoReflect.Descriptor instead.
func (*GroupResponse) Descriptor() ([]byte, []int) {
	return file_groups_proto_rawDescGZIP(), []int{1}
}

func (x *GroupResponse) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

func (x *GroupResponse) GetOpened() bool {
	if x != nil {
		return x.Opened
	}
	return false
}

func (x *GroupResponse) GetParticipants() []string {
	if x != nil {
		return x.Participants
	}
	return nil
}

type GroupChangeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Signature     string                 `protobuf:"bytes,1,opt,name=signature,proto3" json:"signature,omitempty"`
	Add           []string               `protobuf:"bytes,2,rep,name=add,proto3" json:"add,omitempty"`
	Remove        []string               `protobuf:"bytes,3,rep,name=remove,proto3" json:"remove,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupChangeRequest) Reset() {
	*x = GroupChangeRequest{}
	mi := &file_groups_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupChangeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupChangeRequest) ProtoMessage() {}

func (x *GroupChangeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_groups_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupChangeRequest.ProtoReflect.Descriptor instead.
func (*GroupChangeRequest) Descriptor() ([]byte, []int) {
	return file_groups_proto_rawDescGZIP(), []int{2}
}

func (x *GroupChangeRequest) GetSignature() string {
	if x != nil {
		return x.Signature
	}
	return ""
}

func (x *GroupChangeRequest) GetAdd() []string {
	if x != nil {
		return x.Add
	}
	return nil
}

func (x *GroupChangeRequest) GetRemove() []string {
	if x != nil {
		return x.Remove
	}
	return nil
}

type GroupChangeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *GroupResponse         `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	Added         []string               `protobuf:"bytes,2,rep,name=added,proto3" json:"added,omitempty"`
	Removed       []string               `protobuf:"bytes,3,rep,name=removed,proto3" json:"removed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupChangeResponse) Reset() {
	*x = GroupChangeResponse{}
	mi := &file_groups_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupChangeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupChangeResponse) ProtoMessage() {}

func (x *GroupChangeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_groups_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupChangeResponse.ProtoReflect.Descriptor instead.
func (*GroupChangeResponse) Descriptor() ([]byte, []int) {
	return file_groups_proto_rawDescGZIP(), []int{3}
}

func (x *GroupChangeResponse) GetGroup() *GroupResponse {
	if x != nil {
		return x.Group
	}
	return nil
}

func (x *GroupChangeResponse) GetAdded() []string {
	if x != nil {
		return x.Added
	}
	return nil
}

func (x *GroupChangeResponse) GetRemoved() []string {
	if x != nil {
		return x.Removed
	}
	return nil
}

var File_groups_proto protoreflect.FileDescriptor

const file_groups_proto_rawDesc = "" +
	"\n" +
	"\fgroups.proto\x12\x06groups\",\n" +
	"\fGroupRequest\x12\x1c\n" +
	"\tsignature\x18\x01 \x01(\tR\tsignature\"i\n" +
	"\rGroupResponse\x12\x1c\n" +
	"\tsignature\x18\x01 \x01(\tR\tsignature\x12\x16\n" +
	"\x06opened\x18\x02 \x01(\bR\x06opened\x12\"\n" +
	"\fparticipants\x18\x03 \x03(\tR\fparticipants\"\\\n" +
	"\x12GroupChangeRequest\x12\x1c\n" +
	"\tsignature\x18\x01 \x01(\tR\tsignature\x12\x10\n" +
	"\x03add\x18\x02 \x03(\tR\x03add\x12\x16\n" +
	"\x06remove\x18\x03 \x03(\tR\x06remove\"r\n" +
	"\x13GroupChangeResponse\x12+\n" +
	"\x05group\x18\x01 \x01(\v2\x15.groups.GroupResponseR\x05group\x12\x14\n" +
	"\x05added\x18\x02 \x03(\tR\x05added\x12\x18\n" +
	"\aremoved\x18\x03 \x03(\tR\aremoved2\xbd\x01\n" +
	"\rGroupsService\x125\n" +
	"\x06Create\x12\x14.groups.GroupRequest\x1a\x15.groups.GroupResponse\x12A\n" +
	"\x06Change\x12\x1a.groups.GroupChangeRequest\x1a\x1b.groups.GroupChangeResponse\x122\n" +
	"\x03Get\x12\x14.groups.GroupRequest\x1a\x15.groups.GroupResponseB\x18Z\x16moonlight/proto/groupsb\x06proto3"

var (
	file_groups_proto_rawDescOnce sync.Once
	file_groups_proto_rawDescData []byte
)

func file_groups_proto_rawDescGZIP() []byte {
	file_groups_proto_rawDescOnce.Do(func() {
		file_groups_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_groups_proto_rawDesc), len(file_groups_proto_rawDesc)))
	})
	return file_groups_proto_rawDescData
}

var file_groups_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_groups_proto_goTypes = []any{
	(*GroupRequest)(nil),        // 0: groups.GroupRequest
	(*GroupResponse)(nil),       // 1: groups.GroupResponse
	(*GroupChangeRequest)(nil),  // 2: groups.GroupChangeRequest
	(*GroupChangeResponse)(nil), // 3: groups.GroupChangeResponse
}
var file_groups_proto_depIdxs = []int32{
	1, // 0: groups.GroupChangeResponse.group:type_name -> groups.GroupResponse
	0, // 1: groups.GroupsService.Create:input_type -> groups.GroupRequest
	2, // 2: groups.GroupsService.Change:input_type -> groups.GroupChangeRequest
	0, // 3: groups.GroupsService.Get:input_type -> groups.GroupRequest
	1, // 4: groups.GroupsService.Create:output_type -> groups.GroupResponse
	3, // 5: groups.GroupsService.Change:output_type -> groups.GroupChangeResponse
	1, // 6: groups.GroupsService.Get:output_type -> groups.GroupResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_groups_proto_init() }
func file_groups_proto_init() {
	if File_groups_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_groups_proto_rawDesc), len(file_groups_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_groups_proto_goTypes,
		DependencyIndexes: file_groups_proto_depIdxs,
		MessageInfos:      file_groups_proto_msgTypes,
	}.Build()
	File_groups_proto = out.File
	file_groups_proto_goTypes = nil
	file_groups_proto_depIdxs = nil
}
