// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: chat.proto

package chat

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type ParticipantType int32

const (
	ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED ParticipantType = 0
	ParticipantType_USER                         ParticipantType = 1
	ParticipantType_GROUP                        ParticipantType = 2
)

// Enum value maps for ParticipantType.
var (
	ParticipantType_name = map[int32]string{
		0: "PARTICIPANT_TYPE_UNSPECIFIED",
		1: "USER",
		2: "GROUP",
	}
	ParticipantType_value = map[string]int32{
		"PARTICIPANT_TYPE_UNSPECIFIED": 0,
		"USER":                         1,
		"GROUP":                        2,
	}
)

func (x ParticipantType) Enum() *ParticipantType {
	p := new(ParticipantType)
	*p = x
	return p
}

func (x ParticipantType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ParticipantType) Descriptor() protoreflect.EnumDescriptor {
	return file_chat_proto_enumTypes[0].Descriptor()
}

func (ParticipantType) Type() protoreflect.EnumType {
	return &file_chat_proto_enumTypes[0]
}

func (x ParticipantType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ParticipantType.Descriptor instead.
func (ParticipantType) EnumDescriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{0}
}

type DeliveryStatus int32

const (
	DeliveryStatus_DELIVERY_STATUS_UNSPECIFIED DeliveryStatus = 0
	DeliveryStatus_SENT                        DeliveryStatus = 1
	DeliveryStatus_ARRIVED                     DeliveryStatus = 2
	DeliveryStatus_DELIVERED                   DeliveryStatus = 3
	DeliveryStatus_READ                        DeliveryStatus = 4
)

// Enum value maps for DeliveryStatus.
var (
	DeliveryStatus_name = map[int32]string{
		0: "DELIVERY_STATUS_UNSPECIFIED",
		1: "SENT",
		2: "ARRIVED",
		3: "DELIVERED",
		4: "READ",
	}
	DeliveryStatus_value = map[string]int32{
		"DELIVERY_STATUS_UNSPECIFIED": 0,
		"SENT":                        1,
		"ARRIVED":                     2,
		"DELIVERED":                   3,
		"READ":                        4,
	}
)

func (x DeliveryStatus) Enum() *DeliveryStatus {
	p := new(DeliveryStatus)
	*p = x
	return p
}

func (x DeliveryStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (DeliveryStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_chat_proto_enumTypes[1].Descriptor()
}

func (DeliveryStatus) Type() protoreflect.EnumType {
	return &file_chat_proto_enumTypes[1]
}

func (x DeliveryStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use DeliveryStatus.Descriptor instead.
func (DeliveryStatus) EnumDescriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{1}
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipient     string                 `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	RecipientType ParticipantType        `protobuf:"varint,2,opt,name=recipient_type,json=recipientType,proto3,enum=chat.ParticipantType" json:"recipient_type,omitempty"`
	PacketId      string                 `protobuf:"bytes,3,opt,name=packet_id,json=packetId,proto3" json:"packet_id,omitempty"`
	Subject       string                 `protobuf:"bytes,4,opt,name=subject,proto3" json:"subject,omitempty"`
	Body          string                 `protobuf:"bytes,5,opt,name=body,proto3" json:"body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_chat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{0}
}

func (x *SendMessageRequest) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

func (x *SendMessageRequest) GetRecipientType() ParticipantType {
	if x != nil {
		return x.RecipientType
	}
	return ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED
}

func (x *SendMessageRequest) GetPacketId() string {
	if x != nil {
		return x.PacketId
	}
	return ""
}

func (x *SendMessageRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *SendMessageRequest) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type SendMessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SentAt        *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=sent_at,json=sentAt,proto3" json:"sent_at,omitempty"`
	Status        DeliveryStatus         `protobuf:"varint,2,opt,name=status,proto3,enum=chat.DeliveryStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageResponse) Reset() {
	*x = SendMessageResponse{}
	mi := &file_chat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageResponse) ProtoMessage() {}

func (x *SendMessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageResponse.ProtoReflect.Descriptor instead.
func (*SendMessageResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{1}
}

func (x *SendMessageResponse) GetSentAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SentAt
	}
	return nil
}

func (x *SendMessageResponse) GetStatus() DeliveryStatus {
	if x != nil {
		return x.Status
	}
	return DeliveryStatus_DELIVERY_STATUS_UNSPECIFIED
}

// Echoes the constituent fields of the original message so the server can
// derive its key without a correlation cache.
type DeliveryReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          string                 `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	RecipientType ParticipantType        `protobuf:"varint,2,opt,name=recipient_type,json=recipientType,proto3,enum=chat.ParticipantType" json:"recipient_type,omitempty"`
	Recipient     string                 `protobuf:"bytes,3,opt,name=recipient,proto3" json:"recipient,omitempty"`
	SentAt        *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=sent_at,json=sentAt,proto3" json:"sent_at,omitempty"`
	PacketId      string                 `protobuf:"bytes,5,opt,name=packet_id,json=packetId,proto3" json:"packet_id,omitempty"`
	Status        DeliveryStatus         `protobuf:"varint,6,opt,name=status,proto3,enum=chat.DeliveryStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeliveryReport) Reset() {
	*x = DeliveryReport{}
	mi := &file_chat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeliveryReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeliveryReport) ProtoMessage() {}

func (x *DeliveryReport) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeliveryReport.ProtoReflect.Descriptor instead.
func (*DeliveryReport) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{2}
}

func (x *DeliveryReport) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *DeliveryReport) GetRecipientType() ParticipantType {
	if x != nil {
		return x.RecipientType
	}
	return ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED
}

func (x *DeliveryReport) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

func (x *DeliveryReport) GetSentAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SentAt
	}
	return nil
}

func (x *DeliveryReport) GetPacketId() string {
	if x != nil {
		return x.PacketId
	}
	return ""
}

func (x *DeliveryReport) GetStatus() DeliveryStatus {
	if x != nil {
		return x.Status
	}
	return DeliveryStatus_DELIVERY_STATUS_UNSPECIFIED
}

type DeliveryReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        DeliveryStatus         `protobuf:"varint,1,opt,name=status,proto3,enum=chat.DeliveryStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeliveryReportResponse) Reset() {
	*x = DeliveryReportResponse{}
	mi := &file_chat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeliveryReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeliveryReportResponse) ProtoMessage() {}

func (x *DeliveryReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeliveryReportResponse.ProtoReflect.Descriptor instead.
func (*DeliveryReportResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{3}
}

func (x *DeliveryReportResponse) GetStatus() DeliveryStatus {
	if x != nil {
		return x.Status
	}
	return DeliveryStatus_DELIVERY_STATUS_UNSPECIFIED
}

type HistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanionType ParticipantType        `protobuf:"varint,1,opt,name=companion_type,json=companionType,proto3,enum=chat.ParticipantType" json:"companion_type,omitempty"`
	Companion     string                 `protobuf:"bytes,2,opt,name=companion,proto3" json:"companion,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistoryRequest) Reset() {
	*x = HistoryRequest{}
	mi := &file_chat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryRequest) ProtoMessage() {}

func (x *HistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryRequest.ProtoReflect.Descriptor instead.
func (*HistoryRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{4}
}

func (x *HistoryRequest) GetCompanionType() ParticipantType {
	if x != nil {
		return x.CompanionType
	}
	return ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED
}

func (x *HistoryRequest) GetCompanion() string {
	if x != nil {
		return x.Companion
	}
	return ""
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          string                 `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	RecipientType ParticipantType        `protobuf:"varint,2,opt,name=recipient_type,json=recipientType,proto3,enum=chat.ParticipantType" json:"recipient_type,omitempty"`
	Recipient     string                 `protobuf:"bytes,3,opt,name=recipient,proto3" json:"recipient,omitempty"`
	SentAt        *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=sent_at,json=sentAt,proto3" json:"sent_at,omitempty"`
	PacketId      string                 `protobuf:"bytes,5,opt,name=packet_id,json=packetId,proto3" json:"packet_id,omitempty"`
	Subject       string                 `protobuf:"bytes,6,opt,name=subject,proto3" json:"subject,omitempty"`
	Body          string                 `protobuf:"bytes,7,opt,name=body,proto3" json:"body,omitempty"`
	Status        DeliveryStatus         `protobuf:"varint,8,opt,name=status,proto3,enum=chat.DeliveryStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_chat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{5}
}

func (x *ChatMessage) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *ChatMessage) GetRecipientType() ParticipantType {
	if x != nil {
		return x.RecipientType
	}
	return ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED
}

func (x *ChatMessage) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

func (x *ChatMessage) GetSentAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SentAt
	}
	return nil
}

func (x *ChatMessage) GetPacketId() string {
	if x != nil {
		return x.PacketId
	}
	return ""
}

func (x *ChatMessage) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *ChatMessage) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

func (x *ChatMessage) GetStatus() DeliveryStatus {
	if x != nil {
		return x.Status
	}
	return DeliveryStatus_DELIVERY_STATUS_UNSPECIFIED
}

type HistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Messages      []*ChatMessage         `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistoryResponse) Reset() {
	*x = HistoryResponse{}
	mi := &file_chat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistoryResponse) ProtoMessage() {}

func (x *HistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistoryResponse.ProtoReflect.Descriptor instead.
func (*HistoryResponse) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{6}
}

func (x *HistoryResponse) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

type ConnectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectRequest) Reset() {
	*x = ConnectRequest{}
	mi := &file_chat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectRequest) ProtoMessage() {}

func (x *ConnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectRequest.ProtoReflect.Descriptor instead.
func (*ConnectRequest) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{7}
}

type ContactEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sender        string                 `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Recipient     string                 `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Context       ParticipantType        `protobuf:"varint,3,opt,name=context,proto3,enum=chat.ParticipantType" json:"context,omitempty"`
	ContextId     string                 `protobuf:"bytes,4,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	At            *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContactEvent) Reset() {
	*x = ContactEvent{}
	mi := &file_chat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContactEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContactEvent) ProtoMessage() {}

func (x *ContactEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContactEvent.ProtoReflect.Descriptor instead.
func (*ContactEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{8}
}

func (x *ContactEvent) GetSender() string {
	if x != nil {
		return x.Sender
	}
	return ""
}

func (x *ContactEvent) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

func (x *ContactEvent) GetContext() ParticipantType {
	if x != nil {
		return x.Context
	}
	return ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED
}

func (x *ContactEvent) GetContextId() string {
	if x != nil {
		return x.ContextId
	}
	return ""
}

func (x *ContactEvent) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ContactEvent) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type ChatEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*ChatEvent_Message
	//	*ChatEvent_Delivery
	//	*ChatEvent_Contact
	Event         isChatEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatEvent) Reset() {
	*x = ChatEvent{}
	mi := &file_chat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatEvent) ProtoMessage() {}

func (x *ChatEvent) ProtoReflect() protoreflect.Message {
	mi := &file_chat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatEvent.ProtoReflect.Descriptor instead.
func (*ChatEvent) Descriptor() ([]byte, []int) {
	return file_chat_proto_rawDescGZIP(), []int{9}
}

func (x *ChatEvent) GetEvent() isChatEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *ChatEvent) GetMessage() *ChatMessage {
	if x != nil {
		if x, ok := x.Event.(*ChatEvent_Message); ok {
			return x.Message
		}
	}
	return nil
}

func (x *ChatEvent) GetDelivery() *DeliveryReport {
	if x != nil {
		if x, ok := x.Event.(*ChatEvent_Delivery); ok {
			return x.Delivery
		}
	}
	return nil
}

func (x *ChatEvent) GetContact() *ContactEvent {
	if x != nil {
		if x, ok := x.Event.(*ChatEvent_Contact); ok {
			return x.Contact
		}
	}
	return nil
}

type isChatEvent_Event interface {
	isChatEvent_Event()
}

type ChatEvent_Message struct {
	Message *ChatMessage `protobuf:"bytes,1,opt,name=message,proto3,oneof"`
}

type ChatEvent_Delivery struct {
	Delivery *DeliveryReport `protobuf:"bytes,2,opt,name=delivery,proto3,oneof"`
}

type ChatEvent_Contact struct {
	Contact *ContactEvent `protobuf:"bytes,3,opt,name=contact,proto3,oneof"`
}

func (*ChatEvent_Message) isChatEvent_Event() {}

func (*ChatEvent_Delivery) isChatEvent_Event() {}

func (*ChatEvent_Contact) isChatEvent_Event() {}

var File_chat_proto protoreflect.FileDescriptor

const file_chat_proto_rawDesc = "" +
	"\n" +
	"\n" +
	"chat.proto\x12\x04chat\x1a\x1fgoogle/protobuf/timestamp.proto\"\xbb\x01\n" +
	"\x12SendMessageRequest\x12\x1c\n" +
	"\trecipient\x18\x01 \x01(\tR\trecipient\x12<\n" +
	"\x0erecipient_type\x18\x02 \x01(\x0e2\x15.chat.ParticipantTypeR\rrecipientType\x12\x1b\n" +
	"\tpacket_id\x18\x03 \x01(\tR\bpacketId\x12\x18\n" +
	"\asubject\x18\x04 \x01(\tR\asubject\x12\x12\n" +
	"\x04body\x18\x05 \x01(\tR\x04body\"x\n" +
	"\x13SendMessageResponse\x123\n" +
	"\asent_at\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x06sentAt\x12,\n" +
	"\x06status\x18\x02 \x01(\x0e2\x14.chat.DeliveryStatusR\x06status\"\x80\x02\n" +
	"\x0eDeliveryReport\x12\x12\n" +
	"\x04from\x18\x01 \x01(\tR\x04from\x12<\n" +
	"\x0erecipient_type\x18\x02 \x01(\x0e2\x15.chat.ParticipantTypeR\rrecipientType\x12\x1c\n" +
	"\trecipient\x18\x03 \x01(\tR\trecipient\x123\n" +
	"\asent_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x06sentAt\x12\x1b\n" +
	"\tpacket_id\x18\x05 \x01(\tR\bpacketId\x12,\n" +
	"\x06status\x18\x06 \x01(\x0e2\x14.chat.DeliveryStatusR\x06status\"F\n" +
	"\x16DeliveryReportResponse\x12,\n" +
	"\x06status\x18\x01 \x01(\x0e2\x14.chat.DeliveryStatusR\x06status\"l\n" +
	"\x0eHistoryRequest\x12<\n" +
	"\x0ecompanion_type\x18\x01 \x01(\x0e2\x15.chat.ParticipantTypeR\rcompanionType\x12\x1c\n" +
	"\tcompanion\x18\x02 \x01(\tR\tcompanion\"\xab\x02\n" +
	"\vChatMessage\x12\x12\n" +
	"\x04from\x18\x01 \x01(\tR\x04from\x12<\n" +
	"\x0erecipient_type\x18\x02 \x01(\x0e2\x15.chat.ParticipantTypeR\rrecipientType\x12\x1c\n" +
	"\trecipient\x18\x03 \x01(\tR\trecipient\x123\n" +
	"\asent_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x06sentAt\x12\x1b\n" +
	"\tpacket_id\x18\x05 \x01(\tR\bpacketId\x12\x18\n" +
	"\asubject\x18\x06 \x01(\tR\asubject\x12\x12\n" +
	"\x04body\x18\a \x01(\tR\x04body\x12,\n" +
	"\x06status\x18\b \x01(\x0e2\x14.chat.DeliveryStatusR\x06status\"@\n" +
	"\x0fHistoryResponse\x12-\n" +
	"\bmessages\x18\x01 \x03(\v2\x11.chat.ChatMessageR\bmessages\"\x10\n" +
	"\x0eConnectRequest\"\xd8\x01\n" +
	"\fContactEvent\x12\x16\n" +
	"\x06sender\x18\x01 \x01(\tR\x06sender\x12\x1c\n" +
	"\trecipient\x18\x02 \x01(\tR\trecipient\x12/\n" +
	"\acontext\x18\x03 \x01(\x0e2\x15.chat.ParticipantTypeR\acontext\x12\x1d\n" +
	"\n" +
	"context_id\x18\x04 \x01(\tR\tcontextId\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12*\n" +
	"\x02at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x02at\"\xa7\x01\n" +
	"\tChatEvent\x12-\n" +
	"\amessage\x18\x01 \x01(\v2\x11.chat.ChatMessageH\x00R\amessage\x122\n" +
	"\bdelivery\x18\x02 \x01(\v2\x14.chat.DeliveryReportH\x00R\bdelivery\x12.\n" +
	"\acontact\x18\x03 \x01(\v2\x12.chat.ContactEventH\x00R\acontactB\a\n" +
	"\x05event*H\n" +
	"\x0fParticipantType\x12 \n" +
	"\x1cPARTICIPANT_TYPE_UNSPECIFIED\x10\x00\x12\b\n" +
	"\x04USER\x10\x01\x12\t\n" +
	"\x05GROUP\x10\x02*a\n" +
	"\x0eDeliveryStatus\x12\x1f\n" +
	"\x1bDELIVERY_STATUS_UNSPECIFIED\x10\x00\x12\b\n" +
	"\x04SENT\x10\x01\x12\v\n" +
	"\aARRIVED\x10\x02\x12\r\n" +
	"\tDELIVERED\x10\x03\x12\b\n" +
	"\x04READ\x10\x042\xc8\x02\n" +
	"\vChatService\x12B\n" +
	"\vSendPrivate\x12\x18.chat.SendMessageRequest\x1a\x19.chat.SendMessageResponse\x12@\n" +
	"\tSendGroup\x12\x18.chat.SendMessageRequest\x1a\x19.chat.SendMessageResponse\x12D\n" +
	"\x0eReportDelivery\x12\x14.chat.DeliveryReport\x1a\x1c.chat.DeliveryReportResponse\x129\n" +
	"\n" +
	"GetHistory\x12\x14.chat.HistoryRequest\x1a\x15.chat.HistoryResponse\x122\n" +
	"\aConnect\x12\x14.chat.ConnectRequest\x1a\x0f.chat.ChatEvent0\x01B\x16Z\x14moonlight/proto/chatb\x06proto3"

var (
	file_chat_proto_rawDescOnce sync.Once
	file_chat_proto_rawDescData []byte
)

func file_chat_proto_rawDescGZIP() []byte {
	file_chat_proto_rawDescOnce.Do(func() {
		file_chat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)))
	})
	return file_chat_proto_rawDescData
}

var file_chat_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_chat_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_chat_proto_goTypes = []any{
	(ParticipantType)(0),           // 0: chat.ParticipantType
	(DeliveryStatus)(0),            // 1: chat.DeliveryStatus
	(*SendMessageRequest)(nil),     // 2: chat.SendMessageRequest
	(*SendMessageResponse)(nil),    // 3: chat.SendMessageResponse
	(*DeliveryReport)(nil),         // 4: chat.DeliveryReport
	(*DeliveryReportResponse)(nil), // 5: chat.DeliveryReportResponse
	(*HistoryRequest)(nil),         // 6: chat.HistoryRequest
	(*ChatMessage)(nil),            // 7: chat.ChatMessage
	(*HistoryResponse)(nil),        // 8: chat.HistoryResponse
	(*ConnectRequest)(nil),         // 9: chat.ConnectRequest
	(*ContactEvent)(nil),           // 10: chat.ContactEvent
	(*ChatEvent)(nil),              // 11: chat.ChatEvent
	(*timestamppb.Timestamp)(nil),  // 12: google.protobuf.Timestamp
}
var file_chat_proto_depIdxs = []int32{
	0,  // 0: chat.SendMessageRequest.recipient_type:type_name -> chat.ParticipantType
	12, // 1: chat.SendMessageResponse.sent_at:type_name -> google.protobuf.Timestamp
	1,  // 2: chat.SendMessageResponse.status:type_name -> chat.DeliveryStatus
	0,  // 3: chat.DeliveryReport.recipient_type:type_name -> chat.ParticipantType
	12, // 4: chat.DeliveryReport.sent_at:type_name -> google.protobuf.Timestamp
	1,  // 5: chat.DeliveryReport.status:type_name -> chat.DeliveryStatus
	1,  // 6: chat.DeliveryReportResponse.status:type_name -> chat.DeliveryStatus
	0,  // 7: chat.HistoryRequest.companion_type:type_name -> chat.ParticipantType
	0,  // 8: chat.ChatMessage.recipient_type:type_name -> chat.ParticipantType
	12, // 9: chat.ChatMessage.sent_at:type_name -> google.protobuf.Timestamp
	1,  // 10: chat.ChatMessage.status:type_name -> chat.DeliveryStatus
	7,  // 11: chat.HistoryResponse.messages:type_name -> chat.ChatMessage
	0,  // 12: chat.ContactEvent.context:type_name -> chat.ParticipantType
	12, // 13: chat.ContactEvent.at:type_name -> google.protobuf.Timestamp
	7,  // 14: chat.ChatEvent.message:type_name -> chat.ChatMessage
	4,  // 15: chat.ChatEvent.delivery:type_name -> chat.DeliveryReport
	10, // 16: chat.ChatEvent.contact:type_name -> chat.ContactEvent
	2,  // 17: chat.ChatService.SendPrivate:input_type -> chat.SendMessageRequest
	2,  // 18: chat.ChatService.SendGroup:input_type -> chat.SendMessageRequest
	4,  // 19: chat.ChatService.ReportDelivery:input_type -> chat.DeliveryReport
	6,  // 20: chat.ChatService.GetHistory:input_type -> chat.HistoryRequest
	9,  // 21: chat.ChatService.Connect:input_type -> chat.ConnectRequest
	3,  // 22: chat.ChatService.SendPrivate:output_type -> chat.SendMessageResponse
	3,  // 23: chat.ChatService.SendGroup:output_type -> chat.SendMessageResponse
	5,  // 24: chat.ChatService.ReportDelivery:output_type -> chat.DeliveryReportResponse
	8,  // 25: chat.ChatService.GetHistory:output_type -> chat.HistoryResponse
	11, // 26: chat.ChatService.Connect:output_type -> chat.ChatEvent
	22, // [22:27] is the sub-list for method output_type
	17, // [17:22] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_chat_proto_init() }
func file_chat_proto_init() {
	if File_chat_proto != nil {
		return
	}
	file_chat_proto_msgTypes[9].OneofWrappers = []any{
		(*ChatEvent_Message)(nil),
		(*ChatEvent_Delivery)(nil),
		(*ChatEvent_Contact)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_chat_proto_rawDesc), len(file_chat_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chat_proto_goTypes,
		DependencyIndexes: file_chat_proto_depIdxs,
		EnumInfos:         file_chat_proto_enumTypes,
		MessageInfos:      file_chat_proto_msgTypes,
	}.Build()
	File_chat_proto = out.File
	file_chat_proto_goTypes = nil
	file_chat_proto_depIdxs = nil
}
