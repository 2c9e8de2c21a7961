package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pb "moonlight/proto/chat"

	"moonlight/auth"
	"moonlight/contract"
	"moonlight/domain"
	"moonlight/domain/event"
	"moonlight/errors"
	"moonlight/services"
	"moonlight/sink"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	log                  *slog.Logger
	messageService       services.IMessageService
	sessions             contract.SessionDirectory
	connectionBufferSize int
	deliveryTimeout      time.Duration
}

func NewChatServer(log *slog.Logger, messageService services.IMessageService,
	sessions contract.SessionDirectory, connectionBufferSize int,
	deliveryTimeout time.Duration) *ChatServer {
	return &ChatServer{
		log:                  log,
		messageService:       messageService,
		sessions:             sessions,
		connectionBufferSize: connectionBufferSize,
		deliveryTimeout:      deliveryTimeout,
	}
}

// SendPrivate routes a message to a single user. The sender is always the
// authenticated principal; the payload carries no trusted sender field.
func (s *ChatServer) SendPrivate(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}
	message, err := s.messageService.RoutePrivate(ctx, principal, toInboundMessage(req))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{
		SentAt: timestamppb.New(message.SentAt),
		Status: toStatusPb(message.Status),
	}, nil
}

// SendGroup routes a message to every member of the recipient group except
// the sender.
func (s *ChatServer) SendGroup(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}
	message, err := s.messageService.RouteGroup(ctx, principal, toInboundMessage(req))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{
		SentAt: timestamppb.New(message.SentAt),
		Status: toStatusPb(message.Status),
	}, nil
}

// ReportDelivery applies a client-reported DELIVERED/READ transition and
// returns the resulting status. The receipt echoes the original message
// fields so the server derives the key without a correlation cache.
func (s *ChatServer) ReportDelivery(ctx context.Context, req *pb.DeliveryReport) (*pb.DeliveryReportResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}
	receipt := domain.DeliveryReceipt{
		From:     req.From,
		SentAt:   req.SentAt.AsTime(),
		PacketID: req.PacketId,
		Status:   toDomainStatus(req.Status),
	}
	echo, err := s.messageService.UpdateDeliveryStatus(ctx, principal, receipt)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DeliveryReportResponse{Status: toStatusPb(echo.Status)}, nil
}

// GetHistory returns the principal's full message log, or the conversation
// with one companion when the request names one.
func (s *ChatServer) GetHistory(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	if req.Companion == "" {
		messages, err = s.messageService.GetMessagesOfUser(principal)
	} else {
		var companion domain.Participant
		companion, err = domain.NewParticipant(toDomainType(req.CompanionType), req.Companion)
		if err != nil {
			return nil, errors.MapToGRPCError(err)
		}
		messages, err = s.messageService.GetMessagesBetween(principal, companion)
	}
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.HistoryResponse{Messages: toMessagesPb(messages)}, nil
}

// Connect establishes the long-lived personal queue stream. It registers a
// dedicated sink in the session registry and blocks until the client
// disconnects; deferred unregistration keeps the registry leak-free.
func (s *ChatServer) Connect(_ *pb.ConnectRequest, stream pb.ChatService_ConnectServer) error {
	principal, err := auth.Principal(stream.Context())
	if err != nil {
		return err
	}
	queue := sink.NewGrpcSink(s.log, s.connectionBufferSize, s.deliveryTimeout)
	s.sessions.Subscribe(principal, queue)
	defer s.sessions.Unsubscribe(principal)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Warn(fmt.Sprintf("Client %s disconnected", principal))
			return nil
		case evt := <-queue.ConnectedUserEvent:
			if err := stream.Send(toChatEvent(evt)); err != nil {
				s.log.Error("failed to push event to stream",
					"user", principal,
					"error", err)
				return err
			}
		}
	}
}

func toChatEvent(e event.DomainEvent) *pb.ChatEvent {
	switch evt := e.(type) {
	case event.MessageIncoming:
		return &pb.ChatEvent{Event: &pb.ChatEvent_Message{Message: toMessagePb(evt.Message)}}
	case event.DeliveryUpdate:
		return &pb.ChatEvent{Event: &pb.ChatEvent_Delivery{Delivery: &pb.DeliveryReport{
			From:          evt.Receipt.From,
			RecipientType: toTypePb(evt.Receipt.To.Type),
			Recipient:     evt.Receipt.To.Signature,
			SentAt:        timestamppb.New(evt.Receipt.SentAt),
			PacketId:      evt.Receipt.PacketID,
			Status:        toStatusPb(evt.Receipt.Status),
		}}}
	case event.ContactUpdate:
		return &pb.ChatEvent{Event: &pb.ChatEvent_Contact{Contact: &pb.ContactEvent{
			Sender:    evt.Request.Sender,
			Recipient: evt.Request.Recipient,
			Context:   toTypePb(evt.Request.Context),
			ContextId: evt.Request.ContextID,
			Status:    string(evt.Request.Status),
			At:        timestamppb.New(evt.Request.At),
		}}}
	default:
		return &pb.ChatEvent{}
	}
}

func toInboundMessage(req *pb.SendMessageRequest) domain.Message {
	return domain.Message{
		To: domain.Participant{
			Type:      toDomainType(req.RecipientType),
			Signature: req.Recipient,
		},
		PacketID: req.PacketId,
		Subject:  req.Subject,
		Body:     req.Body,
	}
}

func toMessagesPb(messages []domain.Message) []*pb.ChatMessage {
	return lo.Map(messages, func(item domain.Message, _ int) *pb.ChatMessage {
		return toMessagePb(item)
	})
}

func toMessagePb(message domain.Message) *pb.ChatMessage {
	return &pb.ChatMessage{
		From:          message.From,
		RecipientType: toTypePb(message.To.Type),
		Recipient:     message.To.Signature,
		SentAt:        timestamppb.New(message.SentAt),
		PacketId:      message.PacketID,
		Subject:       message.Subject,
		Body:          message.Body,
		Status:        toStatusPb(message.Status),
	}
}

func toDomainType(t pb.ParticipantType) domain.ParticipantType {
	switch t {
	case pb.ParticipantType_USER:
		return domain.ParticipantUser
	case pb.ParticipantType_GROUP:
		return domain.ParticipantGroup
	default:
		return ""
	}
}

func toTypePb(t domain.ParticipantType) pb.ParticipantType {
	switch t {
	case domain.ParticipantUser:
		return pb.ParticipantType_USER
	case domain.ParticipantGroup:
		return pb.ParticipantType_GROUP
	default:
		return pb.ParticipantType_PARTICIPANT_TYPE_UNSPECIFIED
	}
}

func toDomainStatus(s pb.DeliveryStatus) domain.DeliveryStatus {
	switch s {
	case pb.DeliveryStatus_SENT:
		return domain.StatusSent
	case pb.DeliveryStatus_ARRIVED:
		return domain.StatusArrived
	case pb.DeliveryStatus_DELIVERED:
		return domain.StatusDelivered
	case pb.DeliveryStatus_READ:
		return domain.StatusRead
	default:
		return 0
	}
}

func toStatusPb(s domain.DeliveryStatus) pb.DeliveryStatus {
	switch s {
	case domain.StatusSent:
		return pb.DeliveryStatus_SENT
	case domain.StatusArrived:
		return pb.DeliveryStatus_ARRIVED
	case domain.StatusDelivered:
		return pb.DeliveryStatus_DELIVERED
	case domain.StatusRead:
		return pb.DeliveryStatus_READ
	default:
		return pb.DeliveryStatus_DELIVERY_STATUS_UNSPECIFIED
	}
}
