package server

import (
	"context"

	pb "moonlight/proto/groups"

	"moonlight/auth"
	"moonlight/domain"
	"moonlight/errors"
	"moonlight/services"
)

type GroupsServer struct {
	pb.UnimplementedGroupsServiceServer
	groupService services.IGroupService
}

func NewGroupsServer(groupService services.IGroupService) *GroupsServer {
	return &GroupsServer{groupService: groupService}
}

// Create claims a group signature; the authenticated creator becomes its
// first member.
func (s *GroupsServer) Create(ctx context.Context, req *pb.GroupRequest) (*pb.GroupResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}
	group, err := s.groupService.CreateGroup(ctx, principal, req.Signature)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toGroupResponse(group), nil
}

// Change applies an add/remove membership command and returns the resulting
// view together with the net delta.
func (s *GroupsServer) Change(ctx context.Context, req *pb.GroupChangeRequest) (*pb.GroupChangeResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}
	group, delta, err := s.groupService.ChangeParticipants(ctx, principal, req.Signature, req.Add, req.Remove)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GroupChangeResponse{
		Group:   toGroupResponse(group),
		Added:   services.Signatures(delta.Added),
		Removed: services.Signatures(delta.Removed),
	}, nil
}

// Get returns the membership of a group, subject to the opened/closed
// visibility rule.
func (s *GroupsServer) Get(ctx context.Context, req *pb.GroupRequest) (*pb.GroupResponse, error) {
	principal, err := auth.Principal(ctx)
	if err != nil {
		return nil, err
	}
	group, err := s.groupService.GetParticipants(ctx, principal, req.Signature)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toGroupResponse(group), nil
}

func toGroupResponse(group *domain.Group) *pb.GroupResponse {
	return &pb.GroupResponse{
		Signature:    group.Signature,
		Opened:       group.Opened,
		Participants: services.Signatures(group.Members()),
	}
}
