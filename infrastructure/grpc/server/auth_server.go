package server

import (
	"context"

	pb "moonlight/proto/account"

	"moonlight/errors"
	"moonlight/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
}

// NewAuthServer creates a new gRPC server for authentication.
func NewAuthServer(authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService}
}

// Register handles account creation: the login becomes the user's chat
// signature and a session token is issued right away.
func (s *AuthServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Register(in.GetLogin(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token)}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Login(in.GetLogin(), in.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token)}, nil
}
