// Code generated by MockGen. DO NOT EDIT.
// Source: group_service.go
//
// Generated by this command:
//
//	mockgen -source=group_service.go -destination=../mocks/mock_group_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	domain "moonlight/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIGroupService is a mock of IGroupService interface.
type MockIGroupService struct {
	ctrl     *gomock.Controller
	recorder *MockIGroupServiceMockRecorder
	isgomock struct{}
}

// MockIGroupServiceMockRecorder is the mock recorder for MockIGroupService.
type MockIGroupServiceMockRecorder struct {
	mock *MockIGroupService
}

// NewMockIGroupService creates a new mock instance.
func NewMockIGroupService(ctrl *gomock.Controller) *MockIGroupService {
	mock := &MockIGroupService{ctrl: ctrl}
	mock.recorder = &MockIGroupServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIGroupService) EXPECT() *MockIGroupServiceMockRecorder {
	return m.recorder
}

// ChangeParticipants mocks base method.
func (m *MockIGroupService) ChangeParticipants(ctx context.Context, principal, signature string, add, remove []string) (*domain.Group, domain.MembershipDelta, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChangeParticipants", ctx, principal, signature, add, remove)
	ret0, _ := ret[0].(*domain.Group)
	ret1, _ := ret[1].(domain.MembershipDelta)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ChangeParticipants indicates an expected call of ChangeParticipants.
func (mr *MockIGroupServiceMockRecorder) ChangeParticipants(ctx, principal, signature, add, remove any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChangeParticipants", reflect.TypeOf((*MockIGroupService)(nil).ChangeParticipants), ctx, principal, signature, add, remove)
}

// CreateGroup mocks base method.
func (m *MockIGroupService) CreateGroup(ctx context.Context, principal, signature string) (*domain.Group, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateGroup", ctx, principal, signature)
	ret0, _ := ret[0].(*domain.Group)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateGroup indicates an expected call of CreateGroup.
func (mr *MockIGroupServiceMockRecorder) CreateGroup(ctx, principal, signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateGroup", reflect.TypeOf((*MockIGroupService)(nil).CreateGroup), ctx, principal, signature)
}

// GetParticipants mocks base method.
func (m *MockIGroupService) GetParticipants(ctx context.Context, principal, signature string) (*domain.Group, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetParticipants", ctx, principal, signature)
	ret0, _ := ret[0].(*domain.Group)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetParticipants indicates an expected call of GetParticipants.
func (mr *MockIGroupServiceMockRecorder) GetParticipants(ctx, principal, signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetParticipants", reflect.TypeOf((*MockIGroupService)(nil).GetParticipants), ctx, principal, signature)
}
