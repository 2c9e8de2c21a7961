// Code generated by MockGen. DO NOT EDIT.
// Source: message_service.go
//
// Generated by this command:
//
//	mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	domain "moonlight/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIMessageService is a mock of IMessageService interface.
type MockIMessageService struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageServiceMockRecorder
	isgomock struct{}
}

// MockIMessageServiceMockRecorder is the mock recorder for MockIMessageService.
type MockIMessageServiceMockRecorder struct {
	mock *MockIMessageService
}

// NewMockIMessageService creates a new mock instance.
func NewMockIMessageService(ctrl *gomock.Controller) *MockIMessageService {
	mock := &MockIMessageService{ctrl: ctrl}
	mock.recorder = &MockIMessageServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageService) EXPECT() *MockIMessageServiceMockRecorder {
	return m.recorder
}

// GetMessagesBetween mocks base method.
func (m *MockIMessageService) GetMessagesBetween(user string, companion domain.Participant) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessagesBetween", user, companion)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessagesBetween indicates an expected call of GetMessagesBetween.
func (mr *MockIMessageServiceMockRecorder) GetMessagesBetween(user, companion any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessagesBetween", reflect.TypeOf((*MockIMessageService)(nil).GetMessagesBetween), user, companion)
}

// GetMessagesOfUser mocks base method.
func (m *MockIMessageService) GetMessagesOfUser(login string) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessagesOfUser", login)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessagesOfUser indicates an expected call of GetMessagesOfUser.
func (mr *MockIMessageServiceMockRecorder) GetMessagesOfUser(login any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessagesOfUser", reflect.TypeOf((*MockIMessageService)(nil).GetMessagesOfUser), login)
}

// RouteGroup mocks base method.
func (m *MockIMessageService) RouteGroup(ctx context.Context, sender string, message domain.Message) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RouteGroup", ctx, sender, message)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RouteGroup indicates an expected call of RouteGroup.
func (mr *MockIMessageServiceMockRecorder) RouteGroup(ctx, sender, message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RouteGroup", reflect.TypeOf((*MockIMessageService)(nil).RouteGroup), ctx, sender, message)
}

// RoutePrivate mocks base method.
func (m *MockIMessageService) RoutePrivate(ctx context.Context, sender string, message domain.Message) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RoutePrivate", ctx, sender, message)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RoutePrivate indicates an expected call of RoutePrivate.
func (mr *MockIMessageServiceMockRecorder) RoutePrivate(ctx, sender, message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RoutePrivate", reflect.TypeOf((*MockIMessageService)(nil).RoutePrivate), ctx, sender, message)
}

// UpdateDeliveryStatus mocks base method.
func (m *MockIMessageService) UpdateDeliveryStatus(ctx context.Context, reportingUser string, receipt domain.DeliveryReceipt) (domain.DeliveryReceipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDeliveryStatus", ctx, reportingUser, receipt)
	ret0, _ := ret[0].(domain.DeliveryReceipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDeliveryStatus indicates an expected call of UpdateDeliveryStatus.
func (mr *MockIMessageServiceMockRecorder) UpdateDeliveryStatus(ctx, reportingUser, receipt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDeliveryStatus", reflect.TypeOf((*MockIMessageService)(nil).UpdateDeliveryStatus), ctx, reportingUser, receipt)
}
