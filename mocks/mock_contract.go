// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	contract "moonlight/contract"
	domain "moonlight/domain"
	event "moonlight/domain/event"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(ctx context.Context, e event.DomainEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), ctx, e)
}

// MockDispatcher is a mock of Dispatcher interface.
type MockDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockDispatcherMockRecorder
	isgomock struct{}
}

// MockDispatcherMockRecorder is the mock recorder for MockDispatcher.
type MockDispatcherMockRecorder struct {
	mock *MockDispatcher
}

// NewMockDispatcher creates a new mock instance.
func NewMockDispatcher(ctrl *gomock.Controller) *MockDispatcher {
	mock := &MockDispatcher{ctrl: ctrl}
	mock.recorder = &MockDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDispatcher) EXPECT() *MockDispatcherMockRecorder {
	return m.recorder
}

// SendToUser mocks base method.
func (m *MockDispatcher) SendToUser(ctx context.Context, signature, topic string, e event.DomainEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendToUser", ctx, signature, topic, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendToUser indicates an expected call of SendToUser.
func (mr *MockDispatcherMockRecorder) SendToUser(ctx, signature, topic, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendToUser", reflect.TypeOf((*MockDispatcher)(nil).SendToUser), ctx, signature, topic, e)
}

// SendToUsers mocks base method.
func (m *MockDispatcher) SendToUsers(ctx context.Context, events map[domain.Participant]event.DomainEvent, topic string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendToUsers", ctx, events, topic)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendToUsers indicates an expected call of SendToUsers.
func (mr *MockDispatcherMockRecorder) SendToUsers(ctx, events, topic any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendToUsers", reflect.TypeOf((*MockDispatcher)(nil).SendToUsers), ctx, events, topic)
}

// MockContactRequestHandler is a mock of ContactRequestHandler interface.
type MockContactRequestHandler struct {
	ctrl     *gomock.Controller
	recorder *MockContactRequestHandlerMockRecorder
	isgomock struct{}
}

// MockContactRequestHandlerMockRecorder is the mock recorder for MockContactRequestHandler.
type MockContactRequestHandlerMockRecorder struct {
	mock *MockContactRequestHandler
}

// NewMockContactRequestHandler creates a new mock instance.
func NewMockContactRequestHandler(ctrl *gomock.Controller) *MockContactRequestHandler {
	mock := &MockContactRequestHandler{ctrl: ctrl}
	mock.recorder = &MockContactRequestHandlerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContactRequestHandler) EXPECT() *MockContactRequestHandlerMockRecorder {
	return m.recorder
}

// Handle mocks base method.
func (m *MockContactRequestHandler) Handle(ctx context.Context, request domain.ContactRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Handle", ctx, request)
	ret0, _ := ret[0].(error)
	return ret0
}

// Handle indicates an expected call of Handle.
func (mr *MockContactRequestHandlerMockRecorder) Handle(ctx, request any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Handle", reflect.TypeOf((*MockContactRequestHandler)(nil).Handle), ctx, request)
}

// MockSessionDirectory is a mock of SessionDirectory interface.
type MockSessionDirectory struct {
	ctrl     *gomock.Controller
	recorder *MockSessionDirectoryMockRecorder
	isgomock struct{}
}

// MockSessionDirectoryMockRecorder is the mock recorder for MockSessionDirectory.
type MockSessionDirectoryMockRecorder struct {
	mock *MockSessionDirectory
}

// NewMockSessionDirectory creates a new mock instance.
func NewMockSessionDirectory(ctrl *gomock.Controller) *MockSessionDirectory {
	mock := &MockSessionDirectory{ctrl: ctrl}
	mock.recorder = &MockSessionDirectoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionDirectory) EXPECT() *MockSessionDirectoryMockRecorder {
	return m.recorder
}

// ActiveUsers mocks base method.
func (m *MockSessionDirectory) ActiveUsers() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveUsers")
	ret0, _ := ret[0].([]string)
	return ret0
}

// ActiveUsers indicates an expected call of ActiveUsers.
func (mr *MockSessionDirectoryMockRecorder) ActiveUsers() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveUsers", reflect.TypeOf((*MockSessionDirectory)(nil).ActiveUsers))
}

// GetSink mocks base method.
func (m *MockSessionDirectory) GetSink(signature string) (contract.EventSink, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSink", signature)
	ret0, _ := ret[0].(contract.EventSink)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// GetSink indicates an expected call of GetSink.
func (mr *MockSessionDirectoryMockRecorder) GetSink(signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSink", reflect.TypeOf((*MockSessionDirectory)(nil).GetSink), signature)
}

// Subscribe mocks base method.
func (m *MockSessionDirectory) Subscribe(signature string, sink contract.EventSink) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Subscribe", signature, sink)
}

// Subscribe indicates an expected call of Subscribe.
func (mr *MockSessionDirectoryMockRecorder) Subscribe(signature, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockSessionDirectory)(nil).Subscribe), signature, sink)
}

// Unsubscribe mocks base method.
func (m *MockSessionDirectory) Unsubscribe(signature string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Unsubscribe", signature)
}

// Unsubscribe indicates an expected call of Unsubscribe.
func (mr *MockSessionDirectoryMockRecorder) Unsubscribe(signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unsubscribe", reflect.TypeOf((*MockSessionDirectory)(nil).Unsubscribe), signature)
}
