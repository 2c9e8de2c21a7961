// Code generated by MockGen. DO NOT EDIT.
// Source: message.go
//
// Generated by this command:
//
//	mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "moonlight/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIMessageRepository is a mock of IMessageRepository interface.
type MockIMessageRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageRepositoryMockRecorder
	isgomock struct{}
}

// MockIMessageRepositoryMockRecorder is the mock recorder for MockIMessageRepository.
type MockIMessageRepositoryMockRecorder struct {
	mock *MockIMessageRepository
}

// NewMockIMessageRepository creates a new mock instance.
func NewMockIMessageRepository(ctrl *gomock.Controller) *MockIMessageRepository {
	mock := &MockIMessageRepository{ctrl: ctrl}
	mock.recorder = &MockIMessageRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageRepository) EXPECT() *MockIMessageRepositoryMockRecorder {
	return m.recorder
}

// ExistsWithKey mocks base method.
func (m *MockIMessageRepository) ExistsWithKey(key domain.MessageKey) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExistsWithKey", key)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExistsWithKey indicates an expected call of ExistsWithKey.
func (mr *MockIMessageRepositoryMockRecorder) ExistsWithKey(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExistsWithKey", reflect.TypeOf((*MockIMessageRepository)(nil).ExistsWithKey), key)
}

// Get mocks base method.
func (m *MockIMessageRepository) Get(key domain.MessageKey) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", key)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIMessageRepositoryMockRecorder) Get(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIMessageRepository)(nil).Get), key)
}

// GetMessagesBetween mocks base method.
func (m *MockIMessageRepository) GetMessagesBetween(user string, companion domain.Participant) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessagesBetween", user, companion)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessagesBetween indicates an expected call of GetMessagesBetween.
func (mr *MockIMessageRepositoryMockRecorder) GetMessagesBetween(user, companion any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessagesBetween", reflect.TypeOf((*MockIMessageRepository)(nil).GetMessagesBetween), user, companion)
}

// GetMessagesOfUser mocks base method.
func (m *MockIMessageRepository) GetMessagesOfUser(login string) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMessagesOfUser", login)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMessagesOfUser indicates an expected call of GetMessagesOfUser.
func (mr *MockIMessageRepositoryMockRecorder) GetMessagesOfUser(login any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMessagesOfUser", reflect.TypeOf((*MockIMessageRepository)(nil).GetMessagesOfUser), login)
}

// SaveMessage mocks base method.
func (m *MockIMessageRepository) SaveMessage(message domain.Message) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveMessage", message)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveMessage indicates an expected call of SaveMessage.
func (mr *MockIMessageRepositoryMockRecorder) SaveMessage(message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveMessage", reflect.TypeOf((*MockIMessageRepository)(nil).SaveMessage), message)
}

// UpdateStatus mocks base method.
func (m *MockIMessageRepository) UpdateStatus(key domain.MessageKey, status domain.DeliveryStatus) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", key, status)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockIMessageRepositoryMockRecorder) UpdateStatus(key, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockIMessageRepository)(nil).UpdateStatus), key, status)
}
