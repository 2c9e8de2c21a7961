// Code generated by MockGen. DO NOT EDIT.
// Source: group.go
//
// Generated by this command:
//
//	mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "moonlight/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIGroupRepository is a mock of IGroupRepository interface.
type MockIGroupRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIGroupRepositoryMockRecorder
	isgomock struct{}
}

// MockIGroupRepositoryMockRecorder is the mock recorder for MockIGroupRepository.
type MockIGroupRepositoryMockRecorder struct {
	mock *MockIGroupRepository
}

// NewMockIGroupRepository creates a new mock instance.
func NewMockIGroupRepository(ctrl *gomock.Controller) *MockIGroupRepository {
	mock := &MockIGroupRepository{ctrl: ctrl}
	mock.recorder = &MockIGroupRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIGroupRepository) EXPECT() *MockIGroupRepositoryMockRecorder {
	return m.recorder
}

// CreateGroup mocks base method.
func (m *MockIGroupRepository) CreateGroup(signature string) (*domain.Group, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateGroup", signature)
	ret0, _ := ret[0].(*domain.Group)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateGroup indicates an expected call of CreateGroup.
func (mr *MockIGroupRepositoryMockRecorder) CreateGroup(signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateGroup", reflect.TypeOf((*MockIGroupRepository)(nil).CreateGroup), signature)
}

// ExistsGroup mocks base method.
func (m *MockIGroupRepository) ExistsGroup(signature string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExistsGroup", signature)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExistsGroup indicates an expected call of ExistsGroup.
func (mr *MockIGroupRepositoryMockRecorder) ExistsGroup(signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExistsGroup", reflect.TypeOf((*MockIGroupRepository)(nil).ExistsGroup), signature)
}

// GetGroup mocks base method.
func (m *MockIGroupRepository) GetGroup(signature string) (*domain.Group, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGroup", signature)
	ret0, _ := ret[0].(*domain.Group)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGroup indicates an expected call of GetGroup.
func (mr *MockIGroupRepositoryMockRecorder) GetGroup(signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGroup", reflect.TypeOf((*MockIGroupRepository)(nil).GetGroup), signature)
}

// SaveGroup mocks base method.
func (m *MockIGroupRepository) SaveGroup(group *domain.Group) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveGroup", group)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveGroup indicates an expected call of SaveGroup.
func (mr *MockIGroupRepositoryMockRecorder) SaveGroup(group any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveGroup", reflect.TypeOf((*MockIGroupRepository)(nil).SaveGroup), group)
}
