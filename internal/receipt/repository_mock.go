// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=receipt
//

// Package receipt is a generated GoMock package.
package receipt

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CreateReceipt mocks base method.
func (m *MockRepository) CreateReceipt(ctx context.Context, r *Receipt) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReceipt", ctx, r)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateReceipt indicates an expected call of CreateReceipt.
func (mr *MockRepositoryMockRecorder) CreateReceipt(ctx, r any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReceipt", reflect.TypeOf((*MockRepository)(nil).CreateReceipt), ctx, r)
}

// GetReceipt mocks base method.
func (m *MockRepository) GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetReceipt", ctx, id)
	ret0, _ := ret[0].(*Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetReceipt indicates an expected call of GetReceipt.
func (mr *MockRepositoryMockRecorder) GetReceipt(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReceipt", reflect.TypeOf((*MockRepository)(nil).GetReceipt), ctx, id)
}

// GetReceiptByNumber mocks base method.
func (m *MockRepository) GetReceiptByNumber(ctx context.Context, number string) (*Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetReceiptByNumber", ctx, number)
	ret0, _ := ret[0].(*Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetReceiptByNumber indicates an expected call of GetReceiptByNumber.
func (mr *MockRepositoryMockRecorder) GetReceiptByNumber(ctx, number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReceiptByNumber", reflect.TypeOf((*MockRepository)(nil).GetReceiptByNumber), ctx, number)
}

// ListByCustomer mocks base method.
func (m *MockRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByCustomer", ctx, customerID)
	ret0, _ := ret[0].([]*Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByCustomer indicates an expected call of ListByCustomer.
func (mr *MockRepositoryMockRecorder) ListByCustomer(ctx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByCustomer", reflect.TypeOf((*MockRepository)(nil).ListByCustomer), ctx, customerID)
}

// ListRecent mocks base method.
func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]*Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecent", ctx, limit)
	ret0, _ := ret[0].([]*Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRecent indicates an expected call of ListRecent.
func (mr *MockRepositoryMockRecorder) ListRecent(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecent", reflect.TypeOf((*MockRepository)(nil).ListRecent), ctx, limit)
}
