// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=coupon
//

// Package coupon is a generated GoMock package.
package coupon

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

// CreateCoupon mocks base method.
func (m *MockRepository) CreateCoupon(ctx context.Context, c *Coupon) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCoupon", ctx, c)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateCoupon indicates an expected call of CreateCoupon.
func (mr *MockRepositoryMockRecorder) CreateCoupon(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCoupon", reflect.TypeOf((*MockRepository)(nil).CreateCoupon), ctx, c)
}

// DeleteCoupon mocks base method.
func (m *MockRepository) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCoupon", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCoupon indicates an expected call of DeleteCoupon.
func (mr *MockRepositoryMockRecorder) DeleteCoupon(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCoupon", reflect.TypeOf((*MockRepository)(nil).DeleteCoupon), ctx, id)
}

// FindActiveByCode mocks base method.
func (m *MockRepository) FindActiveByCode(ctx context.Context, code string) (*Coupon, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindActiveByCode", ctx, code)
	ret0, _ := ret[0].(*Coupon)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindActiveByCode indicates an expected call of FindActiveByCode.
func (mr *MockRepositoryMockRecorder) FindActiveByCode(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindActiveByCode", reflect.TypeOf((*MockRepository)(nil).FindActiveByCode), ctx, code)
}

// ListActive mocks base method.
func (m *MockRepository) ListActive(ctx context.Context) ([]*Coupon, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActive", ctx)
	ret0, _ := ret[0].([]*Coupon)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActive indicates an expected call of ListActive.
func (mr *MockRepositoryMockRecorder) ListActive(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActive", reflect.TypeOf((*MockRepository)(nil).ListActive), ctx)
}
