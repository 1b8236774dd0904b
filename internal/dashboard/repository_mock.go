// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=dashboard
//

// Package dashboard is a generated GoMock package.
package dashboard

import (
	context "context"
	reflect "reflect"
	time "time"

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

// CountCustomers mocks base method.
func (m *MockRepository) CountCustomers(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCustomers", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCustomers indicates an expected call of CountCustomers.
func (mr *MockRepositoryMockRecorder) CountCustomers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCustomers", reflect.TypeOf((*MockRepository)(nil).CountCustomers), ctx)
}

// CountReceipts mocks base method.
func (m *MockRepository) CountReceipts(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountReceipts", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountReceipts indicates an expected call of CountReceipts.
func (mr *MockRepositoryMockRecorder) CountReceipts(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountReceipts", reflect.TypeOf((*MockRepository)(nil).CountReceipts), ctx)
}

// RecentReceipts mocks base method.
func (m *MockRepository) RecentReceipts(ctx context.Context, limit int) ([]RecentReceipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentReceipts", ctx, limit)
	ret0, _ := ret[0].([]RecentReceipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentReceipts indicates an expected call of RecentReceipts.
func (mr *MockRepositoryMockRecorder) RecentReceipts(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentReceipts", reflect.TypeOf((*MockRepository)(nil).RecentReceipts), ctx, limit)
}

// SalesByCurrency mocks base method.
func (m *MockRepository) SalesByCurrency(ctx context.Context) ([]CurrencyBucket, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SalesByCurrency", ctx)
	ret0, _ := ret[0].([]CurrencyBucket)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SalesByCurrency indicates an expected call of SalesByCurrency.
func (mr *MockRepositoryMockRecorder) SalesByCurrency(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SalesByCurrency", reflect.TypeOf((*MockRepository)(nil).SalesByCurrency), ctx)
}

// SalesByPayment mocks base method.
func (m *MockRepository) SalesByPayment(ctx context.Context) ([]PaymentBucket, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SalesByPayment", ctx)
	ret0, _ := ret[0].([]PaymentBucket)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SalesByPayment indicates an expected call of SalesByPayment.
func (mr *MockRepositoryMockRecorder) SalesByPayment(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SalesByPayment", reflect.TypeOf((*MockRepository)(nil).SalesByPayment), ctx)
}

// SalesSeries mocks base method.
func (m *MockRepository) SalesSeries(ctx context.Context, granularity Granularity, since time.Time) ([]SeriesPoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SalesSeries", ctx, granularity, since)
	ret0, _ := ret[0].([]SeriesPoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SalesSeries indicates an expected call of SalesSeries.
func (mr *MockRepositoryMockRecorder) SalesSeries(ctx, granularity, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SalesSeries", reflect.TypeOf((*MockRepository)(nil).SalesSeries), ctx, granularity, since)
}

// SumSales mocks base method.
func (m *MockRepository) SumSales(ctx context.Context, since time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumSales", ctx, since)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumSales indicates an expected call of SumSales.
func (mr *MockRepositoryMockRecorder) SumSales(ctx, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumSales", reflect.TypeOf((*MockRepository)(nil).SumSales), ctx, since)
}

// TopCustomers mocks base method.
func (m *MockRepository) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TopCustomers", ctx, limit)
	ret0, _ := ret[0].([]TopCustomer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TopCustomers indicates an expected call of TopCustomers.
func (mr *MockRepositoryMockRecorder) TopCustomers(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TopCustomers", reflect.TypeOf((*MockRepository)(nil).TopCustomers), ctx, limit)
}
