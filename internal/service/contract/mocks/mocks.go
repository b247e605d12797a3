// Package mocks는 contract 패키지 인터페이스의 testify/mock 기반 Mock 구현체를 제공합니다.
package mocks

import (
	"context"
	"time"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var (
	_ contract.ProductSource             = (*MockProductSource)(nil)
	_ contract.OrderSource               = (*MockOrderSource)(nil)
	_ contract.NotificationSender        = (*MockNotificationSender)(nil)
	_ contract.NotificationHealthChecker = (*MockNotificationHealthChecker)(nil)
	_ contract.SnapshotStore             = (*MockSnapshotStore)(nil)
	_ contract.CatalogSyncer             = (*MockCatalogSyncer)(nil)
	_ contract.CatalogReader             = (*MockCatalogReader)(nil)
)

// ----------------------------------------------------------------------------
// ProductSource / OrderSource
// ----------------------------------------------------------------------------

// MockProductSource contract.ProductSource의 Mock 구현체입니다.
type MockProductSource struct {
	mock.Mock
}

func (m *MockProductSource) ListAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductSource) ListActive(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductSource) SearchByName(ctx context.Context, query string) ([]catalog.Product, error) {
	args := m.Called(ctx, query)
	return productsArg(args, 0), args.Error(1)
}

func (m *MockProductSource) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

// MockOrderSource contract.OrderSource의 Mock 구현체입니다.
type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) ListAllOrders(ctx context.Context) ([]catalog.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Order), args.Error(1)
}

func productsArg(args mock.Arguments, index int) []catalog.Product {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).([]catalog.Product)
}

// ----------------------------------------------------------------------------
// NotificationSender
// ----------------------------------------------------------------------------

// MockNotificationSender contract.NotificationSender의 Mock 구현체입니다.
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) Notify(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyError(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockNotificationHealthChecker contract.NotificationHealthChecker의 Mock 구현체입니다.
type MockNotificationHealthChecker struct {
	mock.Mock
}

func (m *MockNotificationHealthChecker) Health() error {
	args := m.Called()
	return args.Error(0)
}

// ----------------------------------------------------------------------------
// SnapshotStore
// ----------------------------------------------------------------------------

// MockSnapshotStore contract.SnapshotStore의 Mock 구현체입니다.
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(name string, v any) error {
	args := m.Called(name, v)
	return args.Error(0)
}

func (m *MockSnapshotStore) Load(name string, v any) error {
	args := m.Called(name, v)
	return args.Error(0)
}

// ----------------------------------------------------------------------------
// CatalogSyncer / CatalogReader
// ----------------------------------------------------------------------------

// MockCatalogSyncer contract.CatalogSyncer의 Mock 구현체입니다.
type MockCatalogSyncer struct {
	mock.Mock
}

func (m *MockCatalogSyncer) SyncNow(ctx context.Context) (contract.SyncResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(contract.SyncResult), args.Error(1)
}

// MockCatalogReader contract.CatalogReader의 Mock 구현체입니다.
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) Products() ([]catalog.Product, time.Time, bool) {
	args := m.Called()
	return productsArg(args, 0), args.Get(1).(time.Time), args.Bool(2)
}
