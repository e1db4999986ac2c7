package iostore

import (
	"time"

	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetLinkStore implements the StoreManager interface.
func (m *MockStoreManager) GetLinkStore() contract.LinkStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.LinkStore)
	return store
}

// MockLinkStore is a mock implementation of LinkStore for testing.
type MockLinkStore struct {
	mock.Mock
}

var _ contract.LinkStore = &MockLinkStore{} // Compile-time check

// Save implements the LinkStore interface.
func (m *MockLinkStore) Save(name, query string, savedAt time.Time) (schema.Link, error) {
	args := m.Called(name, query, savedAt)
	return args.Get(0).(schema.Link), args.Error(1)
}

// Get implements the LinkStore interface.
func (m *MockLinkStore) Get(name string) (schema.Link, error) {
	args := m.Called(name)
	return args.Get(0).(schema.Link), args.Error(1)
}

// List implements the LinkStore interface.
func (m *MockLinkStore) List() ([]schema.Link, error) {
	args := m.Called()
	links, _ := args.Get(0).([]schema.Link)
	return links, args.Error(1)
}

// Delete implements the LinkStore interface.
func (m *MockLinkStore) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// GetStatus implements the LinkStore interface.
func (m *MockLinkStore) GetStatus() (schema.LinkStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.LinkStatus), args.Error(1)
}

// Close implements the LinkStore interface.
func (m *MockLinkStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
