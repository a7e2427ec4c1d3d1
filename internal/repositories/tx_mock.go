package repositories

// MockTxManager is an in-memory TxManager for tests and local runs. It has
// no rollback: the service-level checks run before any mutation, which is
// what the unit tests exercise. Real rollback semantics are covered by the
// GORM integration tests.
type MockTxManager struct {
	Repos Repositories
}

// NewMockTxManager creates a MockTxManager over the given repositories.
func NewMockTxManager(users UserRepository, products ProductRepository) *MockTxManager {
	return &MockTxManager{
		Repos: Repositories{Users: users, Products: products},
	}
}

// WithinTransaction calls fn directly with the configured repositories.
func (m *MockTxManager) WithinTransaction(fn TxFunc) error {
	return fn(m.Repos)
}
