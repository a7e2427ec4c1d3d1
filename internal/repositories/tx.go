package repositories

import "gorm.io/gorm"

// Repositories bundles the data-access interfaces bound to one transaction.
type Repositories struct {
	Users    UserRepository
	Products ProductRepository
}

// TxFunc runs against repositories that share a single transaction. Any
// error returned rolls the whole transaction back.
type TxFunc func(r Repositories) error

// TxManager runs a function within a database transaction. The purchase
// flow depends on this: the stock check and the deposit debit must commit
// or roll back together.
type TxManager interface {
	WithinTransaction(fn TxFunc) error
}

// GormTxManager is a GORM implementation of TxManager.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager.
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// WithinTransaction runs fn with repositories bound to one GORM
// transaction. fn returning nil commits; any error rolls back.
func (m *GormTxManager) WithinTransaction(fn TxFunc) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Users:    NewGORMUserRepository(tx),
			Products: NewGORMProductRepository(tx),
		})
	})
}
