package unitofwork

import (
	"cashbook-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one storage handle. Ledger
// writes are single-row and deliberately not wrapped in a transaction.
type UnitOfWork interface {
	UserRepository() contract.UserRepository
	BookRepository() contract.BookRepository
	CategoryRepository() contract.CategoryRepository
	RecordRepository() contract.RecordRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
