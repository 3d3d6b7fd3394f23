package service

import "context"

// TransactionManager выполняет функцию в транзакции БД.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
