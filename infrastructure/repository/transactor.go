package repository

import (
	"context"
	"database/sql"

	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
)

// Repositories agrupa os repositórios que participam da unidade de trabalho de importação
type Repositories struct {
	Products        ProductRepository
	SalesRecords    SalesRecordRepository
	Candidates      CandidateRepository
	ImportHistories ImportHistoryRepository
	ShopMappings    ShopMappingRepository
	Locker          Locker
}

type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}

type transactor struct {
	conn postgres.Conn
}

func NewTransactor(conn postgres.Conn) Transactor {
	return &transactor{
		conn: conn,
	}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return t.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return fn(NewRepositories(tx))
	})
}

func NewRepositories(q postgres.Queryer) Repositories {
	return Repositories{
		Products:        NewProductRepository(q),
		SalesRecords:    NewSalesRecordRepository(q),
		Candidates:      NewCandidateRepository(q),
		ImportHistories: NewImportHistoryRepository(q),
		ShopMappings:    NewShopMappingRepository(q),
		Locker:          NewAdvisoryLocker(q),
	}
}
