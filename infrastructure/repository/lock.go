package repository

import (
	"context"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
)

type Locker interface {
	AcquireIngestionLock(ctx context.Context, channelID int, periodYm string) error
}

type advisoryLocker struct {
	conn postgres.Queryer
}

// NewAdvisoryLocker usa advisory locks de transação; o lock é liberado no commit ou rollback
func NewAdvisoryLocker(conn postgres.Queryer) Locker {
	return &advisoryLocker{
		conn: conn,
	}
}

func IngestionLockKey(channelID int, periodYm string) string {
	return fmt.Sprintf("ingest:%d:%s", channelID, periodYm)
}

func (l *advisoryLocker) AcquireIngestionLock(ctx context.Context, channelID int, periodYm string) error {
	_, err := l.conn.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", IngestionLockKey(channelID, periodYm))
	if err != nil {
		return fmt.Errorf("erro ao obter lock de importação: %w", err)
	}

	return nil
}
