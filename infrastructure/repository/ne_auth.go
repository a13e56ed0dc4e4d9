package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	neAuthTable = "ne_auth"

	// neAuthRowID é a única linha de credenciais mantida na tabela
	neAuthRowID = 1
)

type NEAuthRepository interface {
	Get(ctx context.Context) (*domain.NEAuth, error)
	Save(ctx context.Context, auth *domain.NEAuth) error
}

type neAuthRepository struct {
	conn postgres.Queryer
}

func NewNEAuthRepository(conn postgres.Queryer) NEAuthRepository {
	return &neAuthRepository{
		conn: conn,
	}
}

func (r *neAuthRepository) Get(ctx context.Context) (*domain.NEAuth, error) {
	query, args, err := squirrel.
		Select("access_token", "refresh_token", "expires_at", "refreshes_at").
		From(neAuthTable).
		Where(squirrel.Eq{"id": neAuthRowID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	auth := &domain.NEAuth{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&auth.AccessToken,
		&auth.RefreshToken,
		&auth.ExpiresAt,
		&auth.RefreshesAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credenciais: %w", err)
	}

	return auth, nil
}

func (r *neAuthRepository) Save(ctx context.Context, auth *domain.NEAuth) error {
	query, args, err := squirrel.
		Insert(neAuthTable).
		Columns("id", "access_token", "refresh_token", "expires_at", "refreshes_at", "updated_at").
		Values(neAuthRowID, auth.AccessToken, auth.RefreshToken, auth.ExpiresAt, auth.RefreshesAt, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			refreshes_at = EXCLUDED.refreshes_at,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar credenciais: %w", err)
	}

	return nil
}
