package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	shopMappingsTable = "ne_shop_mappings"
)

type ShopMappingRepository interface {
	ListByChannel(ctx context.Context, channelID int) ([]*domain.NEShopMapping, error)
	ListAll(ctx context.Context) ([]*domain.NEShopMapping, error)
	ReplaceForChannel(ctx context.Context, channelID int, shopIDs []int) error
}

type shopMappingRepository struct {
	conn postgres.Queryer
}

func NewShopMappingRepository(conn postgres.Queryer) ShopMappingRepository {
	return &shopMappingRepository{
		conn: conn,
	}
}

func (r *shopMappingRepository) ListByChannel(ctx context.Context, channelID int) ([]*domain.NEShopMapping, error) {
	return r.list(ctx, squirrel.Eq{"channel_id": channelID})
}

func (r *shopMappingRepository) ListAll(ctx context.Context) ([]*domain.NEShopMapping, error) {
	return r.list(ctx, squirrel.Eq{})
}

// ReplaceForChannel apaga e recria os vínculos do canal; deve rodar dentro de uma transação
func (r *shopMappingRepository) ReplaceForChannel(ctx context.Context, channelID int, shopIDs []int) error {
	query, args, err := squirrel.
		Delete(shopMappingsTable).
		Where(squirrel.Eq{"channel_id": channelID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover vínculos de lojas: %w", err)
	}

	if len(shopIDs) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(shopMappingsTable).
		Columns("ne_shop_id", "channel_id").
		Suffix("ON CONFLICT (ne_shop_id) DO UPDATE SET channel_id = EXCLUDED.channel_id").
		PlaceholderFormat(squirrel.Dollar)
	for _, shopID := range shopIDs {
		builder = builder.Values(shopID, channelID)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar vínculos de lojas: %w", err)
	}

	return nil
}

func (r *shopMappingRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.NEShopMapping, error) {
	query, args, err := squirrel.
		Select("id", "ne_shop_id", "channel_id").
		From(shopMappingsTable).
		Where(where).
		OrderBy("channel_id ASC", "ne_shop_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	mappings := make([]*domain.NEShopMapping, 0)
	for rows.Next() {
		mapping := &domain.NEShopMapping{}
		if err := rows.Scan(&mapping.ID, &mapping.NEShopID, &mapping.ChannelID); err != nil {
			return nil, fmt.Errorf("erro ao escanear vínculo de loja: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return mappings, nil
}
