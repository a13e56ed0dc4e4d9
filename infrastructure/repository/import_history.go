package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	importHistoriesTable = "import_histories"

	defaultHistoryLimit = 100
)

var importHistoryColumns = []string{
	"id",
	"import_type",
	"target_ym",
	"import_mode",
	"data_source",
	"COALESCE(comment, '')",
	"record_count",
	"sales_channel_id",
	"imported_by_user_id",
	"imported_at",
}

type ImportHistoryRepository interface {
	Create(ctx context.Context, history *domain.ImportHistory) (int64, error)
	UpdateRecordCount(ctx context.Context, id int64, recordCount int) error
	UpdateChannel(ctx context.Context, id int64, channelID int) error
	GetByID(ctx context.Context, id int64) (*domain.ImportHistory, error)
	List(ctx context.Context, filters domain.ImportHistoryFilters) ([]*domain.ImportHistory, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTarget(ctx context.Context, targetYm string, channelID int, modes []domain.ImportMode) (int64, error)
}

type importHistoryRepository struct {
	conn postgres.Queryer
}

func NewImportHistoryRepository(conn postgres.Queryer) ImportHistoryRepository {
	return &importHistoryRepository{
		conn: conn,
	}
}

func (r *importHistoryRepository) Create(ctx context.Context, history *domain.ImportHistory) (int64, error) {
	query, args, err := squirrel.
		Insert(importHistoriesTable).
		Columns(
			"import_type",
			"target_ym",
			"import_mode",
			"data_source",
			"comment",
			"record_count",
			"sales_channel_id",
			"imported_by_user_id",
		).
		Values(
			history.ImportType,
			history.TargetYm,
			history.ImportMode,
			history.DataSource,
			history.Comment,
			history.RecordCount,
			history.SalesChannelID,
			history.ImportedByUserID,
		).
		Suffix("RETURNING id, imported_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&history.ID, &history.ImportedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao inserir histórico de importação: %w", err)
	}

	return history.ID, nil
}

func (r *importHistoryRepository) UpdateRecordCount(ctx context.Context, id int64, recordCount int) error {
	return r.update(ctx, id, "record_count", recordCount)
}

func (r *importHistoryRepository) UpdateChannel(ctx context.Context, id int64, channelID int) error {
	return r.update(ctx, id, "sales_channel_id", channelID)
}

func (r *importHistoryRepository) GetByID(ctx context.Context, id int64) (*domain.ImportHistory, error) {
	query, args, err := squirrel.
		Select(importHistoryColumns...).
		From(importHistoriesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	history, err := scanImportHistory(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear histórico de importação: %w", err)
	}

	return history, nil
}

func (r *importHistoryRepository) List(ctx context.Context, filters domain.ImportHistoryFilters) ([]*domain.ImportHistory, error) {
	limit := filters.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	builder := squirrel.
		Select(importHistoryColumns...).
		From(importHistoriesTable).
		OrderBy("imported_at DESC", "id DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if filters.TargetYm != "" {
		builder = builder.Where(squirrel.Eq{"target_ym": filters.TargetYm})
	}

	if filters.SalesChannelID != nil {
		builder = builder.Where(squirrel.Eq{"sales_channel_id": *filters.SalesChannelID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	histories := make([]*domain.ImportHistory, 0)
	for rows.Next() {
		history, err := scanImportHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de importação: %w", err)
		}
		histories = append(histories, history)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return histories, nil
}

func (r *importHistoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.delete(ctx, squirrel.Eq{"id": id})
	return err
}

// DeleteByTarget remove os históricos do período e canal que ficaram sem registros de venda.
// modes vazio significa todos os modos.
func (r *importHistoryRepository) DeleteByTarget(ctx context.Context, targetYm string, channelID int, modes []domain.ImportMode) (int64, error) {
	where := squirrel.Eq{
		"import_type":      domain.ImportTypeSales,
		"target_ym":        targetYm,
		"sales_channel_id": channelID,
	}
	if len(modes) > 0 {
		where["import_mode"] = modes
	}

	return r.delete(ctx, squirrel.And{
		where,
		squirrel.Expr("NOT EXISTS (SELECT 1 FROM " + salesRecordsTable + " sr WHERE sr.import_history_id = " + importHistoriesTable + ".id)"),
	})
}

func (r *importHistoryRepository) update(ctx context.Context, id int64, column string, value any) error {
	query, args, err := squirrel.
		Update(importHistoriesTable).
		Set(column, value).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *importHistoryRepository) delete(ctx context.Context, where squirrel.Sqlizer) (int64, error) {
	query, args, err := squirrel.
		Delete(importHistoriesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected, nil
}

func scanImportHistory(row rowScanner) (*domain.ImportHistory, error) {
	history := &domain.ImportHistory{}

	err := row.Scan(
		&history.ID,
		&history.ImportType,
		&history.TargetYm,
		&history.ImportMode,
		&history.DataSource,
		&history.Comment,
		&history.RecordCount,
		&history.SalesChannelID,
		&history.ImportedByUserID,
		&history.ImportedAt,
	)
	if err != nil {
		return nil, err
	}

	return history, nil
}
