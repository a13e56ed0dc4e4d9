package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	salesRecordsTable = "sales_records"

	// insertBatchSize mantém o número de parâmetros abaixo do limite do Postgres
	insertBatchSize = 500
)

type SalesRecordRepository interface {
	InsertBatch(ctx context.Context, records []*domain.SalesRecord) (int64, error)
	DeleteByPeriodAndChannel(ctx context.Context, periodYm string, channelID int) (int64, error)
	DeleteByExternalOrderPrefix(ctx context.Context, periodYm string, channelID int, prefix string) (int64, error)
	DeleteByImportHistory(ctx context.Context, importHistoryID int64) (int64, error)
	UpdateChannelByImportHistory(ctx context.Context, importHistoryID int64, channelID int) (int64, error)
	AggregateFacts(ctx context.Context, filters domain.SalesFactFilters) ([]*domain.SalesFact, error)
	SumTotals(ctx context.Context, filters domain.SalesFactFilters) (*SalesTotals, error)
}

type SalesTotals struct {
	Sales       decimal.Decimal
	Cost        decimal.Decimal
	GrossProfit decimal.Decimal
	Records     int64
}

type salesRecordRepository struct {
	conn postgres.Queryer
}

func NewSalesRecordRepository(conn postgres.Queryer) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func (r *salesRecordRepository) InsertBatch(ctx context.Context, records []*domain.SalesRecord) (int64, error) {
	var inserted int64

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}

		builder := squirrel.
			Insert(salesRecordsTable).
			Columns(
				"product_code",
				"period_ym",
				"sales_date",
				"quantity",
				"sales_amount_excl_tax",
				"cost_amount_excl_tax",
				"gross_profit",
				"sales_channel_id",
				"external_order_id",
				"import_history_id",
				"created_by_user_id",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range records[start:end] {
			builder = builder.Values(
				record.ProductCode,
				record.PeriodYm,
				record.SalesDate,
				record.Quantity,
				record.SalesAmountExclTax,
				record.CostAmountExclTax,
				record.GrossProfit,
				record.SalesChannelID,
				record.ExternalOrderID,
				record.ImportHistoryID,
				record.CreatedByUserID,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := r.conn.ExecContext(ctx, query, args...)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return inserted, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return inserted, fmt.Errorf("erro ao executar a query: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		inserted += affected
	}

	return inserted, nil
}

func (r *salesRecordRepository) DeleteByPeriodAndChannel(ctx context.Context, periodYm string, channelID int) (int64, error) {
	return r.delete(ctx, squirrel.Eq{"period_ym": periodYm, "sales_channel_id": channelID})
}

// DeleteByExternalOrderPrefix remove só as linhas cujo external_order_id começa com prefix.
// Usa o índice (sales_channel_id, period_ym, external_order_id text_pattern_ops).
func (r *salesRecordRepository) DeleteByExternalOrderPrefix(ctx context.Context, periodYm string, channelID int, prefix string) (int64, error) {
	return r.delete(ctx, squirrel.And{
		squirrel.Eq{"period_ym": periodYm, "sales_channel_id": channelID},
		squirrel.Like{"external_order_id": escapeLike(prefix) + "%"},
	})
}

func (r *salesRecordRepository) DeleteByImportHistory(ctx context.Context, importHistoryID int64) (int64, error) {
	return r.delete(ctx, squirrel.Eq{"import_history_id": importHistoryID})
}

func (r *salesRecordRepository) UpdateChannelByImportHistory(ctx context.Context, importHistoryID int64, channelID int) (int64, error) {
	query, args, err := squirrel.
		Update(salesRecordsTable).
		Set("sales_channel_id", channelID).
		Where(squirrel.Eq{"import_history_id": importHistoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.exec(ctx, query, args)
}

// AggregateFacts agrupa o livro por período e produto, trazendo nome e categoria do cadastro
func (r *salesRecordRepository) AggregateFacts(ctx context.Context, filters domain.SalesFactFilters) ([]*domain.SalesFact, error) {
	builder := squirrel.
		Select(
			"sr.period_ym",
			"sr.product_code",
			"COALESCE(p.product_name, sr.product_code)",
			"p.category_id",
			"COALESCE(SUM(sr.quantity), 0)",
			"COALESCE(SUM(sr.sales_amount_excl_tax), 0)",
			"COALESCE(SUM(sr.gross_profit), 0)",
		).
		From(salesRecordsTable + " sr").
		LeftJoin(productsTable + " p ON p.product_code = sr.product_code").
		Where(squirrel.Eq{"sr.period_ym": filters.Periods}).
		GroupBy("sr.period_ym", "sr.product_code", "p.product_name", "p.category_id").
		OrderBy("sr.period_ym ASC", "sr.product_code ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFactFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	facts := make([]*domain.SalesFact, 0)
	for rows.Next() {
		fact := &domain.SalesFact{}
		err := rows.Scan(
			&fact.PeriodYm,
			&fact.ProductCode,
			&fact.ProductName,
			&fact.CategoryID,
			&fact.Quantity,
			&fact.Sales,
			&fact.GrossProfit,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado de vendas: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}

func (r *salesRecordRepository) SumTotals(ctx context.Context, filters domain.SalesFactFilters) (*SalesTotals, error) {
	builder := squirrel.
		Select(
			"COALESCE(SUM(sr.sales_amount_excl_tax), 0)",
			"COALESCE(SUM(sr.cost_amount_excl_tax), 0)",
			"COALESCE(SUM(sr.gross_profit), 0)",
			"COUNT(sr.id)",
		).
		From(salesRecordsTable + " sr").
		LeftJoin(productsTable + " p ON p.product_code = sr.product_code").
		Where(squirrel.Eq{"sr.period_ym": filters.Periods}).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFactFilters(builder, filters)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &SalesTotals{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Sales,
		&totals.Cost,
		&totals.GrossProfit,
		&totals.Records,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear totais de vendas: %w", err)
	}

	return totals, nil
}

func applyFactFilters(builder squirrel.SelectBuilder, filters domain.SalesFactFilters) squirrel.SelectBuilder {
	if len(filters.ProductCodes) > 0 {
		builder = builder.Where(squirrel.Eq{"sr.product_code": filters.ProductCodes})
	}

	if filters.SalesChannelID != nil {
		builder = builder.Where(squirrel.Eq{"sr.sales_channel_id": *filters.SalesChannelID})
	}

	if filters.ManagedOnly {
		builder = builder.Where(squirrel.Eq{"p.management_status": domain.ManagementStatusManaged})
	}

	return builder
}

func (r *salesRecordRepository) delete(ctx context.Context, where squirrel.Sqlizer) (int64, error) {
	query, args, err := squirrel.
		Delete(salesRecordsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.exec(ctx, query, args)
}

func (r *salesRecordRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
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
