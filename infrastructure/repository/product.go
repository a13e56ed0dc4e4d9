// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	productsTable = "products"
)

var productColumns = []string{
	"product_code",
	"product_name",
	"sales_price_excl_tax",
	"cost_excl_tax",
	"product_type",
	"management_status",
	"category_id",
	"asin",
	"created_at",
	"updated_at",
}

type ProductRepository interface {
	GetByCodes(ctx context.Context, codes []string) (map[string]*domain.Product, error)
	GetByASINs(ctx context.Context, asins []string) (map[string]*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) (bool, error)
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// GetByCodes busca os produtos em lote; códigos sem cadastro ficam fora do mapa
func (r *productRepository) GetByCodes(ctx context.Context, codes []string) (map[string]*domain.Product, error) {
	products := make(map[string]*domain.Product, len(codes))
	if len(codes) == 0 {
		return products, nil
	}

	err := r.list(ctx, squirrel.Eq{"product_code": codes}, func(p *domain.Product) {
		products[p.ProductCode] = p
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetByASINs(ctx context.Context, asins []string) (map[string]*domain.Product, error) {
	products := make(map[string]*domain.Product, len(asins))
	if len(asins) == 0 {
		return products, nil
	}

	err := r.list(ctx, squirrel.Eq{"asin": asins}, func(p *domain.Product) {
		products[*p.ASIN] = p
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Upsert grava o produto; se o código já existe, atualiza os demais campos.
// Retorna true quando a linha foi criada.
func (r *productRepository) Upsert(ctx context.Context, product *domain.Product) (bool, error) {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns(
			"product_code",
			"product_name",
			"sales_price_excl_tax",
			"cost_excl_tax",
			"product_type",
			"management_status",
			"category_id",
			"asin",
		).
		Values(
			product.ProductCode,
			product.ProductName,
			product.SalesPriceExclTax,
			product.CostExclTax,
			product.ProductType,
			product.ManagementStatus,
			product.CategoryID,
			product.ASIN,
		).
		Suffix(`ON CONFLICT (product_code) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			sales_price_excl_tax = EXCLUDED.sales_price_excl_tax,
			cost_excl_tax = EXCLUDED.cost_excl_tax,
			product_type = EXCLUDED.product_type,
			management_status = EXCLUDED.management_status,
			updated_at = NOW()
		RETURNING (xmax = 0)`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var created bool
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&created); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return created, nil
}

func (r *productRepository) list(ctx context.Context, where squirrel.Sqlizer, fn func(*domain.Product)) error {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return fmt.Errorf("erro ao escanear produto: %w", err)
		}
		fn(product)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ProductCode,
		&product.ProductName,
		&product.SalesPriceExclTax,
		&product.CostExclTax,
		&product.ProductType,
		&product.ManagementStatus,
		&product.CategoryID,
		&product.ASIN,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
