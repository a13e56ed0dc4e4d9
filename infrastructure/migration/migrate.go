// Package migration aplica o schema do banco de dados da API
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

// Schema devolve o DDL embutido; todas as instruções são idempotentes
func Schema() string {
	return schema
}

// Apply executa o schema dentro de uma transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	logrus.Info("Aplicando schema do banco de dados...")

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("erro ao executar o schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Info("Schema do banco de dados aplicado com sucesso")
	return nil
}
