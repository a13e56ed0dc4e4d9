package configuring

import (
	"errors"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/neclient"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

var (
	ErrEmptyKeyword     = errors.New("palavra de exclusão obrigatória")
	ErrInvalidMatchType = errors.New("tipo de comparação inválido")
	ErrKeywordExists    = errors.New("palavra de exclusão já cadastrada")
	ErrKeywordNotFound  = errors.New("palavra de exclusão não encontrada")
	ErrInvalidChannel   = errors.New("canal de venda inválido")
	ErrInvalidShopID    = errors.New("id de loja inválido")
	ErrMissingAuthCode  = errors.New("uid e state são obrigatórios")
	ErrInvalidState     = errors.New("state desconhecido ou expirado")
	ErrPersistence      = errors.New("erro ao gravar configuração")
	ErrIntegration      = errors.New("erro na integração de pedidos")
)

type ConfigError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newError(err error, code, details string) *ConfigError {
	return &ConfigError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewValidationError(err error, details string) *ConfigError {
	return newError(err, apiErrors.ErrInvalidRequest, details)
}

func NewPersistenceError(err error) *ConfigError {
	return newError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
}

func NewIntegrationError(err error) *ConfigError {
	code := apiErrors.ErrExternalService
	switch {
	case errors.Is(err, neclient.ErrNotLinked):
		code = apiErrors.ErrIntegrationNotLinked
	case errors.Is(err, neclient.ErrUnavailable):
		code = apiErrors.ErrCommunication
	}
	return newError(ErrIntegration, code, err.Error())
}
