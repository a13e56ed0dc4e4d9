package registering

import (
	"errors"
	"fmt"

	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

var (
	ErrNoCandidates        = errors.New("nenhum candidato selecionado")
	ErrNoPendingCandidates = errors.New("nenhum candidato pendente entre os selecionados")
	ErrInvalidStatus       = errors.New("status de candidato inválido")
	ErrInvalidProductType  = errors.New("tipo de produto inválido")
	ErrInvalidManagement   = errors.New("status de gestão inválido")
	ErrNegativeAmount      = errors.New("preço e custo não podem ser negativos")
	ErrPersistence         = errors.New("erro ao gravar candidatos")
)

type RegisterError struct {
	Err     error
	Code    string
	Details string
}

func (e *RegisterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RegisterError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error, details string) *RegisterError {
	return &RegisterError{
		Err:     err,
		Code:    apiErrors.ErrInvalidRequest,
		Details: details,
	}
}

func NewPersistenceError(err error) *RegisterError {
	return &RegisterError{
		Err:     ErrPersistence,
		Code:    apiErrors.ErrDatabaseOperation,
		Details: err.Error(),
	}
}
