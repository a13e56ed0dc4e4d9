package reporting

import (
	"errors"
	"fmt"

	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

var (
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrInvalidRange       = errors.New("período final anterior ao inicial")
	ErrInvalidDimension   = errors.New("dimensão inválida")
	ErrInvalidDimensionID = errors.New("id de dimensão inválido")
	ErrQueryFailed        = errors.New("erro ao consultar dados do relatório")
	ErrExportFailed       = errors.New("erro ao gerar planilha")
)

type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    apiErrors.ErrInvalidRequest,
		Details: details,
	}
}

func NewQueryError(err error) *ReportError {
	return &ReportError{
		Err:     ErrQueryFailed,
		Code:    apiErrors.ErrDatabaseOperation,
		Details: err.Error(),
	}
}
