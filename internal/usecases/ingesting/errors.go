package ingesting

import (
	"errors"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/neclient"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrInvalidPeriod    = errors.New("período inválido")
	ErrMissingChannel   = errors.New("canal de venda obrigatório")
	ErrUnknownChannel   = errors.New("canal de venda não existe")
	ErrInvalidMode      = errors.New("modo de importação inválido")
	ErrMissingRows      = errors.New("nenhuma linha para importar")
	ErrMissingUser      = errors.New("usuário da importação obrigatório")
	ErrHistoryNotFound  = errors.New("histórico de importação não encontrado")
	ErrSyncedHistory    = errors.New("histórico sincronizado pela API não pode mudar de canal")
	ErrUnregisteredASIN = errors.New("ASINs sem produto cadastrado")

	// Canal sem lojas vinculadas na plataforma de pedidos
	ErrUnresolvedMapping = errors.New("canal sem lojas vinculadas")

	// Falha na transação de importação
	ErrPersistence = errors.New("erro ao gravar importação")

	// Falha na API de pedidos
	ErrIntegration = errors.New("erro na integração de pedidos")
)

// UnregisteredASIN é um ASIN do relatório da Amazon sem produto no cadastro
type UnregisteredASIN struct {
	ASIN  string `json:"asin"`
	Title string `json:"title"`
}

// IngestError carrega o código da API junto com o erro base
type IngestError struct {
	Err               error
	Code              string
	Details           string
	UnregisteredASINs []UnregisteredASIN
}

func (e *IngestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewValidationError indica entrada inválida; nada foi alterado
func NewValidationError(err error, code string, details string) *IngestError {
	return &IngestError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewUnresolvedMappingError(channelID int) *IngestError {
	return &IngestError{
		Err:     ErrUnresolvedMapping,
		Code:    apiErrors.ErrUnresolvedMapping,
		Details: fmt.Sprintf("canal %d", channelID),
	}
}

func NewUnregisteredASINError(asins []UnregisteredASIN) *IngestError {
	return &IngestError{
		Err:               ErrUnregisteredASIN,
		Code:              apiErrors.ErrUnregisteredASIN,
		Details:           fmt.Sprintf("%d ASIN(s)", len(asins)),
		UnregisteredASINs: asins,
	}
}

// NewPersistenceError indica que a transação inteira foi desfeita
func NewPersistenceError(err error) *IngestError {
	return &IngestError{
		Err:     ErrPersistence,
		Code:    apiErrors.ErrDatabaseOperation,
		Details: err.Error(),
	}
}

// NewIntegrationError distingue a falta de vínculo OAuth das demais falhas da API de pedidos
func NewIntegrationError(err error) *IngestError {
	code := apiErrors.ErrExternalService
	switch {
	case errors.Is(err, neclient.ErrNotLinked):
		code = apiErrors.ErrIntegrationNotLinked
	case errors.Is(err, neclient.ErrUnavailable):
		code = apiErrors.ErrCommunication
	}

	return &IngestError{
		Err:     ErrIntegration,
		Code:    code,
		Details: err.Error(),
	}
}
