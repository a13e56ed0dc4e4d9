package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/authenticating"
	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/rinori/sales-ledger-api/internal/usecases/registering"
	"github.com/rinori/sales-ledger-api/internal/usecases/reporting"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func claimsFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// writeUseCaseError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		ingestErr   *ingesting.IngestError
		reportErr   *reporting.ReportError
		registerErr *registering.RegisterError
		configErr   *configuring.ConfigError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &ingestErr):
		var details any
		if len(ingestErr.UnregisteredASINs) > 0 {
			details = map[string]any{"unregisteredAsins": ingestErr.UnregisteredASINs}
		}
		logByCode(logger, ingestErr.Code)
		apiErrors.WriteError(w, ingestErr.Code, ingestErr.Error(), details)

	case errors.As(err, &reportErr):
		logByCode(logger, reportErr.Code)
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)

	case errors.As(err, &registerErr):
		logByCode(logger, registerErr.Code)
		apiErrors.WriteError(w, registerErr.Code, registerErr.Error(), nil)

	case errors.As(err, &configErr):
		logByCode(logger, configErr.Code)
		apiErrors.WriteError(w, configErr.Code, configErr.Error(), nil)

	case errors.As(err, &authErr):
		if authErr.UserID != 0 {
			logger = logger.WithField("user_id", authErr.UserID)
		}
		logByCode(logger, authErr.Code)
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	default:
		logger.Error("Erro não tratado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// erros do cliente ficam em warn; falhas do servidor em error
func logByCode(logger log.Logger, code string) {
	if strings.HasPrefix(code, "SRV_") {
		logger.Error("Erro ao processar requisição")
		return
	}
	logger.Warn("Requisição recusada")
}

func pathInt64(r *http.Request, name string) (int64, error) {
	value := httprouter.ParamsFromContext(r.Context()).ByName(name)
	return strconv.ParseInt(value, 10, 64)
}

// queryOptionalInt devolve nil quando o parâmetro não foi enviado
func queryOptionalInt(r *http.Request, name string) (*int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func queryList(r *http.Request, name string) []string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
