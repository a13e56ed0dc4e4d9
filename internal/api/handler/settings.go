package handler

import (
	"net/http"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

type CreateKeywordRequest struct {
	Keyword   string           `json:"keyword"`
	MatchType domain.MatchType `json:"matchType"`
}

func ListExclusionKeywords(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keywords, err := service.ListKeywords(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, keywords)
	}
}

func CreateExclusionKeyword(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateKeywordRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		keyword, err := service.CreateKeyword(r.Context(), req.Keyword, req.MatchType)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, keyword)
	}
}

func DeleteExclusionKeyword(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
			return
		}

		if err := service.DeleteKeyword(r.Context(), int(id)); err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListTaxRates(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := service.ListTaxRates(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, rates)
	}
}

func ListSalesChannels(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := service.ListChannels(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, channels)
	}
}
