package handler

import (
	"net/http"

	"github.com/rinori/sales-ledger-api/internal/usecases/registering"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

type BulkIgnoreCandidatesRequest struct {
	ProductCodes []string `json:"productCodes"`
}

func ListCandidates(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := service.ListCandidates(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, candidates)
	}
}

func BulkRegisterCandidates(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registering.BulkRegisterRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.BulkRegister(r.Context(), req)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func BulkIgnoreCandidates(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkIgnoreCandidatesRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.BulkIgnore(r.Context(), req.ProductCodes)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
