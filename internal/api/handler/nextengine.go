package handler

import (
	"net/http"

	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

type ReplaceMappingsRequest struct {
	SalesChannelID int   `json:"salesChannelId"`
	ShopIDs        []int `json:"shopIds"`
}

func ListNextEngineShops(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := service.ListShops(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, shops)
	}
}

func ListShopMappings(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mappings, err := service.ListMappings(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, mappings)
	}
}

func ReplaceShopMappings(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReplaceMappingsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		mappings, err := service.ReplaceMappings(r.Context(), req.SalesChannelID, req.ShopIDs)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, mappings)
	}
}

func NextEngineAuthURL(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := service.AuthURL(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"url": url,
		})
	}
}

// NextEngineAuthCallback é chamado pelo navegador ao voltar do login na plataforma
func NextEngineAuthCallback(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if err := service.CompleteAuth(r.Context(), query.Get("uid"), query.Get("state")); err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]bool{
			"connected": true,
		})
	}
}

func NextEngineAuthStatus(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.AuthStatus(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
