package handler

import (
	"net/http"
	"strconv"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

const defaultHistoryLimit = 100

type ChangeHistoryChannelRequest struct {
	SalesChannelID int `json:"salesChannelId"`
}

func ListImportHistories(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channelID, err := queryOptionalInt(r, "salesChannelId")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "salesChannelId inválido", nil)
			return
		}

		filters := domain.ImportHistoryFilters{
			TargetYm:       r.URL.Query().Get("targetYm"),
			SalesChannelID: channelID,
			Limit:          defaultHistoryLimit,
		}

		if limit := r.URL.Query().Get("limit"); limit != "" {
			parsed, err := strconv.ParseUint(limit, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			filters.Limit = parsed
		}

		histories, err := service.ListHistories(r.Context(), filters)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, histories)
	}
}

// ChangeImportHistoryChannel move o histórico e todas as suas vendas para outro canal
func ChangeImportHistoryChannel(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do histórico inválido", nil)
			return
		}

		var req ChangeHistoryChannelRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		history, err := service.ChangeHistoryChannel(r.Context(), id, req.SalesChannelID)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	}
}

func DeleteImportHistory(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt64(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do histórico inválido", nil)
			return
		}

		history, err := service.DeleteHistory(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	}
}
