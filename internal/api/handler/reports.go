package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/reporting"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func comparisonQuery(r *http.Request) (domain.ComparisonQuery, error) {
	channelID, err := queryOptionalInt(r, "salesChannelId")
	if err != nil {
		return domain.ComparisonQuery{}, err
	}

	dimension := domain.Dimension(r.URL.Query().Get("dimension"))
	if dimension == "" {
		dimension = domain.DimensionOverall
	}

	return domain.ComparisonQuery{
		StartYm:        r.URL.Query().Get("startYm"),
		EndYm:          r.URL.Query().Get("endYm"),
		Dimension:      dimension,
		DimensionIDs:   queryList(r, "dimensionIds"),
		SalesChannelID: channelID,
	}, nil
}

// GetBudgetVsActual devolve, por período, atual x orçamento x ano anterior de cada item da dimensão
func GetBudgetVsActual(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := comparisonQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "salesChannelId inválido", nil)
			return
		}

		comparison, err := service.Compare(r.Context(), query)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, comparison)
	}
}

func ExportBudgetVsActual(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := comparisonQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "salesChannelId inválido", nil)
			return
		}

		content, filename, err := service.ExportComparison(r.Context(), query)
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(content); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}

func GetPLSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channelID, err := queryOptionalInt(r, "salesChannelId")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "salesChannelId inválido", nil)
			return
		}

		summary, err := service.Summary(r.Context(), domain.PLQuery{
			StartYm:        r.URL.Query().Get("startYm"),
			EndYm:          r.URL.Query().Get("endYm"),
			SalesChannelID: channelID,
		})
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}
