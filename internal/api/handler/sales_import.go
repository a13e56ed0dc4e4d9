package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
)

// ImportSalesRequest traz as linhas já lidas do arquivo; o formato de Rows depende de Source
type ImportSalesRequest struct {
	TargetYm              string              `json:"targetYm"`
	SalesChannelID        int                 `json:"salesChannelId"`
	Mode                  domain.ImportMode   `json:"mode"`
	Source                domain.DataSource   `json:"source"`
	Comment               string              `json:"comment"`
	SkipUnregisteredASINs bool                `json:"skipUnregisteredAsins"`
	Rows                  jsoniter.RawMessage `json:"rows"`
}

type SyncSalesRequest struct {
	TargetYm       string `json:"targetYm"`
	SalesChannelID int    `json:"salesChannelId"`
}

func ImportSales(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ImportSalesRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// api-sync só pela rota de sincronização, que busca as linhas na plataforma
		if req.Mode == domain.ImportModeAPISync {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Modo api-sync não aceito na importação manual", nil)
			return
		}

		rows, err := decodeRows(req.Source, req.Rows)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Linhas em formato inválido", err.Error())
			return
		}

		source := req.Source
		if source == "" {
			source = domain.DataSourceNextEngineCSV
		}

		result, err := service.Ingest(r.Context(), ingesting.IngestRequest{
			TargetYm:              req.TargetYm,
			SalesChannelID:        req.SalesChannelID,
			Mode:                  req.Mode,
			Source:                source,
			Rows:                  rows,
			Comment:               req.Comment,
			ActingUserID:          userClaims.UserID,
			SkipUnregisteredASINs: req.SkipUnregisteredASINs,
		})
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func decodeRows(source domain.DataSource, raw jsoniter.RawMessage) ([]domain.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	switch source {
	case domain.DataSourceAmazonCSV:
		var rows []ingesting.AmazonRow
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return ingesting.FromAmazonRows(rows), nil

	case domain.DataSourceAPI:
		var rows []nedomain.OrderRow
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return ingesting.FromNextEngineRows(rows)

	default:
		var rows []ingesting.CSVRow
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return ingesting.FromCSVRows(rows), nil
	}
}

func SyncSales(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SyncSalesRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.SyncFromNextEngine(r.Context(), ingesting.SyncRequest{
			TargetYm:       req.TargetYm,
			SalesChannelID: req.SalesChannelID,
			ActingUserID:   userClaims.UserID,
		})
		if err != nil {
			writeUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
