package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeNextEngineSales = "nextengine-sales"
	CronJobTypeAll             = "all"
)

// SyncJob é o contrato dos agendadores que aceitam execução manual
type SyncJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	NextEngineSalesSync SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := claimsFromContext(r)
		if !ok || userClaims.UserRoleID != middleware.RoleMaster {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas o perfil master pode executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeNextEngineSales, CronJobTypeAll:
			if services.NextEngineSalesSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de vendas não disponível", nil)
				return
			}

			if !services.NextEngineSalesSync.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Sincronização de vendas já em andamento", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: nextengine-sales, all", nil)
			return
		}

		logger.WithFields(log.Fields{
			"type":    cronType,
			"user_id": userClaims.UserID,
		}).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.NextEngineSalesSync != nil {
			status[CronJobTypeNextEngineSales] = services.NextEngineSalesSync.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
