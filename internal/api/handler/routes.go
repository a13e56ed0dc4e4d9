package handler

import (
	"net/http"

	"github.com/rinori/sales-ledger-api/internal/api/handler/router"
	"github.com/rinori/sales-ledger-api/internal/usecases/authenticating"
	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/rinori/sales-ledger-api/internal/usecases/registering"
	"github.com/rinori/sales-ledger-api/internal/usecases/reporting"
	"github.com/rinori/sales-ledger-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/import",
			Method:      http.MethodPost,
			Handler:     ImportSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOrOperator()},
		},
		{
			Path:        "/v1/nextengine/sync",
			Method:      http.MethodPost,
			Handler:     SyncSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOrOperator()},
		},
		{
			Path:        "/v1/import-histories",
			Method:      http.MethodGet,
			Handler:     ListImportHistories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/import-histories/:id",
			Method:      http.MethodPut,
			Handler:     ChangeImportHistoryChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOrOperator()},
		},
		{
			Path:        "/v1/import-histories/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteImportHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOrOperator()},
		},
	}
}

func Candidates(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/candidates",
			Method:      http.MethodGet,
			Handler:     ListCandidates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/candidates/bulk-register",
			Method:      http.MethodPost,
			Handler:     BulkRegisterCandidates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOrOperator()},
		},
		{
			Path:        "/v1/products/candidates/bulk-ignore",
			Method:      http.MethodPost,
			Handler:     BulkIgnoreCandidates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOrOperator()},
		},
	}
}

func Settings(service configuring.Configurator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings/exclusion-keywords",
			Method:      http.MethodGet,
			Handler:     ListExclusionKeywords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/exclusion-keywords",
			Method:      http.MethodPost,
			Handler:     CreateExclusionKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/settings/exclusion-keywords/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteExclusionKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/settings/tax-rates",
			Method:      http.MethodGet,
			Handler:     ListTaxRates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales-channels",
			Method:      http.MethodGet,
			Handler:     ListSalesChannels(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func NextEngine(service configuring.Configurator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/nextengine/shops",
			Method:      http.MethodGet,
			Handler:     ListNextEngineShops(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/nextengine/mappings",
			Method:      http.MethodGet,
			Handler:     ListShopMappings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/nextengine/mappings",
			Method:      http.MethodPut,
			Handler:     ReplaceShopMappings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/nextengine/auth/url",
			Method:      http.MethodGet,
			Handler:     NextEngineAuthURL(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:    "/v1/nextengine/auth/callback",
			Method:  http.MethodGet,
			Handler: NextEngineAuthCallback(service),
		},
		{
			Path:        "/v1/nextengine/auth/status",
			Method:      http.MethodGet,
			Handler:     NextEngineAuthStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/budget-vs-actual",
			Method:      http.MethodGet,
			Handler:     GetBudgetVsActual(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/budget-vs-actual/export",
			Method:      http.MethodGet,
			Handler:     ExportBudgetVsActual(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/pl",
			Method:      http.MethodGet,
			Handler:     GetPLSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}
