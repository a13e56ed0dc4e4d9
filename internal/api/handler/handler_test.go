package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/neclient"
	"github.com/rinori/sales-ledger-api/internal/api/handler/router"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/authenticating"
	authmocks "github.com/rinori/sales-ledger-api/internal/usecases/authenticating/mocks"
	"github.com/rinori/sales-ledger-api/internal/usecases/configuring"
	configmocks "github.com/rinori/sales-ledger-api/internal/usecases/configuring/mocks"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	ingestmocks "github.com/rinori/sales-ledger-api/internal/usecases/ingesting/mocks"
	reportmocks "github.com/rinori/sales-ledger-api/internal/usecases/reporting/mocks"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var operatorClaims = &domain.Claims{UserID: 7, UserRoleID: middleware.RoleOperator, UserActive: true}

// serve roteia a requisição com os claims já no contexto, como o AuthMiddleware faria
func serve(routes []router.Route, req *http.Request, claims *domain.Claims) *httptest.ResponseRecorder {
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "usuário inexistente responde como senha errada",
			err:        authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "senha incorreta",
			err:        authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 4, ""),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "conta desativada",
			err:        authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 4, ""),
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authenticator := authmocks.NewMockAuthenticator(ctrl)
			authenticator.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "x").Return("", tt.err)

			body := bytes.NewBufferString(`{"email":"ana@example.com","password":"x"}`)
			rec := serve(Authentication(authenticator), httptest.NewRequest(http.MethodPost, "/v1/login", body), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}

	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authenticator := authmocks.NewMockAuthenticator(ctrl)
		authenticator.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "x").Return("jwt-token", nil)

		body := bytes.NewBufferString(`{"email":"ana@example.com","password":"x"}`)
		rec := serve(Authentication(authenticator), httptest.NewRequest(http.MethodPost, "/v1/login", body), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)
	})
}

func TestImportSales(t *testing.T) {
	t.Run("converte as linhas do CSV e usa o usuário do token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		ingester.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ingesting.IngestRequest) (*ingesting.IngestResult, error) {
				assert.Equal(t, "2024-05", req.TargetYm)
				assert.Equal(t, 3, req.SalesChannelID)
				assert.Equal(t, domain.ImportModeOverwrite, req.Mode)
				assert.Equal(t, domain.DataSourceNextEngineCSV, req.Source)
				assert.Equal(t, 7, req.ActingUserID)
				require.Len(t, req.Rows, 2)
				assert.Equal(t, "RINO-FR010-BLK", req.Rows[0].SKU)
				assert.True(t, req.Rows[0].SubtotalInclTax.Equal(decimal.NewFromInt(9867)))
				assert.True(t, req.Rows[1].Cancelled)

				return &ingesting.IngestResult{ImportHistoryID: 12, InsertedCount: 1, Message: "1件のデータを取り込みました"}, nil
			})

		body := `{"targetYm":"2024-05","salesChannelId":3,"mode":"overwrite","rows":[
			{"sku":"RINO-FR010-BLK","productName":"Frame","quantity":1,"subtotal":9867},
			{"sku":"RINO-FR010-RED","productName":"Frame","quantity":1,"subtotal":"9867","cancelled":true}
		]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/import", bytes.NewBufferString(body))

		rec := serve(Sales(ingester), req, operatorClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var result ingesting.IngestResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(12), result.ImportHistoryID)
		assert.Equal(t, 1, result.InsertedCount)
	})

	t.Run("linhas da Amazon descontam B2B", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		ingester.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ingesting.IngestRequest) (*ingesting.IngestResult, error) {
				require.Len(t, req.Rows, 1)
				assert.Equal(t, "B0TESTASIN", req.Rows[0].ASIN)
				assert.Equal(t, int64(3), req.Rows[0].Quantity)
				assert.True(t, req.SkipUnregisteredASINs)
				return &ingesting.IngestResult{}, nil
			})

		body := `{"targetYm":"2024-05","salesChannelId":4,"mode":"append","source":"Amazon","skipUnregisteredAsins":true,
			"rows":[{"parentAsin":"B0TESTASIN","title":"Frame","units":5,"unitsB2b":2,"sales":"15000","salesB2b":"6000"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/import", bytes.NewBufferString(body))

		rec := serve(Sales(ingester), req, operatorClaims)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ASIN sem cadastro volta com detalhes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		ingester.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			Return(nil, ingesting.NewUnregisteredASINError([]ingesting.UnregisteredASIN{{ASIN: "B0NONE", Title: "Case"}}))

		body := `{"targetYm":"2024-05","salesChannelId":4,"mode":"append","source":"Amazon","rows":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/import", bytes.NewBufferString(body))

		rec := serve(Sales(ingester), req, operatorClaims)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrUnregisteredASIN, apiErr.Code)
		assert.Contains(t, rec.Body.String(), "B0NONE")
	})

	t.Run("api-sync não é aceito na importação manual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		body := `{"targetYm":"2024-05","salesChannelId":3,"mode":"api-sync","rows":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/import", bytes.NewBufferString(body))

		rec := serve(Sales(ingester), req, operatorClaims)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("perfil de leitura não importa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		viewer := &domain.Claims{UserID: 9, UserRoleID: middleware.RoleViewer}
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/import", bytes.NewBufferString(`{}`))

		rec := serve(Sales(ingester), req, viewer)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSyncSales(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "sucesso", wantStatus: http.StatusOK},
		{name: "canal sem lojas", err: ingesting.NewUnresolvedMappingError(3), wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrUnresolvedMapping},
		{name: "sem vínculo OAuth", err: ingesting.NewIntegrationError(neclient.ErrNotLinked), wantStatus: http.StatusPreconditionFailed, wantCode: apiErrors.ErrIntegrationNotLinked},
		{name: "plataforma fora do ar", err: ingesting.NewIntegrationError(errors.New("502")), wantStatus: http.StatusBadGateway, wantCode: apiErrors.ErrExternalService},
		{name: "falha no banco", err: ingesting.NewPersistenceError(errors.New("deadlock")), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ingester := ingestmocks.NewMockIngester(ctrl)

			var result *ingesting.IngestResult
			if tt.err == nil {
				result = &ingesting.IngestResult{InsertedCount: 4}
			}

			ingester.EXPECT().
				SyncFromNextEngine(gomock.Any(), ingesting.SyncRequest{TargetYm: "2024-05", SalesChannelID: 3, ActingUserID: 7}).
				Return(result, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/nextengine/sync", bytes.NewBufferString(`{"targetYm":"2024-05","salesChannelId":3}`))

			rec := serve(Sales(ingester), req, operatorClaims)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestImportHistoryRoutes(t *testing.T) {
	t.Run("remoção de histórico inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		ingester.EXPECT().
			DeleteHistory(gomock.Any(), int64(99)).
			Return(nil, ingesting.NewValidationError(ingesting.ErrHistoryNotFound, apiErrors.ErrResourceNotFound, "id 99"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/import-histories/99", nil)

		rec := serve(Sales(ingester), req, operatorClaims)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("troca de canal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		ingester.EXPECT().
			ChangeHistoryChannel(gomock.Any(), int64(12), 5).
			Return(&domain.ImportHistory{ID: 12, SalesChannelID: 5}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/import-histories/12", bytes.NewBufferString(`{"salesChannelId":5}`))

		rec := serve(Sales(ingester), req, operatorClaims)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sales_channel_id":5`)
	})

	t.Run("lista com filtros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		channelID := 3
		ingester.EXPECT().
			ListHistories(gomock.Any(), domain.ImportHistoryFilters{TargetYm: "2024-05", SalesChannelID: &channelID, Limit: 20}).
			Return([]*domain.ImportHistory{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/import-histories?targetYm=2024-05&salesChannelId=3&limit=20", nil)

		rec := serve(Sales(ingester), req, operatorClaims)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("id inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingester := ingestmocks.NewMockIngester(ctrl)

		req := httptest.NewRequest(http.MethodDelete, "/v1/import-histories/abc", nil)

		rec := serve(Sales(ingester), req, operatorClaims)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReports(t *testing.T) {
	t.Run("consulta com dimensão e filtro de canal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)

		channelID := 2
		reporter.EXPECT().
			Compare(gomock.Any(), domain.ComparisonQuery{
				StartYm:        "2024-04",
				EndYm:          "2024-05",
				Dimension:      domain.DimensionCategory,
				DimensionIDs:   []string{"1", "unclassified"},
				SalesChannelID: &channelID,
			}).
			Return([]*domain.PeriodComparison{{PeriodYm: "2024-04"}}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reports/budget-vs-actual?startYm=2024-04&endYm=2024-05&dimension=category&dimensionIds=1,unclassified&salesChannelId=2", nil)

		rec := serve(Reports(reporter), req, operatorClaims)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"periodYm":"2024-04"`)
	})

	t.Run("exportação devolve a planilha como anexo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)

		reporter.EXPECT().
			ExportComparison(gomock.Any(), gomock.Any()).
			Return([]byte("PK"), "budget_vs_actual_overall_2024-04_2024-05.xlsx", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/budget-vs-actual/export?startYm=2024-04&endYm=2024-05", nil)

		rec := serve(Reports(reporter), req, operatorClaims)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "budget_vs_actual_overall_2024-04_2024-05.xlsx")
		assert.Equal(t, "PK", rec.Body.String())
	})

	t.Run("salesChannelId inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportmocks.NewMockReporter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/pl?startYm=2024-04&endYm=2024-05&salesChannelId=x", nil)

		rec := serve(Reports(reporter), req, operatorClaims)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSettingsAndNextEngine(t *testing.T) {
	master := &domain.Claims{UserID: 1, UserRoleID: middleware.RoleMaster}

	t.Run("palavra duplicada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		configurator := configmocks.NewMockConfigurator(ctrl)

		configurator.EXPECT().
			CreateKeyword(gomock.Any(), "SAMPLE", domain.MatchTypeContains).
			Return(nil, &configuring.ConfigError{Err: configuring.ErrKeywordExists, Code: apiErrors.ErrResourceConflict})

		req := httptest.NewRequest(http.MethodPost, "/v1/settings/exclusion-keywords", bytes.NewBufferString(`{"keyword":"SAMPLE","matchType":"contains"}`))

		rec := serve(Settings(configurator), req, master)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("operador não altera palavras", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		configurator := configmocks.NewMockConfigurator(ctrl)

		req := httptest.NewRequest(http.MethodDelete, "/v1/settings/exclusion-keywords/3", nil)

		rec := serve(Settings(configurator), req, operatorClaims)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("remoção de palavra", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		configurator := configmocks.NewMockConfigurator(ctrl)

		configurator.EXPECT().DeleteKeyword(gomock.Any(), 3).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/settings/exclusion-keywords/3", nil)

		rec := serve(Settings(configurator), req, master)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("callback sem token de usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		configurator := configmocks.NewMockConfigurator(ctrl)

		configurator.EXPECT().CompleteAuth(gomock.Any(), "uid-1", "state-1").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/nextengine/auth/callback?uid=uid-1&state=state-1", nil)

		rec := serve(NextEngine(configurator), req, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("troca das lojas do canal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		configurator := configmocks.NewMockConfigurator(ctrl)

		configurator.EXPECT().
			ReplaceMappings(gomock.Any(), 3, []int{10, 11}).
			Return([]*domain.NEShopMapping{{ID: 1, NEShopID: 10, ChannelID: 3}, {ID: 2, NEShopID: 11, ChannelID: 3}}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/nextengine/mappings", bytes.NewBufferString(`{"salesChannelId":3,"shopIds":[10,11]}`))

		rec := serve(NextEngine(configurator), req, master)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type fakeSyncJob struct {
	accept    bool
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync(context.Context) bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	master := &domain.Claims{UserID: 1, UserRoleID: middleware.RoleMaster}

	tests := []struct {
		name       string
		path       string
		accept     bool
		wantStatus int
	}{
		{name: "dispara a sincronização", path: "/v1/cron/nextengine-sales/run", accept: true, wantStatus: http.StatusAccepted},
		{name: "já em andamento", path: "/v1/cron/all/run", accept: false, wantStatus: http.StatusConflict},
		{name: "tipo desconhecido", path: "/v1/cron/meta/run", accept: true, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeSyncJob{accept: tt.accept}
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)

			rec := serve(CronJobs(CronJobServices{NextEngineSalesSync: job}), req, master)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("status", func(t *testing.T) {
		job := &fakeSyncJob{}
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)

		rec := serve(CronJobs(CronJobServices{NextEngineSalesSync: job}), req, master)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "nextengine-sales")
	})
}
