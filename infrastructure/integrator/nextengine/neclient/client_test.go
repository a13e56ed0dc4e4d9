package neclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/rinori/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 11, 10, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*NEClient, *mocks.MockNEAuthRepository) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNEAuthRepository(ctrl)

	cfg := config.NextEngine{
		BaseURL:          server.URL,
		ClientID:         "client",
		ClientSecret:     "secret",
		RequestTimeout:   5 * time.Second,
		RefreshThreshold: 5 * time.Minute,
	}

	httpClient := NewHTTPClient(cfg).SetRetryCount(0)
	tm := NewTokenManager(cfg, httpClient, repo)
	tm.now = func() time.Time { return fixedNow }

	return NewClient(httpClient, tm).(*NEClient), repo
}

func validAuth() *domain.NEAuth {
	return &domain.NEAuth{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    fixedNow.Add(time.Hour),
		RefreshesAt:  fixedNow.Add(48 * time.Hour),
	}
}

func TestNEClient_SearchOrderRows(t *testing.T) {
	var received map[string]string

	client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, orderRowSearchPath, r.URL.Path)

		received = map[string]string{}
		for key := range r.PostForm {
			received[key] = r.PostForm.Get(key)
		}

		fmt.Fprint(w, `{"result":"success","count":"2","data":[
			{"receive_order_row_no":"1","receive_order_row_goods_id":"RINO-FR010-M","receive_order_row_quantity":"2","receive_order_row_sub_total_price":"13156","receive_order_row_cancel_flag":"0"},
			{"receive_order_row_no":"2","receive_order_row_goods_id":"RINO-FR010-L","receive_order_row_quantity":"1","receive_order_row_sub_total_price":"6578","receive_order_row_cancel_flag":"0"}
		]}`)
	})

	repo.EXPECT().Get(gomock.Any()).Return(validAuth(), nil)

	from := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)

	rows, err := client.SearchOrderRows(context.Background(), from, to, []int{1, 3})

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "RINO-FR010-M", rows[0].GoodsID)
	assert.Equal(t, "6578", rows[1].SubTotalPrice)

	assert.Equal(t, "2024-10-01", received["receive_order_send_date-gte"])
	assert.Equal(t, "2024-10-31", received["receive_order_send_date-lte"])
	assert.Equal(t, "50", received["receive_order_order_status_id-eq"])
	assert.Equal(t, "1,3", received["receive_order_shop_id-in"])
	assert.Equal(t, "access-1", received["access_token"])
	assert.Equal(t, "refresh-1", received["refresh_token"])
}

func TestNEClient_ErrorResult(t *testing.T) {
	client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"error","code":"002002","message":"アクセストークンが無効です"}`)
	})

	repo.EXPECT().Get(gomock.Any()).Return(validAuth(), nil)

	_, err := client.GetShops(context.Background())

	var apiErr *nedomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "002002", apiErr.Code)
	assert.Equal(t, shopSearchPath, apiErr.Endpoint)
}

func TestNEClient_Unavailable(t *testing.T) {
	client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		conn, _, err := w.(http.Hijacker).Hijack()
		if err == nil {
			conn.Close()
		}
	})

	repo.EXPECT().Get(gomock.Any()).Return(validAuth(), nil)

	_, err := client.GetShops(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNEClient_StoresRotatedTokens(t *testing.T) {
	client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"success","count":"1","access_token":"access-2","refresh_token":"refresh-2",
			"access_token_end_date":"2024-11-11 21:00:00","refresh_token_end_date":"2024-11-13 21:00:00",
			"data":[{"shop_id":"1","shop_name":"楽天"}]}`)
	})

	repo.EXPECT().Get(gomock.Any()).Return(validAuth(), nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, auth *domain.NEAuth) error {
		assert.Equal(t, "access-2", auth.AccessToken)
		assert.Equal(t, time.Date(2024, 11, 11, 12, 0, 0, 0, time.UTC), auth.ExpiresAt.UTC())
		return nil
	})

	shops, err := client.GetShops(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []nedomain.Shop{{ShopID: "1", ShopName: "楽天"}}, shops)
}

func TestTokenManager_ValidToken(t *testing.T) {
	t.Run("Sem credenciais salvas - deve pedir login", func(t *testing.T) {
		client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("não deveria chamar a API")
		})

		repo.EXPECT().Get(gomock.Any()).Return(nil, nil)

		_, err := client.TokenManager.ValidToken(context.Background())

		assert.ErrorIs(t, err, ErrNotLinked)
	})

	t.Run("Token válido - não renova", func(t *testing.T) {
		client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("não deveria chamar a API")
		})

		repo.EXPECT().Get(gomock.Any()).Return(validAuth(), nil)

		auth, err := client.TokenManager.ValidToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "access-1", auth.AccessToken)
	})

	t.Run("Token vencendo em menos de 5 minutos - renova e salva", func(t *testing.T) {
		client, repo := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, refreshPath, r.URL.Path)
			assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))

			fmt.Fprint(w, `{"result":"success","access_token":"access-2","refresh_token":"refresh-2"}`)
		})

		expiring := validAuth()
		expiring.ExpiresAt = fixedNow.Add(2 * time.Minute)

		repo.EXPECT().Get(gomock.Any()).Return(expiring, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		auth, err := client.TokenManager.ValidToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "access-2", auth.AccessToken)
		assert.Equal(t, fixedNow.Add(accessTokenLifetime), auth.ExpiresAt)
		assert.Equal(t, fixedNow.Add(refreshTokenLifetime), auth.RefreshesAt)
	})
}
