package neclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	orderRowSearchPath = "/api_v1_receiveorder_row/search"
	shopSearchPath     = "/api_v1_master_shop/search"

	// shippedStatusID é o status de pedido "expedição confirmada"
	shippedStatusID = "50"
	searchPageSize  = 1000
)

type Client interface {
	SearchOrderRows(ctx context.Context, from, to time.Time, shopIDs []int) ([]nedomain.OrderRow, error)
	GetShops(ctx context.Context) ([]nedomain.Shop, error)
	ExchangeToken(ctx context.Context, uid, state string) error
}

type NEClient struct {
	http         *resty.Client
	TokenManager *TokenManager
}

func NewClient(httpClient *resty.Client, tokenManager *TokenManager) Client {
	return &NEClient{
		http:         httpClient,
		TokenManager: tokenManager,
	}
}

// NewHTTPClient cria o cliente resty compartilhado entre as buscas e a renovação de tokens
func NewHTTPClient(cfg config.NextEngine) *resty.Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return client
}

func (c *NEClient) ExchangeToken(ctx context.Context, uid, state string) error {
	return c.TokenManager.Exchange(ctx, uid, state)
}

// SearchOrderRows busca as linhas de pedidos expedidos entre from e to (datas inclusivas), paginando
func (c *NEClient) SearchOrderRows(ctx context.Context, from, to time.Time, shopIDs []int) ([]nedomain.OrderRow, error) {
	ids := make([]string, 0, len(shopIDs))
	for _, id := range shopIDs {
		ids = append(ids, strconv.Itoa(id))
	}

	rows := make([]nedomain.OrderRow, 0)
	for offset := 0; ; offset += searchPageSize {
		form := map[string]string{
			"fields":                           strings.Join(nedomain.OrderRowFields, ","),
			"receive_order_send_date-gte":      from.Format(time.DateOnly),
			"receive_order_send_date-lte":      to.Format(time.DateOnly),
			"receive_order_order_status_id-eq": shippedStatusID,
			"receive_order_shop_id-in":         strings.Join(ids, ","),
			"limit":                            strconv.Itoa(searchPageSize),
			"offset":                           strconv.Itoa(offset),
			"wait_flag":                        "1",
		}

		var page nedomain.SearchResponse[nedomain.OrderRow]
		if err := c.post(ctx, orderRowSearchPath, form, &page); err != nil {
			return nil, err
		}

		rows = append(rows, page.Data...)

		logrus.WithFields(logrus.Fields{
			"offset": offset,
			"rows":   len(page.Data),
		}).Debug("ne-client: página de pedidos recebida")

		if len(page.Data) < searchPageSize {
			break
		}
	}

	return rows, nil
}

func (c *NEClient) GetShops(ctx context.Context) ([]nedomain.Shop, error) {
	form := map[string]string{
		"fields":    "shop_id,shop_name",
		"wait_flag": "1",
	}

	var resp nedomain.SearchResponse[nedomain.Shop]
	if err := c.post(ctx, shopSearchPath, form, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *NEClient) post(ctx context.Context, endpoint string, form map[string]string, out any) error {
	auth, err := c.TokenManager.ValidToken(ctx)
	if err != nil {
		return err
	}

	form["access_token"] = auth.AccessToken
	form["refresh_token"] = auth.RefreshToken

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("%w (%s): %v", ErrUnavailable, endpoint, err)
	}

	if resp.IsError() {
		return fmt.Errorf("NE API erro (%s): status %d: %s", endpoint, resp.StatusCode(), resp.String())
	}

	var envelope nedomain.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("erro ao decodificar resposta da NE API (%s): %w", endpoint, err)
	}

	if envelope.Result == nedomain.ResultError {
		return &nedomain.APIError{
			Endpoint: endpoint,
			Message:  envelope.Message,
			Code:     envelope.Code,
		}
	}

	if envelope.AccessToken != "" && envelope.AccessToken != auth.AccessToken {
		if err := c.TokenManager.StoreFromEnvelope(ctx, envelope); err != nil {
			logrus.WithError(err).Warn("ne-client: não foi possível salvar os tokens renovados")
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("erro ao decodificar dados da NE API (%s): %w", endpoint, err)
	}

	return nil
}
