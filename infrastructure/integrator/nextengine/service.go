package nextengine

import (
	"context"
	"net/url"
	"strconv"

	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/neclient"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type NextEngineIntegrator interface {
	GetShops(ctx context.Context) ([]domain.NEShop, error)
	GetOrderRows(ctx context.Context, targetYm string, shopIDs []int) ([]nedomain.OrderRow, error)
	AuthURL(state string) string
	ExchangeToken(ctx context.Context, uid, state string) error
}

type Integrator struct {
	cfg    config.NextEngine
	Client neclient.Client
}

func New(cfg config.NextEngine, client neclient.Client) NextEngineIntegrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) GetShops(ctx context.Context) ([]domain.NEShop, error) {
	shops, err := s.Client.GetShops(ctx)
	if err != nil {
		logrus.WithError(err).Error("nextengine: falha ao buscar lojas")
		return nil, err
	}

	result := make([]domain.NEShop, 0, len(shops))
	for _, shop := range shops {
		id, err := strconv.Atoi(shop.ShopID)
		if err != nil {
			logrus.WithField("shop_id", shop.ShopID).Warn("nextengine: id de loja não numérico ignorado")
			continue
		}
		result = append(result, domain.NEShop{ID: id, Name: shop.ShopName})
	}

	return result, nil
}

// GetOrderRows busca as linhas expedidas no mês targetYm para as lojas informadas
func (s *Integrator) GetOrderRows(ctx context.Context, targetYm string, shopIDs []int) ([]nedomain.OrderRow, error) {
	first, last, err := utils.PeriodBounds(targetYm)
	if err != nil {
		return nil, err
	}

	rows, err := s.Client.SearchOrderRows(ctx, first, last, shopIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"target_ym": targetYm,
			"shop_ids":  shopIDs,
			"error":     err.Error(),
		}).Error("nextengine: falha ao buscar linhas de pedidos")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"target_ym": targetYm,
		"rows":      len(rows),
	}).Debug("nextengine: linhas de pedidos recebidas")

	return rows, nil
}

func (s *Integrator) AuthURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", s.cfg.ClientID)
	params.Set("redirect_uri", s.cfg.RedirectURI)
	params.Set("state", state)

	return s.cfg.AuthURL + "?" + params.Encode()
}

func (s *Integrator) ExchangeToken(ctx context.Context, uid, state string) error {
	return s.Client.ExchangeToken(ctx, uid, state)
}
