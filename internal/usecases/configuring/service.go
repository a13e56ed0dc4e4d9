// Package configuring mantém as configurações que alimentam a importação de vendas
package configuring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine"
	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/utils"
)

type Configurator interface {
	ListKeywords(ctx context.Context) ([]*domain.ExclusionKeyword, error)
	CreateKeyword(ctx context.Context, keyword string, matchType domain.MatchType) (*domain.ExclusionKeyword, error)
	DeleteKeyword(ctx context.Context, id int) error
	ListTaxRates(ctx context.Context) ([]*domain.TaxRate, error)
	ListChannels(ctx context.Context) ([]*domain.SalesChannel, error)
	ListShops(ctx context.Context) ([]domain.NEShop, error)
	ListMappings(ctx context.Context) ([]*domain.NEShopMapping, error)
	ReplaceMappings(ctx context.Context, channelID int, shopIDs []int) ([]*domain.NEShopMapping, error)
	AuthURL(ctx context.Context) (string, error)
	CompleteAuth(ctx context.Context, uid, state string) error
	AuthStatus(ctx context.Context) (*AuthStatus, error)
}

// AuthStatus considera a integração ativa enquanto o refresh token for válido
type AuthStatus struct {
	Connected   bool       `json:"connected"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	RefreshesAt *time.Time `json:"refreshesAt,omitempty"`
}

type Service struct {
	keywords     repository.ExclusionKeywordRepository
	taxRates     repository.TaxRateRepository
	categories   repository.CategoryRepository
	shopMappings repository.ShopMappingRepository
	neAuth       repository.NEAuthRepository
	neIntegrator nextengine.NextEngineIntegrator
	states       *stateStore
	newState     func() (string, error)
	now          func() time.Time
}

func NewService(
	keywords repository.ExclusionKeywordRepository,
	taxRates repository.TaxRateRepository,
	categories repository.CategoryRepository,
	shopMappings repository.ShopMappingRepository,
	neAuth repository.NEAuthRepository,
	neIntegrator nextengine.NextEngineIntegrator,
) *Service {
	return &Service{
		keywords:     keywords,
		taxRates:     taxRates,
		categories:   categories,
		shopMappings: shopMappings,
		neAuth:       neAuth,
		neIntegrator: neIntegrator,
		states:       newStateStore(),
		newState:     utils.GenerateState,
		now:          time.Now,
	}
}

func (s *Service) ListKeywords(ctx context.Context) ([]*domain.ExclusionKeyword, error) {
	keywords, err := s.keywords.List(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	return keywords, nil
}

// CreateKeyword grava a palavra exatamente como recebida, sem trocar maiúsculas
func (s *Service) CreateKeyword(ctx context.Context, keyword string, matchType domain.MatchType) (*domain.ExclusionKeyword, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, NewValidationError(ErrEmptyKeyword, "")
	}

	if matchType == "" {
		matchType = domain.MatchTypeContains
	}
	if matchType != domain.MatchTypeStartsWith && matchType != domain.MatchTypeContains {
		return nil, NewValidationError(ErrInvalidMatchType, string(matchType))
	}

	created, err := s.keywords.Create(ctx, &domain.ExclusionKeyword{
		Keyword:   keyword,
		MatchType: matchType,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicated) {
			return nil, newError(ErrKeywordExists, apiErrors.ErrResourceConflict, keyword)
		}
		return nil, NewPersistenceError(err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"keyword":    created.Keyword,
		"match_type": created.MatchType,
	}).Info("config: palavra de exclusão criada")

	return created, nil
}

func (s *Service) DeleteKeyword(ctx context.Context, id int) error {
	deleted, err := s.keywords.Delete(ctx, id)
	if err != nil {
		return NewPersistenceError(err)
	}

	if !deleted {
		return newError(ErrKeywordNotFound, apiErrors.ErrResourceNotFound, fmt.Sprintf("id %d", id))
	}

	return nil
}

func (s *Service) ListTaxRates(ctx context.Context) ([]*domain.TaxRate, error) {
	rates, err := s.taxRates.List(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	return rates, nil
}

func (s *Service) ListChannels(ctx context.Context) ([]*domain.SalesChannel, error) {
	channels, err := s.categories.ListChannels(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	return channels, nil
}

func (s *Service) ListShops(ctx context.Context) ([]domain.NEShop, error) {
	shops, err := s.neIntegrator.GetShops(ctx)
	if err != nil {
		return nil, NewIntegrationError(err)
	}
	return shops, nil
}

func (s *Service) ListMappings(ctx context.Context) ([]*domain.NEShopMapping, error) {
	mappings, err := s.shopMappings.ListAll(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	return mappings, nil
}

// ReplaceMappings troca todas as lojas vinculadas ao canal. Uma loja pertence a um único canal,
// então vinculá-la aqui a remove do canal anterior.
func (s *Service) ReplaceMappings(ctx context.Context, channelID int, shopIDs []int) ([]*domain.NEShopMapping, error) {
	if channelID <= 0 {
		return nil, NewValidationError(ErrInvalidChannel, "")
	}

	exists, err := s.categories.ChannelExists(ctx, channelID)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	if !exists {
		return nil, NewValidationError(ErrInvalidChannel, fmt.Sprintf("canal %d", channelID))
	}

	unique := make([]int, 0, len(shopIDs))
	seen := make(map[int]bool, len(shopIDs))
	for _, shopID := range shopIDs {
		if shopID <= 0 {
			return nil, NewValidationError(ErrInvalidShopID, fmt.Sprintf("%d", shopID))
		}
		if !seen[shopID] {
			seen[shopID] = true
			unique = append(unique, shopID)
		}
	}

	if err := s.shopMappings.ReplaceForChannel(ctx, channelID, unique); err != nil {
		return nil, NewPersistenceError(err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"channel_id": channelID,
		"shop_ids":   unique,
	}).Info("config: lojas vinculadas ao canal atualizadas")

	mappings, err := s.shopMappings.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	return mappings, nil
}

func (s *Service) AuthURL(ctx context.Context) (string, error) {
	state, err := s.newState()
	if err != nil {
		return "", newError(fmt.Errorf("erro ao gerar state: %w", err), apiErrors.ErrInternalServer, "")
	}

	s.states.add(state)

	return s.neIntegrator.AuthURL(state), nil
}

// CompleteAuth recebe o retorno do login na plataforma e grava os tokens
func (s *Service) CompleteAuth(ctx context.Context, uid, state string) error {
	if uid == "" || state == "" {
		return NewValidationError(ErrMissingAuthCode, "")
	}

	if !s.states.consume(state) {
		log.ForContext(ctx).Warn("config: callback do OAuth com state desconhecido")
		return newError(ErrInvalidState, apiErrors.ErrInvalidToken, "")
	}

	if err := s.neIntegrator.ExchangeToken(ctx, uid, state); err != nil {
		return NewIntegrationError(err)
	}

	log.ForContext(ctx).Info("config: integração com a plataforma de pedidos vinculada")

	return nil
}

func (s *Service) AuthStatus(ctx context.Context) (*AuthStatus, error) {
	auth, err := s.neAuth.Get(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	if auth == nil {
		return &AuthStatus{Connected: false}, nil
	}

	return &AuthStatus{
		Connected:   auth.RefreshesAt.After(s.now()),
		ExpiresAt:   &auth.ExpiresAt,
		RefreshesAt: &auth.RefreshesAt,
	}, nil
}
