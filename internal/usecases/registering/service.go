// Package registering trata a revisão dos candidatos a produto detectados na importação
package registering

import (
	"context"
	"errors"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/shopspring/decimal"
)

type Registrar interface {
	ListCandidates(ctx context.Context, status string) ([]*domain.NewProductCandidate, error)
	BulkRegister(ctx context.Context, req BulkRegisterRequest) (*BulkResult, error)
	BulkIgnore(ctx context.Context, productCodes []string) (*BulkResult, error)
}

type BulkRegisterRequest struct {
	ProductCodes      []string                `json:"productCodes"`
	SalesPriceExclTax decimal.Decimal         `json:"defaultSalesPriceExclTax"`
	CostExclTax       decimal.Decimal         `json:"defaultCostExclTax"`
	ProductType       domain.ProductType      `json:"productType"`
	ManagementStatus  domain.ManagementStatus `json:"managementStatus"`
}

type BulkResult struct {
	Count        int      `json:"count"`
	ProductCodes []string `json:"productCodes"`
}

type Service struct {
	transactor repository.Transactor
	candidates repository.CandidateRepository
}

func NewService(transactor repository.Transactor, candidates repository.CandidateRepository) *Service {
	return &Service{
		transactor: transactor,
		candidates: candidates,
	}
}

// ListCandidates filtra por status; vazio lista todos
func (s *Service) ListCandidates(ctx context.Context, status string) ([]*domain.NewProductCandidate, error) {
	var filter *domain.CandidateStatus
	if status != "" {
		candidateStatus := domain.CandidateStatus(status)
		switch candidateStatus {
		case domain.CandidateStatusPending, domain.CandidateStatusIgnored, domain.CandidateStatusRegistered:
			filter = &candidateStatus
		default:
			return nil, NewValidationError(ErrInvalidStatus, status)
		}
	}

	candidates, err := s.candidates.List(ctx, filter)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	return candidates, nil
}

// BulkRegister cria (ou atualiza) o produto de cada candidato pendente e marca o candidato como registrado.
// Tudo acontece em uma transação.
func (s *Service) BulkRegister(ctx context.Context, req BulkRegisterRequest) (*BulkResult, error) {
	if len(req.ProductCodes) == 0 {
		return nil, NewValidationError(ErrNoCandidates, "")
	}

	if req.SalesPriceExclTax.IsNegative() || req.CostExclTax.IsNegative() {
		return nil, NewValidationError(ErrNegativeAmount, "")
	}

	if req.ProductType == "" {
		req.ProductType = domain.ProductTypeOwn
	}
	if req.ProductType != domain.ProductTypeOwn && req.ProductType != domain.ProductTypePurchased {
		return nil, NewValidationError(ErrInvalidProductType, string(req.ProductType))
	}

	if req.ManagementStatus == "" {
		req.ManagementStatus = domain.ManagementStatusManaged
	}
	if req.ManagementStatus != domain.ManagementStatusManaged && req.ManagementStatus != domain.ManagementStatusUnmanaged {
		return nil, NewValidationError(ErrInvalidManagement, string(req.ManagementStatus))
	}

	result := &BulkResult{ProductCodes: make([]string, 0)}

	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		pending, err := pendingCandidates(ctx, repos.Candidates, req.ProductCodes)
		if err != nil {
			return err
		}

		for _, candidate := range pending {
			name := candidate.ProductName
			if name == "" {
				name = fmt.Sprintf("商品 %s", candidate.ProductCode)
			}

			created, err := repos.Products.Upsert(ctx, &domain.Product{
				ProductCode:       candidate.ProductCode,
				ProductName:       name,
				SalesPriceExclTax: req.SalesPriceExclTax,
				CostExclTax:       req.CostExclTax,
				ProductType:       req.ProductType,
				ManagementStatus:  req.ManagementStatus,
			})
			if err != nil {
				return err
			}

			if !created {
				log.ForContext(ctx).WithField("product_code", candidate.ProductCode).
					Info("register: produto já existia e foi atualizado")
			}

			result.ProductCodes = append(result.ProductCodes, candidate.ProductCode)
		}

		updated, err := repos.Candidates.UpdateStatus(ctx, result.ProductCodes, domain.CandidateStatusRegistered)
		if err != nil {
			return err
		}
		result.Count = int(updated)

		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}

	log.ForContext(ctx).WithField("count", result.Count).Info("register: candidatos registrados")

	return result, nil
}

// BulkIgnore marca como ignorados apenas os candidatos ainda pendentes
func (s *Service) BulkIgnore(ctx context.Context, productCodes []string) (*BulkResult, error) {
	if len(productCodes) == 0 {
		return nil, NewValidationError(ErrNoCandidates, "")
	}

	result := &BulkResult{ProductCodes: make([]string, 0)}

	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		pending, err := pendingCandidates(ctx, repos.Candidates, productCodes)
		if err != nil {
			return err
		}

		for _, candidate := range pending {
			result.ProductCodes = append(result.ProductCodes, candidate.ProductCode)
		}

		updated, err := repos.Candidates.UpdateStatus(ctx, result.ProductCodes, domain.CandidateStatusIgnored)
		if err != nil {
			return err
		}
		result.Count = int(updated)

		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}

	log.ForContext(ctx).WithField("count", result.Count).Info("register: candidatos ignorados")

	return result, nil
}

func pendingCandidates(ctx context.Context, candidates repository.CandidateRepository, codes []string) ([]*domain.NewProductCandidate, error) {
	found, err := candidates.GetByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	pending := make([]*domain.NewProductCandidate, 0, len(found))
	for _, candidate := range found {
		if candidate.Status == domain.CandidateStatusPending {
			pending = append(pending, candidate)
		}
	}

	if len(pending) == 0 {
		return nil, ErrNoPendingCandidates
	}

	return pending, nil
}

func wrapError(err error) error {
	if errors.Is(err, ErrNoPendingCandidates) {
		return NewValidationError(ErrNoPendingCandidates, "")
	}
	return NewPersistenceError(err)
}
