// Package ingesting transforma linhas de venda brutas no livro de vendas mensal por produto
package ingesting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine"
	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
)

type Ingester interface {
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)
	SyncFromNextEngine(ctx context.Context, req SyncRequest) (*IngestResult, error)
	ListHistories(ctx context.Context, filters domain.ImportHistoryFilters) ([]*domain.ImportHistory, error)
	DeleteHistory(ctx context.Context, id int64) (*domain.ImportHistory, error)
	ChangeHistoryChannel(ctx context.Context, id int64, channelID int) (*domain.ImportHistory, error)
}

type IngestRequest struct {
	TargetYm              string
	SalesChannelID        int
	Mode                  domain.ImportMode
	Source                domain.DataSource
	Rows                  []domain.LineItem
	Comment               string
	ActingUserID          int
	SkipUnregisteredASINs bool
}

type SyncRequest struct {
	TargetYm       string
	SalesChannelID int
	ActingUserID   int
}

type IngestResult struct {
	ImportHistoryID       int64              `json:"importHistoryId,omitempty"`
	InsertedCount         int                `json:"insertedCount"`
	NewCandidateCount     int                `json:"newCandidateCount"`
	SkippedUnmanagedCount int                `json:"skippedUnmanagedCount"`
	ExcludedCount         int                `json:"excludedCount"`
	CancelledCount        int                `json:"cancelledCount"`
	UnknownCodes          []string           `json:"unknownCodes,omitempty"`
	UnregisteredASINs     []UnregisteredASIN `json:"unregisteredAsins,omitempty"`
	Message               string             `json:"message"`
}

type Service struct {
	transactor   repository.Transactor
	products     repository.ProductRepository
	keywords     repository.ExclusionKeywordRepository
	shopMappings repository.ShopMappingRepository
	categories   repository.CategoryRepository
	histories    repository.ImportHistoryRepository
	taxResolver  *TaxResolver
	neIntegrator nextengine.NextEngineIntegrator
	newBatchID   func() (string, error)
}

func NewService(
	transactor repository.Transactor,
	products repository.ProductRepository,
	keywords repository.ExclusionKeywordRepository,
	shopMappings repository.ShopMappingRepository,
	categories repository.CategoryRepository,
	histories repository.ImportHistoryRepository,
	taxResolver *TaxResolver,
	neIntegrator nextengine.NextEngineIntegrator,
) *Service {
	return &Service{
		transactor:   transactor,
		products:     products,
		keywords:     keywords,
		shopMappings: shopMappings,
		categories:   categories,
		histories:    histories,
		taxResolver:  taxResolver,
		neIntegrator: neIntegrator,
		newBatchID:   utils.GenerateBatchID,
	}
}

// Ingest executa uma importação completa. Pré-limpeza, resolução de produtos e gravação
// acontecem em uma única transação, serializada por canal e período.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"target_ym":  req.TargetYm,
		"channel_id": req.SalesChannelID,
		"mode":       req.Mode,
		"rows":       len(req.Rows),
	})

	salesDate, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Source == "" {
		req.Source = domain.DataSourceNextEngineCSV
	}

	result := &IngestResult{}

	rows, unregistered, err := s.resolveASINs(ctx, req.Rows)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	if len(unregistered) > 0 {
		if !req.SkipUnregisteredASINs {
			logger.Warnf("ingest: %d ASIN(s) sem produto cadastrado", len(unregistered))
			return nil, NewUnregisteredASINError(unregistered)
		}
		result.UnregisteredASINs = unregistered
	}

	keywords, err := s.keywords.List(ctx)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	aggregation, stats := Prepare(rows, keywords)
	result.CancelledCount = stats.Cancelled
	result.ExcludedCount = stats.Excluded

	multiplier, err := s.taxResolver.ResolveMultiplier(ctx, req.TargetYm)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	var batchID string
	if req.Mode != domain.ImportModeAPISync {
		batchID, err = s.newBatchID()
		if err != nil {
			return nil, NewPersistenceError(fmt.Errorf("erro ao gerar id do lote: %w", err))
		}
	}

	if req.Mode == domain.ImportModeAppend {
		logger.Debug("ingest: modo append não verifica duplicidade com importações anteriores")
	}

	err = s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if err := repos.Locker.AcquireIngestionLock(ctx, req.SalesChannelID, req.TargetYm); err != nil {
			return err
		}

		if err := preClean(ctx, repos, req); err != nil {
			return err
		}

		history := &domain.ImportHistory{
			ImportType:       domain.ImportTypeSales,
			TargetYm:         req.TargetYm,
			ImportMode:       req.Mode,
			DataSource:       req.Source,
			Comment:          req.Comment,
			RecordCount:      0,
			SalesChannelID:   req.SalesChannelID,
			ImportedByUserID: req.ActingUserID,
		}

		historyID, err := repos.ImportHistories.Create(ctx, history)
		if err != nil {
			return err
		}
		result.ImportHistoryID = historyID

		products, err := repos.Products.GetByCodes(ctx, aggregation.Codes())
		if err != nil {
			return err
		}

		records := make([]*domain.SalesRecord, 0, aggregation.Len())
		for _, entry := range aggregation.Entries() {
			product, found := products[entry.ProductCode]

			switch {
			case !found:
				result.UnknownCodes = append(result.UnknownCodes, entry.ProductCode)

				inserted, err := repos.Candidates.InsertIfAbsent(ctx, &domain.NewProductCandidate{
					ProductCode: entry.ProductCode,
					SampleSKU:   entry.SampleSKU,
					ProductName: entry.SampleProductName,
				})
				if err != nil {
					return err
				}
				if inserted {
					result.NewCandidateCount++
					logger.WithField("product_code", entry.ProductCode).Info("ingest: novo candidato de produto")
				}

			case !product.IsManaged():
				result.SkippedUnmanagedCount++
				logger.WithField("product_code", entry.ProductCode).Debug("ingest: produto fora de gestão ignorado")

			case entry.OnlyEmpty:
				logger.WithField("product_code", entry.ProductCode).Debug("ingest: produto só com linhas zeradas")

			default:
				record := buildRecord(entry, product, multiplier, req, salesDate)
				record.ImportHistoryID = historyID
				record.ExternalOrderID = externalOrderID(req, batchID, entry.ProductCode, len(records)+1)
				records = append(records, record)
			}
		}

		inserted, err := repos.SalesRecords.InsertBatch(ctx, records)
		if err != nil {
			return err
		}
		result.InsertedCount = int(inserted)

		return repos.ImportHistories.UpdateRecordCount(ctx, historyID, result.InsertedCount)
	})
	if err != nil {
		logger.WithError(err).Error("ingest: transação desfeita")
		return nil, NewPersistenceError(err)
	}

	result.Message = resultMessage(result)

	logger.WithFields(log.Fields{
		"inserted":          result.InsertedCount,
		"new_candidates":    result.NewCandidateCount,
		"skipped_unmanaged": result.SkippedUnmanagedCount,
		"excluded":          result.ExcludedCount,
		"cancelled":         result.CancelledCount,
	}).Info("ingest: importação concluída")

	return result, nil
}

// SyncFromNextEngine busca os pedidos do mês nas lojas vinculadas ao canal e reimporta em modo api-sync
func (s *Service) SyncFromNextEngine(ctx context.Context, req SyncRequest) (*IngestResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"target_ym":  req.TargetYm,
		"channel_id": req.SalesChannelID,
	})

	if !utils.IsValidPeriod(req.TargetYm) {
		return nil, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, req.TargetYm)
	}

	if req.SalesChannelID <= 0 {
		return nil, NewValidationError(ErrMissingChannel, apiErrors.ErrMissingRequiredData, "")
	}

	mappings, err := s.shopMappings.ListByChannel(ctx, req.SalesChannelID)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	if len(mappings) == 0 {
		return nil, NewUnresolvedMappingError(req.SalesChannelID)
	}

	shopIDs := make([]int, 0, len(mappings))
	for _, mapping := range mappings {
		shopIDs = append(shopIDs, mapping.NEShopID)
	}

	shops, err := s.neIntegrator.GetShops(ctx)
	if err != nil {
		return nil, NewIntegrationError(err)
	}

	orderRows, err := s.neIntegrator.GetOrderRows(ctx, req.TargetYm, shopIDs)
	if err != nil {
		return nil, NewIntegrationError(err)
	}

	if len(orderRows) == 0 {
		logger.Info("ne-sync: nenhum pedido no período, livro mantido")
		return &IngestResult{Message: "指定された期間・店舗の受注データが見つかりませんでした。"}, nil
	}

	items, err := FromNextEngineRows(orderRows)
	if err != nil {
		return nil, NewIntegrationError(err)
	}

	return s.Ingest(ctx, IngestRequest{
		TargetYm:       req.TargetYm,
		SalesChannelID: req.SalesChannelID,
		Mode:           domain.ImportModeAPISync,
		Source:         domain.DataSourceAPI,
		Rows:           items,
		Comment:        fmt.Sprintf("ネクストエンジン自動同期 (%s)", shopLabels(shopIDs, shops)),
		ActingUserID:   req.ActingUserID,
	})
}

// validate confere a requisição e devolve a data de venda do período
func (s *Service) validate(ctx context.Context, req IngestRequest) (time.Time, error) {
	salesDate, err := utils.ParsePeriod(req.TargetYm)
	if err != nil {
		return time.Time{}, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, req.TargetYm)
	}

	if req.SalesChannelID <= 0 {
		return time.Time{}, NewValidationError(ErrMissingChannel, apiErrors.ErrMissingRequiredData, "")
	}

	if !req.Mode.IsValid() {
		return time.Time{}, NewValidationError(ErrInvalidMode, apiErrors.ErrInvalidRequest, string(req.Mode))
	}

	if len(req.Rows) == 0 {
		return time.Time{}, NewValidationError(ErrMissingRows, apiErrors.ErrMissingRequiredData, "")
	}

	if req.ActingUserID <= 0 {
		return time.Time{}, NewValidationError(ErrMissingUser, apiErrors.ErrMissingRequiredData, "")
	}

	exists, err := s.categories.ChannelExists(ctx, req.SalesChannelID)
	if err != nil {
		return time.Time{}, NewPersistenceError(err)
	}

	if !exists {
		return time.Time{}, NewValidationError(ErrUnknownChannel, apiErrors.ErrInvalidRequest, fmt.Sprintf("canal %d", req.SalesChannelID))
	}

	return salesDate, nil
}

// resolveASINs troca o ASIN das linhas da Amazon pelo código do produto cadastrado
func (s *Service) resolveASINs(ctx context.Context, rows []domain.LineItem) ([]domain.LineItem, []UnregisteredASIN, error) {
	asins := make([]string, 0)
	for _, row := range rows {
		if row.ASIN != "" && row.SKU == "" {
			asins = append(asins, row.ASIN)
		}
	}

	if len(asins) == 0 {
		return rows, nil, nil
	}

	products, err := s.products.GetByASINs(ctx, asins)
	if err != nil {
		return nil, nil, err
	}

	resolved := make([]domain.LineItem, 0, len(rows))
	unregistered := make([]UnregisteredASIN, 0)
	seen := make(map[string]bool)

	for _, row := range rows {
		if row.ASIN == "" || row.SKU != "" {
			resolved = append(resolved, row)
			continue
		}

		product, ok := products[row.ASIN]
		if !ok {
			if !seen[row.ASIN] {
				seen[row.ASIN] = true
				unregistered = append(unregistered, UnregisteredASIN{ASIN: row.ASIN, Title: row.ProductName})
			}
			continue
		}

		row.SKU = product.ProductCode
		resolved = append(resolved, row)
	}

	return resolved, unregistered, nil
}

func preClean(ctx context.Context, repos repository.Repositories, req IngestRequest) error {
	switch req.Mode {
	case domain.ImportModeOverwrite:
		if _, err := repos.SalesRecords.DeleteByPeriodAndChannel(ctx, req.TargetYm, req.SalesChannelID); err != nil {
			return err
		}
		_, err := repos.ImportHistories.DeleteByTarget(ctx, req.TargetYm, req.SalesChannelID, nil)
		return err

	case domain.ImportModeAPISync:
		prefix := SyncOrderPrefix(req.SalesChannelID, req.TargetYm)
		if _, err := repos.SalesRecords.DeleteByExternalOrderPrefix(ctx, req.TargetYm, req.SalesChannelID, prefix); err != nil {
			return err
		}
		_, err := repos.ImportHistories.DeleteByTarget(ctx, req.TargetYm, req.SalesChannelID, []domain.ImportMode{domain.ImportModeAPISync})
		return err
	}

	return nil
}

func buildRecord(entry *Accumulator, product *domain.Product, multiplier decimal.Decimal, req IngestRequest, salesDate time.Time) *domain.SalesRecord {
	sales := ToExclTax(entry.GrossAmountInclTax, multiplier)
	cost := product.CostExclTax.Mul(decimal.NewFromInt(entry.Quantity))

	record := domain.NewSalesRecord(entry.ProductCode, req.TargetYm, salesDate, entry.Quantity, sales, cost)
	record.SalesChannelID = req.SalesChannelID
	record.CreatedByUserID = req.ActingUserID

	return record
}

// SyncOrderPrefix é o prefixo dos registros que pertencem à sincronização do canal e período
func SyncOrderPrefix(channelID int, periodYm string) string {
	return fmt.Sprintf("NE-%d-%s-", channelID, periodYm)
}

func externalOrderID(req IngestRequest, batchID, productCode string, seq int) string {
	if req.Mode == domain.ImportModeAPISync {
		return SyncOrderPrefix(req.SalesChannelID, req.TargetYm) + productCode
	}
	return fmt.Sprintf("M-%s-%s-%d", req.TargetYm, batchID, seq)
}

func shopLabels(shopIDs []int, shops []domain.NEShop) string {
	names := make(map[int]string, len(shops))
	for _, shop := range shops {
		names[shop.ID] = shop.Name
	}

	labels := make([]string, 0, len(shopIDs))
	for _, id := range shopIDs {
		if name, ok := names[id]; ok {
			labels = append(labels, fmt.Sprintf("%s(ID:%d)", name, id))
		} else {
			labels = append(labels, fmt.Sprintf("店舗ID:%d", id))
		}
	}

	return strings.Join(labels, ", ")
}

func resultMessage(result *IngestResult) string {
	if result.InsertedCount == 0 && len(result.UnknownCodes) > 0 {
		return fmt.Sprintf("マスタ未登録の商品が%d件検出されました。「新商品候補一覧」から登録を行ってください。", len(result.UnknownCodes))
	}
	return fmt.Sprintf("%d件のデータを取り込みました", result.InsertedCount)
}
