package ingesting

import (
	"context"
	"errors"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/utils"
)

func (s *Service) ListHistories(ctx context.Context, filters domain.ImportHistoryFilters) ([]*domain.ImportHistory, error) {
	if filters.TargetYm != "" && !utils.IsValidPeriod(filters.TargetYm) {
		return nil, NewValidationError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, filters.TargetYm)
	}

	histories, err := s.histories.List(ctx, filters)
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	return histories, nil
}

// DeleteHistory apaga o histórico e todos os registros de venda gerados por ele
func (s *Service) DeleteHistory(ctx context.Context, id int64) (*domain.ImportHistory, error) {
	var deleted *domain.ImportHistory

	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		history, err := repos.ImportHistories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if history == nil {
			return ErrHistoryNotFound
		}

		if err := repos.Locker.AcquireIngestionLock(ctx, history.SalesChannelID, history.TargetYm); err != nil {
			return err
		}

		removed, err := repos.SalesRecords.DeleteByImportHistory(ctx, id)
		if err != nil {
			return err
		}

		if err := repos.ImportHistories.Delete(ctx, id); err != nil {
			return err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"history_id": id,
			"records":    removed,
		}).Info("ingest: histórico de importação removido")

		deleted = history
		return nil
	})
	if err != nil {
		return nil, historyError(err, id)
	}

	return deleted, nil
}

// ChangeHistoryChannel move o histórico e seus registros para outro canal de venda.
// Históricos api-sync ficam presos ao canal, porque o external_order_id carrega o canal de origem.
func (s *Service) ChangeHistoryChannel(ctx context.Context, id int64, channelID int) (*domain.ImportHistory, error) {
	if channelID <= 0 {
		return nil, NewValidationError(ErrMissingChannel, apiErrors.ErrMissingRequiredData, "")
	}

	exists, err := s.categories.ChannelExists(ctx, channelID)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	if !exists {
		return nil, NewValidationError(ErrUnknownChannel, apiErrors.ErrInvalidRequest, fmt.Sprintf("canal %d", channelID))
	}

	var updated *domain.ImportHistory

	err = s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		history, err := repos.ImportHistories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if history == nil {
			return ErrHistoryNotFound
		}

		if history.ImportMode == domain.ImportModeAPISync {
			return ErrSyncedHistory
		}

		if history.SalesChannelID == channelID {
			updated = history
			return nil
		}

		// Locks sempre na ordem crescente do id do canal
		first, second := history.SalesChannelID, channelID
		if first > second {
			first, second = second, first
		}
		for _, lockChannel := range []int{first, second} {
			if err := repos.Locker.AcquireIngestionLock(ctx, lockChannel, history.TargetYm); err != nil {
				return err
			}
		}

		if err := repos.ImportHistories.UpdateChannel(ctx, id, channelID); err != nil {
			return err
		}

		if _, err := repos.SalesRecords.UpdateChannelByImportHistory(ctx, id, channelID); err != nil {
			return err
		}

		history.SalesChannelID = channelID
		updated = history
		return nil
	})
	if err != nil {
		return nil, historyError(err, id)
	}

	return updated, nil
}

func historyError(err error, id int64) error {
	if errors.Is(err, ErrHistoryNotFound) {
		return NewValidationError(ErrHistoryNotFound, apiErrors.ErrResourceNotFound, fmt.Sprintf("id %d", id))
	}
	if errors.Is(err, ErrSyncedHistory) {
		return NewValidationError(ErrSyncedHistory, apiErrors.ErrInvalidRequest, fmt.Sprintf("id %d", id))
	}
	return NewPersistenceError(err)
}
