package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_DeleteHistory(t *testing.T) {
	t.Run("Remove registros e histórico", func(t *testing.T) {
		f := newServiceFixture(t)
		history := &domain.ImportHistory{ID: 10, TargetYm: "2024-05", SalesChannelID: 3}

		f.txHistories.EXPECT().GetByID(gomock.Any(), int64(10)).Return(history, nil)
		f.locker.EXPECT().AcquireIngestionLock(gomock.Any(), 3, "2024-05").Return(nil)
		f.salesRecords.EXPECT().DeleteByImportHistory(gomock.Any(), int64(10)).Return(int64(12), nil)
		f.txHistories.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)

		deleted, err := f.service.DeleteHistory(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, history, deleted)
		assert.Equal(t, 1, f.transactor.calls)
	})

	t.Run("Histórico inexistente", func(t *testing.T) {
		f := newServiceFixture(t)
		f.txHistories.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := f.service.DeleteHistory(context.Background(), 99)

		var ingestErr *IngestError
		require.ErrorAs(t, err, &ingestErr)
		assert.Equal(t, apiErrors.ErrResourceNotFound, ingestErr.Code)
		assert.ErrorIs(t, err, ErrHistoryNotFound)
	})

	t.Run("Falha ao apagar registros desfaz tudo", func(t *testing.T) {
		f := newServiceFixture(t)
		f.txHistories.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&domain.ImportHistory{ID: 10, TargetYm: "2024-05", SalesChannelID: 3}, nil)
		f.locker.EXPECT().AcquireIngestionLock(gomock.Any(), 3, "2024-05").Return(nil)
		f.salesRecords.EXPECT().DeleteByImportHistory(gomock.Any(), int64(10)).Return(int64(0), errors.New("falha"))

		_, err := f.service.DeleteHistory(context.Background(), 10)

		assert.ErrorIs(t, err, ErrPersistence)
	})
}

func TestService_ChangeHistoryChannel(t *testing.T) {
	t.Run("Move histórico e registros", func(t *testing.T) {
		f := newServiceFixture(t)
		f.categories.EXPECT().ChannelExists(gomock.Any(), 4).Return(true, nil)
		f.txHistories.EXPECT().
			GetByID(gomock.Any(), int64(10)).
			Return(&domain.ImportHistory{ID: 10, TargetYm: "2024-05", ImportMode: domain.ImportModeOverwrite, SalesChannelID: 3}, nil)
		gomock.InOrder(
			f.locker.EXPECT().AcquireIngestionLock(gomock.Any(), 3, "2024-05").Return(nil),
			f.locker.EXPECT().AcquireIngestionLock(gomock.Any(), 4, "2024-05").Return(nil),
		)
		f.txHistories.EXPECT().UpdateChannel(gomock.Any(), int64(10), 4).Return(nil)
		f.salesRecords.EXPECT().UpdateChannelByImportHistory(gomock.Any(), int64(10), 4).Return(int64(5), nil)

		updated, err := f.service.ChangeHistoryChannel(context.Background(), 10, 4)

		require.NoError(t, err)
		assert.Equal(t, 4, updated.SalesChannelID)
	})

	t.Run("Locks seguem a ordem do id do canal", func(t *testing.T) {
		f := newServiceFixture(t)
		f.categories.EXPECT().ChannelExists(gomock.Any(), 2).Return(true, nil)
		f.txHistories.EXPECT().
			GetByID(gomock.Any(), int64(11)).
			Return(&domain.ImportHistory{ID: 11, TargetYm: "2024-05", ImportMode: domain.ImportModeAppend, SalesChannelID: 5}, nil)
		gomock.InOrder(
			f.locker.EXPECT().AcquireIngestionLock(gomock.Any(), 2, "2024-05").Return(nil),
			f.locker.EXPECT().AcquireIngestionLock(gomock.Any(), 5, "2024-05").Return(nil),
		)
		f.txHistories.EXPECT().UpdateChannel(gomock.Any(), int64(11), 2).Return(nil)
		f.salesRecords.EXPECT().UpdateChannelByImportHistory(gomock.Any(), int64(11), 2).Return(int64(1), nil)

		updated, err := f.service.ChangeHistoryChannel(context.Background(), 11, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, updated.SalesChannelID)
	})

	t.Run("Histórico api-sync não muda de canal", func(t *testing.T) {
		f := newServiceFixture(t)
		f.categories.EXPECT().ChannelExists(gomock.Any(), 4).Return(true, nil)
		f.txHistories.EXPECT().
			GetByID(gomock.Any(), int64(10)).
			Return(&domain.ImportHistory{ID: 10, TargetYm: "2024-05", ImportMode: domain.ImportModeAPISync, SalesChannelID: 3}, nil)

		updated, err := f.service.ChangeHistoryChannel(context.Background(), 10, 4)

		assert.Nil(t, updated)
		var ingestErr *IngestError
		require.ErrorAs(t, err, &ingestErr)
		assert.Equal(t, apiErrors.ErrInvalidRequest, ingestErr.Code)
		assert.ErrorIs(t, err, ErrSyncedHistory)
	})

	t.Run("Mesmo canal não altera nada", func(t *testing.T) {
		f := newServiceFixture(t)
		history := &domain.ImportHistory{ID: 12, TargetYm: "2024-05", ImportMode: domain.ImportModeAppend, SalesChannelID: 3}
		f.categories.EXPECT().ChannelExists(gomock.Any(), 3).Return(true, nil)
		f.txHistories.EXPECT().GetByID(gomock.Any(), int64(12)).Return(history, nil)

		updated, err := f.service.ChangeHistoryChannel(context.Background(), 12, 3)

		require.NoError(t, err)
		assert.Equal(t, history, updated)
	})

	t.Run("Canal inexistente não abre transação", func(t *testing.T) {
		f := newServiceFixture(t)
		f.categories.EXPECT().ChannelExists(gomock.Any(), 42).Return(false, nil)

		_, err := f.service.ChangeHistoryChannel(context.Background(), 10, 42)

		assert.ErrorIs(t, err, ErrUnknownChannel)
		assert.Equal(t, 0, f.transactor.calls)
	})
}

func TestService_ListHistories(t *testing.T) {
	f := newServiceFixture(t)
	filters := domain.ImportHistoryFilters{TargetYm: "2024-05"}

	f.histories.EXPECT().List(gomock.Any(), filters).Return([]*domain.ImportHistory{{ID: 1}}, nil)

	histories, err := f.service.ListHistories(context.Background(), filters)

	require.NoError(t, err)
	assert.Len(t, histories, 1)

	_, err = f.service.ListHistories(context.Background(), domain.ImportHistoryFilters{TargetYm: "maio"})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
