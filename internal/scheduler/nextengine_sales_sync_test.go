package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rinori/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeIngester registra as chamadas de api-sync; as demais operações não são usadas pelo agendador
type fakeIngester struct {
	ingesting.Ingester

	mutex    sync.Mutex
	requests []ingesting.SyncRequest
	failFor  map[int]error
}

func (f *fakeIngester) SyncFromNextEngine(_ context.Context, req ingesting.SyncRequest) (*ingesting.IngestResult, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.requests = append(f.requests, req)
	if err, ok := f.failFor[req.SalesChannelID]; ok {
		return nil, err
	}

	return &ingesting.IngestResult{InsertedCount: 10 * req.SalesChannelID}, nil
}

func newSyncService(t *testing.T, ingester ingesting.Ingester, day int) (*NextEngineSalesSyncService, *mocks.MockShopMappingRepository) {
	ctrl := gomock.NewController(t)
	shopMappings := mocks.NewMockShopMappingRepository(ctrl)

	cfg := &config.Config{
		NextEngineSync: config.NextEngineSync{
			CronSchedule:      "30 2 * * *",
			Enabled:           true,
			MaxConcurrentJobs: 2,
			PreviousMonthDays: 5,
			SystemUserID:      1,
		},
	}

	service := NewNextEngineSalesSyncService(shopMappings, ingester, cfg)
	service.now = func() time.Time { return time.Date(2024, 6, day, 2, 30, 0, 0, time.UTC) }

	return service, shopMappings
}

func TestNextEngineSalesSyncService_periodsToSync(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want []string
	}{
		{name: "início do mês inclui o mês anterior", day: 3, want: []string{"2024-05", "2024-06"}},
		{name: "último dia da janela", day: 5, want: []string{"2024-05", "2024-06"}},
		{name: "meio do mês só o corrente", day: 15, want: []string{"2024-06"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newSyncService(t, &fakeIngester{}, tt.day)
			assert.Equal(t, tt.want, service.periodsToSync())
		})
	}
}

func TestNextEngineSalesSyncService_syncAllChannels(t *testing.T) {
	ingester := &fakeIngester{failFor: map[int]error{3: errors.New("sem lojas")}}
	service, shopMappings := newSyncService(t, ingester, 2)

	shopMappings.EXPECT().ListAll(gomock.Any()).Return([]*domain.NEShopMapping{
		{NEShopID: 10, ChannelID: 3},
		{NEShopID: 11, ChannelID: 1},
		{NEShopID: 12, ChannelID: 3},
	}, nil)

	results := service.syncAllChannels(context.Background())
	require.Len(t, results, 4)

	// um canal por vez no resultado, na ordem dos ids
	assert.Equal(t, 1, results[0].SalesChannelID)
	assert.Equal(t, "2024-05", results[0].TargetYm)
	assert.Equal(t, 10, results[0].InsertedCount)
	assert.Equal(t, "2024-06", results[1].TargetYm)
	assert.Equal(t, 3, results[2].SalesChannelID)
	assert.Equal(t, "sem lojas", results[2].Error)

	assert.Len(t, ingester.requests, 4)
	for _, req := range ingester.requests {
		assert.Equal(t, 1, req.ActingUserID)
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Len(t, status["last_results"], 4)
}

func TestNextEngineSalesSyncService_semCanais(t *testing.T) {
	ingester := &fakeIngester{}
	service, shopMappings := newSyncService(t, ingester, 20)

	shopMappings.EXPECT().ListAll(gomock.Any()).Return([]*domain.NEShopMapping{}, nil)

	results := service.syncAllChannels(context.Background())
	assert.Empty(t, results)
	assert.Empty(t, ingester.requests)
}

func TestNextEngineSalesSyncService_emAndamento(t *testing.T) {
	service, _ := newSyncService(t, &fakeIngester{}, 20)
	service.syncRunning = true

	assert.Nil(t, service.syncAllChannels(context.Background()))
	assert.False(t, service.TriggerManualSync(context.Background()))
}
