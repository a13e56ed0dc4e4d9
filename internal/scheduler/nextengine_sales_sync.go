package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/usecases/ingesting"
	"github.com/sirupsen/logrus"
)

// NextEngineSalesSyncConfig representa a configuração do agendador de vendas da plataforma de pedidos
type NextEngineSalesSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	PreviousMonthDays int
	SystemUserID      int
	SyncEnabled       bool
}

// ChannelSyncResult guarda o resultado de um canal em um período na última execução
type ChannelSyncResult struct {
	SalesChannelID int       `json:"sales_channel_id"`
	TargetYm       string    `json:"target_ym"`
	InsertedCount  int       `json:"inserted_count"`
	Error          string    `json:"error,omitempty"`
	FinishedAt     time.Time `json:"finished_at"`
}

// NextEngineSalesSyncService agenda a importação automática (api-sync) de todos os canais vinculados a lojas
type NextEngineSalesSyncService struct {
	scheduler           *gocron.Scheduler
	config              NextEngineSalesSyncConfig
	shopMappings        repository.ShopMappingRepository
	ingester            ingesting.Ingester
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         []ChannelSyncResult
	now                 func() time.Time
}

func NewNextEngineSalesSyncService(
	shopMappings repository.ShopMappingRepository,
	ingester ingesting.Ingester,
	appConfig *config.Config,
) *NextEngineSalesSyncService {
	syncConfig := NextEngineSalesSyncConfig{
		CronSchedule:      appConfig.NextEngineSync.CronSchedule,
		MaxConcurrentJobs: appConfig.NextEngineSync.MaxConcurrentJobs,
		PreviousMonthDays: appConfig.NextEngineSync.PreviousMonthDays,
		SystemUserID:      appConfig.NextEngineSync.SystemUserID,
		SyncEnabled:       appConfig.NextEngineSync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"previous_month_days": syncConfig.PreviousMonthDays,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de vendas da plataforma de pedidos carregada")

	return &NextEngineSalesSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		shopMappings: shopMappings,
		ingester:     ingester,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *NextEngineSalesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vendas da plataforma de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllChannels(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false se já houver uma em andamento.
func (s *NextEngineSalesSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de vendas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de vendas")
	go s.syncAllChannels(context.WithoutCancel(ctx))

	return true
}

// syncAllChannels importa o mês corrente de cada canal vinculado; nos primeiros dias do mês
// também reimporta o mês anterior, que ainda recebe pedidos atrasados
func (s *NextEngineSalesSyncService) syncAllChannels(ctx context.Context) []ChannelSyncResult {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	channelIDs, err := s.mappedChannels(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar canais vinculados para sincronização de vendas")
		return nil
	}

	if len(channelIDs) == 0 {
		logrus.Info("Nenhum canal vinculado a lojas, nada a sincronizar")
		return nil
	}

	periods := s.periodsToSync()
	logrus.WithFields(logrus.Fields{
		"channels": len(channelIDs),
		"periods":  periods,
	}).Info("Iniciando sincronização de vendas")

	results := s.processChannels(ctx, channelIDs, periods)

	s.syncMutex.Lock()
	s.lastResults = results
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"channels": len(channelIDs),
		"periods":  len(periods),
	}).Info("Sincronização de vendas concluída")

	return results
}

func (s *NextEngineSalesSyncService) mappedChannels(ctx context.Context) ([]int, error) {
	mappings, err := s.shopMappings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	channelIDs := make([]int, 0)
	for _, mapping := range mappings {
		if !seen[mapping.ChannelID] {
			seen[mapping.ChannelID] = true
			channelIDs = append(channelIDs, mapping.ChannelID)
		}
	}
	sort.Ints(channelIDs)

	return channelIDs, nil
}

func (s *NextEngineSalesSyncService) periodsToSync() []string {
	now := s.now()
	current := now.Format("2006-01")

	if now.Day() <= s.config.PreviousMonthDays {
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		previous := firstOfMonth.AddDate(0, -1, 0).Format("2006-01")
		return []string{previous, current}
	}

	return []string{current}
}

// processChannels roda os canais em paralelo, limitado por MaxConcurrentJobs; os períodos
// de um mesmo canal seguem em sequência
func (s *NextEngineSalesSyncService) processChannels(ctx context.Context, channelIDs []int, periods []string) []ChannelSyncResult {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	resultsByChannel := make([][]ChannelSyncResult, len(channelIDs))

	for i, channelID := range channelIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i, channelID int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			for _, period := range periods {
				resultsByChannel[i] = append(resultsByChannel[i], s.syncChannel(ctx, channelID, period))
			}
		}(i, channelID)
	}

	wg.Wait()

	results := make([]ChannelSyncResult, 0, len(channelIDs)*len(periods))
	for _, channelResults := range resultsByChannel {
		results = append(results, channelResults...)
	}

	return results
}

func (s *NextEngineSalesSyncService) syncChannel(ctx context.Context, channelID int, period string) ChannelSyncResult {
	result := ChannelSyncResult{
		SalesChannelID: channelID,
		TargetYm:       period,
	}

	ingestResult, err := s.ingester.SyncFromNextEngine(ctx, ingesting.SyncRequest{
		TargetYm:       period,
		SalesChannelID: channelID,
		ActingUserID:   s.config.SystemUserID,
	})
	result.FinishedAt = s.now()

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"sales_channel_id": channelID,
			"target_ym":        period,
			"error":            err.Error(),
		}).Error("Erro ao sincronizar vendas do canal")
		result.Error = err.Error()
		return result
	}

	result.InsertedCount = ingestResult.InsertedCount

	logrus.WithFields(logrus.Fields{
		"sales_channel_id": channelID,
		"target_ym":        period,
		"inserted":         ingestResult.InsertedCount,
		"new_candidates":   ingestResult.NewCandidateCount,
	}).Info("Vendas do canal sincronizadas")

	return result
}

// GetStatus retorna o status atual do agendador
func (s *NextEngineSalesSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_previous_month":    s.config.PreviousMonthDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           s.lastResults,
	}
}
