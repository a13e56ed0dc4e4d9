package neclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/config"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	authPath    = "/api_neauth/"
	refreshPath = "/main/oauth/token"

	endDateLayout = "2006-01-02 15:04:05"

	accessTokenLifetime  = 24 * time.Hour
	refreshTokenLifetime = 3 * 24 * time.Hour
)

var (
	// ErrNotLinked indica que o OAuth ainda não foi concluído
	ErrNotLinked = errors.New("credenciais da NE não encontradas, faça o login na plataforma")
	// ErrUnavailable indica falha de transporte depois das tentativas do resty
	ErrUnavailable = errors.New("NE API indisponível")
)

// As datas de validade da API vêm no horário do Japão
var jst = time.FixedZone("JST", 9*60*60)

// TokenManager guarda os tokens da NE no banco e os renova antes do vencimento
type TokenManager struct {
	cfg   config.NextEngine
	http  *resty.Client
	repo  repository.NEAuthRepository
	mutex sync.Mutex
	now   func() time.Time
}

func NewTokenManager(cfg config.NextEngine, httpClient *resty.Client, repo repository.NEAuthRepository) *TokenManager {
	return &TokenManager{
		cfg:  cfg,
		http: httpClient,
		repo: repo,
		now:  time.Now,
	}
}

// ValidToken retorna as credenciais atuais, renovando se vencem dentro do limite configurado
func (tm *TokenManager) ValidToken(ctx context.Context) (*domain.NEAuth, error) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	auth, err := tm.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar credenciais da NE: %w", err)
	}

	if auth == nil {
		return nil, ErrNotLinked
	}

	if !auth.ExpiresWithin(tm.now(), tm.cfg.RefreshThreshold) {
		return auth, nil
	}

	logrus.Info("ne-token: access token vencido ou perto do vencimento, renovando")

	return tm.refresh(ctx, auth)
}

// Exchange troca o uid/state recebidos no callback do login pelos tokens
func (tm *TokenManager) Exchange(ctx context.Context, uid, state string) error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	envelope, err := tm.postToken(ctx, authPath, map[string]string{
		"client_id":     tm.cfg.ClientID,
		"client_secret": tm.cfg.ClientSecret,
		"uid":           uid,
		"state":         state,
	})
	if err != nil {
		return err
	}

	return tm.repo.Save(ctx, tm.authFromEnvelope(*envelope))
}

// StoreFromEnvelope salva os tokens que a API devolve junto com os dados
func (tm *TokenManager) StoreFromEnvelope(ctx context.Context, envelope nedomain.Envelope) error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	return tm.repo.Save(ctx, tm.authFromEnvelope(envelope))
}

func (tm *TokenManager) refresh(ctx context.Context, current *domain.NEAuth) (*domain.NEAuth, error) {
	envelope, err := tm.postToken(ctx, refreshPath, map[string]string{
		"client_id":     tm.cfg.ClientID,
		"client_secret": tm.cfg.ClientSecret,
		"refresh_token": current.RefreshToken,
	})
	if err != nil {
		return nil, err
	}

	auth := tm.authFromEnvelope(*envelope)
	if err := tm.repo.Save(ctx, auth); err != nil {
		return nil, err
	}

	logrus.WithField("expires_at", auth.ExpiresAt.Format(time.RFC3339)).Info("ne-token: tokens renovados")

	return auth, nil
}

func (tm *TokenManager) postToken(ctx context.Context, endpoint string, form map[string]string) (*nedomain.Envelope, error) {
	resp, err := tm.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar NE API (%s): %w", endpoint, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("NE API erro (%s): status %d: %s", endpoint, resp.StatusCode(), resp.String())
	}

	var envelope nedomain.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar tokens da NE: %w", err)
	}

	if envelope.Result == nedomain.ResultError {
		return nil, &nedomain.APIError{Endpoint: endpoint, Message: envelope.Message, Code: envelope.Code}
	}

	if envelope.AccessToken == "" || envelope.RefreshToken == "" {
		return nil, fmt.Errorf("NE API (%s) não retornou tokens", endpoint)
	}

	return &envelope, nil
}

func (tm *TokenManager) authFromEnvelope(envelope nedomain.Envelope) *domain.NEAuth {
	now := tm.now()

	return &domain.NEAuth{
		AccessToken:  envelope.AccessToken,
		RefreshToken: envelope.RefreshToken,
		ExpiresAt:    parseEndDate(envelope.AccessTokenEndDate, now.Add(accessTokenLifetime)),
		RefreshesAt:  parseEndDate(envelope.RefreshTokenEndDate, now.Add(refreshTokenLifetime)),
	}
}

func parseEndDate(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}

	t, err := time.ParseInLocation(endDateLayout, value, jst)
	if err != nil {
		logrus.WithField("value", value).Warn("ne-token: data de validade em formato inesperado")
		return fallback
	}

	return t
}
