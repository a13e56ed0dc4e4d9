package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	NextEngine     NextEngine     `mapstructure:",squash"`
	NextEngineSync NextEngineSync `mapstructure:",squash"`
	Ingestion      Ingestion      `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// WriteTimeout cobre a importação manual e a exportação xlsx, as rotas mais lentas
	WriteTimeout    time.Duration `mapstructure:"server_write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	// AutoMigrate aplica o schema embutido na subida da API
	AutoMigrate bool `mapstructure:"database_auto_migrate"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// NextEngine agrupa as credenciais do app registrado na plataforma de pedidos
type NextEngine struct {
	BaseURL        string        `mapstructure:"nextengine_base_url"`
	AuthURL        string        `mapstructure:"nextengine_auth_url"`
	ClientID       string        `mapstructure:"nextengine_client_id"`
	ClientSecret   string        `mapstructure:"nextengine_client_secret"`
	RedirectURI    string        `mapstructure:"nextengine_redirect_uri"`
	RequestTimeout time.Duration `mapstructure:"nextengine_request_timeout"`
	// RefreshThreshold antecipa a renovação do access token
	RefreshThreshold time.Duration `mapstructure:"nextengine_refresh_threshold"`
}

type NextEngineSync struct {
	CronSchedule      string `mapstructure:"nextengine_sync_cron"`
	Enabled           bool   `mapstructure:"nextengine_sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"nextengine_sync_max_concurrent_jobs"`
	PreviousMonthDays int    `mapstructure:"nextengine_sync_previous_month_days"`
	SystemUserID      int    `mapstructure:"nextengine_sync_system_user_id"`
}

type Ingestion struct {
	// FallbackTaxMultiplier é usado quando não existe taxa vigente para o período
	FallbackTaxMultiplier string `mapstructure:"ingestion_fallback_tax_multiplier"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "120s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("NEXTENGINE_BASE_URL", "https://api.next-engine.org")
	viper.SetDefault("NEXTENGINE_AUTH_URL", "https://base.next-engine.org/users/sign_in")
	viper.SetDefault("NEXTENGINE_CLIENT_ID", "")
	viper.SetDefault("NEXTENGINE_CLIENT_SECRET", "")
	viper.SetDefault("NEXTENGINE_REDIRECT_URI", "http://localhost:8000/v1/nextengine/auth/callback")
	viper.SetDefault("NEXTENGINE_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("NEXTENGINE_REFRESH_THRESHOLD", "5m")

	// Defaults para sincronização de vendas
	viper.SetDefault("NEXTENGINE_SYNC_CRON", "30 2 * * *")           // Todos os dias às 2h30 da manhã
	viper.SetDefault("NEXTENGINE_SYNC_ENABLED", false)               // Habilitar sincronização automática
	viper.SetDefault("NEXTENGINE_SYNC_MAX_CONCURRENT_JOBS", 2)       // 2 canais em paralelo
	viper.SetDefault("NEXTENGINE_SYNC_PREVIOUS_MONTH_DAYS", 5)       // Ressincroniza o mês anterior nos 5 primeiros dias
	viper.SetDefault("NEXTENGINE_SYNC_SYSTEM_USER_ID", 1)            // Usuário registrado nas importações automáticas
	viper.SetDefault("INGESTION_FALLBACK_TAX_MULTIPLIER", "1.10")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
