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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	CRM        CRM        `mapstructure:",squash"`
	Render     Render     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdle  time.Duration `mapstructure:"database_conn_max_idle"`
}

// CRM configura o acesso ao backend REST do CRM
type CRM struct {
	BaseURL        string `mapstructure:"crm_base_url"`
	APIToken       string `mapstructure:"crm_api_token"`
	TimeoutSeconds int    `mapstructure:"crm_timeout_seconds"`
	MaxRetries     int    `mapstructure:"crm_max_retries"`
	RetryBaseMS    int    `mapstructure:"crm_retry_base_ms"`
	PageSize       int    `mapstructure:"crm_page_size"`
}

func (c CRM) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c CRM) RetryBase() time.Duration {
	return time.Duration(c.RetryBaseMS) * time.Millisecond
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Report struct {
	Timezone        string         `mapstructure:"report_timezone"`
	CacheTTLMinutes int            `mapstructure:"report_cache_ttl_minutes"`
	Location        *time.Location `mapstructure:"-"`
}

func (r Report) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLMinutes) * time.Minute
}

type ReportSync struct {
	CronSchedule        string `mapstructure:"report_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"report_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"report_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"report_sync_enabled"`
	RetentionDays       int    `mapstructure:"report_snapshot_retention_days"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/outreach")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE", "5m")

	viper.SetDefault("CRM_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("CRM_API_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("CRM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CRM_MAX_RETRIES", 2)
	viper.SetDefault("CRM_RETRY_BASE_MS", 200)
	viper.SetDefault("CRM_PAGE_SIZE", 10000) // Tamanho máximo de página aceito pelo backend

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("REPORT_TIMEZONE", "UTC")
	viper.SetDefault("REPORT_CACHE_TTL_MINUTES", 15)

	// Defaults para atualização agendada dos relatórios
	viper.SetDefault("REPORT_SYNC_CRON", "0 */6 * * *")      // A cada 6 horas
	viper.SetDefault("REPORT_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre projetos
	viper.SetDefault("REPORT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("REPORT_SYNC_ENABLED", false)           // Habilitar atualização agendada
	viper.SetDefault("REPORT_SNAPSHOT_RETENTION_DAYS", 30)   // Snapshots mais antigos são removidos

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	// Token do CRM guardado como secret file no Render
	if config.CRM.APIToken == "" && config.Render.ServiceID != "" {
		secretsByName, err := NewRenderClient(config).ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		config.CRM.APIToken = secretsByName[crmTokenSecretName]
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize monta os valores derivados e valida o que não tem default seguro
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return fmt.Errorf("REPORT_TIMEZONE inválido %q: %w", c.Report.Timezone, err)
	}
	c.Report.Location = location

	if c.CRM.PageSize <= 0 || c.CRM.PageSize > MaxCRMPageSize {
		c.CRM.PageSize = MaxCRMPageSize
	}

	if c.CRM.MaxRetries < 0 {
		c.CRM.MaxRetries = 0
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// MaxCRMPageSize é o maior "limit" aceito pelo backend do CRM
const MaxCRMPageSize = 10000

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
