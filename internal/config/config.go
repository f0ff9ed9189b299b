package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	CORS             CORS             `mapstructure:",squash"`
	DataSource       DataSource       `mapstructure:",squash"`
	SalesAPI         SalesAPI         `mapstructure:",squash"`
	Upload           Upload           `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// DataSource define a origem inicial dos dados do dashboard ("mock" ou "remote")
type DataSource struct {
	Mode string `mapstructure:"data_source_mode"`
}

type SalesAPI struct {
	URL               string  `mapstructure:"sales_api_url"`
	UploadURL         string  `mapstructure:"sales_upload_url"`
	TimeoutSeconds    int     `mapstructure:"sales_api_timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"sales_api_requests_per_second"`
}

type Upload struct {
	MaxFileSizeBytes int64 `mapstructure:"upload_max_file_size_bytes"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("DATA_SOURCE_MODE", "mock")

	viper.SetDefault("SALES_API_URL", "http://localhost:8080/vendas")
	viper.SetDefault("SALES_UPLOAD_URL", "https://projetojt-api-rest-production.up.railway.app/vendas")
	viper.SetDefault("SALES_API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SALES_API_REQUESTS_PER_SECOND", 5)

	viper.SetDefault("UPLOAD_MAX_FILE_SIZE_BYTES", 10<<20) // 10 MiB

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env de algumas localizações conhecidas
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
