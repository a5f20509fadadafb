package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Dataset struct {
	Source              string `mapstructure:"dataset_source"` // http ou file
	URL                 string `mapstructure:"dataset_url"`
	Path                string `mapstructure:"dataset_path"`
	FetchTimeoutSeconds int    `mapstructure:"dataset_fetch_timeout_seconds"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATASET_SOURCE", "http")
	viper.SetDefault("DATASET_URL", "http://localhost:3000/peek-funnel.csv")
	viper.SetDefault("DATASET_PATH", "peek-funnel.csv")
	viper.SetDefault("DATASET_FETCH_TIMEOUT_SECONDS", 30)

	viper.SetDefault("DATASET_RELOAD_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica se a origem do dataset está configurada de forma consistente
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case "http":
		if c.Dataset.URL == "" {
			return fmt.Errorf("DATASET_URL é obrigatório quando DATASET_SOURCE=http")
		}
	case "file":
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório quando DATASET_SOURCE=file")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q (use http ou file)", c.Dataset.Source)
	}

	if c.Dataset.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("DATASET_FETCH_TIMEOUT_SECONDS não pode ser negativo")
	}

	if c.DatasetReload.Enabled && c.DatasetReload.CronSchedule == "" {
		return fmt.Errorf("DATASET_RELOAD_CRON é obrigatório quando a recarga está habilitada")
	}

	return nil
}

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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
