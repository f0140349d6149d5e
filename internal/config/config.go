package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress    string `json:"server_address"`
	DatabaseDSN      string `json:"database_dsn"`
	PgMigrationsPath string `json:"pg_migrations_path"`
	RecentLimit      int    `json:"recent_limit"`
	EnableHTTPS      bool   `json:"enable_https"`
	TLSCertPath      string `json:"tls_cert_path"`
	TLSKeyPath       string `json:"tls_key_path"`
}

// NewConfig инициализирует конфигурацию на основе аргументов командной строки
func NewConfig() *Config {

	viper.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("PG_MIGRATIONS_PATH", "internal/migrations")
	viper.SetDefault("RECENT_LIMIT", 10)
	viper.SetDefault("ENABLE_HTTPS", false)
	viper.SetDefault("TLS_CERT_PATH", "cert.pem")
	viper.SetDefault("TLS_KEY_PATH", "key.pem")

	viper.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // Ошибку игнорируем, если файла нет

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	serverAddress := flag.String("a", "", "server address")
	databaseDSN := flag.String("d", "", "PostgreSQL DSN")
	enableHTTPS := flag.Bool("s", false, "enable HTTPS")
	tlsCertPath := flag.String("cert", "", "path to TLS certificate")
	tlsKeyPath := flag.String("key", "", "path to TLS key")
	configPath := flag.String("c", "", "path to JSON config file")
	flag.StringVar(configPath, "config", "", "path to JSON config file")

	flag.Parse()

	// Загружаем JSON-конфигурацию (если указана)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}

	type rawJSON Config
	jsonCfg := &rawJSON{}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Printf("Не удалось прочитать JSON-файл конфигурации %q: %v", *configPath, err)
		} else if err := json.Unmarshal(data, jsonCfg); err != nil {
			log.Printf("Ошибка разбора JSON-файла конфигурации: %v", err)
		}
	}

	cfg := &Config{
		ServerAddress:    viper.GetString("SERVER_ADDRESS"),
		DatabaseDSN:      viper.GetString("DATABASE_DSN"),
		PgMigrationsPath: viper.GetString("PG_MIGRATIONS_PATH"),
		RecentLimit:      viper.GetInt("RECENT_LIMIT"),
		EnableHTTPS:      viper.GetBool("ENABLE_HTTPS"),
		TLSCertPath:      viper.GetString("TLS_CERT_PATH"),
		TLSKeyPath:       viper.GetString("TLS_KEY_PATH"),
	}

	// Значения из JSON-файла применяются там, где окружение молчит
	if jsonCfg.ServerAddress != "" && os.Getenv("SERVER_ADDRESS") == "" {
		cfg.ServerAddress = jsonCfg.ServerAddress
	}
	if jsonCfg.DatabaseDSN != "" && os.Getenv("DATABASE_DSN") == "" {
		cfg.DatabaseDSN = jsonCfg.DatabaseDSN
	}
	if jsonCfg.PgMigrationsPath != "" && os.Getenv("PG_MIGRATIONS_PATH") == "" {
		cfg.PgMigrationsPath = jsonCfg.PgMigrationsPath
	}
	if jsonCfg.RecentLimit > 0 && os.Getenv("RECENT_LIMIT") == "" {
		cfg.RecentLimit = jsonCfg.RecentLimit
	}

	// Если флаг передан, но переменной окружения нет — используем флаг
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
	}

	// Включаем TLS
	if *enableHTTPS {
		cfg.EnableHTTPS = true
	}
	if *tlsCertPath != "" {
		cfg.TLSCertPath = *tlsCertPath
	}
	if *tlsKeyPath != "" {
		cfg.TLSKeyPath = *tlsKeyPath
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: DatabaseDSN=%s", cfg.DatabaseDSN)
	log.Printf("Инициализация конфигурации: PgMigrationsPath=%s", cfg.PgMigrationsPath)
	log.Printf("Инициализация конфигурации: RecentLimit=%d", cfg.RecentLimit)
	log.Printf("Инициализация конфигурации: EnableHTTPS=%v", cfg.EnableHTTPS)

	// Проверка корректности конфигурации
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Ошибка конфигурации: %v\n", err)
	}

	return cfg
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("адрес подключения к БД не может быть пустым")
	}
	if cfg.RecentLimit <= 0 {
		return fmt.Errorf("лимит недавних страниц должен быть положительным")
	}
	return nil
}
