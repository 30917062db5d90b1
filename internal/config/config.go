package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/muffme/bakery-backend/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования
	DevMode     bool          // Режим разработки (коды в ответах, SMS не отправляются)

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди заказов на расчет
	WorkerScanInterval time.Duration // Интервал сканирования нерассчитанных заказов

	// SMS шлюз (SMSC.ru)
	SMSCLogin    string
	SMSCPassword string
	SMSCAPIKey   string

	// SMTP для заявок на предзаказ
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	PreorderTo   string // Адрес, на который уходят заявки

	// Админ-панель
	AdminPasswordHash string // bcrypt-хеш пароля администратора

	// Таблица уровней лояльности
	Tiers *domain.TierTable
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		SMTPHost:           "smtp.gmail.com",
		SMTPPort:           587,
		PreorderTo:         "muffme.mail@gmail.com",
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	tiersFile := flag.String("t", "", "path to tier table YAML file")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Режим разработки включен всегда, кроме production окружения
	cfg.DevMode = os.Getenv("ENVIRONMENT") != "production"

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	// SMS шлюз
	cfg.SMSCLogin = os.Getenv("SMSC_LOGIN")
	cfg.SMSCPassword = os.Getenv("SMSC_PASSWORD")
	cfg.SMSCAPIKey = os.Getenv("SMSC_API_KEY")

	// SMTP
	if envSMTPHost, ok := os.LookupEnv("SMTP_HOST"); ok {
		cfg.SMTPHost = envSMTPHost
	}
	if envSMTPPort, ok := os.LookupEnv("SMTP_PORT"); ok {
		if port, err := strconv.Atoi(envSMTPPort); err == nil && port > 0 {
			cfg.SMTPPort = port
		}
	}
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	if envPreorderTo, ok := os.LookupEnv("PREORDER_EMAIL"); ok {
		cfg.PreorderTo = envPreorderTo
	}

	cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	// Таблица уровней: файл из env имеет приоритет над флагом,
	// без файла используется встроенная таблица
	path := *tiersFile
	if envTiersFile, ok := os.LookupEnv("TIERS_FILE"); ok {
		path = envTiersFile
	}
	tiers, err := loadTierTable(path)
	if err != nil {
		return nil, err
	}
	cfg.Tiers = tiers

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}

// tiersFileSchema описывает формат YAML файла с таблицей уровней
type tiersFileSchema struct {
	Tiers []domain.Tier `yaml:"tiers"`
}

// loadTierTable загружает таблицу уровней из YAML файла.
// При пустом пути возвращает встроенную таблицу.
func loadTierTable(path string) (*domain.TierTable, error) {
	if path == "" {
		return domain.DefaultTierTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier table file %q: %w", path, err)
	}

	var schema tiersFileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse tier table file %q: %w", path, err)
	}

	table, err := domain.NewTierTable(schema.Tiers)
	if err != nil {
		return nil, fmt.Errorf("invalid tier table in %q: %w", path, err)
	}

	return table, nil
}
