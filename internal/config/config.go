// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Middleware     MiddlewareConfig     `mapstructure:"middleware"`
	Gateway        GatewayConfig        `mapstructure:"gateway"`
	Completion     CompletionConfig     `mapstructure:"completion"`
	Storage        StorageConfig        `mapstructure:"storage"`
	RabbitMQ       RabbitMQConfig       `mapstructure:"rabbitmq"`
	Ingest         IngestConfig         `mapstructure:"ingest"`
	Queue          QueueConfig          `mapstructure:"queue"`
	Buffer         BufferConfig         `mapstructure:"buffer"`
	Dispatcher     DispatcherConfig     `mapstructure:"dispatcher"`
	TenantDefaults TenantDefaultsConfig `mapstructure:"tenant_defaults"`
	Lock           LockConfig           `mapstructure:"lock"`
	Workflow       WorkflowConfig       `mapstructure:"workflow"`
	Outbox         OutboxConfig         `mapstructure:"outbox"`
	Scheduler      SchedulerConfig      `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname"`
	SSLMode     string `mapstructure:"sslmode"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
	Migrations  string `mapstructure:"migrations"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

// GatewayConfig points at the chat gateway REST API.
type GatewayConfig struct {
	URL            string               `mapstructure:"url"`
	APIKey         string               `mapstructure:"api_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// CompletionConfig points at the text generation service.
type CompletionConfig struct {
	URL            string               `mapstructure:"url"`
	APIKey         string               `mapstructure:"api_key"`
	Model          string               `mapstructure:"model"`
	Timeout        int                  `mapstructure:"timeout"`
	HistoryLimit   int                  `mapstructure:"history_limit"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// StorageConfig describes the S3 compatible bucket used for media.
type StorageConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Endpoint      string `mapstructure:"endpoint"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PathStyle     bool   `mapstructure:"path_style"`
	PublicURL     string `mapstructure:"public_url"`
	Timeout       int    `mapstructure:"timeout"`
	MaxMediaBytes int64  `mapstructure:"max_media_bytes"`
}

type RabbitMQConfig struct {
	URL   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

type IngestConfig struct {
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
	BudgetMs     int   `mapstructure:"budget_ms"`
	MaxStringLen int   `mapstructure:"max_string_len"`
	MaxDepth     int   `mapstructure:"max_depth"`
	CacheTTL     int   `mapstructure:"cache_ttl"`
	NegativeTTL  int   `mapstructure:"negative_ttl"`
}

type QueueConfig struct {
	MaxAttempts       int `mapstructure:"max_attempts"`
	BatchSize         int `mapstructure:"batch_size"`
	Concurrency       int `mapstructure:"concurrency"`
	StaleAfterSeconds int `mapstructure:"stale_after_seconds"`
}

type BufferConfig struct {
	BatchSize           int `mapstructure:"batch_size"`
	Concurrency         int `mapstructure:"concurrency"`
	MaxAttempts         int `mapstructure:"max_attempts"`
	RetryBackoffSeconds int `mapstructure:"retry_backoff_seconds"`
}

type DispatcherConfig struct {
	SequenceBatchSize    int `mapstructure:"sequence_batch_size"`
	SequenceLeaseSeconds int `mapstructure:"sequence_lease_seconds"`
	CapBackoffMinutes    int `mapstructure:"cap_backoff_minutes"`
}

// TenantDefaultsConfig applies to tenants without a tenant_settings row.
type TenantDefaultsConfig struct {
	Timezone        string   `mapstructure:"timezone"`
	StartHour       int      `mapstructure:"start_hour"`
	EndHour         int      `mapstructure:"end_hour"`
	CooldownSeconds int      `mapstructure:"cooldown_seconds"`
	DebounceSeconds int      `mapstructure:"debounce_seconds"`
	DailySendCap    int      `mapstructure:"daily_send_cap"`
	BaseDelayMs     int      `mapstructure:"base_delay_ms"`
	JitterMs        int      `mapstructure:"jitter_ms"`
	MinDelayMs      int      `mapstructure:"min_delay_ms"`
	AIEnabled       bool     `mapstructure:"ai_enabled"`
	SystemPrompt    string   `mapstructure:"system_prompt"`
	HandoffKeywords []string `mapstructure:"handoff_keywords"`
}

type LockConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

type WorkflowConfig struct {
	MaxDepth       int `mapstructure:"max_depth"`
	WebhookTimeout int `mapstructure:"webhook_timeout"`
	ResumeBatch    int `mapstructure:"resume_batch"`
}

type OutboxConfig struct {
	BatchSize  int `mapstructure:"batch_size"`
	MaxRetries int `mapstructure:"max_retries"`
}

// SchedulerConfig holds the tick interval of every periodic task, in seconds.
type SchedulerConfig struct {
	AutoStart               bool `mapstructure:"auto_start"`
	QueueIntervalSeconds    int  `mapstructure:"queue_interval_seconds"`
	BufferIntervalSeconds   int  `mapstructure:"buffer_interval_seconds"`
	ResumeIntervalSeconds   int  `mapstructure:"resume_interval_seconds"`
	SequenceIntervalSeconds int  `mapstructure:"sequence_interval_seconds"`
	OutboxIntervalSeconds   int  `mapstructure:"outbox_interval_seconds"`
	ReaperIntervalSeconds   int  `mapstructure:"reaper_interval_seconds"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations", "migrations")
	v.SetDefault("redis.db", 0)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 30)

	v.SetDefault("gateway.timeout", 10)
	v.SetDefault("gateway.circuit_breaker.max_requests", 3)
	v.SetDefault("gateway.circuit_breaker.interval", 60)
	v.SetDefault("gateway.circuit_breaker.timeout", 60)
	v.SetDefault("gateway.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("gateway.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("completion.timeout", 10)
	v.SetDefault("completion.history_limit", 20)
	v.SetDefault("completion.circuit_breaker.max_requests", 3)
	v.SetDefault("completion.circuit_breaker.interval", 60)
	v.SetDefault("completion.circuit_breaker.timeout", 60)
	v.SetDefault("completion.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("completion.circuit_breaker.consecutive_fails", 5)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.path_style", true)
	v.SetDefault("storage.timeout", 10)
	v.SetDefault("storage.max_media_bytes", 16<<20)
	v.SetDefault("rabbitmq.queue", "convoflow.events")

	v.SetDefault("ingest.max_body_bytes", 1<<20)
	v.SetDefault("ingest.budget_ms", 4500)
	v.SetDefault("ingest.max_string_len", 65536)
	v.SetDefault("ingest.max_depth", 32)
	v.SetDefault("ingest.cache_ttl", 300)
	v.SetDefault("ingest.negative_ttl", 30)

	v.SetDefault("queue.max_attempts", 5)
	v.SetDefault("queue.batch_size", 50)
	v.SetDefault("queue.concurrency", 8)
	v.SetDefault("queue.stale_after_seconds", 300)
	v.SetDefault("buffer.batch_size", 50)
	v.SetDefault("buffer.concurrency", 8)
	v.SetDefault("buffer.max_attempts", 3)
	v.SetDefault("buffer.retry_backoff_seconds", 30)
	v.SetDefault("dispatcher.sequence_batch_size", 20)
	v.SetDefault("dispatcher.sequence_lease_seconds", 300)
	v.SetDefault("dispatcher.cap_backoff_minutes", 60)

	v.SetDefault("tenant_defaults.timezone", "UTC")
	v.SetDefault("tenant_defaults.start_hour", 8)
	v.SetDefault("tenant_defaults.end_hour", 20)
	v.SetDefault("tenant_defaults.cooldown_seconds", 120)
	v.SetDefault("tenant_defaults.debounce_seconds", 15)
	v.SetDefault("tenant_defaults.daily_send_cap", 500)
	v.SetDefault("tenant_defaults.base_delay_ms", 3000)
	v.SetDefault("tenant_defaults.jitter_ms", 4000)
	v.SetDefault("tenant_defaults.min_delay_ms", 1500)
	v.SetDefault("tenant_defaults.ai_enabled", true)
	v.SetDefault("tenant_defaults.handoff_keywords", []string{"human", "humano", "atendente", "operator", "agent"})

	v.SetDefault("lock.ttl_seconds", 30)
	v.SetDefault("workflow.max_depth", 10)
	v.SetDefault("workflow.webhook_timeout", 5)
	v.SetDefault("workflow.resume_batch", 50)
	v.SetDefault("outbox.batch_size", 100)
	v.SetDefault("outbox.max_retries", 5)

	v.SetDefault("scheduler.auto_start", true)
	v.SetDefault("scheduler.queue_interval_seconds", 10)
	v.SetDefault("scheduler.buffer_interval_seconds", 5)
	v.SetDefault("scheduler.resume_interval_seconds", 15)
	v.SetDefault("scheduler.sequence_interval_seconds", 30)
	v.SetDefault("scheduler.outbox_interval_seconds", 5)
	v.SetDefault("scheduler.reaper_interval_seconds", 60)
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL URL form consumed by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// Seconds converts an integer seconds setting to a duration.
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
