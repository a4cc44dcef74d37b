package config

import (
	"time"

	"mindmeter/packages/email"
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log"`
	JWT      JWTConfig      `koanf:"jwt"`
	Smtp     email.Config   `koanf:"smtp"`
	Mail     MailConfig     `koanf:"mail"`
	OTP      OTPConfig      `koanf:"otp"`
	Google   GoogleConfig   `koanf:"google"`
	OpenAI   OpenAIConfig   `koanf:"openai"`
	Stripe   StripeConfig   `koanf:"stripe"`
	Frontend FrontendConfig `koanf:"frontend"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Mode            string        `koanf:"mode"` // debug, release
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return s.Host + ":" + itoa(s.Port)
}

type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	TimeZone     string `koanf:"timezone"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"`  // 秒
	SlowQueryMs  int    `koanf:"slow_query_ms"` // 0 使用默认阈值
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
	// 哨兵模式：master_name 非空时使用 sentinels 地址，忽略 host/port
	MasterName string   `koanf:"master_name"`
	Sentinels  []string `koanf:"sentinels"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时
}

// MailConfig 联系表单和反馈邮件的收件人
type MailConfig struct {
	ContactReceiver  string `koanf:"contact_receiver"`
	FeedbackReceiver string `koanf:"feedback_receiver"`
}

type OTPConfig struct {
	Backend       string `koanf:"backend"`        // redis, memory
	ExpireMinutes int    `koanf:"expire_minutes"` // 验证码有效期
	CacheSize     int    `koanf:"cache_size"`     // memory 后端最大条目数
}

// TTL 验证码有效期
func (c OTPConfig) TTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

type GoogleConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	RedirectURL  string `koanf:"redirect_url"`
}

type OpenAIConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"base_url"`
}

type StripeConfig struct {
	SecretKey     string `koanf:"secret_key"`
	WebhookSecret string `koanf:"webhook_secret"`
	Currency      string `koanf:"currency"`
}

type FrontendConfig struct {
	URL            string   `koanf:"url"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.JWT.ExpireTime == 0 {
		c.JWT.ExpireTime = 24
	}
	if c.OTP.Backend == "" {
		c.OTP.Backend = "memory"
	}
	if c.OTP.ExpireMinutes == 0 {
		c.OTP.ExpireMinutes = 5
	}
	if c.OTP.CacheSize == 0 {
		c.OTP.CacheSize = 10000
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.Stripe.Currency == "" {
		c.Stripe.Currency = "usd"
	}
	if c.Frontend.URL == "" {
		c.Frontend.URL = "http://localhost:3000"
	}
	if len(c.Frontend.AllowedOrigins) == 0 {
		c.Frontend.AllowedOrigins = []string{c.Frontend.URL}
	}
}
