package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Raffle   *RaffleConfig   `mapstructure:"raffle"`
	Jobs     *JobsConfig     `mapstructure:"jobs"`
	Kafka    *KafkaConfig    `mapstructure:"kafka"`

	v *viper.Viper
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	ServiceName        string        `mapstructure:"service_name"`
	Version            string        `mapstructure:"version"`
	BaseURL            string        `mapstructure:"base_url"`
	Port               string        `mapstructure:"port"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
	LogLevel           string        `mapstructure:"log_level"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DB              string        `mapstructure:"db"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RaffleConfig struct {
	DefaultTTLMinutes int  `mapstructure:"default_ttl_minutes"`
	AutoMigrate       bool `mapstructure:"auto_migrate"`
}

type JobsConfig struct {
	ReservationSweep string `mapstructure:"reservation_sweep"`
	Timezone         string `mapstructure:"timezone"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	// PublishTimeout bounds how long a request waits on the broker after its change committed.
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// Load reads the YAML file at path. Every key can be overridden from the
// environment with dots replaced by underscores, e.g. API_PORT.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	conf.v = v
	conf.setDefaults()

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config -> %w", err)
	}

	return conf, nil
}

func (c *AppConfig) setDefaults() {
	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.Gin == nil {
		c.Gin = &GinConfig{Mode: "release"}
	}
	if c.Postgres == nil {
		c.Postgres = &PostgresConfig{}
	}
	if c.Raffle == nil {
		c.Raffle = &RaffleConfig{}
	}
	if c.Raffle.DefaultTTLMinutes == 0 {
		c.Raffle.DefaultTTLMinutes = 10
	}
	if c.Jobs == nil {
		c.Jobs = &JobsConfig{}
	}
	if c.Jobs.Timezone == "" {
		c.Jobs.Timezone = "UTC"
	}
	if c.Kafka == nil {
		c.Kafka = &KafkaConfig{}
	}
	if c.Kafka.PublishTimeout == 0 {
		c.Kafka.PublishTimeout = 2 * time.Second
	}
	if c.API.JWTTTL == 0 {
		c.API.JWTTTL = 24 * time.Hour
	}
	if c.API.LogLevel == "" {
		c.API.LogLevel = "info"
	}
}

func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c.API,
		validation.Field(&c.API.Port, validation.Required),
		validation.Field(&c.API.JWTSigningKey, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.API.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// Watch calls onChange with the reloaded config each time the file changes.
// Reloads that fail to decode are reported through onError and otherwise ignored.
func (c *AppConfig) Watch(onChange func(*AppConfig), onError func(error)) {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := decode(c.v)
		if err != nil {
			onError(err)
			return
		}
		onChange(conf)
	})
	c.v.WatchConfig()
}
