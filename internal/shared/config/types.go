package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port" validate:"gte=1,lte=65535"`
	Mode            string   `mapstructure:"mode" validate:"oneof=debug release test development production"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownSeconds int      `mapstructure:"shutdown_seconds"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) ShutdownTimeout() time.Duration {
	if s.ShutdownSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.ShutdownSeconds) * time.Second
}

// DatabaseConfig selects the store backend. Driver "mysql" uses the
// host/port credentials, driver "sqlite" uses Path.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the MySQL DSN. Times are stored and parsed as UTC, and
// RowsAffected counts matched rows so an unchanged update is not a miss.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

// GetSQLiteDSN returns the SQLite DSN with foreign keys enforced. Transactions
// take the write lock on BEGIN so concurrent writers wait on the busy timeout.
func (d *DatabaseConfig) GetSQLiteDSN() string {
	path := d.Path
	if path == "" {
		path = "bulletin.db"
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", path)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret" validate:"min=16"`
	Issuer           string `mapstructure:"issuer"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes" validate:"gte=1"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AnnouncementConfig bounds the read-state queries.
type AnnouncementConfig struct {
	UnreadCap int    `mapstructure:"unread_cap" validate:"gte=1,lte=1000"`
	MaxBulk   int    `mapstructure:"max_bulk" validate:"gte=1,lte=1000"`
	ListOrder string `mapstructure:"list_order" validate:"oneof=created priority"`
}

type RateLimitConfig struct {
	MarkReadPerMinute int `mapstructure:"mark_read_per_minute" validate:"gte=0"`
}

type MigrationConfig struct {
	Strategy    string `mapstructure:"strategy" validate:"oneof=goose golang_migrate auto"`
	ScriptsPath string `mapstructure:"scripts_path"`
}
