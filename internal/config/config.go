// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	Env      string
	Server   Server
	Database Database
	Auth     Auth
}

// Server は HTTP サーバーとルーティングの設定です。
type Server struct {
	Port             int
	Prefix           string   // グローバルプレフィックス (例: "api" → /api/task)
	AllowOrigins     []string // CORS
	StrictValidation bool     // 未知のフィールドを含むリクエストボディを拒否する
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

// Database はリレーショナルデータベースへの接続設定です。
type Database struct {
	Driver          string // "mysql" または "postgres"
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	Synchronize     bool // 起動時にエンティティからスキーマを自動生成する
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Auth は任意の Bearer トークン検証の設定です。Secret が空なら検証しません。
type Auth struct {
	JWTSecret string
}

// DefaultAllowOrigins は CORS_ALLOW_ORIGINS が空の場合に許可するオリジンです。
var DefaultAllowOrigins = []string{"http://localhost:3000"}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Load は環境変数から設定を読み込みます。
func Load() (*Config, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	defaultPort := 3306
	if driver == DriverPostgres {
		defaultPort = 5432
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "production"),
		Server: Server{
			Port:             getInt("SERVER_PORT", 8080),
			Prefix:           strings.Trim(getEnv("API_PREFIX", ""), "/"),
			AllowOrigins:     getList("CORS_ALLOW_ORIGINS", DefaultAllowOrigins),
			StrictValidation: getBool("VALIDATION_STRICT", true),
			ReadTimeout:      getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:  getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: Database{
			Driver:          driver,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", defaultPort),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASS", ""),
			Name:            getEnv("DB_NAME", ""),
			Synchronize:     getBool("DB_SYNCHRONIZE", true),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: Auth{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
	}

	if driver != DriverMySQL && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	return cfg, nil
}

// Addr は http.Server 用のリッスンアドレスを返します。
func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getBool は 1/true/yes を true、0/false/no を false として扱います。
func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getList はカンマ区切りの値を分割します。
func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
