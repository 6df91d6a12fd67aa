// Package testutil はテスト用のルーター、データベース、インメモリリポジトリを提供します。
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-task-api/internal/config"
	"go-task-api/internal/database"
	"go-task-api/internal/models"
	"go-task-api/internal/routes"
	"go-task-api/internal/services"
)

// RouterOptions はテスト用ルーターの設定です。
type RouterOptions struct {
	Prefix           string
	StrictValidation bool
	JWTSecret        string
}

// DefaultRouterOptions は本番と同じく厳格なバリデーションを有効にした設定です。
func DefaultRouterOptions() RouterOptions {
	return RouterOptions{StrictValidation: true}
}

// SetupTestRouter はリポジトリを注入したテスト用のGinルーターを作成します。
func SetupTestRouter(t *testing.T, repo services.TaskRepository, opts RouterOptions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return routes.NewRouter(routes.Dependencies{
		Server: config.Server{
			Prefix:           opts.Prefix,
			AllowOrigins:     []string{"http://localhost:3000"},
			StrictValidation: opts.StrictValidation,
		},
		Auth:        config.Auth{JWTSecret: opts.JWTSecret},
		TaskService: services.NewTaskService(repo),
		Logger:      zap.NewNop(),
	})
}

// SetupTestDB はテスト用のデータベース接続を確立し、taskテーブルを空の状態で用意します。
// TEST_DB_NAME が設定されていない場合はインメモリのSQLiteを使います。
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../../.env")

	if os.Getenv("TEST_DB_NAME") == "" {
		return SetupSQLiteDB(t)
	}

	driver := os.Getenv("TEST_DB_DRIVER")
	if driver == "" {
		driver = config.DriverMySQL
	}
	port, err := strconv.Atoi(os.Getenv("TEST_DB_PORT"))
	if err != nil {
		port = 3306
		if driver == config.DriverPostgres {
			port = 5432
		}
	}
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}

	cfg := config.Database{
		Driver:       driver,
		Host:         host,
		Port:         port,
		User:         os.Getenv("TEST_DB_USER"),
		Password:     os.Getenv("TEST_DB_PASS"),
		Name:         os.Getenv("TEST_DB_NAME"),
		MaxOpenConns: 5,
		MaxIdleConns: 5,
	}

	db, err := database.InitDB(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	// テストのたびにクリーンな状態にする
	require.NoError(t, db.Migrator().DropTable(&models.Task{}))
	require.NoError(t, database.Migrate(db))

	return db
}

// SetupSQLiteDB はマイグレーション済みのインメモリSQLiteデータベースを返します。
// 接続ごとに別のデータベースになるため、プールは1接続に制限します。
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateTestTask はAPI経由でTaskを作成し、レスポンスを返します。
func CreateTestTask(t *testing.T, router http.Handler, path, token string, payload map[string]interface{}) *models.Task {
	t.Helper()
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code, "Task作成に失敗しました: %s", resp.Body.String())

	var created models.Task
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	return &created
}
