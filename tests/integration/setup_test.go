package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Sessions services.SessionServicer
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Admin{},
		&models.Transaction{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	directoryService := services.NewDirectoryService(db)
	ledgerService := services.NewLedgerService(db, directoryService)
	statsService := services.NewStatsService(ledgerService, directoryService)
	sessionService := services.NewSessionService(directoryService)

	// Handlers
	authHandler := handlers.NewAuthHandler(directoryService, sessionService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	categoryHandler := handlers.NewCategoryHandler()
	adminHandler := handlers.NewAdminHandler(ledgerService, statsService, directoryService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired())
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/categories", categoryHandler.List)

	userRoutes := protected.Group("/")
	userRoutes.Use(middleware.RoleRequired(models.RoleUser))
	userRoutes.POST("/transactions", transactionHandler.Create)
	userRoutes.GET("/transactions", transactionHandler.ListMine)
	userRoutes.GET("/summary", statsHandler.MySummary)

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RoleRequired(models.RoleAdmin))
	adminRoutes.GET("/transactions", adminHandler.ListTransactions)
	adminRoutes.GET("/summary", adminHandler.SystemSummary)
	adminRoutes.GET("/users", adminHandler.ListUsers)

	return &testApp{DB: db, Router: router, Sessions: sessionService}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode extracts the code field from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

// registerUser registers a user account through the API.
func (app *testApp) registerUser(t *testing.T, handle, email, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"full_name":"Test User","email":%q,"handle":%q,"password":%q,"confirm_password":%q}`,
		email, handle, password, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
}

// loginUser logs a user in and returns the bearer token.
func (app *testApp) loginUser(t *testing.T, handle, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"handle":%q,"password":%q}`, handle, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// loginAdmin logs an admin in, creating the account on first use, and returns
// the bearer token.
func (app *testApp) loginAdmin(t *testing.T, handle, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"handle":%q,"password":%q}`, handle, password)
	rec := app.request("POST", "/api/v1/auth/admin/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// recordTransaction appends a transaction through the API for the token's owner.
func (app *testApp) recordTransaction(t *testing.T, token, kind, category, description string, amount int64) {
	t.Helper()
	body := fmt.Sprintf(`{"kind":%q,"amount":%d,"category":%q,"description":%q}`,
		kind, amount, category, description)
	rec := app.request("POST", "/api/v1/transactions", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record transaction failed: %d %s", rec.Code, rec.Body.String())
	}
}
