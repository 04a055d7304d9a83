package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// injectIdentity sets the authenticated handle and role the way the auth
// middleware would, without requiring a real token.
func injectIdentity(handle string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextHandle, handle)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", rec.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got %q", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// --- mock directory service ---

type mockDirectoryService struct {
	registerUserFn     func(fullName, email, handle, password, confirmPassword string) (*models.User, error)
	loginUserFn        func(handle, password string) (*models.User, error)
	loginAdminFn       func(handle, password string) (*models.Admin, error)
	findUserByHandleFn func(handle string) (*models.User, error)
	listUsersFn        func() ([]models.User, error)
}

var _ services.DirectoryServicer = (*mockDirectoryService)(nil)

func (m *mockDirectoryService) RegisterUser(fullName, email, handle, password, confirmPassword string) (*models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(fullName, email, handle, password, confirmPassword)
	}
	return &models.User{Handle: handle, FullName: fullName, Email: email, JoinDate: time.Now()}, nil
}

func (m *mockDirectoryService) LoginUser(handle, password string) (*models.User, error) {
	if m.loginUserFn != nil {
		return m.loginUserFn(handle, password)
	}
	return &models.User{Handle: handle}, nil
}

func (m *mockDirectoryService) LoginAdmin(handle, password string) (*models.Admin, error) {
	if m.loginAdminFn != nil {
		return m.loginAdminFn(handle, password)
	}
	return &models.Admin{Handle: handle, DisplayName: handle + " (Admin)"}, nil
}

func (m *mockDirectoryService) FindUserByHandle(handle string) (*models.User, error) {
	if m.findUserByHandleFn != nil {
		return m.findUserByHandleFn(handle)
	}
	return &models.User{Handle: handle}, nil
}

func (m *mockDirectoryService) FindAdminByHandle(handle string) (*models.Admin, error) {
	return &models.Admin{Handle: handle, DisplayName: handle + " (Admin)"}, nil
}

func (m *mockDirectoryService) ListUsers() ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn()
	}
	return []models.User{}, nil
}

func (m *mockDirectoryService) CountUsers() (int64, error) { return 0, nil }

// --- mock ledger service ---

type mockLedgerService struct {
	appendFn func(ownerHandle string, kind models.Kind, amount int64, category, description string, occurredOn time.Time) (*models.Transaction, error)
	queryFn  func(filter services.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

func (m *mockLedgerService) Append(ownerHandle string, kind models.Kind, amount int64, category, description string, occurredOn time.Time) (*models.Transaction, error) {
	if m.appendFn != nil {
		return m.appendFn(ownerHandle, kind, amount, category, description, occurredOn)
	}
	return &models.Transaction{OwnerHandle: ownerHandle, Kind: kind, Amount: amount}, nil
}

func (m *mockLedgerService) Query(filter services.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.queryFn != nil {
		return m.queryFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 50, 0)
	return &resp, nil
}

func (m *mockLedgerService) All(filter services.Filter) ([]models.Transaction, error) {
	return []models.Transaction{}, nil
}

func (m *mockLedgerService) CountAll() (int64, error) { return 0, nil }

// --- mock stats service ---

type mockStatsService struct {
	userSummaryFn   func(handle string) (services.Summary, error)
	systemSummaryFn func() (services.SystemSummary, error)
}

var _ services.StatsServicer = (*mockStatsService)(nil)

func (m *mockStatsService) UserSummary(handle string) (services.Summary, error) {
	if m.userSummaryFn != nil {
		return m.userSummaryFn(handle)
	}
	return services.Summary{}, nil
}

func (m *mockStatsService) SystemSummary() (services.SystemSummary, error) {
	if m.systemSummaryFn != nil {
		return m.systemSummaryFn()
	}
	return services.SystemSummary{}, nil
}

// --- mock session service ---

type mockSessionService struct {
	authenticateFn func(role models.Role, handle, password string) (models.Session, error)
	endSessionFn   func()
}

var _ services.SessionServicer = (*mockSessionService)(nil)

func (m *mockSessionService) Authenticate(role models.Role, handle, password string) (models.Session, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(role, handle, password)
	}
	return models.Session{Handle: handle, Role: role}, nil
}

func (m *mockSessionService) Current() models.Session { return models.LoggedOut }

func (m *mockSessionService) EndSession() {
	if m.endSessionFn != nil {
		m.endSessionFn()
	}
}
