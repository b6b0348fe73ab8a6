package handlers

import (
	"context"
	"net/http"

	"content-management/internal/models"
	"content-management/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID    int
	registerErr   error
	loginToken    string
	loginErr      error
	parseClaims   *service.Claims
	parseErr      error
	assignRoleErr error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	lastParseToken       string
	lastAssignActor      string
	lastAssignTarget     string
	lastAssignRole       string
	assignCalls          int
}

func (m *mockAuth) Register(username, password string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}
func (m *mockAuth) Login(username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}
func (m *mockAuth) AssignRole(actor, target, role string) error {
	m.assignCalls++
	m.lastAssignActor = actor
	m.lastAssignTarget = target
	m.lastAssignRole = role
	return m.assignRoleErr
}

type mockContents struct {
	createResp models.Content
	createErr  error
	getResp    models.Content
	getErr     error
	updateResp models.Content
	updateErr  error
	deleteErr  error

	lastCreateInput models.Content
	lastGetID       int
	lastUpdateID    int
	lastUpdateInput models.Content
	lastDeleteID    int
	deleteCalls     int
}

func (m *mockContents) Create(ctx context.Context, input models.Content) (models.Content, error) {
	m.lastCreateInput = input
	return m.createResp, m.createErr
}
func (m *mockContents) GetByID(ctx context.Context, id int) (models.Content, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}
func (m *mockContents) Update(ctx context.Context, id int, input models.Content) (models.Content, error) {
	m.lastUpdateID = id
	m.lastUpdateInput = input
	return m.updateResp, m.updateErr
}
func (m *mockContents) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

type mockAudit struct {
	recordErr error
	listResp  []models.AuditEvent
	listErr   error

	recordCalls   int
	lastMethod    string
	lastAction    string
	lastActor     string
	lastFilter    service.AuditFilter
	listCallCount int
}

func (m *mockAudit) Record(ctx context.Context, method, action, actor string) error {
	m.recordCalls++
	m.lastMethod = method
	m.lastAction = action
	m.lastActor = actor
	return m.recordErr
}
func (m *mockAudit) List(ctx context.Context, f service.AuditFilter) ([]models.AuditEvent, error) {
	m.listCallCount++
	m.lastFilter = f
	return m.listResp, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// adminAuth returns a mock that accepts any token as an Admin caller.
func adminAuth(username string) *mockAuth {
	return &mockAuth{
		parseClaims: &service.Claims{Username: username, Role: models.RoleAdmin},
	}
}

// userAuth returns a mock that accepts any token as a regular User caller.
func userAuth(username string) *mockAuth {
	return &mockAuth{
		parseClaims: &service.Claims{Username: username, Role: models.RoleUser},
	}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
