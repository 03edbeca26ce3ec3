package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/adapter/http/handler"
	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/infrastructure/auth"
	"github.com/khelbook/backoffice/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/banks/",
		"GET /api/v1/banks/{id}/balance",
		"POST /api/v1/websites/",
		"POST /api/v1/users/",
		"GET /api/v1/users/{id}/entries",
		"GET /api/v1/introducers/{id}/due",
		"POST /api/v1/entries/direct",
		"POST /api/v1/requests/",
		"POST /api/v1/requests/{id}/approve",
		"POST /api/v1/requests/{id}/reject",
		"GET /api/v1/archive",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_ResolutionRequiresSuperAdmin(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Minute)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
	}))

	subToken, err := jwtManager.Generate(&domain.Actor{
		ID:   "sub-1",
		Name: "Ravi",
		Role: domain.RoleSubAdmin,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/req-1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+subToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected subadmin approval to be forbidden, got %d", rec.Code)
	}

	superToken, err := jwtManager.Generate(&domain.Actor{
		ID:   "super-1",
		Name: "Boss",
		Role: domain.RoleSuperAdmin,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/requests/req-1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+superToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected superadmin approval to pass, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_AuthRequiredWhenEnabled(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Minute)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banks/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected unauthenticated request to be rejected, got %d", rec.Code)
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		DirectoryHandler: handler.NewDirectoryHandler(&stubDirectoryService{}),
		LedgerHandler:    handler.NewLedgerHandler(&stubLedgerService{}),
		ApprovalHandler:  handler.NewApprovalHandler(&stubApprovalService{}),
		BalanceHandler:   handler.NewBalanceHandler(&stubBalanceService{}),
		HealthHandler:    &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubDirectoryService struct{}

func (stubDirectoryService) CreateBank(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	return bank, nil
}

func (stubDirectoryService) CreateWebsite(ctx context.Context, site *domain.Website) (*domain.Website, error) {
	return site, nil
}

func (stubDirectoryService) CreateUser(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	return user, nil
}

func (stubDirectoryService) GetBank(ctx context.Context, id string) (*domain.Bank, error) {
	return &domain.Bank{ID: id}, nil
}

func (stubDirectoryService) GetWebsite(ctx context.Context, id string) (*domain.Website, error) {
	return &domain.Website{ID: id}, nil
}

func (stubDirectoryService) GetUser(ctx context.Context, id string) (*domain.UserProfile, error) {
	return &domain.UserProfile{ID: id}, nil
}

func (stubDirectoryService) ListBanks(ctx context.Context, limit, offset int) ([]*domain.Bank, error) {
	return []*domain.Bank{}, nil
}

func (stubDirectoryService) ListWebsites(ctx context.Context, limit, offset int) ([]*domain.Website, error) {
	return []*domain.Website{}, nil
}

func (stubDirectoryService) ListUsers(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error) {
	return []*domain.UserProfile{}, nil
}

type stubLedgerService struct{}

func (stubLedgerService) RecordDirectEntry(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	return entry, nil
}

func (stubLedgerService) RecordBankEntry(ctx context.Context, entry *domain.BankTransaction) (*domain.BankTransaction, error) {
	return entry, nil
}

func (stubLedgerService) RecordWebsiteEntry(ctx context.Context, entry *domain.WebsiteTransaction) (*domain.WebsiteTransaction, error) {
	return entry, nil
}

func (stubLedgerService) RecordIntroducerEntry(ctx context.Context, entry *domain.IntroducerTransaction) (*domain.IntroducerTransaction, error) {
	return entry, nil
}

func (stubLedgerService) GetDirectEntry(ctx context.Context, id string) (*domain.Transaction, error) {
	return &domain.Transaction{ID: id}, nil
}

func (stubLedgerService) ListUserEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	return []*domain.Transaction{}, nil
}

func (stubLedgerService) Totals(ctx context.Context) (*usecase.LedgerTotals, error) {
	return &usecase.LedgerTotals{}, nil
}

type stubApprovalService struct{}

func (stubApprovalService) ProposeChange(ctx context.Context, input usecase.ProposeChangeInput) (*domain.PendingChangeRequest, error) {
	return &domain.PendingChangeRequest{ID: "req"}, nil
}

func (stubApprovalService) ResolveChange(ctx context.Context, requestID string, decision domain.Decision) error {
	return nil
}

func (stubApprovalService) ListPending(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error) {
	return []*domain.PendingChangeRequest{}, nil
}

func (stubApprovalService) ListArchive(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error) {
	return []*domain.ArchiveRecord{}, nil
}

type stubBalanceService struct{}

func (stubBalanceService) ComputeBalance(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubBalanceService) Recompute(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubBalanceService) NetIntroducerDue(ctx context.Context, introUserID string, liveBalance decimal.Decimal) (*usecase.IntroducerDue, error) {
	return &usecase.IntroducerDue{}, nil
}
