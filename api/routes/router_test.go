package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/pebworks/steelquote-backend/internal/auth"
	"github.com/pebworks/steelquote-backend/internal/calc"
	"github.com/pebworks/steelquote-backend/internal/estimation"
	product "github.com/pebworks/steelquote-backend/internal/products"
	"github.com/pebworks/steelquote-backend/internal/reports"
	pkgAuth "github.com/pebworks/steelquote-backend/pkg/auth"
	"github.com/pebworks/steelquote-backend/pkg/auth/session"
	"github.com/pebworks/steelquote-backend/pkg/config"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
	"github.com/pebworks/steelquote-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.RefreshResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubProductService struct{}

func (stubProductService) CreateProduct(ctx context.Context, input product.CreateProductInput) (*product.ProductDTO, error) {
	return &product.ProductDTO{Code: input.Code}, nil
}

// UpdateProduct implements [product.Service].
func (stubProductService) UpdateProduct(ctx context.Context, code string, input product.UpdateProductInput) (*product.ProductDTO, error) {
	panic("unimplemented")
}

// DeactivateProduct implements [product.Service].
func (stubProductService) DeactivateProduct(ctx context.Context, code string) error {
	panic("unimplemented")
}

func (stubProductService) GetProduct(ctx context.Context, code string) (*product.ProductDTO, error) {
	return &product.ProductDTO{Code: code}, nil
}

func (stubProductService) ListProducts(ctx context.Context, filter product.ListFilter) ([]product.ProductDTO, error) {
	return []product.ProductDTO{}, nil
}

type stubEstimationService struct{}

func (stubEstimationService) CreateEstimation(ctx context.Context, input estimation.CreateEstimationInput) (*estimation.EstimationDTO, error) {
	return &estimation.EstimationDTO{ID: uuid.New(), ProjectName: input.ProjectName}, nil
}

func (stubEstimationService) GetEstimation(ctx context.Context, id uuid.UUID) (*estimation.EstimationDTO, error) {
	return &estimation.EstimationDTO{ID: id}, nil
}

func (stubEstimationService) ListEstimations(ctx context.Context, filter estimation.ListFilter) (*estimation.ListResult, error) {
	return &estimation.ListResult{}, nil
}

// UpdateEstimation implements [estimation.Service].
func (stubEstimationService) UpdateEstimation(ctx context.Context, id uuid.UUID, input estimation.UpdateEstimationInput) (*estimation.EstimationDTO, error) {
	panic("unimplemented")
}

// DeleteEstimation implements [estimation.Service].
func (stubEstimationService) DeleteEstimation(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubEstimationService) Calculate(ctx context.Context, id uuid.UUID) (*estimation.EstimationDTO, error) {
	return &estimation.EstimationDTO{ID: id}, nil
}

// Finalize implements [estimation.Service].
func (stubEstimationService) Finalize(ctx context.Context, id uuid.UUID) (*estimation.EstimationDTO, error) {
	panic("unimplemented")
}

// Unlock implements [estimation.Service].
func (stubEstimationService) Unlock(ctx context.Context, id uuid.UUID) (*estimation.EstimationDTO, error) {
	panic("unimplemented")
}

// PreviewAddon implements [estimation.Service].
func (stubEstimationService) PreviewAddon(ctx context.Context, id uuid.UUID, kind enums.AddonKind) (*calc.Result, error) {
	panic("unimplemented")
}

// Result implements [estimation.Service].
func (stubEstimationService) Result(ctx context.Context, id uuid.UUID) (*models.Estimation, *calc.Result, error) {
	panic("unimplemented")
}

type stubReportsService struct{}

// BOM implements [reports.Service].
func (stubReportsService) BOM(ctx context.Context, id uuid.UUID) (*calc.Result, error) {
	panic("unimplemented")
}

// RawMat implements [reports.Service].
func (stubReportsService) RawMat(ctx context.Context, id uuid.UUID) ([]reports.RawMatRow, error) {
	panic("unimplemented")
}

// FCPBS implements [reports.Service].
func (stubReportsService) FCPBS(ctx context.Context, id uuid.UUID) (*reports.FCPBS, error) {
	panic("unimplemented")
}

// SAL implements [reports.Service].
func (stubReportsService) SAL(ctx context.Context, id uuid.UUID) (*reports.SAL, error) {
	panic("unimplemented")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:         cfg,
		Logger:         logg,
		DB:             stubPinger{},
		SessionChecker: stubSessionChecker{},
		AuthService:    stubAuthService{},
		ProductService: stubProductService{},
		Estimations:    stubEstimationService{},
		Reports:        stubReportsService{},
	})
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestPublicPingIsOpen(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/public/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public ping got %d", resp.Code)
	}
}

func TestPrivateGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestPrivateGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.MemberRoleViewer))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for private ping got %d", resp.Code)
	}
}

func TestProductMutationRequiresWriterRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	body := `{"code":"PR-101","description":"Primary rafter","unit":"KG","unit_weight":1,"material_cost":0.62,"manufacturing_cost":0.11,"overhead_cost":0.05,"unit_price":0.95,"cost_code":"A","sales_code":1}`

	viewer := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	viewer.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.MemberRoleViewer))
	viewer.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, viewer)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for viewer got %d", resp.Code)
	}

	estimator := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	estimator.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.MemberRoleEstimator))
	estimator.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, estimator)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for estimator got %d", resp.Code)
	}
}

func TestProductReadOpenToAuthenticatedRoles(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.MemberRoleSales))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for sales read got %d", resp.Code)
	}
}

func TestEstimationListSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/estimations", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.MemberRoleEstimator))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for estimation list got %d", resp.Code)
	}
}

func buildToken(t *testing.T, cfg *config.Config, role enums.MemberRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}
