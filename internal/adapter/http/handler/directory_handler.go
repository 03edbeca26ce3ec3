package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khelbook/backoffice/internal/adapter/http/dto"
	"github.com/khelbook/backoffice/internal/domain"
)

// DirectoryService defines the behavior needed by DirectoryHandler.
type DirectoryService interface {
	CreateBank(ctx context.Context, bank *domain.Bank) (*domain.Bank, error)
	CreateWebsite(ctx context.Context, site *domain.Website) (*domain.Website, error)
	CreateUser(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error)
	GetBank(ctx context.Context, id string) (*domain.Bank, error)
	GetWebsite(ctx context.Context, id string) (*domain.Website, error)
	GetUser(ctx context.Context, id string) (*domain.UserProfile, error)
	ListBanks(ctx context.Context, limit, offset int) ([]*domain.Bank, error)
	ListWebsites(ctx context.Context, limit, offset int) ([]*domain.Website, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error)
}

// DirectoryHandler handles bank, website and client profile requests.
type DirectoryHandler struct {
	directoryUC DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryUC DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryUC: directoryUC}
}

// CreateBank registers a new bank account.
func (h *DirectoryHandler) CreateBank(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	bank, err := h.directoryUC.CreateBank(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create bank", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, bank)
}

// GetBank retrieves a bank by ID.
func (h *DirectoryHandler) GetBank(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing bank ID", "")
		return
	}

	bank, err := h.directoryUC.GetBank(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get bank", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bank)
}

// ListBanks lists registered banks.
func (h *DirectoryHandler) ListBanks(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	banks, err := h.directoryUC.ListBanks(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list banks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBanksResponse{
		Banks: banks,
		Total: int64(len(banks)),
	})
}

// CreateWebsite registers a new website.
func (h *DirectoryHandler) CreateWebsite(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWebsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	site, err := h.directoryUC.CreateWebsite(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create website", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, site)
}

// GetWebsite retrieves a website by ID.
func (h *DirectoryHandler) GetWebsite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing website ID", "")
		return
	}

	site, err := h.directoryUC.GetWebsite(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get website", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, site)
}

// ListWebsites lists registered websites.
func (h *DirectoryHandler) ListWebsites(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	sites, err := h.directoryUC.ListWebsites(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list websites", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListWebsitesResponse{
		Websites: sites,
		Total:    int64(len(sites)),
	})
}

// CreateUser registers a new client profile.
func (h *DirectoryHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.directoryUC.CreateUser(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create user", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// GetUser retrieves a client profile by ID.
func (h *DirectoryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	user, err := h.directoryUC.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ListUsers lists client profiles.
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	users, err := h.directoryUC.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListUsersResponse{
		Users: users,
		Total: int64(len(users)),
	})
}
