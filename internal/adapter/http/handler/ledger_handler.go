package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khelbook/backoffice/internal/adapter/http/dto"
	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	RecordDirectEntry(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error)
	RecordBankEntry(ctx context.Context, entry *domain.BankTransaction) (*domain.BankTransaction, error)
	RecordWebsiteEntry(ctx context.Context, entry *domain.WebsiteTransaction) (*domain.WebsiteTransaction, error)
	RecordIntroducerEntry(ctx context.Context, entry *domain.IntroducerTransaction) (*domain.IntroducerTransaction, error)
	GetDirectEntry(ctx context.Context, id string) (*domain.Transaction, error)
	ListUserEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	Totals(ctx context.Context) (*usecase.LedgerTotals, error)
}

// LedgerHandler handles ledger entry requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// RecordDirect records a client deposit or withdrawal.
func (h *LedgerHandler) RecordDirect(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordDirectEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, _ := domain.ActorFromContext(r.Context())
	if !canRecord(actor, req.TransactionType) {
		writeError(w, http.StatusForbidden, "insufficient permissions", domain.ErrForbidden.Error())
		return
	}

	entry, err := h.ledgerUC.RecordDirectEntry(r.Context(), req.ToDomain(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// canRecord checks the actor's capability bit for the entry type. A nil
// actor means authentication is disabled and every operation is open.
func canRecord(actor *domain.Actor, entryType domain.EntryType) bool {
	if actor == nil || actor.Role == domain.RoleSuperAdmin {
		return true
	}
	if entryType == domain.EntryDeposit {
		return actor.Permissions.Has(domain.PermDeposit)
	}
	return actor.Permissions.Has(domain.PermWithdraw)
}

// RecordBank records a manual bank ledger adjustment.
func (h *LedgerHandler) RecordBank(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSideEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, _ := domain.ActorFromContext(r.Context())
	entry, err := h.ledgerUC.RecordBankEntry(r.Context(), req.ToBankDomain(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record bank entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// RecordWebsite records a manual website ledger adjustment.
func (h *LedgerHandler) RecordWebsite(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSideEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, _ := domain.ActorFromContext(r.Context())
	entry, err := h.ledgerUC.RecordWebsiteEntry(r.Context(), req.ToWebsiteDomain(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record website entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// RecordIntroducer records a commission ledger entry.
func (h *LedgerHandler) RecordIntroducer(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordIntroducerEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, _ := domain.ActorFromContext(r.Context())
	entry, err := h.ledgerUC.RecordIntroducerEntry(r.Context(), req.ToDomain(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record introducer entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// GetDirect retrieves a direct entry by ID.
func (h *LedgerHandler) GetDirect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.ledgerUC.GetDirectEntry(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// ListByUser lists a client's direct entries.
func (h *LedgerHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.ledgerUC.ListUserEntries(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: entries,
		Total:   int64(len(entries)),
	})
}

// Totals returns platform-wide deposit and withdrawal totals.
func (h *LedgerHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ledgerUC.Totals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute totals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TotalsResponse{
		TotalDeposits:    totals.TotalDeposits,
		TotalWithdrawals: totals.TotalWithdrawals,
		Net:              totals.Net,
	})
}
