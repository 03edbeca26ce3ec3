package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/adapter/http/dto"
	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	ComputeBalance(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error)
	Recompute(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error)
	NetIntroducerDue(ctx context.Context, introUserID string, liveBalance decimal.Decimal) (*usecase.IntroducerDue, error)
}

// BalanceHandler handles balance computation requests.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// BankBalance returns the reconciled balance of a bank account.
func (h *BalanceHandler) BankBalance(w http.ResponseWriter, r *http.Request) {
	h.balance(w, r, domain.AccountKindBank)
}

// WebsiteBalance returns the reconciled balance of a website account.
func (h *BalanceHandler) WebsiteBalance(w http.ResponseWriter, r *http.Request) {
	h.balance(w, r, domain.AccountKindWebsite)
}

// IntroducerBalance returns the booked commission balance of an introducer.
func (h *BalanceHandler) IntroducerBalance(w http.ResponseWriter, r *http.Request) {
	h.balance(w, r, domain.AccountKindIntroducer)
}

func (h *BalanceHandler) balance(w http.ResponseWriter, r *http.Request, kind domain.AccountKind) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var (
		balance decimal.Decimal
		err     error
	)
	// ?refresh=true bypasses the cache and recomputes from the ledgers.
	if r.URL.Query().Get("refresh") == "true" {
		balance, err = h.balanceUC.Recompute(r.Context(), id, kind)
	} else {
		balance, err = h.balanceUC.ComputeBalance(r.Context(), id, kind)
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: id,
		Kind:      kind,
		Balance:   balance,
	})
}

// IntroducerDue returns the commission still owed to an introducer against a
// live balance figure supplied in the "live" query parameter.
func (h *BalanceHandler) IntroducerDue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing introducer ID", "")
		return
	}

	live, err := decimal.NewFromString(r.URL.Query().Get("live"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid live balance", err.Error())
		return
	}

	due, err := h.balanceUC.NetIntroducerDue(r.Context(), id, live)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute due", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IntroducerDueResponse{
		IntroUserID: id,
		Balance:     due.Balance,
		CurrentDue:  due.CurrentDue,
	})
}
