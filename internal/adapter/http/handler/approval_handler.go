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

// ApprovalService defines the behavior needed by ApprovalHandler.
type ApprovalService interface {
	ProposeChange(ctx context.Context, input usecase.ProposeChangeInput) (*domain.PendingChangeRequest, error)
	ResolveChange(ctx context.Context, requestID string, decision domain.Decision) error
	ListPending(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error)
	ListArchive(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error)
}

// ApprovalHandler handles change request staging and resolution.
type ApprovalHandler struct {
	approvalUC ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvalUC ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalUC: approvalUC}
}

// Propose stages an edit or delete of a live record for approval.
func (h *ApprovalHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req dto.ProposeChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, _ := domain.ActorFromContext(r.Context())
	pending, err := h.approvalUC.ProposeChange(r.Context(), req.ToUseCaseInput(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to stage change request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, pending)
}

// Approve applies a pending change request.
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, domain.DecisionApprove)
}

// Reject discards a pending change request.
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, domain.DecisionReject)
}

func (h *ApprovalHandler) resolve(w http.ResponseWriter, r *http.Request, decision domain.Decision) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing request ID", "")
		return
	}

	if err := h.approvalUC.ResolveChange(r.Context(), id, decision); err != nil {
		writeError(w, mapDomainError(err), "failed to resolve change request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "resolved",
		"decision": string(decision),
	})
}

// ListPending lists pending change requests, optionally filtered by target
// type via the "targetType" query parameter.
func (h *ApprovalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	targetType := domain.TargetType(r.URL.Query().Get("targetType"))
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	requests, err := h.approvalUC.ListPending(r.Context(), targetType, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list pending requests", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListRequestsResponse{
		Requests: requests,
		Total:    int64(len(requests)),
	})
}

// ListArchive lists archived records, optionally filtered by target type.
func (h *ApprovalHandler) ListArchive(w http.ResponseWriter, r *http.Request) {
	targetType := domain.TargetType(r.URL.Query().Get("targetType"))
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.approvalUC.ListArchive(r.Context(), targetType, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list archive", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListArchiveResponse{
		Records: records,
		Total:   int64(len(records)),
	})
}
