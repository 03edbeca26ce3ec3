package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/infrastructure/metrics"
)

// BalanceInvalidator drops derived balances after a resolution mutates the
// ledger. Satisfied by BalanceUseCase.
type BalanceInvalidator interface {
	Invalidate(ctx context.Context, kind domain.AccountKind, accountID string)
}

// ApprovalUseCase orchestrates the staged change workflow: every edit or
// delete of a financial record is staged as a pending request and is inert
// until a supervisor resolves it.
type ApprovalUseCase struct {
	txManager         TransactionManager
	banks             BankRepository
	websites          WebsiteRepository
	users             UserRepository
	directEntries     DirectEntryRepository
	bankEntries       BankEntryRepository
	websiteEntries    WebsiteEntryRepository
	introducerEntries IntroducerEntryRepository
	requests          ChangeRequestRepository
	archive           ArchiveRepository
	userIndex         UserIndexRepository
	idGen             IDGenerator
	retrier           Retrier
	balances          BalanceInvalidator
	metrics           *metrics.Metrics
	logger            zerolog.Logger
}

// NewApprovalUseCase creates a new ApprovalUseCase. retrier, balances and
// metrics may be nil.
func NewApprovalUseCase(
	txManager TransactionManager,
	banks BankRepository,
	websites WebsiteRepository,
	users UserRepository,
	directEntries DirectEntryRepository,
	bankEntries BankEntryRepository,
	websiteEntries WebsiteEntryRepository,
	introducerEntries IntroducerEntryRepository,
	requests ChangeRequestRepository,
	archive ArchiveRepository,
	userIndex UserIndexRepository,
	idGen IDGenerator,
	retrier Retrier,
	balances BalanceInvalidator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		txManager:         txManager,
		banks:             banks,
		websites:          websites,
		users:             users,
		directEntries:     directEntries,
		bankEntries:       bankEntries,
		websiteEntries:    websiteEntries,
		introducerEntries: introducerEntries,
		requests:          requests,
		archive:           archive,
		userIndex:         userIndex,
		idGen:             idGen,
		retrier:           retrier,
		balances:          balances,
		metrics:           m,
		logger:            logger,
	}
}

// ProposeChangeInput represents a staged edit or delete of a live record.
type ProposeChangeInput struct {
	TargetID   string
	TargetType domain.TargetType
	// EntryKind selects the ledger collection when TargetType is Transaction.
	EntryKind domain.EntryKind
	Operation domain.Operation
	Actor     string
	// Payload holds the proposed field values for an edit, keyed by the
	// record's JSON field names. Ignored for deletes.
	Payload domain.JSON
}

// targetState is what the proposal phase learns about the live record.
type targetState struct {
	snapshot domain.JSON
	// label feeds the audit message: the entry type for ledger targets, the
	// target type for master records.
	label string
	// nameField is the display-name key checked for uniqueness on edits of
	// master records; empty when no uniqueness rule applies.
	nameField string
}

// ProposeChange stages a change request. The live record is untouched:
// proposals are inert until resolved.
func (uc *ApprovalUseCase) ProposeChange(ctx context.Context, input ProposeChangeInput) (*domain.PendingChangeRequest, error) {
	state, err := uc.loadTarget(ctx, input.TargetType, input.EntryKind, input.TargetID)
	if err != nil {
		return nil, err
	}

	var changes domain.JSON
	if input.Operation == domain.OperationEdit {
		if err := uc.checkNameCollision(ctx, input, state); err != nil {
			return nil, err
		}
		changes = domain.DiffFields(state.snapshot, input.Payload)
	}

	req := &domain.PendingChangeRequest{
		ID:          uc.idGen.Generate(),
		TargetID:    input.TargetID,
		TargetType:  input.TargetType,
		EntryKind:   input.EntryKind,
		Operation:   input.Operation,
		Snapshot:    state.snapshot,
		Changes:     changes,
		Message:     domain.ApprovalMessage(state.label, input.Operation),
		RequestedBy: input.Actor,
		IsApproved:  false,
		CreatedAt:   time.Now().UTC(),
	}

	// Duplicate suppression is a storage-level check-and-insert: the request
	// store's partial unique index rejects a second open request for the
	// same (target, operation) pair.
	if err := uc.requests.Create(ctx, req); err != nil {
		if uc.metrics != nil && errors.Is(err, domain.ErrRequestAlreadyPending) {
			uc.metrics.ProposalConflicts.Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ProposalsCreated.WithLabelValues(string(input.TargetType), string(input.Operation)).Inc()
	}

	uc.logger.Info().
		Str("request_id", req.ID).
		Str("target_id", req.TargetID).
		Str("target_type", string(req.TargetType)).
		Str("operation", string(req.Operation)).
		Str("requested_by", req.RequestedBy).
		Msg("change request staged")

	return req, nil
}

// ResolveChange approves or rejects a pending request. Approval either
// merges the changed fields into the live record or archives and removes it;
// either way the request is consumed and deleted.
func (uc *ApprovalUseCase) ResolveChange(ctx context.Context, requestID string, decision domain.Decision) error {
	req, err := uc.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	var resolveErr error
	switch decision {
	case domain.DecisionReject:
		resolveErr = uc.discard(ctx, req)
	case domain.DecisionApprove:
		resolveErr = uc.apply(ctx, req)
	default:
		return domain.ErrUnknownDecision
	}

	if resolveErr != nil {
		return resolveErr
	}

	if uc.metrics != nil {
		uc.metrics.Resolutions.WithLabelValues(string(decision), string(req.Operation)).Inc()
	}

	uc.logger.Info().
		Str("request_id", req.ID).
		Str("target_id", req.TargetID).
		Str("decision", string(decision)).
		Str("operation", string(req.Operation)).
		Msg("change request resolved")

	return nil
}

// ListPending returns a page of open requests, optionally filtered by
// target type.
func (uc *ApprovalUseCase) ListPending(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error) {
	limit, offset = clampPage(limit, offset)
	return uc.requests.ListPending(ctx, targetType, limit, offset)
}

// ListArchive returns a page of archived records of one target type.
func (uc *ApprovalUseCase) ListArchive(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error) {
	limit, offset = clampPage(limit, offset)
	return uc.archive.ListByType(ctx, targetType, limit, offset)
}

// discard removes a rejected request. The live record was never touched.
func (uc *ApprovalUseCase) discard(ctx context.Context, req *domain.PendingChangeRequest) error {
	return uc.inTx(ctx, func(txCtx context.Context, tx Transaction) error {
		return uc.requests.Delete(txCtx, tx, req.ID)
	})
}

func (uc *ApprovalUseCase) apply(ctx context.Context, req *domain.PendingChangeRequest) error {
	var err error
	switch req.Operation {
	case domain.OperationEdit:
		err = uc.applyEdit(ctx, req)
	case domain.OperationDelete:
		err = uc.applyDelete(ctx, req)
	default:
		return domain.ErrUnknownDecision
	}

	if err != nil {
		return err
	}

	if uc.metrics != nil && req.Operation == domain.OperationDelete {
		uc.metrics.ArchivesCreated.Inc()
	}

	uc.invalidateBalances(ctx, req)
	return nil
}

// applyEdit merges the changed fields into the live record: fields absent
// from the request keep their prior values.
func (uc *ApprovalUseCase) applyEdit(ctx context.Context, req *domain.PendingChangeRequest) error {
	return uc.inTx(ctx, func(txCtx context.Context, tx Transaction) error {
		if err := uc.mergeInto(txCtx, tx, req); err != nil {
			return err
		}
		return uc.requests.Delete(txCtx, tx, req.ID)
	})
}

func (uc *ApprovalUseCase) mergeInto(ctx context.Context, tx Transaction, req *domain.PendingChangeRequest) error {
	switch req.TargetType {
	case domain.TargetBank:
		bank, err := uc.banks.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(bank, req.Changes); err != nil {
			return err
		}
		bank.UpdatedAt = time.Now().UTC()
		return uc.banks.Update(ctx, tx, bank)

	case domain.TargetWebsite:
		site, err := uc.websites.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(site, req.Changes); err != nil {
			return err
		}
		site.UpdatedAt = time.Now().UTC()
		return uc.websites.Update(ctx, tx, site)

	case domain.TargetIntroducer:
		user, err := uc.users.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(user, req.Changes); err != nil {
			return err
		}
		if err := domain.ValidateIntroducerPercentage(user.IntroducerPercentage); err != nil {
			return err
		}
		user.UpdatedAt = time.Now().UTC()
		return uc.users.Update(ctx, tx, user)

	case domain.TargetTransaction:
		return uc.mergeEntry(ctx, tx, req)

	default:
		return domain.ErrUnknownTargetType
	}
}

func (uc *ApprovalUseCase) mergeEntry(ctx context.Context, tx Transaction, req *domain.PendingChangeRequest) error {
	switch req.EntryKind {
	case domain.EntryKindDirect:
		entry, err := uc.directEntries.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(entry, req.Changes); err != nil {
			return err
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		return uc.directEntries.Update(ctx, tx, entry)

	case domain.EntryKindBank:
		entry, err := uc.bankEntries.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(entry, req.Changes); err != nil {
			return err
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		return uc.bankEntries.Update(ctx, tx, entry)

	case domain.EntryKindWebsite:
		entry, err := uc.websiteEntries.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(entry, req.Changes); err != nil {
			return err
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		return uc.websiteEntries.Update(ctx, tx, entry)

	case domain.EntryKindIntroducer:
		entry, err := uc.introducerEntries.GetByID(ctx, req.TargetID)
		if err != nil {
			return err
		}
		if err := domain.Merge(entry, req.Changes); err != nil {
			return err
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		return uc.introducerEntries.Update(ctx, tx, entry)

	default:
		return domain.ErrUnknownTargetType
	}
}

// applyDelete archives the live record, maintains the user index, removes
// the record and consumes the request as one transaction. The archive write
// is keyed by source id, so re-running after a crash is idempotent.
func (uc *ApprovalUseCase) applyDelete(ctx context.Context, req *domain.PendingChangeRequest) error {
	return uc.inTx(ctx, func(txCtx context.Context, tx Transaction) error {
		rec := &domain.ArchiveRecord{
			ID:         uc.idGen.Generate(),
			SourceID:   req.TargetID,
			TargetType: req.TargetType,
			EntryKind:  req.EntryKind,
			Snapshot:   req.Snapshot,
			ArchivedBy: req.RequestedBy,
			ArchivedAt: time.Now().UTC(),
		}
		if err := uc.archive.Create(txCtx, tx, rec); err != nil {
			return err
		}

		if req.TargetType == domain.TargetTransaction && req.EntryKind == domain.EntryKindDirect {
			userID, _ := req.Snapshot["userId"].(string)
			removed, err := uc.userIndex.Remove(txCtx, tx, userID, req.TargetID)
			if err != nil {
				return err
			}
			if !removed {
				return domain.ErrIndexEntryMissing
			}
		}

		if err := uc.deleteLive(txCtx, tx, req); err != nil {
			return err
		}

		return uc.requests.Delete(txCtx, tx, req.ID)
	})
}

func (uc *ApprovalUseCase) deleteLive(ctx context.Context, tx Transaction, req *domain.PendingChangeRequest) error {
	switch req.TargetType {
	case domain.TargetBank:
		return uc.banks.Delete(ctx, tx, req.TargetID)
	case domain.TargetWebsite:
		return uc.websites.Delete(ctx, tx, req.TargetID)
	case domain.TargetTransaction:
		switch req.EntryKind {
		case domain.EntryKindDirect:
			return uc.directEntries.Delete(ctx, tx, req.TargetID)
		case domain.EntryKindBank:
			return uc.bankEntries.Delete(ctx, tx, req.TargetID)
		case domain.EntryKindWebsite:
			return uc.websiteEntries.Delete(ctx, tx, req.TargetID)
		case domain.EntryKindIntroducer:
			return uc.introducerEntries.Delete(ctx, tx, req.TargetID)
		}
		return domain.ErrUnknownTargetType
	case domain.TargetIntroducer:
		return uc.users.Delete(ctx, tx, req.TargetID)
	default:
		return domain.ErrUnknownTargetType
	}
}

// inTx runs fn inside a storage transaction, retried on serialization
// failures when a retrier is configured.
func (uc *ApprovalUseCase) inTx(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error {
	run := func() error {
		txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
		defer cancel()

		tx, err := uc.txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		if err := fn(txCtx, tx); err != nil {
			return err
		}

		return tx.Commit(txCtx)
	}

	if uc.retrier != nil {
		return uc.retrier.Retry(ctx, run)
	}
	return run()
}

func (uc *ApprovalUseCase) loadTarget(ctx context.Context, targetType domain.TargetType, entryKind domain.EntryKind, id string) (*targetState, error) {
	switch targetType {
	case domain.TargetBank:
		bank, err := uc.banks.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(bank), label: "Bank", nameField: "bankName"}, nil

	case domain.TargetWebsite:
		site, err := uc.websites.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(site), label: "Website", nameField: "websiteName"}, nil

	case domain.TargetIntroducer:
		user, err := uc.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrIntroducerNotFound
			}
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(user), label: "Introducer"}, nil

	case domain.TargetTransaction:
		return uc.loadEntry(ctx, entryKind, id)

	default:
		return nil, domain.ErrUnknownTargetType
	}
}

func (uc *ApprovalUseCase) loadEntry(ctx context.Context, entryKind domain.EntryKind, id string) (*targetState, error) {
	switch entryKind {
	case domain.EntryKindDirect:
		entry, err := uc.directEntries.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(entry), label: string(entry.Type)}, nil

	case domain.EntryKindBank:
		entry, err := uc.bankEntries.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(entry), label: string(entry.Type)}, nil

	case domain.EntryKindWebsite:
		entry, err := uc.websiteEntries.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(entry), label: string(entry.Type)}, nil

	case domain.EntryKindIntroducer:
		entry, err := uc.introducerEntries.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &targetState{snapshot: domain.MarshalState(entry), label: string(entry.Type)}, nil

	default:
		return nil, domain.ErrUnknownTargetType
	}
}

// checkNameCollision enforces display-name uniqueness at proposal time. The
// check is advisory: it does not lock the namespace, and two concurrent
// proposals for the same name can both pass. Accepted race.
func (uc *ApprovalUseCase) checkNameCollision(ctx context.Context, input ProposeChangeInput, state *targetState) error {
	if state.nameField == "" {
		return nil
	}

	name, ok := input.Payload[state.nameField].(string)
	if !ok || name == "" {
		return nil
	}

	var kind domain.AccountKind
	switch input.TargetType {
	case domain.TargetBank:
		kind = domain.AccountKindBank
	case domain.TargetWebsite:
		kind = domain.AccountKindWebsite
	default:
		return nil
	}

	return assertUniqueName(ctx, uc.banks, uc.websites, kind, name, input.TargetID)
}

func (uc *ApprovalUseCase) invalidateBalances(ctx context.Context, req *domain.PendingChangeRequest) {
	if uc.balances == nil {
		return
	}

	if bankID, _ := req.Snapshot["bankId"].(string); bankID != "" {
		uc.balances.Invalidate(ctx, domain.AccountKindBank, bankID)
	}
	if websiteID, _ := req.Snapshot["websiteId"].(string); websiteID != "" {
		uc.balances.Invalidate(ctx, domain.AccountKindWebsite, websiteID)
	}
	if introID, _ := req.Snapshot["introUserId"].(string); introID != "" {
		uc.balances.Invalidate(ctx, domain.AccountKindIntroducer, introID)
	}
	if req.TargetType == domain.TargetBank {
		uc.balances.Invalidate(ctx, domain.AccountKindBank, req.TargetID)
	}
	if req.TargetType == domain.TargetWebsite {
		uc.balances.Invalidate(ctx, domain.AccountKindWebsite, req.TargetID)
	}
}
