package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
	"github.com/khelbook/backoffice/internal/usecase/mocks"
)

type approvalFixture struct {
	uc          *usecase.ApprovalUseCase
	banks       *mocks.MockBankRepository
	websites    *mocks.MockWebsiteRepository
	users       *mocks.MockUserRepository
	direct      *mocks.MockDirectEntryRepository
	bankEntries *mocks.MockBankEntryRepository
	requests    *mocks.MockChangeRequestRepository
	archive     *mocks.MockArchiveRepository
	userIndex   *mocks.MockUserIndexRepository
}

func newApprovalFixture() *approvalFixture {
	f := &approvalFixture{
		banks:       mocks.NewMockBankRepository(),
		websites:    mocks.NewMockWebsiteRepository(),
		users:       mocks.NewMockUserRepository(),
		direct:      mocks.NewMockDirectEntryRepository(),
		bankEntries: mocks.NewMockBankEntryRepository(),
		requests:    mocks.NewMockChangeRequestRepository(),
		archive:     mocks.NewMockArchiveRepository(),
		userIndex:   mocks.NewMockUserIndexRepository(),
	}
	f.uc = usecase.NewApprovalUseCase(
		mocks.NewMockTransactionManager(),
		f.banks,
		f.websites,
		f.users,
		f.direct,
		f.bankEntries,
		mocks.NewMockWebsiteEntryRepository(),
		mocks.NewMockIntroducerEntryRepository(),
		f.requests,
		f.archive,
		f.userIndex,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		nil,
		nil,
		zerolog.Nop(),
	)
	return f
}

func TestApprovalUseCase_ProposeChange_StagesRequest(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC", AccountNumber: "111"})

	req, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID:   "bank-1",
		TargetType: domain.TargetBank,
		Operation:  domain.OperationEdit,
		Actor:      "subadmin-1",
		Payload:    domain.JSON{"bankName": "ICICI", "accountNumber": "111"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Message != "Bank is sent to Super Admin for edit approval" {
		t.Errorf("unexpected message: %q", req.Message)
	}
	// Only the changed field survives the diff.
	if _, ok := req.Changes["accountNumber"]; ok {
		t.Error("unchanged field should not appear in changes")
	}
	if req.Changes["bankName"] != "ICICI" {
		t.Errorf("expected bankName change, got %v", req.Changes)
	}

	// The live record is untouched while the request is pending.
	bank, _ := f.banks.GetByID(ctx, "bank-1")
	if bank.Name != "HDFC" {
		t.Errorf("live record changed before approval: %q", bank.Name)
	}
}

func TestApprovalUseCase_ProposeChange_DuplicateIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})

	input := usecase.ProposeChangeInput{
		TargetID:   "bank-1",
		TargetType: domain.TargetBank,
		Operation:  domain.OperationDelete,
		Actor:      "subadmin-1",
	}
	if _, err := f.uc.ProposeChange(ctx, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.ProposeChange(ctx, input); !errors.Is(err, domain.ErrRequestAlreadyPending) {
		t.Errorf("expected ErrRequestAlreadyPending, got %v", err)
	}
}

func TestApprovalUseCase_ProposeChange_EditAndDeleteCanCoexist(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})

	if _, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID: "bank-1", TargetType: domain.TargetBank,
		Operation: domain.OperationEdit, Actor: "a",
		Payload: domain.JSON{"bankName": "ICICI"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The pending-pair rule is per operation, not per target.
	if _, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID: "bank-1", TargetType: domain.TargetBank,
		Operation: domain.OperationDelete, Actor: "a",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApprovalUseCase_ProposeChange_DuplicateNameIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})
	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-2", Name: "ICICI"})

	_, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID:   "bank-1",
		TargetType: domain.TargetBank,
		Operation:  domain.OperationEdit,
		Actor:      "subadmin-1",
		Payload:    domain.JSON{"bankName": "ICICI"},
	})
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	// Renaming to its own current name is fine.
	if _, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID:   "bank-1",
		TargetType: domain.TargetBank,
		Operation:  domain.OperationEdit,
		Actor:      "subadmin-1",
		Payload:    domain.JSON{"bankName": "HDFC", "accountNumber": "222"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApprovalUseCase_ProposeChange_MissingTarget(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID:   "nope",
		TargetType: domain.TargetWebsite,
		Operation:  domain.OperationDelete,
		Actor:      "subadmin-1",
	})
	if !errors.Is(err, domain.ErrWebsiteNotFound) {
		t.Errorf("expected ErrWebsiteNotFound, got %v", err)
	}
}

func TestApprovalUseCase_ResolveChange_RejectDiscardsRequest(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})

	req, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID: "bank-1", TargetType: domain.TargetBank,
		Operation: domain.OperationEdit, Actor: "a",
		Payload: domain.JSON{"bankName": "ICICI"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.ResolveChange(ctx, req.ID, domain.DecisionReject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bank, _ := f.banks.GetByID(ctx, "bank-1")
	if bank.Name != "HDFC" {
		t.Errorf("rejection must not touch the live record, got %q", bank.Name)
	}
	if _, err := f.requests.GetByID(ctx, req.ID); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("request should be consumed, got %v", err)
	}
}

func TestApprovalUseCase_ResolveChange_ApproveEditMergesPartially(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC", AccountNumber: "111", IFSCCode: "HDFC0001"})

	req, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID: "bank-1", TargetType: domain.TargetBank,
		Operation: domain.OperationEdit, Actor: "a",
		Payload: domain.JSON{"bankName": "ICICI"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.ResolveChange(ctx, req.ID, domain.DecisionApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bank, _ := f.banks.GetByID(ctx, "bank-1")
	if bank.Name != "ICICI" {
		t.Errorf("expected merged name ICICI, got %q", bank.Name)
	}
	// Fields absent from the proposal keep their prior values.
	if bank.AccountNumber != "111" || bank.IFSCCode != "HDFC0001" {
		t.Errorf("untouched fields must survive the merge: %+v", bank)
	}
	if _, err := f.requests.GetByID(ctx, req.ID); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("request should be consumed, got %v", err)
	}
}

func TestApprovalUseCase_ResolveChange_ApproveDeleteArchives(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.users.Create(ctx, &domain.UserProfile{ID: "user-1", Name: "ravi"})
	entry := &domain.Transaction{
		ID: "tx-1", TransactionID: "UTR-1", Type: domain.EntryDeposit,
		Amount: decimal.NewFromInt(100),
		UserID: "user-1", BankID: "bank-1", WebsiteID: "site-1",
	}
	_ = f.direct.Create(ctx, nil, entry)
	_ = f.userIndex.Add(ctx, nil, "user-1", "tx-1")

	req, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID:   "tx-1",
		TargetType: domain.TargetTransaction,
		EntryKind:  domain.EntryKindDirect,
		Operation:  domain.OperationDelete,
		Actor:      "subadmin-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Message != "Deposit is sent to Super Admin for delete approval" {
		t.Errorf("unexpected message: %q", req.Message)
	}

	if err := f.uc.ResolveChange(ctx, req.ID, domain.DecisionApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.direct.GetByID(ctx, "tx-1"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("entry should be deleted, got %v", err)
	}
	ids, _ := f.userIndex.ListEntryIDs(ctx, "user-1")
	if len(ids) != 0 {
		t.Errorf("index row should be removed, got %v", ids)
	}
	archived, _ := f.archive.ListByType(ctx, domain.TargetTransaction, 10, 0)
	if len(archived) != 1 || archived[0].SourceID != "tx-1" {
		t.Errorf("expected one archive record for tx-1, got %+v", archived)
	}
	if _, err := f.requests.GetByID(ctx, req.ID); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("request should be consumed, got %v", err)
	}
}

func TestApprovalUseCase_ResolveChange_MissingIndexRowSurfaces(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.users.Create(ctx, &domain.UserProfile{ID: "user-1", Name: "ravi"})
	_ = f.direct.Create(ctx, nil, &domain.Transaction{
		ID: "tx-1", TransactionID: "UTR-1", Type: domain.EntryDeposit,
		Amount: decimal.NewFromInt(100),
		UserID: "user-1", BankID: "bank-1", WebsiteID: "site-1",
	})
	// No matching user index row: the resolution must fail loudly.

	req, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID:   "tx-1",
		TargetType: domain.TargetTransaction,
		EntryKind:  domain.EntryKindDirect,
		Operation:  domain.OperationDelete,
		Actor:      "subadmin-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.ResolveChange(ctx, req.ID, domain.DecisionApprove); !errors.Is(err, domain.ErrIndexEntryMissing) {
		t.Errorf("expected ErrIndexEntryMissing, got %v", err)
	}

	// Nothing was committed: the entry survives.
	if _, err := f.direct.GetByID(ctx, "tx-1"); err != nil {
		t.Errorf("entry must survive a failed resolution: %v", err)
	}
}

func TestApprovalUseCase_ResolveChange_UnknownDecision(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})
	req, err := f.uc.ProposeChange(ctx, usecase.ProposeChangeInput{
		TargetID: "bank-1", TargetType: domain.TargetBank,
		Operation: domain.OperationDelete, Actor: "a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.ResolveChange(ctx, req.ID, domain.Decision("Maybe")); !errors.Is(err, domain.ErrUnknownDecision) {
		t.Errorf("expected ErrUnknownDecision, got %v", err)
	}
}

func TestApprovalUseCase_ResolveChange_MissingRequest(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()

	if err := f.uc.ResolveChange(ctx, "nope", domain.DecisionApprove); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
}
