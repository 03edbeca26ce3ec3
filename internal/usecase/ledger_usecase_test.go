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

type ledgerFixture struct {
	uc          *usecase.LedgerUseCase
	banks       *mocks.MockBankRepository
	websites    *mocks.MockWebsiteRepository
	users       *mocks.MockUserRepository
	direct      *mocks.MockDirectEntryRepository
	introduced  *mocks.MockIntroducerEntryRepository
	userIndex   *mocks.MockUserIndexRepository
	bankEntries *mocks.MockBankEntryRepository
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		banks:       mocks.NewMockBankRepository(),
		websites:    mocks.NewMockWebsiteRepository(),
		users:       mocks.NewMockUserRepository(),
		direct:      mocks.NewMockDirectEntryRepository(),
		introduced:  mocks.NewMockIntroducerEntryRepository(),
		userIndex:   mocks.NewMockUserIndexRepository(),
		bankEntries: mocks.NewMockBankEntryRepository(),
	}
	f.uc = usecase.NewLedgerUseCase(
		mocks.NewMockTransactionManager(),
		f.banks,
		f.websites,
		f.users,
		f.direct,
		f.bankEntries,
		mocks.NewMockWebsiteEntryRepository(),
		f.introduced,
		f.userIndex,
		mocks.NewMockIDGenerator(),
		nil,
		nil,
		zerolog.Nop(),
	)
	return f
}

func (f *ledgerFixture) seedDirectory(ctx context.Context) {
	_ = f.banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})
	_ = f.websites.Create(ctx, &domain.Website{ID: "site-1", Name: "playwin"})
	_ = f.users.Create(ctx, &domain.UserProfile{ID: "user-1", Name: "ravi"})
}

func TestLedgerUseCase_RecordDirectEntry(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)

	entry, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
		TransactionID: "UTR-1",
		Type:          domain.EntryDeposit,
		Amount:        decimal.NewFromInt(100),
		UserID:        "user-1",
		BankID:        "bank-1",
		WebsiteID:     "site-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" || entry.CreatedAt.IsZero() {
		t.Error("id and timestamp should be assigned")
	}

	// The user index row is written alongside the entry.
	ids, _ := f.userIndex.ListEntryIDs(ctx, "user-1")
	if len(ids) != 1 || ids[0] != entry.ID {
		t.Errorf("expected index row for %s, got %v", entry.ID, ids)
	}
}

func TestLedgerUseCase_RecordDirectEntry_DuplicateTransactionID(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)

	input := &domain.Transaction{
		TransactionID: "UTR-1",
		Type:          domain.EntryDeposit,
		Amount:        decimal.NewFromInt(100),
		UserID:        "user-1",
		BankID:        "bank-1",
		WebsiteID:     "site-1",
	}
	if _, err := f.uc.RecordDirectEntry(ctx, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := *input
	dup.ID = ""
	if _, err := f.uc.RecordDirectEntry(ctx, &dup); !errors.Is(err, domain.ErrTransactionExists) {
		t.Errorf("expected ErrTransactionExists, got %v", err)
	}
}

func TestLedgerUseCase_RecordDirectEntry_Validation(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)

	if _, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
		TransactionID: "UTR-1",
		Type:          domain.EntryType("Manual-Bank-Deposit"),
		Amount:        decimal.NewFromInt(100),
		UserID:        "user-1", BankID: "bank-1", WebsiteID: "site-1",
	}); !errors.Is(err, domain.ErrInvalidEntryType) {
		t.Errorf("expected ErrInvalidEntryType, got %v", err)
	}

	if _, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
		TransactionID: "UTR-2",
		Type:          domain.EntryDeposit,
		Amount:        decimal.NewFromInt(-10),
		UserID:        "user-1", BankID: "bank-1", WebsiteID: "site-1",
	}); !errors.Is(err, domain.ErrNegativeEntryAmount) {
		t.Errorf("expected ErrNegativeEntryAmount, got %v", err)
	}

	if _, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
		TransactionID: "UTR-3",
		Type:          domain.EntryDeposit,
		Amount:        decimal.NewFromInt(10),
		UserID:        "user-1", BankID: "ghost", WebsiteID: "site-1",
	}); !errors.Is(err, domain.ErrBankNotFound) {
		t.Errorf("expected ErrBankNotFound, got %v", err)
	}
}

func TestLedgerUseCase_RecordDirectEntry_AccruesIntroducerShare(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)
	_ = f.users.Create(ctx, &domain.UserProfile{ID: "intro-1", Name: "shyam"})
	_ = f.users.Create(ctx, &domain.UserProfile{
		ID: "user-2", Name: "mohan",
		IntroducerUserID:     "intro-1",
		IntroducerPercentage: decimal.NewFromInt(5),
	})

	if _, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
		TransactionID: "UTR-9",
		Type:          domain.EntryDeposit,
		Amount:        decimal.NewFromInt(200),
		UserID:        "user-2",
		BankID:        "bank-1",
		WebsiteID:     "site-1",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, _ := f.introduced.ListByIntroducer(ctx, "intro-1")
	if len(entries) != 1 {
		t.Fatalf("expected one introducer entry, got %d", len(entries))
	}
	if !entries[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 5%% of 200 = 10, got %s", entries[0].Amount)
	}
}

func TestLedgerUseCase_RecordDirectEntry_NoShareOnWithdraw(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)
	_ = f.users.Create(ctx, &domain.UserProfile{ID: "intro-1", Name: "shyam"})
	_ = f.users.Create(ctx, &domain.UserProfile{
		ID: "user-2", Name: "mohan",
		IntroducerUserID:     "intro-1",
		IntroducerPercentage: decimal.NewFromInt(5),
	})

	if _, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
		TransactionID: "UTR-9",
		Type:          domain.EntryWithdraw,
		Amount:        decimal.NewFromInt(200),
		UserID:        "user-2",
		BankID:        "bank-1",
		WebsiteID:     "site-1",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, _ := f.introduced.ListByIntroducer(ctx, "intro-1")
	if len(entries) != 0 {
		t.Errorf("withdrawals accrue no share, got %d entries", len(entries))
	}
}

func TestLedgerUseCase_RecordBankEntry(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)

	entry, err := f.uc.RecordBankEntry(ctx, &domain.BankTransaction{
		BankID:        "bank-1",
		Type:          domain.EntryDeposit,
		DepositAmount: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Error("id should be assigned")
	}

	if _, err := f.uc.RecordBankEntry(ctx, &domain.BankTransaction{
		BankID:        "ghost",
		Type:          domain.EntryDeposit,
		DepositAmount: decimal.NewFromInt(500),
	}); !errors.Is(err, domain.ErrBankNotFound) {
		t.Errorf("expected ErrBankNotFound, got %v", err)
	}
}

func TestLedgerUseCase_RecordIntroducerEntry_MissingIntroducer(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()

	if _, err := f.uc.RecordIntroducerEntry(ctx, &domain.IntroducerTransaction{
		IntroducerUserID: "ghost",
		Type:             domain.EntryDeposit,
		Amount:           decimal.NewFromInt(10),
	}); !errors.Is(err, domain.ErrIntroducerNotFound) {
		t.Errorf("expected ErrIntroducerNotFound, got %v", err)
	}
}

func TestLedgerUseCase_Totals(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	f.seedDirectory(ctx)

	seed := []struct {
		txnID  string
		typ    domain.EntryType
		amount int64
	}{
		{"UTR-1", domain.EntryDeposit, 300},
		{"UTR-2", domain.EntryDeposit, 200},
		{"UTR-3", domain.EntryWithdraw, 150},
	}
	for _, s := range seed {
		if _, err := f.uc.RecordDirectEntry(ctx, &domain.Transaction{
			TransactionID: s.txnID,
			Type:          s.typ,
			Amount:        decimal.NewFromInt(s.amount),
			UserID:        "user-1", BankID: "bank-1", WebsiteID: "site-1",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	totals, err := f.uc.Totals(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.TotalDeposits.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected deposits 500, got %s", totals.TotalDeposits)
	}
	if !totals.TotalWithdrawals.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected withdrawals 150, got %s", totals.TotalWithdrawals)
	}
	if !totals.Net.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected net 350, got %s", totals.Net)
	}
}
