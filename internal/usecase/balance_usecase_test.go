package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
	"github.com/khelbook/backoffice/internal/usecase/mocks"
)

func newBalanceFixture() (*usecase.BalanceUseCase, *mocks.MockBankRepository, *mocks.MockWebsiteRepository, *mocks.MockUserRepository, *mocks.MockDirectEntryRepository, *mocks.MockBankEntryRepository, *mocks.MockWebsiteEntryRepository, *mocks.MockIntroducerEntryRepository, *mocks.MockChangeRequestRepository, *mocks.MockCache) {
	banks := mocks.NewMockBankRepository()
	websites := mocks.NewMockWebsiteRepository()
	users := mocks.NewMockUserRepository()
	direct := mocks.NewMockDirectEntryRepository()
	bankEntries := mocks.NewMockBankEntryRepository()
	websiteEntries := mocks.NewMockWebsiteEntryRepository()
	introEntries := mocks.NewMockIntroducerEntryRepository()
	requests := mocks.NewMockChangeRequestRepository()
	cache := mocks.NewMockCache()

	uc := usecase.NewBalanceUseCase(banks, websites, users, direct, bankEntries, websiteEntries, introEntries, requests, cache, nil)
	return uc, banks, websites, users, direct, bankEntries, websiteEntries, introEntries, requests, cache
}

func TestBalanceUseCase_BankBalance(t *testing.T) {
	ctx := context.Background()
	uc, banks, _, _, direct, bankEntries, _, _, _, _ := newBalanceFixture()

	_ = banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})

	_ = bankEntries.Create(ctx, &domain.BankTransaction{
		ID: "be-1", BankID: "bank-1", Type: domain.EntryDeposit,
		DepositAmount: decimal.NewFromInt(500),
	})
	_ = bankEntries.Create(ctx, &domain.BankTransaction{
		ID: "be-2", BankID: "bank-1", Type: domain.EntryWithdraw,
		WithdrawAmount: decimal.NewFromInt(200),
	})
	// A direct withdrawal routed through the bank costs amount plus charges.
	_ = direct.Create(ctx, nil, &domain.Transaction{
		ID: "tx-1", TransactionID: "UTR-1", Type: domain.EntryWithdraw,
		Amount: decimal.NewFromInt(50), BankCharges: decimal.NewFromInt(5),
		BankID: "bank-1", WebsiteID: "site-1", UserID: "user-1",
	})

	balance, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(245)) {
		t.Errorf("expected 245, got %s", balance)
	}
}

func TestBalanceUseCase_BankBalance_DirectDepositAdds(t *testing.T) {
	ctx := context.Background()
	uc, banks, _, _, direct, _, _, _, _, _ := newBalanceFixture()

	_ = banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})
	_ = direct.Create(ctx, nil, &domain.Transaction{
		ID: "tx-1", TransactionID: "UTR-1", Type: domain.EntryDeposit,
		Amount: decimal.NewFromInt(300), Bonus: decimal.NewFromInt(30),
		BankID: "bank-1", WebsiteID: "site-1", UserID: "user-1",
	})

	balance, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Bonus never touches the bank side.
	if !balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected 300, got %s", balance)
	}
}

func TestBalanceUseCase_BankBalance_FoldsApprovedAdjustments(t *testing.T) {
	ctx := context.Background()
	uc, banks, _, _, _, _, _, _, requests, _ := newBalanceFixture()

	_ = banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})

	requests.ListApprovedBankAdjustmentsFunc = func(ctx context.Context, bankID string) ([]*domain.PendingChangeRequest, error) {
		return []*domain.PendingChangeRequest{
			{
				ID:         "req-1",
				TargetID:   "adj-1",
				IsApproved: true,
				Snapshot: domain.JSON{
					"bankId":          "bank-1",
					"transactionType": "Manual-Bank-Deposit",
					"depositAmount":   "100",
				},
			},
			{
				ID:         "req-2",
				TargetID:   "adj-2",
				IsApproved: true,
				Snapshot: domain.JSON{
					"bankId":          "bank-1",
					"transactionType": "Manual-Bank-Withdraw",
					"withdrawAmount":  "40",
				},
			},
		}, nil
	}

	balance, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected 60, got %s", balance)
	}
}

func TestBalanceUseCase_BankBalance_AdjustmentAmountsStayExact(t *testing.T) {
	ctx := context.Background()
	uc, banks, _, _, _, _, _, _, requests, _ := newBalanceFixture()

	_ = banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})

	// 2^53+1 is not representable as a float64; stored snapshots decode
	// amounts as json.Number so the fold must not round it.
	requests.ListApprovedBankAdjustmentsFunc = func(ctx context.Context, bankID string) ([]*domain.PendingChangeRequest, error) {
		return []*domain.PendingChangeRequest{
			{
				ID:         "req-1",
				TargetID:   "adj-1",
				IsApproved: true,
				Snapshot: domain.JSON{
					"bankId":          "bank-1",
					"transactionType": "Manual-Bank-Deposit",
					"depositAmount":   json.Number("9007199254740993"),
				},
			},
		}, nil
	}

	balance, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := decimal.NewFromInt(9007199254740993)
	if !balance.Equal(want) {
		t.Errorf("expected %s, got %s", want, balance)
	}
}

func TestBalanceUseCase_WebsiteBalance_LiabilitySigns(t *testing.T) {
	ctx := context.Background()
	uc, _, websites, _, direct, _, websiteEntries, _, _, _ := newBalanceFixture()

	_ = websites.Create(ctx, &domain.Website{ID: "site-1", Name: "playwin"})

	_ = websiteEntries.Create(ctx, &domain.WebsiteTransaction{
		ID: "we-1", WebsiteID: "site-1", Type: domain.EntryDeposit,
		DepositAmount: decimal.NewFromInt(1000),
	})
	// A user deposit is a website liability: amount plus bonus leave the
	// website balance.
	_ = direct.Create(ctx, nil, &domain.Transaction{
		ID: "tx-1", TransactionID: "UTR-1", Type: domain.EntryDeposit,
		Amount: decimal.NewFromInt(100), Bonus: decimal.NewFromInt(10),
		BankID: "bank-1", WebsiteID: "site-1", UserID: "user-1",
	})
	// A user withdrawal flows back in.
	_ = direct.Create(ctx, nil, &domain.Transaction{
		ID: "tx-2", TransactionID: "UTR-2", Type: domain.EntryWithdraw,
		Amount: decimal.NewFromInt(60), BankCharges: decimal.NewFromInt(3),
		BankID: "bank-1", WebsiteID: "site-1", UserID: "user-1",
	})

	balance, err := uc.ComputeBalance(ctx, "site-1", domain.AccountKindWebsite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1000 - (100+10) + 60 = 950; bank charges never touch the website side.
	if !balance.Equal(decimal.NewFromInt(950)) {
		t.Errorf("expected 950, got %s", balance)
	}
}

func TestBalanceUseCase_IntroducerBalance(t *testing.T) {
	ctx := context.Background()
	uc, _, _, users, _, _, _, introEntries, _, _ := newBalanceFixture()

	_ = users.Create(ctx, &domain.UserProfile{ID: "intro-1", Name: "ravi"})

	_ = introEntries.Create(ctx, &domain.IntroducerTransaction{
		ID: "ie-1", IntroducerUserID: "intro-1", Type: domain.EntryDeposit,
		Amount: decimal.NewFromInt(80),
	})
	_ = introEntries.Create(ctx, &domain.IntroducerTransaction{
		ID: "ie-2", IntroducerUserID: "intro-1", Type: domain.EntryWithdraw,
		Amount: decimal.NewFromInt(30),
	})

	balance, err := uc.ComputeBalance(ctx, "intro-1", domain.AccountKindIntroducer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 50, got %s", balance)
	}
}

func TestBalanceUseCase_NegativeBalanceIsValid(t *testing.T) {
	ctx := context.Background()
	uc, banks, _, _, _, bankEntries, _, _, _, _ := newBalanceFixture()

	_ = banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})
	_ = bankEntries.Create(ctx, &domain.BankTransaction{
		ID: "be-1", BankID: "bank-1", Type: domain.EntryWithdraw,
		WithdrawAmount: decimal.NewFromInt(400),
	})

	balance, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(-400)) {
		t.Errorf("expected -400, got %s", balance)
	}
}

func TestBalanceUseCase_UnknownAccountErrors(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _, _, _, _, _, _, _ := newBalanceFixture()

	if _, err := uc.ComputeBalance(ctx, "missing", domain.AccountKindBank); !errors.Is(err, domain.ErrBankNotFound) {
		t.Errorf("expected ErrBankNotFound, got %v", err)
	}
	if _, err := uc.ComputeBalance(ctx, "missing", domain.AccountKindWebsite); !errors.Is(err, domain.ErrWebsiteNotFound) {
		t.Errorf("expected ErrWebsiteNotFound, got %v", err)
	}
	if _, err := uc.ComputeBalance(ctx, "missing", domain.AccountKindIntroducer); !errors.Is(err, domain.ErrIntroducerNotFound) {
		t.Errorf("expected ErrIntroducerNotFound, got %v", err)
	}
}

func TestBalanceUseCase_CachedBalanceIsServed(t *testing.T) {
	ctx := context.Background()
	uc, banks, _, _, _, bankEntries, _, _, _, _ := newBalanceFixture()

	_ = banks.Create(ctx, &domain.Bank{ID: "bank-1", Name: "HDFC"})
	_ = bankEntries.Create(ctx, &domain.BankTransaction{
		ID: "be-1", BankID: "bank-1", Type: domain.EntryDeposit,
		DepositAmount: decimal.NewFromInt(100),
	})

	first, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// New entries are invisible until invalidation or TTL expiry.
	_ = bankEntries.Create(ctx, &domain.BankTransaction{
		ID: "be-2", BankID: "bank-1", Type: domain.EntryDeposit,
		DepositAmount: decimal.NewFromInt(900),
	})

	cached, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cached.Equal(first) {
		t.Errorf("expected cached balance %s, got %s", first, cached)
	}

	uc.Invalidate(ctx, domain.AccountKindBank, "bank-1")

	fresh, err := uc.ComputeBalance(ctx, "bank-1", domain.AccountKindBank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fresh.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected 1000 after invalidation, got %s", fresh)
	}
}

func TestBalanceUseCase_NetIntroducerDue(t *testing.T) {
	ctx := context.Background()
	uc, _, _, users, _, _, _, introEntries, _, _ := newBalanceFixture()

	_ = users.Create(ctx, &domain.UserProfile{ID: "intro-1", Name: "ravi"})
	_ = introEntries.Create(ctx, &domain.IntroducerTransaction{
		ID: "ie-1", IntroducerUserID: "intro-1", Type: domain.EntryDeposit,
		Amount: decimal.NewFromInt(120),
	})

	due, err := uc.NetIntroducerDue(ctx, "intro-1", decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !due.Balance.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected booked 120, got %s", due.Balance)
	}
	if !due.CurrentDue.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected due 80, got %s", due.CurrentDue)
	}
}
