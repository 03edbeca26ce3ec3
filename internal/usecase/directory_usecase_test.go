package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
	"github.com/khelbook/backoffice/internal/usecase/mocks"
)

func TestDirectoryUseCase_CreateBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banks := mocks.NewGoMockBankRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	banks.EXPECT().ExistsByName(gomock.Any(), "HDFC", "").Return(false, nil)
	idGen.EXPECT().Generate().Return("bank-1")
	banks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewDirectoryUseCase(banks, mocks.NewMockWebsiteRepository(), mocks.NewMockUserRepository(), idGen, zerolog.Nop())

	bank, err := uc.CreateBank(context.Background(), &domain.Bank{Name: "HDFC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bank.ID != "bank-1" {
		t.Errorf("expected generated id, got %q", bank.ID)
	}
	if bank.CreatedAt.IsZero() || bank.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestDirectoryUseCase_CreateBank_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banks := mocks.NewGoMockBankRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	banks.EXPECT().ExistsByName(gomock.Any(), "HDFC", "").Return(true, nil)

	uc := usecase.NewDirectoryUseCase(banks, mocks.NewMockWebsiteRepository(), mocks.NewMockUserRepository(), idGen, zerolog.Nop())

	if _, err := uc.CreateBank(context.Background(), &domain.Bank{Name: "HDFC"}); !errors.Is(err, domain.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestDirectoryUseCase_CreateWebsite_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	websites := mocks.NewGoMockWebsiteRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	websites.EXPECT().ExistsByName(gomock.Any(), "playwin", "").Return(true, nil)

	uc := usecase.NewDirectoryUseCase(mocks.NewMockBankRepository(), websites, mocks.NewMockUserRepository(), idGen, zerolog.Nop())

	if _, err := uc.CreateWebsite(context.Background(), &domain.Website{Name: "playwin"}); !errors.Is(err, domain.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestDirectoryUseCase_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewGoMockUserRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	users.EXPECT().GetByID(gomock.Any(), "intro-1").Return(&domain.UserProfile{ID: "intro-1"}, nil)
	idGen.EXPECT().Generate().Return("user-1")
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewDirectoryUseCase(mocks.NewMockBankRepository(), mocks.NewMockWebsiteRepository(), users, idGen, zerolog.Nop())

	user, err := uc.CreateUser(context.Background(), &domain.UserProfile{
		Name:                 "ravi",
		IntroducerUserID:     "intro-1",
		IntroducerPercentage: decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected generated id, got %q", user.ID)
	}
}

func TestDirectoryUseCase_CreateUser_InvalidPercentage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewGoMockUserRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	uc := usecase.NewDirectoryUseCase(mocks.NewMockBankRepository(), mocks.NewMockWebsiteRepository(), users, idGen, zerolog.Nop())

	_, err := uc.CreateUser(context.Background(), &domain.UserProfile{
		Name:                 "ravi",
		IntroducerPercentage: decimal.NewFromInt(120),
	})
	if !errors.Is(err, domain.ErrInvalidPercentage) {
		t.Errorf("expected ErrInvalidPercentage, got %v", err)
	}
}

func TestDirectoryUseCase_CreateUser_MissingIntroducer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewGoMockUserRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	users.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, domain.ErrUserNotFound)

	uc := usecase.NewDirectoryUseCase(mocks.NewMockBankRepository(), mocks.NewMockWebsiteRepository(), users, idGen, zerolog.Nop())

	_, err := uc.CreateUser(context.Background(), &domain.UserProfile{
		Name:             "ravi",
		IntroducerUserID: "ghost",
	})
	if !errors.Is(err, domain.ErrIntroducerNotFound) {
		t.Errorf("expected ErrIntroducerNotFound, got %v", err)
	}
}

func TestDirectoryUseCase_ListBanks_ClampsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banks := mocks.NewGoMockBankRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	banks.EXPECT().List(gomock.Any(), usecase.MaxPageSize, 0).Return(nil, nil)

	uc := usecase.NewDirectoryUseCase(banks, mocks.NewMockWebsiteRepository(), mocks.NewMockUserRepository(), idGen, zerolog.Nop())

	if _, err := uc.ListBanks(context.Background(), 5000, -3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDirectoryUseCase_AssertUniqueName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banks := mocks.NewGoMockBankRepository(ctrl)
	websites := mocks.NewGoMockWebsiteRepository(ctrl)
	idGen := mocks.NewGoMockIDGenerator(ctrl)

	uc := usecase.NewDirectoryUseCase(banks, websites, mocks.NewMockUserRepository(), idGen, zerolog.Nop())
	ctx := context.Background()

	banks.EXPECT().ExistsByName(gomock.Any(), "HDFC", "").Return(true, nil)
	if err := uc.AssertUniqueName(ctx, domain.AccountKindBank, "HDFC", ""); !errors.Is(err, domain.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName for a taken bank name, got %v", err)
	}

	// Renaming a record to its own current name passes: the record itself is
	// excluded from the scan.
	banks.EXPECT().ExistsByName(gomock.Any(), "HDFC", "bank-1").Return(false, nil)
	if err := uc.AssertUniqueName(ctx, domain.AccountKindBank, "HDFC", "bank-1"); err != nil {
		t.Errorf("expected nil with the holder excluded, got %v", err)
	}

	websites.EXPECT().ExistsByName(gomock.Any(), "playwin", "site-9").Return(true, nil)
	if err := uc.AssertUniqueName(ctx, domain.AccountKindWebsite, "playwin", "site-9"); !errors.Is(err, domain.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName for a taken website name, got %v", err)
	}

	// User profiles carry no name-uniqueness rule; no repository call is made.
	if err := uc.AssertUniqueName(ctx, domain.AccountKindUser, "ravi", ""); err != nil {
		t.Errorf("expected nil for user kind, got %v", err)
	}
}
