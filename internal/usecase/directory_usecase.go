package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/khelbook/backoffice/internal/domain"
)

// DirectoryUseCase manages the master records the ledger points at: banks,
// websites and user profiles. Creation is immediate; edits and deletes of
// existing records go through the approval workflow instead.
type DirectoryUseCase struct {
	banks    BankRepository
	websites WebsiteRepository
	users    UserRepository
	idGen    IDGenerator
	logger   zerolog.Logger
}

// NewDirectoryUseCase creates a new DirectoryUseCase.
func NewDirectoryUseCase(
	banks BankRepository,
	websites WebsiteRepository,
	users UserRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *DirectoryUseCase {
	return &DirectoryUseCase{
		banks:    banks,
		websites: websites,
		users:    users,
		idGen:    idGen,
		logger:   logger,
	}
}

// AssertUniqueName fails with ErrDuplicateName when another account of the
// same kind already holds the candidate name. excludingID exempts the record
// being renamed from the scan. The check is advisory: the namespace is not
// locked, so two concurrent callers can both pass. Accepted race.
func (uc *DirectoryUseCase) AssertUniqueName(ctx context.Context, kind domain.AccountKind, name, excludingID string) error {
	return assertUniqueName(ctx, uc.banks, uc.websites, kind, name, excludingID)
}

// assertUniqueName is shared with the approval workflow, which runs the same
// check at proposal time without holding a DirectoryUseCase.
func assertUniqueName(ctx context.Context, banks BankRepository, websites WebsiteRepository, kind domain.AccountKind, name, excludingID string) error {
	var (
		exists bool
		err    error
	)
	switch kind {
	case domain.AccountKindBank:
		exists, err = banks.ExistsByName(ctx, name, excludingID)
	case domain.AccountKindWebsite:
		exists, err = websites.ExistsByName(ctx, name, excludingID)
	default:
		// User and introducer profiles have no name-uniqueness rule.
		return nil
	}
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateName
	}
	return nil
}

// CreateBank registers a new bank. Display names are unique across banks.
func (uc *DirectoryUseCase) CreateBank(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	if err := uc.AssertUniqueName(ctx, domain.AccountKindBank, bank.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bank.ID = uc.idGen.Generate()
	bank.CreatedAt = now
	bank.UpdatedAt = now

	if err := uc.banks.Create(ctx, bank); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("bank_id", bank.ID).Str("name", bank.Name).Msg("bank created")
	return bank, nil
}

// CreateWebsite registers a new website. Display names are unique across
// websites.
func (uc *DirectoryUseCase) CreateWebsite(ctx context.Context, site *domain.Website) (*domain.Website, error) {
	if err := uc.AssertUniqueName(ctx, domain.AccountKindWebsite, site.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	site.ID = uc.idGen.Generate()
	site.CreatedAt = now
	site.UpdatedAt = now

	if err := uc.websites.Create(ctx, site); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("website_id", site.ID).Str("name", site.Name).Msg("website created")
	return site, nil
}

// CreateUser registers a new user profile. The introducer link, if set, must
// point at an existing user and carry a percentage within range.
func (uc *DirectoryUseCase) CreateUser(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	if err := domain.ValidateIntroducerPercentage(user.IntroducerPercentage); err != nil {
		return nil, err
	}
	if user.IntroducerUserID != "" {
		if _, err := uc.users.GetByID(ctx, user.IntroducerUserID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrIntroducerNotFound
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	user.ID = uc.idGen.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("user created")
	return user, nil
}

// GetBank returns one bank by id.
func (uc *DirectoryUseCase) GetBank(ctx context.Context, id string) (*domain.Bank, error) {
	return uc.banks.GetByID(ctx, id)
}

// GetWebsite returns one website by id.
func (uc *DirectoryUseCase) GetWebsite(ctx context.Context, id string) (*domain.Website, error) {
	return uc.websites.GetByID(ctx, id)
}

// GetUser returns one user profile by id.
func (uc *DirectoryUseCase) GetUser(ctx context.Context, id string) (*domain.UserProfile, error) {
	return uc.users.GetByID(ctx, id)
}

// ListBanks returns a page of banks.
func (uc *DirectoryUseCase) ListBanks(ctx context.Context, limit, offset int) ([]*domain.Bank, error) {
	limit, offset = clampPage(limit, offset)
	return uc.banks.List(ctx, limit, offset)
}

// ListWebsites returns a page of websites.
func (uc *DirectoryUseCase) ListWebsites(ctx context.Context, limit, offset int) ([]*domain.Website, error) {
	limit, offset = clampPage(limit, offset)
	return uc.websites.List(ctx, limit, offset)
}

// ListUsers returns a page of user profiles.
func (uc *DirectoryUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error) {
	limit, offset = clampPage(limit, offset)
	return uc.users.List(ctx, limit, offset)
}
