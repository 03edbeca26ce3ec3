package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/infrastructure/metrics"
)

// LedgerUseCase records ledger entries. Entries are append-only: once
// written they can only be changed through the approval workflow.
type LedgerUseCase struct {
	txManager         TransactionManager
	banks             BankRepository
	websites          WebsiteRepository
	users             UserRepository
	directEntries     DirectEntryRepository
	bankEntries       BankEntryRepository
	websiteEntries    WebsiteEntryRepository
	introducerEntries IntroducerEntryRepository
	userIndex         UserIndexRepository
	idGen             IDGenerator
	balances          BalanceInvalidator
	metrics           *metrics.Metrics
	logger            zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase. balances and metrics may be
// nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	banks BankRepository,
	websites WebsiteRepository,
	users UserRepository,
	directEntries DirectEntryRepository,
	bankEntries BankEntryRepository,
	websiteEntries WebsiteEntryRepository,
	introducerEntries IntroducerEntryRepository,
	userIndex UserIndexRepository,
	idGen IDGenerator,
	balances BalanceInvalidator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:         txManager,
		banks:             banks,
		websites:          websites,
		users:             users,
		directEntries:     directEntries,
		bankEntries:       bankEntries,
		websiteEntries:    websiteEntries,
		introducerEntries: introducerEntries,
		userIndex:         userIndex,
		idGen:             idGen,
		balances:          balances,
		metrics:           m,
		logger:            logger,
	}
}

// RecordDirectEntry writes a direct deposit or withdrawal and its user-index
// row in one transaction. The caller-supplied external transaction id must
// be unique across the ledger.
func (uc *LedgerUseCase) RecordDirectEntry(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	if entry.Type != domain.EntryDeposit && entry.Type != domain.EntryWithdraw {
		return nil, domain.ErrInvalidEntryType
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.directEntries.ExistsByTransactionID(ctx, entry.TransactionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTransactionExists
	}

	if _, err := uc.banks.GetByID(ctx, entry.BankID); err != nil {
		return nil, err
	}
	if _, err := uc.websites.GetByID(ctx, entry.WebsiteID); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, entry.UserID)
	if err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()
	entry.CreatedAt = time.Now().UTC()

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.directEntries.Create(txCtx, tx, entry); err != nil {
		return nil, err
	}
	if err := uc.userIndex.Add(txCtx, tx, entry.UserID, entry.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	uc.accrueIntroducerShare(ctx, user, entry)

	uc.observeEntry(domain.EntryKindDirect, entry.Type, entry.Amount)
	uc.invalidateDirect(ctx, entry)

	uc.logger.Info().
		Str("entry_id", entry.ID).
		Str("transaction_id", entry.TransactionID).
		Str("type", string(entry.Type)).
		Str("user_id", entry.UserID).
		Msg("direct entry recorded")

	return entry, nil
}

// accrueIntroducerShare books the introducer's cut of a deposit as an
// introducer-side entry. Failure to accrue is logged, not fatal: the
// introducer ledger can be corrected manually.
func (uc *LedgerUseCase) accrueIntroducerShare(ctx context.Context, user *domain.UserProfile, entry *domain.Transaction) {
	if entry.Type != domain.EntryDeposit || user.IntroducerUserID == "" || user.IntroducerPercentage.IsZero() {
		return
	}

	share := entry.Amount.Mul(user.IntroducerPercentage).Div(decimal.NewFromInt(100))
	if share.IsZero() {
		return
	}

	introEntry := &domain.IntroducerTransaction{
		ID:               uc.idGen.Generate(),
		IntroducerUserID: user.IntroducerUserID,
		Type:             domain.EntryDeposit,
		Amount:           share,
		Remark:           "introducer share of " + entry.TransactionID,
		SubAdminID:       entry.SubAdminID,
		SubAdminName:     entry.SubAdminName,
		CreatedAt:        time.Now().UTC(),
	}

	if err := uc.introducerEntries.Create(ctx, introEntry); err != nil {
		uc.logger.Error().Err(err).
			Str("intro_user_id", user.IntroducerUserID).
			Str("entry_id", entry.ID).
			Msg("failed to accrue introducer share")
		return
	}

	uc.observeEntry(domain.EntryKindIntroducer, domain.EntryDeposit, share)
	if uc.balances != nil {
		uc.balances.Invalidate(ctx, domain.AccountKindIntroducer, user.IntroducerUserID)
	}
}

// RecordBankEntry writes a bank-side ledger entry.
func (uc *LedgerUseCase) RecordBankEntry(ctx context.Context, entry *domain.BankTransaction) (*domain.BankTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.banks.GetByID(ctx, entry.BankID); err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()
	entry.CreatedAt = time.Now().UTC()

	if err := uc.bankEntries.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.observeEntry(domain.EntryKindBank, entry.Type, entry.DepositAmount.Add(entry.WithdrawAmount))
	if uc.balances != nil {
		uc.balances.Invalidate(ctx, domain.AccountKindBank, entry.BankID)
	}

	uc.logger.Info().Str("entry_id", entry.ID).Str("bank_id", entry.BankID).Str("type", string(entry.Type)).Msg("bank entry recorded")
	return entry, nil
}

// RecordWebsiteEntry writes a website-side ledger entry.
func (uc *LedgerUseCase) RecordWebsiteEntry(ctx context.Context, entry *domain.WebsiteTransaction) (*domain.WebsiteTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.websites.GetByID(ctx, entry.WebsiteID); err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()
	entry.CreatedAt = time.Now().UTC()

	if err := uc.websiteEntries.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.observeEntry(domain.EntryKindWebsite, entry.Type, entry.DepositAmount.Add(entry.WithdrawAmount))
	if uc.balances != nil {
		uc.balances.Invalidate(ctx, domain.AccountKindWebsite, entry.WebsiteID)
	}

	uc.logger.Info().Str("entry_id", entry.ID).Str("website_id", entry.WebsiteID).Str("type", string(entry.Type)).Msg("website entry recorded")
	return entry, nil
}

// RecordIntroducerEntry writes an introducer-side ledger entry.
func (uc *LedgerUseCase) RecordIntroducerEntry(ctx context.Context, entry *domain.IntroducerTransaction) (*domain.IntroducerTransaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.users.GetByID(ctx, entry.IntroducerUserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrIntroducerNotFound
		}
		return nil, err
	}

	entry.ID = uc.idGen.Generate()
	entry.CreatedAt = time.Now().UTC()

	if err := uc.introducerEntries.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.observeEntry(domain.EntryKindIntroducer, entry.Type, entry.Amount)
	if uc.balances != nil {
		uc.balances.Invalidate(ctx, domain.AccountKindIntroducer, entry.IntroducerUserID)
	}

	uc.logger.Info().Str("entry_id", entry.ID).Str("intro_user_id", entry.IntroducerUserID).Str("type", string(entry.Type)).Msg("introducer entry recorded")
	return entry, nil
}

// GetDirectEntry returns a single direct entry by id.
func (uc *LedgerUseCase) GetDirectEntry(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.directEntries.GetByID(ctx, id)
}

// ListUserEntries returns a page of a user's direct entries, newest first.
func (uc *LedgerUseCase) ListUserEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)
	return uc.directEntries.ListByUser(ctx, userID, limit, offset)
}

// LedgerTotals summarizes movement across the direct ledger.
type LedgerTotals struct {
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Net              decimal.Decimal `json:"net"`
}

// Totals returns deposit and withdrawal sums across all direct entries.
func (uc *LedgerUseCase) Totals(ctx context.Context) (*LedgerTotals, error) {
	deposits, err := uc.directEntries.SumAmountByType(ctx, domain.EntryDeposit)
	if err != nil {
		return nil, err
	}
	withdrawals, err := uc.directEntries.SumAmountByType(ctx, domain.EntryWithdraw)
	if err != nil {
		return nil, err
	}

	return &LedgerTotals{
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		Net:              deposits.Sub(withdrawals),
	}, nil
}

func (uc *LedgerUseCase) observeEntry(kind domain.EntryKind, entryType domain.EntryType, amount decimal.Decimal) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.EntriesRecorded.WithLabelValues(string(kind), string(entryType)).Inc()
	amt, _ := amount.Float64()
	uc.metrics.EntryAmount.Observe(amt)
}

func (uc *LedgerUseCase) invalidateDirect(ctx context.Context, entry *domain.Transaction) {
	if uc.balances == nil {
		return
	}
	uc.balances.Invalidate(ctx, domain.AccountKindBank, entry.BankID)
	uc.balances.Invalidate(ctx, domain.AccountKindWebsite, entry.WebsiteID)
}
