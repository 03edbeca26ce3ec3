package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/infrastructure/metrics"
)

// BalanceUseCase computes net balances by folding the four ledger
// collections with per-kind sign rules. It is a pure read path: eventually
// consistent under concurrent writes, never transactional.
type BalanceUseCase struct {
	banks             BankRepository
	websites          WebsiteRepository
	users             UserRepository
	directEntries     DirectEntryRepository
	bankEntries       BankEntryRepository
	websiteEntries    WebsiteEntryRepository
	introducerEntries IntroducerEntryRepository
	requests          ChangeRequestRepository
	cache             Cache
	metrics           *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase. cache and metrics may be nil.
func NewBalanceUseCase(
	banks BankRepository,
	websites WebsiteRepository,
	users UserRepository,
	directEntries DirectEntryRepository,
	bankEntries BankEntryRepository,
	websiteEntries WebsiteEntryRepository,
	introducerEntries IntroducerEntryRepository,
	requests ChangeRequestRepository,
	cache Cache,
	m *metrics.Metrics,
) *BalanceUseCase {
	return &BalanceUseCase{
		banks:             banks,
		websites:          websites,
		users:             users,
		directEntries:     directEntries,
		bankEntries:       bankEntries,
		websiteEntries:    websiteEntries,
		introducerEntries: introducerEntries,
		requests:          requests,
		cache:             cache,
		metrics:           m,
	}
}

// ComputeBalance returns the net balance for an account. Negative balances
// are valid output and represent a house liability or overdraft.
func (uc *BalanceUseCase) ComputeBalance(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, balanceCacheKey(kind, accountID)); err == nil {
			if d, perr := decimal.NewFromString(cached); perr == nil {
				if uc.metrics != nil {
					uc.metrics.BalanceCacheHits.Inc()
				}
				return d, nil
			}
		}
		if uc.metrics != nil {
			uc.metrics.BalanceCacheMisses.Inc()
		}
	}

	start := time.Now()

	balance, err := uc.recompute(ctx, accountID, kind)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.metrics != nil {
		uc.metrics.BalanceComputations.WithLabelValues(string(kind)).Inc()
		uc.metrics.BalanceComputeDuration.Observe(time.Since(start).Seconds())
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, balanceCacheKey(kind, accountID), balance.String(), BalanceCacheTTL)
	}

	return balance, nil
}

// Recompute bypasses the cache and folds from scratch. It is the ground
// truth used by reconciliation checks and tests.
func (uc *BalanceUseCase) Recompute(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error) {
	return uc.recompute(ctx, accountID, kind)
}

func (uc *BalanceUseCase) recompute(ctx context.Context, accountID string, kind domain.AccountKind) (decimal.Decimal, error) {
	switch kind {
	case domain.AccountKindBank:
		return uc.bankBalance(ctx, accountID)
	case domain.AccountKindWebsite:
		return uc.websiteBalance(ctx, accountID)
	case domain.AccountKindIntroducer:
		return uc.introducerBalance(ctx, accountID)
	default:
		return decimal.Zero, fmt.Errorf("cannot compute balance for account kind %q", kind)
	}
}

// bankBalance folds bank-side entries, direct entries referencing the bank,
// and approved-but-unarchived manual adjustments still in the request store.
func (uc *BalanceUseCase) bankBalance(ctx context.Context, bankID string) (decimal.Decimal, error) {
	if _, err := uc.banks.GetByID(ctx, bankID); err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero

	sideEntries, err := uc.bankEntries.ListByBank(ctx, bankID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, e := range sideEntries {
		balance = balance.Add(e.DepositAmount).Sub(e.WithdrawAmount)
	}

	direct, err := uc.directEntries.ListByBank(ctx, bankID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, e := range direct {
		if e.Type == domain.EntryDeposit {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.BankCharges.Add(e.Amount))
		}
	}

	adjustments, err := uc.requests.ListApprovedBankAdjustments(ctx, bankID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, req := range adjustments {
		switch snapshotEntryType(req.Snapshot) {
		case domain.EntryManualBankDeposit:
			balance = balance.Add(snapshotDecimal(req.Snapshot, "depositAmount"))
		case domain.EntryManualBankWithdraw:
			balance = balance.Sub(snapshotDecimal(req.Snapshot, "withdrawAmount"))
		}
	}

	return balance, nil
}

// websiteBalance folds website-side entries and direct entries referencing
// the website. Depositing into a website is a liability from the house's
// perspective, hence the inverted signs on direct entries.
func (uc *BalanceUseCase) websiteBalance(ctx context.Context, websiteID string) (decimal.Decimal, error) {
	if _, err := uc.websites.GetByID(ctx, websiteID); err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero

	sideEntries, err := uc.websiteEntries.ListByWebsite(ctx, websiteID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, e := range sideEntries {
		balance = balance.Add(e.DepositAmount).Sub(e.WithdrawAmount)
	}

	direct, err := uc.directEntries.ListByWebsite(ctx, websiteID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, e := range direct {
		if e.Type == domain.EntryDeposit {
			balance = balance.Sub(e.Bonus.Add(e.Amount))
		} else {
			balance = balance.Add(e.Amount)
		}
	}

	return balance, nil
}

func (uc *BalanceUseCase) introducerBalance(ctx context.Context, introUserID string) (decimal.Decimal, error) {
	if _, err := uc.users.GetByID(ctx, introUserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return decimal.Zero, domain.ErrIntroducerNotFound
		}
		return decimal.Zero, err
	}

	entries, err := uc.introducerEntries.ListByIntroducer(ctx, introUserID)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, e := range entries {
		if e.Type == domain.EntryDeposit {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}
	}

	return balance, nil
}

// IntroducerDue pairs the booked introducer balance with the amount still
// owed against an externally supplied live balance.
type IntroducerDue struct {
	Balance    decimal.Decimal
	CurrentDue decimal.Decimal
}

// NetIntroducerDue composes the introducer balance with a live balance
// figure: currentDue = liveBalance - bookedBalance.
func (uc *BalanceUseCase) NetIntroducerDue(ctx context.Context, introUserID string, liveBalance decimal.Decimal) (*IntroducerDue, error) {
	booked, err := uc.recompute(ctx, introUserID, domain.AccountKindIntroducer)
	if err != nil {
		return nil, err
	}

	return &IntroducerDue{
		Balance:    booked,
		CurrentDue: liveBalance.Sub(booked),
	}, nil
}

// Invalidate drops the cached balance for an account. Called by the approval
// workflow after a resolution touches the account's entries.
func (uc *BalanceUseCase) Invalidate(ctx context.Context, kind domain.AccountKind, accountID string) {
	if uc.cache == nil || accountID == "" {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey(kind, accountID))
}

func balanceCacheKey(kind domain.AccountKind, accountID string) string {
	return fmt.Sprintf("balance:%s:%s", kind, accountID)
}

func snapshotEntryType(s domain.JSON) domain.EntryType {
	if v, ok := s["transactionType"].(string); ok {
		return domain.EntryType(v)
	}
	return ""
}

// snapshotDecimal reads an amount out of a stored snapshot. Snapshots are
// decoded with json.Number so large values survive the round trip without
// float64 truncation; the float64 case only covers snapshots built in-process
// from untyped maps.
func snapshotDecimal(s domain.JSON, key string) decimal.Decimal {
	switch v := s[key].(type) {
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	}
	return decimal.Zero
}
