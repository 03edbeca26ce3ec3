package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tags a ledger entry with the movement it records.
type EntryType string

const (
	EntryDeposit  EntryType = "Deposit"
	EntryWithdraw EntryType = "Withdraw"

	// Manual adjustments staged through the approval workflow. While such an
	// adjustment is approved but not yet archived it still lives in the
	// change-request store and is folded into bank balances from there.
	EntryManualBankDeposit  EntryType = "Manual-Bank-Deposit"
	EntryManualBankWithdraw EntryType = "Manual-Bank-Withdraw"
)

// EntryKind discriminates the four append-only ledger collections.
type EntryKind string

const (
	EntryKindDirect     EntryKind = "direct"
	EntryKindBank       EntryKind = "bank"
	EntryKindWebsite    EntryKind = "website"
	EntryKindIntroducer EntryKind = "introducer"
)

// Transaction is a direct ledger entry: a user deposit or withdrawal routed
// through a bank and a website. Immutable once written, except through the
// approval workflow.
type Transaction struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transactionID"`
	Type          EntryType       `json:"transactionType"`
	Amount        decimal.Decimal `json:"amount"`
	Bonus         decimal.Decimal `json:"bonus"`
	BankCharges   decimal.Decimal `json:"bankCharges"`
	PaymentMethod string          `json:"paymentMethod"`
	UserID        string          `json:"userId"`
	BankID        string          `json:"bankId"`
	WebsiteID     string          `json:"websiteId"`
	Remark        string          `json:"remark"`
	SubAdminID    string          `json:"subAdminId"`
	SubAdminName  string          `json:"subAdminName"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// BankTransaction is a bank-side ledger entry. It carries separate deposit
// and withdraw amount columns rather than a signed amount.
type BankTransaction struct {
	ID             string          `json:"id"`
	BankID         string          `json:"bankId"`
	Type           EntryType       `json:"transactionType"`
	DepositAmount  decimal.Decimal `json:"depositAmount"`
	WithdrawAmount decimal.Decimal `json:"withdrawAmount"`
	Remark         string          `json:"remark"`
	SubAdminID     string          `json:"subAdminId"`
	SubAdminName   string          `json:"subAdminName"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// WebsiteTransaction is a website-side ledger entry.
type WebsiteTransaction struct {
	ID             string          `json:"id"`
	WebsiteID      string          `json:"websiteId"`
	Type           EntryType       `json:"transactionType"`
	DepositAmount  decimal.Decimal `json:"depositAmount"`
	WithdrawAmount decimal.Decimal `json:"withdrawAmount"`
	Remark         string          `json:"remark"`
	SubAdminID     string          `json:"subAdminId"`
	SubAdminName   string          `json:"subAdminName"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// IntroducerTransaction is an introducer-side ledger entry.
type IntroducerTransaction struct {
	ID               string          `json:"id"`
	IntroducerUserID string          `json:"introUserId"`
	Type             EntryType       `json:"transactionType"`
	Amount           decimal.Decimal `json:"amount"`
	Remark           string          `json:"remark"`
	SubAdminID       string          `json:"subAdminId"`
	SubAdminName     string          `json:"subAdminName"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Validate checks the non-negative amount invariant for a direct entry. The
// sign applied during reconciliation comes from the entry type, never from
// the stored amount.
func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() || t.Bonus.IsNegative() || t.BankCharges.IsNegative() {
		return ErrNegativeEntryAmount
	}
	return nil
}

// Validate checks the non-negative amount invariant for a bank-side entry.
func (t *BankTransaction) Validate() error {
	if t.DepositAmount.IsNegative() || t.WithdrawAmount.IsNegative() {
		return ErrNegativeEntryAmount
	}
	return nil
}

// Validate checks the non-negative amount invariant for a website-side entry.
func (t *WebsiteTransaction) Validate() error {
	if t.DepositAmount.IsNegative() || t.WithdrawAmount.IsNegative() {
		return ErrNegativeEntryAmount
	}
	return nil
}

// Validate checks the non-negative amount invariant for an introducer entry.
func (t *IntroducerTransaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrNegativeEntryAmount
	}
	return nil
}
