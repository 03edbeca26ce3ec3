package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
)

// Domain records already carry the API's JSON field names, so responses
// mostly wrap them in envelopes rather than re-mapping every field.

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// BalanceResponse represents a computed account balance.
type BalanceResponse struct {
	AccountID string             `json:"accountId"`
	Kind      domain.AccountKind `json:"kind"`
	Balance   decimal.Decimal    `json:"balance"`
}

// IntroducerDueResponse pairs the booked commission balance with the amount
// still owed against a live balance figure.
type IntroducerDueResponse struct {
	IntroUserID string          `json:"introUserId"`
	Balance     decimal.Decimal `json:"balance"`
	CurrentDue  decimal.Decimal `json:"currentDue"`
}

// TotalsResponse represents platform-wide deposit and withdrawal totals.
type TotalsResponse struct {
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Net              decimal.Decimal `json:"net"`
}

// ListBanksResponse wraps a page of banks.
type ListBanksResponse struct {
	Banks []*domain.Bank `json:"banks"`
	Total int64          `json:"total"`
}

// ListWebsitesResponse wraps a page of websites.
type ListWebsitesResponse struct {
	Websites []*domain.Website `json:"websites"`
	Total    int64             `json:"total"`
}

// ListUsersResponse wraps a page of client profiles.
type ListUsersResponse struct {
	Users []*domain.UserProfile `json:"users"`
	Total int64                 `json:"total"`
}

// ListEntriesResponse wraps a page of direct ledger entries.
type ListEntriesResponse struct {
	Entries []*domain.Transaction `json:"entries"`
	Total   int64                 `json:"total"`
}

// ListRequestsResponse wraps a page of pending change requests.
type ListRequestsResponse struct {
	Requests []*domain.PendingChangeRequest `json:"requests"`
	Total    int64                          `json:"total"`
}

// ListArchiveResponse wraps a page of archived records.
type ListArchiveResponse struct {
	Records []*domain.ArchiveRecord `json:"records"`
	Total   int64                   `json:"total"`
}
