package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind identifies which directory an account lives in.
type AccountKind string

const (
	AccountKindBank       AccountKind = "Bank"
	AccountKindWebsite    AccountKind = "Website"
	AccountKindIntroducer AccountKind = "Introducer"
	AccountKindUser       AccountKind = "User"
)

// Bank is a master record for a bank account the house moves money through.
type Bank struct {
	ID                string     `json:"id"`
	Name              string     `json:"bankName"`
	AccountHolderName string     `json:"accountHolderName"`
	AccountNumber     string     `json:"accountNumber"`
	IFSCCode          string     `json:"ifscCode"`
	UPIID             string     `json:"upiId"`
	UPIAppName        string     `json:"upiAppName"`
	UPINumber         string     `json:"upiNumber"`
	SubAdmins         []SubAdmin `json:"subAdmins,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Website is a master record for a payment website account.
type Website struct {
	ID        string     `json:"id"`
	Name      string     `json:"websiteName"`
	SubAdmins []SubAdmin `json:"subAdmins,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UserProfile is an end user. A user with a non-zero introducer percentage
// acts as an introducer and accrues introducer-side ledger entries.
type UserProfile struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"userName"`
	ContactNumber        string          `json:"contactNumber"`
	IntroducerUserID     string          `json:"introducersUserId"`
	IntroducerPercentage decimal.Decimal `json:"introducerPercentage"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// ValidateIntroducerPercentage enforces the stricter of the two legacy rule
// sets: the percentage must lie in [0, 100].
func ValidateIntroducerPercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidPercentage
	}
	return nil
}
