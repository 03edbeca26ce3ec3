package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// CreateBankRequest represents a request to register a bank account.
type CreateBankRequest struct {
	BankName          string            `json:"bankName"`
	AccountHolderName string            `json:"accountHolderName"`
	AccountNumber     string            `json:"accountNumber"`
	IFSCCode          string            `json:"ifscCode"`
	UPIID             string            `json:"upiId"`
	UPIAppName        string            `json:"upiAppName"`
	UPINumber         string            `json:"upiNumber"`
	SubAdmins         []domain.SubAdmin `json:"subAdmins,omitempty"`
}

// ToDomain converts to the domain bank record.
func (r *CreateBankRequest) ToDomain() *domain.Bank {
	return &domain.Bank{
		Name:              r.BankName,
		AccountHolderName: r.AccountHolderName,
		AccountNumber:     r.AccountNumber,
		IFSCCode:          r.IFSCCode,
		UPIID:             r.UPIID,
		UPIAppName:        r.UPIAppName,
		UPINumber:         r.UPINumber,
		SubAdmins:         r.SubAdmins,
	}
}

// CreateWebsiteRequest represents a request to register a website.
type CreateWebsiteRequest struct {
	WebsiteName string            `json:"websiteName"`
	SubAdmins   []domain.SubAdmin `json:"subAdmins,omitempty"`
}

// ToDomain converts to the domain website record.
func (r *CreateWebsiteRequest) ToDomain() *domain.Website {
	return &domain.Website{
		Name:      r.WebsiteName,
		SubAdmins: r.SubAdmins,
	}
}

// CreateUserRequest represents a request to register a client profile.
type CreateUserRequest struct {
	UserName             string          `json:"userName"`
	ContactNumber        string          `json:"contactNumber"`
	IntroducersUserID    string          `json:"introducersUserId"`
	IntroducerPercentage decimal.Decimal `json:"introducerPercentage"`
}

// ToDomain converts to the domain user profile.
func (r *CreateUserRequest) ToDomain() *domain.UserProfile {
	return &domain.UserProfile{
		Name:                 r.UserName,
		ContactNumber:        r.ContactNumber,
		IntroducerUserID:     r.IntroducersUserID,
		IntroducerPercentage: r.IntroducerPercentage,
	}
}

// RecordDirectEntryRequest represents a client deposit or withdrawal.
type RecordDirectEntryRequest struct {
	TransactionID   string           `json:"transactionID"`
	TransactionType domain.EntryType `json:"transactionType"`
	Amount          decimal.Decimal  `json:"amount"`
	Bonus           decimal.Decimal  `json:"bonus"`
	BankCharges     decimal.Decimal  `json:"bankCharges"`
	PaymentMethod   string           `json:"paymentMethod"`
	UserID          string           `json:"userId"`
	BankID          string           `json:"bankId"`
	WebsiteID       string           `json:"websiteId"`
	Remark          string           `json:"remark"`
}

// ToDomain converts to a domain transaction, stamping the recording actor.
func (r *RecordDirectEntryRequest) ToDomain(actor *domain.Actor) *domain.Transaction {
	entry := &domain.Transaction{
		TransactionID: r.TransactionID,
		Type:          r.TransactionType,
		Amount:        r.Amount,
		Bonus:         r.Bonus,
		BankCharges:   r.BankCharges,
		PaymentMethod: r.PaymentMethod,
		UserID:        r.UserID,
		BankID:        r.BankID,
		WebsiteID:     r.WebsiteID,
		Remark:        r.Remark,
	}
	if actor != nil {
		entry.SubAdminID = actor.ID
		entry.SubAdminName = actor.Name
	}
	return entry
}

// RecordSideEntryRequest represents a manual adjustment on a bank or website
// account ledger.
type RecordSideEntryRequest struct {
	BankID          string           `json:"bankId,omitempty"`
	WebsiteID       string           `json:"websiteId,omitempty"`
	TransactionType domain.EntryType `json:"transactionType"`
	DepositAmount   decimal.Decimal  `json:"depositAmount"`
	WithdrawAmount  decimal.Decimal  `json:"withdrawAmount"`
	Remark          string           `json:"remark"`
}

// ToBankDomain converts to a bank ledger entry.
func (r *RecordSideEntryRequest) ToBankDomain(actor *domain.Actor) *domain.BankTransaction {
	entry := &domain.BankTransaction{
		BankID:         r.BankID,
		Type:           r.TransactionType,
		DepositAmount:  r.DepositAmount,
		WithdrawAmount: r.WithdrawAmount,
		Remark:         r.Remark,
	}
	if actor != nil {
		entry.SubAdminID = actor.ID
		entry.SubAdminName = actor.Name
	}
	return entry
}

// ToWebsiteDomain converts to a website ledger entry.
func (r *RecordSideEntryRequest) ToWebsiteDomain(actor *domain.Actor) *domain.WebsiteTransaction {
	entry := &domain.WebsiteTransaction{
		WebsiteID:      r.WebsiteID,
		Type:           r.TransactionType,
		DepositAmount:  r.DepositAmount,
		WithdrawAmount: r.WithdrawAmount,
		Remark:         r.Remark,
	}
	if actor != nil {
		entry.SubAdminID = actor.ID
		entry.SubAdminName = actor.Name
	}
	return entry
}

// RecordIntroducerEntryRequest represents a commission ledger entry.
type RecordIntroducerEntryRequest struct {
	IntroUserID     string           `json:"introUserId"`
	TransactionType domain.EntryType `json:"transactionType"`
	Amount          decimal.Decimal  `json:"amount"`
	Remark          string           `json:"remark"`
}

// ToDomain converts to an introducer ledger entry.
func (r *RecordIntroducerEntryRequest) ToDomain(actor *domain.Actor) *domain.IntroducerTransaction {
	entry := &domain.IntroducerTransaction{
		IntroducerUserID: r.IntroUserID,
		Type:             r.TransactionType,
		Amount:           r.Amount,
		Remark:           r.Remark,
	}
	if actor != nil {
		entry.SubAdminID = actor.ID
		entry.SubAdminName = actor.Name
	}
	return entry
}

// ProposeChangeRequest stages an edit or delete for approval.
type ProposeChangeRequest struct {
	TargetID   string            `json:"targetId"`
	TargetType domain.TargetType `json:"targetType"`
	EntryKind  domain.EntryKind  `json:"entryKind,omitempty"`
	Operation  domain.Operation  `json:"operation"`
	Payload    domain.JSON       `json:"payload,omitempty"`
}

// ToUseCaseInput converts to use case input, stamping the proposing actor.
func (r *ProposeChangeRequest) ToUseCaseInput(actor *domain.Actor) usecase.ProposeChangeInput {
	input := usecase.ProposeChangeInput{
		TargetID:   r.TargetID,
		TargetType: r.TargetType,
		EntryKind:  r.EntryKind,
		Operation:  r.Operation,
		Payload:    r.Payload,
	}
	if actor != nil {
		input.Actor = actor.Name
	}
	return input
}
