package domain

import "errors"

var (
	// Directory errors
	ErrBankNotFound       = errors.New("bank not found")
	ErrWebsiteNotFound    = errors.New("website not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrIntroducerNotFound = errors.New("introducer not found")
	ErrDuplicateName      = errors.New("an account with this name already exists")
	ErrInvalidPercentage  = errors.New("introducer percentage must be between 0 and 100")

	// Ledger errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionExists   = errors.New("transaction already exists")
	ErrNegativeEntryAmount = errors.New("entry amounts must be non-negative")
	ErrInvalidEntryType    = errors.New("invalid entry type")

	// Approval workflow errors
	ErrRequestNotFound       = errors.New("change request not found")
	ErrRequestAlreadyPending = errors.New("request already sent for approval")
	ErrUnknownTargetType     = errors.New("unknown change request target type")
	ErrUnknownDecision       = errors.New("unknown resolution decision")

	// ErrIndexEntryMissing signals upstream data corruption: a direct entry
	// scheduled for deletion has no matching row in the owning user's
	// transaction index. Surfaced, never silently ignored.
	ErrIndexEntryMissing = errors.New("transaction missing from user index")
)
