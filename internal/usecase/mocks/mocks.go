package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khelbook/backoffice/internal/domain"
	"github.com/khelbook/backoffice/internal/usecase"
)

// MockBankRepository is a mock implementation of BankRepository.
type MockBankRepository struct {
	mu    sync.RWMutex
	banks map[string]*domain.Bank

	CreateFunc       func(ctx context.Context, bank *domain.Bank) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Bank, error)
	UpdateFunc       func(ctx context.Context, tx usecase.Transaction, bank *domain.Bank) error
	DeleteFunc       func(ctx context.Context, tx usecase.Transaction, id string) error
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Bank, error)
	ExistsByNameFunc func(ctx context.Context, name, excludingID string) (bool, error)
}

func NewMockBankRepository() *MockBankRepository {
	return &MockBankRepository{
		banks: make(map[string]*domain.Bank),
	}
}

func (m *MockBankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bank)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banks[bank.ID] = bank
	return nil
}

func (m *MockBankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.banks[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBankNotFound
}

func (m *MockBankRepository) Update(ctx context.Context, tx usecase.Transaction, bank *domain.Bank) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, bank)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.banks[bank.ID]; !ok {
		return domain.ErrBankNotFound
	}
	m.banks[bank.ID] = bank
	return nil
}

func (m *MockBankRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.banks[id]; !ok {
		return domain.ErrBankNotFound
	}
	delete(m.banks, id)
	return nil
}

func (m *MockBankRepository) List(ctx context.Context, limit, offset int) ([]*domain.Bank, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var banks []*domain.Bank
	for _, b := range m.banks {
		banks = append(banks, b)
	}
	return banks, nil
}

func (m *MockBankRepository) ExistsByName(ctx context.Context, name, excludingID string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name, excludingID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.banks {
		if b.Name == name && b.ID != excludingID {
			return true, nil
		}
	}
	return false, nil
}

// MockWebsiteRepository is a mock implementation of WebsiteRepository.
type MockWebsiteRepository struct {
	mu    sync.RWMutex
	sites map[string]*domain.Website

	CreateFunc       func(ctx context.Context, site *domain.Website) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Website, error)
	UpdateFunc       func(ctx context.Context, tx usecase.Transaction, site *domain.Website) error
	DeleteFunc       func(ctx context.Context, tx usecase.Transaction, id string) error
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Website, error)
	ExistsByNameFunc func(ctx context.Context, name, excludingID string) (bool, error)
}

func NewMockWebsiteRepository() *MockWebsiteRepository {
	return &MockWebsiteRepository{
		sites: make(map[string]*domain.Website),
	}
}

func (m *MockWebsiteRepository) Create(ctx context.Context, site *domain.Website) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, site)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sites[site.ID] = site
	return nil
}

func (m *MockWebsiteRepository) GetByID(ctx context.Context, id string) (*domain.Website, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sites[id]; ok {
		return s, nil
	}
	return nil, domain.ErrWebsiteNotFound
}

func (m *MockWebsiteRepository) Update(ctx context.Context, tx usecase.Transaction, site *domain.Website) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, site)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sites[site.ID]; !ok {
		return domain.ErrWebsiteNotFound
	}
	m.sites[site.ID] = site
	return nil
}

func (m *MockWebsiteRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sites[id]; !ok {
		return domain.ErrWebsiteNotFound
	}
	delete(m.sites, id)
	return nil
}

func (m *MockWebsiteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Website, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sites []*domain.Website
	for _, s := range m.sites {
		sites = append(sites, s)
	}
	return sites, nil
}

func (m *MockWebsiteRepository) ExistsByName(ctx context.Context, name, excludingID string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name, excludingID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sites {
		if s.Name == name && s.ID != excludingID {
			return true, nil
		}
	}
	return false, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.UserProfile

	CreateFunc  func(ctx context.Context, user *domain.UserProfile) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.UserProfile, error)
	UpdateFunc  func(ctx context.Context, tx usecase.Transaction, user *domain.UserProfile) error
	DeleteFunc  func(ctx context.Context, tx usecase.Transaction, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.UserProfile),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.UserProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, tx usecase.Transaction, user *domain.UserProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var users []*domain.UserProfile
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

// MockDirectEntryRepository is a mock implementation of DirectEntryRepository.
type MockDirectEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.Transaction

	CreateFunc                func(ctx context.Context, tx usecase.Transaction, entry *domain.Transaction) error
	GetByIDFunc               func(ctx context.Context, id string) (*domain.Transaction, error)
	ExistsByTransactionIDFunc func(ctx context.Context, transactionID string) (bool, error)
	ListByBankFunc            func(ctx context.Context, bankID string) ([]*domain.Transaction, error)
	ListByWebsiteFunc         func(ctx context.Context, websiteID string) ([]*domain.Transaction, error)
	ListByUserFunc            func(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	SumAmountByTypeFunc       func(ctx context.Context, entryType domain.EntryType) (decimal.Decimal, error)
	UpdateFunc                func(ctx context.Context, tx usecase.Transaction, entry *domain.Transaction) error
	DeleteFunc                func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockDirectEntryRepository() *MockDirectEntryRepository {
	return &MockDirectEntryRepository{
		entries: make(map[string]*domain.Transaction),
	}
}

func (m *MockDirectEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockDirectEntryRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockDirectEntryRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	if m.ExistsByTransactionIDFunc != nil {
		return m.ExistsByTransactionIDFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockDirectEntryRepository) ListByBank(ctx context.Context, bankID string) ([]*domain.Transaction, error) {
	if m.ListByBankFunc != nil {
		return m.ListByBankFunc(ctx, bankID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Transaction
	for _, e := range m.entries {
		if e.BankID == bankID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockDirectEntryRepository) ListByWebsite(ctx context.Context, websiteID string) ([]*domain.Transaction, error) {
	if m.ListByWebsiteFunc != nil {
		return m.ListByWebsiteFunc(ctx, websiteID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Transaction
	for _, e := range m.entries {
		if e.WebsiteID == websiteID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockDirectEntryRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Transaction
	for _, e := range m.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockDirectEntryRepository) SumAmountByType(ctx context.Context, entryType domain.EntryType) (decimal.Decimal, error) {
	if m.SumAmountByTypeFunc != nil {
		return m.SumAmountByTypeFunc(ctx, entryType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.entries {
		if e.Type == entryType {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (m *MockDirectEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockDirectEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.entries, id)
	return nil
}

// MockBankEntryRepository is a mock implementation of BankEntryRepository.
type MockBankEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.BankTransaction

	CreateFunc     func(ctx context.Context, entry *domain.BankTransaction) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.BankTransaction, error)
	ListByBankFunc func(ctx context.Context, bankID string) ([]*domain.BankTransaction, error)
	UpdateFunc     func(ctx context.Context, tx usecase.Transaction, entry *domain.BankTransaction) error
	DeleteFunc     func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockBankEntryRepository() *MockBankEntryRepository {
	return &MockBankEntryRepository{
		entries: make(map[string]*domain.BankTransaction),
	}
}

func (m *MockBankEntryRepository) Create(ctx context.Context, entry *domain.BankTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockBankEntryRepository) GetByID(ctx context.Context, id string) (*domain.BankTransaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockBankEntryRepository) ListByBank(ctx context.Context, bankID string) ([]*domain.BankTransaction, error) {
	if m.ListByBankFunc != nil {
		return m.ListByBankFunc(ctx, bankID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.BankTransaction
	for _, e := range m.entries {
		if e.BankID == bankID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockBankEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.BankTransaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockBankEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.entries, id)
	return nil
}

// MockWebsiteEntryRepository is a mock implementation of WebsiteEntryRepository.
type MockWebsiteEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.WebsiteTransaction

	CreateFunc        func(ctx context.Context, entry *domain.WebsiteTransaction) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.WebsiteTransaction, error)
	ListByWebsiteFunc func(ctx context.Context, websiteID string) ([]*domain.WebsiteTransaction, error)
	UpdateFunc        func(ctx context.Context, tx usecase.Transaction, entry *domain.WebsiteTransaction) error
	DeleteFunc        func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockWebsiteEntryRepository() *MockWebsiteEntryRepository {
	return &MockWebsiteEntryRepository{
		entries: make(map[string]*domain.WebsiteTransaction),
	}
}

func (m *MockWebsiteEntryRepository) Create(ctx context.Context, entry *domain.WebsiteTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockWebsiteEntryRepository) GetByID(ctx context.Context, id string) (*domain.WebsiteTransaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockWebsiteEntryRepository) ListByWebsite(ctx context.Context, websiteID string) ([]*domain.WebsiteTransaction, error) {
	if m.ListByWebsiteFunc != nil {
		return m.ListByWebsiteFunc(ctx, websiteID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.WebsiteTransaction
	for _, e := range m.entries {
		if e.WebsiteID == websiteID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockWebsiteEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.WebsiteTransaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockWebsiteEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.entries, id)
	return nil
}

// MockIntroducerEntryRepository is a mock implementation of IntroducerEntryRepository.
type MockIntroducerEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.IntroducerTransaction

	CreateFunc           func(ctx context.Context, entry *domain.IntroducerTransaction) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.IntroducerTransaction, error)
	ListByIntroducerFunc func(ctx context.Context, introUserID string) ([]*domain.IntroducerTransaction, error)
	UpdateFunc           func(ctx context.Context, tx usecase.Transaction, entry *domain.IntroducerTransaction) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockIntroducerEntryRepository() *MockIntroducerEntryRepository {
	return &MockIntroducerEntryRepository{
		entries: make(map[string]*domain.IntroducerTransaction),
	}
}

func (m *MockIntroducerEntryRepository) Create(ctx context.Context, entry *domain.IntroducerTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockIntroducerEntryRepository) GetByID(ctx context.Context, id string) (*domain.IntroducerTransaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockIntroducerEntryRepository) ListByIntroducer(ctx context.Context, introUserID string) ([]*domain.IntroducerTransaction, error) {
	if m.ListByIntroducerFunc != nil {
		return m.ListByIntroducerFunc(ctx, introUserID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.IntroducerTransaction
	for _, e := range m.entries {
		if e.IntroducerUserID == introUserID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockIntroducerEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.IntroducerTransaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockIntroducerEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.entries, id)
	return nil
}

// MockChangeRequestRepository is a mock implementation of ChangeRequestRepository.
type MockChangeRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*domain.PendingChangeRequest

	CreateFunc                      func(ctx context.Context, req *domain.PendingChangeRequest) error
	GetByIDFunc                     func(ctx context.Context, id string) (*domain.PendingChangeRequest, error)
	DeleteFunc                      func(ctx context.Context, tx usecase.Transaction, id string) error
	ListPendingFunc                 func(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error)
	ListApprovedBankAdjustmentsFunc func(ctx context.Context, bankID string) ([]*domain.PendingChangeRequest, error)
}

func NewMockChangeRequestRepository() *MockChangeRequestRepository {
	return &MockChangeRequestRepository{
		requests: make(map[string]*domain.PendingChangeRequest),
	}
}

func (m *MockChangeRequestRepository) Create(ctx context.Context, req *domain.PendingChangeRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.requests {
		if existing.TargetID == req.TargetID && existing.Operation == req.Operation && !existing.IsApproved {
			return domain.ErrRequestAlreadyPending
		}
	}
	m.requests[req.ID] = req
	return nil
}

func (m *MockChangeRequestRepository) GetByID(ctx context.Context, id string) (*domain.PendingChangeRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRequestNotFound
}

func (m *MockChangeRequestRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.requests[id]; !ok {
		return domain.ErrRequestNotFound
	}
	delete(m.requests, id)
	return nil
}

func (m *MockChangeRequestRepository) ListPending(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.PendingChangeRequest, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, targetType, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var requests []*domain.PendingChangeRequest
	for _, r := range m.requests {
		if r.IsApproved {
			continue
		}
		if targetType != "" && r.TargetType != targetType {
			continue
		}
		requests = append(requests, r)
	}
	return requests, nil
}

func (m *MockChangeRequestRepository) ListApprovedBankAdjustments(ctx context.Context, bankID string) ([]*domain.PendingChangeRequest, error) {
	if m.ListApprovedBankAdjustmentsFunc != nil {
		return m.ListApprovedBankAdjustmentsFunc(ctx, bankID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var requests []*domain.PendingChangeRequest
	for _, r := range m.requests {
		if !r.IsApproved {
			continue
		}
		if id, _ := r.Snapshot["bankId"].(string); id == bankID {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

// MockArchiveRepository is a mock implementation of ArchiveRepository.
type MockArchiveRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.ArchiveRecord

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, rec *domain.ArchiveRecord) error
	ListByTypeFunc func(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error)
}

func NewMockArchiveRepository() *MockArchiveRepository {
	return &MockArchiveRepository{
		records: make(map[string]*domain.ArchiveRecord),
	}
}

func (m *MockArchiveRepository) Create(ctx context.Context, tx usecase.Transaction, rec *domain.ArchiveRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, rec)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.records {
		if existing.SourceID == rec.SourceID {
			return nil
		}
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *MockArchiveRepository) ListByType(ctx context.Context, targetType domain.TargetType, limit, offset int) ([]*domain.ArchiveRecord, error) {
	if m.ListByTypeFunc != nil {
		return m.ListByTypeFunc(ctx, targetType, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.ArchiveRecord
	for _, r := range m.records {
		if r.TargetType == targetType {
			records = append(records, r)
		}
	}
	return records, nil
}

// MockUserIndexRepository is a mock implementation of UserIndexRepository.
type MockUserIndexRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string]bool

	AddFunc          func(ctx context.Context, tx usecase.Transaction, userID, entryID string) error
	RemoveFunc       func(ctx context.Context, tx usecase.Transaction, userID, entryID string) (bool, error)
	ListEntryIDsFunc func(ctx context.Context, userID string) ([]string, error)
}

func NewMockUserIndexRepository() *MockUserIndexRepository {
	return &MockUserIndexRepository{
		entries: make(map[string]map[string]bool),
	}
}

func (m *MockUserIndexRepository) Add(ctx context.Context, tx usecase.Transaction, userID, entryID string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, tx, userID, entryID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[userID] == nil {
		m.entries[userID] = make(map[string]bool)
	}
	m.entries[userID][entryID] = true
	return nil
}

func (m *MockUserIndexRepository) Remove(ctx context.Context, tx usecase.Transaction, userID, entryID string) (bool, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, tx, userID, entryID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[userID] == nil || !m.entries[userID][entryID] {
		return false, nil
	}
	delete(m.entries[userID], entryID)
	return true, nil
}

func (m *MockUserIndexRepository) ListEntryIDs(ctx context.Context, userID string) ([]string, error) {
	if m.ListEntryIDsFunc != nil {
		return m.ListEntryIDsFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id := range m.entries[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockRetrier is a mock implementation of Retrier that runs the operation
// once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
