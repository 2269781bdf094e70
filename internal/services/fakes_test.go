package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"authhub/internal/models/db_models"
)

// In-memory repositories honoring the same contracts the gorm-backed ones
// document: unique email surfaces as gorm.ErrDuplicatedKey, InsertTx
// persists the preference association alongside the account.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) InsertTx(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return gorm.ErrDuplicatedKey
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now().Unix()
	account.CreatedAt = now
	account.UpdatedAt = now
	if account.Preference != nil {
		if account.Preference.ID == uuid.Nil {
			account.Preference.ID = uuid.New()
		}
		account.Preference.AccountID = account.ID
	}
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if strings.EqualFold(account.Email, email) {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) ListAll(ctx context.Context) ([]db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		out = append(out, *account)
	}
	return out, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *account
	f.accounts[account.ID.String()] = &copied
	return nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.accounts[id]; ok {
		account.PasswordHash = hash
	}
	return nil
}

func (f *fakeAccountRepo) UpdateLastLogin(ctx context.Context, id string, lastLogin int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account, ok := f.accounts[id]; ok {
		account.LastLogin = lastLogin
	}
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.accounts)
}

type fakePreferenceRepo struct {
	mu    sync.Mutex
	prefs map[uuid.UUID]*db_models.Preference
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: make(map[uuid.UUID]*db_models.Preference)}
}

func (f *fakePreferenceRepo) GetOrCreate(ctx context.Context, accountID uuid.UUID) (*db_models.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pref, ok := f.prefs[accountID]; ok {
		copied := *pref
		return &copied, nil
	}
	pref := db_models.DefaultPreference(accountID)
	pref.ID = uuid.New()
	f.prefs[accountID] = pref
	copied := *pref
	return &copied, nil
}

func (f *fakePreferenceRepo) Update(ctx context.Context, pref *db_models.Preference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *pref
	f.prefs[pref.AccountID] = &copied
	return nil
}
