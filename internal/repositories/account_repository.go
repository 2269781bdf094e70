package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"authhub/internal/models/db_models"
)

type AccountRepository interface {
	// InsertTx persists the account and its associated preference row in a
	// single transaction. Returns gorm.ErrDuplicatedKey on an email clash.
	InsertTx(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ListAll(ctx context.Context) ([]db_models.Account, error)
	Update(ctx context.Context, account *db_models.Account) error
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	UpdateLastLogin(ctx context.Context, id string, lastLogin int64) error
	Delete(ctx context.Context, id string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(account).Error
	})
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Preload("Preference").First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// FindByEmail compares case-insensitively; accounts store email lowercased
// but older rows may predate that, so the query lowers both sides.
func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).
		First(&account, "LOWER(email) = ?", strings.ToLower(email)).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Preload("Preference").Order("created_at").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Save(account).Error
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (a *accountRepository) UpdateLastLogin(ctx context.Context, id string, lastLogin int64) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("last_login", lastLogin).Error
}

// Delete removes the account and, via the FK constraint, its preference row.
func (a *accountRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&db_models.Preference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Account{}, "id = ?", id).Error
	})
}
