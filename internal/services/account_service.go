package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"authhub/internal/config"
	"authhub/internal/models/db_models"
	"authhub/internal/models/request_models"
	"authhub/internal/policy"
	"authhub/internal/repositories"
	"authhub/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.Account, error)
	Authenticate(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, error)
	ChangePassword(ctx context.Context, accountID string, request request_models.ChangePasswordRequest) error
	GetById(ctx context.Context, id string) (*db_models.Account, error)
	UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*db_models.Account, error)
	ListAccounts(ctx context.Context, caller policy.Caller) ([]db_models.Account, error)
	GetAccount(ctx context.Context, caller policy.Caller, id string) (*db_models.Account, error)
	UpdateAccount(ctx context.Context, caller policy.Caller, id string, request request_models.UpdateAccountRequest) (*db_models.Account, error)
	DeleteAccount(ctx context.Context, caller policy.Caller, id string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	policy      utils.PasswordPolicy
	bcryptCost  int
}

func NewAccountService(accountRepo repositories.AccountRepository, cfg config.Config) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		policy:      utils.PasswordPolicy{MinLength: cfg.PasswordMinLength},
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates the account and its default preference row in one
// transaction. The preference is attached explicitly here rather than by a
// save-time hook, so the provisioning path is visible in the workflow.
func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*db_models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateEmail
	}

	if err := a.policy.Validate(request.Password,
		email, request.Username, request.FirstName, request.LastName); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := request.Role
	if role == "" {
		role = db_models.RoleStandard
	}

	newAccount := &db_models.Account{
		Email:        email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hashedPassword,
		Role:         role,
		Active:       true,
		// attached here so gorm creates both rows in the same transaction,
		// filling the preference FK from the generated account ID
		Preference: db_models.DefaultPreference(uuid.Nil),
	}

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		// backstop for a concurrent registration winning the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateEmail
		}
		return nil, utils.ErrDatabaseError
	}

	return newAccount, nil
}

// Authenticate deliberately collapses unknown email, wrong password and a
// disabled account into one error so callers cannot enumerate accounts.
func (a *AccountService) Authenticate(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	account.LastLogin = time.Now().Unix()
	if err := a.accountRepo.UpdateLastLogin(ctx, account.ID.String(), account.LastLogin); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return account, nil
}

// ChangePassword verifies the old password, validates the new one against
// the same policy as registration, and replaces only the hash column.
// Either both checks pass and the hash changes, or nothing changes.
func (a *AccountService) ChangePassword(ctx context.Context, accountID string, request request_models.ChangePasswordRequest) error {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.OldPassword); err != nil {
		return utils.ErrInvalidOldPassword
	}

	if err := a.policy.Validate(request.NewPassword,
		account.Email, account.Username, account.FirstName, account.LastName); err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword, a.bcryptCost)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, accountID, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetById(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}
	return account, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID string, request request_models.UpdateProfileRequest) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}

	if request.Username != nil {
		account.Username = *request.Username
	}
	if request.FirstName != nil {
		account.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		account.LastName = *request.LastName
	}
	account.LastLogin = time.Now().Unix()

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}

// ListAccounts shapes the result by caller privilege: role-gated callers
// see every account, everyone else sees only their own row. This is
// response shaping, not an authorization failure.
func (a *AccountService) ListAccounts(ctx context.Context, caller policy.Caller) ([]db_models.Account, error) {
	if policy.RoleGate(caller) {
		accounts, err := a.accountRepo.ListAll(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return accounts, nil
	}

	account, err := a.accountRepo.FindById(ctx, caller.AccountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return []db_models.Account{}, nil
	}
	return []db_models.Account{*account}, nil
}

// GetAccount is a safe operation under the ownership-or-admin gate, so any
// authenticated caller may read any account record.
func (a *AccountService) GetAccount(ctx context.Context, caller policy.Caller, id string) (*db_models.Account, error) {
	if !policy.OwnershipOrAdmin(caller, id, true) {
		return nil, utils.ErrPermissionDenied
	}
	return a.GetById(ctx, id)
}

func (a *AccountService) UpdateAccount(ctx context.Context, caller policy.Caller, id string, request request_models.UpdateAccountRequest) (*db_models.Account, error) {
	// Gate before lookup: a forbidden caller learns nothing about whether
	// the target exists.
	if !policy.OwnershipOrAdmin(caller, id, false) {
		return nil, utils.ErrPermissionDenied
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}

	if request.Username != nil {
		account.Username = *request.Username
	}
	if request.FirstName != nil {
		account.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		account.LastName = *request.LastName
	}
	// Role and active changes are reserved for role-gated callers; owners
	// cannot elevate themselves.
	if policy.RoleGate(caller) {
		if request.Role != nil {
			account.Role = *request.Role
		}
		if request.Active != nil {
			account.Active = *request.Active
		}
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}

// DeleteAccount removes the account and, with it, its preference row.
func (a *AccountService) DeleteAccount(ctx context.Context, caller policy.Caller, id string) error {
	if !policy.OwnershipOrAdmin(caller, id, false) {
		return utils.ErrPermissionDenied
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrNotFound
	}

	if err := a.accountRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
