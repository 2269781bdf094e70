package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authhub/internal/config"
	"authhub/internal/models/db_models"
	"authhub/internal/models/request_models"
	"authhub/internal/policy"
	"authhub/pkg/utils"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:         "test-secret",
		AccessTokenTTL:    time.Hour,
		RefreshTokenTTL:   7 * 24 * time.Hour,
		BcryptCost:        bcrypt.MinCost,
		PasswordMinLength: 8,
	}
}

func newAccountService(t *testing.T) (AccountServiceInterface, *fakeAccountRepo) {
	t.Helper()
	repo := newFakeAccountRepo()
	return NewAccountService(repo, testConfig()), repo
}

func registerAccount(t *testing.T, svc AccountServiceInterface, email, username, role string) *db_models.Account {
	t.Helper()
	account, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "StrongPass123!",
		Role:     role,
	})
	require.NoError(t, err)
	return account
}

func TestRegister_Defaults(t *testing.T) {
	svc, _ := newAccountService(t)

	account := registerAccount(t, svc, "A@x.com", "alpha", "")

	assert.Equal(t, "a@x.com", account.Email, "email stored lowercased")
	assert.Equal(t, db_models.RoleStandard, account.Role)
	assert.False(t, account.Staff)
	assert.True(t, account.Active)
	assert.NotEqual(t, "StrongPass123!", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "StrongPass123!"))

	require.NotNil(t, account.Preference, "preference provisioned with the account")
	assert.Equal(t, account.ID, account.Preference.AccountID)
	assert.Equal(t, "light", account.Preference.Theme)
	assert.Equal(t, "list", account.Preference.ViewMode)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc, repo := newAccountService(t)

	registerAccount(t, svc, "a@x.com", "alpha", "")

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:    "A@X.COM",
		Username: "beta",
		Password: "StrongPass123!",
	})
	assert.ErrorIs(t, err, utils.ErrDuplicateEmail)
	assert.Equal(t, 1, repo.count(), "no new row on duplicate")
}

func TestRegister_WeakPasswords(t *testing.T) {
	svc, repo := newAccountService(t)

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!"},
		{"common", "password123"},
		{"entirely numeric", "473829105628"},
		{"similar to email", "jane.doe@example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), request_models.RegisterRequest{
				Email:    "jane.doe@example.com",
				Username: "janedoe",
				Password: tc.password,
			})
			assert.ErrorIs(t, err, utils.ErrWeakPassword)
		})
	}

	assert.Equal(t, 0, repo.count())
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAccountService(t)
	registerAccount(t, svc, "a@x.com", "alpha", "")

	account, err := svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "A@x.com", Password: "StrongPass123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", account.Email)
	assert.NotZero(t, account.LastLogin)
}

func TestAuthenticate_SingleErrorForAllFailures(t *testing.T) {
	svc, repo := newAccountService(t)
	created := registerAccount(t, svc, "a@x.com", "alpha", "")

	_, wrongPassword := svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "WrongPass123!",
	})
	_, unknownEmail := svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "nobody@x.com", Password: "StrongPass123!",
	})

	assert.ErrorIs(t, wrongPassword, utils.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, utils.ErrInvalidCredentials)
	// identical error value: nothing to tell the two cases apart
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	created.Active = false
	require.NoError(t, repo.Update(context.Background(), created))
	_, inactive := svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "StrongPass123!",
	})
	assert.ErrorIs(t, inactive, utils.ErrInvalidCredentials)
}

func TestChangePassword_WrongOldLeavesHashIntact(t *testing.T) {
	svc, _ := newAccountService(t)
	account := registerAccount(t, svc, "a@x.com", "alpha", "")

	err := svc.ChangePassword(context.Background(), account.ID.String(), request_models.ChangePasswordRequest{
		OldPassword: "WrongPass123!",
		NewPassword: "AnotherPass456!",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidOldPassword)

	// original password still authenticates
	_, err = svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "StrongPass123!",
	})
	assert.NoError(t, err)
}

func TestChangePassword_WeakNewPasswordRejected(t *testing.T) {
	svc, _ := newAccountService(t)
	account := registerAccount(t, svc, "a@x.com", "alpha", "")

	err := svc.ChangePassword(context.Background(), account.ID.String(), request_models.ChangePasswordRequest{
		OldPassword: "StrongPass123!",
		NewPassword: "123456",
	})
	assert.ErrorIs(t, err, utils.ErrWeakPassword)

	_, err = svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "StrongPass123!",
	})
	assert.NoError(t, err)
}

func TestChangePassword_Success(t *testing.T) {
	svc, _ := newAccountService(t)
	account := registerAccount(t, svc, "a@x.com", "alpha", "")

	err := svc.ChangePassword(context.Background(), account.ID.String(), request_models.ChangePasswordRequest{
		OldPassword: "StrongPass123!",
		NewPassword: "AnotherPass456!",
	})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "AnotherPass456!",
	})
	assert.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "StrongPass123!",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestListAccounts_Shaping(t *testing.T) {
	svc, _ := newAccountService(t)
	standard := registerAccount(t, svc, "a@x.com", "alpha", "")
	registerAccount(t, svc, "b@x.com", "beta", "")
	admin := registerAccount(t, svc, "c@x.com", "gamma", "admin")

	all, err := svc.ListAccounts(context.Background(), policy.Caller{
		AccountID: admin.ID.String(), Role: admin.Role,
	})
	require.NoError(t, err)
	assert.Len(t, all, 3, "admin sees every account")

	own, err := svc.ListAccounts(context.Background(), policy.Caller{
		AccountID: standard.ID.String(), Role: standard.Role,
	})
	require.NoError(t, err)
	require.Len(t, own, 1, "standard caller sees only their row")
	assert.Equal(t, standard.ID, own[0].ID)
}

func TestListAccounts_StaffFlagGrantsFullList(t *testing.T) {
	svc, repo := newAccountService(t)
	staff := registerAccount(t, svc, "a@x.com", "alpha", "")
	registerAccount(t, svc, "b@x.com", "beta", "")

	staff.Staff = true
	require.NoError(t, repo.Update(context.Background(), staff))

	all, err := svc.ListAccounts(context.Background(), policy.Caller{
		AccountID: staff.ID.String(), Role: db_models.RoleStandard, Staff: true,
	})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateAccount_OwnershipOrAdmin(t *testing.T) {
	svc, _ := newAccountService(t)
	a := registerAccount(t, svc, "a@x.com", "alpha", "")
	b := registerAccount(t, svc, "b@x.com", "beta", "")
	admin := registerAccount(t, svc, "c@x.com", "gamma", "admin")

	newName := "renamed"

	// standard caller mutating another account is denied
	_, err := svc.UpdateAccount(context.Background(),
		policy.Caller{AccountID: a.ID.String(), Role: a.Role},
		b.ID.String(),
		request_models.UpdateAccountRequest{Username: &newName})
	assert.ErrorIs(t, err, utils.ErrPermissionDenied)

	// the owner may mutate their own account
	updated, err := svc.UpdateAccount(context.Background(),
		policy.Caller{AccountID: b.ID.String(), Role: b.Role},
		b.ID.String(),
		request_models.UpdateAccountRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)

	// an admin may mutate anyone
	adminName := "admin-renamed"
	updated, err = svc.UpdateAccount(context.Background(),
		policy.Caller{AccountID: admin.ID.String(), Role: admin.Role},
		b.ID.String(),
		request_models.UpdateAccountRequest{Username: &adminName})
	require.NoError(t, err)
	assert.Equal(t, "admin-renamed", updated.Username)
}

func TestUpdateAccount_OwnerCannotElevateRole(t *testing.T) {
	svc, _ := newAccountService(t)
	a := registerAccount(t, svc, "a@x.com", "alpha", "")
	admin := registerAccount(t, svc, "c@x.com", "gamma", "admin")

	elevated := db_models.RoleAdmin

	updated, err := svc.UpdateAccount(context.Background(),
		policy.Caller{AccountID: a.ID.String(), Role: a.Role},
		a.ID.String(),
		request_models.UpdateAccountRequest{Role: &elevated})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleStandard, updated.Role, "role change ignored for non-gated caller")

	updated, err = svc.UpdateAccount(context.Background(),
		policy.Caller{AccountID: admin.ID.String(), Role: admin.Role},
		a.ID.String(),
		request_models.UpdateAccountRequest{Role: &elevated})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, updated.Role)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo := newAccountService(t)
	a := registerAccount(t, svc, "a@x.com", "alpha", "")
	b := registerAccount(t, svc, "b@x.com", "beta", "")
	admin := registerAccount(t, svc, "c@x.com", "gamma", "admin")

	err := svc.DeleteAccount(context.Background(),
		policy.Caller{AccountID: a.ID.String(), Role: a.Role}, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrPermissionDenied)

	err = svc.DeleteAccount(context.Background(),
		policy.Caller{AccountID: admin.ID.String(), Role: admin.Role}, b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.count())

	err = svc.DeleteAccount(context.Background(),
		policy.Caller{AccountID: admin.ID.String(), Role: admin.Role}, b.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetAccount_SafeReadForAnyCaller(t *testing.T) {
	svc, _ := newAccountService(t)
	a := registerAccount(t, svc, "a@x.com", "alpha", "")
	b := registerAccount(t, svc, "b@x.com", "beta", "")

	got, err := svc.GetAccount(context.Background(),
		policy.Caller{AccountID: a.ID.String(), Role: a.Role}, b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = svc.GetAccount(context.Background(),
		policy.Caller{AccountID: a.ID.String(), Role: a.Role}, "2f0c5b9e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
