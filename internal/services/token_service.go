package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"authhub/internal/config"
	"authhub/internal/models/db_models"
	"authhub/internal/models/response_models"
	"authhub/internal/repositories"
	"authhub/pkg/blacklist"
	"authhub/pkg/utils"
)

type TokenServiceInterface interface {
	IssuePair(account *db_models.Account) (*response_models.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.TokenPairResponse, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type TokenService struct {
	cfg         config.Config
	ledger      blacklist.Ledger
	accountRepo repositories.AccountRepository
}

func NewTokenService(cfg config.Config, ledger blacklist.Ledger, accountRepo repositories.AccountRepository) TokenServiceInterface {
	return &TokenService{
		cfg:         cfg,
		ledger:      ledger,
		accountRepo: accountRepo,
	}
}

// IssuePair mints an access/refresh pair with independent expiries. The
// access token carries role and staff for stateless checks; the refresh
// token carries only a jti the ledger can track.
func (t *TokenService) IssuePair(account *db_models.Account) (*response_models.TokenPairResponse, error) {
	secret := []byte(t.cfg.JWTSecret)

	accessClaims := utils.NewClaims(
		account.ID.String(), account.Role, account.Staff,
		utils.TokenTypeAccess, uuid.New().String(), t.cfg.AccessTokenTTL)
	access, err := utils.SignToken(accessClaims, secret)
	if err != nil {
		return nil, err
	}

	refreshClaims := utils.NewClaims(
		account.ID.String(), "", false,
		utils.TokenTypeRefresh, uuid.New().String(), t.cfg.RefreshTokenTTL)
	refresh, err := utils.SignToken(refreshClaims, secret)
	if err != nil {
		return nil, err
	}

	return &response_models.TokenPairResponse{
		Access:  access,
		Refresh: refresh,
	}, nil
}

// Refresh rotates a refresh token: the presented token is consumed in the
// ledger before the new pair is minted, so concurrent calls racing on the
// same token resolve to exactly one winner.
func (t *TokenService) Refresh(ctx context.Context, refreshToken string) (*response_models.TokenPairResponse, error) {
	claims, err := t.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	won, err := t.ledger.Consume(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	if err != nil {
		log.Printf("Blacklist ledger error: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if !won {
		return nil, utils.ErrTokenBlacklisted
	}

	account, err := t.accountRepo.FindById(ctx, claims.Subject)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		// The subject no longer exists (or is disabled); its credentials
		// are treated as revoked.
		return nil, utils.ErrTokenBlacklisted
	}

	return t.IssuePair(account)
}

// Revoke blacklists the presented refresh token immediately. Revoking an
// already-blacklisted token is not an error.
func (t *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := t.parseRefresh(refreshToken)
	if err != nil {
		return err
	}

	if err := t.ledger.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		log.Printf("Blacklist ledger error: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TokenService) parseRefresh(refreshToken string) (*utils.Claims, error) {
	claims, err := utils.ParseToken(refreshToken, []byte(t.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	if claims.TokenType != utils.TokenTypeRefresh || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, utils.ErrTokenMalformed
	}
	return claims, nil
}
