// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/internal/platform/store"
	"github.com/taibuivan/catalog/internal/platform/validate"
	"github.com/taibuivan/catalog/pkg/pagination"
)

// TokenProvider issues access tokens for authenticated accounts.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// NewRepository binds accounts to a store backend.
func NewRepository(backend store.Backend) *store.Repository[*Account] {
	return store.NewRepository(backend, Kind, func() *Account { return &Account{} })
}

// Service implements account management and login.
type Service struct {
	repo   *store.Repository[*Account]
	deps   facade.Deps
	tokens TokenProvider
}

/*
NewService constructs a new account [Service].

Parameters:
  - repo: *store.Repository[*Account]
  - deps: facade.Deps
  - tokens: TokenProvider (nil disables login)

Returns:
  - *Service
*/
func NewService(repo *store.Repository[*Account], deps facade.Deps, tokens TokenProvider) *Service {
	return &Service{repo: repo, deps: deps, tokens: tokens}
}

func (service *Service) Get(context context.Context, uuid string) (*Account, error) {
	return facade.Load(context, service.repo, uuid, Entity)
}

func (service *Service) Search(context context.Context, filter Filter) (pagination.Result[*Account], error) {
	criteria := store.Criteria{}
	if filter.Username != "" {
		criteria.Contains = map[string]string{"username": filter.Username}
	}
	return facade.Search(context, service.repo, criteria, filter.Page, filter.Limit)
}

/*
Add registers a new account.

Parameters:
  - context: context.Context
  - request: Request (Username and plain-text password)

Returns:
  - *Account: The persisted account carrying the bcrypt hash
  - error: ACCOUNT_*_NULL/EMPTY or ACCOUNT_ALREADY_EXIST (422)

Flow:
 1. Validate fields and username uniqueness together.
 2. Hash the password using Bcrypt.
 3. Assign identity and persist.
*/
func (service *Service) Add(context context.Context, request Request) (*Account, error) {
	validator, err := service.validate(context, request, "")
	if err != nil {
		return nil, err
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(*request.Password)
	if err != nil {
		return nil, fmt.Errorf("account_password_hash_failed: %w", err)
	}

	account := &Account{Username: strings.TrimSpace(*request.Username), PasswordHash: hash}
	if err := facade.Create(context, service.deps, service.repo, account); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("account_created", slog.String("uuid", account.UUID), slog.String("username", account.Username))
	return account, nil
}

// Update renames the account and replaces its password.
func (service *Service) Update(context context.Context, uuid string, request Request) (*Account, error) {
	account, err := service.Get(context, uuid)
	found, err := facade.Found(err, Entity)
	if err != nil {
		return nil, err
	}

	self := ""
	if found {
		self = account.UUID
	}

	validator, err := service.validate(context, request, self)
	if err != nil {
		return nil, err
	}
	if err := facade.Settle(context, service.deps, validator, Entity, found); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(*request.Password)
	if err != nil {
		return nil, fmt.Errorf("account_password_hash_failed: %w", err)
	}

	account.Username = strings.TrimSpace(*request.Username)
	account.PasswordHash = hash
	service.deps.Stamper.Updated(context, account)

	if err := service.repo.Save(context, account); err != nil {
		return nil, err
	}

	service.deps.Logger.Info("account_updated", slog.String("uuid", account.UUID))
	return account, nil
}

func (service *Service) Remove(context context.Context, uuid string) error {
	if err := facade.Remove(context, service.repo, uuid, Entity); err != nil {
		return err
	}

	service.deps.Logger.Warn("account_deleted", slog.String("uuid", uuid))
	return nil
}

// Count returns the number of stored accounts.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

/*
Login verifies credentials and issues an access token.

Parameters:
  - context: context.Context
  - credentials: Credentials

Returns:
  - *Session: The signed token and the account profile
  - error: UNAUTHORIZED (401) for unknown usernames or wrong passwords,
    SERVICE_UNAVAILABLE (503) when no signing keys are configured
*/
func (service *Service) Login(context context.Context, credentials Credentials) (*Session, error) {
	if service.tokens == nil {
		return nil, apperr.ServiceUnavailable("Token signing is not configured")
	}

	// ── 1. Fetch Account ──────────────────────────────────────────────────

	account, err := service.findByUsername(context, credentials.Username)
	if err != nil {
		return nil, err
	}

	// Same answer for unknown usernames and wrong passwords.
	if account == nil || !sec.CheckPasswordHash(credentials.Password, account.PasswordHash) {
		service.deps.Logger.Warn("account_login_rejected", slog.String("username", credentials.Username))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	service.rehash(context, account, credentials.Password)

	// ── 2. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokens.GenerateAccessToken(account.UUID, account.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("account_token_generation_failed: %w", err)
	}

	service.deps.Logger.Info("account_logged_in", slog.String("uuid", account.UUID))
	return &Session{
		AccessToken: token,
		ExpiresAt:   service.deps.Stamper.Now().Add(constants.AccessTokenTTL),
		Account:     account.Profile(),
	}, nil
}

// rehash upgrades a hash produced with an outdated work factor. Failures only
// postpone the upgrade to the next login.
func (service *Service) rehash(context context.Context, account *Account, password string) {
	if !sec.NeedsRehash(account.PasswordHash) {
		return
	}

	hash, err := sec.HashPassword(password)
	if err == nil {
		account.PasswordHash = hash
		err = service.repo.Save(context, account)
	}
	if err != nil {
		service.deps.Logger.Warn("account_rehash_failed", slog.String("uuid", account.UUID), slog.Any("error", err))
		return
	}
	service.deps.Logger.Info("account_rehashed", slog.String("uuid", account.UUID))
}

// findByUsername returns the account with the given (folded) username, or nil.
func (service *Service) findByUsername(context context.Context, username string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}

	found, _, err := service.repo.Search(context, store.Criteria{Equals: map[string]string{"username": username}}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// validate collects field violations and the uniqueness conflict. self is the
// uuid of the account being updated, empty on add.
// The returned error is a lookup failure, never a violation.
func (service *Service) validate(context context.Context, request Request, self string) (*validate.Validator, error) {
	validator := service.deps.Validator()

	validator.NotEmptyString(FieldUsername, request.Username).
		NotEmptyString(FieldPassword, request.Password).
		Check(PasswordTooLong, FieldPassword.JSON, request.Password != nil && len(*request.Password) > sec.MaxPasswordBytes)

	if request.Username != nil {
		existing, err := service.findByUsername(context, *request.Username)
		if err != nil {
			return nil, err
		}
		validator.Check(Entity.AlreadyExist(), FieldUsername.JSON, existing != nil && existing.UUID != self)
	}
	return validator, nil
}
