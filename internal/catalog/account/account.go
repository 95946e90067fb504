// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package account manages the catalog users who can sign in and act on the catalog.
//
// Passwords are only ever stored as bcrypt hashes. Login issues a signed JWT
// whose username claim becomes the audit actor of subsequent requests.
package account

import (
	"net/http"
	"time"

	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/entity"
	"github.com/taibuivan/catalog/internal/platform/errcode"
)

// Kind is the store kind of accounts.
const Kind = "account"

// Account is a catalog user.
//
// PasswordHash is persisted with the document; handlers respond with [Profile].
type Account struct {
	entity.Base
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Profile is the public view of an [Account].
type Profile struct {
	ID       int64  `json:"id"`
	UUID     string `json:"uuid"`
	Username string `json:"username"`

	audit.Metadata
}

// Request is the payload of add and update.
type Request struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Credentials is the payload of login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Account     Profile   `json:"account"`
}

// Filter holds the parameters of a paged account search.
type Filter struct {
	Username string
	Page     int
	Limit    int
}

// Violations
var (
	Entity        = errcode.NewEntity("ACCOUNT", "Account")
	FieldUsername = Entity.Field("username", "Username")
	FieldPassword = Entity.Field("password", "Password")

	PasswordTooLong = errcode.Def{
		Code:    "ACCOUNT_PASSWORD_TOO_LONG",
		Message: "Password mustn't be longer than 72 bytes.",
		Status:  http.StatusUnprocessableEntity,
	}
)

// Profile strips the password hash.
func (account *Account) Profile() Profile {
	return Profile{
		ID:       account.ID,
		UUID:     account.UUID,
		Username: account.Username,
		Metadata: account.Metadata,
	}
}

// # Document

func (account *Account) Descendants() []*entity.Base { return nil }

func (account *Account) Facets() map[string]string {
	return map[string]string{"username": account.Username}
}

// # Identity

// Accounts are never duplicated; the node methods only let the engine assign identities.

func (account *Account) Copy() duplicate.Node {
	return &Account{Username: account.Username, PasswordHash: account.PasswordHash}
}

func (account *Account) Children() []duplicate.Node { return nil }
func (account *Account) Adopt(duplicate.Node)       {}
