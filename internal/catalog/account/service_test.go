// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/catalog/internal/catalog/account"
	"github.com/taibuivan/catalog/internal/catalog/facade/facadetest"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	tokens, err := sec.NewTokenServiceFromPEM(privatePEM, publicPEM, "catalog.app")
	require.NoError(t, err)
	return tokens
}

func newService(t *testing.T, tokens account.TokenProvider) *account.Service {
	t.Helper()
	env := facadetest.New(t)
	return account.NewService(account.NewRepository(env.Backend), env.Deps, tokens)
}

/*
TestService_AddHashesPassword verifies that only a bcrypt hash is stored.
*/
func TestService_AddHashesPassword(t *testing.T) {
	service := newService(t, nil)

	created, err := service.Add(context.Background(), account.Request{Username: pointer.To(" alice "), Password: pointer.To("s3cret")})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "s3cret", created.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret", created.PasswordHash))

	loaded, err := service.Get(context.Background(), created.UUID)
	require.NoError(t, err)
	assert.Equal(t, created.PasswordHash, loaded.PasswordHash)
}

/*
TestService_Validation verifies field violations and the username conflict.
*/
func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	service := newService(t, nil)

	_, err := service.Add(ctx, account.Request{Username: pointer.To(""), Password: nil})
	assert.Equal(t, []string{"ACCOUNT_USERNAME_EMPTY", "ACCOUNT_PASSWORD_NULL"}, apperr.As(err).Codes())

	alice, err := service.Add(ctx, account.Request{Username: pointer.To("alice"), Password: pointer.To("one")})
	require.NoError(t, err)

	_, err = service.Add(ctx, account.Request{Username: pointer.To("Alice"), Password: pointer.To("two")})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"ACCOUNT_ALREADY_EXIST"}, appErr.Codes())
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)

	// Keeping the own username on update is not a conflict
	_, err = service.Update(ctx, alice.UUID, account.Request{Username: pointer.To("alice"), Password: pointer.To("three")})
	require.NoError(t, err)

	count, err := service.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

/*
TestService_UpdateNotExist verifies that a missing account stays a 404 next to field violations.
*/
func TestService_UpdateNotExist(t *testing.T) {
	service := newService(t, nil)

	_, err := service.Update(context.Background(), "0191b3a0-0000-7000-8000-000000000001", account.Request{Username: pointer.To(" "), Password: pointer.To("one")})
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, []string{"ACCOUNT_USERNAME_EMPTY", "ACCOUNT_NOT_EXIST"}, appErr.Codes())
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

/*
TestService_Login verifies token issuance and the uniform rejection of bad credentials.
*/
func TestService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := newTokenService(t)
	service := newService(t, tokens)

	created, err := service.Add(ctx, account.Request{Username: pointer.To("bob"), Password: pointer.To("hunter2")})
	require.NoError(t, err)

	session, err := service.Login(ctx, account.Credentials{Username: "bob", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, created.UUID, session.Account.UUID)

	claims, err := tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, created.UUID, claims.UserID)

	for _, credentials := range []account.Credentials{
		{Username: "bob", Password: "wrong"},
		{Username: "nobody", Password: "hunter2"},
		{Username: "", Password: ""},
	} {
		_, err := service.Login(ctx, credentials)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus, credentials.Username)
	}

	_, err = newService(t, nil).Login(ctx, account.Credentials{Username: "bob", Password: "hunter2"})
	assert.Equal(t, http.StatusServiceUnavailable, apperr.As(err).HTTPStatus)
}

/*
TestHandler verifies that responses never expose the password hash.
*/
func TestHandler(t *testing.T) {
	router := account.NewHandler(newService(t, newTokenService(t))).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"carol","password":"pw"}`)))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"carol"`)
	assert.NotContains(t, recorder.Body.String(), "password")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?page=1&limit=10", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"carol","password":"pw"}`)))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "access_token")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"carol","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestService_LoginRehashes verifies that an outdated work factor is upgraded on login.
*/
func TestService_LoginRehashes(t *testing.T) {
	ctx := context.Background()
	env := facadetest.New(t)
	repo := account.NewRepository(env.Backend)
	service := account.NewService(repo, env.Deps, newTokenService(t))

	created, err := service.Add(ctx, account.Request{Username: pointer.To("dave"), Password: pointer.To("pw")})
	require.NoError(t, err)

	weak, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	created.PasswordHash = string(weak)
	require.NoError(t, repo.Save(ctx, created))

	_, err = service.Login(ctx, account.Credentials{Username: "dave", Password: "pw"})
	require.NoError(t, err)

	loaded, err := service.Get(ctx, created.UUID)
	require.NoError(t, err)
	assert.False(t, sec.NeedsRehash(loaded.PasswordHash))
	assert.True(t, sec.CheckPasswordHash("pw", loaded.PasswordHash))

	_, err = service.Add(ctx, account.Request{Username: pointer.To("erin"), Password: pointer.To(strings.Repeat("x", 73))})
	assert.Equal(t, []string{"ACCOUNT_PASSWORD_TOO_LONG"}, apperr.As(err).Codes())
}
