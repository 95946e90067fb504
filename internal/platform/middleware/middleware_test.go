// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/middleware"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

type fakeVerifier struct{}

func (fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &sec.AuthClaims{UserID: "1", Username: "alice"}, nil
}

// actorHandler echoes the resolved audit actor.
var actorHandler = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
	_, _ = writer.Write([]byte(audit.Actor(request.Context())))
})

/*
TestAuthenticate verifies anonymous pass-through, actor resolution and rejection of bad tokens.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   middleware.TokenVerifier
		wantStatus int
		wantBody   string
	}{
		{"anonymous", "", fakeVerifier{}, http.StatusOK, "anonymous"},
		{"valid_token", "Bearer good", fakeVerifier{}, http.StatusOK, "alice"},
		{"no_verifier_configured", "Bearer good", nil, http.StatusOK, "anonymous"},
		{"invalid_token", "Bearer bad", fakeVerifier{}, http.StatusUnauthorized, ""},
		{"malformed_header", "Token good", fakeVerifier{}, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			middleware.Authenticate(tt.verifier)(actorHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

type requestLog struct {
	method string
	status int
}

func (r *requestLog) ObserveRequest(method string, status int, _ time.Duration) {
	r.method, r.status = method, status
}

/*
TestInstrument records the final status written by the handler.
*/
func TestInstrument(t *testing.T) {
	observer := &requestLog{}
	handler := middleware.Instrument(observer)(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusUnprocessableEntity)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil))

	assert.Equal(t, http.MethodPost, observer.method)
	assert.Equal(t, http.StatusUnprocessableEntity, observer.status)
}

type violationLog struct{ codes []string }

func (v *violationLog) ObserveViolations(codes []string) { v.codes = append(v.codes, codes...) }

/*
TestReportViolations verifies that error responses of wrapped handlers report their codes.
*/
func TestReportViolations(t *testing.T) {
	observer := &violationLog{}
	handler := middleware.ReportViolations(observer)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.ValidationFailed(apperr.FieldError{
			Field:      "name",
			Code:       "GENRE_NAME_EMPTY",
			Message:    "Name mustn't be empty string.",
			HTTPStatus: http.StatusUnprocessableEntity,
		}))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/genres", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, []string{"GENRE_NAME_EMPTY"}, observer.codes)
}

/*
TestRequestID echoes a client-provided correlation id and generates one otherwise.
*/
func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "abc", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, recorder.Header().Get("X-Request-ID"), 36)
}

/*
TestRateLimit verifies that a client exceeding its burst is told when to retry.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	call := func(ip string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	assert.Equal(t, http.StatusOK, call("192.0.2.1").Code)
	assert.Equal(t, http.StatusOK, call("192.0.2.1").Code)

	recorder := call("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get("Retry-After"))
	assert.Contains(t, recorder.Body.String(), "RATE_LIMITED")

	// Buckets are per client
	assert.Equal(t, http.StatusOK, call("192.0.2.2").Code)
}

/*
TestPanicRecovery verifies that a panicking handler yields the standard 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := middleware.PanicRecovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, recorder.Body.String(), "boom")
}

type corsConfig struct{ development bool }

func (c corsConfig) IsDevelopment() bool { return c.development }
func (c corsConfig) AllowsOrigin(origin string) bool {
	return strings.HasSuffix(origin, ".example.org")
}

/*
TestCORS verifies origin filtering outside development and pre-flight handling.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(corsConfig{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	call := func(method, origin string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, "/api/v1/movies", nil)
		request.Header.Set("Origin", origin)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := call(http.MethodGet, "https://app.example.org")
	assert.Equal(t, "https://app.example.org", recorder.Header().Get("Access-Control-Allow-Origin"))

	recorder = call(http.MethodGet, "https://evil.test")
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))

	recorder = call(http.MethodOptions, "https://app.example.org")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
