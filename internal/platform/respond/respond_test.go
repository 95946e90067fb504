// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/pagination"
)

type observed struct{ codes []string }

func (o *observed) ObserveViolations(codes []string) { o.codes = append(o.codes, codes...) }

/*
TestError_Envelope verifies the error body, the overall status and violation reporting.
*/
func TestError_Envelope(t *testing.T) {
	observer := &observed{}

	err := apperr.ValidationFailed(
		apperr.FieldError{Field: "czech_name", Code: "MOVIE_CZECH_NAME_EMPTY", Message: "Czech name mustn't be empty string.", HTTPStatus: http.StatusUnprocessableEntity},
		apperr.FieldError{Field: "genres", Code: "GENRE_NOT_EXIST", Message: "Genre doesn't exist.", HTTPStatus: http.StatusNotFound},
	)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/movies", nil)
	request = request.WithContext(respond.WithViolationObserver(request.Context(), observer))

	recorder := httptest.NewRecorder()
	respond.Error(recorder, request, err)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		Error   string `json:"error"`
		Code    string `json:"code"`
		Details []struct {
			Field   string `json:"field"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Details, 2)
	assert.Equal(t, "Czech name mustn't be empty string.", body.Details[0].Message)
	assert.Equal(t, []string{"MOVIE_CZECH_NAME_EMPTY", "GENRE_NOT_EXIST"}, observer.codes)
}

/*
TestError_HidesInternalCause ensures unexpected errors never leak to clients.
*/
func TestError_HidesInternalCause(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "relation")
}

/*
TestPaginated verifies the paged list envelope.
*/
func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, pagination.NewResult([]string{"a"}, 2, 1, 3))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":["a"],"paging_info":{"page_number":2,"pages_count":3}}`, recorder.Body.String())
}
