// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package register_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/catalog/register"
)

/*
TestTable_Exists verifies the lookup format used by the validation pipeline.
*/
func TestTable_Exists(t *testing.T) {
	table := register.Default()

	tests := []struct {
		id   string
		want bool
	}{
		{"LANGUAGE:CZ", true},
		{"language:cz", true},
		{"GAME_FORMAT:STEAM", true},
		{"BOOK_FORMAT:STEAM", false},
		{"LANGUAGE:XX", false},
		{"CZ", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ok, err := table.Exists(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

/*
TestTable_Values verifies listing and key filtering.
*/
func TestTable_Values(t *testing.T) {
	table := register.Default()

	all, err := table.Values("language", nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	some, err := table.Values(register.Language, []string{"cz", "en", "xx"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "CZ", some[0].Key)

	_, err = table.Values("COLOR", nil)
	assert.ErrorIs(t, err, register.ErrRegisterNotExist)

	assert.Equal(t, []string{register.BookFormat, register.GameFormat, register.Language}, table.Registers())
}

/*
TestHandler_ListValues verifies the HTTP listing and the unknown register error.
*/
func TestHandler_ListValues(t *testing.T) {
	router := register.NewHandler(register.Default()).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/LANGUAGE?keys=jp", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []register.Value `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Japanese", body.Data[0].Label)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/COLOR", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "REGISTER_NOT_EXIST")
}
