// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/platform/metrics"
)

func TestCollector_Records(t *testing.T) {
	collector := metrics.New()

	collector.Duplicated("show", 9)
	collector.Duplicated("show", 3)
	collector.ObserveViolations([]string{"MOVIE_CZECH_NAME_EMPTY", "MOVIE_CZECH_NAME_EMPTY"})
	collector.ObserveRequest(http.MethodGet, http.StatusOK, 10*time.Millisecond)

	recorder := httptest.NewRecorder()
	collector.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `catalog_http_requests_total{method="GET",status="200"} 1`)
	assert.Contains(t, body, `catalog_duplications_total{kind="show"} 2`)
	assert.Contains(t, body, `catalog_duplicated_nodes_total{kind="show"} 12`)
	assert.Contains(t, body, `catalog_validation_violations_total{code="MOVIE_CZECH_NAME_EMPTY"} 2`)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var collector *metrics.Collector

	assert.NotPanics(t, func() {
		collector.Duplicated("movie", 1)
		collector.ObserveViolations([]string{"X"})
		collector.ObserveRequest(http.MethodGet, http.StatusOK, time.Second)
	})
}
