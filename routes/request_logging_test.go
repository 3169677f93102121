// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/humaidq/confidenceai/metrics"
)

func TestRequestLoggerObservesLatency(t *testing.T) {
	t.Parallel()

	registry := metrics.New()
	data := template.Data{}

	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.Map(data)
		c.Map(registry)
		c.Next()
	})
	f.Use(RequestLogger)
	f.Get("/", func(c flamego.Context) {
		data["Locale"] = "en"
		c.ResponseWriter().WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}

	if got := testutil.CollectAndCount(registry.Requests, "confidenceai_http_request_duration_seconds"); got != 1 {
		t.Fatalf("expected one latency series, got %d", got)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, want: "203.0.113.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.7"}, want: "198.51.100.7"},
	}

	for _, tt := range tests {
		var got string

		f := flamego.New()
		f.Get("/", func(c flamego.Context) {
			got = clientIP(c)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range tt.headers {
			req.Header.Set(k, v)
		}

		f.ServeHTTP(httptest.NewRecorder(), req)

		if got != tt.want {
			t.Errorf("%s: clientIP = %q, want %q", tt.name, got, tt.want)
		}
	}
}
