/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/confidenceai/logging"
	"github.com/humaidq/confidenceai/metrics"
)

var requestLogger = logging.Logger(logging.SourceWebRequest)

// RequestLogger logs request metadata and timing for each HTTP request and
// records the latency histogram.
func RequestLogger(c flamego.Context, data template.Data, registry *metrics.Registry) {
	start := time.Now()

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	elapsed := time.Since(start)
	registry.Requests.WithLabelValues(c.Request().Method, strconv.Itoa(status)).Observe(elapsed.Seconds())

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c)...)

	if locale, _ := data["Locale"].(string); locale != "" {
		fields = append(fields, "locale", locale)
	}

	if useCase, _ := data["UseCase"].(string); useCase != "" {
		fields = append(fields, "use_case", useCase)
	}

	requestLogger.Info("request", fields...)
}

func baseRequestFields(c flamego.Context) []interface{} {
	return []interface{}{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", clientIP(c),
		"user_agent", c.Request().UserAgent(),
	}
}

func clientIP(c flamego.Context) string {
	forwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		if idx := strings.Index(forwardedFor, ","); idx != -1 {
			forwardedFor = forwardedFor[:idx]
		}

		if ip := strings.TrimSpace(forwardedFor); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(c.Request().Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return c.RemoteAddr()
}
