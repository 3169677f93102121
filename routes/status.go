/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/flamego/flamego"

	"github.com/humaidq/confidenceai/db"
)

const statusPingTimeout = 2 * time.Second

var (
	databaseEnabled = db.Enabled
	pingDatabase    = db.Ping
)

type statusResponse struct {
	Status   string `json:"status"`
	Sessions string `json:"sessions"`
}

// Healthz reports liveness and the state of the session store.
func Healthz(c flamego.Context) {
	resp := statusResponse{Status: "ok", Sessions: "memory"}
	code := http.StatusOK

	if databaseEnabled() {
		resp.Sessions = "postgres"

		ctx, cancel := context.WithTimeout(c.Request().Context(), statusPingTimeout)
		defer cancel()

		if err := pingDatabase(ctx); err != nil {
			logger.Warn("session database unreachable", "error", err)
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to write status", "error", err)
	}
}
