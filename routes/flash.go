/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/session"
)

// FlashType represents the type of flash message
type FlashType string

const (
	FlashError   FlashType = "error"
	FlashSuccess FlashType = "success"
)

const sessionFlashKey = "flash"

// FlashMessage represents a flash message to be displayed to the user
type FlashMessage struct {
	Type    FlashType
	Message string
}

func init() {
	// Register FlashMessage with gob for session serialization
	gob.Register(FlashMessage{})
}

// SetErrorFlash sets an error flash message in the session
func SetErrorFlash(s session.Session, message string) {
	setFlash(s, FlashError, message)
}

// SetSuccessFlash sets a success flash message in the session
func SetSuccessFlash(s session.Session, message string) {
	setFlash(s, FlashSuccess, message)
}

func setFlash(s session.Session, typ FlashType, message string) {
	s.Set(sessionFlashKey, FlashMessage{
		Type:    typ,
		Message: message,
	})
}

// popFlash returns the pending flash message and clears it, so it is shown
// on exactly one page.
func popFlash(s session.Session) (FlashMessage, bool) {
	msg, ok := s.Get(sessionFlashKey).(FlashMessage)
	if !ok {
		return FlashMessage{}, false
	}

	s.Delete(sessionFlashKey)

	return msg, true
}
