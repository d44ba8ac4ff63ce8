// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncResult is the terminal outcome of one sync run. Failures are reported
// here instead of being returned as errors, so the scheduler always gets a
// completed value back.
type SyncResult struct {
	Success     bool      `json:"success"`
	RecordCount int       `json:"count"`
	Message     string    `json:"message,omitempty"`
	IsAutomatic bool      `json:"is_automatic"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	// Cursor is the stored cursor after the run, nil when none has been set.
	Cursor *time.Time `json:"cursor,omitempty"`
}
