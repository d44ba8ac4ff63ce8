// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the sync
// service and the local HTTP surface.
//
// Msg* constants end up in SyncResult.Message and in /api/status bodies, so
// keeping them in one place keeps the wording identical everywhere.
package app

// Sync failure messages.
const (
	// MsgSyncCancelled is reported when the process is shutting down mid-run.
	MsgSyncCancelled = "sync cancelled"

	// MsgAuthFailedPrefix precedes the vendor's own login failure reason.
	MsgAuthFailedPrefix = "authentication failed: "

	MsgVendorUnreachable = "download failed: vendor unreachable"

	// MsgDownloadHTTPFormat takes the status code and its text.
	MsgDownloadHTTPFormat = "download failed: HTTP %d %s"

	MsgDecryptFailed      = "download failed: vendor response could not be decrypted"
	MsgEncryptFailed      = "download failed: request could not be encrypted"
	MsgMalformedResponse  = "download failed: malformed vendor response"
	MsgCursorUnreadable   = "stored sync cursor is unreadable"
	MsgLocalReadFailed    = "local store read failed"
	MsgLocalWriteFailed   = "local store write failed"
	MsgPartialWriteFormat = "failed to write %s"
)

// Status line texts for GET /api/status.
const (
	MsgNeverSynced          = "never synced"
	MsgLastSyncSucceeded    = "last sync succeeded"
	MsgWithWarningsSuffix   = " with warnings"
	MsgLastSyncFailedPrefix = "last sync failed: "
)
