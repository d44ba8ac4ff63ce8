// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/scale-sync/internal/adapter"
	"github.com/MKhiriev/scale-sync/internal/app"
	"github.com/MKhiriev/scale-sync/internal/crypto"
	"github.com/MKhiriev/scale-sync/internal/store"
)

// resultMessage turns a run failure into the short text reported in
// SyncResult.Message.
func resultMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		authErr      *adapter.AuthError
		transportErr *adapter.TransportError
	)

	switch {
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout.Error()

	case errors.Is(err, ErrMissingCredentials):
		return ErrMissingCredentials.Error()

	case errors.Is(err, ErrHealthStoreUnavailable):
		return ErrHealthStoreUnavailable.Error()

	case errors.Is(err, context.Canceled):
		return app.MsgSyncCancelled

	case errors.As(err, &authErr):
		return app.MsgAuthFailedPrefix + authErr.Reason

	case errors.As(err, &transportErr):
		if transportErr.Status == 0 {
			return app.MsgVendorUnreachable
		}
		return fmt.Sprintf(app.MsgDownloadHTTPFormat, transportErr.Status, http.StatusText(transportErr.Status))

	case errors.Is(err, crypto.ErrDecryption):
		return app.MsgDecryptFailed

	case errors.Is(err, crypto.ErrCryptoComposition):
		return app.MsgEncryptFailed

	case errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgMalformedResponse

	case errors.Is(err, store.ErrInvalidCursor):
		return app.MsgCursorUnreadable

	case errors.Is(err, store.ErrStoreRead):
		return app.MsgLocalReadFailed

	case errors.Is(err, store.ErrStoreWrite):
		return app.MsgLocalWriteFailed
	}

	return err.Error()
}
