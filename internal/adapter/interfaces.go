// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the vendor's legacy sync API.
//
// The primary abstraction is [VendorAdapter], which hides the wire details
// (login body, encrypted download envelope, armored response) from the sync
// service. The package ships one HTTP implementation built on resty
// ([NewHTTPVendorAdapter]).
//
// Failures are reported as [*AuthError] for the login step and
// [*TransportError] for the download step. HTTP status codes are additionally
// mapped to the sentinel values in errors.go by mapHTTPError so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/scale-sync/internal/crypto"
	"github.com/MKhiriev/scale-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vendor_adapter_mock.go -package=mock

// VendorAdapter is the vendor protocol client. A login must precede every
// download; the returned session is valid for one run only.
type VendorAdapter interface {
	// Login authenticates creds as the given device. It fails with
	// *AuthError when the request cannot be sent, the server answers non-2xx,
	// IsValidUser is not true, or the session fields are missing.
	Login(ctx context.Context, creds models.Credentials, device models.DeviceMetadata) (models.SessionToken, error)

	// Download fetches the full scale measurement history for session. cursor
	// is informational: the vendor protocol has no incremental download, so
	// callers filter the result themselves. isAutomatic is reported to the
	// vendor as IsAutomaticSync.
	//
	// Returns *TransportError on transport failure or non-2xx status,
	// crypto.ErrDecryption when the response cannot be decrypted, and
	// ErrMalformedResponse when the decrypted payload is not JSON. An absent
	// scaleMeasurement list yields an empty slice.
	Download(ctx context.Context, session models.SessionToken, cursor *time.Time, isAutomatic bool) ([]models.VendorMeasurement, error)
}

// CipherFactory hands out a fresh vendor cipher, and therefore a fresh session
// password, for every download.
type CipherFactory interface {
	NewCipher() crypto.VendorCipher
}
