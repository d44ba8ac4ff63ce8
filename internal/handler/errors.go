// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the local HTTP
// surface has no listen address.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// IsDisabled reports whether err means the HTTP surface is turned off.
func IsDisabled(err error) bool {
	return errors.Is(err, errNoHandlersAreCreated)
}
