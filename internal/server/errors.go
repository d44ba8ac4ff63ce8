// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNoServersAreCreated means no listen address was configured.
var ErrNoServersAreCreated = errors.New("no servers are created")
