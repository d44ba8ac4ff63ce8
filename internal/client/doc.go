// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the syncer process lifecycle.
//
// It bootstraps the stored credentials and device id, then either performs a
// single on-demand run or starts the periodic sync worker and the local HTTP
// surface until a termination signal arrives.
package client
