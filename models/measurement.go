// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VendorMeasurement is one scale reading as reported by the vendor.
//
// Optional quantities are pointers: nil means the scale did not report the
// value and no record is derived from it.
type VendorMeasurement struct {
	MeasurementTime time.Time
	WeightKg        *float64
	BodyFatPct      *float64
	BoneMassKg      *float64
	MusclePct       *float64
	WaterPct        *float64
	IsDeleted       bool
}
