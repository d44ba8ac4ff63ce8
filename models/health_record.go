// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordKind names one of the five canonical health record types.
type RecordKind string

const (
	RecordKindWeight        RecordKind = "Weight"
	RecordKindBodyFat       RecordKind = "BodyFat"
	RecordKindBoneMass      RecordKind = "BoneMass"
	RecordKindLeanBodyMass  RecordKind = "LeanBodyMass"
	RecordKindBodyWaterMass RecordKind = "BodyWaterMass"
)

// RecordKinds lists every kind in the order records are derived from a
// measurement. Writes are issued in this order too.
var RecordKinds = []RecordKind{
	RecordKindWeight,
	RecordKindBodyFat,
	RecordKindBoneMass,
	RecordKindLeanBodyMass,
	RecordKindBodyWaterMass,
}

// Unit is the unit a HealthRecord value is expressed in.
type Unit string

const (
	UnitKilograms Unit = "kilograms"
	UnitPercent   Unit = "percent"
)

// HealthRecord is a canonical entry written to the health-data store.
// Records are built once from a VendorMeasurement and never mutated.
type HealthRecord struct {
	Kind  RecordKind `json:"kind"`
	Time  time.Time  `json:"time"`
	Value float64    `json:"value"`
	Unit  Unit       `json:"unit"`
}
