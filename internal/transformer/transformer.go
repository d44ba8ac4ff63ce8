// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transformer maps vendor scale readings onto canonical health
// records. It performs no I/O.
package transformer

import (
	"math"

	"github.com/MKhiriev/scale-sync/models"
)

// Transform derives up to five health records from one vendor measurement,
// in [models.RecordKinds] order. Deleted measurements yield nothing.
//
// Weight, body fat and bone mass are copied as-is. Lean body mass and body
// water mass are computed from the weight and the matching percentage and
// rounded to two decimals. A field that is absent or zero is skipped.
func Transform(m models.VendorMeasurement) []models.HealthRecord {
	if m.IsDeleted {
		return nil
	}

	records := make([]models.HealthRecord, 0, len(models.RecordKinds))
	add := func(kind models.RecordKind, value float64, unit models.Unit) {
		records = append(records, models.HealthRecord{
			Kind:  kind,
			Time:  m.MeasurementTime,
			Value: value,
			Unit:  unit,
		})
	}

	weight, hasWeight := present(m.WeightKg)
	if hasWeight {
		add(models.RecordKindWeight, weight, models.UnitKilograms)
	}
	if fat, ok := present(m.BodyFatPct); ok {
		add(models.RecordKindBodyFat, fat, models.UnitPercent)
	}
	if bone, ok := present(m.BoneMassKg); ok {
		add(models.RecordKindBoneMass, bone, models.UnitKilograms)
	}
	if muscle, ok := present(m.MusclePct); ok && hasWeight {
		add(models.RecordKindLeanBodyMass, fractionOf(weight, muscle), models.UnitKilograms)
	}
	if water, ok := present(m.WaterPct); ok && hasWeight {
		add(models.RecordKindBodyWaterMass, fractionOf(weight, water), models.UnitKilograms)
	}

	return records
}

// TransformAll flattens Transform over measurements, preserving input order.
func TransformAll(measurements []models.VendorMeasurement) []models.HealthRecord {
	var records []models.HealthRecord
	for _, m := range measurements {
		records = append(records, Transform(m)...)
	}
	return records
}

// GroupByKind buckets records per kind, preserving their relative order.
func GroupByKind(records []models.HealthRecord) map[models.RecordKind][]models.HealthRecord {
	grouped := make(map[models.RecordKind][]models.HealthRecord)
	for _, r := range records {
		grouped[r.Kind] = append(grouped[r.Kind], r)
	}
	return grouped
}

func present(v *float64) (float64, bool) {
	if v == nil || *v == 0 || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

func fractionOf(weightKg, pct float64) float64 {
	return round2(weightKg * (pct / 100.0))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
