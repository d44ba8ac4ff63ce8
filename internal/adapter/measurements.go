package adapter

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/models"
)

// Vendor timestamps come without an offset, e.g. "2024-01-01T08:30:00" or
// "2024-01-01T08:30:00.000". Offsets are honoured when present.
var vendorTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseMeasurements(list gjson.Result, location *time.Location, log *logger.Logger) []models.VendorMeasurement {
	measurements := make([]models.VendorMeasurement, 0)
	if !list.IsArray() {
		return measurements
	}

	list.ForEach(func(_, item gjson.Result) bool {
		raw := item.Get("MeasurementTimeWithDate").String()
		at, err := parseVendorTime(raw, location)
		if err != nil {
			log.Warn().Err(err).Str("func", "parseMeasurements").Str("time", raw).Msg("skipping measurement with unreadable time")
			return true
		}

		measurements = append(measurements, models.VendorMeasurement{
			MeasurementTime: at,
			WeightKg:        optionalFloat(item.Get("WeightKg")),
			BodyFatPct:      optionalFloat(item.Get("BodyFatPct")),
			BoneMassKg:      optionalFloat(item.Get("BoneMassKg")),
			MusclePct:       optionalFloat(item.Get("MusclePct")),
			WaterPct:        optionalFloat(item.Get("WaterPct")),
			IsDeleted:       item.Get("IsDeleted").Bool(),
		})
		return true
	})

	return measurements
}

func parseVendorTime(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}

	var lastErr error
	for _, layout := range vendorTimeLayouts {
		t, err := time.ParseInLocation(layout, raw, location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func optionalFloat(v gjson.Result) *float64 {
	switch v.Type {
	case gjson.Number:
		f := v.Float()
		return &f
	case gjson.String:
		if v.String() == "" {
			return nil
		}
		f := v.Float()
		return &f
	default:
		return nil
	}
}
