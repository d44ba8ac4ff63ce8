// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials identify the single vendor account and the install that talks
// to it. DeviceID is a UUIDv4 generated once per install and reused for every
// login afterwards.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"`
}

// Complete reports whether all three fields required for a login are set.
func (c Credentials) Complete() bool {
	return c.Email != "" && c.Password != "" && c.DeviceID != ""
}

// DeviceMetadata describes the phone the vendor believes it is talking to.
// The values are sent verbatim in the login and download requests.
type DeviceMetadata struct {
	// Name is the user-visible device name (login "Name" field).
	Name string
	// Brand is the manufacturer reported in the DeviceInfo string.
	Brand string
	// Model is the phone model (login "PhoneModel" field).
	Model string
	// OSVersion is the Android version string.
	OSVersion string
	// TimeZone is an IANA zone name, e.g. "Europe/Paris".
	TimeZone string
	// Culture is the app culture, e.g. "fr-FR".
	Culture string
}
