// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the plaintext JSON body of POST /auth/login/.
// Field names and casing are dictated by the vendor.
type LoginRequest struct {
	SourcePlatform string `json:"SourcePlatform"`
	PhoneModel     string `json:"PhoneModel"`
	Password       string `json:"password"`
	OS             string `json:"OS"`
	DeviceID       string `json:"DeviceId"`
	OSVersion      string `json:"OsVersion"`
	TimeZone       string `json:"timeZone"`
	PlatForm       string `json:"PlatForm"`
	UserName       string `json:"userName"`
	VersionNumber  int    `json:"VersionNumber"`
	Name           string `json:"Name"`
}
