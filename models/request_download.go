// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DownloadRequest is the plaintext body of POST /synchronization/downloadData/
// before encryption. The vendor has no incremental download: every LastCount
// stays zero and LastSyncDateForDownlaodTables stays in 1990, so the server
// always returns the full history and filtering happens on the client.
//
// The misspellings (Downlaod, Plateform) belong to the vendor protocol.
type DownloadRequest struct {
	ASSettingsLastCount                  int    `json:"ASSettingsLastCount"`
	DeviceClassDurationSettingsLastCount int    `json:"DeviceClassDurationSettingsLastCount"`
	GlucoseMeasurementLastCount          int    `json:"GlucoseMeasurementLastCount"`
	GlucoseSettingsLastCount             int    `json:"GlucoseSettingsLastCount"`
	MeasurementMedicationRefLastCount    int    `json:"MeasurementMedicationRefLastCount"`
	MeasurementsLastCount                int    `json:"MeasurementsLastCount"`
	MedicationLastCount                  int    `json:"MedicationLastCount"`
	ScaleMeasurementLastCount            int    `json:"ScaleMeasurementLastCount"`
	UserLastCount                        int    `json:"UserLastCount"`
	SettingsLastCount                    int    `json:"SettingsLastCount"`
	UserDevicesLastCount                 int    `json:"UserDevicesLastCount"`
	UserTargetWeightLastCount            int    `json:"UserTargetWeightLastCount"`
	UserWHRManagementLastCount           int    `json:"UserWHRManagementLastCount"`
	DeviceClientDetailsLastCount         int    `json:"DeviceClientDetailsLastCount"`
	DeviceClientRelationshipLastCount    int    `json:"DeviceClientRelationshipLastCount"`
	ASMeasurementsLastCount              int    `json:"ASMeasurementsLastCount"`
	ASMeasurementDetailsLastCount        int    `json:"ASMeasurementDetailsLastCount"`
	SleepDetailsLastCount                int    `json:"SleepDetailsLastCount"`
	SleepMasterLastCount                 int    `json:"SleepMasterLastCount"`
	WeightSettingsLastCount              int    `json:"WeightSettingsLastCount"`
	PdfExportStatisticsLastCount         int    `json:"PdfExportStatisticsLastCount"`
	UserProfilePicLastCount              int    `json:"UserProfilePicLastCount"`
	UserDeviceLoginHistoryLastCount      int    `json:"UserDeviceLoginHistoryLastCount"`
	DeviceLastCount                      int    `json:"DeviceLastCount"`
	SourcePlateform                      string `json:"SourcePlateform"`
	LastSyncDateForDownlaodTables        string `json:"LastSyncDateForDownlaodTables"`
	CurrentPlateformVersions             string `json:"CurrentPlateformVersions"`
	SourcePrefix                         string `json:"SourcePrefix"`
	VersionNumber                        int    `json:"VersionNumber"`
	ImageDownloadSource                  string `json:"ImageDownloadSource"`
	FinalIdentifier                      string `json:"FinalIdentifier"`
	IsAutomaticSync                      int    `json:"IsAutomaticSync"`
	ClientDateTime                       string `json:"ClientDateTime"`
	ExceptionLog                         string `json:"exception_log"`
	DeviceInfo                           string `json:"DeviceInfo"`
}

// EncryptedEnvelope is the JSON body actually sent to the download endpoint.
// Data holds the salted AES ciphertext of a DownloadRequest and Key holds the
// RSA-wrapped AES password.
type EncryptedEnvelope struct {
	Data           string `json:"data"`
	Key            string `json:"key"`
	VersionNumber  int    `json:"VersionNumber"`
	SourcePlatform string `json:"SourcePlatform"`
}
