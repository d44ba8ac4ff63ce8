package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/crypto"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/utils"
	"github.com/MKhiriev/scale-sync/models"
)

const (
	loginPath    = "/auth/login/"
	downloadPath = "/synchronization/downloadData/"

	platformAndroid = "Android"
)

// Fixed values of the download request. The vendor has no incremental
// download, so the request always asks for everything since 1990.
const (
	downloadSince            = "1990-01-01T00:00:00.000"
	currentPlatformVersions  = "AN190"
	sourcePrefix             = "AN000******"
	imageDownloadSource      = "IPhone"
	clientDateTimeLayout     = "2006-01-02T15:04:05Z"
	downloadContentTypeUTF8  = "application/json; charset=UTF-8"
	scaleMeasurementJSONPath = "scaleMeasurement"
)

type httpVendorAdapter struct {
	client  *utils.HTTPClient
	ciphers CipherFactory
	now     func() time.Time

	logger *logger.Logger
}

// NewHTTPVendorAdapter constructs the resty implementation of
// [VendorAdapter]. It normalises adapterCfg.HTTPAddress into the base URL and
// applies adapterCfg.RequestTimeout to every request. ciphers supplies a
// fresh [crypto.VendorCipher] per download.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVendorAdapter(adapterCfg config.ClientAdapter, ciphers CipherFactory, logger *logger.Logger) (VendorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpVendorAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ciphers: ciphers,
		now:     time.Now,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [VendorAdapter]. It POSTs the plaintext login body to
// POST /auth/login/ and extracts FinalIdentifier and UserAccessToken from the
// response.
func (h *httpVendorAdapter) Login(ctx context.Context, creds models.Credentials, device models.DeviceMetadata) (models.SessionToken, error) {
	body := models.LoginRequest{
		SourcePlatform: platformAndroid,
		PhoneModel:     device.Model,
		Password:       creds.Password,
		OS:             platformAndroid,
		DeviceID:       creds.DeviceID,
		OSVersion:      device.OSVersion,
		TimeZone:       device.TimeZone,
		PlatForm:       platformAndroid,
		UserName:       creds.Email,
		VersionNumber:  crypto.VersionNumber,
		Name:           device.Name,
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(loginPath)
	if err != nil {
		return models.SessionToken{}, &AuthError{Reason: "request failed", Err: err}
	}

	result := gjson.ParseBytes(resp.Body())
	if err = mapHTTPError(resp); err != nil {
		return models.SessionToken{}, &AuthError{Reason: userStatus(result, resp.Status()), Err: err}
	}

	if result.Get("IsValidUser").Type != gjson.True {
		return models.SessionToken{}, &AuthError{Reason: userStatus(result, "invalid user")}
	}

	session := models.SessionToken{
		FinalIdentifier: result.Get("FinalIdentifier").String(),
		UserAccessToken: result.Get("UserAccessToken").String(),
		Device:          device,
	}
	if session.FinalIdentifier == "" || session.UserAccessToken == "" {
		return models.SessionToken{}, &AuthError{Reason: "missing session fields"}
	}

	return session, nil
}

func userStatus(result gjson.Result, fallback string) string {
	if status := result.Get("UserStatus"); status.Exists() && status.String() != "" {
		return status.String()
	}
	return fallback
}

// Download implements [VendorAdapter]. It encrypts the fixed download body,
// POSTs the envelope to POST /synchronization/downloadData/ with the session
// Authorization header, decrypts the armored response and returns the
// scaleMeasurement list.
func (h *httpVendorAdapter) Download(ctx context.Context, session models.SessionToken, cursor *time.Time, isAutomatic bool) ([]models.VendorMeasurement, error) {
	log := logger.FromContext(ctx)
	if cursor != nil {
		log.Debug().Str("func", "httpVendorAdapter.Download").Time("cursor", *cursor).Msg("downloading full history, filtering happens after")
	}

	plain, err := json.Marshal(h.downloadRequest(session, isAutomatic))
	if err != nil {
		return nil, fmt.Errorf("marshal download request: %w", err)
	}

	vc := h.ciphers.NewCipher()
	envelope, err := vc.BuildEncryptedRequest(string(plain))
	if err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", session.AuthorizationHeader()).
		SetHeader("Content-Type", downloadContentTypeUTF8).
		SetBody(envelope).
		Post(downloadPath)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, &TransportError{Status: resp.StatusCode(), Err: err}
	}

	decrypted, err := vc.DecryptResponse(unquoteArmor(resp.Body()))
	if err != nil {
		return nil, err
	}

	if !gjson.Valid(decrypted) {
		return nil, ErrMalformedResponse
	}

	location, err := time.LoadLocation(session.Device.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("func", "httpVendorAdapter.Download").Str("time_zone", session.Device.TimeZone).Msg("unknown device time zone, using UTC")
		location = time.UTC
	}

	return parseMeasurements(gjson.Get(decrypted, scaleMeasurementJSONPath), location, log), nil
}

func (h *httpVendorAdapter) downloadRequest(session models.SessionToken, isAutomatic bool) models.DownloadRequest {
	automatic := 0
	if isAutomatic {
		automatic = 1
	}

	return models.DownloadRequest{
		SourcePlateform:               platformAndroid,
		LastSyncDateForDownlaodTables: downloadSince,
		CurrentPlateformVersions:      currentPlatformVersions,
		SourcePrefix:                  sourcePrefix,
		VersionNumber:                 crypto.VersionNumber,
		ImageDownloadSource:           imageDownloadSource,
		FinalIdentifier:               session.FinalIdentifier,
		IsAutomaticSync:               automatic,
		ClientDateTime:                h.now().UTC().Format(clientDateTimeLayout),
		ExceptionLog:                  "",
		DeviceInfo:                    deviceInfo(session.Device),
	}
}

func deviceInfo(d models.DeviceMetadata) string {
	return fmt.Sprintf(
		"Manufacturer:%s#Model:%s#Android Version:%s#App Culture:%s#Device Culture:%s#Wi-fi:true#Mobile Data:false",
		d.Brand, d.Model, d.OSVersion, d.Culture, d.TimeZone,
	)
}

// unquoteArmor accepts both a bare armored body and one wrapped in a JSON
// string.
func unquoteArmor(body []byte) string {
	result := gjson.ParseBytes(body)
	if result.Type == gjson.String && strings.HasPrefix(strings.TrimSpace(string(body)), `"`) {
		return result.String()
	}
	return string(body)
}
