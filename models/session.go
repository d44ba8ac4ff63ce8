package models

// SessionToken is returned by a successful vendor login. It authorizes a
// single download call and is never persisted.
//
// Device records the identity the token was issued to; the download request
// must describe the same phone.
type SessionToken struct {
	FinalIdentifier string
	UserAccessToken string

	Device DeviceMetadata
}

// AuthorizationHeader renders the vendor's Authorization header value.
func (s SessionToken) AuthorizationHeader() string {
	return "Android#" + s.FinalIdentifier + "#" + s.UserAccessToken
}
