package httpkit

import (
	"net/http"

	perrs "qayd/internal/platform/errors"
	pnet "qayd/internal/platform/net"
)

// User returns the authenticated organization id from the request context.
// Set by the auth middleware; ingestion uses it as default provenance
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// MustUser returns the authenticated organization id or panics
// only use on routes behind Protected
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}
