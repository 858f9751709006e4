package httpkit

import (
	"strings"

	perrs "qayd/internal/platform/errors"
)

// StaticTokens builds a TokenFunc over a fixed list of "org:token" entries,
// the shape the API's AUTH_TOKENS config carries. The org id becomes the
// authenticated principal. Malformed entries are skipped
func StaticTokens(entries []string) TokenFunc {
	byToken := make(map[string]string, len(entries))
	for _, e := range entries {
		org, tok, ok := strings.Cut(strings.TrimSpace(e), ":")
		if !ok || org == "" || tok == "" {
			continue
		}
		byToken[tok] = org
	}
	return func(token string) (string, string, error) {
		org, ok := byToken[token]
		if !ok {
			return "", "", perrs.Unauthorizedf("unknown token")
		}
		return org, "", nil
	}
}
