package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken 只做提取，不校验签名
func BearerToken(h http.Header) (string, error) {
	ah := h.Get("Authorization")
	if !strings.HasPrefix(ah, bearerPrefix) {
		return "", ErrMissingCredential
	}
	tok := strings.TrimSpace(ah[len(bearerPrefix):])
	if tok == "" {
		return "", ErrMissingCredential
	}
	return tok, nil
}
