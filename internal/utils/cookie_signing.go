package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SignValue returns value.signature where signature is a base64url HMAC-SHA256 of value.
func SignValue(value, secret string) string {
	return value + "." + signature(value, secret)
}

// UnsignValue verifies a string produced by SignValue and returns the original value.
func UnsignValue(signed, secret string) (string, bool) {
	idx := strings.LastIndexByte(signed, '.')
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}
	value, sig := signed[:idx], signed[idx+1:]
	expected := signature(value, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", false
	}
	return value, true
}

func signature(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
