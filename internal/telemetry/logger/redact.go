package logger

import (
	"log/slog"
	"strings"
)

// signatureMarker introduces the digest in a token string.
const signatureMarker = "hmac="

// Key names that carry secrets. The token itself is not listed: its
// digest is masked by value instead so the fields stay readable.
var sensitiveKeyPatterns = []string{
	"key",
	"secret",
	"password",
	"credential",
	"signature",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive masks secret attributes and token signatures.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		strVal := a.Value.String()
		if strVal == "" {
			return a
		}
		if IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		if strings.Contains(strVal, signatureMarker) {
			return slog.String(a.Key, RedactToken(strVal))
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// RedactToken masks the hmac digest of a token, keeping the fields and
// the first and last three digest characters.
// Example: exp=1600~acl=/*~hmac=59075562...c21 -> exp=1600~acl=/*~hmac=590...c21
func RedactToken(token string) string {
	i := strings.Index(token, signatureMarker)
	if i < 0 {
		return token
	}
	head := token[:i+len(signatureMarker)]
	return head + maskDigest(token[i+len(signatureMarker):])
}

// maskDigest keeps the first and last three characters of a digest.
func maskDigest(digest string) string {
	if len(digest) <= 6 {
		return "***"
	}
	return digest[:3] + "..." + digest[len(digest)-3:]
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
