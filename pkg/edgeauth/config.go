package edgeauth

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDelimiter separates token fields unless overridden.
const DefaultDelimiter = '~'

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Config holds the logical fields of a token.
//
// Key, start time, end time and window are validated when they are set.
// The acl and the expiration are validated when their fragments are read,
// because the caller may still change the start time after setting them.
//
// A Config is not safe for concurrent mutation. Treat a populated Config
// as read-only once it is handed to a Generator.
type Config struct {
	// Algorithm selects the HMAC hash function.
	Algorithm Algorithm

	// IP binds the token to a client address.
	IP string

	// ACL is the access control pattern the token is valid for, e.g. "/*".
	ACL string

	// PreEscapeACL escapes the acl in place before hashing. When false the
	// acl is hashed raw and the whole token is URI-escaped afterwards.
	PreEscapeACL bool

	// SessionID identifies the session for single-use tokens.
	SessionID string

	// Payload is additional text covered by the signature.
	Payload string

	// Delimiter separates token fields.
	Delimiter rune

	// Clock supplies the current time when the expiration is derived from
	// the window alone. A nil Clock falls back to SystemClock.
	Clock Clock

	key       string
	startTime int64
	endTime   int64
	window    int64
}

// NewConfig returns a Config with default values: SHA256, the "~"
// delimiter and the system clock.
func NewConfig() *Config {
	return &Config{
		Algorithm: SHA256,
		Delimiter: DefaultDelimiter,
		Clock:     SystemClock,
	}
}

// Key returns the hex-encoded secret key.
func (c *Config) Key() string {
	return c.key
}

// SetKey sets the secret key. The key must be a non-empty, even-length
// alphanumeric string; otherwise ErrInvalidKey is returned and the
// previous key is kept.
func (c *Config) SetKey(key string) error {
	if key == "" || len(key)%2 == 1 || !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}
	c.key = key
	return nil
}

// StartTime returns the start of validity in unix seconds, 0 if unset.
func (c *Config) StartTime() int64 {
	return c.startTime
}

// SetStartTime sets the start of validity in unix seconds. 0 unsets it.
func (c *Config) SetStartTime(sec int64) error {
	if sec < 0 {
		return ErrInvalidRange.WithDetails("start-time")
	}
	c.startTime = sec
	return nil
}

// EndTime returns the end of validity in unix seconds, 0 if unset.
func (c *Config) EndTime() int64 {
	return c.endTime
}

// SetEndTime sets the end of validity in unix seconds. 0 unsets it.
func (c *Config) SetEndTime(sec int64) error {
	if sec < 0 {
		return ErrInvalidRange.WithDetails("end-time")
	}
	c.endTime = sec
	return nil
}

// Window returns the validity duration in seconds, 0 if unset.
func (c *Config) Window() int64 {
	return c.window
}

// SetWindow sets the validity duration in seconds. 0 unsets it.
func (c *Config) SetWindow(sec int64) error {
	if sec < 0 {
		return ErrInvalidRange.WithDetails("window")
	}
	c.window = sec
	return nil
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// IPField renders the ip fragment, or "" when no ip is set.
func (c *Config) IPField() string {
	return c.field("ip", c.IP)
}

// StartTimeField renders the start time fragment, or "" when unset.
func (c *Config) StartTimeField() string {
	if c.startTime == 0 {
		return ""
	}
	return c.field("st", strconv.FormatInt(c.startTime, 10))
}

// Expiration resolves the token expiration in unix seconds.
//
// End time wins over window when both are set. Without an end time the
// expiration is the start time, or the clock when no start time is set,
// plus the window.
func (c *Config) Expiration() (int64, error) {
	if c.window == 0 && c.endTime == 0 {
		return 0, ErrMissingExpiration
	}
	if c.endTime > 0 && c.endTime <= c.startTime {
		return 0, ErrInvalidExpirationOrder.WithDetails(
			fmt.Sprintf("start-time %d, end-time %d", c.startTime, c.endTime))
	}
	if c.endTime > 0 {
		return c.endTime, nil
	}

	start := c.startTime
	if start == 0 {
		start = c.clock().UnixSeconds()
	}
	return start + c.window, nil
}

// ExpirationField renders the exp fragment. It fails with
// ErrMissingExpiration or ErrInvalidExpirationOrder.
func (c *Config) ExpirationField() (string, error) {
	exp, err := c.Expiration()
	if err != nil {
		return "", err
	}
	return c.field("exp", strconv.FormatInt(exp, 10)), nil
}

// ACLField renders the acl fragment, escaping the value when PreEscapeACL
// is set. It fails with ErrMissingACL when the acl is empty.
func (c *Config) ACLField() (string, error) {
	if c.ACL == "" {
		return "", ErrMissingACL
	}
	if c.PreEscapeACL {
		return c.field("acl", escapeACL(c.ACL)), nil
	}
	return c.field("acl", c.ACL), nil
}

// SessionIDField renders the id fragment, or "" when no session id is set.
func (c *Config) SessionIDField() string {
	return c.field("id", c.SessionID)
}

// PayloadField renders the data fragment, or "" when no payload is set.
func (c *Config) PayloadField() string {
	return c.field("data", c.Payload)
}

// String renders the config for debugging. The key is masked and
// fragment errors are shown in place of the fragment.
func (c *Config) String() string {
	exp, err := c.ExpirationField()
	if err != nil {
		exp = "<" + err.Error() + ">"
	}
	acl, err := c.ACLField()
	if err != nil {
		acl = "<" + err.Error() + ">"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Algo:%s\n", c.Algorithm)
	fmt.Fprintf(&b, "IPField:%s\n", c.IPField())
	fmt.Fprintf(&b, "StartTimeField:%s\n", c.StartTimeField())
	fmt.Fprintf(&b, "Window:%d\n", c.window)
	fmt.Fprintf(&b, "ExpirationField:%s\n", exp)
	fmt.Fprintf(&b, "ACLField:%s\n", acl)
	fmt.Fprintf(&b, "SessionIDField:%s\n", c.SessionIDField())
	fmt.Fprintf(&b, "PayloadField:%s\n", c.PayloadField())
	fmt.Fprintf(&b, "Key:%s\n", maskKey(c.key))
	fmt.Fprintf(&b, "FieldDelimiter:%c\n", c.delimiter())
	return b.String()
}

func (c *Config) field(name, value string) string {
	if value == "" {
		return ""
	}
	return name + "=" + value + string(c.delimiter())
}

func (c *Config) delimiter() rune {
	if c.Delimiter == 0 {
		return DefaultDelimiter
	}
	return c.Delimiter
}

func (c *Config) clock() Clock {
	if c.Clock == nil {
		return SystemClock
	}
	return c.Clock
}

// maskKey masks a secret for safe display.
func maskKey(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
