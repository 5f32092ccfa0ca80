package command

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/edgeauth-go/internal/cli/config"
	"github.com/yndnr/edgeauth-go/internal/telemetry/logger"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the fields of a token (the signature is not verified)",
		ArgsUsage: "TOKEN",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "delimiter",
				Usage: "Field delimiter (single character)",
			},
		},
		Action: inspectAction,
	}
}

// tokenFields is a token split into its named fields.
type tokenFields struct {
	IP         string `json:"ip,omitempty" yaml:"ip,omitempty"`
	StartTime  int64  `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	Expiration int64  `json:"expiration" yaml:"expiration"`
	ACL        string `json:"acl" yaml:"acl"`
	SessionID  string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Payload    string `json:"payload,omitempty" yaml:"payload,omitempty"`
	HMAC       string `json:"hmac" yaml:"hmac"`
	Expired    bool   `json:"expired" yaml:"expired"`
}

// parseToken unescapes token once and splits it on delim.
// Every field must be known; exp, acl and hmac are required.
func parseToken(token string, delim rune) (*tokenFields, error) {
	raw, err := url.PathUnescape(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("token is not validly escaped: %w", err)
	}

	var tf tokenFields
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, string(delim)) {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("malformed field %q", part)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate field %q", name)
		}
		seen[name] = true

		switch name {
		case "ip":
			tf.IP = value
		case "st":
			if tf.StartTime, err = strconv.ParseInt(value, 10, 64); err != nil {
				return nil, fmt.Errorf("field st: %w", err)
			}
		case "exp":
			if tf.Expiration, err = strconv.ParseInt(value, 10, 64); err != nil {
				return nil, fmt.Errorf("field exp: %w", err)
			}
		case "acl":
			tf.ACL = value
		case "id":
			tf.SessionID = value
		case "data":
			tf.Payload = value
		case "hmac":
			tf.HMAC = value
		default:
			return nil, fmt.Errorf("unknown field %q", name)
		}
	}

	for _, name := range []string{"exp", "acl", "hmac"} {
		if !seen[name] {
			return nil, fmt.Errorf("missing field %q", name)
		}
	}
	return &tf, nil
}

func inspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("inspect: expected exactly one TOKEN argument")
	}

	env, err := envFrom(c)
	if err != nil {
		return err
	}

	delim := env.profile.Token.FieldDelimiter
	if c.IsSet("delimiter") {
		delim = c.String("delimiter")
	}
	r, err := config.ParseDelimiter(delim)
	if err != nil {
		return err
	}

	tf, err := parseToken(c.Args().First(), r)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	tf.Expired = tf.Expiration <= env.clock.UnixSeconds()

	logger.L(env.ctx).Debug("token inspected", "acl", tf.ACL, "expiration", tf.Expiration)
	return env.print(c.App.Writer, tf)
}
