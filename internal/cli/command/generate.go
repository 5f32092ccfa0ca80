package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/edgeauth-go/internal/telemetry/logger"
	"github.com/yndnr/edgeauth-go/internal/telemetry/metric"
	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	flags := append(signingFlags(),
		&cli.StringFlag{
			Name:     "acl",
			Usage:    "Access control path the token grants, e.g. '/*'",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "ip",
			Usage: "Client IP address the token is bound to",
		},
		&cli.StringFlag{
			Name:  "start-time",
			Usage: "Start time in unix seconds, or 'now'",
		},
		&cli.Int64Flag{
			Name:  "end-time",
			Usage: "Expiration in unix seconds (takes precedence over --window)",
		},
		&cli.StringFlag{
			Name:  "session-id",
			Usage: "Session ID embedded in the token",
		},
		&cli.BoolFlag{
			Name:  "session-id-auto",
			Usage: "Embed a freshly generated session ID (ULID)",
		},
		&cli.StringFlag{
			Name:  "payload",
			Usage: "Additional data covered by the signature",
		},
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate a signed token",
		Flags:   flags,
		Action:  generateAction,
	}
}

// signingFlags returns the flags that override the token profile.
func signingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Hex-encoded secret key",
			EnvVars: []string{"EDGEAUTH_KEY"},
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "HMAC algorithm: md5, sha1, sha256",
		},
		&cli.Int64Flag{
			Name:    "window",
			Aliases: []string{"w"},
			Usage:   "Validity window in seconds",
		},
		&cli.StringFlag{
			Name:  "delimiter",
			Usage: "Field delimiter (single character)",
		},
		&cli.BoolFlag{
			Name:  "escape-early",
			Usage: "Escape the acl before signing instead of escaping the whole token",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file",
		},
	}
}

// tokenRequest holds the per-token fields of a generation request.
type tokenRequest struct {
	ACL           string `yaml:"acl"`
	IP            string `yaml:"ip"`
	StartTime     string `yaml:"start_time"` // unix seconds or "now"
	EndTime       int64  `yaml:"end_time"`
	Window        int64  `yaml:"window"`
	SessionID     string `yaml:"session_id"`
	SessionIDAuto bool   `yaml:"session_id_auto"`
	Payload       string `yaml:"payload"`
	EscapeEarly   *bool  `yaml:"escape_early"`
}

// apply copies the request onto cfg. Zero values leave cfg unchanged.
func (r *tokenRequest) apply(cfg *edgeauth.Config) error {
	cfg.ACL = r.ACL
	cfg.IP = r.IP
	cfg.Payload = r.Payload
	cfg.SessionID = r.SessionID
	if r.SessionIDAuto {
		cfg.SessionID = ulid.Make().String()
	}
	if r.EscapeEarly != nil {
		cfg.PreEscapeACL = *r.EscapeEarly
	}

	if r.StartTime != "" {
		st, err := parseStartTime(r.StartTime, cfg.Clock)
		if err != nil {
			return err
		}
		if err := cfg.SetStartTime(st); err != nil {
			return err
		}
	}
	if r.EndTime != 0 {
		if err := cfg.SetEndTime(r.EndTime); err != nil {
			return err
		}
	}
	if r.Window != 0 {
		if err := cfg.SetWindow(r.Window); err != nil {
			return err
		}
	}
	return nil
}

// parseStartTime accepts unix seconds or "now".
func parseStartTime(s string, clock edgeauth.Clock) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "now") {
		if clock == nil {
			clock = edgeauth.SystemClock
		}
		return clock.UnixSeconds(), nil
	}
	st, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, edgeauth.ErrInvalidRange.WithDetails(fmt.Sprintf("start-time %q is not a unix timestamp", s))
	}
	return st, nil
}

// tokenTemplate merges the signing flags into the profile and returns the
// resulting Config. Request fields are not set.
func tokenTemplate(c *cli.Context, env *runEnv) (*edgeauth.Config, error) {
	p := *env.profile
	if c.IsSet("key") {
		p.Token.Key = c.String("key")
	}
	if c.IsSet("algorithm") {
		p.Token.Algorithm = c.String("algorithm")
	}
	if c.IsSet("window") {
		p.Token.Window = c.Int64("window")
	}
	if c.IsSet("delimiter") {
		p.Token.FieldDelimiter = c.String("delimiter")
	}
	if c.IsSet("escape-early") {
		p.Token.EscapeEarly = c.Bool("escape-early")
	}

	if p.Token.Key == "" {
		return nil, edgeauth.ErrInvalidKey.WithDetails("no key given: use --key, EDGEAUTH_KEY or token.key")
	}

	cfg, err := p.NewTokenConfig()
	if err != nil {
		return nil, err
	}
	cfg.Clock = env.clock
	return cfg, nil
}

// issue applies req to a copy of tmpl and signs it.
func issue(gen *edgeauth.Generator, tmpl *edgeauth.Config, req *tokenRequest) (*edgeauth.Token, error) {
	cfg := tmpl.Clone()
	if err := req.apply(cfg); err != nil {
		return nil, err
	}
	return gen.Sign(cfg)
}

// metricsFor returns a registry when --metrics-textfile is set.
func metricsFor(c *cli.Context) *metric.Registry {
	if c.String("metrics-textfile") == "" {
		return nil
	}
	return metric.NewRegistry()
}

func record(reg *metric.Registry, alg edgeauth.Algorithm, err error) {
	if reg == nil {
		return
	}
	if err != nil {
		reg.ObserveFailure(edgeauth.ErrorCode(err))
		return
	}
	reg.ObserveIssued(alg.String())
}

func flushMetrics(c *cli.Context, reg *metric.Registry, log logger.Logger) error {
	if reg == nil {
		return nil
	}
	path := c.String("metrics-textfile")
	if err := reg.WriteTextfile(path); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	log.Debug("metrics written", "path", path)
	return nil
}

func generateAction(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	log := logger.L(env.ctx).With("command", "generate")

	cfg, err := tokenTemplate(c, env)
	if err != nil {
		return err
	}

	req := &tokenRequest{
		ACL:           c.String("acl"),
		IP:            c.String("ip"),
		StartTime:     c.String("start-time"),
		EndTime:       c.Int64("end-time"),
		SessionID:     c.String("session-id"),
		SessionIDAuto: c.Bool("session-id-auto"),
		Payload:       c.String("payload"),
	}

	reg := metricsFor(c)
	tok, err := issue(edgeauth.NewGenerator(), cfg, req)
	record(reg, cfg.Algorithm, err)
	if merr := flushMetrics(c, reg, log); merr != nil {
		log.Warn("metrics not written", "error", merr)
	}
	if err != nil {
		log.Debug("token generation failed", "acl", req.ACL, "code", edgeauth.ErrorCode(err))
		return err
	}

	log.Info("token issued",
		"acl", req.ACL,
		"algorithm", tok.Algorithm,
		"expiration", tok.Expiration,
		"token", tok.Value,
	)
	return env.print(c.App.Writer, tok)
}
