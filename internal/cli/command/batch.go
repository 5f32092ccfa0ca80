package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/yndnr/edgeauth-go/internal/telemetry/logger"
	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

// BatchCommand returns the batch command.
func BatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Generate tokens for every request in a YAML file",
		ArgsUsage: "FILE (use - for stdin)",
		Description: `FILE holds a YAML list of requests, for example:

   - acl: /videos/*
     window: 600
   - acl: /live/*
     ip: 203.0.113.7
     start_time: now
     end_time: 1767225600
     session_id_auto: true

Signing settings come from the profile and the command flags. Every
request is processed; the command fails if any of them failed.`,
		Flags:  signingFlags(),
		Action: batchAction,
	}
}

// batchResult is the outcome of one batch request.
type batchResult struct {
	Index      int    `json:"index" yaml:"index"`
	ACL        string `json:"acl" yaml:"acl"`
	Token      string `json:"token,omitempty" yaml:"token,omitempty"`
	Expiration int64  `json:"expiration,omitempty" yaml:"expiration,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// String returns the token, or the error for failed requests, so that
// plain output keeps one line per request.
func (r batchResult) String() string {
	if r.Error != "" {
		return "error: " + r.Error
	}
	return r.Token
}

// readRequests parses a YAML list of token requests.
func readRequests(r io.Reader) ([]tokenRequest, error) {
	var reqs []tokenRequest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&reqs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse requests: %w", err)
	}
	return reqs, nil
}

func openRequests(c *cli.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(c.App.Reader), nil
	}
	return os.Open(path)
}

func batchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("batch: expected exactly one FILE argument")
	}

	env, err := envFrom(c)
	if err != nil {
		return err
	}
	log := logger.L(env.ctx).With("command", "batch")

	tmpl, err := tokenTemplate(c, env)
	if err != nil {
		return err
	}

	f, err := openRequests(c, c.Args().First())
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	reqs, err := readRequests(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	gen := edgeauth.NewGenerator()
	reg := metricsFor(c)
	results := make([]batchResult, 0, len(reqs))
	failed := 0

	for i := range reqs {
		req := &reqs[i]
		res := batchResult{Index: i, ACL: req.ACL}

		tok, err := issue(gen, tmpl, req)
		record(reg, tmpl.Algorithm, err)
		if err != nil {
			failed++
			res.Error = err.Error()
			log.Warn("request failed", "index", i, "acl", req.ACL, "code", edgeauth.ErrorCode(err))
		} else {
			res.Token = tok.Value
			res.Expiration = tok.Expiration
			log.Debug("token issued", "index", i, "acl", req.ACL, "token", tok.Value)
		}
		results = append(results, res)
	}

	if merr := flushMetrics(c, reg, log); merr != nil {
		log.Warn("metrics not written", "error", merr)
	}
	log.Info("batch complete", "total", len(reqs), "failed", failed)

	if err := env.print(c.App.Writer, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d requests failed", failed, len(reqs))
	}
	return nil
}
