package command

import (
	"context"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/edgeauth-go/internal/cli/config"
	"github.com/yndnr/edgeauth-go/internal/cli/output"
	"github.com/yndnr/edgeauth-go/internal/infra/buildinfo"
	"github.com/yndnr/edgeauth-go/internal/telemetry/logger"
	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

// AppName is the name of the CLI binary.
const AppName = "edgeauth-token"

const envMetadataKey = "edgeauth.env"

// App creates the CLI application.
func App() *cli.App {
	return newApp(edgeauth.SystemClock)
}

// newApp creates the CLI application with the given time source.
func newApp(clock edgeauth.Clock) *cli.App {
	return &cli.App{
		Name:    AppName,
		Usage:   "Generate Akamai Edge Authorization tokens",
		Version: buildinfo.Version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GenerateCommand(),
			BatchCommand(),
			InspectCommand(),
			VersionCommand(),
		},
		Before: func(c *cli.Context) error {
			env, err := setup(c, clock)
			if err != nil {
				return err
			}
			c.App.Metadata[envMetadataKey] = env
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Profile file (default ~/.edgeauth/config.yaml if present)",
			EnvVars: []string{"EDGEAUTH_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// runEnv is the per-invocation state shared by all commands.
type runEnv struct {
	ctx     context.Context
	profile *config.Profile
	format  output.Format
	clock   edgeauth.Clock
}

// setup loads the profile and builds the logger for this invocation.
func setup(c *cli.Context, clock edgeauth.Clock) (*runEnv, error) {
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output"] = c.String("output")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if c.Bool("verbose") {
		overrides["log.level"] = "debug"
	}

	profile, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := config.Verify(profile); err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(profile.Output)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  profile.Log.Level,
		Format: profile.Log.Format,
		Output: c.App.ErrWriter,
		Fields: []any{"version", buildinfo.Version},
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRunID(logger.WithLogger(ctx, log), ulid.Make().String())

	logger.L(ctx).Debug("profile loaded", "profile", fmt.Sprintf("%+v", *config.Sanitize(profile)))

	return &runEnv{
		ctx:     ctx,
		profile: profile,
		format:  format,
		clock:   clock,
	}, nil
}

// envFrom retrieves the invocation state stored by the Before hook.
func envFrom(c *cli.Context) (*runEnv, error) {
	if env, ok := c.App.Metadata[envMetadataKey].(*runEnv); ok {
		return env, nil
	}
	return nil, fmt.Errorf("%s: not initialized", AppName)
}

// print renders data to the application writer in the selected format.
func (e *runEnv) print(w io.Writer, data any) error {
	return output.NewFormatter(e.format).Format(w, data)
}
