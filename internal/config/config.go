package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/termdesk/internal/api"
	"github.com/atomicstack/termdesk/internal/app"
	"github.com/atomicstack/termdesk/internal/menu"
	"github.com/atomicstack/termdesk/internal/state"
	"github.com/atomicstack/termdesk/internal/surface"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the desktop file that was loaded, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig  = "TERMDESK_CONFIG"
	envWidth   = "TERMDESK_WIDTH"
	envHeight  = "TERMDESK_HEIGHT"
	envTrace   = "TERMDESK_TRACE"
	envLogFile = "TERMDESK_LOG_FILE"
	envAPIURL  = "TERMDESK_API_URL"
	envToken   = "TERMDESK_TOKEN"
	envUser    = "TERMDESK_USER"
	envRole    = "TERMDESK_ROLE"
	envSeed    = "TERMDESK_SEED"
)

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the desktop file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termdesk", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a desktop.yaml file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired desktop width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired desktop height in rows, taskbar included (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	apiURL := fs.String("api-url", envOrDefault(env, envAPIURL, ""), "base URL of the problems and code execution API")
	token := fs.String("token", envOrDefault(env, envToken, ""), "bearer token sent to the API")
	user := fs.String("user", envOrDefault(env, envUser, ""), "signed-in user name (empty for guest)")
	role := fs.String("role", envOrDefault(env, envRole, ""), "session role: guest, user or admin")
	seed := fs.Int64("seed", envOrInt64(env, envSeed, 0), "random seed for window placement and games (0 picks one)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	var file File
	if *configPath != "" {
		loaded, err := LoadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			APIURL:     firstNonEmpty(*apiURL, file.API.URL, api.DefaultBaseURL),
			Token:      *token,
			APITimeout: api.DefaultTimeout,
			User: state.User{
				Name: strings.TrimSpace(firstNonEmpty(*user, file.User.Name)),
				Role: state.Role(strings.ToLower(strings.TrimSpace(firstNonEmpty(*role, file.User.Role)))),
			},
			Seed:       *seed,
			JitterBase: menu.DefaultJitterBase,
			JitterSpan: menu.DefaultJitterSpan,
			WindowSize: menu.DefaultWindowSize,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: *configPath,
		Flags: map[string]string{
			"config":  *configPath,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"apiURL":  *apiURL,
			"token":   redact(*token),
			"user":    *user,
			"role":    *role,
			"seed":    strconv.FormatInt(*seed, 10),
		},
		Args: redactArgs(args),
	}
	file.apply(&cfg.App)
	return cfg, nil
}

// Redacted returns a copy safe to log: the bearer token is masked. Flags and
// Args are masked when they are recorded.
func (c Config) Redacted() Config {
	c.App.Token = redact(c.App.Token)
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "<redacted>"
}

// redactArgs hides the value of --token in the recorded argv.
func redactArgs(args []string) []string {
	out := append([]string(nil), args...)
	for i := 0; i < len(out); i++ {
		arg := out[i]
		name := strings.TrimLeft(arg, "-")
		switch {
		case arg == name:
			continue
		case name == "token" && i+1 < len(out):
			out[i+1] = redact(out[i+1])
			i++
		case strings.HasPrefix(name, "token="):
			out[i] = arg[:len(arg)-len(name)] + "token=" + redact(strings.TrimPrefix(name, "token="))
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrInt64(env map[string]string, key string, fallback int64) int64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks the values that cannot be range-checked while parsing.
func Validate(cfg Config) error {
	if _, err := state.ParseRole(string(cfg.App.User.Role)); err != nil {
		return err
	}
	if cfg.App.User.Role == state.RoleAdmin || cfg.App.User.Role == state.RoleUser {
		if cfg.App.User.Name == "" {
			return fmt.Errorf("role %s needs a user name", cfg.App.User.Role)
		}
	}
	base, span := cfg.App.JitterBase, cfg.App.JitterSpan
	if base.X < 0 || base.Y < 0 {
		return fmt.Errorf("launcher jitter base must be >= 0 (got %d,%d)", base.X, base.Y)
	}
	if span.X < 0 || span.Y < 0 {
		return fmt.Errorf("launcher jitter span must be >= 0 (got %d,%d)", span.X, span.Y)
	}
	size := cfg.App.WindowSize
	if size.Width < surface.MinWidth || size.Height < surface.MinHeight {
		return fmt.Errorf("window size must be at least %dx%d (got %dx%d)", surface.MinWidth, surface.MinHeight, size.Width, size.Height)
	}
	if cfg.App.APITimeout <= 0 {
		return fmt.Errorf("api timeout must be > 0 (got %s)", cfg.App.APITimeout)
	}
	return nil
}
