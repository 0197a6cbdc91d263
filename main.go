package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/termdesk/internal/app"
	"github.com/atomicstack/termdesk/internal/config"
	"github.com/atomicstack/termdesk/internal/logging"
	"github.com/atomicstack/termdesk/internal/logging/events"
)

const (
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ()))
}

func run(args, environ []string) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitConfig
	}

	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitRuntime
	}
	return 0
}

// startupTracePayload describes how the desktop was started. Secrets are
// masked before anything reaches the log.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	safe := cfg.Redacted()
	flags := make(map[string]interface{}, len(safe.Flags)+2)
	for k, v := range safe.Flags {
		flags[k] = v
	}
	flags["trace"] = safe.Logging.Trace
	flags["logFile"] = safe.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   safe.Args,
		"flags":  flags,
		"config": safe,
		"tty":    collectTTYDetails(),
	}
	if safe.File != "" {
		payload["configFile"] = safe.File
	}
	for key, lookup := range map[string]func() (string, error){"executable": os.Executable, "cwd": os.Getwd} {
		if v, err := lookup(); err == nil {
			payload[key] = v
		} else {
			payload[key+"Error"] = err.Error()
		}
	}
	return payload
}

type ttyDetails struct {
	Detected    *ttyDetected    `json:"detected,omitempty"`
	Descriptors []ttyDescriptor `json:"descriptors"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyDescriptor struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals and the
// first size found; it explains a zero-sized desktop in the trace.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Descriptors: make([]ttyDescriptor, 0, len(files))}
	for i, f := range files {
		desc := ttyDescriptor{Name: names[i]}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			desc.IsTerminal = true
			if width, height, err := term.GetSize(fd); err != nil {
				desc.Error = err.Error()
			} else {
				desc.Width, desc.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttyDetected{Source: desc.Name, Width: width, Height: height}
				}
			}
		}
		details.Descriptors = append(details.Descriptors, desc)
	}
	return details
}
