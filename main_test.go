package main

import (
	"strings"
	"testing"

	"github.com/atomicstack/termdesk/internal/app"
	"github.com/atomicstack/termdesk/internal/config"
	"github.com/atomicstack/termdesk/internal/state"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Descriptors) != 3 {
		t.Fatalf("expected 3 descriptor entries, got %d", len(info.Descriptors))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Descriptors[i].Name != name {
			t.Fatalf("expected descriptor %d name %q, got %q", i, name, info.Descriptors[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:  80,
			Height: 24,
			APIURL: "http://localhost:8060",
			User:   state.User{Name: "ada", Role: state.RoleUser},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "desktop.yaml",
		Flags: map[string]string{
			"width":  "80",
			"height": "24",
			"apiURL": "http://localhost:8060",
			"user":   "ada",
		},
		Args: []string{"--user", "ada"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["user"] != "ada" {
		t.Fatalf("expected user flag ada, got %v", flagsValue["user"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configFile"] != "desktop.yaml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTracePayloadRedactsToken(t *testing.T) {
	cfg := config.Config{App: app.Config{Token: "s3cret"}}
	payload := startupTracePayload(cfg)
	cfgValue := payload["config"].(config.Config)
	if strings.Contains(cfgValue.App.Token, "s3cret") {
		t.Fatalf("token leaked into trace payload")
	}
	if cfg.App.Token != "s3cret" {
		t.Fatalf("caller's config should not be modified")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cases := [][]string{
		{"--role", "root"},
		{"--width", "-3"},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		if code := run(args, nil); code != exitConfig {
			t.Fatalf("run(%v) = %d, want %d", args, code, exitConfig)
		}
	}
}

func TestRedactedMasksTokenOnly(t *testing.T) {
	cfg := config.Config{App: app.Config{Token: "s3cret", APIURL: "http://x"}}
	safe := cfg.Redacted()
	if safe.App.Token == "s3cret" || safe.App.APIURL != "http://x" {
		t.Fatalf("unexpected redacted config %+v", safe.App)
	}
}
