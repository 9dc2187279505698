package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tabfinder/internal/app"
	"github.com/atomicstack/tabfinder/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	require.Len(t, info.Probes, 3)
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		assert.Equal(t, name, info.Probes[i].Name)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ProfileDir: "/home/me/.mozilla/firefox/abcd.default-release",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"profile": "/home/me/.mozilla/firefox/abcd.default-release",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--profile", "/home/me/.mozilla/firefox/abcd.default-release"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	require.True(t, ok, "expected flags map in payload")
	assert.Equal(t, cfg.App.ProfileDir, flagsValue["profile"])
	assert.Equal(t, "80", flagsValue["width"])
	assert.Equal(t, "24", flagsValue["height"])
	assert.Equal(t, "true", flagsValue["footer"])
	assert.Equal(t, true, flagsValue["trace"])
	assert.Equal(t, "true", flagsValue["verbose"])
	assert.Equal(t, "trace.log", flagsValue["logFile"])

	assert.IsType(t, ttyDetails{}, payload["tty"])
	cfgValue, ok := payload["config"].(config.Config)
	require.True(t, ok, "expected config in payload")
	assert.Equal(t, cfg.App.ProfileDir, cfgValue.App.ProfileDir)
	assert.Equal(t, cfg.App.Width, cfgValue.App.Width)
}
