package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func intervalFlag(t *testing.T) cli.IntFlag {
	t.Helper()
	for _, f := range newApp().Flags {
		if intf, ok := f.(cli.IntFlag); ok && intf.Name == "interval" {
			return intf
		}
	}
	t.Fatal("interval flag not registered")
	return cli.IntFlag{}
}

func TestIntervalFlagTakesWholeSeconds(t *testing.T) {
	f := intervalFlag(t)
	assert.Equal(t, "INTERVAL_SECONDS", f.EnvVar)
	assert.Equal(t, 5, f.Value)
}

func TestIntervalSecondsEnvIsHonored(t *testing.T) {
	t.Setenv("INTERVAL_SECONDS", "7")
	app := newApp()
	app.Action = func(c *cli.Context) error { return nil }
	require.NoError(t, app.Run([]string{"foodgen"}))
	assert.Equal(t, 7, intervalSeconds)
}
