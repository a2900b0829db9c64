package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/csscascade/cascade"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
tracing:
  adapter: go
  levels:
    root: Error
    cascade.provider: Info
scale: 2
providers:
  - file: theme.css
    priority: 200
    name: theme
  - file: user.css
    priority: 800
settings:
  ctk-theme-name: Adwaita
  ctk-cursor-blink: "true"
  ctk-cursor-blink-time: "1200"
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	f, err := Parse([]byte(testConfig))
	require.NoError(t, err)
	assert.Equal(t, 2, f.ScaleFactor())
	require.Len(t, f.Providers, 2)
	assert.Equal(t, "theme", f.Providers[0].Label())
	assert.Equal(t, "user.css", f.Providers[1].Label())
	assert.Equal(t, cascade.PriorityUser, f.Providers[1].Priority)
	assert.Equal(t, "user.css", f.ProviderPath(f.Providers[1]))
	//
	conf := f.Configuration()
	assert.Equal(t, "go", conf.GetString("tracing.adapter"))
	assert.Equal(t, "Error", conf.GetString("tracelevel.root"))
	assert.Equal(t, "Info", conf.GetString("tracelevel.cascade.provider"))
	assert.False(t, conf.IsSet("tracing.destination"))
	assert.Equal(t, 2, conf.GetInt("scale"))
	assert.True(t, conf.GetBool("ctk-cursor-blink"))
	assert.Equal(t, 1200, conf.GetInt("ctk-cursor-blink-time"))
	assert.Equal(t, 0, conf.GetInt("ctk-theme-name"))
	assert.False(t, conf.GetBool("ctk-theme-name"))
	assert.Contains(t, conf.Keys(), "ctk-theme-name")
}

func TestParseDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	f, err := Parse([]byte("settings: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, f.ScaleFactor())
	assert.Empty(t, f.Providers)
	assert.Equal(t, "go", f.Configuration().GetString("tracing.adapter"))
}

func TestParseRejectsInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	invalid := []string{
		"providers:\n  - file: a.css\n    priority: 0\n",
		"providers:\n  - file: a.css\n    priority: 1000\n",
		"providers:\n  - priority: 600\n",
		"tracing:\n  levels:\n    root: verbose\n",
		"tracing:\n  adapter: logrus\n",
		"scale: 17\n",
	}
	for _, text := range invalid {
		_, err := Parse([]byte(text))
		if !assert.Error(t, err, "expected %q to be rejected", text) {
			continue
		}
		assert.True(t, errors.Is(err, ErrInvalid), "have %v", err)
	}
	_, err := Parse([]byte("providers: [ file"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid), "YAML syntax errors are passed through")
}

func TestLoadAndCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	write("cascade.yaml", testConfig)
	write("theme.css", "@define-color accent #ff0000; @define-color bg #ffffff;")
	write("user.css", "@define-color accent #00ff00; p { color: @accent; }")
	f, err := Load(filepath.Join(dir, "cascade.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "theme.css"), f.ProviderPath(f.Providers[0]))
	c, err := f.Cascade()
	require.NoError(t, err)
	assert.Equal(t, 2, c.GetScale())
	assert.Equal(t, []int{cascade.PriorityTheme, cascade.PrioritySettings, cascade.PriorityUser}, c.Priorities())
	assert.Equal(t, "rgb(0,255,0)", c.GetColor("accent").String(), "user colors win")
	assert.Equal(t, "rgb(255,255,255)", c.GetColor("bg").String())
	require.NotNil(t, c.GetSettings())
	assert.Equal(t, "Adwaita", c.GetSettings().GetString("ctk-theme-name"))
	//
	require.NoError(t, os.Remove(filepath.Join(dir, "user.css")))
	_, err = f.Cascade()
	assert.Error(t, err)
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSettingsUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	src := map[string]string{"ctk-theme-name": "Adwaita"}
	s := NewSettings(src)
	src["ctk-theme-name"] = "Raleigh"
	assert.Equal(t, "Adwaita", s.GetSettings().GetString("ctk-theme-name"), "settings are copied")
	c := cascade.New()
	c.AddProvider(s, cascade.PrioritySettings)
	fired := 0
	c.Changed().Connect(func() { fired++ })
	s.Update(src)
	assert.Equal(t, 1, fired, "cascade forwards settings changes")
	assert.Equal(t, "Raleigh", c.GetSettings().GetString("ctk-theme-name"))
}

func TestSetupTracing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.config")
	defer teardown()
	//
	f, err := Parse([]byte(testConfig))
	require.NoError(t, err)
	require.NoError(t, SetupTracing(f.Configuration()))
	defer Teardown()
	buf := &bytes.Buffer{}
	trace2go.Root().SetOutput(buf)
	tracing.Errorf("an error")
	assert.Contains(t, buf.String(), "an error")
	assert.Equal(t, tracing.LevelInfo, tracing.Select("cascade.provider").GetTraceLevel())
}
