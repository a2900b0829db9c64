package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestValueCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	out, err := run(t, "value", "color", "red")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "color: rgb(255,0,0)"), "have %q", out)
	out, err = run(t, "value", "--tree", "box-shadow", "inset 1px 2px red")
	require.NoError(t, err)
	assert.Contains(t, out, "layer 0")
	assert.Contains(t, out, "inset")
	_, err = run(t, "value", "float", "left")
	assert.Error(t, err)
	_, err = run(t, "value", "margin-top", "10")
	assert.Error(t, err)
}

func TestTransitionCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	out, err := run(t, "transition", "margin-top", "0", "10px", "--steps", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0.000  0px", lines[0])
	assert.Equal(t, "0.500  5px", lines[1])
	assert.Equal(t, "1.000  10px", lines[2])
	//
	out, err = run(t, "transition", "ctk-key-bindings", "emacs", "vi", "-n", "4")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "0.250  emacs (discrete)", lines[1])
	assert.Equal(t, "0.500  vi (discrete)", lines[2])
	_, err = run(t, "transition", "opacity", "0", "1", "--steps", "0")
	assert.Error(t, err)
}

func TestStyleCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}
	write("theme.css", "@define-color text #0000ff; body { margin-top: 3px; }")
	conf := write("cascade.yaml", "tracing:\n  adapter: nop\nproviders:\n  - file: theme.css\n    priority: 200\n")
	doc := write("page.html", `<html><head><style>p { color: @text; }</style></head>
<body><p>Hello</p></body></html>`)
	out, err := run(t, "style", doc, "--config", conf, "-p", "color", "-p", "margin-top")
	require.NoError(t, err)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "rgb(0,0,255)")
	assert.Contains(t, out, "3px")
	//
	_, err = run(t, "style", filepath.Join(dir, "missing.html"))
	assert.Error(t, err)
	_, err = run(t, "style", doc, "-p", "no-such-property")
	assert.Error(t, err)
}
