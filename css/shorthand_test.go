package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.css")
	defer teardown()
	//
	decls, err := ExpandShorthand("padding", "3px 5px")
	require.NoError(t, err)
	assert.Equal(t, []Declaration{
		{"padding-top", "3px"},
		{"padding-right", "5px"},
		{"padding-bottom", "3px"},
		{"padding-left", "5px"},
	}, decls)
	decls, err = ExpandShorthand("border-color", "red rgb(0, 0, 0) @accent")
	require.NoError(t, err)
	assert.Equal(t, "border-top-color", decls[0].Name)
	assert.Equal(t, "rgb(0, 0, 0)", decls[1].Value)
	assert.Equal(t, "@accent", decls[2].Value)
	assert.Equal(t, "rgb(0, 0, 0)", decls[3].Value)
	decls, err = ExpandShorthand("border-radius", "1px 2px 3px 4px")
	require.NoError(t, err)
	assert.Equal(t, Declaration{"border-bottom-left-radius", "4px"}, decls[3])
	decls, err = ExpandShorthand("-ctk-outline-radius", "inherit")
	require.NoError(t, err)
	assert.Equal(t, Declaration{"-ctk-outline-top-right-radius", "inherit"}, decls[1])
	// every longhand must be a registered property
	for _, sh := range []string{"margin", "padding", "border-color", "border-width",
		"border-style", "border-radius", "outline-radius"} {
		decls, err := ExpandShorthand(sh, "0")
		require.NoError(t, err)
		for _, d := range decls {
			_, ok := PropertyByName(d.Name)
			assert.True(t, ok, "%s expands to unknown property %s", sh, d.Name)
		}
	}
	_, err = ExpandShorthand("margin", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
	_, err = ExpandShorthand("color", "red")
	assert.Error(t, err)
	assert.True(t, IsShorthand("Margin"))
	assert.False(t, IsShorthand("margin-top"))
}
