package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, ModeText, NewRenderer(&buf, &buf, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeText, NewRenderer(&buf, &buf, ModeText).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRenderer(&buf, &buf, ModeJSON).EffectiveMode())
	// Empty mode defaults to auto.
	assert.Equal(t, ModeText, NewRenderer(&buf, &buf, "").EffectiveMode())
}

func TestRendererWrites(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Printf("a %d\n", 1)
	r.Println("b")
	r.Success("done")
	r.Errorf("bad %s\n", "thing")

	assert.Equal(t, "a 1\nb\ndone\n", out.String())
	assert.Equal(t, "bad thing\n", errOut.String())
}

func TestRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"n": 3}))
	assert.JSONEq(t, `{"n": 3}`, buf.String())
}

func TestStylesUnstyledPassthrough(t *testing.T) {
	// Non-file writers never get styled output, so rendered text is
	// byte-identical to the input.
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeAuto)

	assert.Equal(t, "plain", r.Styles().Error.Render("plain"))
	assert.Equal(t, "plain", r.Styles().Bold.Render("plain"))
}
