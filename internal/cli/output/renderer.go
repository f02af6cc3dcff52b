// Package output renders command results as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto" // styled text on a terminal, plain text otherwise
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer over the given writers.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	r.styles = NewStyles(r.styled())
	return r
}

// styled reports whether styled text output should be used.
func (r *Renderer) styled() bool {
	if r.mode == ModeJSON {
		return false
	}
	if r.mode == ModeText {
		return false
	}
	f, ok := r.out.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// EffectiveMode resolves ModeAuto to the concrete mode in use.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styles returns the style set for this renderer.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line of output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.styles.Success.Render(msg))
}

// Errorf writes a formatted message to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}

// JSON encodes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
