package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
	"github.com/wheelibin/huecli/internal/models"
)

const onColor = "2"
const offColor = "1"
const warningColor = "3"

const highlightStyle = "monokai"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Printer writes command output, coloured when the output supports it.
type Printer struct {
	out       io.Writer
	highlight bool

	on      lipgloss.Style
	off     lipgloss.Style
	warning lipgloss.Style
}

func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:       out,
		highlight: r.ColorProfile() != termenv.Ascii,
		on:        r.NewStyle().Foreground(lipgloss.Color(onColor)),
		off:       r.NewStyle().Foreground(lipgloss.Color(offColor)),
		warning:   r.NewStyle().Foreground(lipgloss.Color(warningColor)),
	}
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.on.Render(msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.off.Render(msg))
}

func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out, p.warning.Render(msg))
}

// Light prints "<id> <name>", the name coloured by the light's on state.
func (p *Printer) Light(l models.Light) {
	fmt.Fprintf(p.out, "%d %s\n", l.ID, lo.Ternary(l.On, p.on, p.off).Render(l.Name))
}

// Switched echoes a state change response in the colour of the requested state.
func (p *Printer) Switched(body []byte, on bool) {
	fmt.Fprintln(p.out, lo.Ternary(on, p.on, p.off).Render(string(body)))
}

// JSON pretty prints a document with sorted keys and 4 space indents.
func (p *Printer) JSON(body []byte) error {
	pretty, err := PrettyJSON(body)
	if err != nil {
		return err
	}

	if !p.highlight {
		_, err = p.out.Write(pretty)
		return err
	}
	if err := quick.Highlight(p.out, string(pretty), "json", "terminal", highlightStyle); err != nil {
		return fmt.Errorf("error highlighting json: %w", err)
	}
	return nil
}

func PrettyJSON(body []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing json response: %w", err)
	}

	// encoding/json writes map keys in sorted order
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
