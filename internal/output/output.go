// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/highlight"
	"github.com/jcmp/jcmp/internal/jsonval"
	"github.com/jcmp/jcmp/internal/stats"
)

var (
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454"))
	equalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	middleStyle   = lipgloss.NewStyle().Underline(true).Bold(true)
)

// Spit renders the diff records to w according to the command's flags:
// --output selects the format, --only filters by kind, --color enables
// styling for text output, --stats appends the summary footer.
func Spit(w io.Writer, records []differ.Record, sum stats.Summary, cmd *cli.Command) error {
	// Default to stdout.
	if w == nil {
		w = os.Stdout
	}

	records = FilterKinds(records, cmd.String("only"))
	log.Debugf("rendering %d records as %s", len(records), cmd.String("output"))

	var err error
	switch cmd.String("output") {
	case "json":
		err = spitJSON(w, records)
	case "yaml":
		err = spitYAML(w, records)
	default:
		err = spitText(w, records, colorWanted(cmd, w))
	}
	if err != nil {
		return err
	}

	if cmd.Bool("stats") {
		fmt.Fprintln(w, sum.Footer())
	}

	return nil
}

// FilterKinds keeps only records whose kind appears in the comma-separated
// spec. An empty spec keeps everything; unknown names are ignored.
func FilterKinds(records []differ.Record, spec string) []differ.Record {
	if spec == "" {
		return records
	}

	keep := map[differ.Kind]bool{}
	for _, name := range strings.Split(spec, ",") {
		if k, ok := differ.ParseKind(strings.TrimSpace(name)); ok {
			keep[k] = true
		}
	}
	if len(keep) == 0 {
		return records
	}

	out := make([]differ.Record, 0, len(records))
	for _, r := range records {
		if keep[r.Kind] {
			out = append(out, r)
		}
	}
	return out
}

// colorWanted honors the --color flag but never styles a non-terminal sink.
func colorWanted(cmd *cli.Command, w io.Writer) bool {
	if !cmd.Bool("color") {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func spitText(w io.Writer, records []differ.Record, color bool) error {
	for _, r := range records {
		line := renderLine(r, color)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderLine produces one text line per record. Modified string pairs get
// their changed middle segments emphasized instead of whole-value
// replacement.
func renderLine(r differ.Record, color bool) string {
	icon := kindIcon(r.Kind)
	if color {
		icon = kindStyle(r.Kind).Render(icon)
	}

	switch r.Kind {
	case differ.Added:
		return fmt.Sprintf("%s %s: %s", icon, r.Path, renderValue(r.New))
	case differ.Removed:
		return fmt.Sprintf("%s %s: %s", icon, r.Path, renderValue(r.Old))
	case differ.Modified:
		if r.StringPair() {
			oldSpans, newSpans := highlight.Split(r.Old.Str(), r.New.Str())
			return fmt.Sprintf("%s %s: %s => %s", icon, r.Path,
				renderSpans(oldSpans, removedStyle, color),
				renderSpans(newSpans, addedStyle, color))
		}
		return fmt.Sprintf("%s %s: %s => %s", icon, r.Path, renderValue(r.Old), renderValue(r.New))
	default:
		return fmt.Sprintf("%s %s: %s", icon, r.Path, renderValue(r.Old))
	}
}

// renderSpans requotes a highlighted string with its middle styled. The
// quotes land outside the spans so the styling never swallows them.
func renderSpans(s highlight.Spans, style lipgloss.Style, color bool) string {
	middle := s.Middle
	if color {
		middle = style.Inherit(middleStyle).Render(middle)
	}
	return `"` + jsonEscape(s.Prefix) + middle + jsonEscape(s.Suffix) + `"`
}

// jsonEscape escapes a string fragment without surrounding quotes.
func jsonEscape(s string) string {
	b, _ := json.Marshal(s)
	return string(b[1 : len(b)-1])
}

func renderValue(v *jsonval.Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

func kindIcon(k differ.Kind) string {
	switch k {
	case differ.Added:
		return "+"
	case differ.Removed:
		return "-"
	case differ.Modified:
		return "~"
	default:
		return "="
	}
}

func kindStyle(k differ.Kind) lipgloss.Style {
	switch k {
	case differ.Added:
		return addedStyle
	case differ.Removed:
		return removedStyle
	case differ.Modified:
		return modifiedStyle
	default:
		return equalStyle
	}
}

// recordDoc is the machine-output shape of one record. Old/New are pointers
// so absence (Added/Removed) drops the key entirely while false/0/null
// payloads survive.
type recordDoc struct {
	Path string    `json:"path" yaml:"path"`
	Kind string    `json:"kind" yaml:"kind"`
	Old  *valueDoc `json:"old,omitempty" yaml:"old,omitempty"`
	New  *valueDoc `json:"new,omitempty" yaml:"new,omitempty"`
}

type valueDoc struct {
	v jsonval.Value
}

func (d *valueDoc) MarshalJSON() ([]byte, error) {
	return []byte(d.v.String()), nil
}

func (d *valueDoc) MarshalYAML() (interface{}, error) {
	return yamlify(d.v.Interface()), nil
}

// yamlify converts json.Number leaves to native numerics so the yaml encoder
// does not emit them as strings.
func yamlify(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = yamlify(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = yamlify(e)
		}
		return out
	default:
		return v
	}
}

func docs(records []differ.Record) []recordDoc {
	out := make([]recordDoc, len(records))
	for i, r := range records {
		d := recordDoc{Path: r.Path, Kind: r.Kind.String()}
		if r.Old != nil {
			d.Old = &valueDoc{v: *r.Old}
		}
		if r.New != nil {
			d.New = &valueDoc{v: *r.New}
		}
		out[i] = d
	}
	return out
}

// indentWidth honors the "indent" config key for machine output. Clamped so
// a bad value cannot break the encoder.
func indentWidth() int {
	n, _ := config.GetInt("indent", 2)
	if n < 0 {
		n = 0
	}
	return n
}

func spitJSON(w io.Writer, records []differ.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", indentWidth()))
	return enc.Encode(docs(records))
}

func spitYAML(w io.Writer, records []differ.Record) error {
	raw, err := yaml.Marshal(docs(records))
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
