package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/s8508235/src-cli/internal/config"
	"github.com/s8508235/src-cli/internal/segment"
)

// Renderer writes display tokens to w.
type Renderer interface {
	Render(w io.Writer, tokens []segment.DisplayToken) error
}

type LinesRenderer struct{}

type JSONRenderer struct {
	Indent bool
}

type TableRenderer struct{}

func NewRenderer(format string) (Renderer, error) {
	switch format {
	case config.FormatLines:
		return LinesRenderer{}, nil
	case config.FormatJSON:
		return JSONRenderer{Indent: true}, nil
	case config.FormatTable:
		return TableRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q: use lines, json, or table", format)
	}
}

// one token per line
func (LinesRenderer) Render(w io.Writer, tokens []segment.DisplayToken) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

func (r JSONRenderer) Render(w io.Writer, tokens []segment.DisplayToken) error {
	if tokens == nil {
		tokens = []segment.DisplayToken{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(tokens)
}

// position, token, and terminal display width
func (TableRenderer) Render(w io.Writer, tokens []segment.DisplayToken) error {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(tok.Position),
			tok.Text,
			strconv.Itoa(runewidth.StringWidth(tok.Text)),
		})
	}
	_, err := fmt.Fprintln(w, renderTable(
		[]string{"#", "Token", "Width"},
		rows,
		[]text.Align{text.AlignRight, text.AlignLeft, text.AlignRight},
	))
	return err
}

// SpansTable renders the quote-scanner spans with their script class.
func SpansTable(w io.Writer, spans []segment.Span) error {
	rows := make([][]string, 0, len(spans))
	for i, span := range spans {
		script := "-"
		if span.Mode == segment.Unquoted {
			script = segment.Classify(span.Text).String()
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			span.Mode.String(),
			script,
			fmt.Sprintf("%d-%d", span.Start, span.End),
			strconv.Quote(span.Text),
		})
	}
	_, err := fmt.Fprintln(w, renderTable(
		[]string{"#", "Mode", "Script", "Bytes", "Text"},
		rows,
		[]text.Align{text.AlignRight, text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignLeft},
	))
	return err
}

func renderTable(headers []string, rows [][]string, aligns []text.Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
