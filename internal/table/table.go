// Package table provides a simple API for rendering tabular data as
// an ASCII box. It is used to implement --format=table.
package table

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"reflect"
	"strings"

	"github.com/replit/autoloanc/internal/util"
	"golang.org/x/term"
)

// New creates a new table with the given headers. The table has no
// rows; add them with AddRow.
func New(headers ...string) Table {
	return Table{headers: headers}
}

// FromStructs creates a new table from the given slice of structs.
// The table headers are generated from the struct field reflection
// metadata: each struct field must have a reflection metadata key
// "pretty" whose value is the header to display. Only string fields
// are allowed; they are used as table cells directly.
func FromStructs(structs interface{}) (Table, error) {
	sv := reflect.ValueOf(structs)
	if sv.Kind() != reflect.Slice {
		return Table{}, fmt.Errorf("table.FromStructs: expected a slice, got %s", sv.Kind())
	}
	st := reflect.TypeOf(structs).Elem()
	if st.Kind() != reflect.Struct {
		return Table{}, fmt.Errorf("table.FromStructs: expected a slice of structs, got %s", st.Kind())
	}

	headers := []string{}
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if field.Type.Kind() != reflect.String {
			return Table{}, fmt.Errorf("table.FromStructs: field %s is not a string", field.Name)
		}
		headers = append(headers, field.Tag.Get("pretty"))
	}

	t := New(headers...)
	for j := 0; j < sv.Len(); j++ {
		row := make([]string, st.NumField())
		for i := range row {
			row[i] = sv.Index(j).Field(i).String()
		}
		if err := t.AddRow(row...); err != nil {
			return Table{}, err
		}
	}
	return t, nil
}

// AddRow adds a row at the end of a table. The length of the row must
// be the same as the number of headers in the table, or an
// *ArityError is returned and the table is left unchanged.
func (t *Table) AddRow(row ...string) error {
	if len(row) != len(t.headers) {
		return &ArityError{Got: len(row), Want: len(t.headers)}
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

// Headers returns a copy of the header cells.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// columnWidth returns the single width used for every column. It
// starts at MinColumnWidth plus the gutter and only grows, to the
// widest header or cell plus the gutter, when some string is longer
// than that starting width.
func (t *Table) columnWidth() int {
	width := MinColumnWidth + ColumnGutter
	longest := 0
	for _, header := range t.headers {
		if n := len([]rune(header)); n > longest {
			longest = n
		}
	}
	for i := range t.rows {
		for _, cell := range t.rows[i] {
			if n := len([]rune(cell)); n > longest {
				longest = n
			}
		}
	}
	if longest > width {
		width = longest + ColumnGutter
	}
	return width
}

// Width returns the length of every line Render produces.
func (t *Table) Width() int {
	cols := len(t.headers)
	return t.columnWidth()*cols + len(ColumnDivider)*(cols+1)
}

// padLeft right-justifies s in a field of width runes.
func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// padRight left-justifies s in a field of width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Render formats the table as a box of ASCII text: a rule, the
// centered headers, a second rule, one right-aligned line per row and
// a closing rule. Every line ends with a newline. Render does not
// modify the table.
func (t *Table) Render() string {
	width := t.columnWidth()
	rule := strings.Repeat(RowSpacer, t.Width())

	var sb strings.Builder
	sb.WriteString(rule + "\n")

	sb.WriteString(ColumnDivider)
	for _, header := range t.headers {
		indent := (width - len([]rune(header))) / 2
		sb.WriteString(padRight(strings.Repeat(" ", indent)+header, width))
		sb.WriteString(ColumnDivider)
	}
	sb.WriteString("\n")
	sb.WriteString(rule + "\n")

	for i := range t.rows {
		sb.WriteString(ColumnDivider)
		for _, cell := range t.rows[i] {
			sb.WriteString(padLeft(cell, width))
			sb.WriteString(ColumnDivider)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(rule + "\n")
	return sb.String()
}

// printOrPage either writes text to w or invokes the 'less' utility
// to display it. 'less' is invoked only if w is a tty, the provided
// width is too wide for the tty, and 'less' is actually installed.
func printOrPage(w io.Writer, text string, width int, log *slog.Logger) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, text)
		return err
	}

	termWidth, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < termWidth {
		_, err := io.WriteString(w, text)
		return err
	}

	less, err := exec.LookPath("less")
	if err != nil {
		_, err := io.WriteString(w, text)
		return err
	}

	args := []string{"less", "-S"}
	log.Debug("paging table", "cmd", util.QuoteCmd(args), "width", width, "termWidth", termWidth)

	cmd := exec.Cmd{
		Path: less,
		Args: args,
		// Docker images often lack LANG, so tell less the charset
		// explicitly.
		Env:    append(os.Environ(), "LESSCHARSET=utf-8"),
		Stdout: f,
		Stderr: os.Stderr,
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("connecting pipe to pager stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting pager: %w", err)
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		return fmt.Errorf("writing to pager: %w", err)
	}
	if err := stdin.Close(); err != nil {
		return fmt.Errorf("closing pipe to pager stdin: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// Print writes the rendered table to w in a single write. If page is
// set, w is a terminal too narrow for the table, and the 'less'
// utility is installed, Print invokes it with the -S option to
// truncate long lines and allow horizontal scrolling.
func (t *Table) Print(w io.Writer, page bool, log *slog.Logger) error {
	text := t.Render()
	if !page {
		_, err := io.WriteString(w, text)
		return err
	}
	return printOrPage(w, text, t.Width(), log)
}
