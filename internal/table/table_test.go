package table

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestRenderUniformLineLength(t *testing.T) {
	tbl := New("A", "BB", "CCC", "D")
	require.NoError(t, tbl.AddRow("1", "22", "333", "4444"))

	out := tbl.Render()
	assert.True(t, strings.HasSuffix(out, "\n"))

	ls := lines(out)
	require.Len(t, ls, 5)
	width := MinColumnWidth + ColumnGutter
	want := width*4 + len(ColumnDivider)*5
	assert.Equal(t, want, tbl.Width())
	for _, l := range ls {
		assert.Len(t, l, want)
	}
}

func TestRenderLayout(t *testing.T) {
	tbl := New("A", "BB", "CCC", "D")
	require.NoError(t, tbl.AddRow("1", "22", "333", "4444"))
	ls := lines(tbl.Render())

	width := MinColumnWidth + ColumnGutter
	rule := strings.Repeat("-", tbl.Width())
	assert.Equal(t, rule, ls[0])
	assert.Equal(t, rule, ls[2])
	assert.Equal(t, rule, ls[4])

	header := " | " +
		strings.Repeat(" ", 9) + "A" + strings.Repeat(" ", 10) + " | " +
		strings.Repeat(" ", 9) + "BB" + strings.Repeat(" ", 9) + " | " +
		strings.Repeat(" ", 8) + "CCC" + strings.Repeat(" ", 9) + " | " +
		strings.Repeat(" ", 9) + "D" + strings.Repeat(" ", 10) + " | "
	assert.Equal(t, header, ls[1])

	row := " | " +
		strings.Repeat(" ", width-1) + "1" + " | " +
		strings.Repeat(" ", width-2) + "22" + " | " +
		strings.Repeat(" ", width-3) + "333" + " | " +
		strings.Repeat(" ", width-4) + "4444" + " | "
	assert.Equal(t, row, ls[3])
}

func TestRenderGrowsForLongCells(t *testing.T) {
	long := strings.Repeat("x", 30)
	tbl := New("short", "also short")
	require.NoError(t, tbl.AddRow("1", "2"))
	require.NoError(t, tbl.AddRow(long, "3"))

	width := 30 + ColumnGutter
	assert.Equal(t, width, tbl.columnWidth())

	ls := lines(tbl.Render())
	require.Len(t, ls, 6)
	for _, l := range ls {
		assert.Len(t, l, width*2+len(ColumnDivider)*3)
	}
	assert.Contains(t, ls[4], " | "+strings.Repeat(" ", ColumnGutter)+long+" | ")

	hdr := New(strings.Repeat("h", 21))
	assert.Equal(t, 21+ColumnGutter, hdr.columnWidth())
}

func TestColumnWidthThreshold(t *testing.T) {
	base := MinColumnWidth + ColumnGutter

	// Strings up to the starting width still fit without growing it.
	for _, n := range []int{MinColumnWidth, 17, 18, base} {
		tbl := New("A", "B")
		require.NoError(t, tbl.AddRow(strings.Repeat("x", n), "1"))
		assert.Equal(t, base, tbl.columnWidth(), "cell of %d", n)

		hdr := New(strings.Repeat("h", n))
		assert.Equal(t, base, hdr.columnWidth(), "header of %d", n)
	}

	// One past it grows to the longest string plus the gutter.
	tbl := New("A", strings.Repeat("h", base+1))
	require.NoError(t, tbl.AddRow("1", strings.Repeat("x", base+3)))
	assert.Equal(t, base+3+ColumnGutter, tbl.columnWidth())

	ls := lines(tbl.Render())
	for _, l := range ls {
		assert.Len(t, l, tbl.Width())
	}
}

func TestRenderEighteenCharacterCell(t *testing.T) {
	tbl := New("Term Length")
	cell := strings.Repeat("9", 18)
	require.NoError(t, tbl.AddRow(cell))

	ls := lines(tbl.Render())
	require.Len(t, ls, 5)
	assert.Equal(t, " | "+"  "+cell+" | ", ls[3])
}

func TestRenderNoRows(t *testing.T) {
	tbl := New("Term Length")
	ls := lines(tbl.Render())
	require.Len(t, ls, 4)
	assert.Equal(t, ls[0], ls[2])
	assert.Equal(t, ls[2], ls[3])
}

func TestRenderPreservesInsertionOrder(t *testing.T) {
	tbl := New("n")
	for _, v := range []string{"3", "1", "2"} {
		require.NoError(t, tbl.AddRow(v))
	}
	ls := lines(tbl.Render())
	assert.True(t, strings.HasSuffix(strings.TrimRight(ls[3], " |"), "3"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(ls[4], " |"), "1"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(ls[5], " |"), "2"))
}

func TestRenderIsRepeatable(t *testing.T) {
	tbl := New("A", "B")
	require.NoError(t, tbl.AddRow("1", "2"))
	first := tbl.Render()
	assert.Equal(t, first, tbl.Render())
	assert.Equal(t, 1, tbl.Len())
}

func TestAddRowArity(t *testing.T) {
	tbl := New("A", "B", "C")

	err := tbl.AddRow("1", "2")
	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 2, arityErr.Got)
	assert.Equal(t, 3, arityErr.Want)
	assert.EqualError(t, err, "wrong number of columns in table row (2 != 3)")

	assert.Error(t, tbl.AddRow("1", "2", "3", "4"))
	assert.Equal(t, 0, tbl.Len())
}

func TestAddRowCopiesCells(t *testing.T) {
	tbl := New("A", "B")
	row := []string{"1", "2"}
	require.NoError(t, tbl.AddRow(row...))
	row[0] = "changed"
	assert.NotContains(t, tbl.Render(), "changed")
}

type fruit struct {
	Name  string `pretty:"Name"`
	Color string `pretty:"Color"`
}

func TestFromStructs(t *testing.T) {
	tbl, err := FromStructs([]fruit{
		{Name: "apple", Color: "red"},
		{Name: "banana"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Color"}, tbl.Headers())
	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, tbl.Render(), "banana")
}

func TestFromStructsRejectsNonStrings(t *testing.T) {
	type bad struct {
		Count int `pretty:"Count"`
	}
	_, err := FromStructs([]bad{{Count: 1}})
	assert.Error(t, err)

	_, err = FromStructs(fruit{})
	assert.Error(t, err)
}

func TestPrintWritesRender(t *testing.T) {
	tbl := New("A")
	require.NoError(t, tbl.AddRow("1"))

	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	for _, page := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, tbl.Print(&buf, page, log))
		assert.Equal(t, tbl.Render(), buf.String())
	}
}
