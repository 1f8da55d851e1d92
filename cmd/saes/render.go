package main

import (
	"fmt"
	"io"

	"github.com/codahale/saes"
	"github.com/codahale/saes/internal/word"
	"github.com/jedib0t/go-pretty/v6/table"
)

type step struct {
	stage saes.Stage
	state uint16
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func renderTrace(w io.Writer, steps []step) {
	t := newTable(w, "")
	t.AppendHeader(table.Row{"Round", "Step", "Hex", "Nibbles"})
	for _, s := range steps {
		t.AppendRow(table.Row{s.stage.Round, s.stage.Op.String(), word.Hex(s.state), word.Nibbles(s.state)})
	}
	t.Render()
}

func renderRoundKeys(w io.Writer, rk saes.RoundKeys) {
	t := newTable(w, "")
	t.AppendHeader(table.Row{"Round key", "Hex", "Binary"})
	for i, k := range rk {
		t.AppendRow(table.Row{fmt.Sprintf("K%d", i), word.Hex(k), word.Binary(k)})
	}
	t.Render()
}

// renderSBox prints a 4x4 table with rows and columns labelled by the two-bit halves of the input nibble.
func renderSBox(w io.Writer, title string, box [4][4]byte) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"", "00", "01", "10", "11"})
	for i, row := range box {
		r := table.Row{fmt.Sprintf("%02b", i)}
		for _, v := range row {
			r = append(r, fmt.Sprintf("%X", v))
		}
		t.AppendRow(r)
	}
	t.Render()
}

func renderGF16(w io.Writer, tbl [16][16]byte) {
	t := newTable(w, "GF(2^4) multiplication, x^4 + x + 1")
	header := table.Row{"×"}
	for b := range 16 {
		header = append(header, fmt.Sprintf("%X", b))
	}
	t.AppendHeader(header)
	for a, row := range tbl {
		r := table.Row{fmt.Sprintf("%X", a)}
		for _, v := range row {
			r = append(r, fmt.Sprintf("%X", v))
		}
		t.AppendRow(r)
	}
	t.Render()
}
