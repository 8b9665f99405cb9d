package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputBuffer_DiffSkipsUnchangedCells(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	cells := []Cell{
		{Rune: 'a', Fg: RGBWhite, Bg: RGBBlack},
		{Rune: 'b', Fg: RGBWhite, Bg: RGBBlack},
	}
	if err := o.flush(cells, 2, 1); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if !strings.Contains(buf.String(), "ab") {
		t.Fatalf("Expected first flush to write 'ab', got %q", buf.String())
	}

	buf.Reset()
	if err := o.flush(cells, 2, 1); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if buf.String() != string(csiSGR0) {
		t.Errorf("Expected identical frame to write only SGR reset, got %q", buf.String())
	}

	buf.Reset()
	cells[1].Rune = 'c'
	if err := o.flush(cells, 2, 1); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "a") || !strings.Contains(out, "c") {
		t.Errorf("Expected only changed cell to be written, got %q", out)
	}
	if !strings.Contains(out, "\x1b[1;2H") {
		t.Errorf("Expected cursor move to column 2, got %q", out)
	}
}

func TestOutputBuffer_256ColorSequence(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	cells := []Cell{{Rune: 'x', Fg: RGBBlack, Bg: RGB{255, 0, 0}, Attrs: AttrBold}}
	if err := o.flush(cells, 1, 1); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	want := "\x1b[0;1;38;5;16;48;5;196mx"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("Expected %q in output, got %q", want, buf.String())
	}
}

func TestOutputBuffer_StyleCoalesced(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorModeTrueColor)

	cells := []Cell{
		{Rune: 'a', Fg: RGBWhite, Bg: RGBGreen},
		{Rune: 'b', Fg: RGBWhite, Bg: RGBGreen},
		{Rune: 'c', Fg: RGBWhite, Bg: RGBGreen},
	}
	if err := o.flush(cells, 3, 1); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if n := strings.Count(buf.String(), "48;2;"); n != 1 {
		t.Errorf("Expected one background sequence for a same-style run, got %d", n)
	}
}
