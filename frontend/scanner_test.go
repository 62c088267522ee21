package frontend_test

import (
	"testing"

	"github.com/Y-yahya/Compiler-Front-end/frontend"
	"github.com/Y-yahya/Compiler-Front-end/source"
)

func TestScannerTracksPositions(t *testing.T) {
	file := source.NewFile("test.tdl", "ab\nc")
	s := frontend.NewScanner(file)

	expected := []struct {
		r    rune
		line int
		col  int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
	}

	for i, exp := range expected {
		if s.Done() {
			t.Fatalf("rune %d: scanner exhausted early", i)
		}

		r, pos := s.Next()
		if r != exp.r {
			t.Errorf("rune %d: expected %q, got %q", i, exp.r, r)
		}
		if pos.Line != exp.line || pos.Col != exp.col {
			t.Errorf("rune %d: expected position %d:%d, got %d:%d",
				i, exp.line, exp.col, pos.Line, pos.Col)
		}
	}

	if !s.Done() {
		t.Error("expected scanner to be exhausted")
	}

	// After exhaustion the cursor points one column past the final rune
	if pos := s.Pos(); pos.Line != 2 || pos.Col != 2 {
		t.Errorf("expected end position 2:2, got %d:%d", pos.Line, pos.Col)
	}
}

func TestScannerPeekDoesNotAdvance(t *testing.T) {
	file := source.NewFile("test.tdl", "xy")
	s := frontend.NewScanner(file)

	for i := 0; i < 3; i++ {
		r, pos := s.Peek()
		if r != 'x' || pos.Col != 1 {
			t.Errorf("peek %d: expected 'x' at column 1, got %q at column %d", i, r, pos.Col)
		}
	}

	if r, _ := s.Next(); r != 'x' {
		t.Errorf("expected Next to return 'x', got %q", r)
	}
	if r, _ := s.Next(); r != 'y' {
		t.Errorf("expected Next to return 'y', got %q", r)
	}
}

func TestScannerEmptyFile(t *testing.T) {
	file := source.NewFile("test.tdl", "")
	s := frontend.NewScanner(file)

	if !s.Done() {
		t.Error("expected empty file to be exhausted immediately")
	}
	if pos := s.Pos(); pos.Line != 1 || pos.Col != 1 {
		t.Errorf("expected position 1:1, got %d:%d", pos.Line, pos.Col)
	}
}
