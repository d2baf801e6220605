package views

import "testing"

func TestPaginator_ClampsOnShrink(t *testing.T) {
	p := NewPaginator(2)
	p.SetTotal(5)
	p.SetCursor(4)

	if start, end := p.VisibleRange(); start != 4 || end != 5 {
		t.Errorf("VisibleRange() = %d,%d, want 4,5", start, end)
	}

	p.SetTotal(3)
	if p.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", p.Cursor())
	}
	if p.CurrentPage() != 2 || p.TotalPages() != 2 {
		t.Errorf("page %d of %d, want 2 of 2", p.CurrentPage(), p.TotalPages())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 on empty list", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 0 || end != 0 {
		t.Errorf("VisibleRange() = %d,%d, want 0,0", start, end)
	}
}

func TestPaginator_Movement(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(4)

	if p.CursorUp() {
		t.Error("CursorUp() at top should report no movement")
	}
	for i := 0; i < 3; i++ {
		if !p.CursorDown() {
			t.Fatalf("CursorDown() #%d should move", i)
		}
	}
	if p.CursorDown() {
		t.Error("CursorDown() at bottom should report no movement")
	}
	if start, _ := p.VisibleRange(); start != 3 {
		t.Errorf("page offset = %d, want 3", start)
	}
}
