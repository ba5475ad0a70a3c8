package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"line 1 col 1", NewPos(0, 1, 1), "1:1"},
		{"later line", NewPos(57, 10, 5), "10:5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{"valid position", NewPos(0, 1, 1), true},
		{"valid position line 100", NewPos(900, 100, 50), true},
		{"zero value", Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosAccessors(t *testing.T) {
	p := NewPos(12, 3, 7)
	if p.Offset() != 12 {
		t.Errorf("Offset() = %d, want 12", p.Offset())
	}
	if p.Line() != 3 {
		t.Errorf("Line() = %d, want 3", p.Line())
	}
	if p.Col() != 7 {
		t.Errorf("Col() = %d, want 7", p.Col())
	}
}
