package sample

import "testing"

func TestNameIf(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		wantName string
		wantOK   bool
	}{
		{"positive", 1, "alice", true},
		{"large positive", 1 << 30, "alice", true},
		{"zero", 0, "", false},
		{"negative", -1, "", false},
		{"large negative", -(1 << 30), "", false},
	}

	h := New("alice")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.NameIf(tc.value)
			if got != tc.wantName || ok != tc.wantOK {
				t.Errorf("NameIf(%d) = (%q, %v), want (%q, %v)", tc.value, got, ok, tc.wantName, tc.wantOK)
			}
		})
	}
}

func TestNameIfEmptyName(t *testing.T) {
	h := New("")

	got, ok := h.NameIf(1)
	if !ok {
		t.Error("NameIf(1) ok = false, want true")
	}
	if got != "" {
		t.Errorf("NameIf(1) = %q, want empty string", got)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  int
	}{
		{"nil", nil, 0},
		{"empty", []string{}, 0},
		{"one", []string{"a"}, 1},
		{"three", []string{"a", "b", "c"}, 3},
		{"duplicates", []string{"x", "x", "x", "x"}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Count(tc.items); got != tc.want {
				t.Errorf("Count(%v) = %d, want %d", tc.items, got, tc.want)
			}
		})
	}
}

func TestConstant(t *testing.T) {
	if Constant != "test_value" {
		t.Errorf("Constant = %q, want %q", Constant, "test_value")
	}
}
