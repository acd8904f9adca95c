package utility

import "testing"

func TestReverse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "olleh"},
		{"", ""},
		{"a", "a"},
		{"héllo", "olléh"},
	}
	for _, c := range cases {
		if got := Reverse(c.in); got != c.want {
			t.Errorf("Reverse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReverseBytes(t *testing.T) {
	in := []byte{1, 2, 3}
	got := ReverseBytes(in)
	if len(got) != 3 || got[0] != 3 || got[2] != 1 {
		t.Errorf("ReverseBytes = %v, want [3 2 1]", got)
	}
	if in[0] != 1 {
		t.Error("input slice must stay untouched")
	}
}

func TestContains(t *testing.T) {
	list := []string{"ocpp2.0.1", "ocpp2.1"}
	if !Contains(list, "ocpp2.1") {
		t.Error("expected ocpp2.1 to be found")
	}
	if Contains(list, "ocpp1.6") {
		t.Error("did not expect ocpp1.6 to be found")
	}
}

func TestNewUUID(t *testing.T) {
	a, b := NewUUID(), NewUUID()
	if a == "" || a == b {
		t.Errorf("uuids must be non-empty and unique, got %q and %q", a, b)
	}
}

func TestParseJsonRejectsObjects(t *testing.T) {
	if _, err := ParseJson([]byte(`{"a":1}`)); err == nil {
		t.Error("expected error for a top-level object")
	}
	fields, err := ParseJson([]byte(`[2,"1","Reset",{}]`))
	if err != nil {
		t.Fatalf("parsing array: %v", err)
	}
	if len(fields) != 4 {
		t.Errorf("fields = %d, want 4", len(fields))
	}
}
