package match

import (
	"testing"
)

func TestLooseBool(t *testing.T) {
	samples := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"0", false},
		{"-3.5", true},
		{"0.0", false},
		{"y", true},
		{"YES", true},
		{"true", true},
		{"sure", true},
		{"alright", true},
		{"do", true},
		{"n", false},
		{"No", false},
		{"false", false},
		{"dont", false},
	}
	for i, sample := range samples {
		got, err := LooseBool(sample.in)
		if err != nil {
			t.Errorf("sample #%d %q: unexpected error: %s", i, sample.in, err)
			continue
		}
		if got != sample.want {
			t.Errorf("sample #%d %q: expected %v, got %v", i, sample.in, sample.want, got)
		}
	}

	for i, in := range []string{"", "maybe", "yep"} {
		if _, err := LooseBool(in); err == nil {
			t.Errorf("sample #%d %q: error expected", i, in)
		}
	}
}

func TestBuiltinTypes(t *testing.T) {
	m := NewMatcher()
	for _, name := range []string{"str", "int", "float", "bool"} {
		if !m.HasType(name) {
			t.Errorf("expected built-in type %q to be registered", name)
		}
	}

	if v, err := m.ParseArg("int", "42"); err != nil || v != 42 {
		t.Errorf("expected 42, got %v (%v)", v, err)
	}
	if v, err := m.ParseArg("float", "2.5"); err != nil || v != 2.5 {
		t.Errorf("expected 2.5, got %v (%v)", v, err)
	}
	if v, err := m.ParseArg("str", "foo"); err != nil || v != "foo" {
		t.Errorf("expected %q, got %v (%v)", "foo", v, err)
	}
	if v, err := m.ParseArg("bool", "yes"); err != nil || v != true {
		t.Errorf("expected true, got %v (%v)", v, err)
	}

	if _, err := m.ParseArg("int", "seven"); err == nil {
		t.Error("error expected for a non-numeric int argument")
	}
	if _, err := m.ParseArg("color", "red"); err == nil {
		t.Error("error expected for an undefined type")
	}
}

func TestRegisterType(t *testing.T) {
	m := NewMatcher()
	m.RegisterType("upper", func(s string) (any, error) {
		out := make([]rune, 0, len(s))
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
		}
		return string(out), nil
	})

	if v, err := m.ParseArg("upper", "loud"); err != nil || v != "LOUD" {
		t.Errorf("expected %q, got %v (%v)", "LOUD", v, err)
	}
}

func TestSimilarity(t *testing.T) {
	m := NewMatcher()

	if got := m.Similarity("exit", "exit"); got != 1 {
		t.Errorf("expected identical strings to score 1, got %v", got)
	}
	if got := m.Similarity("exit", "exi"); got < m.Threshold {
		t.Errorf("expected %v to clear the threshold %v", got, m.Threshold)
	}
	if got := m.Similarity("exit", "ex"); got >= m.Threshold {
		t.Errorf("expected %v to stay below the threshold %v", got, m.Threshold)
	}
	if got := m.Similarity("exit", "zzzz"); got != 0 {
		t.Errorf("expected disjoint strings to score 0, got %v", got)
	}
}
