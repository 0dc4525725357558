package match

import (
	"testing"

	"github.com/michalwa/go-cliffs/token"
)

func callTokens(values ...string) []*token.Token {
	tokens := make([]*token.Token, len(values))
	pos := 0
	for i, v := range values {
		tokens[i] = token.New("", v, pos, pos+len(v))
		pos += len(v) + 1
	}
	return tokens
}

func TestTake(t *testing.T) {
	m := NewCallMatch("a b c", callTokens("a", "b", "c"))
	if !m.HasTokens() {
		t.Fatal("expected remaining tokens")
	}
	m.Take(2)
	if len(m.Tokens) != 1 || m.Tokens[0].Value() != "c" {
		t.Errorf("expected token c to remain, got %v", m.Tokens)
	}
	m.Take(1)
	if m.HasTokens() {
		t.Error("expected no remaining tokens")
	}
}

func TestForkIsIndependent(t *testing.T) {
	m := NewCallMatch("a b", callTokens("a", "b"))
	m.Score = 1
	m.SetParam("x", 1)

	fork := m.Fork()
	if fork.Score != 0 {
		t.Errorf("expected a fork to start with score 0, got %v", fork.Score)
	}
	if _, ok := fork.Param("x"); ok {
		t.Error("expected a fork to start with no bindings")
	}

	fork.Take(1)
	fork.SetParam("y", 2)
	if len(m.Tokens) != 2 {
		t.Error("consuming on a fork must not consume on the parent")
	}
	if _, ok := m.Param("y"); ok {
		t.Error("binding on a fork must not bind on the parent")
	}
}

func TestJoin(t *testing.T) {
	m := NewCallMatch("a b c", callTokens("a", "b", "c"))
	m.Score = 1
	m.SetParam("x", 1)
	m.AddOptional(false)

	fork := m.Fork()
	fork.Take(2)
	fork.Score = 1.5
	fork.SetParam("y", 2)
	fork.AddOptional(true)
	fork.AddVariant(1)

	m.Join(fork)

	if m.Score != 2.5 {
		t.Errorf("expected score 2.5, got %v", m.Score)
	}
	if len(m.Tokens) != 1 {
		t.Errorf("expected the fork's consumption to carry over, got %v", m.Tokens)
	}
	if v, _ := m.Param("x"); v != 1 {
		t.Errorf("expected x = 1, got %v", v)
	}
	if v, _ := m.Param("y"); v != 2 {
		t.Errorf("expected y = 2, got %v", v)
	}
	if m.Optional(0) || !m.Optional(1) {
		t.Errorf("expected optionals [false true], got [%v %v]", m.Optional(0), m.Optional(1))
	}
	if m.Variant(0) != 1 {
		t.Errorf("expected variant #0 = 1, got %d", m.Variant(0))
	}
}

func TestJoinTerminated(t *testing.T) {
	m := NewCallMatch("a", callTokens("a"))
	fork := m.Fork()
	fork.Take(1)
	fork.Terminated = true

	m.Join(fork)
	if !m.Terminated {
		t.Error("expected termination to carry over from the fork")
	}
}
