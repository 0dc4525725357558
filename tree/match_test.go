package tree_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/michalwa/go-cliffs/lexer"
	"github.com/michalwa/go-cliffs/match"
	"github.com/michalwa/go-cliffs/syntax"
	"github.com/michalwa/go-cliffs/tree"
)

func compile(t *testing.T, grammar string) tree.Node {
	t.Helper()
	root, err := syntax.Parse(grammar)
	if err != nil {
		t.Fatalf("grammar %q: unexpected error: %s", grammar, err)
	}
	return root
}

func matchCall(t *testing.T, grammar, call string) (*match.CallMatch, *match.Fail) {
	t.Helper()
	root := compile(t, grammar)
	m := match.NewCallMatch(call, lexer.New().Tokenize(call))
	fail := root.Match(m, match.NewMatcher())
	if fail == nil && m.HasTokens() {
		t.Fatalf("grammar %q call %q: %d tokens left unconsumed", grammar, call, len(m.Tokens))
	}
	return m, fail
}

func checkSuccess(t *testing.T, grammar, call string) *match.CallMatch {
	t.Helper()
	m, fail := matchCall(t, grammar, call)
	if fail != nil {
		t.Fatalf("grammar %q call %q: unexpected failure: %s", grammar, call, fail)
	}
	return m
}

func checkFailCode(t *testing.T, grammar, call string, code int) *match.Fail {
	t.Helper()
	_, fail := matchCall(t, grammar, call)
	if fail == nil {
		t.Fatalf("grammar %q call %q: failure expected, got success", grammar, call)
	}
	if fail.Code != code {
		t.Fatalf("grammar %q call %q: expected failure code %d, got %d (%s)",
			grammar, call, code, fail.Code, fail.Message)
	}
	return fail
}

func TestAlarm(t *testing.T) {
	const grammar = "set [loud] alarm at <time: int> (am|pm)"

	m := checkSuccess(t, grammar, "set loud alarm at 7 am")
	if !m.Optional(0) {
		t.Error("expected optional #0 to be present")
	}
	if v, _ := m.Param("time"); v != 7 {
		t.Errorf("expected time = 7, got %v", v)
	}
	if m.Variant(0) != 0 {
		t.Errorf("expected variant #0 = 0, got %d", m.Variant(0))
	}

	m = checkSuccess(t, grammar, "set alarm at 11 pm")
	if m.Optional(0) {
		t.Error("expected optional #0 to be absent")
	}
	if v, _ := m.Param("time"); v != 11 {
		t.Errorf("expected time = 11, got %v", v)
	}
	if m.Variant(0) != 1 {
		t.Errorf("expected variant #0 = 1, got %d", m.Variant(0))
	}

	checkFailCode(t, grammar, "set alarm at seven am", tree.MismatchedParamTypeFail)
}

func TestOptionalAbsent(t *testing.T) {
	m := checkSuccess(t, "i [dont] like bread", "i like bread")
	if m.Optional(0) {
		t.Error("expected optional #0 to be absent")
	}

	m = checkSuccess(t, "i [dont] like bread", "i dont like bread")
	if !m.Optional(0) {
		t.Error("expected optional #0 to be present")
	}
}

func TestTypedParams(t *testing.T) {
	m := checkSuccess(t, "<n: int> times say <what>", "3 times say hi")
	if v, _ := m.Param("n"); v != 3 {
		t.Errorf("expected n = 3, got %v", v)
	}
	if v, _ := m.Param("what"); v != "hi" {
		t.Errorf("expected what = %q, got %v", "hi", v)
	}
}

func TestVariants(t *testing.T) {
	m := checkSuccess(t, "exit|quit", "exit")
	if m.Variant(0) != 0 {
		t.Errorf("expected variant #0 = 0, got %d", m.Variant(0))
	}

	m = checkSuccess(t, "exit|quit", "quit")
	if m.Variant(0) != 1 {
		t.Errorf("expected variant #0 = 1, got %d", m.Variant(0))
	}
}

// A token within the similarity threshold of a literal must surface a
// suggestion, not silently match.
func TestLiteralSuggestion(t *testing.T) {
	fail := checkFailCode(t, "exit|quit", "exi", tree.LiteralSuggestionFail)
	if want := `did you mean "exit"?`; !strings.Contains(fail.Message, want) {
		t.Errorf("expected failure message to contain %q, got %q", want, fail.Message)
	}
}

// Lowering the threshold widens the suggestion net.
func TestSuggestionThreshold(t *testing.T) {
	c := match.NewMatcher()
	c.Threshold = 0.6

	root := compile(t, "exit|quit")
	m := match.NewCallMatch("ex", lexer.New().Tokenize("ex"))
	fail := root.Match(m, c)
	if fail == nil {
		t.Fatal("failure expected, got success")
	}
	if fail.Code != tree.LiteralSuggestionFail {
		t.Errorf("expected failure code %d, got %d (%s)", tree.LiteralSuggestionFail, fail.Code, fail.Message)
	}
}

// A tolerant literal accepts a similar token with partial credit.
func TestTolerantLiteral(t *testing.T) {
	root := compile(t, "exit~")
	m := match.NewCallMatch("ext", lexer.New().Tokenize("ext"))
	c := match.NewMatcher()
	if fail := root.Match(m, c); fail != nil {
		t.Fatalf("unexpected failure: %s", fail)
	}
	if m.Score != c.PartialScore {
		t.Errorf("expected score %v, got %v", c.PartialScore, m.Score)
	}
}

func TestTailList(t *testing.T) {
	m := checkSuccess(t, "<expr...>", "1 + 2")
	v, _ := m.Param("expr")
	if !reflect.DeepEqual(v, []string{"1", "+", "2"}) {
		t.Errorf("expected expr = [1 + 2], got %v", v)
	}
}

func TestTailRaw(t *testing.T) {
	m := checkSuccess(t, "say <what...*>", `say this  and   "that too"`)
	if v, _ := m.Param("what"); v != `this  and   "that too"` {
		t.Errorf("unexpected raw tail: %v", v)
	}
}

func TestTailMissing(t *testing.T) {
	checkFailCode(t, "say <what...>", "say", tree.MissingTailFail)
}

// Nothing may match after a tail terminated the match.
func TestTerminated(t *testing.T) {
	checkFailCode(t, "[<rest...>] end", "x end", tree.TerminatedFail)
}

func TestUnordered(t *testing.T) {
	first := checkSuccess(t, "{tell time}", "tell time")
	second := checkSuccess(t, "{tell time}", "time tell")
	if first.Score != second.Score {
		t.Errorf("expected equal scores, got %v and %v", first.Score, second.Score)
	}

	checkFailCode(t, "{tell time}", "tell", tree.MissingUnorderedFail)
}

func TestUnorderedNested(t *testing.T) {
	const grammar = "{[from <from: int>] [to <to: int>]}"

	m := checkSuccess(t, grammar, "to 10 from 3")
	if v, _ := m.Param("from"); v != 3 {
		t.Errorf("expected from = 3, got %v", v)
	}
	if v, _ := m.Param("to"); v != 10 {
		t.Errorf("expected to = 10, got %v", v)
	}
}

// A zero-scoring optional fork records absence and leaves tokens untouched;
// a scoring fork that ultimately fails surfaces the failure instead.
func TestOptionalAmbiguity(t *testing.T) {
	m := checkSuccess(t, "[foo bar] baz", "baz")
	if m.Optional(0) {
		t.Error("expected optional #0 to be absent")
	}

	_, fail := matchCall(t, "[foo bar] baz", "foo baz")
	if fail == nil {
		t.Fatal("failure expected: a scoring optional fork must not be treated as absent")
	}
	if fail.Code != tree.MismatchedLiteralFail {
		t.Errorf("expected failure code %d, got %d (%s)", tree.MismatchedLiteralFail, fail.Code, fail.Message)
	}
}

// Equal-scoring variants resolve to the earliest declared one.
func TestVariantDeterminism(t *testing.T) {
	m := checkSuccess(t, "(go <a>|go <b>)", "go now")
	if m.Variant(0) != 0 {
		t.Errorf("expected variant #0 = 0, got %d", m.Variant(0))
	}
	if _, ok := m.Param("a"); !ok {
		t.Error("expected the first variant's parameter to be bound")
	}
}

func TestNamedGroups(t *testing.T) {
	m := checkSuccess(t, "turn (on|off):state the [ceiling]:c light", "turn off the light")
	if m.VariantNamed("state") != 1 {
		t.Errorf("expected state = 1, got %d", m.VariantNamed("state"))
	}
	if m.OptionalNamed("c") {
		t.Error("expected optional c to be absent")
	}

	m = checkSuccess(t, "turn (on|off):state the [ceiling]:c light", "turn on the ceiling light")
	if m.VariantNamed("state") != 0 {
		t.Errorf("expected state = 0, got %d", m.VariantNamed("state"))
	}
	if !m.OptionalNamed("c") {
		t.Error("expected optional c to be present")
	}
}

func TestScoreMonotonicity(t *testing.T) {
	c := match.NewMatcher()
	l := lexer.New()

	exact := match.NewCallMatch("exit", l.Tokenize("exit"))
	if fail := compile(t, "exit~").Match(exact, c); fail != nil {
		t.Fatalf("unexpected failure: %s", fail)
	}

	fuzzy := match.NewCallMatch("ext", l.Tokenize("ext"))
	if fail := compile(t, "exit~").Match(fuzzy, c); fail != nil {
		t.Fatalf("unexpected failure: %s", fail)
	}

	if !(exact.Score > fuzzy.Score && fuzzy.Score > 0) {
		t.Errorf("expected exact > fuzzy > 0, got %v and %v", exact.Score, fuzzy.Score)
	}
}

func TestCaseSensitivity(t *testing.T) {
	checkSuccess(t, "stop^", "STOP")
	checkFailCode(t, "stop", "STOP", tree.MismatchedLiteralFail)
}

func TestMissingTokens(t *testing.T) {
	checkFailCode(t, "a b", "a", tree.MissingLiteralFail)
	checkFailCode(t, "<x>", "", tree.MissingParamFail)
	checkFailCode(t, "exit|quit", "", tree.MissingVariantFail)
}

func TestNoMatchedVariant(t *testing.T) {
	fail := checkFailCode(t, "north|south", "west", tree.NoMatchedVariantFail)
	if !strings.Contains(fail.Message, "'north'") || !strings.Contains(fail.Message, "'south'") {
		t.Errorf("expected the failure to list the variants, got %q", fail.Message)
	}
}
