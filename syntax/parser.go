package syntax

import (
	"strings"

	"github.com/edwingeng/deque"
	"github.com/michalwa/go-cliffs/token"
	"github.com/michalwa/go-cliffs/tree"
)

// Parser compiles grammar DSL strings into flattened syntax trees.
// The zero value is a valid parser.
type Parser struct {
	// AllCaseInsensitive parses all literals as case-insensitive, as if
	// each carried the ^ marker.
	AllCaseInsensitive bool
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse compiles a grammar using a default parser.
func Parse(grammar string) (tree.Node, error) {
	return NewParser().Parse(grammar)
}

// Parse compiles the grammar into a flattened syntax tree. The returned
// error, if any, is a *cliffs.Error carrying one of the compile error codes.
func (p *Parser) Parse(grammar string) (tree.Node, error) {
	s := newParseRun(p)
	for _, tok := range Tokenize(grammar) {
		if err := s.consume(tok); err != nil {
			return nil, err
		}
	}
	return s.finish()
}

// Parser states between tokens:
type parserState int

const (
	stateNormal parserState = iota

	// Inside <...>:
	stateBeforeParamName // after <
	stateAfterParamName  // after the name symbol
	stateBeforeParamType // after :
	stateAfterParamType  // after the type symbol
	stateAfterTail       // after ... (and optionally *)

	// After : following a closed group:
	stateBeforeIdentifier
)

type scopeKind int

const (
	rootScope scopeKind = iota
	parenScope
	optionalScope
	unorderedScope
)

// scope is one open nesting level of the grammar. children accumulates the
// sequence (or, once a | has been seen, the current variant) under
// construction; group holds the variant group the scope turned into.
type scope struct {
	kind     scopeKind
	open     *token.Token // delimiter that opened the scope, nil for root
	children []tree.Node
	group    *tree.VariantGroup
}

func (sc *scope) nodeName() string {
	switch {
	case sc.kind == optionalScope:
		return "optional_sequence"
	case sc.kind == unorderedScope:
		return "unordered_group"
	case sc.group != nil:
		return "variant_group"
	default:
		return "sequence"
	}
}

// parseRun is the state of a single Parse call: the open-scope stack (top of
// the stack is the append target), the symbol table, and the parameter under
// construction.
type parseRun struct {
	parser  *Parser
	scopes  deque.Deque
	symbols *SymbolTable

	state     parserState
	paramName string
	paramType string
	tail      *tree.Tail
	last      *token.Token
}

func newParseRun(p *Parser) *parseRun {
	s := &parseRun{
		parser:  p,
		scopes:  deque.NewDeque(),
		symbols: NewSymbolTable(),
	}
	s.scopes.PushBack(&scope{kind: rootScope})
	return s
}

func (s *parseRun) top() *scope {
	return s.scopes.Back().(*scope)
}

// appendChild appends a node to the open scope. Nothing may follow a tail
// in the same sequence or variant.
func (s *parseRun) appendChild(tok *token.Token, n tree.Node) error {
	sc := s.top()
	if len(sc.children) > 0 {
		if _, ok := sc.children[len(sc.children)-1].(*tree.Tail); ok {
			return trailingTailError(tok)
		}
	}
	sc.children = append(sc.children, n)
	return nil
}

func (s *parseRun) lastChild() tree.Node {
	sc := s.top()
	if len(sc.children) == 0 {
		return nil
	}
	return sc.children[len(sc.children)-1]
}

func (s *parseRun) consume(tok *token.Token) error {
	s.last = tok
	if tok.Kind() == token.SymbolKind {
		return s.consumeSymbol(tok)
	}

	switch tok.Value() {
	case "<":
		if s.state != stateNormal {
			return unexpectedTokenError(tok)
		}
		s.state = stateBeforeParamName
		return nil

	case ":":
		return s.consumeColon(tok)

	case ">":
		return s.consumeClose(tok)

	case "...":
		if s.state != stateAfterParamName {
			return unexpectedTokenError(tok)
		}
		if err := s.symbols.Register(s.paramName); err != nil {
			return err
		}
		s.tail = &tree.Tail{Name: s.paramName}
		if err := s.appendChild(tok, s.tail); err != nil {
			return err
		}
		s.paramName = ""
		s.state = stateAfterTail
		return nil

	case "*":
		if s.state != stateAfterTail || s.tail.Raw {
			return unexpectedTokenError(tok)
		}
		s.tail.Raw = true
		return nil

	case "^":
		lit, ok := s.lastChild().(*tree.Literal)
		if s.state != stateNormal || !ok {
			return unexpectedTokenError(tok)
		}
		lit.CaseSensitive = false
		return nil

	case "~":
		lit, ok := s.lastChild().(*tree.Literal)
		if s.state != stateNormal || !ok {
			return unexpectedTokenError(tok)
		}
		lit.Tolerant = true
		return nil

	case "|":
		return s.consumePipe(tok)

	case "(":
		return s.openScope(tok, parenScope)
	case "[":
		return s.openScope(tok, optionalScope)
	case "{":
		return s.openScope(tok, unorderedScope)

	case ")":
		return s.closeScope(tok, parenScope)
	case "]":
		return s.closeScope(tok, optionalScope)
	case "}":
		return s.closeScope(tok, unorderedScope)

	default:
		return unexpectedTokenError(tok)
	}
}

func (s *parseRun) consumeSymbol(tok *token.Token) error {
	switch s.state {
	case stateBeforeParamName:
		s.paramName = tok.Value()
		s.state = stateAfterParamName
		return nil

	case stateBeforeParamType:
		s.paramType = tok.Value()
		s.state = stateAfterParamType
		return nil

	case stateBeforeIdentifier:
		return s.assignIdentifier(tok)

	case stateNormal:
		lit := tree.NewLiteral(tok.Value())
		if s.parser.AllCaseInsensitive {
			lit.CaseSensitive = false
		}
		return s.appendChild(tok, lit)

	default:
		return unexpectedTokenError(tok)
	}
}

func (s *parseRun) consumeColon(tok *token.Token) error {
	switch s.state {
	case stateAfterParamName:
		s.state = stateBeforeParamType
		return nil

	case stateNormal:
		last := s.lastChild()
		if last == nil {
			return unexpectedTokenError(tok)
		}
		switch last.(type) {
		case *tree.OptionalSequence, *tree.VariantGroup, *tree.UnorderedGroup:
			s.state = stateBeforeIdentifier
			return nil
		default:
			return badIdentifierTargetError(tok, last.NodeName())
		}

	default:
		return unexpectedTokenError(tok)
	}
}

// consumeClose handles >, closing a parameter or a tail.
func (s *parseRun) consumeClose(tok *token.Token) error {
	switch s.state {
	case stateAfterParamName, stateAfterParamType:
		if err := s.symbols.Register(s.paramName); err != nil {
			return err
		}
		err := s.appendChild(tok, &tree.Param{Name: s.paramName, Type: s.paramType})
		s.paramName = ""
		s.paramType = ""
		s.state = stateNormal
		return err

	case stateAfterTail:
		s.tail = nil
		s.state = stateNormal
		return nil

	case stateBeforeParamName:
		return emptyParamNameError(tok)

	default:
		return unexpectedTokenError(tok)
	}
}

// assignIdentifier binds the symbol to the group most recently closed. An
// identifier on an optional sequence whose sole content is a parens-less
// variant group is inherited by that group instead, so [a|b]:id behaves
// like [(a|b):id].
func (s *parseRun) assignIdentifier(tok *token.Token) error {
	name := tok.Value()
	if err := s.symbols.Register(name); err != nil {
		return err
	}
	s.state = stateNormal

	target := s.lastChild()
	if opt, ok := target.(*tree.OptionalSequence); ok && len(opt.Children) == 1 {
		if vg, ok := opt.Children[0].(*tree.VariantGroup); ok && !vg.Parens {
			vg.Identifier = name
			vg.Inherited = true
			return nil
		}
	}

	switch t := target.(type) {
	case *tree.OptionalSequence:
		t.Identifier = name
	case *tree.VariantGroup:
		t.Identifier = name
	case *tree.UnorderedGroup:
		t.Identifier = name
	}
	return nil
}

// consumePipe closes the current variant. On the first | of a scope the
// accumulated children retroactively become the first variant of a new
// group, so top-level alternatives need no parentheses.
func (s *parseRun) consumePipe(tok *token.Token) error {
	if s.state != stateNormal {
		return unexpectedTokenError(tok)
	}

	sc := s.top()
	if len(sc.children) == 0 {
		return emptyVariantError(tok)
	}

	if sc.group == nil {
		if sc.kind == unorderedScope {
			return unexpectedTokenReasonError(UnexpectedTokenError, tok,
				"cannot define variants in "+sc.nodeName()+", maybe you meant to use parentheses?")
		}
		sc.group = &tree.VariantGroup{Parens: sc.kind == parenScope}
	}
	sc.group.Variants = append(sc.group.Variants, &tree.Variant{Children: sc.children})
	sc.children = nil
	return nil
}

func (s *parseRun) openScope(tok *token.Token, kind scopeKind) error {
	if s.state != stateNormal {
		return unexpectedTokenError(tok)
	}
	s.scopes.PushBack(&scope{kind: kind, open: tok})
	return nil
}

// closeScope pops the open scope and appends the node it built to the
// enclosing scope. A closing delimiter not matching the innermost open one
// is rejected, so unbalanced nesting like "[(a|b]" cannot parse.
func (s *parseRun) closeScope(tok *token.Token, kind scopeKind) error {
	if s.state != stateNormal {
		return unexpectedTokenError(tok)
	}

	sc := s.top()
	if sc.kind != kind {
		return unexpectedTokenError(tok)
	}

	node, err := sc.seal(tok)
	if err != nil {
		return err
	}
	s.scopes.PopBack()
	return s.appendChild(tok, node)
}

// seal finishes the scope into the node it denotes.
func (sc *scope) seal(tok *token.Token) (tree.Node, error) {
	if sc.group != nil {
		if len(sc.children) == 0 {
			return nil, emptyVariantError(tok)
		}
		sc.group.Variants = append(sc.group.Variants, &tree.Variant{Children: sc.children})
		sc.children = nil

		switch sc.kind {
		case parenScope:
			sc.group.Parens = true
			return sc.group, nil
		case optionalScope:
			// Bare alternatives fill the whole optional: [a|b]
			return &tree.OptionalSequence{Children: []tree.Node{sc.group}}, nil
		default:
			return &tree.Sequence{Children: []tree.Node{sc.group}}, nil
		}
	}

	if len(sc.children) == 0 {
		switch sc.kind {
		case parenScope:
			return nil, emptySequenceError(tok)
		case optionalScope:
			return nil, emptyOptionalError(tok)
		default:
			return nil, emptyUnorderedError(tok)
		}
	}

	switch sc.kind {
	case optionalScope:
		return &tree.OptionalSequence{Children: sc.children}, nil
	case unorderedScope:
		return &tree.UnorderedGroup{Children: sc.children}, nil
	default:
		return &tree.Sequence{Children: sc.children}, nil
	}
}

// finish checks that every scope and parameter was terminated and returns
// the flattened tree.
func (s *parseRun) finish() (tree.Node, error) {
	if s.state != stateNormal {
		return nil, unterminatedError("parameter")
	}

	if s.scopes.Len() > 1 {
		return nil, unterminatedError(s.nestingPath())
	}

	sc := s.top()
	if sc.group != nil {
		node, err := sc.seal(s.last)
		if err != nil {
			return nil, err
		}
		return tree.Flatten(node), nil
	}
	return tree.Flatten(&tree.Sequence{Children: sc.children}), nil
}

// nestingPath renders the open scopes outermost first, root excluded.
func (s *parseRun) nestingPath() string {
	var names []string
	for s.scopes.Len() > 1 {
		sc := s.scopes.PopBack().(*scope)
		names = append(names, sc.nodeName())
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " > ")
}
