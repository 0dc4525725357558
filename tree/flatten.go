package tree

// Flattening canonicalizes a parsed tree: wrapper nodes with a single child
// collapse into that child, nested sequences merge into their parent, and a
// variant group forming the sole content of a variant is un-nested into the
// outer group. Flattening never changes matching semantics, only tree shape
// and canonical rendering, and is idempotent.

// flattenCtx carries the position of a node relative to its parent, needed
// to decide whether a flattened variant group renders with parentheses.
type flattenCtx struct {
	hasParent bool
	soleChild bool
}

// Flatten returns the canonical form of a tree root.
func Flatten(root Node) Node {
	return flatten(root, flattenCtx{})
}

func flatten(n Node, c flattenCtx) Node {
	switch t := n.(type) {
	case *Sequence:
		if len(t.Children) == 1 {
			return flatten(t.Children[0], c)
		}
		return &Sequence{Children: flattenSequence(t.Children)}

	case *OptionalSequence:
		return &OptionalSequence{
			Children:   flattenSequence(t.Children),
			Identifier: t.Identifier,
		}

	case *UnorderedGroup:
		if len(t.Children) == 1 {
			return flatten(t.Children[0], c)
		}
		return &UnorderedGroup{
			Children:   flattenChildren(t.Children),
			Identifier: t.Identifier,
		}

	case *Variant:
		// Variants only appear inside variant groups; flattenGroup handles
		// them.
		return flattenVariant(t)

	case *VariantGroup:
		return flattenGroup(t, c)

	default:
		// Leaves are immutable; no copy needed.
		return n
	}
}

func flattenChildren(children []Node) []Node {
	sole := len(children) == 1
	out := make([]Node, len(children))
	for i, child := range children {
		out[i] = flatten(child, flattenCtx{hasParent: true, soleChild: sole})
	}
	return out
}

// flattenSequence flattens children and splices nested sequences in place.
func flattenSequence(children []Node) []Node {
	sole := len(children) == 1
	out := make([]Node, 0, len(children))
	for _, child := range children {
		flat := flatten(child, flattenCtx{hasParent: true, soleChild: sole})
		if s, ok := flat.(*Sequence); ok {
			out = append(out, s.Children...)
		} else {
			out = append(out, flat)
		}
	}
	return out
}

func flattenVariant(v *Variant) *Variant {
	return &Variant{Children: flattenSequence(v.Children)}
}

func flattenGroup(g *VariantGroup, c flattenCtx) Node {
	// A group of one variant is just that variant's sequence.
	if len(g.Variants) == 1 {
		v := g.Variants[0]
		if len(v.Children) == 1 {
			return flatten(v.Children[0], c)
		}
		return flatten(&Sequence{Children: v.Children}, c)
	}

	out := &VariantGroup{Identifier: g.Identifier, Inherited: g.Inherited}
	for _, v := range g.Variants {
		flat := flattenVariant(v)

		// Un-nest a variant group forming the sole content of a variant
		if len(flat.Children) == 1 {
			if inner, ok := flat.Children[0].(*VariantGroup); ok && !inner.Parens {
				out.Variants = append(out.Variants, inner.Variants...)
				continue
			}
		}

		out.Variants = append(out.Variants, flat)
	}

	// Parentheses are needed when the group shares its parent with siblings
	// or carries an identifier of its own.
	out.Parens = (c.hasParent && !c.soleChild) || (out.Identifier != "" && !out.Inherited)
	return out
}
