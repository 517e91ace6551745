package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uznami/rwbin/layout/internal/token"
)

// Kind identifies a field type.
type Kind int

const (
	KindU8 Kind = iota
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindF32
	KindF64
	KindBool
	KindChar
	KindArray
	KindUTF8Z
	KindUTF16Z
	KindUTF8
	KindUTF16
	KindSkip
	KindAlign
	KindZero
	KindULEB
	KindSLEB
	KindBlock
)

var primitives = map[string]Kind{
	"u8":     KindU8,
	"i8":     KindI8,
	"u16":    KindU16,
	"i16":    KindI16,
	"u32":    KindU32,
	"i32":    KindI32,
	"u64":    KindU64,
	"i64":    KindI64,
	"f32":    KindF32,
	"f64":    KindF64,
	"bool":   KindBool,
	"char":   KindChar,
	"uleb":   KindULEB,
	"sleb":   KindSLEB,
	"utf8z":  KindUTF8Z,
	"utf16z": KindUTF16Z,
}

// counted types take a mandatory [N] suffix.
var counted = map[string]Kind{
	"utf8":  KindUTF8,
	"utf16": KindUTF16,
	"skip":  KindSkip,
	"align": KindAlign,
	"zero":  KindZero,
	"block": KindBlock,
}

// Type is a parsed field type.
type Type struct {
	Elem   *Type
	Fields []Field
	Kind   Kind
	N      int
}

// Field is one named or anonymous entry of a layout.
type Field struct {
	Type    *Type
	Name    string
	Swapped bool
}

// Layout is a compiled field list.
type Layout struct {
	Fields []Field
}

func (t *Type) String() string {
	switch t.Kind {
	case KindArray:
		return "[" + strconv.Itoa(t.N) + "]" + t.Elem.String()
	case KindBlock:
		return "block[" + strconv.Itoa(t.N) + "]{" + fieldsString(t.Fields) + "}"
	}
	for name, k := range primitives {
		if k == t.Kind {
			return name
		}
	}
	for name, k := range counted {
		if k == t.Kind {
			return name + "[" + strconv.Itoa(t.N) + "]"
		}
	}
	return "unknown"
}

func (f Field) String() string {
	var b strings.Builder
	if f.Name != "" {
		b.WriteString(f.Name)
		b.WriteString(": ")
	}
	if f.Swapped {
		b.WriteByte('!')
	}
	b.WriteString(f.Type.String())
	return b.String()
}

func fieldsString(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

// String returns the layout in canonical form. Parsing it yields an equal Layout.
func (l *Layout) String() string {
	return fieldsString(l.Fields)
}

// Parse compiles a layout description such as
//
//	magic: u32, version: !u16, name: utf8[16], block[8]{ id: u32, pad: zero[4] }
func Parse(input string) (*Layout, error) {
	p := &parser{tokens: token.Tokenize(input)}
	fields, err := p.parseFields(false)
	if err != nil {
		return nil, err
	}
	return &Layout{Fields: fields}, nil
}

// MustParse is Parse that panics on error.
func MustParse(input string) *Layout {
	l, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return l
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) peekAt(n int) *token.Token {
	if p.pos+n >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos+n]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, fmt.Errorf("unexpected end of input, expected %v", typ)
	}
	if t.Type != typ {
		return nil, fmt.Errorf("line %d: expected %v, got %q", t.Line, typ, t.Value)
	}
	return t, nil
}

// parseFields reads fields until end of input, or until '}' when nested.
func (p *parser) parseFields(nested bool) ([]Field, error) {
	var fields []Field
	for {
		t := p.peek()
		if t == nil {
			if nested {
				return nil, fmt.Errorf("unexpected end of input, expected %v", token.RBrace)
			}
			return fields, nil
		}
		switch t.Type {
		case token.Sep:
			p.next()
			continue
		case token.RBrace:
			if !nested {
				return nil, fmt.Errorf("line %d: unexpected %v", t.Line, t.Type)
			}
			return fields, nil
		}

		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
}

func (p *parser) parseField() (Field, error) {
	var f Field
	if t := p.peek(); t.Type == token.Ident {
		if c := p.peekAt(1); c != nil && c.Type == token.Colon {
			f.Name = t.Value
			p.pos += 2
		}
	}
	if t := p.peek(); t != nil && t.Type == token.Bang {
		f.Swapped = true
		p.next()
	}
	typ, err := p.parseType()
	if err != nil {
		return f, err
	}
	f.Type = typ
	return f, nil
}

func (p *parser) parseCount() (int, error) {
	if _, err := p.expect(token.LBracket); err != nil {
		return 0, err
	}
	t, err := p.expect(token.Number)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(t.Value, 0, 31)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid count %q", t.Line, t.Value)
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (p *parser) parseType() (*Type, error) {
	t := p.peek()
	if t == nil {
		return nil, fmt.Errorf("unexpected end of input, expected type")
	}

	if t.Type == token.LBracket {
		n, err := p.parseCount()
		if err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &Type{Kind: KindArray, N: n, Elem: elem}, nil
	}

	t, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if k, ok := primitives[t.Value]; ok {
		return &Type{Kind: k}, nil
	}
	k, ok := counted[t.Value]
	if !ok {
		return nil, fmt.Errorf("line %d: unknown type %q", t.Line, t.Value)
	}
	n, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	if k == KindAlign && n == 0 {
		return nil, fmt.Errorf("line %d: align[0] is not allowed", t.Line)
	}
	typ := &Type{Kind: k, N: n}
	if k == KindBlock {
		if _, err := p.expect(token.LBrace); err != nil {
			return nil, err
		}
		if typ.Fields, err = p.parseFields(true); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBrace); err != nil {
			return nil, err
		}
	}
	return typ, nil
}
