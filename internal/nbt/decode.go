package nbt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
)

// Decode parses the text of one exported file into a raw node tree. The
// root of every export file is an object. file identifies the input in
// parse errors and is not interpreted.
func Decode(file string, src []byte) (*Node, error) {
	d := &decoder{file: file, src: src}
	d.skipSpace()
	if d.peek() != '{' {
		return nil, d.errorf(d.pos, "document root must be an object")
	}
	root, err := d.value()
	if err != nil {
		return nil, err
	}
	d.skipSpace()
	if d.pos != len(d.src) {
		return nil, d.errorf(d.pos, "unexpected trailing data")
	}
	return root, nil
}

// decoder is a hand-written recursive descent parser. The exporter's grammar
// is close to JSON but not JSON: numeric literals may carry an embedded type
// marker suffix (1b, 2s, 3L, 4.5f, 6.7d), so a stock JSON decoder cannot
// preserve the declared scalar widths.
type decoder struct {
	file string
	src  []byte
	pos  int
}

func (d *decoder) errorf(offset int, format string, args ...any) error {
	return &qerr.ParseError{File: d.file, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) peek() byte {
	if d.pos >= len(d.src) {
		return 0
	}
	return d.src[d.pos]
}

func (d *decoder) skipSpace() {
	for d.pos < len(d.src) {
		switch d.src[d.pos] {
		case ' ', '\t', '\r', '\n':
			d.pos++
		default:
			return
		}
	}
}

func (d *decoder) value() (*Node, error) {
	d.skipSpace()
	switch c := d.peek(); {
	case c == '{':
		return d.object()
	case c == '[':
		return d.array()
	case c == '"':
		s, err := d.string()
		if err != nil {
			return nil, err
		}
		return &Node{Tag: TagString, Str: s}, nil
	case c == 't' || c == 'f':
		return d.boolean()
	case c == '-' || (c >= '0' && c <= '9'):
		return d.number()
	case c == 0:
		return nil, d.errorf(d.pos, "unexpected end of input")
	default:
		return nil, d.errorf(d.pos, "unexpected character %q", c)
	}
}

func (d *decoder) object() (*Node, error) {
	open := d.pos
	d.pos++ // '{'
	node := &Node{Tag: TagCompound, Compound: map[string]*Node{}}
	d.skipSpace()
	if d.peek() == '}' {
		d.pos++
		return node, nil
	}
	for {
		d.skipSpace()
		if d.peek() != '"' {
			if d.peek() == 0 {
				return nil, d.errorf(open, "unterminated object")
			}
			return nil, d.errorf(d.pos, "expected object key")
		}
		key, err := d.string()
		if err != nil {
			return nil, err
		}
		d.skipSpace()
		if d.peek() != ':' {
			return nil, d.errorf(d.pos, "expected ':' after object key %q", key)
		}
		d.pos++
		val, err := d.value()
		if err != nil {
			return nil, err
		}
		// Duplicate raw keys are not produced by the exporter; last wins.
		node.Compound[key] = val
		d.skipSpace()
		switch d.peek() {
		case ',':
			d.pos++
		case '}':
			d.pos++
			return node, nil
		case 0:
			return nil, d.errorf(open, "unterminated object")
		default:
			return nil, d.errorf(d.pos, "expected ',' or '}' in object")
		}
	}
}

func (d *decoder) array() (*Node, error) {
	open := d.pos
	d.pos++ // '['
	node := &Node{Tag: TagList}
	d.skipSpace()
	if d.peek() == ']' {
		d.pos++
		return node, nil
	}
	for {
		elem, err := d.value()
		if err != nil {
			return nil, err
		}
		node.List = append(node.List, elem)
		d.skipSpace()
		switch d.peek() {
		case ',':
			d.pos++
		case ']':
			d.pos++
			return node, nil
		case 0:
			return nil, d.errorf(open, "unterminated array")
		default:
			return nil, d.errorf(d.pos, "expected ',' or ']' in array")
		}
	}
}

func (d *decoder) boolean() (*Node, error) {
	rest := d.src[d.pos:]
	switch {
	case len(rest) >= 4 && string(rest[:4]) == "true":
		d.pos += 4
		return &Node{Tag: TagByte, Int: 1}, nil
	case len(rest) >= 5 && string(rest[:5]) == "false":
		d.pos += 5
		return &Node{Tag: TagByte, Int: 0}, nil
	}
	return nil, d.errorf(d.pos, "unexpected character %q", d.peek())
}

func (d *decoder) string() (string, error) {
	open := d.pos
	d.pos++ // '"'
	var b strings.Builder
	for {
		if d.pos >= len(d.src) {
			return "", d.errorf(open, "unterminated string")
		}
		c := d.src[d.pos]
		switch {
		case c == '"':
			d.pos++
			return b.String(), nil
		case c == '\\':
			r, err := d.escape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		case c < 0x20:
			return "", d.errorf(d.pos, "control character in string")
		default:
			r, size := utf8.DecodeRune(d.src[d.pos:])
			b.WriteRune(r)
			d.pos += size
		}
	}
}

func (d *decoder) escape() (rune, error) {
	start := d.pos
	d.pos++ // '\\'
	if d.pos >= len(d.src) {
		return 0, d.errorf(start, "unterminated escape sequence")
	}
	c := d.src[d.pos]
	d.pos++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		r, err := d.unicodeEscape(start)
		if err != nil {
			return 0, err
		}
		if utf16.IsSurrogate(r) && d.pos+1 < len(d.src) && d.src[d.pos] == '\\' && d.src[d.pos+1] == 'u' {
			lowStart := d.pos
			d.pos += 2
			low, err := d.unicodeEscape(lowStart)
			if err != nil {
				return 0, err
			}
			if combined := utf16.DecodeRune(r, low); combined != utf8.RuneError {
				return combined, nil
			}
			return utf8.RuneError, nil
		}
		if utf16.IsSurrogate(r) {
			return utf8.RuneError, nil
		}
		return r, nil
	default:
		return 0, d.errorf(start, "invalid escape character %q", c)
	}
}

func (d *decoder) unicodeEscape(start int) (rune, error) {
	if d.pos+4 > len(d.src) {
		return 0, d.errorf(start, "truncated unicode escape")
	}
	v, err := strconv.ParseUint(string(d.src[d.pos:d.pos+4]), 16, 32)
	if err != nil {
		return 0, d.errorf(start, "invalid unicode escape")
	}
	d.pos += 4
	return rune(v), nil
}

func (d *decoder) number() (*Node, error) {
	start := d.pos
	if d.peek() == '-' {
		d.pos++
	}
	digits := 0
	for d.pos < len(d.src) && d.src[d.pos] >= '0' && d.src[d.pos] <= '9' {
		d.pos++
		digits++
	}
	if digits == 0 {
		return nil, d.errorf(start, "malformed number")
	}
	floating := false
	if d.peek() == '.' {
		floating = true
		d.pos++
		frac := 0
		for d.pos < len(d.src) && d.src[d.pos] >= '0' && d.src[d.pos] <= '9' {
			d.pos++
			frac++
		}
		if frac == 0 {
			return nil, d.errorf(start, "malformed number: missing fraction digits")
		}
	}
	if c := d.peek(); c == 'e' || c == 'E' {
		floating = true
		d.pos++
		if c := d.peek(); c == '+' || c == '-' {
			d.pos++
		}
		exp := 0
		for d.pos < len(d.src) && d.src[d.pos] >= '0' && d.src[d.pos] <= '9' {
			d.pos++
			exp++
		}
		if exp == 0 {
			return nil, d.errorf(start, "malformed number: missing exponent digits")
		}
	}
	literal := string(d.src[start:d.pos])

	// Embedded type marker, e.g. 1b, 2s, 3L, 4.5f, 6.7d.
	var marker byte
	switch c := d.peek(); c {
	case 'b', 'B', 's', 'S', 'l', 'L', 'f', 'F', 'd', 'D':
		marker = c | 0x20 // lowercase
		d.pos++
	}

	switch marker {
	case 'f', 'd':
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, d.errorf(start, "malformed number %q", literal)
		}
		tag := TagDouble
		if marker == 'f' {
			tag = TagFloat
		}
		return &Node{Tag: tag, Float: f}, nil
	case 'b', 's', 'l':
		if floating {
			return nil, d.errorf(start, "integer type marker %q on fractional literal %q", marker, literal)
		}
		i, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, d.errorf(start, "integer literal %q out of range", literal)
		}
		switch marker {
		case 'b':
			return &Node{Tag: TagByte, Int: i}, nil
		case 's':
			return &Node{Tag: TagShort, Int: i}, nil
		default:
			return &Node{Tag: TagLong, Int: i}, nil
		}
	}

	if floating {
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, d.errorf(start, "malformed number %q", literal)
		}
		return &Node{Tag: TagDouble, Float: f}, nil
	}
	i, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return nil, d.errorf(start, "integer literal %q out of range", literal)
	}
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return &Node{Tag: TagInt, Int: i}, nil
	}
	return &Node{Tag: TagLong, Int: i}, nil
}
