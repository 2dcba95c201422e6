package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rill-lang/rill-glfw/script"
)

// splitFields tokenizes a console line. Double-quoted segments stay one
// token, quotes included, so parseValue can tell a string literal from
// a bare word.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		tok     strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		if tok.Len() > 0 {
			fields = append(fields, tok.String())
			tok.Reset()
		}
	}
	for _, r := range line {
		switch {
		case escaped:
			tok.WriteRune(r)
			escaped = false
		case quoted && r == '\\':
			tok.WriteRune(r)
			escaped = true
		case r == '"':
			tok.WriteRune(r)
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t'):
			flush()
		default:
			tok.WriteRune(r)
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated string literal")
	}
	flush()
	return fields, nil
}

// parseValue reads one literal. Quoted tokens are strings; bare tokens
// try null, bool, int, float, and fall back to a plain string.
func parseValue(tok string) (script.Value, error) {
	if strings.HasPrefix(tok, `"`) {
		s, err := strconv.Unquote(tok)
		if err != nil {
			return script.Null, fmt.Errorf("bad string literal %s", tok)
		}
		return script.Str(s), nil
	}
	switch tok {
	case "null":
		return script.Null, nil
	case "true":
		return script.Bool(true), nil
	case "false":
		return script.Bool(false), nil
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return script.Int(n), nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return script.Float(f), nil
	}
	return script.Str(tok), nil
}

func parseValues(toks []string) ([]script.Value, error) {
	vals := make([]script.Value, 0, len(toks))
	for _, tok := range toks {
		v, err := parseValue(tok)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
