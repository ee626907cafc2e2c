package cpu

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	reDecimal    = regexp.MustCompile(`^[0-9]+$`)
	reHex        = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	reBinary     = regexp.MustCompile(`^[01]+$`)
)

// term is a single signed term of a +/- expression.
type term struct {
	Negate bool
	Text   string
}

// splitTerms splits an expression on '+' and '-'. Every '-' flips the sign
// of the next term, so `--5` is 5.
func splitTerms(expr string) (terms []term, err error) {
	if strings.HasSuffix(expr, "+") || strings.HasSuffix(expr, "-") {
		err = ErrTrailingSign
		return
	}

	negate := false
	flush := func(text string) {
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			return
		}
		terms = append(terms, term{Negate: negate, Text: text})
		negate = false
	}

	start := 0
	for n, c := range expr {
		if c != '+' && c != '-' {
			continue
		}
		flush(expr[start:n])
		if c == '-' {
			negate = !negate
		}
		start = n + 1
	}
	flush(expr[start:])

	return
}

// parseNumber parses a decimal, $hex, 0xhex or %binary literal.
// Underscores are digit separators.
func parseNumber(word string) (value int, err error) {
	num := word
	base := 10
	verify := reDecimal

	switch {
	case strings.HasPrefix(num, "$"):
		base = 16
		num = num[1:]
		verify = reHex
	case strings.HasPrefix(num, "%"):
		base = 2
		num = num[1:]
		verify = reBinary
	case strings.HasPrefix(num, "0x"), strings.HasPrefix(num, "0X"):
		base = 16
		num = num[2:]
		verify = reHex
	}

	num = strings.ReplaceAll(num, "_", "")
	if !verify.MatchString(num) {
		err = ErrParseNumber(word)
		return
	}

	v64, err := strconv.ParseInt(num, base, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// parseImmediate evaluates an immediate-mode expression.
func parseImmediate(expr string) (value int, err error) {
	terms, err := splitTerms(expr)
	if err != nil {
		return
	}

	for _, t := range terms {
		var v int
		v, err = parseNumber(t.Text)
		if err != nil {
			return
		}
		if t.Negate {
			v = -v
		}
		value += v
	}

	return
}

// parseVariable evaluates a variable-mode expression: at most one
// identifier, plus any number of signed literals.
func parseVariable(expr string) (key VarKey, err error) {
	terms, err := splitTerms(expr)
	if err != nil {
		return
	}

	for _, t := range terms {
		if reIdentifier.MatchString(t.Text) {
			if len(key.Name) != 0 {
				err = ErrVariableMultiple
				return
			}
			if t.Negate {
				err = ErrVariableNegated
				return
			}
			key.Name = t.Text
			continue
		}

		var v int
		v, err = parseNumber(t.Text)
		if err != nil {
			return
		}
		if t.Negate {
			v = -v
		}
		key.Offset += v
	}

	return
}
