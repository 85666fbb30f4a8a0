package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/otakup0pe/fabz/pkg/config"
)

// kwPrefix marks keyword string literals produced by rewriteSource.
const kwPrefix = "__kw_"

// rewriteSource transforms a parameter script before zygomys sees it:
//
//  1. :keyword -> "__kw_keyword" string literal. Registering keyword
//     symbols as globals would collide with user variables of the
//     same name; a marked string avoids that. Keywords keep their
//     hyphens, so parameter names survive intact.
//  2. Kebab-case identifiers -> underscore form (set-param ->
//     set_param). zygomys reads a bare hyphen as subtraction.
//  3. ; line comments -> // comments, which is what zygomys parses.
//
// String literal boundaries are respected throughout.
func rewriteSource(source string) string {
	out := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"' || b[i] == '`':
			quote := b[i]
			out = append(out, b[i])
			i++
			for i < len(b) && b[i] != quote {
				if quote == '"' && b[i] == '\\' && i+1 < len(b) {
					out = append(out, b[i], b[i+1])
					i += 2
					continue
				}
				out = append(out, b[i])
				i++
			}
			if i < len(b) {
				out = append(out, b[i])
				i++
			}

		case b[i] == ';':
			out = append(out, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out = append(out, b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out = append(out, '"')
			out = append(out, kwPrefix...)
			out = append(out, b[i+1:j]...)
			out = append(out, '"')
			i = j

		case b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out = append(out, '_')
			i++

		default:
			out = append(out, b[i])
			i++
		}
	}
	return string(out)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// isKW reports whether a Sexp is a rewritten keyword literal and
// returns the bare keyword name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs is a parsed mixed positional+keyword argument list. Keyword
// order is preserved so repeated assignments apply left to right.
type kwArgs struct {
	names      []string
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if _, seen := result.kw[name]; !seen {
			result.names = append(result.names, name)
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toParamName accepts a keyword (:wall) or a plain string ("wall").
func toParamName(s zygo.Sexp) (string, error) {
	str, err := toString(s)
	if err != nil {
		return "", fmt.Errorf("expected parameter keyword or string: %w", err)
	}
	return strings.TrimPrefix(str, kwPrefix), nil
}

// registerBuiltins installs the parameter DSL into a zygomys
// environment. The builtins mutate the provided parameter record in
// place as the script runs.
//
// Scripts are written with kebab-case names and keywords; run them
// through rewriteSource first.
func registerBuiltins(env *zygo.Zlisp, params *config.Params) {

	// (preset "uv5r-wide")
	// Replaces the whole parameter set with a named preset.
	env.AddFunction("preset", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("preset: want 1 argument, got %d", len(args))
		}
		presetName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("preset: %w", err)
		}
		p, err := config.Preset(presetName)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("preset: %w", err)
		}
		*params = p
		return zygo.SexpNull, nil
	})

	// (set-param :wall 2.5 :plate-thickness 3.0)
	// Assigns one or more parameters by keyword.
	env.AddFunction("set_param", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 0 {
			return zygo.SexpNull, fmt.Errorf("set-param: want :name value pairs, got %d bare arguments", len(pa.positional))
		}
		if len(pa.names) == 0 {
			return zygo.SexpNull, fmt.Errorf("set-param: no parameters given")
		}
		for _, pname := range pa.names {
			f, err := toFloat64(pa.kw[pname])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("set-param: %s: %w", pname, err)
			}
			if err := params.Set(pname, f); err != nil {
				return zygo.SexpNull, fmt.Errorf("set-param: %w", err)
			}
		}
		return zygo.SexpNull, nil
	})

	// (get-param :wall)
	// Reads a parameter, for scripts deriving one value from another.
	env.AddFunction("get_param", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("get-param: want 1 argument, got %d", len(args))
		}
		pname, err := toParamName(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("get-param: %w", err)
		}
		v, err := params.Get(pname)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("get-param: %w", err)
		}
		return &zygo.SexpFloat{Val: v}, nil
	})
}
