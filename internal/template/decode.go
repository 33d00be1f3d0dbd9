package template

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeError reports where in the document decoding failed.
type DecodeError struct {
	Path string
	Msg  string
}

func (e *DecodeError) Error() string {
	return e.Path + ": " + e.Msg
}

func errorf(path, format string, args ...any) error {
	return &DecodeError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// leafError is raised inside leafHook. at extends the path of the value
// being decoded.
type leafError struct {
	at  string
	msg string
}

func (e *leafError) Error() string { return e.msg }

func leafErrorf(format string, args ...any) error {
	return &leafError{msg: fmt.Sprintf(format, args...)}
}

func within(at string, err error) error {
	var le *leafError
	if errors.As(err, &le) {
		return &leafError{at: at + le.at, msg: le.msg}
	}
	return &leafError{at: at, msg: err.Error()}
}

var (
	alignType     = reflect.TypeFor[Align]()
	fieldType     = reflect.TypeFor[Field]()
	predicateType = reflect.TypeFor[Predicate]()
	modType       = reflect.TypeFor[StyleMod]()
	colorType     = reflect.TypeFor[Color]()
	intType       = reflect.TypeFor[int]()
)

// leafHook turns parser scalars and small tables into template values.
func leafHook(_, to reflect.Type, data any) (any, error) {
	switch to {
	case alignType:
		return parseAlign(data)
	case fieldType:
		return parseName(data, fieldNames, "field")
	case predicateType:
		return parseName(data, predicateNames, "condition")
	case modType:
		return parseMod(data)
	case colorType:
		return parseColor(data)
	case intType:
		n, ok := asInt(data)
		if !ok {
			return nil, leafErrorf("expected an integer, got %s", describe(data))
		}
		return n, nil
	}
	return data, nil
}

// decodeLeaf decodes in into out, a pointer to one of the types leafHook
// knows.
func decodeLeaf(path string, in, out any) error {
	if in == nil {
		return errorf(path, "missing value")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(leafHook),
		Result:     out,
	})
	if err != nil {
		return errorf(path, "%v", err)
	}
	if err := dec.Decode(in); err != nil {
		var le *leafError
		if errors.As(err, &le) {
			return errorf(path+le.at, "%s", le.msg)
		}
		return errorf(path, "%v", err)
	}
	return nil
}

// Decode builds a widget tree from the generic value a config parser
// produced (maps, slices, strings and numbers). path names the root in error
// messages.
func Decode(path string, v any) (Widget, error) {
	return decodeWidget(path, v)
}

func decodeWidget(path string, v any) (Widget, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, errorf(path, "expected a widget table, got %s", describe(v))
	}

	switch {
	case has(m, "rows"):
		children, err := decodeChildren(path+".rows", m["rows"])
		if err != nil {
			return nil, err
		}
		return &Rows{Children: children}, nil

	case has(m, "columns"):
		children, err := decodeChildren(path+".columns", m["columns"])
		if err != nil {
			return nil, err
		}
		return &Columns{Children: children}, nil

	case has(m, "textbox"):
		content, err := decodeTexts(path+".textbox", m["textbox"])
		if err != nil {
			return nil, err
		}
		align := AlignLeft
		if raw, ok := m["align"]; ok {
			if err := decodeLeaf(path+".align", raw, &align); err != nil {
				return nil, err
			}
		}
		return &Textbox{Align: align, Content: content}, nil

	case has(m, "queue"):
		items, ok := asList(m["queue"])
		if !ok {
			return nil, errorf(path+".queue", "expected a list of columns, got %s", describe(m["queue"]))
		}
		q := &Queue{Columns: make([]Column, 0, len(items))}
		for i, item := range items {
			col, err := decodeColumn(fmt.Sprintf("%s.queue[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			q.Columns = append(q.Columns, col)
		}
		return q, nil
	}

	return nil, errorf(path, "unknown widget, expected one of rows, columns, textbox, queue (got keys %s)", keys(m))
}

func parseAlign(v any) (Align, error) {
	s, ok := v.(string)
	if !ok {
		return 0, leafErrorf("expected left, center or right, got %s", describe(v))
	}
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return 0, leafErrorf("unknown alignment %q", s)
}

func parseName[T any](v any, names map[string]T, what string) (T, error) {
	var zero T
	s, ok := v.(string)
	if !ok {
		return zero, leafErrorf("expected a %s name, got %s", what, describe(v))
	}
	t, ok := names[strings.ToLower(s)]
	if !ok {
		return zero, leafErrorf("unknown %s %q", what, s)
	}
	return t, nil
}

func decodeChildren(path string, v any) ([]Constrained[Widget], error) {
	items, ok := asList(v)
	if !ok {
		return nil, errorf(path, "expected a list, got %s", describe(v))
	}
	out := make([]Constrained[Widget], 0, len(items))
	for i, item := range items {
		p := fmt.Sprintf("%s[%d]", path, i)
		m, ok := asMap(item)
		if !ok {
			return nil, errorf(p, "expected a table, got %s", describe(item))
		}
		sizing, n, err := decodeSizing(p, m)
		if err != nil {
			return nil, err
		}
		raw, ok := m["widget"]
		if !ok {
			return nil, errorf(p, "missing widget")
		}
		w, err := decodeWidget(p+".widget", raw)
		if err != nil {
			return nil, err
		}
		out = append(out, Constrained[Widget]{Sizing: sizing, N: n, Value: w})
	}
	return out, nil
}

func decodeColumn(path string, v any) (Column, error) {
	m, ok := asMap(v)
	if !ok {
		return Column{}, errorf(path, "expected a table, got %s", describe(v))
	}
	sizing, n, err := decodeSizing(path, m)
	if err != nil {
		return Column{}, err
	}
	raw, ok := m["item"]
	if !ok {
		return Column{}, errorf(path, "missing item")
	}
	item, err := decodeTexts(path+".item", raw)
	if err != nil {
		return Column{}, err
	}

	col := Column{Item: Constrained[Texts]{Sizing: sizing, N: n, Value: item}}
	if raw, ok := m["style"]; ok {
		if col.Style, err = decodeMods(path+".style", raw); err != nil {
			return Column{}, err
		}
	}
	if raw, ok := m["selected_style"]; ok {
		if col.SelectedStyle, err = decodeMods(path+".selected_style", raw); err != nil {
			return Column{}, err
		}
	}
	return col, nil
}

var sizingKeys = []struct {
	key    string
	sizing Sizing
}{
	{"fixed", Fixed},
	{"max", Max},
	{"min", Min},
	{"ratio", Ratio},
}

func decodeSizing(path string, m map[string]any) (Sizing, int, error) {
	found := -1
	for i, sk := range sizingKeys {
		if has(m, sk.key) {
			if found >= 0 {
				return 0, 0, errorf(path, "both %s and %s given", sizingKeys[found].key, sk.key)
			}
			found = i
		}
	}
	if found < 0 {
		return 0, 0, errorf(path, "missing size, expected one of fixed, max, min, ratio")
	}

	sk := sizingKeys[found]
	var n int
	if err := decodeLeaf(path+"."+sk.key, m[sk.key], &n); err != nil {
		return 0, 0, err
	}
	if n < 0 {
		return 0, 0, errorf(path+"."+sk.key, "expected a non-negative integer, got %d", n)
	}
	return sk.sizing, n, nil
}

func decodeTexts(path string, v any) (Texts, error) {
	switch v := v.(type) {
	case string:
		return Text(v), nil
	case nil:
		return Parts(nil), nil
	}

	if items, ok := asList(v); ok {
		return decodeParts(path, items)
	}

	m, ok := asMap(v)
	if !ok {
		return nil, errorf(path, "expected text, list or table, got %s", describe(v))
	}

	switch {
	case has(m, "text"):
		s, ok := m["text"].(string)
		if !ok {
			return nil, errorf(path+".text", "expected a string, got %s", describe(m["text"]))
		}
		return Text(s), nil

	case has(m, "field"):
		var f Field
		if err := decodeLeaf(path+".field", m["field"], &f); err != nil {
			return nil, err
		}
		return f, nil

	case has(m, "parts"):
		items, ok := asList(m["parts"])
		if !ok {
			return nil, errorf(path+".parts", "expected a list, got %s", describe(m["parts"]))
		}
		return decodeParts(path+".parts", items)

	case has(m, "styled"):
		mods, err := decodeMods(path+".styled", m["styled"])
		if err != nil {
			return nil, err
		}
		raw, ok := m["content"]
		if !ok {
			return nil, errorf(path, "styled text is missing content")
		}
		content, err := decodeTexts(path+".content", raw)
		if err != nil {
			return nil, err
		}
		return &Styled{Mods: mods, Content: content}, nil

	case has(m, "if"):
		cond, err := decodeCondition(path+".if", m["if"])
		if err != nil {
			return nil, err
		}
		raw, ok := m["then"]
		if !ok {
			return nil, errorf(path, "if is missing then")
		}
		then, err := decodeTexts(path+".then", raw)
		if err != nil {
			return nil, err
		}
		node := &If{Cond: cond, Then: then}
		if raw, ok := m["else"]; ok {
			if node.Else, err = decodeTexts(path+".else", raw); err != nil {
				return nil, err
			}
		}
		return node, nil
	}

	return nil, errorf(path, "unknown text, expected one of text, field, parts, styled, if (got keys %s)", keys(m))
}

func decodeParts(path string, items []any) (Texts, error) {
	parts := make(Parts, 0, len(items))
	for i, item := range items {
		t, err := decodeTexts(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return parts, nil
}

func decodeCondition(path string, v any) (Condition, error) {
	if _, ok := v.(string); ok {
		var p Predicate
		if err := decodeLeaf(path, v, &p); err != nil {
			return nil, err
		}
		return p, nil
	}

	m, ok := asMap(v)
	if !ok || len(m) != 1 {
		return nil, errorf(path, "expected a condition name or a single-key table, got %s", describe(v))
	}

	if raw, ok := m["not"]; ok {
		c, err := decodeCondition(path+".not", raw)
		if err != nil {
			return nil, err
		}
		return &Not{Cond: c}, nil
	}

	for _, op := range []string{"and", "or", "xor"} {
		raw, ok := m[op]
		if !ok {
			continue
		}
		items, ok := asList(raw)
		if !ok || len(items) < 2 {
			return nil, errorf(path+"."+op, "expected a list of at least two conditions")
		}
		conds := make([]Condition, 0, len(items))
		for i, item := range items {
			c, err := decodeCondition(fmt.Sprintf("%s.%s[%d]", path, op, i), item)
			if err != nil {
				return nil, err
			}
			conds = append(conds, c)
		}
		return foldConditions(op, conds), nil
	}

	return nil, errorf(path, "unknown combinator, expected not, and, or, xor (got keys %s)", keys(m))
}

func foldConditions(op string, conds []Condition) Condition {
	acc := conds[0]
	for _, c := range conds[1:] {
		switch op {
		case "and":
			acc = &And{Left: acc, Right: c}
		case "or":
			acc = &Or{Left: acc, Right: c}
		case "xor":
			acc = &Xor{Left: acc, Right: c}
		}
	}
	return acc
}

func decodeMods(path string, v any) ([]StyleMod, error) {
	items, ok := asList(v)
	if !ok {
		return nil, errorf(path, "expected a list of style modifiers, got %s", describe(v))
	}
	mods := make([]StyleMod, 0, len(items))
	for i, item := range items {
		var mod StyleMod
		if err := decodeLeaf(fmt.Sprintf("%s[%d]", path, i), item, &mod); err != nil {
			return nil, err
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

func parseMod(v any) (StyleMod, error) {
	if s, ok := v.(string); ok {
		name := strings.ToLower(s)
		if a, ok := attrNames[name]; ok {
			return Add(a), nil
		}
		if rest, ok := strings.CutPrefix(name, "no_"); ok {
			if a, ok := attrNames[rest]; ok {
				return Remove(a), nil
			}
		}
		return StyleMod{}, leafErrorf("unknown style modifier %q", s)
	}

	m, ok := asMap(v)
	if !ok || len(m) != 1 {
		return StyleMod{}, leafErrorf("expected a modifier name or {fg|bg: color}, got %s", describe(v))
	}
	if raw, ok := m["fg"]; ok {
		c, err := parseColor(raw)
		if err != nil {
			return StyleMod{}, within(".fg", err)
		}
		return Fg(c), nil
	}
	if raw, ok := m["bg"]; ok {
		c, err := parseColor(raw)
		if err != nil {
			return StyleMod{}, within(".bg", err)
		}
		return Bg(c), nil
	}
	return StyleMod{}, leafErrorf("unknown style modifier (got keys %s)", keys(m))
}

func parseColor(v any) (Color, error) {
	var (
		c   Color
		err error
	)
	if n, ok := asInt(v); ok {
		c, err = colorIndex(n)
	} else if s, ok := v.(string); ok {
		c, err = ParseColor(s)
	} else {
		return Color{}, leafErrorf("expected a color, got %s", describe(v))
	}
	if err != nil {
		return Color{}, within("", err)
	}
	return c, nil
}

// asMap accepts the map shapes produced by the toml, yaml and json parsers.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func keys(m map[string]any) string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return "[" + strings.Join(ks, ", ") + "]"
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int32, int64, uint64, float64:
		return "a number"
	}
	if _, ok := asList(v); ok {
		return "a list"
	}
	if _, ok := asMap(v); ok {
		return "a table"
	}
	return fmt.Sprintf("%T", v)
}
