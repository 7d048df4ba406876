// Package nav provides safe path access into the deeply nested renderer
// trees the music API returns. Response shapes drift across experiments, so
// parsers are written as chains of navigations with optional fallbacks; a
// failed mandatory step surfaces as a *PathError carrying the attempted path.
package nav

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// PathError reports a missing key or out-of-range index while walking a
// response tree. It is the parse-error kind of the library taxonomy.
type PathError struct {
	Path []any
	At   int
}

func (e *PathError) Error() string {
	return fmt.Sprintf("no value at step %d of path %s", e.At, FormatPath(e.Path))
}

func FormatPath(path []any) string {
	parts := make([]string, len(path))
	for i, p := range path {
		switch v := p.(type) {
		case string:
			parts[i] = v
		case int:
			parts[i] = strconv.Itoa(v)
		default:
			parts[i] = fmt.Sprintf("%v", p)
		}
	}

	return strings.Join(parts, ".")
}

// Get walks root along path, where each step is a string key or an int index.
// Negative indices address from the end of an array. A missing step yields a
// *PathError.
func Get(root gjson.Result, path ...any) (gjson.Result, error) {
	cur := root
	for i, step := range path {
		switch s := step.(type) {
		case string:
			next := cur.Get(escapeKey(s))
			if !next.Exists() {
				return gjson.Result{}, &PathError{Path: path, At: i}
			}
			cur = next
		case int:
			arr := cur.Array()
			idx := s
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return gjson.Result{}, &PathError{Path: path, At: i}
			}
			cur = arr[idx]
		default:
			panic(fmt.Sprintf("unexpected path step type %T", step))
		}
	}

	return cur, nil
}

// Optional is Get with missing steps reported as a non-existent result
// instead of an error. Callers chain fallbacks by checking Exists.
func Optional(root gjson.Result, path ...any) gjson.Result {
	v, err := Get(root, path...)
	if nil != err {
		return gjson.Result{}
	}

	return v
}

func String(root gjson.Result, path ...any) (string, error) {
	v, err := Get(root, path...)
	if nil != err {
		return "", err
	}

	return v.String(), nil
}

func OptionalString(root gjson.Result, path ...any) string {
	return Optional(root, path...).String()
}

func Int(root gjson.Result, path ...any) (int64, error) {
	v, err := Get(root, path...)
	if nil != err {
		return 0, err
	}

	return v.Int(), nil
}

func List(root gjson.Result, path ...any) ([]gjson.Result, error) {
	v, err := Get(root, path...)
	if nil != err {
		return nil, err
	}

	return v.Array(), nil
}

func OptionalList(root gjson.Result, path ...any) []gjson.Result {
	v := Optional(root, path...)
	if !v.Exists() {
		return nil
	}

	return v.Array()
}

// FindByKey returns the first element of list containing key, or a
// non-existent result when none does.
func FindByKey(list []gjson.Result, key string) gjson.Result {
	escaped := escapeKey(key)
	for _, item := range list {
		if item.Get(escaped).Exists() {
			return item
		}
	}

	return gjson.Result{}
}

// FindValueByKey is FindByKey resolving to the value under key instead of
// the containing element.
func FindValueByKey(list []gjson.Result, key string) gjson.Result {
	item := FindByKey(list, key)
	if !item.Exists() {
		return gjson.Result{}
	}

	return item.Get(escapeKey(key))
}

// FindAllByKey returns every element of list containing key. When nested is
// non-empty the value under key.nested is collected instead of the element.
func FindAllByKey(list []gjson.Result, key string, nested ...string) []gjson.Result {
	escaped := escapeKey(key)
	var out []gjson.Result
	for _, item := range list {
		v := item.Get(escaped)
		if !v.Exists() {
			continue
		}
		if len(nested) > 0 {
			for _, n := range nested {
				v = v.Get(escapeKey(n))
			}
			if !v.Exists() {
				continue
			}
		}
		out = append(out, v)
	}

	return out
}

// FindDeep walks the whole tree and collects every value stored under key,
// depth-first in document order. Meant for renderers whose nesting varies
// across page layouts; prefer explicit paths where the layout is known.
func FindDeep(root gjson.Result, key string) []gjson.Result {
	var out []gjson.Result
	var walk func(r gjson.Result)
	walk = func(r gjson.Result) {
		if !r.IsObject() && !r.IsArray() {
			return
		}
		isObject := r.IsObject()
		r.ForEach(func(k, v gjson.Result) bool {
			if isObject && k.String() == key {
				out = append(out, v)
			}
			walk(v)

			return true
		})
	}
	walk(root)

	return out
}

// Renderer keys never contain gjson metacharacters, but response text
// occasionally ends up in key position under experiments.
func escapeKey(k string) string {
	if !strings.ContainsAny(k, `.*?\|#@`) {
		return k
	}

	var b strings.Builder
	for _, r := range k {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
