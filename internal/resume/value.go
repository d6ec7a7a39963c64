package resume

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
)

// Value is an untrusted JSON value. Maps keep their keys in input order.
type Value struct {
	Kind  Kind
	Str   string
	Num   float64
	Bool  bool
	List  []Value
	Keys  []string
	Items map[string]Value
}

// Null is the zero Value.
var Null = Value{}

// Parse builds a Value from raw JSON. Invalid JSON yields Null and false.
func Parse(raw []byte) (Value, bool) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Null, false
	}
	return fromResult(gjson.ParseBytes(raw)), true
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return Value{Kind: KindString, Str: r.Str}
	case gjson.Number:
		return Value{Kind: KindNumber, Num: r.Num}
	case gjson.True:
		return Value{Kind: KindBool, Bool: true}
	case gjson.False:
		return Value{Kind: KindBool}
	case gjson.JSON:
		if r.IsArray() {
			list := make([]Value, 0)
			r.ForEach(func(_, item gjson.Result) bool {
				list = append(list, fromResult(item))
				return true
			})
			return Value{Kind: KindList, List: list}
		}
		if r.IsObject() {
			v := Value{Kind: KindMap, Items: map[string]Value{}}
			r.ForEach(func(key, item gjson.Result) bool {
				k := key.String()
				if _, dup := v.Items[k]; !dup {
					v.Keys = append(v.Keys, k)
				}
				v.Items[k] = fromResult(item)
				return true
			})
			return v
		}
	}
	return Null
}

// Get returns the member at key, or Null when v is not a map or lacks the key.
func (v Value) Get(key string) Value {
	if v.Kind != KindMap {
		return Null
	}
	if item, ok := v.Items[key]; ok {
		return item
	}
	return Null
}

// Elems returns list elements; anything other than a list has none.
func (v Value) Elems() []Value {
	if v.Kind != KindList {
		return nil
	}
	return v.List
}

// Text returns the scalar rendering of v. Strings are returned as-is,
// numbers and bools are stringified, everything else is "".
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Flatten walks v and returns its string leaves in order, blank ones
// included. Map keys are discarded, nulls dropped and other primitives
// stringified.
func Flatten(v Value) []string {
	out := make([]string, 0)
	return flatten(v, out)
}

func flatten(v Value, out []string) []string {
	switch v.Kind {
	case KindList:
		for _, item := range v.List {
			out = flatten(item, out)
		}
	case KindMap:
		for _, k := range v.Keys {
			out = flatten(v.Items[k], out)
		}
	case KindNull:
	default:
		out = append(out, v.Text())
	}
	return out
}
