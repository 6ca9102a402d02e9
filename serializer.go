package gatelog

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// MessageFallback replaces a message that cannot be serialized.
const MessageFallback = `The provided "message" value could not be serialized to JSON.`

func extraFallback(idx int) string {
	return fmt.Sprintf("The additional[%d] value could not be serialized to JSON.", idx)
}

// Serialize renders v for display: strings and errors as text, everything else
// as indented JSON. The bool is false when v could not be converted, in which
// case the result is MessageFallback.
func Serialize(v any) (string, bool) {
	switch vv := v.(type) {
	case string:
		return vv, true
	case error:
		return errorText(vv), true
	}
	s, ok := encodeJSON(v, "  ")
	if !ok {
		return MessageFallback, false
	}
	return s, true
}

// SerializeExtras converts each value positionally. nil stays null and
// Undefined stays undefined; failures carry their index in the fallback text.
func SerializeExtras(vals []any) []Extra {
	out := make([]Extra, len(vals))
	for i, v := range vals {
		out[i] = serializeExtra(i, v)
	}
	return out
}

func serializeExtra(idx int, v any) Extra {
	switch vv := v.(type) {
	case nil:
		return NullExtra
	case undefined:
		return UndefinedExtra
	case string:
		return TextExtra(vv)
	case error:
		return TextExtra(errorText(vv))
	}
	s, ok := encodeJSON(v, "  ")
	if !ok {
		return TextExtra(extraFallback(idx))
	}
	return TextExtra(s)
}

// serializeForServer produces the wire form of a message: compact JSON of the
// value itself, strings included. An unconvertible message is replaced by
// MessageFallback; only the console line keeps the raw value in its extras.
func serializeForServer(message any, extras []any) (string, []Extra) {
	if err, ok := message.(error); ok {
		message = errorText(err)
	}
	msg, ok := encodeJSON(message, "")
	if !ok {
		msg = MessageFallback
	}
	return msg, SerializeExtras(extras)
}

func serializeForConsole(message any, extras []any) (string, []Extra) {
	msg, ok := Serialize(message)
	if !ok {
		return msg, SerializeExtras(prepend(message, extras))
	}
	return msg, SerializeExtras(extras)
}

func prepend(v any, rest []any) []any {
	out := make([]any, 0, len(rest)+1)
	out = append(out, v)
	return append(out, rest...)
}

// encodeJSON never panics. encoding/json is used because it rejects cyclic
// values instead of recursing into them.
func encodeJSON(v any, indent string) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()
	if _, isUndefined := v.(undefined); isUndefined {
		return "", false
	}
	var buf bytes.Buffer
	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return "", false
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}

func errorText(err error) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%T", err)
		}
	}()
	return err.Error()
}

// isFalsy mirrors the truthiness check applied to messages before any threshold.
func isFalsy(v any) bool {
	switch vv := v.(type) {
	case nil, undefined:
		return true
	case string:
		return vv == ""
	case bool:
		return !vv
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
