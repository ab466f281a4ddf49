package bind

import (
	"net/http"
	"reflect"
	"strconv"

	perr "todos/internal/platform/errors"
	"todos/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Kind names the type a path or query parameter was expected to hold.
// It only feeds the "expected type" hint of a decode failure
type Kind uint8

const (
	// KindUnknown is used when the expected type has no better description
	KindUnknown Kind = iota
	// KindUnsigned is for non-negative integers
	KindUnsigned
	// KindInteger is for signed integers
	KindInteger
	// KindFloat is for any number
	KindFloat
)

// Describe returns the human name used in "expected type: <name>"
func (k Kind) Describe() string {
	switch k {
	case KindUnsigned:
		return "unsigned integer"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "number"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer
func (k Kind) String() string { return k.Describe() }

// Number is the set of types the decoders can produce
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// PathParam decodes the named route parameter into T.
// A value that does not parse (including overflow of T) yields a 400 validation
// error naming the parameter and kind. A parameter missing from the route is a
// programming error: it is logged and surfaces as a generic internal error
func PathParam[T Number](r *http.Request, name string, kind Kind) (T, error) {
	var zero T
	raw := chi.URLParam(r, name)
	if raw == "" {
		logger.C(r.Context()).Error().
			Str("param", name).
			Str("path", r.URL.Path).
			Msg("route parameter missing")
		return zero, perr.Internalf("route parameter %q missing", name)
	}
	v, err := parseNumber[T](raw)
	if err != nil {
		return zero, perr.InvalidPath(name, kind.Describe())
	}
	return v, nil
}

// QueryParam decodes an optional query parameter into *T; nil when absent or empty.
// Decode failures use the same 400 shape as PathParam with the query key as path
func QueryParam[T Number](r *http.Request, name string, kind Kind) (*T, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := parseNumber[T](raw)
	if err != nil {
		return nil, perr.InvalidPath(name, kind.Describe())
	}
	return &v, nil
}

// parseNumber parses s into T honoring T's width and signedness
func parseNumber[T Number](s string) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	bits := rt.Bits()

	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	default:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	}
}
