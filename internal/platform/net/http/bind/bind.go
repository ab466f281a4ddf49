// Package bind decodes request bodies and route parameters into typed values,
// turning every failure into a client facing project error
package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "todos/internal/platform/errors"
	"todos/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// DefaultMaxBytes caps a request body unless MaxBytes says otherwise
const DefaultMaxBytes int64 = 1 << 20

type checker struct {
	v     *validator.Validate
	trans ut.Translator
}

// messages name fields by their json key so a failure points at what the client sent
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

var std = sync.OnceValue(func() *checker {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := entrans.RegisterDefaultTranslations(v, trans); err != nil {
		logger.Named("bind").Warn().Err(err).Msg("validator translations")
	}
	return &checker{v: v, trans: trans}
})

// Validate runs struct tag validation on v. The first failing field comes back
// as a 400 validation error carrying the field's json name as path
func Validate(v any) error {
	err := std().v.Struct(v)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		// a non struct target is a programming error, not bad input
		logger.Named("bind").Error().Err(err).Msg("validate")
		return perr.Wrap(err, perr.ErrorCodeUnknown, "validate")
	}
	fe := fields[0]
	return perr.WithOp(perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(std().trans)), fe.Field()), "bind.json")
}

type options struct {
	maxBytes     int64
	allowUnknown bool
}

// Option tunes ParseJSON
type Option func(*options)

// MaxBytes caps the body at n bytes; n <= 0 removes the cap
func MaxBytes(n int64) Option { return func(o *options) { o.maxBytes = n } }

// AllowUnknown accepts object keys that T does not declare
func AllowUnknown() Option { return func(o *options) { o.allowUnknown = true } }

// ParseJSON reads exactly one JSON value from the body into T and validates it.
// An empty body, malformed or oversized JSON, unknown keys and trailing data
// are all 400 JSON errors; failed validation is a 400 naming the field
func ParseJSON[T any](r *http.Request, opts ...Option) (T, error) {
	var zero T
	o := options{maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(&o)
	}

	body := io.Reader(r.Body)
	if o.maxBytes > 0 {
		body = http.MaxBytesReader(nil, r.Body, o.maxBytes)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	br := bufio.NewReader(body)
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	if !o.allowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return zero, perr.WithOp(perr.JSONErrf("body exceeds %d bytes", tooBig.Limit), "bind.json")
		}
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "invalid JSON body")
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
