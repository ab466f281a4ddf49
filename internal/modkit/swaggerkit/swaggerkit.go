// Package swaggerkit serves the generated OpenAPI document and Swagger UI
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"todos/internal/platform/logger"
	phttp "todos/internal/platform/net/http"
	docs "todos/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SpecMutator edits the decoded document before it is served
type SpecMutator func(spec map[string]any)

// ErrorResponse documents the error body every endpoint writes.
// path and comment are only present on 400s that name a parameter or field
type ErrorResponse struct {
	Code    int    `json:"code"              example:"400"`
	Message string `json:"message"           example:"type of the following path is invalid"`
	Path    string `json:"path,omitempty"    example:"id"`
	Comment string `json:"comment,omitempty" example:"expected type: integer"`
}

const (
	docsPath    = "/api/docs"
	errorSchema = "swaggerkit.ErrorResponse"
	oasVersion  = "3.0.3"
)

var readDoc = func() string { return docs.SwaggerInfo.ReadDoc() }

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json.
// The document is rendered once; a broken document is logged and answered with 500
func Mount(r phttp.Router, enabled bool, mutators ...SpecMutator) {
	if !enabled {
		return
	}
	doc, err := render(readDoc(), mutators)
	if err != nil {
		logger.Named("swagger").Error().Err(err).Msg("render api document")
	}

	r.Get(docsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsPath+"/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, "api document unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc)
	})
	r.Handle(docsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docsPath+"/doc.json"),
	))
}

// TitleSuffix appends suffix to info.title; an empty suffix leaves it alone
func TitleSuffix(suffix string) SpecMutator {
	return func(spec map[string]any) {
		info, _ := spec["info"].(map[string]any)
		if title, ok := info["title"].(string); ok && suffix != "" {
			info["title"] = title + " " + suffix
		}
	}
}

func render(raw string, mutators []SpecMutator) ([]byte, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, err
	}
	asOAS3(spec)
	withErrorSchema(spec)
	forEachOperation(spec, func(responses map[string]any) {
		setDefault(responses, "400", errorResponse("Bad Request", map[string]any{
			"code":    400,
			"message": "type of the following path is invalid",
			"path":    "id",
			"comment": "expected type: integer",
		}))
		setDefault(responses, "500", errorResponse("Internal Server Error", map[string]any{
			"code":    500,
			"message": "internal server error",
		}))
	})
	for _, m := range mutators {
		if m != nil {
			m(spec)
		}
	}
	return json.Marshal(spec)
}

// asOAS3 pins the document to 3.0.x, the newest version the UI renders,
// and gives it a root server
func asOAS3(spec map[string]any) {
	v, _ := spec["openapi"].(string)
	if _, swagger2 := spec["swagger"]; swagger2 || !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = oasVersion
		delete(spec, "swagger")
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": "/"}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func setDefault(m map[string]any, key string, v any) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}

// withErrorSchema adds the error body schema when annotations did not emit it
func withErrorSchema(spec map[string]any) {
	setDefault(child(child(spec, "components"), "schemas"), errorSchema, map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"code":    map[string]any{"type": "integer", "format": "int32"},
			"message": map[string]any{"type": "string"},
			"path":    map[string]any{"type": "string"},
			"comment": map[string]any{"type": "string"},
		},
		"required": []any{"code", "message"},
	})
}

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/" + errorSchema},
				"example": example,
			},
		},
	}
}

// forEachOperation calls fn with the responses object of every operation,
// creating it when missing
func forEachOperation(spec map[string]any, fn func(responses map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, op := range ops {
			if o, ok := op.(map[string]any); ok {
				fn(child(o, "responses"))
			}
		}
	}
}
