// Package docs holds the registered OpenAPI document for the todos API.
// Regenerate docs.go after changing handler annotations
package docs

//go:generate swag init --v3.1 -g cmd/todos-api/main.go -d ../../../../ -o . --instanceName api
