// Package http provides http transport for todos
package http

import (
	stdhttp "net/http"

	"todos/internal/modkit/httpkit"
	"todos/internal/services/api/todos/domain"
)

// Register mounts todo endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.TodoInput](r, "/", h.create)

	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.TodoInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /todos Todos todosList
// @Summary List todos
// @Description Ordered by id. limit defaults to 10 and is capped at 10
// @Tags Todos
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} domain.Page "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse "bad query parameter"
// @Failure 500 {object} swaggerkit.ErrorResponse "internal server error"
// @Router /todos [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit, err := httpkit.QueryParam[int64](r, "limit", httpkit.KindInteger)
	if err != nil {
		return nil, err
	}
	offset, err := httpkit.QueryParam[int64](r, "offset", httpkit.KindInteger)
	if err != nil {
		return nil, err
	}
	page, err := h.svc.List(r.Context(), domain.ListQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return httpkit.List(page.Items, page.Limit, page.Offset, page.Total), nil
}

// swagger:route GET /todos/{id} Todos todosGet
// @Summary Get a todo
// @Tags Todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} domain.Todo "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse "bad id"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /todos/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathParam[int32](r, "id", httpkit.KindInteger)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// swagger:route POST /todos Todos todosCreate
// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param payload body domain.TodoInput true "Todo"
// @Success 201 {object} domain.Todo "created"
// @Failure 400 {object} swaggerkit.ErrorResponse "invalid body"
// @Router /todos [post]
func (h *handlers) create(r *stdhttp.Request, in domain.TodoInput) (any, error) {
	t, err := h.svc.Create(r.Context(), *in.Title, *in.Content)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(t), nil
}

// swagger:route PUT /todos/{id} Todos todosUpdate
// @Summary Replace a todo's title and content
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param payload body domain.TodoInput true "Todo"
// @Success 200 {object} domain.Todo "ok"
// @Failure 400 {object} swaggerkit.ErrorResponse "invalid body or id"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /todos/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.TodoInput) (any, error) {
	id, err := httpkit.PathParam[int32](r, "id", httpkit.KindInteger)
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, *in.Title, *in.Content)
}

// swagger:route DELETE /todos/{id} Todos todosDelete
// @Summary Delete a todo
// @Tags Todos
// @Param id path int true "Todo id"
// @Success 204 "deleted"
// @Failure 400 {object} swaggerkit.ErrorResponse "bad id"
// @Failure 404 {object} swaggerkit.ErrorResponse "not found"
// @Router /todos/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathParam[int32](r, "id", httpkit.KindInteger)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
