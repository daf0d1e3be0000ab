package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio-service/internal/app"
)

// TodoHandler serves the todo demo list.
type TodoHandler struct {
	service *app.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(service *app.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// List handles GET /api/v1/todos. It always answers from the remote API or,
// failing that, the local mirror; status.mode says which.
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoListResponse(todos, h.service.Status()))
}

// Create handles POST /api/v1/todos.
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if !dto.Bind(c, &req) {
		return
	}

	todo, err := h.service.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// Update handles PATCH /api/v1/todos/:id.
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if !dto.Bind(c, &req) {
		return
	}

	todo, err := h.service.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Toggle handles PATCH /api/v1/todos/:id/toggle.
func (h *TodoHandler) Toggle(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	todo, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /api/v1/todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Sync handles POST /api/v1/todos/sync.
func (h *TodoHandler) Sync(c *gin.Context) {
	result, err := h.service.Sync(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Reorder handles POST /api/v1/todos/reorder. The new order lives in the
// session view only.
func (h *TodoHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !dto.Bind(c, &req) {
		return
	}

	todos, err := h.service.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoListResponse(todos, h.service.Status()))
}

// Stats handles GET /api/v1/todos/stats.
func (h *TodoHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

// Status handles GET /api/v1/todos/status.
func (h *TodoHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// Export handles GET /api/v1/todos/export.
func (h *TodoHandler) Export(c *gin.Context) {
	file, err := h.service.Export(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	attachment(c, file)
}

// Import handles POST /api/v1/todos/import.
func (h *TodoHandler) Import(c *gin.Context) {
	payload, ok := readPayload(c)
	if !ok {
		return
	}

	result, err := h.service.Import(c.Request.Context(), payload)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterTodoRoutes registers todo routes on the given router group.
func (h *TodoHandler) RegisterTodoRoutes(rg *gin.RouterGroup) {
	todos := rg.Group("/todos")
	todos.GET("", h.List)
	todos.POST("", h.Create)
	todos.POST("/sync", h.Sync)
	todos.POST("/reorder", h.Reorder)
	todos.GET("/stats", h.Stats)
	todos.GET("/status", h.Status)
	todos.GET("/export", h.Export)
	todos.POST("/import", h.Import)
	todos.PATCH("/:id", h.Update)
	todos.PATCH("/:id/toggle", h.Toggle)
	todos.DELETE("/:id", h.Delete)
}

// todoID binds the :id segment, writing a 400 when it is not a positive integer.
func todoID(c *gin.Context) (int64, bool) {
	var p dto.TodoIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "id must be a positive integer")
		return 0, false
	}

	return p.ID, true
}
