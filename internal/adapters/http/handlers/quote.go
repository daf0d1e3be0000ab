package handlers

import (
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/portfolio-service/internal/app"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

// QuoteHandler serves the wisdom gallery.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// List handles GET /api/v1/quotes?category=&q=.
// The view is recomputed from the full gallery on every call.
func (h *QuoteHandler) List(c *gin.Context) {
	var q dto.QuoteQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.AbortWithValidation(c, dto.ValidationErrors(err))
		return
	}

	quotes, err := h.service.Filter(c.Request.Context(), q.ToFilter())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// Get handles GET /api/v1/quotes/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	quote, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Create handles POST /api/v1/quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteRequest
	if !dto.Bind(c, &req) {
		return
	}

	quote, err := h.service.Add(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// Update handles PUT /api/v1/quotes/:id. The path id wins over any id in the body.
func (h *QuoteHandler) Update(c *gin.Context) {
	var req dto.QuoteRequest
	if !dto.Bind(c, &req) {
		return
	}

	q := req.ToDomain()
	q.ID = c.Param("id")

	quote, err := h.service.Edit(c.Request.Context(), q)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Delete handles DELETE /api/v1/quotes/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Categories handles GET /api/v1/quotes/categories.
func (h *QuoteHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		All:        domain.CategoryAll,
		Suggested:  domain.SuggestedCategories,
		Categories: categories,
	})
}

// Import handles POST /api/v1/quotes/import. The body is the raw JSON file.
func (h *QuoteHandler) Import(c *gin.Context) {
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

// Export handles GET /api/v1/quotes/export?category=&q=.
func (h *QuoteHandler) Export(c *gin.Context) {
	var q dto.QuoteQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.AbortWithValidation(c, dto.ValidationErrors(err))
		return
	}

	file, err := h.service.Export(c.Request.Context(), q.ToFilter())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	attachment(c, file)
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.List)
	quotes.POST("", h.Create)
	quotes.GET("/categories", h.Categories)
	quotes.GET("/export", h.Export)
	quotes.POST("/import", h.Import)
	quotes.GET("/:id", h.Get)
	quotes.PUT("/:id", h.Update)
	quotes.DELETE("/:id", h.Delete)
}

// readPayload reads a whole import body. The server's body limit applies.
func readPayload(c *gin.Context) ([]byte, bool) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "could not read import file")
		return nil, false
	}

	return payload, true
}

// attachment sends an export as a JSON download.
func attachment(c *gin.Context, file *app.ExportFile) {
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(file.Filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", file.Data)
}
