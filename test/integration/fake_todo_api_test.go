//go:build integration

package integration

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

// fakeTodoAPI is an in-memory stand-in for the remote todo REST API. While
// down every route answers 503.
type fakeTodoAPI struct {
	mu     sync.Mutex
	todos  []fakeTodo
	nextID int64
	down   bool

	server *httptest.Server
}

type fakeTodo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  int    `json:"priority"`
}

func newFakeTodoAPI() *fakeTodoAPI {
	api := &fakeTodoAPI{nextID: 1}

	router := gin.New()
	router.Use(api.availability)

	todos := router.Group("/api/todos")
	todos.GET("", api.list)
	todos.POST("", api.create)
	todos.PATCH("/:id", api.update)
	todos.PATCH("/:id/toggle", api.toggle)
	todos.DELETE("/:id", api.remove)

	api.server = httptest.NewServer(router)

	return api
}

func (a *fakeTodoAPI) URL() string { return a.server.URL }
func (a *fakeTodoAPI) Close()      { a.server.Close() }

func (a *fakeTodoAPI) SetDown(down bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.down = down
}

func (a *fakeTodoAPI) Add(title string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.todos = append(a.todos, fakeTodo{ID: a.nextID, Title: title})
	a.nextID++
}

func (a *fakeTodoAPI) Titles() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	titles := make([]string, 0, len(a.todos))
	for _, t := range a.todos {
		titles = append(titles, t.Title)
	}

	return titles
}

func (a *fakeTodoAPI) availability(c *gin.Context) {
	a.mu.Lock()
	down := a.down
	a.mu.Unlock()

	if down {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "maintenance"})
		return
	}

	c.Next()
}

func (a *fakeTodoAPI) list(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c.JSON(http.StatusOK, slices.Clone(a.todos))
}

func (a *fakeTodoAPI) create(c *gin.Context) {
	var body fakeTodo
	if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "title is required"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	body.ID = a.nextID
	a.nextID++
	a.todos = append(a.todos, body)

	c.JSON(http.StatusCreated, body)
}

func (a *fakeTodoAPI) update(c *gin.Context) {
	var patch struct {
		Title     *string `json:"title"`
		Completed *bool   `json:"completed"`
		Priority  *int    `json:"priority"`
	}

	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	a.withTodo(c, func(t *fakeTodo) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}

		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}

		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
	})
}

func (a *fakeTodoAPI) toggle(c *gin.Context) {
	a.withTodo(c, func(t *fakeTodo) { t.Completed = !t.Completed })
}

func (a *fakeTodoAPI) remove(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	a.mu.Lock()
	defer a.mu.Unlock()

	i := slices.IndexFunc(a.todos, func(t fakeTodo) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "todo not found"})
		return
	}

	a.todos = slices.Delete(a.todos, i, i+1)
	c.Status(http.StatusNoContent)
}

func (a *fakeTodoAPI) withTodo(c *gin.Context, fn func(*fakeTodo)) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	a.mu.Lock()
	defer a.mu.Unlock()

	i := slices.IndexFunc(a.todos, func(t fakeTodo) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "todo not found"})
		return
	}

	fn(&a.todos[i])
	c.JSON(http.StatusOK, a.todos[i])
}
