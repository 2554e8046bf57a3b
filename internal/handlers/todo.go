package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-service/internal/middleware"
	"github.com/taskhub/todo-service/internal/service"
)

// TodoHandler handles owner-scoped todo CRUD requests.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new TodoHandler instance.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// TodoRequest represents the create/update payload for a todo item.
type TodoRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"required,min=3,max=100"`
	Priority    int    `json:"priority" binding:"required,gte=1,lte=5"`
	Completed   bool   `json:"completed"`
}

// List godoc
// @Summary List own todos
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Todo
// @Failure 401 {object} map[string]string
// @Router /todos/ [get]
func (h *TodoHandler) List(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	todos, err := h.todoService.List(c.Request.Context(), identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Get godoc
// @Summary Get a single todo
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Param todo_id path int true "Todo ID"
// @Success 200 {object} models.Todo
// @Failure 404 {object} map[string]string
// @Router /todos/todo/{todo_id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.Get(c.Request.Context(), id, identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TodoRequest true "Todo fields"
// @Success 201 {object} models.Todo
// @Failure 422 {object} map[string]string
// @Router /todos/todo [post]
func (h *TodoHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), identity.UserID, service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// Update godoc
// @Summary Update a todo
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Param todo_id path int true "Todo ID"
// @Param request body TodoRequest true "Todo fields"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /todos/todo/{todo_id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err := h.todoService.Update(c.Request.Context(), id, identity.UserID, service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Security BearerAuth
// @Param todo_id path int true "Todo ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /todos/todo/{todo_id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	if err := h.todoService.Delete(c.Request.Context(), id, identity.UserID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseTodoID reads the positive integer path parameter. Non-numeric and
// non-positive ids are a validation failure, not a 404.
func parseTodoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("todo_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusUnprocessableEntity, "todo_id must be a positive integer")
		return 0, false
	}
	return id, true
}
