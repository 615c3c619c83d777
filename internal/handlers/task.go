package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gigconnect/marketplace-api/internal/apierrors"
	"github.com/gigconnect/marketplace-api/internal/constants"
	"github.com/gigconnect/marketplace-api/internal/dto"
	"github.com/gigconnect/marketplace-api/internal/middleware"
	"github.com/gigconnect/marketplace-api/internal/models"
	"github.com/gigconnect/marketplace-api/internal/services"
	"github.com/gigconnect/marketplace-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// taskRequest is the request body shared by create and update; both carry
// the full set of mutable fields.
type taskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Budget      float64 `json:"budget"`
	Deadline    string  `json:"deadline" binding:"required"`
}

func (r taskRequest) fields() (services.TaskFields, bool) {
	deadline, err := time.Parse(constants.DateLayout, r.Deadline)
	if err != nil {
		return services.TaskFields{}, false
	}

	return services.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Category:    models.TaskCategory(r.Category),
		Budget:      r.Budget,
		Deadline:    deadline,
	}, true
}

// ListTasks returns a paginated task list, optionally filtered by category
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListTasksInput{
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if slug := c.Query("category"); slug != "" {
		category := models.TaskCategory(slug)
		if !models.ValidCategory(category) {
			apierrors.BadRequest(c, "Unknown category: "+slug)
			return
		}
		input.Category = &category
	}

	tasks, total, err := h.tasks.ListTasks(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Page, params.Limit, total))
}

// LatestTasks returns the tasks with the soonest deadlines for the home page
func (h *TaskHandler) LatestTasks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultLatestLimit)))
	if limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultLatestLimit
	}

	tasks, err := h.tasks.LatestTasks(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.tasks.GetTask(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListMyTasks returns the tasks posted by the authenticated user
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	creatorEmail := c.DefaultQuery("creatorEmail", ident.Email)

	tasks, err := h.tasks.ListTasksByCreator(creatorEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task owned by the authenticated user
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields, ok := req.fields()
	if !ok {
		apierrors.BadRequest(c, "Deadline must be a valid date (YYYY-MM-DD)")
		return
	}

	task, err := h.tasks.CreateTask(fields, ident)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces the mutable fields of a task; creator only
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields, ok := req.fields()
	if !ok {
		apierrors.BadRequest(c, "Deadline must be a valid date (YYYY-MM-DD)")
		return
	}

	task, err := h.tasks.UpdateTask(c.Param("id"), fields, ident)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task and its bids; creator only
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.tasks.DeleteTask(c.Param("id"), ident); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
