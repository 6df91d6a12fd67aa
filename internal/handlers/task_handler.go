// Package handlers はHTTPハンドラーを提供します。
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-task-api/internal/models"
	"go-task-api/internal/services"
)

// TaskHandler はTask関連のハンドラーを管理します。
// strict が true の場合、title と description 以外のフィールドを含むボディは 400 になります。
type TaskHandler struct {
	taskService *services.TaskService
	logger      *zap.Logger
	strict      bool
}

// NewTaskHandler は新しいTaskHandlerを作成します。
func NewTaskHandler(taskService *services.TaskService, logger *zap.Logger, strict bool) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger, strict: strict}
}

// FindAllHandler はすべてのTaskを返します。
func (h *TaskHandler) FindAllHandler(c *gin.Context) {
	tasks, err := h.taskService.FindAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to fetch tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// FindOneHandler は指定IDのTaskを返します。
func (h *TaskHandler) FindOneHandler(c *gin.Context) {
	task, err := h.taskService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.internalError(c, "Failed to fetch task", err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateHandler は新しいTaskを作成します。
func (h *TaskHandler) CreateHandler(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := bindJSON(c, &req, h.strict, models.TaskFields...); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "Failed to save task to database", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateHandler はTaskを更新し、更新後のTaskを返します。
func (h *TaskHandler) UpdateHandler(c *gin.Context) {
	var req models.UpdateTaskRequest
	if err := bindJSON(c, &req, h.strict, models.TaskFields...); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.internalError(c, "Failed to update task", err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// RemoveHandler はTaskを削除します。事前の存在確認はしません。
func (h *TaskHandler) RemoveHandler(c *gin.Context) {
	if err := h.taskService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.internalError(c, "Failed to delete task", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.String("path", c.Request.URL.Path), zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": err.Error()})
}
