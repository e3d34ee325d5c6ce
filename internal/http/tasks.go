package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/fleet/internal/tasks"
)

// TasksController handles task queue management endpoints.
type TasksController struct {
	client        TaskRunner
	retentionDays int
}

func NewTasksController(client TaskRunner, retentionDays int) *TasksController {
	return &TasksController{client: client, retentionDays: retentionDays}
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// ListTaskTypes handles GET /api/v1/tasks/types
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"task_types": []TaskTypeInfo{
			{
				Type:        tasks.CleanupAuditEventsQueue,
				Description: "Delete audit events older than the retention period",
				Queue:       tasks.CleanupAuditEventsQueue,
			},
		},
	})
}

// GetTaskStatus handles GET /api/v1/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "get task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "Task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

type runTaskRequest struct {
	RetentionDays int `json:"retention_days,omitempty"`
}

// RunTask handles POST /api/v1/tasks/:type/run
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")

	var req runTaskRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	switch taskType {
	case tasks.CleanupAuditEventsQueue:
		retentionDays := req.RetentionDays
		if retentionDays <= 0 {
			retentionDays = tc.retentionDays
		}
		taskID, err := tc.client.EnqueueAuditCleanup(retentionDays)
		if err != nil {
			respondInternalError(c, err, "enqueue task")
			return
		}
		respondAccepted(c, "task enqueued", gin.H{"task_id": taskID, "type": taskType})
	default:
		respondBadRequest(c, fmt.Sprintf("unknown task type: %s", taskType))
	}
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
