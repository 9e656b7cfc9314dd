package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dino-996/microservizi-tracker/internal/tracker"
)

type Handler struct {
	service *tracker.Service
	logger  *zap.Logger
}

func NewHandler(service *tracker.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")

	apiGroup.POST("/users", h.handleCreateUser)
	apiGroup.GET("/users", h.handleListUsers)
	apiGroup.POST("/users/:id/exercises", h.handleAddExercise)
	apiGroup.GET("/users/:id/logs", h.handleLogs)
}

type createUserRequest struct {
	Username string `form:"username" json:"username"`
}

// Duration binds through json.Number so JSON clients may send it as a
// number or a string; urlencoded forms bind into it as-is.
type addExerciseRequest struct {
	Description string      `form:"description" json:"description"`
	Duration    json.Number `form:"duration" json:"duration"`
	Date        string      `form:"date" json:"date"`
}

func (h *Handler) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, tracker.ErrUsernameRequired) {
			writeError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) handleListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) handleAddExercise(c *gin.Context) {
	var req addExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	exercise, err := h.service.AddExercise(c.Request.Context(), tracker.AddExerciseInput{
		UserID:      c.Param("id"),
		Description: req.Description,
		Duration:    req.Duration.String(),
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, tracker.ErrDescriptionRequired), errors.Is(err, tracker.ErrDurationInvalid):
			writeError(c, http.StatusBadRequest, err.Error(), err)
		default:
			h.logger.Error("add exercise failed",
				zap.String("user_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding exercise"})
		}
		return
	}

	c.JSON(http.StatusOK, exercise)
}

func (h *Handler) handleLogs(c *gin.Context) {
	result, err := h.service.Logs(c.Request.Context(), c.Param("id"), tracker.LogFilter{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		if errors.Is(err, tracker.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("query logs failed",
			zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving logs"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func writeError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}
