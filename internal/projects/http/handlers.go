package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hasthiya-it/tracker-backend/internal/projects"
	"github.com/hasthiya-it/tracker-backend/internal/projects/service"
)

// ProjectService is the application surface the handlers call into.
type ProjectService interface {
	List(ctx context.Context) ([]projects.Project, error)
	Get(ctx context.Context, id int64) (*projects.Project, error)
	Create(ctx context.Context, in service.CreateInput) (*projects.Project, error)
	Update(ctx context.Context, id int64, in service.UpdateInput) (*projects.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Handler bundles the dependencies for the projects endpoints.
type Handler struct {
	svc ProjectService
}

func NewHandler(svc ProjectService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("list projects: %v", err)
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Data: items})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			c.JSON(http.StatusNotFound, response{Success: false, Message: "Project not found"})
			return
		}
		log.Printf("get project %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "Failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Data: p})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid request body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if projects.IsValidation(err) {
			c.JSON(http.StatusBadRequest, response{Success: false, Message: err.Error()})
			return
		}
		log.Printf("create project: %v", err)
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, response{Success: true, Message: "Project created successfully", Data: p})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid request body"})
		return
	}

	in := service.UpdateInput{
		Name:    req.Name,
		Status:  req.Status,
		DueDate: req.DueDate,
	}
	if req.Description.Set {
		// null and the empty string both clear the description.
		val := ""
		if req.Description.Valid {
			val = req.Description.Val
		}
		in.Description = &val
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrNotFound):
			c.JSON(http.StatusNotFound, response{Success: false, Message: "Project not found"})
		case projects.IsValidation(err):
			c.JSON(http.StatusBadRequest, response{Success: false, Message: err.Error()})
		default:
			log.Printf("update project %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, response{Success: false, Message: "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, response{Success: true, Message: "Project updated successfully", Data: p})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			c.JSON(http.StatusNotFound, response{Success: false, Message: "Project not found"})
			return
		}
		log.Printf("delete project %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, response{Success: false, Message: "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, response{Success: true, Message: "Project deleted successfully"})
}

// paramID parses the :id path segment. Ids are positive integers; anything
// else is the caller's mistake, answered before the service is involved.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response{Success: false, Message: "Invalid project id"})
		return 0, false
	}
	return id, true
}
