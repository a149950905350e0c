package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/alimgiray/showcase/internal/form"
	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/gin-gonic/gin"
)

var errUnknownRepository = errors.New("repository not found")

// DraftHandler exposes the logged-in user's project draft
type DraftHandler struct {
	drafts *services.DraftService
}

func NewDraftHandler(drafts *services.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

type fieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

type repositoryRequest struct {
	FullName string `json:"fullName" binding:"required"`
}

type technologyRequest struct {
	Label string `json:"label"`
}

type contributorRequest struct {
	GithubUsername string      `json:"githubUsername"`
	Role           models.Role `json:"role"`
}

type featureRequest struct {
	Value string `json:"value"`
}

func identity(c *gin.Context) form.Identity {
	session := middleware.GetSession(c)
	return form.Identity{ID: session.UserID, GithubUsername: session.Username}
}

func statusFor(err error) int {
	var notice *form.Notice
	switch {
	case errors.As(err, &notice), errors.Is(err, form.ErrInvalidDraft):
		return http.StatusUnprocessableEntity
	case errors.Is(err, form.ErrIndexOutOfRange), errors.Is(err, form.ErrContributorMissing), errors.Is(err, errUnknownRepository):
		return http.StatusNotFound
	case errors.Is(err, form.ErrSubmitInProgress), errors.Is(err, form.ErrNotIdle), errors.Is(err, form.ErrNotTerminal):
		return http.StatusConflict
	case errors.Is(err, form.ErrNoIdentity):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// respond writes the draft, with the error and any notice when err is set
func respond(c *gin.Context, view services.DraftView, err error) {
	if err == nil {
		c.JSON(http.StatusOK, view)
		return
	}

	body := gin.H{"error": err.Error(), "draft": view}
	var notice *form.Notice
	if errors.As(err, &notice) {
		body["notice"] = notice
	}
	c.JSON(statusFor(err), body)
}

func (h *DraftHandler) edit(c *gin.Context, fn func(d *form.Draft) error) {
	view, err := h.drafts.Edit(identity(c), fn)
	respond(c, view, err)
}

func bindOrReject(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return 0, false
	}
	return index, true
}

// GetDraft returns the current draft
func (h *DraftHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, h.drafts.Get(identity(c)))
}

func (h *DraftHandler) UpdateField(c *gin.Context) {
	var req fieldRequest
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		return d.UpdateField(form.Field(req.Field), req.Value)
	})
}

func (h *DraftHandler) SetPrivateRepository(c *gin.Context) {
	var req toggleRequest
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		d.SetPrivateRepository(req.Enabled)
		return nil
	})
}

// SelectRepository fills githubUrl from one of the loaded repositories
func (h *DraftHandler) SelectRepository(c *gin.Context) {
	var req repositoryRequest
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		if !d.SelectRepository(req.FullName) {
			return errUnknownRepository
		}
		return nil
	})
}

func (h *DraftHandler) AddTechnology(c *gin.Context) {
	var req technologyRequest
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		d.AddTechnology(req.Label)
		return nil
	})
}

// RemoveTechnology drops the label given in the query string. Labels may
// contain "/" so they are not taken from the path.
func (h *DraftHandler) RemoveTechnology(c *gin.Context) {
	label, ok := c.GetQuery("label")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label is required"})
		return
	}
	h.edit(c, func(d *form.Draft) error {
		d.RemoveTechnology(label)
		return nil
	})
}

// AddContributor adds a team member. A blank username leaves the list unchanged.
func (h *DraftHandler) AddContributor(c *gin.Context) {
	var req contributorRequest
	if !bindOrReject(c, &req) {
		return
	}
	if req.Role != "" && !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	h.edit(c, func(d *form.Draft) error {
		d.AddContributor(req.GithubUsername, req.Role)
		return nil
	})
}

func (h *DraftHandler) RemoveContributor(c *gin.Context) {
	id := c.Param("id")
	h.edit(c, func(d *form.Draft) error {
		return d.RemoveContributor(id)
	})
}

func (h *DraftHandler) AddFeature(c *gin.Context) {
	h.edit(c, func(d *form.Draft) error {
		d.AddFeature()
		return nil
	})
}

func (h *DraftHandler) UpdateFeature(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req featureRequest
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		return d.UpdateFeature(index, req.Value)
	})
}

func (h *DraftHandler) RemoveFeature(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		return d.RemoveFeature(index)
	})
}

func (h *DraftHandler) AddHighlight(c *gin.Context) {
	var req models.AcademicHighlight
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		return d.AddHighlight(req)
	})
}

func (h *DraftHandler) RemoveHighlight(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		return d.RemoveHighlight(index)
	})
}

func (h *DraftHandler) StageImage(c *gin.Context) {
	var req form.Image
	if !bindOrReject(c, &req) {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		d.StageImage(req)
		return nil
	})
}

// AddImage moves the staged image into the project images
func (h *DraftHandler) AddImage(c *gin.Context) {
	h.edit(c, func(d *form.Draft) error {
		return d.AddImage(d.StagedImage)
	})
}

func (h *DraftHandler) RemoveImage(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.edit(c, func(d *form.Draft) error {
		return d.RemoveImage(index)
	})
}

// Validate publishes the validation errors on the draft
func (h *DraftHandler) Validate(c *gin.Context) {
	h.edit(c, func(d *form.Draft) error {
		if !d.Check() {
			return form.ErrInvalidDraft
		}
		return nil
	})
}

// Submit sends the draft to the creation endpoint and returns the outcome.
// The submission outlives the client connection.
func (h *DraftHandler) Submit(c *gin.Context) {
	view, err := h.drafts.Submit(context.WithoutCancel(c.Request.Context()), identity(c))
	respond(c, view, err)
}

// Acknowledge dismisses the result dialog and resets the draft
func (h *DraftHandler) Acknowledge(c *gin.Context) {
	view, err := h.drafts.Update(identity(c), func(session *form.Session) error {
		return session.Acknowledge()
	})
	respond(c, view, err)
}
