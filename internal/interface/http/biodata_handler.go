package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vivahsetu/vivahsetu/internal/application"
	"github.com/vivahsetu/vivahsetu/internal/domain/entity"
	"github.com/vivahsetu/vivahsetu/pkg/response"
	"github.com/vivahsetu/vivahsetu/pkg/validation"
)

type BiodataHandler struct {
	Svc    *application.BiodataService
	Logger *logrus.Logger
}

func NewBiodataHandler(svc *application.BiodataService, logger *logrus.Logger) *BiodataHandler {
	return &BiodataHandler{Svc: svc, Logger: logger}
}

// profileRequest carries the ten biodata fields. Field-content rules live in
// entity.ValidateProfile so the API reports the full message list in one
// round trip instead of failing on the first binding tag.
type profileRequest struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Height     string `json:"height"`
	Education  string `json:"education"`
	Occupation string `json:"occupation"`
	Location   string `json:"location"`
	Religion   string `json:"religion"`
}

func (r profileRequest) toEntity() entity.Profile {
	return entity.Profile{
		Name:       r.Name,
		Gender:     r.Gender,
		DOB:        r.DOB,
		Contact:    r.Contact,
		Email:      r.Email,
		Height:     r.Height,
		Education:  r.Education,
		Occupation: r.Occupation,
		Location:   r.Location,
		Religion:   r.Religion,
	}
}

// List handles GET /profiles?q= — the full directory, or a case-insensitive
// substring search over name, location and education.
func (h *BiodataHandler) List(c *gin.Context) {
	profiles, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list profiles", nil)
		return
	}
	response.Success(c, http.StatusOK, profiles, "profiles", gin.H{"count": len(profiles)})
}

func (h *BiodataHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Error[any](c, http.StatusNotFound, "profile not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

func (h *BiodataHandler) Create(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p := req.toEntity()
	p.OwnerEmail = c.GetString("userEmail")

	created, err := h.Svc.Create(c.Request.Context(), p)
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", verr.Messages)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create profile", nil)
		return
	}
	response.Success(c, http.StatusCreated, created, "profile added", nil)
}

func (h *BiodataHandler) Update(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Error[any](c, http.StatusNotFound, "profile not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	if existing.OwnerEmail != c.GetString("userEmail") {
		response.Error[any](c, http.StatusForbidden, "only the owner can edit this profile", nil)
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p := req.toEntity()
	p.ID = existing.ID
	p.OwnerEmail = existing.OwnerEmail
	p.CreatedAt = existing.CreatedAt

	updated, err := h.Svc.Update(c.Request.Context(), p)
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", verr.Messages)
			return
		}
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Error[any](c, http.StatusNotFound, "profile not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, updated, "profile updated", nil)
}

func (h *BiodataHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Error[any](c, http.StatusNotFound, "profile not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	if existing.OwnerEmail != c.GetString("userEmail") {
		response.Error[any](c, http.StatusForbidden, "only the owner can delete this profile", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to delete profile", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "profile deleted", nil)
}
