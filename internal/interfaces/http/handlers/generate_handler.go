package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/application/augment"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// GenerateHandler serves the augmentation endpoints.
type GenerateHandler struct {
	service augment.Service
}

// NewGenerateHandler constructs a GenerateHandler.
func NewGenerateHandler(service augment.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// GenerateRequest is the POST /generate body.
type GenerateRequest struct {
	Utterance string   `json:"utterance" binding:"required"`
	Threshold *float64 `json:"threshold,omitempty"`
	Persist   bool     `json:"persist,omitempty"`
}

// Generate handles POST /api/v1/generate.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "invalid request body").WithCause(err))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), &augment.GenerateInput{
		Utterance: req.Utterance,
		Threshold: req.Threshold,
		Persist:   req.Persist,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBatch handles GET /api/v1/batches/:id.
func (h *GenerateHandler) GetBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeBadRequest, "invalid batch id"))
		return
	}

	batch, err := h.service.GetBatch(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// ListBatches handles GET /api/v1/batches.
func (h *GenerateHandler) ListBatches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	batches, err := h.service.ListBatches(c.Request.Context(), &augment.ListInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if batches == nil {
		batches = []*augment.Batch{}
	}
	c.JSON(http.StatusOK, gin.H{"batches": batches})
}
