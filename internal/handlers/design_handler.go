package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
	"github.com/Lixing-Zhang/tshirt-designer/internal/service"
)

const designTypeBack = "back"

// DesignResponse is the body of a successful design call
type DesignResponse struct {
	Success bool                    `json:"success"`
	Design  *models.GeneratedDesign `json:"design"`
}

// DesignHandler handles design generation HTTP requests
type DesignHandler struct {
	designService *service.DesignService
	exposeDetails bool
	log           *slog.Logger
}

// NewDesignHandler creates a new design handler. exposeDetails controls
// whether provider error messages reach the client.
func NewDesignHandler(designService *service.DesignService, exposeDetails bool, log *slog.Logger) *DesignHandler {
	return &DesignHandler{
		designService: designService,
		exposeDetails: exposeDetails,
		log:           log,
	}
}

// GenerateDesign handles POST /api/generate-design
func (h *DesignHandler) GenerateDesign(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateDesignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode design request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.DesignType) == "" {
		WriteError(w, http.StatusBadRequest, "description and designType are required", h.log)
		return
	}

	eventType := req.EventType
	if strings.TrimSpace(eventType) == "" {
		eventType = req.Description
	}

	design, err := h.designService.CreateDesign(r.Context(),
		models.DesignRequest{
			EventType:    eventType,
			Description:  req.Description,
			IsBackDesign: isBack(req.DesignType),
		},
		models.DesignOptions{StylePreferences: req.StylePreferences, HighQuality: req.HighQuality},
	)
	if err != nil {
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to generate design", errorDetail(h.exposeDetails, err), h.log)
		return
	}

	WriteJSON(w, http.StatusOK, DesignResponse{Success: true, Design: design}, h.log)
}

// ImproveDesign handles POST /api/improve-design
func (h *DesignHandler) ImproveDesign(w http.ResponseWriter, r *http.Request) {
	var req models.ImproveDesignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode improve request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		WriteError(w, http.StatusBadRequest, "prompt is required", h.log)
		return
	}

	history := models.DesignHistory{
		OriginalPrompt: req.OriginalPrompt,
		RevisedPrompt:  req.RevisedPrompt,
		ImageURL:       req.ImageURL,
	}
	if history.RevisedPrompt == "" {
		history.RevisedPrompt = req.OriginalPrompt
	}

	design, err := h.designService.ImproveDesign(r.Context(), history, req.Prompt,
		models.DesignOptions{StylePreferences: req.StylePreferences, HighQuality: req.HighQuality},
	)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFeedback) {
			WriteError(w, http.StatusBadRequest, "prompt is required", h.log)
			return
		}
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to improve design", errorDetail(h.exposeDetails, err), h.log)
		return
	}

	WriteJSON(w, http.StatusOK, DesignResponse{Success: true, Design: design}, h.log)
}

func isBack(designType string) bool {
	return strings.EqualFold(strings.TrimSpace(designType), designTypeBack)
}
