package upload

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gin-gonic/gin"

	"spotshot/internal/config"
	"spotshot/internal/pkg/response"
)

// UploadFolder is where client uploads land. Kept fixed rather than
// per-user so signed params stay cacheable on the frontend.
const UploadFolder = "photospots/dev"

// Handler signs direct-to-Cloudinary upload requests so the API secret
// never reaches the browser.
type Handler struct {
	cfg *config.Config
	now func() time.Time
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg, now: time.Now}
}

func (h *Handler) GetSignature(c *gin.Context) {
	if !h.cfg.HasCloudinary() {
		response.Error(c, http.StatusServiceUnavailable, "Upload signing is not configured")
		return
	}

	timestamp := h.now().Unix()

	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("folder", UploadFolder)
	params.Set("upload_preset", h.cfg.CloudinaryUploadPreset)

	signature, err := api.SignParameters(params, h.cfg.CloudinaryAPISecret)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timestamp":     timestamp,
		"folder":        UploadFolder,
		"upload_preset": h.cfg.CloudinaryUploadPreset,
		"signature":     signature,
		"api_key":       h.cfg.CloudinaryAPIKey,
		"cloud_name":    h.cfg.CloudinaryCloudName,
	})
}
