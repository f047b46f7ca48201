package lookup

import (
	"net/http"

	"vos-erp-service/internal/pkg/response"
	lookupService "vos-erp-service/internal/service/lookup"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LookupHandler struct {
	lookupService *lookupService.LookupService
	logger        *zap.Logger
}

func NewLookupHandler(svc *lookupService.LookupService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		lookupService: svc,
		logger:        logger,
	}
}

// Options serves dropdown entries for a named reference table. Unknown
// resource names return an empty list with 200 rather than an error, so form
// frontends degrade to an empty dropdown.
func (h *LookupHandler) Options(c *gin.Context) {
	resource := c.Param("resource")
	q := c.Query("q")

	options, err := h.lookupService.Options(c.Request.Context(), resource, q)
	if err != nil {
		h.logger.Error("failed to load lookup options",
			zap.String("resource", resource),
			zap.Error(err),
		)
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"options": options})
}
