package api

import (
	"io"
	"log/slog"
	"net/http"

	"volume-discount-admin/internal/domain/discount"
	reqdto "volume-discount-admin/internal/handler/dto/request"
	resdto "volume-discount-admin/internal/handler/dto/response"
	"volume-discount-admin/internal/handler/httperr"
	"volume-discount-admin/internal/handler/middleware"
	"volume-discount-admin/internal/pkg/config"
	"volume-discount-admin/internal/pkg/errs"
	"volume-discount-admin/internal/usecase/commands"
	"volume-discount-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VolumeDiscountHandler struct {
	configuredID discount.ExtensionID
	extensions   queries.ExtensionQueries
	cmds         commands.DiscountCommands
}

func NewVolumeDiscountHandler(cfg config.Config, extensions queries.ExtensionQueries, cmds commands.DiscountCommands) *VolumeDiscountHandler {
	return &VolumeDiscountHandler{
		configuredID: discount.ExtensionID(cfg.Discount.FunctionID),
		extensions:   extensions,
		cmds:         cmds,
	}
}

// @Summary Volume discount page
// @Description Resolve the deployed volume discount function for the admin page
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VolumeDiscountPageResponse
// @Failure 401 {object} httperr.Response
// @Router /api/discounts/volume [get]
func (h *VolumeDiscountHandler) Show(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrShopNotInstalled, "Unauthorized", nil)
		return
	}

	resolution := h.extensions.Resolve(c.Request.Context(), h.configuredID, admin)
	c.JSON(http.StatusOK, resdto.FromResolution(resolution))
}

// @Summary Create volume discount
// @Description Create an automatic app discount bound to the volume discount function
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID forwarded to the Admin API"
// @Param request body reqdto.CreateVolumeDiscountRequest false "Discount form"
// @Success 200 {object} resdto.VolumeDiscountSubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/discounts/volume [post]
func (h *VolumeDiscountHandler) Create(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrShopNotInstalled, "Unauthorized", nil)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	// an empty body, chunked or not, submits the form with defaults
	var req reqdto.CreateVolumeDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errs.Is(bindErr, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	ctx := c.Request.Context()
	extensionID := req.GetFunctionID()
	if extensionID.IsZero() {
		resolution := h.extensions.Resolve(ctx, h.configuredID, admin)
		if resolution.LookupErr != nil {
			slog.WarnContext(ctx, "submitting without a resolved function", "error", resolution.LookupErr)
		}
		extensionID = resolution.ID
	}

	outcome := h.cmds.Provision(ctx, commands.ProvisionParams{
		ExtensionID:    extensionID,
		Title:          req.GetTitle(),
		IdempotencyKey: idempotencyKey,
	}, admin)

	c.JSON(http.StatusOK, resdto.FromOutcome(outcome))
}

// absent header means the key is generated downstream
func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidIdempotencyKey)
	}

	return key, nil
}
