package supplier

import (
	"net/http"
	"strconv"

	"vos-erp-service/internal/domain/supplier"
	"vos-erp-service/internal/pkg/response"
	supplierService "vos-erp-service/internal/service/supplier"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	supplierService *supplierService.SupplierService
	logger          *zap.Logger
}

func NewSupplierHandler(svc *supplierService.SupplierService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierService: svc,
		logger:          logger,
	}
}

func (h *SupplierHandler) List(c *gin.Context) {
	var f supplier.ListFilters
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid list parameters")
		return
	}

	items, total, err := h.supplierService.ListSuppliers(c.Request.Context(), &f)
	if err != nil {
		h.logger.Error("failed to list suppliers", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"suppliers": items,
		"total":     total,
		"limit":     f.Limit,
		"offset":    f.Offset,
	})
}

func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid supplier id")
		return
	}

	sp, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"supplier": sp})
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplier.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid supplier payload")
		return
	}

	sp, err := h.supplierService.CreateSupplier(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"supplier": sp})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid supplier id")
		return
	}

	var req supplier.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid supplier payload")
		return
	}

	sp, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"supplier": sp})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid supplier id")
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "supplier deleted"})
}
