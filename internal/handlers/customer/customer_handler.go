package customer

import (
	"net/http"
	"strconv"

	"vos-erp-service/internal/domain/customer"
	"vos-erp-service/internal/pkg/response"
	customerService "vos-erp-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService *customerService.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(svc *customerService.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: svc,
		logger:          logger,
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	var f customer.ListFilters
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid list parameters")
		return
	}

	items, total, err := h.customerService.ListCustomers(c.Request.Context(), &f)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"customers": items,
		"total":     total,
		"limit":     f.Limit,
		"offset":    f.Offset,
	})
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	cust, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer payload")
		return
	}

	cust, err := h.customerService.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"customer": cust})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req customer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer payload")
		return
	}

	cust, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"message": "customer deleted"})
}
