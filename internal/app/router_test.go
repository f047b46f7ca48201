package app

import (
	"net/http"
	"testing"

	authHandler "vos-erp-service/internal/handlers/auth"
	customerHandler "vos-erp-service/internal/handlers/customer"
	lookupHandler "vos-erp-service/internal/handlers/lookup"
	supplierHandler "vos-erp-service/internal/handlers/supplier"
	userHandler "vos-erp-service/internal/handlers/user"
	"vos-erp-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRouterRegistersAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	SetupRouter(r, &Handlers{
		AuthHandler:     &authHandler.AuthHandler{},
		UserHandler:     &userHandler.UserHandler{},
		CustomerHandler: &customerHandler.CustomerHandler{},
		SupplierHandler: &supplierHandler.SupplierHandler{},
		LookupHandler:   &lookupHandler.LookupHandler{},
		AuthMiddleware:  &middleware.AuthMiddleware{},
	})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		http.MethodGet + " /api/v1/health",
		http.MethodPost + " /api/v1/auth/login",
		http.MethodPost + " /api/v1/auth/login-rfid",
		http.MethodPost + " /api/v1/auth/logout",
		http.MethodGet + " /api/v1/lookup/:resource",
		http.MethodGet + " /api/v1/customers",
		http.MethodPost + " /api/v1/customers",
		http.MethodPut + " /api/v1/customers/:id",
		http.MethodDelete + " /api/v1/customers/:id",
		http.MethodGet + " /api/v1/suppliers",
		http.MethodGet + " /api/v1/users",
		http.MethodPost + " /api/v1/users",
	}
	for _, route := range want {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}
