package web

import (
	"net/http"

	"go-recruitment-console/internal/delivery/http/response"
	"go-recruitment-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

func NewHealthHandler(r gin.IRoutes, healthUC usecase.HealthUsecase) {
	r.GET("/health", func(c *gin.Context) {
		status, ok := healthUC.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "Session store unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})
}
