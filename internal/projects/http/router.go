package http

import "github.com/gin-gonic/gin"

// Register attaches the project routes to the given router group.
func Register(rg *gin.RouterGroup, svc ProjectService) {
	h := NewHandler(svc)

	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
