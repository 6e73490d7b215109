package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yigit/workload/docs"
)

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine, host string) {
	if host != "" {
		docs.SwaggerInfo.Host = host
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
