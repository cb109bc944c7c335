package controllers

import (
	"ClinicBook/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	middlewares.RespondJSON(c, gin.H{"service": "clinicbook", "status": "ok"}, http.StatusOK)
}

// SetupRootRoute sets up the root route for the application
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
