package utils

import "github.com/gin-gonic/gin"

// Error writes the error envelope used across the API: {"error": message}.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

// Success writes data as-is with a 200 status.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(200, data)
}
