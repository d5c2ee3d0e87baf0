package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome reports that the server is up.
func GetHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Event Ledger API v1"})
}
