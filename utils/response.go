package utils

import "github.com/gin-gonic/gin"

// JSONSuccess y JSONError son el sobre común de todas las respuestas del
// API: {"success": bool, "data"|"error": ...}.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
