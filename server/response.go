package server

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// { success, data?, error?, message? }. Internal error detail stays in
// the logs; clients get a generic message.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{"success": true, "data": data, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
