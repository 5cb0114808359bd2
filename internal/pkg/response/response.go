package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Message is used where the API confirms an action without a payload,
// e.g. after deleting a record.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

// List wraps an unpaged collection payload with its size.
func List(c *gin.Context, statusCode int, data interface{}, count int) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// Page wraps a list payload with pagination metadata.
// pages is ceil(total/limit), computed by the caller.
func Page(c *gin.Context, statusCode int, data interface{}, count int, total int64, page, pages int) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"count":   count,
		"total":   total,
		"page":    page,
		"pages":   pages,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
