package middleware

import (
	"fmt"
	"net/http"
	"photo-share-server/internal/consts"
	"strings"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通接口的请求体大小。
// 上传相关路由跳过，交给 UploadBodyLimitMiddleware。
func BodyLimitMiddleware() gin.HandlerFunc {
	maxBytes := int64(consts.MaxRequestBodyMB) * 1024 * 1024

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/photos") && c.Request.Method == http.MethodPost ||
			strings.HasSuffix(path, "/avatar") {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传/头像接口的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	maxBytes := int64(consts.MaxUploadSizeMB) * 1024 * 1024

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": fmt.Sprintf("File must not exceed %dMB", consts.MaxUploadSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
