// Package ginrequestid adapts requestid.Binder to the gin framework.
//
//	r := gin.New()
//	r.Use(ginrequestid.Middleware(requestid.New()))
//	r.GET("/", func(c *gin.Context) {
//		id, _ := ginrequestid.FromContext(c)
//		c.String(http.StatusOK, "My id is %s", id)
//	})
package ginrequestid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/reqid/pkg/requestid"
)

// Middleware binds an identifier to c.Request's context before the remaining
// handlers run and finalizes it once they have returned.
// A generator failure aborts the chain with 500 and records the error on c.
func Middleware(b *requestid.Binder) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := b.OnRequest(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		b.Echo(ctx, c.Writer.Header())
		defer b.OnResponse(ctx, c.Writer.Header())

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// FromContext returns the identifier bound to the request served by c.
func FromContext(c *gin.Context) (requestid.ID, bool) {
	if c == nil || c.Request == nil {
		return requestid.ID{}, false
	}
	return requestid.FromContext(c.Request.Context())
}
