package middleware

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/rifaapp/rifa-api/internal/api/handler/v1/response"
)

type SchemaGuard interface {
	EnsureReady(ctx context.Context) error
}

// EnsureSchema creates the tables on the first request that needs them.
func EnsureSchema(guard SchemaGuard) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := guard.EnsureReady(ctx.Request.Context()); err != nil {
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("guard.EnsureReady -> %w", err)))
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
