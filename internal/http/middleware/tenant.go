package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/tenant"
)

type ScopeAuthorizer interface {
	Authorize(ctx context.Context, rc auth.RequestContext) (tenant.Scope, error)
}

// RequireWorkspaceScope runs the tenant gate before the handler. A denied
// request is aborted before any handler code runs.
func RequireWorkspaceScope(gate ScopeAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rc, ok := auth.FromContext(ctx)
		if !ok {
			RespondError(c, tenant.ErrUnauthenticated)
			return
		}

		scope, err := gate.Authorize(ctx, rc)
		if err != nil {
			RespondError(c, err)
			return
		}

		c.Request = c.Request.WithContext(tenant.WithScope(ctx, scope))
		c.Next()
	}
}

// GetScope is valid only behind RequireWorkspaceScope. Outside it the zero
// Scope is returned, which sees nothing.
func GetScope(c *gin.Context) tenant.Scope {
	scope, _ := tenant.FromContext(c.Request.Context())
	return scope
}
