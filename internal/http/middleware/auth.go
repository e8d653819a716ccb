package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"helloteam.app/api/common/errs"
	"helloteam.app/api/common/logger"
	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/store"
)

var (
	errMissingToken = errs.InvalidToken("authentication credentials were not provided")
	errUserInactive = errs.InvalidToken("user not found or inactive")
)

type TokenResolver interface {
	Resolve(token string) (auth.Principal, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// RequireAuth resolves the bearer token, loads the user and stores the
// RequestContext on the request context. The workspace claim is not checked
// here; RequireWorkspaceScope does that for tenant routes.
func RequireAuth(resolver TokenResolver, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			RespondError(c, errMissingToken)
			return
		}

		principal, err := resolver.Resolve(token)
		if err != nil {
			RespondError(c, err)
			return
		}

		user, err := users.GetByID(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				RespondError(c, errUserInactive)
				return
			}
			RespondError(c, err)
			return
		}
		if !user.IsActive {
			RespondError(c, errUserInactive)
			return
		}

		rc := auth.RequestContext{User: user, WorkspaceID: principal.WorkspaceID}
		ctx = auth.WithRequestContext(ctx, rc)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			UserID:      &user.ID,
			WorkspaceID: principal.WorkspaceID.Ptr(),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestContext is valid only behind RequireAuth.
func GetRequestContext(c *gin.Context) auth.RequestContext {
	rc, _ := auth.FromContext(c.Request.Context())
	return rc
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
