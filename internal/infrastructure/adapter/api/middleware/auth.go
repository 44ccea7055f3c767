package middleware

import (
	"strings"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "portal.current_user"

// TokenVerifier turns a bearer token into the identity it asserts
type TokenVerifier interface {
	Verify(token string) (usecase.Identity, error)
}

// Auth reads the token from the Authorization header or, failing that, from
// cookieName. The member is created on first sign-in and stored on the context.
func Auth(verifier TokenVerifier, users usecase.UserUseCase, cookieName string, log coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && cookieName != "" {
			token, _ = c.Cookie(cookieName)
		}
		if token == "" {
			abortWith(c, domainerr.ErrUnauthorized, "Authentication required")
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			log.Debug("Rejected token", map[string]any{"error": err.Error(), "path": c.Request.URL.Path})
			abortWith(c, domainerr.ErrUnauthorized, "Invalid token")
			return
		}

		user, err := users.EnsureUser(c.Request.Context(), identity)
		if err != nil {
			log.Error("Failed to resolve user", map[string]any{"subject": identity.Subject, "error": err.Error()})
			abortWith(c, err, "Failed to resolve user")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin lets through members with the admin role and the configured
// administrator emails
func RequireAdmin(adminEmails []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWith(c, domainerr.ErrUnauthorized, "Authentication required")
			return
		}
		if _, listed := allowed[strings.ToLower(user.Email)]; !listed && !user.IsAdmin() {
			abortWith(c, domainerr.ErrForbidden, "Administrator access required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the member stored by Auth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortWith(c *gin.Context, err error, message string) {
	c.AbortWithStatusJSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(c.Request.Context(), err, message))
}

