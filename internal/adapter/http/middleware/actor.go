package middleware

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"
	"portal_servicos/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
	HeaderActorName = "X-Actor-Name"
	HeaderCompanyID = "X-Company-ID"

	actorKey = "actor"
)

var (
	errMissingActor   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "X-Actor-ID and a valid X-Actor-Role (client or staff) are required", http.StatusUnauthorized)
	errInvalidIfMatch = pkg.NewDomainErrorSimple("INVALID_REQUEST", "If-Match must carry the request version as an integer", http.StatusBadRequest)
)

// Actor resolves the caller from the headers set by the authenticating
// gateway. System is never accepted from the outside.
//
// An If-Match header pins the version the caller last read; writes against a
// newer version fail with a concurrency conflict.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := entities.Actor{
			ID:        strings.TrimSpace(c.GetHeader(HeaderActorID)),
			Name:      strings.TrimSpace(c.GetHeader(HeaderActorName)),
			Role:      entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole)))),
			CompanyID: strings.TrimSpace(c.GetHeader(HeaderCompanyID)),
		}
		if actor.ID == "" || (actor.Role != entities.RoleClient && actor.Role != entities.RoleStaff) {
			log.Printf("[http][actor] rejected actor_id=%q role=%q path=%s", actor.ID, actor.Role, c.FullPath())
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		c.Set(actorKey, actor)

		if raw := strings.Trim(strings.TrimSpace(c.GetHeader("If-Match")), `"`); raw != "" {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || v < 0 {
				c.AbortWithStatusJSON(errInvalidIfMatch.HTTPStatus, errInvalidIfMatch.ToHTTPError())
				return
			}
			c.Request = c.Request.WithContext(usecase.WithExpectedVersion(c.Request.Context(), v))
		}

		c.Next()
	}
}

// ActorFrom returns the actor stored by Actor. Handlers mounted without the
// middleware get the zero actor, which every use case rejects.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return entities.Actor{}
}
