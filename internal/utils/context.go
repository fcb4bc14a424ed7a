package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	ActorKey  ContextKey = "actor"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoActorInClaims   = errors.New("no user_id found in claims")
	ErrInvalidActorType  = errors.New("user_id must be a string")
)

// GetActorFromContext returns the authenticated actor identity set by the
// auth middleware. Workflow transitions record this as the acting party.
func GetActorFromContext(c context.Context) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	actor, exists := claims["user_id"]
	if !exists {
		return "", ErrNoActorInClaims
	}

	actorStr, ok := actor.(string)
	if !ok {
		return "", ErrInvalidActorType
	}

	return actorStr, nil
}
