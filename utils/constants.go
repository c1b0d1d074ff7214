package utils

import "time"

// SessionCachePrefix is the prefix used for Redis keys holding verified sessions.
const SessionCachePrefix = "session:"

// SessionIndexPrefix prefixes the per-user set of cached session keys.
const SessionIndexPrefix = "sessions:uid:"

// SessionCacheTTL bounds how long a verified session is trusted without asking
// the identity provider again, e.g. after the account is disabled.
const SessionCacheTTL = 2 * time.Minute

// Gin context keys shared by the middleware and handlers.
const (
	LoggerContextKey    = "logger"
	PrincipalContextKey = "principal"
)

// RateLimiterIdleTTL is how long a client's limiter is kept after its last request.
const RateLimiterIdleTTL = 10 * time.Minute

// Firestore / Mongo collection names.
const (
	RoomsCollection    = "rooms"
	UsersCollection    = "users"
	PaymentsCollection = "payments"
)
