// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Sessions: Flash cookie and Redis key layout.
  - Reference Data: The US state codes accepted by venue and artist forms.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "fyyur-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Sessions

const (
	// SessionCookieName identifies the browser session that owns flash messages.
	SessionCookieName = "fyyur_session"

	// SessionCookieMaxAge bounds how long a browser keeps its session id.
	SessionCookieMaxAge = 24 * time.Hour

	// FlashTTL is how long undelivered flash messages survive in Redis.
	FlashTTL = 10 * time.Minute
)

// # JSON Field Identifiers

const (
	FieldData   = "data"
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes

const (
	RedisPrefixFlash = "flash:"
)

// # Formatting

const (
	// ShowTimeLayout renders show start times on detail pages.
	ShowTimeLayout = "2006-01-02 15:04:05"

	// ShowListTimeLayout renders start times on the show listing (ISO 8601, no zone).
	ShowListTimeLayout = "2006-01-02T15:04:05"
)

// # Reference Data

// States lists the state codes offered by the venue and artist forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}
