package constant

import (
	"time"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamLimit = "limit"
	RequestMaxMemory  = 10 << 20 // 10 MB
)

const (
	DefaultValueLimit = 100
	MaxValueLimit     = 100
)

const (
	FieldID        = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	DateFormat       = time.RFC3339
	DateOnlyFormat   = "2006-01-02"
	DateTimeNoZone   = "2006-01-02T15:04:05"
	MaxErrorDetail   = 200
	MaxStatusDetail  = 50
	MaxDiagnosticCol = 10
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey      = "query"
	OtelCollectionAttributeKey = "collection"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
	FormFile        = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
