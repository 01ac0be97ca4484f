package global

const (
	AppVersion = "1.0.0" // shown in boot logs and the health endpoint

	// Gin context keys. String constants keep producers and readers in sync.
	CtxUserIDKey    = "uid"        // authenticated user id (uint), set by middlewares.Auth
	CtxRequestIDKey = "request_id" // per-request uuid, set by middlewares.RequestLogger

	HeaderRequestID = "X-Request-ID"

	RedisLogKey     = "logs:closet" // capped list mirrored by utils/redislog
	ProfileCacheKey = "user:%d"     // fmt pattern for the cached Profile
	ProfileGenKey   = "user:%d:gen" // bumped on every invalidation
)
