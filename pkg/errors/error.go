package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// ErrInvalidQuantity represents a simulation request with a non-positive quantity.
	ErrInvalidQuantity ErrorCode = "invalid_quantity"
	// ErrMissingLimitPrice represents a limit simulation request without a limit price.
	ErrMissingLimitPrice ErrorCode = "missing_limit_price"
	// ErrNoLiquidity represents a book with an empty opposing side.
	ErrNoLiquidity ErrorCode = "no_liquidity"
	// ErrNoMarketData represents a book with at least one empty side.
	ErrNoMarketData ErrorCode = "no_market_data"
	// ErrComputation represents an unexpected internal fault during a simulation.
	ErrComputation ErrorCode = "computation_error"

	// FeedConnectionError represents an error while dialing a venue websocket.
	FeedConnectionError ErrorCode = "feed_connection_error"
	// FeedSubscribeError represents an error while subscribing to a depth channel.
	FeedSubscribeError ErrorCode = "feed_subscribe_error"
	// FeedParseError represents an unparseable venue depth message.
	FeedParseError ErrorCode = "feed_parse_error"
	// FeedUnknownVenueError represents a venue this service has no adapter for.
	FeedUnknownVenueError ErrorCode = "feed_unknown_venue_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"
	// RedisSubscribeError represents an error when subscribing to channels in Redis.
	RedisSubscribeError ErrorCode = "redis_subscribe_error"
)
