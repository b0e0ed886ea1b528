package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when LOG_FORMAT is not set.
	DefaultLogFormat = "json"

	// DefaultRateLimitRPS is the sustained request rate allowed by the HTTP API.
	// Zero or negative disables rate limiting.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the token bucket size for the HTTP API.
	DefaultRateLimitBurst = 100

	// DefaultMaxBatchSize caps submissions per batch request or file.
	DefaultMaxBatchSize = 500

	// DefaultOutputFormat is the batch command output format.
	DefaultOutputFormat = "yaml"
)
