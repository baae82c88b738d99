package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "eventbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultLogLevel = "info"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSlugMaxAttempts = 3
	DefaultSlugTokenLength = 6

	DefaultPaginationLimit = 100
)
