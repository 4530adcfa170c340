package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Event types
const (
	EventReviewScrapeRequested = "review.scrape_requested"
	EventAccountDeleted        = "account.deleted"
)

// TokenTypeBearer is the token kind label returned with every token pair.
const TokenTypeBearer = "bearer"
