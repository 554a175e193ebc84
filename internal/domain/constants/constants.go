// Package constants holds string identifiers shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Drop store providers
const (
	DropStoreFirebase = "firebase"
	DropStoreSQL      = "sql"
)

// SQL drivers
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// Event types published on the event bus
const (
	EventTypeDropCollected = "drop.collected"
)

// QR payload type for shared drops
const (
	QRTypeDrop = "drop"
)

// Drop authoring limits
const (
	// MaxTeaserLength is the longest teaser accepted, in runes
	MaxTeaserLength = 140
	// MaxSessionIDLength bounds client-chosen map session IDs
	MaxSessionIDLength = 64
)

// Content routes
const (
	// ContentPathPrefix is where collected file payloads are served from
	ContentPathPrefix = "/api/v1/content/"
)
