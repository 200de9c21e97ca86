// Package constants holds shared identifiers used across layers.
package constants

// Pub/Sub provider names accepted by the config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
