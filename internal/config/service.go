package config

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`

	// WebhookSecret is the shared secret expected on every inbound outreach
	// webhook. An empty value disables authentication entirely.
	WebhookSecret string `yaml:"webhook_secret"`

	// ForceUpdateBasicFields overwrites non-empty basic identity fields
	// (name, email, job title) on merge instead of only filling empty ones.
	ForceUpdateBasicFields bool `yaml:"force_update_basic_fields"`
}
