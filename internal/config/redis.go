package config

import "time"

// RedisConfig configures the optional sync mutex. When Addr is empty the
// service runs without per-connection locking.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	LockTTL  time.Duration `yaml:"lock_ttl"`
}
