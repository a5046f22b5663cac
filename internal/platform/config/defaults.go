package config

// defaults seeds every known key before the YAML and env layers run. The env
// layer only recognises keys that already exist, so a setting missing here
// cannot be overridden with an underscore-containing APP_ name.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          8080,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.backend": BackendMemory,

		"database.host":              "localhost",
		"database.port":              5432,
		"database.user":              "taskflow",
		"database.password":          "",
		"database.name":              "taskflow",
		"database.ssl_mode":          "disable",
		"database.max_conns":         10,
		"database.min_conns":         1,
		"database.conn_max_lifetime": "30m",
		"database.connect_timeout":   "5s",
		"database.migrate_on_start":  true,

		"database.circuit_breaker.max_failures":    5,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": 1,

		"auth.jwt_secret":  "",
		"auth.issuer":      "taskflow-service",
		"auth.token_ttl":   "1h",
		"auth.bcrypt_cost": 10,

		"auth.rate_limit.requests_per_second": 5.0,
		"auth.rate_limit.burst_size":          10,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskflow-service",
	}
}
