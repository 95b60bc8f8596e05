package config

// Test helpers shared by the config package tests.

// MakeTestConfig returns a minimal valid Config with all sections set.
func MakeTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:      "127.0.0.1:8787",
			TimeoutMS:   60000,
			EnableHTTP2: false,
		},
		Auth: AuthConfig{
			Username:        "operator",
			Password:        "hunter2",
			UseLocalDay:     false,
			LoginRatePerMin: 0,
		},
		Upstream: UpstreamConfig{
			BaseURL:   "https://api.example.com/v2",
			Token:     "tok-123",
			TimeoutMS: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
			Pretty: false,
		},
	}
}
