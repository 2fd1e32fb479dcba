package model

import (
	"errors"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Credentials = Credentials{
		ClientID:     "id",
		ClientSecret: "secret",
		Username:     "user",
		Password:     "pass",
		UserAgent:    "quadrant-test/0.1",
	}
	cfg.Communities = []string{"golang"}
	return cfg
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidate_MissingCredential(t *testing.T) {
	mutations := []func(*Config){
		func(c *Config) { c.Credentials.ClientID = "" },
		func(c *Config) { c.Credentials.ClientSecret = "" },
		func(c *Config) { c.Credentials.Username = "" },
		func(c *Config) { c.Credentials.Password = "" },
		func(c *Config) { c.Credentials.UserAgent = "" },
	}

	for i, mutate := range mutations {
		cfg := validConfig()
		mutate(cfg)
		err := cfg.Validate()

		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("mutation %d: expected ConfigError, got %v", i, err)
		}
	}
}

func TestValidate_NoCommunities(t *testing.T) {
	cfg := validConfig()
	cfg.Communities = nil

	var cfgErr *ConfigError
	if !errors.As(cfg.Validate(), &cfgErr) {
		t.Fatal("expected ConfigError for empty community list")
	}
}

func TestValidate_BadMode(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = "rising"

	var cfgErr *ConfigError
	if !errors.As(cfg.Validate(), &cfgErr) {
		t.Fatal("expected ConfigError for unknown mode")
	}
}

func TestSummary_HasData(t *testing.T) {
	if (CommunitySummary{}).HasData() {
		t.Error("empty summary claims to have data")
	}
	if !(CommunitySummary{SampleCount: 1}).HasData() {
		t.Error("populated summary claims no data")
	}
}
