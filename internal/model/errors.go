package model

import "fmt"

// ConfigError indicates a missing or malformed configuration. Fatal,
// raised before any fetch happens.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AuthError indicates the external API rejected the credentials. Fatal,
// aborts the whole run.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError indicates a single community could not be fetched.
// Recoverable: the caller logs a skip and continues with the rest.
type FetchError struct {
	Community string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch r/%s: %v", e.Community, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RenderError indicates the final image could not be written. Fatal; a
// partial image is not a valid result.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
