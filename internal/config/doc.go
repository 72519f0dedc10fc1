// Package config loads, validates, and normalizes vidscribe configuration.
//
// Configuration is read from a TOML file resolved from an explicit path, then
// ~/.config/vidscribe/config.toml, then ./vidscribe.toml. Defaults apply when
// no file exists. A local .env file supplies VIDSCRIBE_* environment
// overrides for the archive directory and log level, which take precedence
// over file values.
package config
