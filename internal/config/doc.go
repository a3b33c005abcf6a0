// Package config handles loading and parsing cram's configuration file.
//
// The Load function resolves ~/.config/cram/config.toml (or an explicit
// path), falling back to defaults when the file is missing so the tool
// works out of the box:
//
//	endpoint = "https://api.openai.com"
//	model = "gpt-4o-mini"
//	api_key_env = "OPENAI_API_KEY"
//	data_dir = "~/.local/share/cram"
//
// All fields are optional. Tilde paths are expanded automatically. The
// API key itself never lives in the config file; it is read from the
// environment variable named by api_key_env, with a .env file in the
// working directory honored as a convenience.
//
// Missing config files are not an error; malformed TOML is.
package config
