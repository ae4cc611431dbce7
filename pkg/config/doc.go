// Package config loads the run configuration: a YAML file enumerating
// every recognized option, decoded once into an immutable Config, with
// defaults applied and validation up front.
//
// Unknown keys in the file are ignored; missing required keys fail fast
// with a named error instead of surfacing later mid-run. Account
// credentials never live in the file: they come from the environment
// (OUTLOOK_EMAIL, OUTLOOK_PASSWORD), optionally via a .env file.
package config
