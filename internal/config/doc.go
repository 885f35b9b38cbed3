// Package config resolves the effective runtime configuration of the
// task-manager API.
//
// Configuration is assembled once at startup from an ordered list of sources.
// The first source that provides a non-zero value for a field wins:
//  1. Environment variables (a local .env file is loaded into the
//     environment first, never overriding variables that are already set)
//  2. Command-line flags
//  3. appsettings.json and appsettings.<Environment>.json
//  4. Hard-coded defaults
//
// Missing values never fail resolution; they fall through to the defaults.
// The entry point is [GetStructuredConfig].
package config
