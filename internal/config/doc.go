// Package config holds the runtime configuration for attacklab-stats.
//
// Configuration comes from an optional YAML file plus command-line flag
// overrides. Phase point values differ between lab instances, so they are
// supplied here rather than discovered from the scoreboard data.
package config
