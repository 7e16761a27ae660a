// Package config resolves the skillindex run configuration.
//
// The catalog locations are fixed relative to the installed executable and
// are computed once at startup:
//
//	<install dir>/../skills            scanned for */SKILL.md
//	<install dir>/../SKILLS_INDEX.md   rewritten on every run
//
// Only logging is configurable. Settings are read with Viper from an optional
// config.yaml in $XDG_CONFIG_HOME/skillindex (or $SKILLINDEX_CONFIG_DIR) and
// from environment variables:
//
//	log_format: text     # SKILLINDEX_LOG_FORMAT, text or json
//	verbosity: 0         # SKILLINDEX_VERBOSITY, 0 warn .. 3 trace
//
// SKILLINDEX_DEBUG=1 (or true) raises verbosity to debug and
// SKILLINDEX_DEBUG=2 to trace when no verbosity is configured.
package config
