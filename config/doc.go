// Package config loads a logger.Config from a TOML, JSON or JSON5 file and
// from LOGGER_* environment variables.
//
// File keys:
//
//	target = "/var/log/app/app.log"
//	threshold = "info"        # or an integer severity such as 25
//	name = "app"
//	console = true
//	backup_count = 7
//	rotate_when = "midnight"
//	rotate_interval = 1
//	max_size_mb = 100
//	pattern = "%(name)s %(asctime)s %(levelname)-8s %(message)s"
//
// Environment overrides: LOGGER_LEVEL, LOGGER_FILE, LOGGER_NAME and
// LOGGER_CONSOLE.
package config
