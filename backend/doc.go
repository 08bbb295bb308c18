// Package backend owns the sinks behind a leveled logger.
//
// A Registry maps handler names to sinks. Opening a Config with an empty
// Target attaches the platform's system log socket; a non-empty Target
// attaches a file that is created on open (parent directories included) and
// rotated at a time boundary such as midnight, keeping BackupCount old files.
// Every Backend opened under the same name writes to every sink attached to
// that name.
//
// Records are rendered through a pattern of %(field)s directives:
//
//	%(name)s %(asctime)s %(levelname)-8s %(message)s
//
// The backend performs no level filtering; callers decide what to emit.
package backend
