// Package logger provides a leveled logger that writes either to the system
// log or to a time-rotated file, with optional colored console echo.
//
// # Levels
//
// Severities are ordered DEBUG < INFO < WARNING < ERROR < CRITICAL. A Logger
// writes only messages at or above its threshold. Levels may be given as a
// Level or by name (LevelName, case-insensitive, "INFOS" accepted for INFO).
// An unknown threshold name falls back to WARNING; an unknown name passed to
// Log is an InvalidLevelError.
//
// # Sinks
//
// With Config.Target empty, records go to the platform's system log socket.
// Otherwise they go to the named file, which is created on New and rotated at
// Config.RotateWhen (midnight by default), keeping Config.BackupCount old
// files. Loggers sharing a Config.Name share every sink attached to that name.
//
// # Console Output
//
// Set Config.Console to echo each written message to stdout:
//
//	[*] debug      bold blue
//	[+] info       green
//	[-] warning    yellow
//	[!] error      red
//	[!] critical   bold red
//
// WithColor and WithLight override the color of a single message.
//
// # Usage
//
//	log, err := logger.New(logger.Config{
//	    Target:    "/var/log/app/app.log",
//	    Threshold: logger.LevelName("info"),
//	    Console:   true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//
//	log.Info("server started")
//	log.Warningf("disk at %d%%", 91)
//	log.Log("custom color", logger.ErrorLevel, logger.WithColor(logger.Purple))
package logger
