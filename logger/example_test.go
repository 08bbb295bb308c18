package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mordilloSan/go-phklogger/logger"
)

// This example writes to a rotated file and echoes to the console.
func ExampleNew_file() {
	dir, err := os.MkdirTemp("", "phklogger")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	log, err := logger.New(logger.Config{
		Target:    filepath.Join(dir, "app.log"),
		Threshold: logger.LevelName("info"),
		Name:      "example",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	log.Debug("dropped: below the threshold")
	log.Info("server started")
	log.Warningf("disk at %d%%", 91)
	fmt.Println(log.Name(), log.Threshold())
	// Output: example INFO
}

// This example overrides the console color of a single message.
func ExampleWithColor() {
	log, err := logger.New(logger.Config{Console: true, Threshold: logger.DebugLevel})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	log.Info("deploy finished", logger.WithColor(logger.Cyan), logger.WithLight(true))
}

// This example shows how an unknown level name is reported.
func ExampleLogger_Log() {
	dir, err := os.MkdirTemp("", "phklogger")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	log, err := logger.New(logger.Config{Target: filepath.Join(dir, "app.log")})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	err = log.Log("hello", logger.LevelName("loud"))
	fmt.Println(err)
	// Output: invalid log level "loud"
}
