package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"wavebar/pkg/bridge"
	"wavebar/pkg/settingsd"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8374", "address to listen on")
	settingsPath := flag.String("settings", defaultSettingsPath(), "path to the settings file")
	logLevelFlag := flag.String("log-level", "info", "log level (error, warn, info, debug)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		if v := os.Getenv("WAVEBAR_SETTINGSD_ADDR"); v != "" {
			*addr = v
		}
	}

	logLevel, err := parseLogLevel(*logLevelFlag)
	if err != nil {
		log.Fatal(err)
	}
	logger := setupLogger(logLevel)

	store := settingsd.Open(*settingsPath)
	logger.Info("settings loaded", "path", *settingsPath, "record", store.Settings())

	srv := settingsd.NewServer(store, defaultAudioDevices(), logger)
	if err := srv.Start(*addr); err != nil {
		logger.Error("start failed", "error", err)
		os.Exit(1)
	}

	// Handle shutdown
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	logger.Info("shutting down")
	if err := srv.Stop(); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

// defaultSettingsPath places the settings file under the user config
// directory, falling back to the working directory.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wavebar-settings.json"
	}
	return filepath.Join(dir, "wavebar", "settings.json")
}

// defaultAudioDevices is the capture list served until the audio engine
// provides real enumeration.
func defaultAudioDevices() []bridge.AudioDevice {
	return []bridge.AudioDevice{
		{ID: "", Name: "System Default"},
	}
}
