package main

import (
	"errors"
	"flag"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"

	"ytfetch-bot/internal/bot"
	"ytfetch-bot/internal/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("config: invalid log level %q", cfg.Log.Level)
	}
	log.SetLevel(level)

	if err := checkDependencies(cfg.Download.Binary); err != nil {
		log.Fatal(err)
	}

	b, err := bot.New(cfg, log)
	if err != nil {
		log.Fatalf("start bot: %v", err)
	}

	if cfg.Access.Enabled {
		log.Infof("✅ Bot started successfully | Admin ID: %d", cfg.Access.AdminID)
	} else {
		log.Info("✅ Bot started successfully | access gate disabled")
	}
	b.Start()
}

// checkDependencies verifies the external binaries the download flow shells
// out to. ffmpeg is required as well: the video selectors request separate
// video and audio streams, which yt-dlp can only merge through ffmpeg.
func checkDependencies(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found. Please install it first.", binary)
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return errors.New("ffmpeg not found. Please install it first.")
	}
	return nil
}
