package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"smoothcam/internal/config"
	"smoothcam/internal/game"
	"smoothcam/internal/host"
	"smoothcam/internal/log"
	"smoothcam/internal/plugin"
	"smoothcam/internal/sim"
)

func main() {
	configPath := flag.String("config", "smoothcam.yaml", "config file (optional)")
	scenePath := flag.String("scene", "", "scene file, overrides demo.scene")
	scriptPath := flag.String("script", "", "camera script run every frame, overrides demo.script")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	if *scenePath != "" {
		cfg.Demo.Scene = *scenePath
	}
	if *scriptPath != "" {
		cfg.Demo.Script = *scriptPath
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		config.Exitf("init log: %v", err)
	}
	defer log.Close()

	w := sim.New()
	if cfg.Demo.Scene != "" {
		if w, err = sim.LoadScene(cfg.Demo.Scene); err != nil {
			config.Exitf("%v", err)
		}
	}

	ctx, err := plugin.Load(w, cfg.Camera)
	if err != nil {
		config.Exitf("attach %s: %v", plugin.Name, err)
	}
	w.Broadcast(host.MessagePostLoad)
	w.Broadcast(host.MessageDataLoaded)
	if err := ctx.InstallErr(); err != nil {
		config.Exitf("install hooks: %v", err)
	}

	g := game.New(w, ctx, cfg.Demo)
	if cfg.Demo.Script != "" {
		if g.Script, err = ctx.API().LoadScript(cfg.Demo.Script); err != nil {
			config.Exitf("%v", err)
		}
		log.Info("camera script loaded", "path", cfg.Demo.Script)
	}

	g.Run()

	if err := ctx.Detach(); err != nil {
		log.Error("detach failed", "error", err)
	}
}
