// Command camscript runs a camera script against a headless scene and prints
// the camera pose as it goes. With -watch it runs again whenever the script
// or scene changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"smoothcam/internal/camera"
	"smoothcam/internal/config"
	"smoothcam/internal/host"
	"smoothcam/internal/log"
	"smoothcam/internal/plugin"
	"smoothcam/internal/sim"
)

type options struct {
	script string
	scene  string
	frames int
	dt     float64
	every  int
	camera config.Camera
}

func main() {
	configPath := flag.String("config", "smoothcam.yaml", "config file (optional)")
	scene := flag.String("scene", "", "scene file, overrides demo.scene")
	frames := flag.Int("frames", 600, "frames to simulate")
	fps := flag.Int("fps", 60, "simulated frame rate")
	every := flag.Int("every", 30, "print the pose every N frames")
	watch := flag.Bool("watch", false, "re-run when the script or scene changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: camscript [flags] script.(tengo|lua)\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *fps <= 0 || *every <= 0 {
		config.Exitf("-fps and -every must be positive")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		config.Exitf("init log: %v", err)
	}
	defer log.Close()

	opts := options{
		script: flag.Arg(0),
		scene:  cfg.Demo.Scene,
		frames: *frames,
		dt:     1 / float64(*fps),
		every:  *every,
		camera: cfg.Camera,
	}
	if *scene != "" {
		opts.scene = *scene
	}

	if err := run(os.Stdout, opts); err != nil {
		if !*watch {
			config.Exitf("%v", err)
		}
		log.Error("run failed", "error", err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchAndRun(ctx, os.Stdout, opts); err != nil {
		config.Exitf("watch: %v", err)
	}
}

// run simulates opts.frames frames of the script against a fresh scene.
func run(out io.Writer, opts options) error {
	w := sim.New()
	if opts.scene != "" {
		var err error
		if w, err = sim.LoadScene(opts.scene); err != nil {
			return err
		}
	}

	ctx, err := plugin.Load(w, opts.camera)
	if err != nil {
		return fmt.Errorf("attach %s: %w", plugin.Name, err)
	}
	defer ctx.Detach()

	w.Broadcast(host.MessageDataLoaded)
	if err := ctx.InstallErr(); err != nil {
		return err
	}

	script, err := ctx.API().LoadScript(opts.script)
	if err != nil {
		return err
	}

	dt := float32(opts.dt)
	for frame := 0; frame < opts.frames; frame++ {
		if err := script.RunFrame(frame, float32(frame)*dt); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		w.Step(dt)
		if frame%opts.every == 0 || frame == opts.frames-1 {
			printPose(out, w, ctx.Orbit(), ctx.Follow())
		}
	}
	return nil
}

func printPose(out io.Writer, w *sim.World, orbit *camera.OrbitSession, follow *camera.FollowSession) {
	s := w.Camera().ThirdPerson()
	p := w.PlayerActor().Position()
	fmt.Fprintf(out, "frame %5d  yaw %6.3f  pitch %6.3f  offset (%7.1f %7.1f %7.1f)  player (%7.1f %7.1f %7.1f)  shop=%-5v follow=%v\n",
		w.Frame, s.CurrentYaw, orbit.CurrentPitch(),
		s.PosOffsetActual.X, s.PosOffsetActual.Y, s.PosOffsetActual.Z,
		p.X, p.Y, p.Z,
		orbit.Active(), follow.Active())
}

func watchAndRun(ctx context.Context, out io.Writer, opts options) error {
	dirs := []string{filepath.Dir(opts.script)}
	if opts.scene != "" && filepath.Dir(opts.scene) != dirs[0] {
		dirs = append(dirs, filepath.Dir(opts.scene))
	}
	wt, err := newWatcher(dirs...)
	if err != nil {
		return err
	}
	defer wt.Close()

	watched := map[string]bool{filepath.Clean(opts.script): true}
	if opts.scene != "" {
		watched[filepath.Clean(opts.scene)] = true
	}

	log.Info("watching for changes", "dirs", dirs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-wt.Events:
			if !watched[path] {
				continue
			}
			log.Info("reloading", "path", path)
			fmt.Fprintf(out, "--- %s changed\n", path)
			if err := run(out, opts); err != nil {
				log.Error("run failed", "error", err)
			}
		case err := <-wt.Errors:
			log.Warn("watch error", "error", err)
		}
	}
}
