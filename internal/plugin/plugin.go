// Package plugin is the extension's entry point into a host: it checks the
// host is supported, builds the camera sessions, exposes them to scripts and
// redirects the engine's camera hooks once game data has loaded.
package plugin

import (
	"errors"
	"fmt"

	"smoothcam/internal/api"
	"smoothcam/internal/camera"
	"smoothcam/internal/config"
	"smoothcam/internal/hook"
	"smoothcam/internal/host"
	"smoothcam/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Name is how the extension identifies itself to the host.
const Name = "SmoothCam"

// MinRuntime is the oldest engine runtime the hooks are known to work on.
var MinRuntime = host.Version{Major: 1, Minor: 5, Patch: 39}

var (
	ErrIncompatible    = errors.New("incompatible host")
	ErrHostUnavailable = errors.New("host service unavailable")
)

// Query reports whether the extension can run in a host described by info.
func Query(info host.Info) error {
	if info.Editor {
		return fmt.Errorf("%w: loaded in editor", ErrIncompatible)
	}
	if info.Runtime.Less(MinRuntime) {
		return fmt.Errorf("%w: runtime %s, need %s or newer", ErrIncompatible, info.Runtime, MinRuntime)
	}
	return nil
}

// Context is the state of one attached extension. It owns the two camera
// sessions for the lifetime of the attachment.
type Context struct {
	host       host.Host
	orbit      *camera.OrbitSession
	follow     *camera.FollowSession
	dispatcher *hook.Dispatcher
	api        *api.Surface

	installErr error
	detached   bool
}

// Load attaches the extension to h. Hooks are not redirected yet; that
// happens when the host broadcasts DataLoaded.
func Load(h host.Host, cfg config.Camera) (*Context, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: no host", ErrHostUnavailable)
	}
	if err := Query(h.Info()); err != nil {
		return nil, err
	}
	if err := checkServices(h); err != nil {
		return nil, err
	}

	speeds := camera.Speeds{Yaw: cfg.YawSpeed, Pitch: cfg.PitchSpeed, Move: cfg.MoveSpeed}
	offset := rl.Vector3{X: cfg.FollowOffset[0], Y: cfg.FollowOffset[1], Z: cfg.FollowOffset[2]}

	c := &Context{host: h}
	c.orbit = camera.NewOrbitSession(h, speeds)
	c.follow = camera.NewFollowSession(h, offset)
	c.dispatcher = hook.NewDispatcher(h, c.orbit, c.follow)
	c.api = api.New(c.orbit, c.follow, h)

	c.orbit.Started.AddListener(func() { log.Info("session started", "session", "orbit") })
	c.orbit.Ended.AddListener(func() { log.Info("session ended", "session", "orbit") })
	c.follow.Started.AddListener(func(ref host.ActorRef) {
		log.Info("session started", "session", "follow", "actor", ref)
	})
	c.follow.Ended.AddListener(func() { log.Info("session ended", "session", "follow") })

	if err := c.api.Register(h.Scripts()); err != nil {
		return nil, err
	}
	if !h.Messaging().RegisterListener(host.EngineSender, c.onMessage) {
		return nil, fmt.Errorf("%w: messaging refused listener", ErrHostUnavailable)
	}

	log.Info("extension loaded", "name", Name, "runtime", h.Info().Runtime)
	return c, nil
}

func checkServices(h host.Host) error {
	missing := func(name string) error {
		return fmt.Errorf("%w: %s", ErrHostUnavailable, name)
	}
	cam := h.Camera()
	switch {
	case cam == nil:
		return missing("camera")
	case cam.ThirdPerson() == nil:
		return missing("third-person camera state")
	case h.Controls() == nil:
		return missing("controls")
	case h.Settings() == nil:
		return missing("settings")
	case h.Player() == nil:
		return missing("player")
	case h.Messaging() == nil:
		return missing("messaging")
	case h.Hooks() == nil:
		return missing("hook table")
	case h.Scripts() == nil:
		return missing("script registry")
	}
	return nil
}

func (c *Context) onMessage(msg host.Message) {
	if msg.Type != host.MessageDataLoaded || c.detached || c.dispatcher.Installed() {
		return
	}
	if err := c.dispatcher.Install(c.host.Hooks()); err != nil {
		c.installErr = err
		log.Error("hook install failed", "error", err)
		return
	}
	c.installErr = nil
	log.Info("camera hooks installed")
}

// InstallErr is the error from the last failed hook install, if any.
func (c *Context) InstallErr() error {
	return c.installErr
}

func (c *Context) HooksInstalled() bool {
	return c.dispatcher.Installed()
}

func (c *Context) Orbit() *camera.OrbitSession {
	return c.orbit
}

func (c *Context) Follow() *camera.FollowSession {
	return c.follow
}

// API is the scripting surface bound to this context's sessions.
func (c *Context) API() *api.Surface {
	return c.api
}

// Detach ends any active session, restoring what it overrode, and gives the
// engine its hooks back. The context is unusable afterwards.
func (c *Context) Detach() error {
	if c.detached {
		return nil
	}
	c.detached = true

	c.follow.End()
	c.orbit.End()

	if !c.dispatcher.Installed() {
		return nil
	}
	if err := c.dispatcher.Uninstall(c.host.Hooks()); err != nil {
		return fmt.Errorf("uninstall hooks: %w", err)
	}
	log.Info("extension detached", "name", Name)
	return nil
}
