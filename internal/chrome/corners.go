package chrome

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"acryl/internal/winapi"
)

// cornerController owns the rounded-corner presentation of one window.
// Every trigger (resize, move, maximize toggle, DPI change) goes through a
// debouncer so a burst of triggers results in exactly one application once
// the burst settles.
//
// Two strategies, picked once at construction: on OS versions that expose
// the DWM corner-preference attribute the controller sets it directly;
// otherwise it synthesizes a rounded clip region and installs it, clearing
// the region entirely while maximized.
type cornerController struct {
	native Native
	host   Host
	log    logger.Logger
	hwnd   uintptr
	radius int
	dwm    bool

	debounced func(func())

	mu        sync.Mutex
	stopped   bool
	lastApply time.Time
}

func newCornerController(native Native, host Host, log logger.Logger, hwnd uintptr, opts Options) *cornerController {
	return &cornerController{
		native:    native,
		host:      host,
		log:       log,
		hwnd:      hwnd,
		radius:    opts.CornerRadius,
		dwm:       native.RoundedCornersSupported(),
		debounced: debounce.New(time.Duration(opts.DebounceMs) * time.Millisecond),
	}
}

// Request schedules a corner reapplication. A new request replaces any
// pending one; it never stacks.
func (c *cornerController) Request() {
	c.debounced(c.apply)
}

// Stop cancels a pending application and refuses further ones.
func (c *cornerController) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
	c.debounced(func() {})
}

// LastApply returns when the corners were last actually applied.
func (c *cornerController) LastApply() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastApply
}

func (c *cornerController) apply() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.lastApply = time.Now()
	c.mu.Unlock()

	if c.native.IsZoomed(c.hwnd) {
		// No rounding while maximized: clear any clip region and, where
		// available, tell the compositor to square the corners.
		if err := c.native.SetWindowRegion(c.hwnd, 0); err != nil {
			c.log.Debug(fmt.Sprintf("chrome: clear window region: %v", err))
		}
		if c.dwm {
			c.setPreference(winapi.DWMWCPDoNotRound)
		}
		return
	}

	if c.dwm && c.setPreference(winapi.DWMWCPRound) {
		return
	}
	c.applyRegion()
}

func (c *cornerController) setPreference(pref uint32) bool {
	err := c.native.SetWindowAttribute(c.hwnd, winapi.DWMWAWindowCornerPreference, pref)
	if err != nil {
		c.log.Debug(fmt.Sprintf("chrome: corner preference: %v", err))
		return false
	}
	return true
}

// applyRegion installs a rounded-rectangle clip region sized to the current
// window rectangle. SetWindowRegion transfers ownership of the region handle
// to the OS; the controller frees it only when installation fails.
func (c *cornerController) applyRegion() {
	rect, err := c.native.WindowRect(c.hwnd)
	if err != nil {
		c.log.Debug(fmt.Sprintf("chrome: window rect: %v", err))
		return
	}
	radius := int32(devicePixels(c.radius, c.host.Scale()))
	region, err := c.native.CreateRoundRectRegion(rect.Width(), rect.Height(), radius)
	if err != nil {
		c.log.Error(fmt.Sprintf("chrome: create rounded region: %v", err))
		return
	}
	if err := c.native.SetWindowRegion(c.hwnd, region); err != nil {
		c.native.DeleteRegion(region)
		c.log.Error(fmt.Sprintf("chrome: set window region: %v", err))
	}
}
