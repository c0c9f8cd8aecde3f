// Package chrome replaces the native window decorations of a top-level
// Windows window with application-drawn chrome while keeping the OS-native
// behaviors: edge and corner resizing, drag, snap, double-click maximize,
// rounded corners and blur-behind translucency. It intercepts every window
// message, answers the ones it owns synthetically and forwards the rest to
// the previously-installed window procedure.
package chrome

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"acryl/internal/winapi"
)

// Native is the narrow slice of the OS window-manager surface the chrome
// layer drives. winapi.System is the live implementation; tests substitute
// fakes.
type Native interface {
	WindowStyle(hwnd uintptr) (uint32, error)
	SetWindowStyle(hwnd uintptr, style uint32) error
	NotifyFrameChanged(hwnd uintptr) error

	ShowWindow(hwnd uintptr, cmd int32) error
	IsZoomed(hwnd uintptr) bool

	GetCursor() uintptr
	SetCursor(cursor uintptr)
	LoadCursor(id uint16) (uintptr, error)
	CursorPos() (winapi.Point, error)
	ScreenToClient(hwnd uintptr, pt winapi.Point) (winapi.Point, error)

	WindowRect(hwnd uintptr) (winapi.Rect, error)
	MonitorFromWindow(hwnd uintptr) (uintptr, error)
	MonitorInfo(monitor uintptr) (winapi.MonitorInfo, error)

	CreateRoundRectRegion(width, height, radius int32) (uintptr, error)
	SetWindowRegion(hwnd, region uintptr) error
	DeleteRegion(region uintptr)

	SetWindowAttribute(hwnd uintptr, attr, value uint32) error
	EnableBlurBehind(hwnd uintptr, bb *winapi.BlurBehind) error
	RoundedCornersSupported() bool
}

// Host exposes the geometry of the toolkit window the chrome is attached to.
type Host interface {
	// Size returns the current window size in pixels.
	Size() (width, height int)
	// MinSize returns the declared logical minimum size.
	MinSize() (width, height int)
	// Scale returns the DPI scale factor (1.0 at 96 dpi).
	Scale() float64
}

// TitleBarHook lets the application decide the hit-test answer for points
// that are not on a resize border. It receives the pointer position in
// screen coordinates; ok=false means "no opinion" and the fallback strip
// applies.
type TitleBarHook func(screen winapi.Point) (code uintptr, ok bool)

// Fallback forwards a message to the previously-installed window procedure.
type Fallback func(msg uint32, wParam, lParam uintptr) (handled bool, result uintptr)

// Options tune the chrome geometry. Zero values select the defaults.
type Options struct {
	BorderWidth    int // logical resize border thickness, default 8
	TitleBarHeight int // fallback draggable strip height, default 30
	CornerRadius   int // logical rounded-corner radius, default 15
	DebounceMs     int // minimum interval between corner applications, default 50
}

func (o *Options) fill() {
	if o.BorderWidth <= 0 {
		o.BorderWidth = 8
	}
	if o.TitleBarHeight <= 0 {
		o.TitleBarHeight = 30
	}
	if o.CornerRadius <= 0 {
		o.CornerRadius = 15
	}
	if o.DebounceMs <= 0 {
		o.DebounceMs = 50
	}
}

// Styler owns the chrome state of a single window. All mutable state lives
// on the instance so multiple windows in one process stay independent.
type Styler struct {
	native Native
	host   Host
	log    logger.Logger
	opts   Options

	hook     TitleBarHook
	fallback Fallback
	observer func(maximized bool)

	mu          sync.Mutex
	hwnd        uintptr
	savedCursor uintptr
	corners     *cornerController
}

// New builds a Styler. Setup must be called once the native window handle
// exists.
func New(native Native, host Host, log logger.Logger, opts Options) *Styler {
	opts.fill()
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &Styler{
		native: native,
		host:   host,
		log:    log,
		opts:   opts,
	}
}

// SetTitleBarHook registers the application's caption hit-test hook.
func (s *Styler) SetTitleBarHook(hook TitleBarHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = hook
}

// SetFallback injects the previously-installed window procedure. Messages
// the dispatcher does not own are forwarded to it.
func (s *Styler) SetFallback(fb Fallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = fb
}

// SetMaximizeObserver registers a callback notified after every
// maximize/restore toggle, for tooltip or icon updates only.
func (s *Styler) SetMaximizeObserver(fn func(maximized bool)) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
	s.notifyObserver(s.IsMaximized())
}

// Setup applies the frameless style to the window. It must run after the
// native handle exists and before the first paint: it strips the caption
// style, keeps the thick resize frame, disables the compositor's own
// non-client rendering, applies the initial corner rounding and enables the
// blur-behind effect for the whole window.
func (s *Styler) Setup(hwnd uintptr) error {
	if hwnd == 0 {
		return errors.New("chrome: window handle not created yet")
	}

	style, err := s.native.WindowStyle(hwnd)
	if err != nil {
		return errors.Wrap(err, "chrome: query window style")
	}
	style |= winapi.WSThickFrame
	style &^= winapi.WSCaption
	if err := s.native.SetWindowStyle(hwnd, style); err != nil {
		return errors.Wrap(err, "chrome: set window style")
	}
	if err := s.native.NotifyFrameChanged(hwnd); err != nil {
		return errors.Wrap(err, "chrome: notify frame changed")
	}

	s.mu.Lock()
	s.hwnd = hwnd
	s.corners = newCornerController(s.native, s.host, s.log, hwnd, s.opts)
	corners := s.corners
	s.mu.Unlock()

	// Visual extras degrade silently when the compositor refuses them.
	if err := s.native.SetWindowAttribute(hwnd, winapi.DWMWANCRenderingPolicy, winapi.DWMNCRPDisabled); err != nil {
		s.log.Debug(fmt.Sprintf("chrome: disable nc rendering: %v", err))
	}
	corners.Request()
	bb := winapi.BlurBehind{Flags: winapi.DWMBBEnable, Enable: 1}
	if err := s.native.EnableBlurBehind(hwnd, &bb); err != nil {
		s.log.Debug(fmt.Sprintf("chrome: enable blur-behind: %v", err))
	}

	return nil
}

// Teardown cancels the pending corner application and returns a saved
// cursor. Safe to call even if Setup never ran.
func (s *Styler) Teardown() {
	s.mu.Lock()
	corners := s.corners
	saved := s.savedCursor
	s.savedCursor = 0
	s.mu.Unlock()

	if corners != nil {
		corners.Stop()
	}
	if saved != 0 {
		s.native.SetCursor(saved)
	}
}

// IsMaximized reports the current maximized state of the window.
func (s *Styler) IsMaximized() bool {
	s.mu.Lock()
	hwnd := s.hwnd
	s.mu.Unlock()
	if hwnd == 0 {
		return false
	}
	return s.native.IsZoomed(hwnd)
}

// ShowMaximized maximizes the window and reapplies the corner presentation.
func (s *Styler) ShowMaximized() {
	s.show(winapi.SWMaximize, true)
}

// ShowNormal restores the window and reapplies the corner presentation.
func (s *Styler) ShowNormal() {
	s.show(winapi.SWRestore, false)
}

func (s *Styler) show(cmd int32, maximized bool) {
	s.mu.Lock()
	hwnd := s.hwnd
	corners := s.corners
	s.mu.Unlock()
	if hwnd == 0 {
		return
	}
	if err := s.native.ShowWindow(hwnd, cmd); err != nil {
		s.log.Error(fmt.Sprintf("chrome: show window: %v", err))
		return
	}
	s.notifyObserver(maximized)
	if corners != nil {
		corners.Request()
	}
}

// ToggleMaximize flips the maximized state and returns the new state.
func (s *Styler) ToggleMaximize() bool {
	maximized := s.IsMaximized()
	if maximized {
		s.ShowNormal()
	} else {
		s.ShowMaximized()
	}
	return !maximized
}

// notifyObserver informs the registered button observer. A panicking
// observer must not take down the message loop.
func (s *Styler) notifyObserver(maximized bool) {
	s.mu.Lock()
	observer := s.observer
	s.mu.Unlock()
	if observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error(fmt.Sprintf("chrome: maximize observer panicked: %v", r))
		}
	}()
	observer(maximized)
}

// saveCursor stashes the active cursor before the hand cursor takes over
// the maximize-button area. Saving twice without a restore keeps the first
// handle; at most one cursor is on loan at a time.
func (s *Styler) saveCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.savedCursor == 0 {
		s.savedCursor = s.native.GetCursor()
	}
}

// restoreCursor returns the saved cursor, if any, and clears the loan.
func (s *Styler) restoreCursor() {
	s.mu.Lock()
	saved := s.savedCursor
	s.savedCursor = 0
	s.mu.Unlock()
	if saved != 0 {
		s.native.SetCursor(saved)
	}
}
