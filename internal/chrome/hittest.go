package chrome

import (
	"fmt"

	"acryl/internal/winapi"
)

// handleHitTest answers WM_NCHITTEST for the pointer's current position.
// A (false, 0) result means the point is plain client area and default
// processing applies.
func (s *Styler) handleHitTest() (bool, uintptr) {
	s.mu.Lock()
	hwnd := s.hwnd
	hook := s.hook
	s.mu.Unlock()
	if hwnd == 0 {
		return false, 0
	}

	screen, err := s.native.CursorPos()
	if err != nil {
		s.log.Debug(fmt.Sprintf("chrome: cursor position: %v", err))
		return false, 0
	}
	local, err := s.native.ScreenToClient(hwnd, screen)
	if err != nil {
		s.log.Debug(fmt.Sprintf("chrome: map cursor to window: %v", err))
		return false, 0
	}

	w, h := s.host.Size()
	border := devicePixels(s.opts.BorderWidth, s.host.Scale())

	// A maximized window has no resize borders; only dragging applies.
	if !s.native.IsZoomed(hwnd) {
		if code := borderHitTest(int(local.X), int(local.Y), w, h, border); code != 0 {
			return true, code
		}
	}
	return s.titleBarHitTest(hook, screen, int(local.Y))
}

// devicePixels converts a logical length to device pixels.
func devicePixels(logical int, scale float64) int {
	if scale <= 0 {
		scale = 1.0
	}
	return int(float64(logical) * scale)
}

// borderHitTest classifies a window-local point against the resize borders
// of a width×height window with border thickness bw. Corners take priority
// over edges, edges over the interior. Returns 0 when the point is interior.
func borderHitTest(x, y, w, h, bw int) uintptr {
	left := x < bw
	right := x > w-bw
	top := y < bw
	bottom := y > h-bw

	switch {
	case left && top:
		return winapi.HTTopLeft
	case right && top:
		return winapi.HTTopRight
	case left && bottom:
		return winapi.HTBottomLeft
	case right && bottom:
		return winapi.HTBottomRight
	case top:
		return winapi.HTTop
	case bottom:
		return winapi.HTBottom
	case left:
		return winapi.HTLeft
	case right:
		return winapi.HTRight
	}
	return 0
}

// titleBarHitTest decides between draggable caption and plain client area.
// The hook is consulted first; a panicking hook counts as "no opinion" and
// the fallback strip of TitleBarHeight device-independent pixels applies.
func (s *Styler) titleBarHitTest(hook TitleBarHook, screen winapi.Point, localY int) (handled bool, result uintptr) {
	if hook != nil {
		code, ok, err := callHook(hook, screen)
		if err != nil {
			s.log.Error(fmt.Sprintf("chrome: title-bar hook: %v", err))
		} else if ok {
			return true, code
		}
	}
	if localY < s.opts.TitleBarHeight {
		return true, winapi.HTCaption
	}
	return false, 0
}

func callHook(hook TitleBarHook, screen winapi.Point) (code uintptr, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			code, ok = 0, false
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	code, ok = hook(screen)
	return code, ok, nil
}
