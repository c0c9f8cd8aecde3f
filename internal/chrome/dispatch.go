package chrome

import (
	"fmt"

	"acryl/internal/winapi"
)

// HandleMessage is the single entry point for the window's native messages.
// It classifies the message, answers the ones the chrome layer owns and
// forwards everything else to the previously-installed window procedure.
// It runs on the thread that owns the message pump and must return promptly.
//
// No failure may escape past this boundary: an internal panic is downgraded
// to (false, 0) so the OS default path runs instead of the window going
// unresponsive.
func (s *Styler) HandleMessage(msg uint32, wParam, lParam uintptr) (handled bool, result uintptr) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error(fmt.Sprintf("chrome: message 0x%04x: %v", msg, r))
			handled, result = false, 0
		}
	}()

	switch msg {
	case winapi.WMNCCalcSize, winapi.WMNCPaint, winapi.WMNCActivate:
		// The application draws its own title bar in client space; suppress
		// the OS's non-client layout and painting entirely.
		return true, 0

	case winapi.WMSetCursor:
		return s.handleSetCursor(msg, wParam, lParam)

	case winapi.WMNCLButtonDown, winapi.WMNCLButtonUp, winapi.WMNCLButtonDblClk:
		return s.handleCaptionButton(msg, wParam, lParam)

	case winapi.WMGetMinMaxInfo:
		return s.handleMinMax(lParam)

	case winapi.WMNCHitTest:
		return s.handleHitTest()

	case winapi.WMSize, winapi.WMWindowPosChanged, winapi.WMExitSizeMove, winapi.WMDPIChanged:
		s.requestCorners()
		// Default processing of the resize itself continues unimpeded.
		return s.forward(msg, wParam, lParam)
	}

	return s.forward(msg, wParam, lParam)
}

// handleSetCursor owns cursor rendering over the custom maximize button:
// entering the button area saves the active cursor once and shows the
// pointing hand; leaving it restores the saved cursor and defers to default
// handling.
func (s *Styler) handleSetCursor(msg uint32, wParam, lParam uintptr) (bool, uintptr) {
	ht := lParam & 0xffff
	if ht == winapi.HTMaxButton {
		s.saveCursor()
		hand, err := s.native.LoadCursor(winapi.IDCHand)
		if err != nil {
			s.log.Debug(fmt.Sprintf("chrome: load hand cursor: %v", err))
			return s.forward(msg, wParam, lParam)
		}
		s.native.SetCursor(hand)
		return true, 1
	}
	s.restoreCursor()
	return s.forward(msg, wParam, lParam)
}

// handleCaptionButton implements the custom maximize button. Button-down over
// it is swallowed so the OS's own button handling never runs; button-up or
// double-click toggles the maximized state. The toggle deliberately does not
// require the preceding down to have been over the button: pressing
// elsewhere and releasing over the button still toggles, matching stock
// behavior of the intercepted message stream.
func (s *Styler) handleCaptionButton(msg uint32, wParam, lParam uintptr) (bool, uintptr) {
	if wParam != winapi.HTMaxButton {
		return s.forward(msg, wParam, lParam)
	}
	if msg == winapi.WMNCLButtonDown {
		return true, 0
	}
	s.ToggleMaximize()
	return true, 0
}

func (s *Styler) requestCorners() {
	s.mu.Lock()
	corners := s.corners
	s.mu.Unlock()
	if corners != nil {
		corners.Request()
	}
}

// forward hands the message to the previously-installed window procedure.
func (s *Styler) forward(msg uint32, wParam, lParam uintptr) (bool, uintptr) {
	s.mu.Lock()
	fb := s.fallback
	s.mu.Unlock()
	if fb == nil {
		return false, 0
	}
	return fb(msg, wParam, lParam)
}
