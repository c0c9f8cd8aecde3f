package chrome

import (
	"fmt"
	"unsafe"

	"acryl/internal/winapi"
)

// Absolute floor for the minimum trackable size, so a host that declares no
// minimum still cannot be resized to nothing.
const (
	minTrackFloorWidth  = 200
	minTrackFloorHeight = 100
)

// trackBounds is the answer to WM_GETMINMAXINFO: where a maximized window
// sits, how large it is, and how small the user may drag it.
type trackBounds struct {
	maxPosition winapi.Point
	maxSize     winapi.Point
	minTrack    winapi.Point
}

// computeTrackBounds derives the constraint from the monitor's full bounds
// and work area. Maximizing to the work area keeps the window clear of the
// taskbar; the position is the work-area origin relative to the monitor
// origin.
func computeTrackBounds(work, full winapi.Rect, minWidth, minHeight int) trackBounds {
	if minWidth < minTrackFloorWidth {
		minWidth = minTrackFloorWidth
	}
	if minHeight < minTrackFloorHeight {
		minHeight = minTrackFloorHeight
	}
	return trackBounds{
		maxPosition: winapi.Point{X: work.Left - full.Left, Y: work.Top - full.Top},
		maxSize:     winapi.Point{X: work.Width(), Y: work.Height()},
		minTrack:    winapi.Point{X: int32(minWidth), Y: int32(minHeight)},
	}
}

// handleMinMax answers WM_GETMINMAXINFO by writing the constraint into the
// MINMAXINFO record the OS passed in lParam. Failure to resolve the monitor
// is non-fatal: the message is reported unhandled and OS defaults apply.
func (s *Styler) handleMinMax(lParam uintptr) (bool, uintptr) {
	s.mu.Lock()
	hwnd := s.hwnd
	s.mu.Unlock()
	if lParam == 0 || hwnd == 0 {
		return false, 0
	}

	monitor, err := s.native.MonitorFromWindow(hwnd)
	if err != nil {
		s.log.Debug(fmt.Sprintf("chrome: resolve monitor: %v", err))
		return false, 0
	}
	mi, err := s.native.MonitorInfo(monitor)
	if err != nil {
		s.log.Debug(fmt.Sprintf("chrome: monitor info: %v", err))
		return false, 0
	}

	minW, minH := s.host.MinSize()
	bounds := computeTrackBounds(mi.Work, mi.Monitor, minW, minH)

	info := (*winapi.MinMaxInfo)(unsafe.Pointer(lParam))
	info.MaxPosition = bounds.maxPosition
	info.MaxSize = bounds.maxSize
	info.MinTrackSize = bounds.minTrack
	return true, 0
}
