//go:build !windows

package winapi

// Stubs so the rest of the module builds on non-Windows platforms. Every
// query fails with ErrUnsupported and every directive is a no-op.

func (System) WindowStyle(hwnd uintptr) (uint32, error)     { return 0, ErrUnsupported }
func (System) SetWindowStyle(hwnd uintptr, style uint32) error { return ErrUnsupported }
func (System) NotifyFrameChanged(hwnd uintptr) error        { return ErrUnsupported }
func (System) ShowWindow(hwnd uintptr, cmd int32) error     { return ErrUnsupported }
func (System) IsZoomed(hwnd uintptr) bool                   { return false }
func (System) GetCursor() uintptr                           { return 0 }
func (System) SetCursor(cursor uintptr)                     {}
func (System) LoadCursor(id uint16) (uintptr, error)        { return 0, ErrUnsupported }
func (System) CursorPos() (Point, error)                    { return Point{}, ErrUnsupported }
func (System) ScreenToClient(hwnd uintptr, pt Point) (Point, error) {
	return Point{}, ErrUnsupported
}
func (System) WindowRect(hwnd uintptr) (Rect, error)        { return Rect{}, ErrUnsupported }
func (System) MonitorFromWindow(hwnd uintptr) (uintptr, error) { return 0, ErrUnsupported }
func (System) MonitorInfo(monitor uintptr) (MonitorInfo, error) {
	return MonitorInfo{}, ErrUnsupported
}
func (System) CreateRoundRectRegion(width, height, radius int32) (uintptr, error) {
	return 0, ErrUnsupported
}
func (System) SetWindowRegion(hwnd, region uintptr) error   { return ErrUnsupported }
func (System) DeleteRegion(region uintptr)                  {}
func (System) SetWindowAttribute(hwnd uintptr, attr, value uint32) error {
	return ErrUnsupported
}
func (System) EnableBlurBehind(hwnd uintptr, bb *BlurBehind) error { return ErrUnsupported }
func (System) RoundedCornersSupported() bool                { return false }
