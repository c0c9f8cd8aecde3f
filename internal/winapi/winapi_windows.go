//go:build windows

package winapi

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazyDLL("user32.dll")
	dwmapi = windows.NewLazyDLL("dwmapi.dll")
	gdi32  = windows.NewLazyDLL("gdi32.dll")

	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procSetWindowLongW           = user32.NewProc("SetWindowLongW")
	procGetWindowLongPtrW        = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW        = user32.NewProc("SetWindowLongPtrW")
	procCallWindowProcW          = user32.NewProc("CallWindowProcW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procSetWindowRgn             = user32.NewProc("SetWindowRgn")
	procShowWindow               = user32.NewProc("ShowWindow")
	procIsZoomed                 = user32.NewProc("IsZoomed")
	procGetCursor                = user32.NewProc("GetCursor")
	procSetCursor                = user32.NewProc("SetCursor")
	procLoadCursorW              = user32.NewProc("LoadCursorW")
	procGetCursorPos             = user32.NewProc("GetCursorPos")
	procScreenToClient           = user32.NewProc("ScreenToClient")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procMonitorFromWindow        = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW          = user32.NewProc("GetMonitorInfoW")
	procFindWindowW              = user32.NewProc("FindWindowW")
	procGetDpiForWindow          = user32.NewProc("GetDpiForWindow")
	procDwmSetWindowAttribute    = dwmapi.NewProc("DwmSetWindowAttribute")
	procDwmEnableBlurBehind      = dwmapi.NewProc("DwmEnableBlurBehindWindow")
	procCreateRoundRectRgn       = gdi32.NewProc("CreateRoundRectRgn")
	procDeleteObject             = gdi32.NewProc("DeleteObject")
)

// WindowStyle reads the GWL_STYLE bits of the window.
func (System) WindowStyle(hwnd uintptr) (uint32, error) {
	idx := GWLStyle
	ret, _, err := procGetWindowLongW.Call(hwnd, uintptr(idx))
	if ret == 0 {
		return 0, errors.Wrap(err, "GetWindowLongW")
	}
	return uint32(ret), nil
}

// SetWindowStyle replaces the GWL_STYLE bits of the window.
func (System) SetWindowStyle(hwnd uintptr, style uint32) error {
	idx := GWLStyle
	ret, _, err := procSetWindowLongW.Call(hwnd, uintptr(idx), uintptr(style))
	if ret == 0 {
		return errors.Wrap(err, "SetWindowLongW")
	}
	return nil
}

// NotifyFrameChanged forces a non-client recalculation without moving or
// resizing the window.
func (System) NotifyFrameChanged(hwnd uintptr) error {
	ret, _, err := procSetWindowPos.Call(hwnd, 0, 0, 0, 0, 0,
		uintptr(SWPNoMove|SWPNoSize|SWPFrameChanged))
	if ret == 0 {
		return errors.Wrap(err, "SetWindowPos")
	}
	return nil
}

// ShowWindow issues a show-window command (SW_MAXIMIZE, SW_RESTORE, ...).
func (System) ShowWindow(hwnd uintptr, cmd int32) error {
	// The return value reports the previous visibility, not failure.
	procShowWindow.Call(hwnd, uintptr(cmd))
	return nil
}

// IsZoomed reports whether the window is currently maximized.
func (System) IsZoomed(hwnd uintptr) bool {
	ret, _, _ := procIsZoomed.Call(hwnd)
	return ret != 0
}

// GetCursor returns the handle of the active cursor.
func (System) GetCursor() uintptr {
	ret, _, _ := procGetCursor.Call()
	return ret
}

// SetCursor installs the given cursor handle.
func (System) SetCursor(cursor uintptr) {
	procSetCursor.Call(cursor)
}

// LoadCursor loads a standard system cursor by id.
func (System) LoadCursor(id uint16) (uintptr, error) {
	ret, _, err := procLoadCursorW.Call(0, uintptr(id))
	if ret == 0 {
		return 0, errors.Wrap(err, "LoadCursorW")
	}
	return ret, nil
}

// CursorPos returns the pointer position in screen coordinates.
func (System) CursorPos() (Point, error) {
	var pt Point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return Point{}, errors.Wrap(err, "GetCursorPos")
	}
	return pt, nil
}

// ScreenToClient converts a screen point into window-local coordinates.
func (System) ScreenToClient(hwnd uintptr, pt Point) (Point, error) {
	ret, _, err := procScreenToClient.Call(hwnd, uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return Point{}, errors.Wrap(err, "ScreenToClient")
	}
	return pt, nil
}

// WindowRect returns the window rectangle in screen coordinates.
func (System) WindowRect(hwnd uintptr) (Rect, error) {
	var r Rect
	ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, errors.Wrap(err, "GetWindowRect")
	}
	return r, nil
}

// MonitorFromWindow returns the monitor nearest to the window.
func (System) MonitorFromWindow(hwnd uintptr) (uintptr, error) {
	ret, _, _ := procMonitorFromWindow.Call(hwnd, uintptr(MonitorDefaultToNearest))
	if ret == 0 {
		return 0, errors.New("MonitorFromWindow: no monitor")
	}
	return ret, nil
}

// MonitorInfo returns the full bounds and work area of the monitor.
func (System) MonitorInfo(monitor uintptr) (MonitorInfo, error) {
	var mi MonitorInfo
	mi.Size = uint32(unsafe.Sizeof(mi))
	ret, _, err := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return MonitorInfo{}, errors.Wrap(err, "GetMonitorInfoW")
	}
	return mi, nil
}

// CreateRoundRectRegion synthesizes a rounded-rectangle clip region. The
// caller owns the handle until it is installed with SetWindowRegion.
func (System) CreateRoundRectRegion(width, height, radius int32) (uintptr, error) {
	ret, _, err := procCreateRoundRectRgn.Call(
		0, 0, uintptr(width), uintptr(height), uintptr(radius), uintptr(radius))
	if ret == 0 {
		return 0, errors.Wrap(err, "CreateRoundRectRgn")
	}
	return ret, nil
}

// SetWindowRegion installs a clip region on the window. A zero region clears
// clipping. On success, ownership of the region handle transfers to the OS.
func (System) SetWindowRegion(hwnd, region uintptr) error {
	ret, _, err := procSetWindowRgn.Call(hwnd, region, 1)
	if ret == 0 {
		return errors.Wrap(err, "SetWindowRgn")
	}
	return nil
}

// DeleteRegion frees a region handle still owned by the caller.
func (System) DeleteRegion(region uintptr) {
	procDeleteObject.Call(region)
}

// SetWindowAttribute sets a DWM window attribute to a DWORD value.
func (System) SetWindowAttribute(hwnd uintptr, attr, value uint32) error {
	hr, _, _ := procDwmSetWindowAttribute.Call(hwnd, uintptr(attr),
		uintptr(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	if hr != 0 {
		return errors.Errorf("DwmSetWindowAttribute(%d): HRESULT 0x%08x", attr, hr)
	}
	return nil
}

// EnableBlurBehind applies the compositor blur-behind effect.
func (System) EnableBlurBehind(hwnd uintptr, bb *BlurBehind) error {
	hr, _, _ := procDwmEnableBlurBehind.Call(hwnd, uintptr(unsafe.Pointer(bb)))
	if hr != 0 {
		return errors.Errorf("DwmEnableBlurBehindWindow: HRESULT 0x%08x", hr)
	}
	return nil
}

// RoundedCornersSupported reports whether the DWM corner-preference attribute
// is available (Windows 11, build 22000 and later).
func (System) RoundedCornersSupported() bool {
	major, _, build := windows.RtlGetNtVersionNumbers()
	return major >= 10 && build&0xffff >= 22000
}

// FindWindow locates a top-level window by its title.
func FindWindow(title string) (uintptr, error) {
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, errors.Wrap(err, "encode window title")
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(name)))
	if hwnd == 0 {
		return 0, errors.Errorf("FindWindowW: no window titled %q", title)
	}
	return hwnd, nil
}

// WindowScale returns the DPI scale factor of the window (1.0 at 96 dpi).
func WindowScale(hwnd uintptr) float64 {
	dpi, _, _ := procGetDpiForWindow.Call(hwnd)
	if dpi == 0 {
		return 1.0
	}
	return float64(dpi) / 96.0
}

// WindowProc returns the window procedure currently installed on the window.
func WindowProc(hwnd uintptr) uintptr {
	idx := GWLPWndProc
	ret, _, _ := procGetWindowLongPtrW.Call(hwnd, uintptr(idx))
	return ret
}

// SetWindowProc installs a new window procedure and returns the previous one.
func SetWindowProc(hwnd, proc uintptr) uintptr {
	idx := GWLPWndProc
	prev, _, _ := procSetWindowLongPtrW.Call(hwnd, uintptr(idx), proc)
	return prev
}

// CallWindowProc forwards a message to a previously-installed window
// procedure and returns its result.
func CallWindowProc(proc, hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallWindowProcW.Call(proc, hwnd, uintptr(msg), wParam, lParam)
	return ret
}
