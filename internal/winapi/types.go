package winapi

// Fixed-layout records matching the Win32 ABI. Field order and sizes must not
// change; these are written to and read from addresses owned by the OS.

// Point mirrors the Win32 POINT struct.
type Point struct {
	X int32
	Y int32
}

// Rect mirrors the Win32 RECT struct.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// MinMaxInfo mirrors the Win32 MINMAXINFO struct delivered with
// WM_GETMINMAXINFO.
type MinMaxInfo struct {
	Reserved     Point
	MaxSize      Point
	MaxPosition  Point
	MinTrackSize Point
	MaxTrackSize Point
}

// MonitorInfo mirrors the Win32 MONITORINFOEXW struct.
type MonitorInfo struct {
	Size    uint32
	Monitor Rect
	Work    Rect
	Flags   uint32
	Device  [32]uint16
}

// BlurBehind mirrors the Win32 DWM_BLURBEHIND struct. A zero Region with
// DWMBBEnable set applies the effect to the whole window.
type BlurBehind struct {
	Flags                 uint32
	Enable                int32
	Region                uintptr
	TransitionOnMaximized int32
}
