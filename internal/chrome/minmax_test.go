package chrome

import (
	"testing"
	"unsafe"

	"acryl/internal/winapi"
)

func TestComputeTrackBounds(t *testing.T) {
	work := winapi.Rect{Left: 10, Top: 10, Right: 1910, Bottom: 1070}
	full := winapi.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

	got := computeTrackBounds(work, full, 200, 100)

	if got.maxPosition != (winapi.Point{X: 10, Y: 10}) {
		t.Errorf("maxPosition = %+v; want (10,10)", got.maxPosition)
	}
	if got.maxSize != (winapi.Point{X: 1900, Y: 1060}) {
		t.Errorf("maxSize = %+v; want (1900,1060)", got.maxSize)
	}
	if got.minTrack != (winapi.Point{X: 200, Y: 100}) {
		t.Errorf("minTrack = %+v; want (200,100)", got.minTrack)
	}
}

func TestComputeTrackBounds_FloorsMinimum(t *testing.T) {
	work := winapi.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040}
	full := winapi.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

	// A host declaring no minimum still cannot shrink to nothing.
	got := computeTrackBounds(work, full, 0, 0)

	if got.minTrack != (winapi.Point{X: 200, Y: 100}) {
		t.Errorf("minTrack = %+v; want floor (200,100)", got.minTrack)
	}
}

func TestComputeTrackBounds_SecondaryMonitorOffset(t *testing.T) {
	// Secondary monitor to the right of the primary, taskbar on its left.
	work := winapi.Rect{Left: 1970, Top: 0, Right: 3840, Bottom: 1080}
	full := winapi.Rect{Left: 1920, Top: 0, Right: 3840, Bottom: 1080}

	got := computeTrackBounds(work, full, 300, 200)

	if got.maxPosition != (winapi.Point{X: 50, Y: 0}) {
		t.Errorf("maxPosition = %+v; want (50,0)", got.maxPosition)
	}
	if got.maxSize != (winapi.Point{X: 1870, Y: 1080}) {
		t.Errorf("maxSize = %+v; want (1870,1080)", got.maxSize)
	}
}

func TestHandleMinMax_WritesConstraint(t *testing.T) {
	native := newFakeNative()
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	var info winapi.MinMaxInfo
	handled, result := s.HandleMessage(winapi.WMGetMinMaxInfo, 0, uintptr(unsafe.Pointer(&info)))
	if !handled || result != 0 {
		t.Fatalf("minmax = (%v, %d); want (true, 0)", handled, result)
	}

	if info.MaxPosition != (winapi.Point{X: 10, Y: 10}) {
		t.Errorf("MaxPosition = %+v; want (10,10)", info.MaxPosition)
	}
	if info.MaxSize != (winapi.Point{X: 1900, Y: 1060}) {
		t.Errorf("MaxSize = %+v; want (1900,1060)", info.MaxSize)
	}
	if info.MinTrackSize != (winapi.Point{X: 200, Y: 100}) {
		t.Errorf("MinTrackSize = %+v; want (200,100)", info.MinTrackSize)
	}
}

func TestHandleMinMax_MonitorFailureFallsBack(t *testing.T) {
	native := newFakeNative()
	native.monitorErr = winapi.ErrUnsupported
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	var info winapi.MinMaxInfo
	handled, _ := s.HandleMessage(winapi.WMGetMinMaxInfo, 0, uintptr(unsafe.Pointer(&info)))
	if handled {
		t.Error("missing monitor data should leave the message to OS defaults")
	}
	if info.MaxSize != (winapi.Point{}) {
		t.Errorf("MaxSize = %+v; want untouched", info.MaxSize)
	}
}

func TestHandleMinMax_NilRecord(t *testing.T) {
	native := newFakeNative()
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if handled, _ := s.HandleMessage(winapi.WMGetMinMaxInfo, 0, 0); handled {
		t.Error("nil MINMAXINFO record should be unhandled")
	}
}
