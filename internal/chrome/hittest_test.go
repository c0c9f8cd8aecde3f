package chrome

import (
	"testing"

	"acryl/internal/winapi"
)

func TestBorderHitTest_Regions(t *testing.T) {
	// 400x300 window with an 8px scaled border.
	const w, h, bw = 400, 300, 8

	tests := []struct {
		name string
		x, y int
		want uintptr
	}{
		{"top left corner", 2, 2, winapi.HTTopLeft},
		{"top right corner", 397, 3, winapi.HTTopRight},
		{"bottom left corner", 1, 298, winapi.HTBottomLeft},
		{"bottom right corner", 399, 299, winapi.HTBottomRight},
		{"top edge", 200, 2, winapi.HTTop},
		{"bottom edge", 200, 297, winapi.HTBottom},
		{"left edge", 3, 150, winapi.HTLeft},
		{"right edge", 396, 150, winapi.HTRight},
		{"interior below border", 200, 15, 0},
		{"deep interior", 200, 200, 0},
	}

	for _, tt := range tests {
		if got := borderHitTest(tt.x, tt.y, w, h, bw); got != tt.want {
			t.Errorf("%s: borderHitTest(%d,%d) = %d; want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBorderHitTest_CornersBeatEdges(t *testing.T) {
	// Points within the border of two adjacent edges belong to the corner.
	const w, h, bw = 400, 300, 8

	if got := borderHitTest(5, 295, w, h, bw); got != winapi.HTBottomLeft {
		t.Errorf("adjacent left+bottom = %d; want %d", got, winapi.HTBottomLeft)
	}
	if got := borderHitTest(394, 6, w, h, bw); got != winapi.HTTopRight {
		t.Errorf("adjacent right+top = %d; want %d", got, winapi.HTTopRight)
	}
}

func TestBorderHitTest_TinyWindow(t *testing.T) {
	// A window narrower than twice the border still resolves to corners.
	if got := borderHitTest(5, 5, 12, 12, 8); got != winapi.HTTopLeft {
		t.Errorf("tiny window = %d; want %d", got, winapi.HTTopLeft)
	}
}

func TestBorderHitTest_ScaledBorder(t *testing.T) {
	// 200% DPI doubles the border band.
	bw := devicePixels(8, 2.0)
	if bw != 16 {
		t.Fatalf("devicePixels(8, 2.0) = %d; want 16", bw)
	}
	if got := borderHitTest(200, 12, 400, 300, bw); got != winapi.HTTop {
		t.Errorf("point inside scaled band = %d; want %d", got, winapi.HTTop)
	}
}

func hitTestAt(t *testing.T, s *Styler, native *fakeNative, x, y int32) (bool, uintptr) {
	t.Helper()
	native.mu.Lock()
	native.localPos = winapi.Point{X: x, Y: y}
	native.screenPos = winapi.Point{X: x + 100, Y: y + 100}
	native.mu.Unlock()
	return s.HandleMessage(winapi.WMNCHitTest, 0, 0)
}

func TestHitTest_CaptionFallback(t *testing.T) {
	native := newFakeNative()
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// Below the border band but inside the 30px fallback strip.
	handled, result := hitTestAt(t, s, native, 200, 15)
	if !handled || result != winapi.HTCaption {
		t.Errorf("caption strip = (%v, %d); want (true, %d)", handled, result, winapi.HTCaption)
	}

	// Plain client area: unhandled so default processing applies.
	handled, result = hitTestAt(t, s, native, 200, 200)
	if handled || result != 0 {
		t.Errorf("client area = (%v, %d); want (false, 0)", handled, result)
	}
}

func TestHitTest_MaximizedSkipsBorders(t *testing.T) {
	native := newFakeNative()
	native.zoomed = true
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// A corner point on a maximized window is draggable caption, never a
	// resize target.
	handled, result := hitTestAt(t, s, native, 2, 2)
	if !handled || result != winapi.HTCaption {
		t.Errorf("maximized corner point = (%v, %d); want (true, %d)", handled, result, winapi.HTCaption)
	}

	handled, result = hitTestAt(t, s, native, 200, 200)
	if handled || result != 0 {
		t.Errorf("maximized client point = (%v, %d); want (false, 0)", handled, result)
	}
}

func TestHitTest_HookWins(t *testing.T) {
	native := newFakeNative()
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	var hookPos winapi.Point
	s.SetTitleBarHook(func(screen winapi.Point) (uintptr, bool) {
		hookPos = screen
		return winapi.HTMaxButton, true
	})

	handled, result := hitTestAt(t, s, native, 200, 15)
	if !handled || result != winapi.HTMaxButton {
		t.Errorf("hook answer = (%v, %d); want (true, %d)", handled, result, winapi.HTMaxButton)
	}
	if hookPos.X != 300 || hookPos.Y != 115 {
		t.Errorf("hook received local coordinates %+v; want screen coordinates", hookPos)
	}
}

func TestHitTest_HookNoOpinion(t *testing.T) {
	native := newFakeNative()
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	s.SetTitleBarHook(func(screen winapi.Point) (uintptr, bool) {
		return 0, false
	})

	handled, result := hitTestAt(t, s, native, 200, 15)
	if !handled || result != winapi.HTCaption {
		t.Errorf("fallback after no opinion = (%v, %d); want (true, %d)", handled, result, winapi.HTCaption)
	}
}

func TestHitTest_HookPanicIsNoOpinion(t *testing.T) {
	native := newFakeNative()
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	s.SetTitleBarHook(func(screen winapi.Point) (uintptr, bool) {
		panic("hook exploded")
	})

	handled, result := hitTestAt(t, s, native, 200, 15)
	if !handled || result != winapi.HTCaption {
		t.Errorf("fallback after panic = (%v, %d); want (true, %d)", handled, result, winapi.HTCaption)
	}
}

func TestHitTest_CursorQueryFailure(t *testing.T) {
	native := newFakeNative()
	native.posErr = winapi.ErrUnsupported
	s, _ := newTestStyler(t, native)
	if err := s.Setup(testHWND); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	handled, result := s.HandleMessage(winapi.WMNCHitTest, 0, 0)
	if handled || result != 0 {
		t.Errorf("failed cursor query = (%v, %d); want (false, 0)", handled, result)
	}
}
