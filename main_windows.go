//go:build windows

package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"golang.org/x/sys/windows"

	"acryl/internal/chrome"
	"acryl/internal/config"
	"acryl/internal/winapi"
)

// hostWindow adapts the wails window to the chrome.Host collaborator.
type hostWindow struct {
	ctx  context.Context
	hwnd uintptr
	cfg  config.WindowConfig
}

func (h *hostWindow) Size() (int, int) {
	return runtime.WindowGetSize(h.ctx)
}

func (h *hostWindow) MinSize() (int, int) {
	return h.cfg.MinWidth, h.cfg.MinHeight
}

func (h *hostWindow) Scale() float64 {
	return winapi.WindowScale(h.hwnd)
}

// setupChrome resolves the native window handle, subclasses the window
// procedure and hands every message to the chrome dispatcher. The previous
// procedure stays injected as the fallback for messages the chrome layer
// does not own.
func (a *App) setupChrome() {
	hwnd, err := winapi.FindWindow(appTitle)
	if err != nil {
		a.log.Error(fmt.Sprintf("chrome install: %v", err))
		return
	}
	a.hwnd = hwnd

	cfg := a.config.Get()
	host := &hostWindow{ctx: a.ctx, hwnd: hwnd, cfg: cfg.Window}
	styler := chrome.New(winapi.System{}, host, a.log, chrome.Options{
		BorderWidth:    cfg.Chrome.BorderWidth,
		TitleBarHeight: cfg.Chrome.TitleBarHeight,
		CornerRadius:   cfg.Chrome.CornerRadius,
		DebounceMs:     cfg.Chrome.DebounceMs,
	})

	prevProc := winapi.WindowProc(hwnd)
	proc := windows.NewCallback(func(wnd, msg, wParam, lParam uintptr) uintptr {
		if handled, result := styler.HandleMessage(uint32(msg), wParam, lParam); handled {
			return result
		}
		return winapi.CallWindowProc(prevProc, wnd, uint32(msg), wParam, lParam)
	})
	styler.SetFallback(func(msg uint32, wParam, lParam uintptr) (bool, uintptr) {
		return true, winapi.CallWindowProc(prevProc, hwnd, msg, wParam, lParam)
	})
	winapi.SetWindowProc(hwnd, proc)
	a.prevProc = prevProc

	if err := styler.Setup(hwnd); err != nil {
		a.log.Error(fmt.Sprintf("chrome setup: %v", err))
		winapi.SetWindowProc(hwnd, prevProc)
		a.prevProc = 0
		return
	}

	styler.SetMaximizeObserver(func(maximized bool) {
		runtime.EventsEmit(a.ctx, "window:maximized", maximized)
	})
	a.styler = styler
}

// teardownChrome restores the original window procedure and releases any
// chrome-held resources. Safe to call when the chrome was never installed.
func (a *App) teardownChrome() {
	if a.prevProc != 0 && a.hwnd != 0 {
		winapi.SetWindowProc(a.hwnd, a.prevProc)
		a.prevProc = 0
	}
	if a.styler != nil {
		a.styler.Teardown()
		a.styler = nil
	}
}
