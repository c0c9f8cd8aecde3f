package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"

	"acryl/internal/chrome"
	"acryl/internal/config"
)

//go:embed all:frontend/dist
var assets embed.FS

const appTitle = "Acryl"

// App struct
type App struct {
	ctx    context.Context
	log    logger.Logger
	config *config.Service

	// Native chrome state, populated on Windows once the window exists
	hwnd     uintptr
	prevProc uintptr
	styler   *chrome.Styler
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{log: logger.NewDefaultLogger()}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize config service
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	a.config = configSvc
}

// OnDomReady is called once the window and its surface exist; the native
// chrome can only be installed from this point on.
func (a *App) OnDomReady(ctx context.Context) {
	a.setupChrome()
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	a.teardownChrome()
	if a.config != nil {
		a.config.Save()
	}
}

// Frontend API methods (these will be exposed to the frontend)

// IsMaximized reports whether the window is currently maximized
func (a *App) IsMaximized() bool {
	if a.styler == nil {
		return false
	}
	return a.styler.IsMaximized()
}

// ToggleMaximize flips between maximized and restored and returns the new state
func (a *App) ToggleMaximize() bool {
	if a.styler == nil {
		return false
	}
	return a.styler.ToggleMaximize()
}

// Maximize maximizes the window
func (a *App) Maximize() {
	if a.styler != nil {
		a.styler.ShowMaximized()
	}
}

// Restore restores the window from the maximized state
func (a *App) Restore() {
	if a.styler != nil {
		a.styler.ShowNormal()
	}
}

// GetChromeConfig returns the current chrome configuration
func (a *App) GetChromeConfig() config.ChromeConfig {
	if a.config == nil {
		return config.ChromeConfig{}
	}
	return a.config.Get().Chrome
}

// UpdateChromeConfig updates chrome configuration
func (a *App) UpdateChromeConfig(settings map[string]interface{}) error {
	if a.config == nil {
		return fmt.Errorf("config service not available")
	}

	current := a.config.Get().Chrome

	// Update fields if provided
	if borderWidth, ok := settings["border_width"].(float64); ok {
		current.BorderWidth = int(borderWidth)
	}
	if titleBarHeight, ok := settings["title_bar_height"].(float64); ok {
		current.TitleBarHeight = int(titleBarHeight)
	}
	if cornerRadius, ok := settings["corner_radius"].(float64); ok {
		current.CornerRadius = int(cornerRadius)
	}
	if blurBehind, ok := settings["blur_behind"].(bool); ok {
		current.BlurBehind = blurBehind
	}

	return a.config.UpdateChrome(current)
}

func main() {
	// Create an instance of the app structure
	app := NewApp()

	// Create application with options. The window starts with stock
	// decorations; the chrome layer strips them natively once the window
	// handle exists.
	err := wails.Run(&options.App{
		Title:     appTitle,
		Width:     800,
		Height:    500,
		MinWidth:  400,
		MinHeight: 240,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 24, G: 24, B: 28, A: 0},
		Windows: &wailswindows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		OnStartup:  app.OnStartup,
		OnDomReady: app.OnDomReady,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		fmt.Printf("Error starting application: %v\n", err)
		os.Exit(1)
	}
}
