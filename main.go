package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/veandco/go-sdl2/sdl"

	"wavebar/pkg/bridge"
	"wavebar/pkg/panelconfig"
	"wavebar/screens/panel"
)

const connectTimeout = 15 * time.Second

func main() {
	// CRITICAL: Lock OS thread immediately before any other operations
	runtime.LockOSThread()

	// Configure logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "panel.yaml", "path to the panel config file")
	flag.Parse()

	// Load environment configuration
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := panelconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Connect to the host daemon before opening a window; the panel is
	// useless without it and retrying here keeps startup ordering loose.
	client := bridge.NewClient(cfg.Host.WsURL, cfg.HostTimeout())
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.ConnectWithRetry(ctx); err != nil {
		log.Fatalf("Failed to reach host daemon at %s: %v", cfg.Host.WsURL, err)
	}
	defer client.Close()

	// Initialize SDL2 with fallback options
	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	log.Printf("Starting Wavebar settings panel | %dx%d @ %d FPS", cfg.Window.Width, cfg.Window.Height, cfg.Window.FPS)

	// Create SDL2 window
	window, err := createWindow("Wavebar Settings", int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	// Create SDL2 renderer
	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	frameTime := time.Second / time.Duration(cfg.Window.FPS)
	screen := panel.NewPanelScreen(window, renderer, client, frameTime)
	defer screen.Close()

	runLoop(screen, frameTime)

	report := screen.FrameReport()
	log.Printf("Wavebar settings panel shutting down (avg frame %.1fms, %d long frames)", report.AvgFrameMs, report.LongFrames)
}

// initializeSDL2 initializes SDL2 with fallback video drivers
func initializeSDL2() error {
	// Respect environment variable first, then fallback
	envDriver := os.Getenv("SDL_VIDEODRIVER")
	var videoDrivers []string

	if envDriver != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", envDriver)
		videoDrivers = []string{envDriver, "software", "dummy"}
	} else if runtime.GOOS == "darwin" {
		videoDrivers = []string{
			"cocoa",    // Native macOS driver
			"software", // Software rendering fallback
			"dummy",    // Last resort for testing
		}
	} else {
		videoDrivers = []string{
			"wayland",  // Wayland (requires compositor)
			"x11",      // X11 fallback
			"kmsdrm",   // Direct GPU access when no display server exists
			"software", // Software rendering (needs display server)
			"dummy",    // Last resort for testing
		}
	}

	// Try each fallback driver
	for _, driver := range videoDrivers {
		log.Printf("Attempting SDL2 initialization with %s driver", driver)

		os.Setenv("SDL_VIDEODRIVER", driver)

		if err := trySDLInitialization(driver); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			continue
		}

		log.Printf("SDL2 successfully initialized with %s driver", driver)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

// trySDLInitialization attempts to initialize SDL2 with one driver
func trySDLInitialization(driver string) error {
	// Clean up any previous SDL2 state
	sdl.Quit()

	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
	sdl.SetHint(sdl.HINT_RENDER_BATCHING, "1")
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %v", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %v", err)
	}
	log.Printf("Video driver initialized: %s", driverName)

	return nil
}

// createWindow creates a centered, fixed-size panel window
func createWindow(title string, width, height int32) (*sdl.Window, error) {
	return sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		sdl.WINDOW_SHOWN,
	)
}

// createRenderer creates an SDL2 renderer, preferring hardware
// acceleration with VSync
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(
		window,
		-1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC,
	)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(
			window,
			-1,
			sdl.RENDERER_SOFTWARE,
		)
		if err != nil {
			return nil, err
		}
	}

	// Enable alpha blending for UI overlays
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	return renderer, nil
}

// runLoop executes the main SDL2 event loop
func runLoop(screen *panel.PanelScreen, frameTime time.Duration) {
	running := true
	lastTime := time.Now()

	for running {
		// Handle SDL2 events (already locked to main thread)
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		if err := screen.Update(); err != nil {
			log.Printf("Screen update error: %v", err)
			running = false
			break
		}
		if screen.Done() {
			running = false
			break
		}

		if err := screen.Draw(); err != nil {
			log.Printf("Screen draw error: %v", err)
			running = false
			break
		}

		// Frame rate limiting
		elapsed := time.Since(lastTime)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
		lastTime = time.Now()
	}
}
