package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hmaeno/gnes/pkg/cartridge"
	"github.com/hmaeno/gnes/pkg/gui"
	"github.com/hmaeno/gnes/pkg/logger"
	"github.com/hmaeno/gnes/pkg/nes"
)

func main() {
	var (
		logLevel   = flag.String("log-level", "info", "Log level (off, error, warn, info, debug, trace)")
		logFile    = flag.String("log-file", "", "Log file path (empty for stdout)")
		cpuLog     = flag.Bool("cpu-log", false, "Enable CPU instruction tracing")
		ppuLog     = flag.Bool("ppu-log", false, "Enable PPU logging")
		apuLog     = flag.Bool("apu-log", false, "Enable APU register logging")
		headless   = flag.Bool("headless", false, "Run without a window")
		testFrames = flag.Int("test-frames", 600, "Number of frames to run in headless mode")
		scale      = flag.Int("scale", 3, "Window scale factor")
	)

	flag.Usage = func() {
		fmt.Printf("Usage: %s [options] <rom_file>\n\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println("\nControls:")
		fmt.Println("  Z - A button")
		fmt.Println("  X - B button")
		fmt.Println("  A - Select")
		fmt.Println("  S - Start")
		fmt.Println("  Arrow keys - D-pad")
		fmt.Println("  F12 - Screenshot")
		fmt.Println("  ESC - Quit")
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	romFile := flag.Arg(0)

	level := logger.GetLogLevelFromString(*logLevel)
	if err := logger.Initialize(level, *logFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.SetCPULogging(*cpuLog)
	logger.SetPPULogging(*ppuLog)
	logger.SetAPULogging(*apuLog)

	file, err := os.Open(romFile)
	if err != nil {
		log.Fatalf("Failed to open ROM file: %v", err)
	}
	defer file.Close()

	cart, err := cartridge.LoadFromReader(file)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	logger.LogInfo("Loaded ROM: %s", filepath.Base(romFile))
	logger.LogInfo("Mapper: %d", cart.Header.MapperNumber())
	logger.LogInfo("Mirroring: %s", cart.Mirroring)
	logger.LogInfo("PRG ROM: %d KB", len(cart.PRGROM)/1024)
	if len(cart.CHRROM) > 0 {
		logger.LogInfo("CHR ROM: %d KB", len(cart.CHRROM)/1024)
	} else {
		logger.LogInfo("CHR RAM: %d KB", len(cart.CHRRAM)/1024)
	}

	console := nes.New()
	console.LoadCartridge(cart)
	console.Reset()

	if *headless {
		runHeadless(console, *testFrames)
		return
	}

	view, err := gui.New(console, *scale)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer view.Destroy()

	view.Run()
}

// runHeadless emulates a fixed number of frames without presentation
// and reports frame buffer statistics.
func runHeadless(console *nes.NES, maxFrames int) {
	logger.LogInfo("Starting headless mode for %d frames", maxFrames)

	startTime := time.Now()
	for frame := 0; frame < maxFrames; frame++ {
		console.StepFrame()
	}
	elapsed := time.Since(startTime)

	logger.LogInfo("Headless execution completed in %v", elapsed)
	analyzeFramebuffer(console.Framebuffer(), maxFrames-1)
}

// analyzeFramebuffer summarizes the colors of the final frame
func analyzeFramebuffer(framebuffer []uint32, frame int) {
	pixelCounts := make(map[uint32]int)
	for _, pixel := range framebuffer {
		pixelCounts[pixel]++
	}

	totalPixels := len(framebuffer)
	logger.LogInfo("Frame %d analysis:", frame)
	logger.LogInfo("  Total pixels: %d", totalPixels)
	logger.LogInfo("  Unique colors: %d", len(pixelCounts))

	for color, count := range pixelCounts {
		percentage := float64(count) / float64(totalPixels) * 100
		if percentage > 1.0 {
			logger.LogInfo("  Color 0x%08X: %d pixels (%.1f%%)", color, count, percentage)
		}
	}
}
