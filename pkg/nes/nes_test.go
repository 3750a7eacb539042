package nes

import (
	"bytes"
	"testing"

	"github.com/hmaeno/gnes/pkg/cartridge"
	"github.com/hmaeno/gnes/pkg/ppu"
)

// buildConsole assembles a 16KB NROM image with the given code at $8000
// and vectors, loads it, and resets the console.
func buildConsole(t *testing.T, code []uint8, resetVector, nmiVector uint16) *NES {
	t.Helper()

	prg := make([]uint8, 16384)
	copy(prg, code)
	prg[0x3FFA] = uint8(nmiVector)
	prg[0x3FFB] = uint8(nmiVector >> 8)
	prg[0x3FFC] = uint8(resetVector)
	prg[0x3FFD] = uint8(resetVector >> 8)

	var buf bytes.Buffer
	header := make([]uint8, 16)
	copy(header, "NES\x1A")
	header[4] = 1 // one PRG bank
	header[5] = 1 // one CHR bank
	buf.Write(header)
	buf.Write(prg)
	buf.Write(make([]uint8, 8192))

	cart, err := cartridge.LoadFromReader(&buf)
	if err != nil {
		t.Fatalf("Failed to load test ROM: %v", err)
	}

	console := New()
	console.LoadCartridge(cart)
	console.Reset()
	return console
}

// After construction the program counter holds the reset vector and no
// instruction has executed
func TestResetVector(t *testing.T) {
	console := buildConsole(t, nil, 0x8000, 0x8100)

	if console.CPU.PC != 0x8000 {
		t.Errorf("Expected PC=0x8000 from reset vector, got %04X", console.CPU.PC)
	}
	if console.Cycles != 0 || console.CPU.Cycles != 0 {
		t.Error("No cycles may elapse before the first step")
	}
}

// LDA #$02 / STA $4014 triggers a DMA burst that copies page 2 into OAM
func TestOAMDMA(t *testing.T) {
	console := buildConsole(t, []uint8{
		0xA9, 0x02, // LDA #$02
		0x8D, 0x14, 0x40, // STA $4014
	}, 0x8000, 0x8100)

	for i := 0; i < 256; i++ {
		console.Memory.Write(0x0200+uint16(i), uint8(i))
	}

	console.Step() // LDA
	console.Step() // STA, latches the DMA trigger
	before := console.CPU.Cycles
	console.Step() // DMA burst

	for i := 0; i < 256; i++ {
		if console.PPU.OAM[i] != uint8(i) {
			t.Fatalf("OAM[%d]: expected %02X, got %02X", i, uint8(i), console.PPU.OAM[i])
		}
	}

	if burst := console.CPU.Cycles - before; burst < 513 {
		t.Errorf("Expected DMA to consume at least 513 cycles, got %d", burst)
	}
	if console.CPU.Cycles < 519 {
		t.Errorf("Expected at least 519 total cycles, got %d", console.CPU.Cycles)
	}
}

// Enabling NMI generation while VBlank is latched delivers the NMI on
// the first step after the store, not before
func TestNMILatency(t *testing.T) {
	console := buildConsole(t, []uint8{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
	}, 0x8000, 0x8100)

	console.PPU.PPUSTATUS |= ppu.PPUSTATUSVBlank

	console.Step() // LDA
	if console.CPU.PC != 0x8002 {
		t.Fatalf("Expected PC=0x8002 after LDA, got %04X", console.CPU.PC)
	}

	console.Step() // STA: raises the edge, not yet serviced
	if console.CPU.PC != 0x8005 {
		t.Fatalf("NMI must not preempt the store, PC=%04X", console.CPU.PC)
	}

	before := console.CPU.Cycles
	console.Step() // NMI sequence
	if console.CPU.PC != 0x8100 {
		t.Errorf("Expected PC=0x8100 in the NMI handler, got %04X", console.CPU.PC)
	}
	if console.CPU.Cycles-before != 7 {
		t.Errorf("Expected 7 cycles for the NMI sequence, got %d", console.CPU.Cycles-before)
	}
}

// The frame-complete flag rises exactly once per frame, on the step
// whose dots cross the frame boundary, with the buffer fully painted
func TestFrameCadence(t *testing.T) {
	console := buildConsole(t, nil, 0x8000, 0x8100)

	const frameDots = 341 * 262

	var before uint64
	for !console.FrameComplete() {
		before = console.Cycles
		console.Step()
		if console.Cycles > frameDots {
			t.Fatal("Frame never completed")
		}
	}

	if before*3 >= frameDots {
		t.Errorf("Flag rose late: %d dots had already elapsed before the final step", before*3)
	}
	if console.Cycles*3 < frameDots {
		t.Errorf("Flag rose early at %d dots", console.Cycles*3)
	}

	backdrop := ppu.PaletteRGBA[0]
	for i, pixel := range console.Framebuffer() {
		if pixel != backdrop {
			t.Fatalf("Pixel %d: expected backdrop %08X, got %08X", i, backdrop, pixel)
		}
	}

	// The flag stays down for the whole of the next frame
	console.AcknowledgeFrame()
	start := console.Cycles
	for console.Cycles*3 < uint64(frameDots)*2-21 {
		console.Step()
		if console.FrameComplete() && (console.Cycles-start)*3 < frameDots-21 {
			t.Fatal("Flag rose again mid-frame")
		}
	}
}

// StepFrame leaves the flag acknowledged and advances the frame counter
func TestStepFrame(t *testing.T) {
	console := buildConsole(t, nil, 0x8000, 0x8100)

	console.StepFrame()

	if console.FrameComplete() {
		t.Error("StepFrame should acknowledge the flag")
	}
	if console.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", console.Frame())
	}

	console.StepFrame()
	if console.Frame() != 2 {
		t.Errorf("Expected frame 2, got %d", console.Frame())
	}
}

// Controller reads reach the joypad through $4016
func TestControllerThroughBus(t *testing.T) {
	console := buildConsole(t, nil, 0x8000, 0x8100)

	console.Input.SetButton(0x01, true) // A

	console.Memory.Write(0x4016, 1)
	console.Memory.Write(0x4016, 0)

	if got := console.Memory.Read(0x4016); got != 1 {
		t.Errorf("Expected A button bit, got %d", got)
	}
	if got := console.Memory.Read(0x4016); got != 0 {
		t.Errorf("Expected B button clear, got %d", got)
	}
}

// The RGBA byte view matches the packed pixels
func TestFramebufferRGBA(t *testing.T) {
	console := buildConsole(t, nil, 0x8000, 0x8100)
	console.PPU.FrameBuffer[0] = 0x11223344

	rgba := console.FramebufferRGBA()
	if rgba[0] != 0x11 || rgba[1] != 0x22 || rgba[2] != 0x33 || rgba[3] != 0x44 {
		t.Errorf("Expected R,G,B,A bytes 11 22 33 44, got % 02X", rgba[:4])
	}
}
