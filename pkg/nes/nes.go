package nes

import (
	"github.com/hmaeno/gnes/pkg/apu"
	"github.com/hmaeno/gnes/pkg/cartridge"
	"github.com/hmaeno/gnes/pkg/cpu"
	"github.com/hmaeno/gnes/pkg/input"
	"github.com/hmaeno/gnes/pkg/memory"
	"github.com/hmaeno/gnes/pkg/ppu"
)

// NES aggregates the console: CPU, PPU, APU register file, bus,
// cartridge and controller. The host drives it one CPU instruction at a
// time; the CPU's consumed cycles clock the PPU three dots each.
type NES struct {
	CPU       *cpu.CPU
	PPU       *ppu.PPU
	APU       *apu.APU
	Memory    *memory.Memory
	Cartridge *cartridge.Cartridge
	Input     *input.Controller

	Cycles uint64
}

// New creates a new NES instance
func New() *NES {
	n := &NES{}

	n.Memory = memory.New()
	n.CPU = cpu.New(n.Memory)
	n.PPU = ppu.New()
	n.APU = apu.New()
	n.Input = input.New()

	// Connect components to the bus
	n.Memory.SetPPU(n.PPU)
	n.Memory.SetAPU(n.APU)
	n.Memory.SetInput(n.Input)
	n.CPU.SetPPU(n.PPU)

	return n
}

// LoadCartridge loads a cartridge into the NES
func (n *NES) LoadCartridge(cart *cartridge.Cartridge) {
	n.Cartridge = cart
	n.Memory.SetCartridge(cart)
	n.PPU.SetCartridge(cart)
}

// Reset resets the NES to initial state
func (n *NES) Reset() {
	n.PPU.Reset()
	n.APU.Reset()
	n.CPU.Reset()
	n.Cycles = 0
}

// Step executes one CPU step (an instruction, interrupt sequence or DMA
// burst), catches the PPU up three dots per consumed cycle, and latches
// any NMI the PPU raised for the next step.
func (n *NES) Step() {
	cpuCycles := n.CPU.Step()

	for i := 0; i < cpuCycles*3; i++ {
		n.PPU.Step()
	}

	if n.PPU.NMIPending() {
		n.CPU.TriggerNMI()
		n.PPU.AcknowledgeNMI()
	}

	n.Cycles += uint64(cpuCycles)
}

// FrameComplete reports whether the PPU finished a frame since the last
// AcknowledgeFrame
func (n *NES) FrameComplete() bool {
	return n.PPU.FrameComplete
}

// AcknowledgeFrame clears the frame-complete flag after presentation
func (n *NES) AcknowledgeFrame() {
	n.PPU.FrameComplete = false
}

// StepFrame executes until the PPU completes a frame
func (n *NES) StepFrame() {
	for !n.PPU.FrameComplete {
		n.Step()
	}
	n.PPU.FrameComplete = false
}

// Frame returns the current frame number
func (n *NES) Frame() uint64 {
	return n.PPU.Frame
}

// Framebuffer returns the frame buffer as RGBA pixels (0xRRGGBBAA). The
// host reads it only between frame-complete signals.
func (n *NES) Framebuffer() []uint32 {
	return n.PPU.FrameBuffer[:]
}

// FramebufferRGBA returns the frame buffer as an RGBA byte slice
func (n *NES) FramebufferRGBA() []uint8 {
	rgba := make([]uint8, ppu.ScreenWidth*ppu.ScreenHeight*4)
	for i, pixel := range n.PPU.FrameBuffer {
		rgba[i*4+0] = uint8(pixel >> 24)
		rgba[i*4+1] = uint8(pixel >> 16)
		rgba[i*4+2] = uint8(pixel >> 8)
		rgba[i*4+3] = uint8(pixel)
	}
	return rgba
}
