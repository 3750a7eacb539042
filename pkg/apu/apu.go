package apu

import "github.com/hmaeno/gnes/pkg/logger"

// APU models the audio coprocessor as a register file only. Writes are
// decoded into per-channel parameter state so the hardware register
// contract holds, but nothing is synthesized and no channel is clocked.
// All reads return 0.
type APU struct {
	// Pulse channels
	Pulse1 PulseChannel
	Pulse2 PulseChannel

	// Triangle channel
	Triangle TriangleChannel

	// Noise channel
	Noise NoiseChannel

	// DMC channel
	DMC DMCChannel

	// Frame counter register ($4017)
	FrameCounter uint8

	// Raw register file ($4000-$4017)
	Registers [0x18]uint8
}

// PulseChannel holds the decoded parameters of a pulse wave channel
type PulseChannel struct {
	Enabled     bool
	DutyCycle   uint8
	Volume      uint8
	Constant    bool
	LengthHalt  bool
	SweepEnable bool
	SweepPeriod uint8
	SweepNegate bool
	SweepShift  uint8
	Timer       uint16
	LengthIndex uint8
}

// TriangleChannel holds the decoded parameters of the triangle channel
type TriangleChannel struct {
	Enabled       bool
	LinearControl bool
	LinearReload  uint8
	Timer         uint16
	LengthIndex   uint8
}

// NoiseChannel holds the decoded parameters of the noise channel
type NoiseChannel struct {
	Enabled     bool
	Volume      uint8
	Constant    bool
	LengthHalt  bool
	Mode        bool
	Period      uint8
	LengthIndex uint8
}

// DMCChannel holds the decoded parameters of the delta modulation channel
type DMCChannel struct {
	Enabled       bool
	IRQEnabled    bool
	Loop          bool
	Rate          uint8
	LoadCounter   uint8
	SampleAddress uint16
	SampleLength  uint16
}

// New creates a new APU instance
func New() *APU {
	return &APU{}
}

// Reset clears all channel state
func (a *APU) Reset() {
	*a = APU{}
}

// ReadRegister returns 0 for every register in the audio/IO window.
func (a *APU) ReadRegister(addr uint16) uint8 {
	return 0
}

// WriteRegister swallows a write, keeping the raw byte and the decoded
// channel parameters.
func (a *APU) WriteRegister(addr uint16, value uint8) {
	if addr < 0x4000 || addr > 0x4017 {
		return
	}
	a.Registers[addr-0x4000] = value
	logger.LogAPU("Write $%04X: $%02X", addr, value)

	switch {
	case addr <= 0x4003:
		a.writePulse(&a.Pulse1, addr-0x4000, value)
	case addr <= 0x4007:
		a.writePulse(&a.Pulse2, addr-0x4004, value)
	case addr <= 0x400B:
		a.writeTriangle(addr-0x4008, value)
	case addr <= 0x400F:
		a.writeNoise(addr-0x400C, value)
	case addr <= 0x4013:
		a.writeDMC(addr-0x4010, value)
	case addr == 0x4015:
		a.writeStatus(value)
	case addr == 0x4017:
		a.FrameCounter = value
	}
}
