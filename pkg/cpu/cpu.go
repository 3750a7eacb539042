package cpu

import (
	"fmt"

	"github.com/hmaeno/gnes/pkg/logger"
	"github.com/hmaeno/gnes/pkg/memory"
)

// Interrupt vectors
const (
	nmiVector   = uint16(0xFFFA)
	resetVector = uint16(0xFFFC)
	irqVector   = uint16(0xFFFE)

	stackBase = uint16(0x0100)
)

// Status flag bits
const (
	FlagCarry     = 1 << 0 // C
	FlagZero      = 1 << 1 // Z
	FlagInterrupt = 1 << 2 // I
	FlagDecimal   = 1 << 3 // D
	FlagBreak     = 1 << 4 // B
	FlagUnused    = 1 << 5 // -
	FlagOverflow  = 1 << 6 // V
	FlagNegative  = 1 << 7 // N
)

// OAMPort is the view of the PPU the CPU needs directly: the latched OAM
// DMA trigger. Register traffic still goes through the bus.
type OAMPort interface {
	PendingDMA() (page uint8, triggered bool)
	AcknowledgeDMA()
}

// CPU represents the 6502 processor
type CPU struct {
	// Registers
	A  uint8  // Accumulator
	X  uint8  // X register
	Y  uint8  // Y register
	SP uint8  // Stack pointer
	PC uint16 // Program counter
	P  uint8  // Status register

	// Memory interface
	Memory *memory.Memory

	// Cycle counting
	Cycles uint64

	// Pending interrupt flags, sampled at instruction boundaries
	nmiPending bool
	irqPending bool

	// DMA source, consulted at the start of every step
	PPU OAMPort
}

// New creates a new CPU instance
func New(mem *memory.Memory) *CPU {
	return &CPU{
		Memory: mem,
		SP:     0xFD,
		P:      FlagUnused | FlagInterrupt,
	}
}

// SetPPU wires the DMA trigger source
func (c *CPU) SetPPU(ppu OAMPort) {
	c.PPU = ppu
}

// Reset resets the CPU to initial state and loads the reset vector.
// No instruction executes until the first Step.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.PC = c.read16(resetVector)
	c.Cycles = 0
	c.nmiPending = false
	c.irqPending = false
}

// TriggerNMI latches a pending non-maskable interrupt
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// TriggerIRQ latches a pending interrupt request
func (c *CPU) TriggerIRQ() {
	c.irqPending = true
}

// Step runs one unit of CPU work and returns the cycles consumed: a
// pending DMA burst, a pending interrupt sequence, or one instruction.
func (c *CPU) Step() int {
	start := c.Cycles

	if c.PPU != nil {
		if page, triggered := c.PPU.PendingDMA(); triggered {
			c.dmaTransfer(page)
			c.PPU.AcknowledgeDMA()
			return int(c.Cycles - start)
		}
	}

	if c.nmiPending {
		c.nmiPending = false
		c.handleNMI()
		return int(c.Cycles - start)
	}

	if c.irqPending && c.P&FlagInterrupt == 0 {
		c.irqPending = false
		c.handleIRQ()
		return int(c.Cycles - start)
	}

	c.trace()

	opcode := c.read(c.PC)
	c.PC++

	inst := &instructions[opcode]
	addr, pageCrossed := c.resolveAddress(inst.Mode)

	c.Cycles += uint64(inst.Cycles)
	if pageCrossed {
		c.Cycles += uint64(inst.PageCycles)
	}

	inst.exec(c, addr, inst.Mode)

	return int(c.Cycles - start)
}

// dmaTransfer copies a 256-byte page into OAM through the OAM data
// register and stalls 513 cycles, 514 when the burst starts on an odd
// cycle.
func (c *CPU) dmaTransfer(page uint8) {
	stall := uint64(513)
	if c.Cycles%2 == 1 {
		stall++
	}

	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		value := c.Memory.Read(base + uint16(i))
		c.Memory.Write(0x2004, value)
	}

	c.Cycles += stall
}

// handleNMI runs the non-maskable interrupt sequence
func (c *CPU) handleNMI() {
	c.push16(c.PC)
	c.push((c.P | FlagUnused) &^ FlagBreak)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(nmiVector)
	c.Cycles += 7
	logger.LogCPU("NMI taken, handler at $%04X", c.PC)
}

// handleIRQ runs the maskable interrupt sequence
func (c *CPU) handleIRQ() {
	c.push16(c.PC)
	c.push(c.P | FlagUnused | FlagBreak)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(irqVector)
	c.Cycles += 7
}

// read reads a byte through the bus
func (c *CPU) read(addr uint16) uint8 {
	return c.Memory.Read(addr)
}

// write writes a byte through the bus
func (c *CPU) write(addr uint16, value uint8) {
	c.Memory.Write(addr, value)
}

// read16 reads a little-endian word
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// push pushes a byte onto the stack
func (c *CPU) push(value uint8) {
	c.write(stackBase+uint16(c.SP), value)
	c.SP--
}

// pop pulls a byte from the stack
func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(stackBase + uint16(c.SP))
}

// push16 pushes a word, high byte first
func (c *CPU) push16(value uint16) {
	c.push(uint8(value >> 8))
	c.push(uint8(value & 0xFF))
}

// pop16 pulls a word
func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// getFlag returns whether a status flag is set
func (c *CPU) getFlag(flag uint8) bool {
	return c.P&flag != 0
}

// setFlag sets or clears a status flag
func (c *CPU) setFlag(flag uint8, set bool) {
	if set {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// setZN updates the zero and negative flags from a result byte
func (c *CPU) setZN(value uint8) {
	c.setFlag(FlagZero, value == 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
}

// trace emits one nestest-format line for the instruction about to
// execute
func (c *CPU) trace() {
	if !logger.CPUTraceEnabled() {
		return
	}

	inst := &instructions[c.read(c.PC)]

	var raw string
	switch operandLength(inst.Mode) {
	case 0:
		raw = fmt.Sprintf("%02X      ", c.read(c.PC))
	case 1:
		raw = fmt.Sprintf("%02X %02X   ", c.read(c.PC), c.read(c.PC+1))
	default:
		raw = fmt.Sprintf("%02X %02X %02X", c.read(c.PC), c.read(c.PC+1), c.read(c.PC+2))
	}

	logger.LogCPUTrace(fmt.Sprintf("%04X  %s %s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.PC, raw, inst.Name, c.A, c.X, c.Y, c.P, c.SP, c.Cycles))
}
