package cpu

// AddressingMode represents different addressing modes for 6502 instructions
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrRelative
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrIndirect
	AddrIndexedIndirect
	AddrIndirectIndexed
)

// operandLength returns the number of operand bytes following the opcode
func operandLength(mode AddressingMode) int {
	switch mode {
	case AddrImplied, AddrAccumulator:
		return 0
	case AddrImmediate, AddrZeroPage, AddrZeroPageX, AddrZeroPageY,
		AddrRelative, AddrIndexedIndirect, AddrIndirectIndexed:
		return 1
	default:
		return 2
	}
}

// pagesDiffer reports whether two addresses fall on different 256-byte pages
func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// resolveAddress consumes the operand bytes for the given mode, returning
// the effective address and whether an indexed access crossed a page.
// For relative mode the returned address is the branch target; the
// page-cross result there is unused (branch handlers charge their own
// penalty only when taken).
func (c *CPU) resolveAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case AddrImplied, AddrAccumulator:
		return 0, false

	case AddrImmediate:
		addr := c.PC
		c.PC++
		return addr, false

	case AddrZeroPage:
		addr := uint16(c.read(c.PC))
		c.PC++
		return addr, false

	case AddrZeroPageX:
		// Indexing wraps within the zero page
		addr := uint16(c.read(c.PC) + c.X)
		c.PC++
		return addr, false

	case AddrZeroPageY:
		addr := uint16(c.read(c.PC) + c.Y)
		c.PC++
		return addr, false

	case AddrRelative:
		offset := int8(c.read(c.PC))
		c.PC++
		addr := uint16(int32(c.PC) + int32(offset))
		return addr, false

	case AddrAbsolute:
		addr := c.read16(c.PC)
		c.PC += 2
		return addr, false

	case AddrAbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		return addr, pagesDiffer(base, addr)

	case AddrAbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		return addr, pagesDiffer(base, addr)

	case AddrIndirect:
		// Used only by JMP, which carries the hardware bug: the high byte
		// of the target comes from the start of the pointer's page when
		// the pointer sits on a page boundary.
		ptr := c.read16(c.PC)
		c.PC += 2
		lo := c.read(ptr)
		hi := c.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
		return uint16(hi)<<8 | uint16(lo), false

	case AddrIndexedIndirect: // (zp,X)
		base := c.read(c.PC)
		c.PC++
		ptr := uint16(base+c.X) & 0xFF
		lo := c.read(ptr)
		hi := c.read((ptr + 1) & 0xFF)
		return uint16(hi)<<8 | uint16(lo), false

	case AddrIndirectIndexed: // (zp),Y
		base := c.read(c.PC)
		c.PC++
		lo := c.read(uint16(base))
		hi := c.read(uint16(base+1) & 0xFF)
		ptr := uint16(hi)<<8 | uint16(lo)
		addr := ptr + uint16(c.Y)
		return addr, pagesDiffer(ptr, addr)
	}

	return 0, false
}
