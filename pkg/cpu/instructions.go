package cpu

// Mnemonic handlers. Each receives the resolved effective address; the
// dispatch table has already charged the base and page-cross cycles, so
// handlers only add the extras the table cannot know about (taken
// branches).

// loadOperand reads the operand for value-consuming instructions
func (c *CPU) loadOperand(addr uint16, mode AddressingMode) uint8 {
	if mode == AddrAccumulator {
		return c.A
	}
	return c.read(addr)
}

// storeResult writes back a read-modify-write result
func (c *CPU) storeResult(addr uint16, mode AddressingMode, value uint8) {
	if mode == AddrAccumulator {
		c.A = value
	} else {
		c.write(addr, value)
	}
}

func (c *CPU) lda(addr uint16, mode AddressingMode) {
	c.A = c.read(addr)
	c.setZN(c.A)
}

func (c *CPU) ldx(addr uint16, mode AddressingMode) {
	c.X = c.read(addr)
	c.setZN(c.X)
}

func (c *CPU) ldy(addr uint16, mode AddressingMode) {
	c.Y = c.read(addr)
	c.setZN(c.Y)
}

func (c *CPU) sta(addr uint16, mode AddressingMode) {
	c.write(addr, c.A)
}

func (c *CPU) stx(addr uint16, mode AddressingMode) {
	c.write(addr, c.X)
}

func (c *CPU) sty(addr uint16, mode AddressingMode) {
	c.write(addr, c.Y)
}

// addWithCarry implements the shared ADC datapath. SBC feeds the
// complement of its operand through the same adder, which makes the
// carry and overflow results correct by construction.
func (c *CPU) addWithCarry(value uint8) {
	carry := uint16(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}

	a := c.A
	result := uint16(a) + uint16(value) + carry

	c.A = uint8(result)
	c.setFlag(FlagCarry, result > 0xFF)
	c.setFlag(FlagOverflow, (a^c.A)&(value^c.A)&0x80 != 0)
	c.setZN(c.A)
}

func (c *CPU) adc(addr uint16, mode AddressingMode) {
	c.addWithCarry(c.read(addr))
}

func (c *CPU) sbc(addr uint16, mode AddressingMode) {
	c.addWithCarry(^c.read(addr))
}

// compare implements CMP/CPX/CPY against the given register
func (c *CPU) compare(reg, value uint8) {
	result := reg - value
	c.setFlag(FlagCarry, reg >= value)
	c.setZN(result)
}

func (c *CPU) cmp(addr uint16, mode AddressingMode) {
	c.compare(c.A, c.read(addr))
}

func (c *CPU) cpx(addr uint16, mode AddressingMode) {
	c.compare(c.X, c.read(addr))
}

func (c *CPU) cpy(addr uint16, mode AddressingMode) {
	c.compare(c.Y, c.read(addr))
}

func (c *CPU) and(addr uint16, mode AddressingMode) {
	c.A &= c.read(addr)
	c.setZN(c.A)
}

func (c *CPU) ora(addr uint16, mode AddressingMode) {
	c.A |= c.read(addr)
	c.setZN(c.A)
}

func (c *CPU) eor(addr uint16, mode AddressingMode) {
	c.A ^= c.read(addr)
	c.setZN(c.A)
}

func (c *CPU) bit(addr uint16, mode AddressingMode) {
	value := c.read(addr)
	c.setFlag(FlagZero, c.A&value == 0)
	c.setFlag(FlagOverflow, value&0x40 != 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
}

// shiftLeft is the ASL datapath, shared with SLO
func (c *CPU) shiftLeft(value uint8) uint8 {
	c.setFlag(FlagCarry, value&0x80 != 0)
	value <<= 1
	c.setZN(value)
	return value
}

// shiftRight is the LSR datapath, shared with SRE
func (c *CPU) shiftRight(value uint8) uint8 {
	c.setFlag(FlagCarry, value&0x01 != 0)
	value >>= 1
	c.setZN(value)
	return value
}

// rotateLeft is the ROL datapath, shared with RLA
func (c *CPU) rotateLeft(value uint8) uint8 {
	carryIn := uint8(0)
	if c.getFlag(FlagCarry) {
		carryIn = 1
	}
	c.setFlag(FlagCarry, value&0x80 != 0)
	value = value<<1 | carryIn
	c.setZN(value)
	return value
}

// rotateRight is the ROR datapath, shared with RRA
func (c *CPU) rotateRight(value uint8) uint8 {
	carryIn := uint8(0)
	if c.getFlag(FlagCarry) {
		carryIn = 0x80
	}
	c.setFlag(FlagCarry, value&0x01 != 0)
	value = value>>1 | carryIn
	c.setZN(value)
	return value
}

func (c *CPU) asl(addr uint16, mode AddressingMode) {
	c.storeResult(addr, mode, c.shiftLeft(c.loadOperand(addr, mode)))
}

func (c *CPU) lsr(addr uint16, mode AddressingMode) {
	c.storeResult(addr, mode, c.shiftRight(c.loadOperand(addr, mode)))
}

func (c *CPU) rol(addr uint16, mode AddressingMode) {
	c.storeResult(addr, mode, c.rotateLeft(c.loadOperand(addr, mode)))
}

func (c *CPU) ror(addr uint16, mode AddressingMode) {
	c.storeResult(addr, mode, c.rotateRight(c.loadOperand(addr, mode)))
}

func (c *CPU) inc(addr uint16, mode AddressingMode) {
	value := c.read(addr) + 1
	c.write(addr, value)
	c.setZN(value)
}

func (c *CPU) dec(addr uint16, mode AddressingMode) {
	value := c.read(addr) - 1
	c.write(addr, value)
	c.setZN(value)
}

func (c *CPU) inx(addr uint16, mode AddressingMode) {
	c.X++
	c.setZN(c.X)
}

func (c *CPU) iny(addr uint16, mode AddressingMode) {
	c.Y++
	c.setZN(c.Y)
}

func (c *CPU) dex(addr uint16, mode AddressingMode) {
	c.X--
	c.setZN(c.X)
}

func (c *CPU) dey(addr uint16, mode AddressingMode) {
	c.Y--
	c.setZN(c.Y)
}

func (c *CPU) tax(addr uint16, mode AddressingMode) {
	c.X = c.A
	c.setZN(c.X)
}

func (c *CPU) txa(addr uint16, mode AddressingMode) {
	c.A = c.X
	c.setZN(c.A)
}

func (c *CPU) tay(addr uint16, mode AddressingMode) {
	c.Y = c.A
	c.setZN(c.Y)
}

func (c *CPU) tya(addr uint16, mode AddressingMode) {
	c.A = c.Y
	c.setZN(c.A)
}

func (c *CPU) tsx(addr uint16, mode AddressingMode) {
	c.X = c.SP
	c.setZN(c.X)
}

func (c *CPU) txs(addr uint16, mode AddressingMode) {
	c.SP = c.X
}

func (c *CPU) pha(addr uint16, mode AddressingMode) {
	c.push(c.A)
}

func (c *CPU) pla(addr uint16, mode AddressingMode) {
	c.A = c.pop()
	c.setZN(c.A)
}

// php pushes P with both the break and unused bits set, marking an
// instruction-originated push
func (c *CPU) php(addr uint16, mode AddressingMode) {
	c.push(c.P | FlagBreak | FlagUnused)
}

// plp restores P but forces the unused bit and ignores the break bit
func (c *CPU) plp(addr uint16, mode AddressingMode) {
	c.P = (c.pop() | FlagUnused) &^ FlagBreak
}

// branchIf charges one cycle for a taken branch and another when the
// target sits on a different page than the following instruction
func (c *CPU) branchIf(condition bool, target uint16) {
	if !condition {
		return
	}
	c.Cycles++
	if pagesDiffer(c.PC, target) {
		c.Cycles++
	}
	c.PC = target
}

func (c *CPU) bcc(addr uint16, mode AddressingMode) {
	c.branchIf(!c.getFlag(FlagCarry), addr)
}

func (c *CPU) bcs(addr uint16, mode AddressingMode) {
	c.branchIf(c.getFlag(FlagCarry), addr)
}

func (c *CPU) bne(addr uint16, mode AddressingMode) {
	c.branchIf(!c.getFlag(FlagZero), addr)
}

func (c *CPU) beq(addr uint16, mode AddressingMode) {
	c.branchIf(c.getFlag(FlagZero), addr)
}

func (c *CPU) bpl(addr uint16, mode AddressingMode) {
	c.branchIf(!c.getFlag(FlagNegative), addr)
}

func (c *CPU) bmi(addr uint16, mode AddressingMode) {
	c.branchIf(c.getFlag(FlagNegative), addr)
}

func (c *CPU) bvc(addr uint16, mode AddressingMode) {
	c.branchIf(!c.getFlag(FlagOverflow), addr)
}

func (c *CPU) bvs(addr uint16, mode AddressingMode) {
	c.branchIf(c.getFlag(FlagOverflow), addr)
}

func (c *CPU) jmp(addr uint16, mode AddressingMode) {
	c.PC = addr
}

// jsr pushes the address of the last byte of the JSR instruction
func (c *CPU) jsr(addr uint16, mode AddressingMode) {
	c.push16(c.PC - 1)
	c.PC = addr
}

func (c *CPU) rts(addr uint16, mode AddressingMode) {
	c.PC = c.pop16() + 1
}

func (c *CPU) rti(addr uint16, mode AddressingMode) {
	c.P = (c.pop() | FlagUnused) &^ FlagBreak
	c.PC = c.pop16()
}

// brk skips the signature byte, then runs the IRQ sequence with the
// break bit set in the pushed status
func (c *CPU) brk(addr uint16, mode AddressingMode) {
	c.push16(c.PC + 1)
	c.push(c.P | FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(irqVector)
}

func (c *CPU) clc(addr uint16, mode AddressingMode) {
	c.setFlag(FlagCarry, false)
}

func (c *CPU) sec(addr uint16, mode AddressingMode) {
	c.setFlag(FlagCarry, true)
}

func (c *CPU) cli(addr uint16, mode AddressingMode) {
	c.setFlag(FlagInterrupt, false)
}

func (c *CPU) sei(addr uint16, mode AddressingMode) {
	c.setFlag(FlagInterrupt, true)
}

func (c *CPU) clv(addr uint16, mode AddressingMode) {
	c.setFlag(FlagOverflow, false)
}

func (c *CPU) cld(addr uint16, mode AddressingMode) {
	c.setFlag(FlagDecimal, false)
}

func (c *CPU) sed(addr uint16, mode AddressingMode) {
	c.setFlag(FlagDecimal, true)
}

// nop covers the official NOP, every undocumented NOP variant, and the
// undocumented opcodes the decoder defines as no-ops. Operand bytes and
// cycles are consumed by the dispatch table and address resolution.
func (c *CPU) nop(addr uint16, mode AddressingMode) {
}

// lax loads A and X with the same value
func (c *CPU) lax(addr uint16, mode AddressingMode) {
	value := c.read(addr)
	c.A = value
	c.X = value
	c.setZN(value)
}

// sax stores A AND X without touching flags
func (c *CPU) sax(addr uint16, mode AddressingMode) {
	c.write(addr, c.A&c.X)
}

// dcp decrements memory then compares it against A
func (c *CPU) dcp(addr uint16, mode AddressingMode) {
	value := c.read(addr) - 1
	c.write(addr, value)
	c.compare(c.A, value)
}

// isb increments memory then subtracts it from A
func (c *CPU) isb(addr uint16, mode AddressingMode) {
	value := c.read(addr) + 1
	c.write(addr, value)
	c.addWithCarry(^value)
}

// slo shifts memory left then ORs it into A
func (c *CPU) slo(addr uint16, mode AddressingMode) {
	value := c.shiftLeft(c.read(addr))
	c.write(addr, value)
	c.A |= value
	c.setZN(c.A)
}

// rla rotates memory left then ANDs it into A
func (c *CPU) rla(addr uint16, mode AddressingMode) {
	value := c.rotateLeft(c.read(addr))
	c.write(addr, value)
	c.A &= value
	c.setZN(c.A)
}

// sre shifts memory right then EORs it into A
func (c *CPU) sre(addr uint16, mode AddressingMode) {
	value := c.shiftRight(c.read(addr))
	c.write(addr, value)
	c.A ^= value
	c.setZN(c.A)
}

// rra rotates memory right then adds it to A
func (c *CPU) rra(addr uint16, mode AddressingMode) {
	value := c.rotateRight(c.read(addr))
	c.write(addr, value)
	c.addWithCarry(value)
}
