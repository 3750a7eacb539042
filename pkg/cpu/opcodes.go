package cpu

// instruction describes one opcode: mnemonic, addressing mode, base
// cycle count, and the extra cycle charged when an indexed read crosses
// a page. Write and read-modify-write variants carry the penalty in
// their base count, so their PageCycles is 0.
type instruction struct {
	Name       string
	Mode       AddressingMode
	Cycles     int
	PageCycles int
	exec       func(c *CPU, addr uint16, mode AddressingMode)
}

// instructions is the full 256-entry dispatch table: 151 official
// opcodes, the LAX/SAX/DCP/ISB/SLO/RLA/SRE/RRA families, the
// undocumented NOP encodings, and the remaining undocumented opcodes
// decoded as no-ops with their documented operand size and timing.
var instructions = [256]instruction{
	0x00: {"BRK", AddrImplied, 7, 0, (*CPU).brk},
	0x01: {"ORA", AddrIndexedIndirect, 6, 0, (*CPU).ora},
	0x02: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x03: {"SLO", AddrIndexedIndirect, 8, 0, (*CPU).slo},
	0x04: {"NOP", AddrZeroPage, 3, 0, (*CPU).nop},
	0x05: {"ORA", AddrZeroPage, 3, 0, (*CPU).ora},
	0x06: {"ASL", AddrZeroPage, 5, 0, (*CPU).asl},
	0x07: {"SLO", AddrZeroPage, 5, 0, (*CPU).slo},
	0x08: {"PHP", AddrImplied, 3, 0, (*CPU).php},
	0x09: {"ORA", AddrImmediate, 2, 0, (*CPU).ora},
	0x0A: {"ASL", AddrAccumulator, 2, 0, (*CPU).asl},
	0x0B: {"ANC", AddrImmediate, 2, 0, (*CPU).nop},
	0x0C: {"NOP", AddrAbsolute, 4, 0, (*CPU).nop},
	0x0D: {"ORA", AddrAbsolute, 4, 0, (*CPU).ora},
	0x0E: {"ASL", AddrAbsolute, 6, 0, (*CPU).asl},
	0x0F: {"SLO", AddrAbsolute, 6, 0, (*CPU).slo},

	0x10: {"BPL", AddrRelative, 2, 0, (*CPU).bpl},
	0x11: {"ORA", AddrIndirectIndexed, 5, 1, (*CPU).ora},
	0x12: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x13: {"SLO", AddrIndirectIndexed, 8, 0, (*CPU).slo},
	0x14: {"NOP", AddrZeroPageX, 4, 0, (*CPU).nop},
	0x15: {"ORA", AddrZeroPageX, 4, 0, (*CPU).ora},
	0x16: {"ASL", AddrZeroPageX, 6, 0, (*CPU).asl},
	0x17: {"SLO", AddrZeroPageX, 6, 0, (*CPU).slo},
	0x18: {"CLC", AddrImplied, 2, 0, (*CPU).clc},
	0x19: {"ORA", AddrAbsoluteY, 4, 1, (*CPU).ora},
	0x1A: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0x1B: {"SLO", AddrAbsoluteY, 7, 0, (*CPU).slo},
	0x1C: {"NOP", AddrAbsoluteX, 4, 1, (*CPU).nop},
	0x1D: {"ORA", AddrAbsoluteX, 4, 1, (*CPU).ora},
	0x1E: {"ASL", AddrAbsoluteX, 7, 0, (*CPU).asl},
	0x1F: {"SLO", AddrAbsoluteX, 7, 0, (*CPU).slo},

	0x20: {"JSR", AddrAbsolute, 6, 0, (*CPU).jsr},
	0x21: {"AND", AddrIndexedIndirect, 6, 0, (*CPU).and},
	0x22: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x23: {"RLA", AddrIndexedIndirect, 8, 0, (*CPU).rla},
	0x24: {"BIT", AddrZeroPage, 3, 0, (*CPU).bit},
	0x25: {"AND", AddrZeroPage, 3, 0, (*CPU).and},
	0x26: {"ROL", AddrZeroPage, 5, 0, (*CPU).rol},
	0x27: {"RLA", AddrZeroPage, 5, 0, (*CPU).rla},
	0x28: {"PLP", AddrImplied, 4, 0, (*CPU).plp},
	0x29: {"AND", AddrImmediate, 2, 0, (*CPU).and},
	0x2A: {"ROL", AddrAccumulator, 2, 0, (*CPU).rol},
	0x2B: {"ANC", AddrImmediate, 2, 0, (*CPU).nop},
	0x2C: {"BIT", AddrAbsolute, 4, 0, (*CPU).bit},
	0x2D: {"AND", AddrAbsolute, 4, 0, (*CPU).and},
	0x2E: {"ROL", AddrAbsolute, 6, 0, (*CPU).rol},
	0x2F: {"RLA", AddrAbsolute, 6, 0, (*CPU).rla},

	0x30: {"BMI", AddrRelative, 2, 0, (*CPU).bmi},
	0x31: {"AND", AddrIndirectIndexed, 5, 1, (*CPU).and},
	0x32: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x33: {"RLA", AddrIndirectIndexed, 8, 0, (*CPU).rla},
	0x34: {"NOP", AddrZeroPageX, 4, 0, (*CPU).nop},
	0x35: {"AND", AddrZeroPageX, 4, 0, (*CPU).and},
	0x36: {"ROL", AddrZeroPageX, 6, 0, (*CPU).rol},
	0x37: {"RLA", AddrZeroPageX, 6, 0, (*CPU).rla},
	0x38: {"SEC", AddrImplied, 2, 0, (*CPU).sec},
	0x39: {"AND", AddrAbsoluteY, 4, 1, (*CPU).and},
	0x3A: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0x3B: {"RLA", AddrAbsoluteY, 7, 0, (*CPU).rla},
	0x3C: {"NOP", AddrAbsoluteX, 4, 1, (*CPU).nop},
	0x3D: {"AND", AddrAbsoluteX, 4, 1, (*CPU).and},
	0x3E: {"ROL", AddrAbsoluteX, 7, 0, (*CPU).rol},
	0x3F: {"RLA", AddrAbsoluteX, 7, 0, (*CPU).rla},

	0x40: {"RTI", AddrImplied, 6, 0, (*CPU).rti},
	0x41: {"EOR", AddrIndexedIndirect, 6, 0, (*CPU).eor},
	0x42: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x43: {"SRE", AddrIndexedIndirect, 8, 0, (*CPU).sre},
	0x44: {"NOP", AddrZeroPage, 3, 0, (*CPU).nop},
	0x45: {"EOR", AddrZeroPage, 3, 0, (*CPU).eor},
	0x46: {"LSR", AddrZeroPage, 5, 0, (*CPU).lsr},
	0x47: {"SRE", AddrZeroPage, 5, 0, (*CPU).sre},
	0x48: {"PHA", AddrImplied, 3, 0, (*CPU).pha},
	0x49: {"EOR", AddrImmediate, 2, 0, (*CPU).eor},
	0x4A: {"LSR", AddrAccumulator, 2, 0, (*CPU).lsr},
	0x4B: {"ALR", AddrImmediate, 2, 0, (*CPU).nop},
	0x4C: {"JMP", AddrAbsolute, 3, 0, (*CPU).jmp},
	0x4D: {"EOR", AddrAbsolute, 4, 0, (*CPU).eor},
	0x4E: {"LSR", AddrAbsolute, 6, 0, (*CPU).lsr},
	0x4F: {"SRE", AddrAbsolute, 6, 0, (*CPU).sre},

	0x50: {"BVC", AddrRelative, 2, 0, (*CPU).bvc},
	0x51: {"EOR", AddrIndirectIndexed, 5, 1, (*CPU).eor},
	0x52: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x53: {"SRE", AddrIndirectIndexed, 8, 0, (*CPU).sre},
	0x54: {"NOP", AddrZeroPageX, 4, 0, (*CPU).nop},
	0x55: {"EOR", AddrZeroPageX, 4, 0, (*CPU).eor},
	0x56: {"LSR", AddrZeroPageX, 6, 0, (*CPU).lsr},
	0x57: {"SRE", AddrZeroPageX, 6, 0, (*CPU).sre},
	0x58: {"CLI", AddrImplied, 2, 0, (*CPU).cli},
	0x59: {"EOR", AddrAbsoluteY, 4, 1, (*CPU).eor},
	0x5A: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0x5B: {"SRE", AddrAbsoluteY, 7, 0, (*CPU).sre},
	0x5C: {"NOP", AddrAbsoluteX, 4, 1, (*CPU).nop},
	0x5D: {"EOR", AddrAbsoluteX, 4, 1, (*CPU).eor},
	0x5E: {"LSR", AddrAbsoluteX, 7, 0, (*CPU).lsr},
	0x5F: {"SRE", AddrAbsoluteX, 7, 0, (*CPU).sre},

	0x60: {"RTS", AddrImplied, 6, 0, (*CPU).rts},
	0x61: {"ADC", AddrIndexedIndirect, 6, 0, (*CPU).adc},
	0x62: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x63: {"RRA", AddrIndexedIndirect, 8, 0, (*CPU).rra},
	0x64: {"NOP", AddrZeroPage, 3, 0, (*CPU).nop},
	0x65: {"ADC", AddrZeroPage, 3, 0, (*CPU).adc},
	0x66: {"ROR", AddrZeroPage, 5, 0, (*CPU).ror},
	0x67: {"RRA", AddrZeroPage, 5, 0, (*CPU).rra},
	0x68: {"PLA", AddrImplied, 4, 0, (*CPU).pla},
	0x69: {"ADC", AddrImmediate, 2, 0, (*CPU).adc},
	0x6A: {"ROR", AddrAccumulator, 2, 0, (*CPU).ror},
	0x6B: {"ARR", AddrImmediate, 2, 0, (*CPU).nop},
	0x6C: {"JMP", AddrIndirect, 5, 0, (*CPU).jmp},
	0x6D: {"ADC", AddrAbsolute, 4, 0, (*CPU).adc},
	0x6E: {"ROR", AddrAbsolute, 6, 0, (*CPU).ror},
	0x6F: {"RRA", AddrAbsolute, 6, 0, (*CPU).rra},

	0x70: {"BVS", AddrRelative, 2, 0, (*CPU).bvs},
	0x71: {"ADC", AddrIndirectIndexed, 5, 1, (*CPU).adc},
	0x72: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x73: {"RRA", AddrIndirectIndexed, 8, 0, (*CPU).rra},
	0x74: {"NOP", AddrZeroPageX, 4, 0, (*CPU).nop},
	0x75: {"ADC", AddrZeroPageX, 4, 0, (*CPU).adc},
	0x76: {"ROR", AddrZeroPageX, 6, 0, (*CPU).ror},
	0x77: {"RRA", AddrZeroPageX, 6, 0, (*CPU).rra},
	0x78: {"SEI", AddrImplied, 2, 0, (*CPU).sei},
	0x79: {"ADC", AddrAbsoluteY, 4, 1, (*CPU).adc},
	0x7A: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0x7B: {"RRA", AddrAbsoluteY, 7, 0, (*CPU).rra},
	0x7C: {"NOP", AddrAbsoluteX, 4, 1, (*CPU).nop},
	0x7D: {"ADC", AddrAbsoluteX, 4, 1, (*CPU).adc},
	0x7E: {"ROR", AddrAbsoluteX, 7, 0, (*CPU).ror},
	0x7F: {"RRA", AddrAbsoluteX, 7, 0, (*CPU).rra},

	0x80: {"NOP", AddrImmediate, 2, 0, (*CPU).nop},
	0x81: {"STA", AddrIndexedIndirect, 6, 0, (*CPU).sta},
	0x82: {"NOP", AddrImmediate, 2, 0, (*CPU).nop},
	0x83: {"SAX", AddrIndexedIndirect, 6, 0, (*CPU).sax},
	0x84: {"STY", AddrZeroPage, 3, 0, (*CPU).sty},
	0x85: {"STA", AddrZeroPage, 3, 0, (*CPU).sta},
	0x86: {"STX", AddrZeroPage, 3, 0, (*CPU).stx},
	0x87: {"SAX", AddrZeroPage, 3, 0, (*CPU).sax},
	0x88: {"DEY", AddrImplied, 2, 0, (*CPU).dey},
	0x89: {"NOP", AddrImmediate, 2, 0, (*CPU).nop},
	0x8A: {"TXA", AddrImplied, 2, 0, (*CPU).txa},
	0x8B: {"XAA", AddrImmediate, 2, 0, (*CPU).nop},
	0x8C: {"STY", AddrAbsolute, 4, 0, (*CPU).sty},
	0x8D: {"STA", AddrAbsolute, 4, 0, (*CPU).sta},
	0x8E: {"STX", AddrAbsolute, 4, 0, (*CPU).stx},
	0x8F: {"SAX", AddrAbsolute, 4, 0, (*CPU).sax},

	0x90: {"BCC", AddrRelative, 2, 0, (*CPU).bcc},
	0x91: {"STA", AddrIndirectIndexed, 6, 0, (*CPU).sta},
	0x92: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0x93: {"AHX", AddrIndirectIndexed, 6, 0, (*CPU).nop},
	0x94: {"STY", AddrZeroPageX, 4, 0, (*CPU).sty},
	0x95: {"STA", AddrZeroPageX, 4, 0, (*CPU).sta},
	0x96: {"STX", AddrZeroPageY, 4, 0, (*CPU).stx},
	0x97: {"SAX", AddrZeroPageY, 4, 0, (*CPU).sax},
	0x98: {"TYA", AddrImplied, 2, 0, (*CPU).tya},
	0x99: {"STA", AddrAbsoluteY, 5, 0, (*CPU).sta},
	0x9A: {"TXS", AddrImplied, 2, 0, (*CPU).txs},
	0x9B: {"TAS", AddrAbsoluteY, 5, 0, (*CPU).nop},
	0x9C: {"SHY", AddrAbsoluteX, 5, 0, (*CPU).nop},
	0x9D: {"STA", AddrAbsoluteX, 5, 0, (*CPU).sta},
	0x9E: {"SHX", AddrAbsoluteY, 5, 0, (*CPU).nop},
	0x9F: {"AHX", AddrAbsoluteY, 5, 0, (*CPU).nop},

	0xA0: {"LDY", AddrImmediate, 2, 0, (*CPU).ldy},
	0xA1: {"LDA", AddrIndexedIndirect, 6, 0, (*CPU).lda},
	0xA2: {"LDX", AddrImmediate, 2, 0, (*CPU).ldx},
	0xA3: {"LAX", AddrIndexedIndirect, 6, 0, (*CPU).lax},
	0xA4: {"LDY", AddrZeroPage, 3, 0, (*CPU).ldy},
	0xA5: {"LDA", AddrZeroPage, 3, 0, (*CPU).lda},
	0xA6: {"LDX", AddrZeroPage, 3, 0, (*CPU).ldx},
	0xA7: {"LAX", AddrZeroPage, 3, 0, (*CPU).lax},
	0xA8: {"TAY", AddrImplied, 2, 0, (*CPU).tay},
	0xA9: {"LDA", AddrImmediate, 2, 0, (*CPU).lda},
	0xAA: {"TAX", AddrImplied, 2, 0, (*CPU).tax},
	0xAB: {"LAX", AddrImmediate, 2, 0, (*CPU).lax},
	0xAC: {"LDY", AddrAbsolute, 4, 0, (*CPU).ldy},
	0xAD: {"LDA", AddrAbsolute, 4, 0, (*CPU).lda},
	0xAE: {"LDX", AddrAbsolute, 4, 0, (*CPU).ldx},
	0xAF: {"LAX", AddrAbsolute, 4, 0, (*CPU).lax},

	0xB0: {"BCS", AddrRelative, 2, 0, (*CPU).bcs},
	0xB1: {"LDA", AddrIndirectIndexed, 5, 1, (*CPU).lda},
	0xB2: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0xB3: {"LAX", AddrIndirectIndexed, 5, 1, (*CPU).lax},
	0xB4: {"LDY", AddrZeroPageX, 4, 0, (*CPU).ldy},
	0xB5: {"LDA", AddrZeroPageX, 4, 0, (*CPU).lda},
	0xB6: {"LDX", AddrZeroPageY, 4, 0, (*CPU).ldx},
	0xB7: {"LAX", AddrZeroPageY, 4, 0, (*CPU).lax},
	0xB8: {"CLV", AddrImplied, 2, 0, (*CPU).clv},
	0xB9: {"LDA", AddrAbsoluteY, 4, 1, (*CPU).lda},
	0xBA: {"TSX", AddrImplied, 2, 0, (*CPU).tsx},
	0xBB: {"LAS", AddrAbsoluteY, 4, 1, (*CPU).nop},
	0xBC: {"LDY", AddrAbsoluteX, 4, 1, (*CPU).ldy},
	0xBD: {"LDA", AddrAbsoluteX, 4, 1, (*CPU).lda},
	0xBE: {"LDX", AddrAbsoluteY, 4, 1, (*CPU).ldx},
	0xBF: {"LAX", AddrAbsoluteY, 4, 1, (*CPU).lax},

	0xC0: {"CPY", AddrImmediate, 2, 0, (*CPU).cpy},
	0xC1: {"CMP", AddrIndexedIndirect, 6, 0, (*CPU).cmp},
	0xC2: {"NOP", AddrImmediate, 2, 0, (*CPU).nop},
	0xC3: {"DCP", AddrIndexedIndirect, 8, 0, (*CPU).dcp},
	0xC4: {"CPY", AddrZeroPage, 3, 0, (*CPU).cpy},
	0xC5: {"CMP", AddrZeroPage, 3, 0, (*CPU).cmp},
	0xC6: {"DEC", AddrZeroPage, 5, 0, (*CPU).dec},
	0xC7: {"DCP", AddrZeroPage, 5, 0, (*CPU).dcp},
	0xC8: {"INY", AddrImplied, 2, 0, (*CPU).iny},
	0xC9: {"CMP", AddrImmediate, 2, 0, (*CPU).cmp},
	0xCA: {"DEX", AddrImplied, 2, 0, (*CPU).dex},
	0xCB: {"AXS", AddrImmediate, 2, 0, (*CPU).nop},
	0xCC: {"CPY", AddrAbsolute, 4, 0, (*CPU).cpy},
	0xCD: {"CMP", AddrAbsolute, 4, 0, (*CPU).cmp},
	0xCE: {"DEC", AddrAbsolute, 6, 0, (*CPU).dec},
	0xCF: {"DCP", AddrAbsolute, 6, 0, (*CPU).dcp},

	0xD0: {"BNE", AddrRelative, 2, 0, (*CPU).bne},
	0xD1: {"CMP", AddrIndirectIndexed, 5, 1, (*CPU).cmp},
	0xD2: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0xD3: {"DCP", AddrIndirectIndexed, 8, 0, (*CPU).dcp},
	0xD4: {"NOP", AddrZeroPageX, 4, 0, (*CPU).nop},
	0xD5: {"CMP", AddrZeroPageX, 4, 0, (*CPU).cmp},
	0xD6: {"DEC", AddrZeroPageX, 6, 0, (*CPU).dec},
	0xD7: {"DCP", AddrZeroPageX, 6, 0, (*CPU).dcp},
	0xD8: {"CLD", AddrImplied, 2, 0, (*CPU).cld},
	0xD9: {"CMP", AddrAbsoluteY, 4, 1, (*CPU).cmp},
	0xDA: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0xDB: {"DCP", AddrAbsoluteY, 7, 0, (*CPU).dcp},
	0xDC: {"NOP", AddrAbsoluteX, 4, 1, (*CPU).nop},
	0xDD: {"CMP", AddrAbsoluteX, 4, 1, (*CPU).cmp},
	0xDE: {"DEC", AddrAbsoluteX, 7, 0, (*CPU).dec},
	0xDF: {"DCP", AddrAbsoluteX, 7, 0, (*CPU).dcp},

	0xE0: {"CPX", AddrImmediate, 2, 0, (*CPU).cpx},
	0xE1: {"SBC", AddrIndexedIndirect, 6, 0, (*CPU).sbc},
	0xE2: {"NOP", AddrImmediate, 2, 0, (*CPU).nop},
	0xE3: {"ISB", AddrIndexedIndirect, 8, 0, (*CPU).isb},
	0xE4: {"CPX", AddrZeroPage, 3, 0, (*CPU).cpx},
	0xE5: {"SBC", AddrZeroPage, 3, 0, (*CPU).sbc},
	0xE6: {"INC", AddrZeroPage, 5, 0, (*CPU).inc},
	0xE7: {"ISB", AddrZeroPage, 5, 0, (*CPU).isb},
	0xE8: {"INX", AddrImplied, 2, 0, (*CPU).inx},
	0xE9: {"SBC", AddrImmediate, 2, 0, (*CPU).sbc},
	0xEA: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0xEB: {"SBC", AddrImmediate, 2, 0, (*CPU).sbc},
	0xEC: {"CPX", AddrAbsolute, 4, 0, (*CPU).cpx},
	0xED: {"SBC", AddrAbsolute, 4, 0, (*CPU).sbc},
	0xEE: {"INC", AddrAbsolute, 6, 0, (*CPU).inc},
	0xEF: {"ISB", AddrAbsolute, 6, 0, (*CPU).isb},

	0xF0: {"BEQ", AddrRelative, 2, 0, (*CPU).beq},
	0xF1: {"SBC", AddrIndirectIndexed, 5, 1, (*CPU).sbc},
	0xF2: {"KIL", AddrImplied, 2, 0, (*CPU).nop},
	0xF3: {"ISB", AddrIndirectIndexed, 8, 0, (*CPU).isb},
	0xF4: {"NOP", AddrZeroPageX, 4, 0, (*CPU).nop},
	0xF5: {"SBC", AddrZeroPageX, 4, 0, (*CPU).sbc},
	0xF6: {"INC", AddrZeroPageX, 6, 0, (*CPU).inc},
	0xF7: {"ISB", AddrZeroPageX, 6, 0, (*CPU).isb},
	0xF8: {"SED", AddrImplied, 2, 0, (*CPU).sed},
	0xF9: {"SBC", AddrAbsoluteY, 4, 1, (*CPU).sbc},
	0xFA: {"NOP", AddrImplied, 2, 0, (*CPU).nop},
	0xFB: {"ISB", AddrAbsoluteY, 7, 0, (*CPU).isb},
	0xFC: {"NOP", AddrAbsoluteX, 4, 1, (*CPU).nop},
	0xFD: {"SBC", AddrAbsoluteX, 4, 1, (*CPU).sbc},
	0xFE: {"INC", AddrAbsoluteX, 7, 0, (*CPU).inc},
	0xFF: {"ISB", AddrAbsoluteX, 7, 0, (*CPU).isb},
}
