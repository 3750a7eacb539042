package ppu

import (
	"testing"

	"github.com/hmaeno/gnes/pkg/cartridge"
)

// testCartridge backs CHR space with RAM and reports a configurable
// mirroring mode
type testCartridge struct {
	chr       [8192]uint8
	mirroring cartridge.MirroringMode
}

func (c *testCartridge) ReadCHR(addr uint16) uint8 {
	return c.chr[addr&0x1FFF]
}

func (c *testCartridge) WriteCHR(addr uint16, value uint8) {
	c.chr[addr&0x1FFF] = value
}

func (c *testCartridge) GetMirroring() cartridge.MirroringMode {
	return c.mirroring
}

// createTestPPU creates a PPU with a CHR RAM cartridge attached
func createTestPPU() (*PPU, *testCartridge) {
	cart := &testCartridge{mirroring: cartridge.MirroringHorizontal}
	p := New()
	p.SetCartridge(cart)
	p.Reset()
	return p, cart
}

// stepScanlines advances the PPU by whole scanlines
func stepScanlines(p *PPU, n int) {
	for i := 0; i < n*dotsPerScanline; i++ {
		p.Step()
	}
}

// Test PPU Reset
func TestPPUReset(t *testing.T) {
	p, _ := createTestPPU()

	p.PPUCTRL = 0xFF
	p.PPUMASK = 0xFF
	p.PPUSTATUS = 0xFF
	p.Dot = 100
	p.Scanline = 50

	p.Reset()

	if p.PPUCTRL != 0 || p.PPUMASK != 0 || p.PPUSTATUS != 0 {
		t.Error("Registers should clear on reset")
	}
	if p.Dot != 0 || p.Scanline != 0 {
		t.Error("Dot clock should clear on reset")
	}
}

// Reading PPUSTATUS returns the high bits, clears VBlank and resets the
// write toggle
func TestStatusRead(t *testing.T) {
	p, _ := createTestPPU()

	p.PPUSTATUS = PPUSTATUSVBlank | PPUSTATUSSprite0Hit
	p.w = 1

	value := p.ReadRegister(0x2002)

	if value&PPUSTATUSVBlank == 0 || value&PPUSTATUSSprite0Hit == 0 {
		t.Errorf("Expected VBlank and sprite 0 hit in status, got %02X", value)
	}
	if value&0x1F != 0 {
		t.Errorf("Low status bits should read as open bus 0, got %02X", value)
	}
	if p.PPUSTATUS&PPUSTATUSVBlank != 0 {
		t.Error("VBlank should clear on read")
	}
	if p.w != 0 {
		t.Error("Write toggle should clear on read")
	}
}

// Scroll and control writes accumulate into t per the loopy layout
func TestScrollRegisterAccumulation(t *testing.T) {
	p, _ := createTestPPU()

	// First scroll write: coarse X and fine X
	p.WriteRegister(0x2005, 0x7D) // 0b01111_101
	if p.t&0x001F != 0x0F {
		t.Errorf("Expected coarse X=0x0F, got %02X", p.t&0x001F)
	}
	if p.x != 0x05 {
		t.Errorf("Expected fine X=5, got %d", p.x)
	}
	if p.w != 1 {
		t.Error("Write toggle should be 1 after first scroll write")
	}

	// Second scroll write: coarse Y and fine Y
	p.WriteRegister(0x2005, 0x5E) // 0b01011_110
	if (p.t>>5)&0x1F != 0x0B {
		t.Errorf("Expected coarse Y=0x0B, got %02X", (p.t>>5)&0x1F)
	}
	if (p.t>>12)&0x07 != 0x06 {
		t.Errorf("Expected fine Y=6, got %d", (p.t>>12)&0x07)
	}
	if p.w != 0 {
		t.Error("Write toggle should be 0 after second scroll write")
	}

	// Control write: nametable select
	p.WriteRegister(0x2000, 0x03)
	if (p.t>>10)&0x03 != 0x03 {
		t.Errorf("Expected nametable bits=3, got %d", (p.t>>10)&0x03)
	}

	// Everything else must have survived
	if p.t&0x001F != 0x0F || (p.t>>5)&0x1F != 0x0B || (p.t>>12)&0x07 != 0x06 {
		t.Errorf("Control write clobbered scroll bits: t=%04X", p.t)
	}
}

// Address writes build t high-then-low and copy to v on the second
func TestAddressRegister(t *testing.T) {
	p, _ := createTestPPU()

	p.WriteRegister(0x2006, 0x21)
	if p.w != 1 {
		t.Error("Write toggle should be 1 after first address write")
	}
	if p.v != 0 {
		t.Error("v must not change until the second write")
	}

	p.WriteRegister(0x2006, 0x08)
	if p.v != 0x2108 {
		t.Errorf("Expected v=0x2108, got %04X", p.v)
	}
	if p.t != 0x2108 {
		t.Errorf("Expected t=0x2108, got %04X", p.t)
	}
	if p.w != 0 {
		t.Error("Write toggle should be 0 after second address write")
	}

	// Bit 14 is forced clear by the first write
	p.WriteRegister(0x2006, 0x7F)
	p.WriteRegister(0x2006, 0xFF)
	if p.v != 0x3FFF {
		t.Errorf("Expected v=0x3FFF with bit 14 cleared, got %04X", p.v)
	}
}

// Data port reads are buffered for non-palette addresses and immediate
// for palette addresses
func TestDataPortReadBuffer(t *testing.T) {
	p, _ := createTestPPU()

	// Write a byte to nametable space
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x40)
	p.WriteRegister(0x2007, 0xAB)

	// Read it back through the buffer protocol
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x40)

	first := p.ReadRegister(0x2007)
	second := p.ReadRegister(0x2007)

	if first == 0xAB {
		t.Error("First read should return stale buffer contents")
	}
	if second != 0xAB {
		t.Errorf("Second read should return the written byte, got %02X", second)
	}

	// Palette reads bypass the buffer
	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x01)
	p.WriteRegister(0x2007, 0x2A)

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x01)
	if got := p.ReadRegister(0x2007); got != 0x2A {
		t.Errorf("Palette read should be immediate, got %02X", got)
	}
}

// VRAM address advances by 1 or 32 per the control bit
func TestVRAMAddressIncrement(t *testing.T) {
	p, _ := createTestPPU()

	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0xAA)
	if p.v != 0x2001 {
		t.Errorf("Expected v=0x2001, got %04X", p.v)
	}

	p.WriteRegister(0x2000, PPUCTRLIncrement)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0xBB)
	if p.v != 0x2020 {
		t.Errorf("Expected v=0x2020, got %04X", p.v)
	}
}

// Palette writes through $3F10 alias $3F00
func TestPaletteMirroring(t *testing.T) {
	p, _ := createTestPPU()

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x3F)

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x10)
	p.WriteRegister(0x2007, 0x17)

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x00)
	if got := p.ReadRegister(0x2007); got != 0x17 {
		t.Errorf("Expected $3F00 to read back $17 written through $3F10, got %02X", got)
	}
}

// Nametable mirroring truth table
func TestNametableMirroring(t *testing.T) {
	tests := []struct {
		mode   cartridge.MirroringMode
		folded [4]uint16 // physical table index for logical tables 0-3
	}{
		{cartridge.MirroringHorizontal, [4]uint16{0, 0, 1, 1}},
		{cartridge.MirroringVertical, [4]uint16{0, 1, 0, 1}},
		{cartridge.MirroringSingleLower, [4]uint16{0, 0, 0, 0}},
		{cartridge.MirroringSingleUpper, [4]uint16{1, 1, 1, 1}},
		{cartridge.MirroringFourScreen, [4]uint16{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			p, cart := createTestPPU()
			cart.mirroring = tt.mode

			for table := uint16(0); table < 4; table++ {
				addr := 0x2000 + table*0x400 + 0x11
				want := tt.folded[table]*0x400 + 0x11
				if got := p.mirrorNametableAddress(addr); got != want {
					t.Errorf("table %d: expected physical %04X, got %04X", table, want, got)
				}
			}
		})
	}
}

// $3000-$3EFF mirrors $2000-$2EFF
func TestNametableHighMirror(t *testing.T) {
	p, _ := createTestPPU()

	p.writeVRAM(0x2005, 0x42)
	if got := p.readVRAM(0x3005); got != 0x42 {
		t.Errorf("Expected $3005 to mirror $2005, got %02X", got)
	}
}

// CHR writes land in CHR RAM through the data port
func TestCHRAccess(t *testing.T) {
	p, cart := createTestPPU()

	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2006, 0x10)
	p.WriteRegister(0x2007, 0x99)

	if cart.chr[0x10] != 0x99 {
		t.Errorf("Expected CHR RAM write, got %02X", cart.chr[0x10])
	}
}

// OAM address and data registers
func TestOAMAccess(t *testing.T) {
	p, _ := createTestPPU()

	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0x50)
	p.WriteRegister(0x2004, 0x01)

	if p.OAM[0x10] != 0x50 || p.OAM[0x11] != 0x01 {
		t.Errorf("Expected OAM writes at 0x10/0x11, got %02X %02X", p.OAM[0x10], p.OAM[0x11])
	}
	if p.OAMADDR != 0x12 {
		t.Errorf("Expected OAMADDR=0x12, got %02X", p.OAMADDR)
	}

	p.WriteRegister(0x2003, 0x10)
	if got := p.ReadRegister(0x2004); got != 0x50 {
		t.Errorf("Expected OAM read 0x50, got %02X", got)
	}
}

// VBlank begins at scanline 241 dot 1 and the NMI edge arrives two dots
// later
func TestVBlankAndNMIDelay(t *testing.T) {
	p, _ := createTestPPU()
	p.WriteRegister(0x2000, PPUCTRLNMIEnable)

	// Run up to scanline 241, dot 0
	stepScanlines(p, 241)
	p.Step() // dot 0

	if p.PPUSTATUS&PPUSTATUSVBlank != 0 {
		t.Fatal("VBlank must not be set before 241/1")
	}

	p.Step() // dot 1: VBlank set, NMI armed
	if p.PPUSTATUS&PPUSTATUSVBlank == 0 {
		t.Fatal("VBlank should be set at 241/1")
	}
	if p.NMIPending() {
		t.Fatal("NMI must wait for the propagation delay")
	}

	p.Step() // dot 2
	p.Step() // dot 3: delay elapsed
	if !p.NMIPending() {
		t.Fatal("NMI should be pending after the 2-dot delay")
	}

	p.AcknowledgeNMI()
	if p.NMIPending() {
		t.Error("Acknowledge should clear the pending NMI")
	}
}

// Enabling NMI generation while VBlank is up raises exactly one edge
func TestNMIEnableDuringVBlank(t *testing.T) {
	p, _ := createTestPPU()
	p.PPUSTATUS |= PPUSTATUSVBlank

	p.WriteRegister(0x2000, PPUCTRLNMIEnable)
	if !p.NMIPending() {
		t.Fatal("Expected NMI edge when enabling during VBlank")
	}
	p.AcknowledgeNMI()

	// Writing the same value again is not a rising edge
	p.WriteRegister(0x2000, PPUCTRLNMIEnable)
	if p.NMIPending() {
		t.Error("No new edge without a rising transition")
	}
}

// Pre-render line clears VBlank, sprite 0 hit and overflow
func TestPreRenderClearsFlags(t *testing.T) {
	p, _ := createTestPPU()
	stepScanlines(p, 241)
	p.Step()

	p.PPUSTATUS |= PPUSTATUSSprite0Hit | PPUSTATUSOverflow

	// Run to the pre-render line
	for p.Scanline != preRenderScanline || p.Dot != 2 {
		p.Step()
	}

	if p.PPUSTATUS&(PPUSTATUSVBlank|PPUSTATUSSprite0Hit|PPUSTATUSOverflow) != 0 {
		t.Errorf("Expected flags cleared at 261/1, got %02X", p.PPUSTATUS)
	}
}

// A full frame is 341x262 dots with rendering disabled, and the
// frame-complete flag rises exactly at the wrap
func TestFrameTiming(t *testing.T) {
	p, _ := createTestPPU()

	total := dotsPerScanline * scanlinesPerFrame
	for i := 0; i < total-1; i++ {
		p.Step()
		if p.FrameComplete {
			t.Fatalf("Frame completed early at dot %d", i)
		}
	}

	p.Step()
	if !p.FrameComplete {
		t.Fatal("Frame should complete after 341*262 dots")
	}
	if p.Frame != 1 || p.Scanline != 0 || p.Dot != 0 {
		t.Errorf("Expected frame 1 at 0/0, got frame %d at %d/%d", p.Frame, p.Scanline, p.Dot)
	}
}

// Odd frames drop one dot of the pre-render line while rendering is
// enabled
func TestOddFrameDotSkip(t *testing.T) {
	p, _ := createTestPPU()
	p.WriteRegister(0x2001, PPUMASKBGShow)

	countFrame := func() int {
		p.FrameComplete = false
		dots := 0
		for !p.FrameComplete {
			p.Step()
			dots++
		}
		return dots
	}

	even := countFrame() // frame 0 -> 1
	odd := countFrame()  // frame 1 -> 2

	if even != dotsPerScanline*scanlinesPerFrame {
		t.Errorf("Even frame: expected %d dots, got %d", dotsPerScanline*scanlinesPerFrame, even)
	}
	if odd != dotsPerScanline*scanlinesPerFrame-1 {
		t.Errorf("Odd frame: expected %d dots, got %d", dotsPerScanline*scanlinesPerFrame-1, odd)
	}
}

// With rendering disabled the frame buffer is fully painted with the
// universal background color
func TestBackdropFill(t *testing.T) {
	p, _ := createTestPPU()

	p.writeVRAM(0x3F00, 0x21)
	want := colorRGBA(0x21)

	for !p.FrameComplete {
		p.Step()
	}

	for i, pixel := range p.FrameBuffer {
		if pixel != want {
			t.Fatalf("Pixel %d: expected %08X, got %08X", i, want, pixel)
		}
	}
}
