package ppu

import (
	"testing"

	"github.com/meadori/dotnes/cartridge"
)

// mockMapper backs the PPU with 8 KiB of CHR RAM for tests.
type mockMapper struct {
	chr    [8192]byte
	mirror byte
}

func (m *mockMapper) CPUMapRead(addr uint16) (byte, bool)     { return 0, false }
func (m *mockMapper) CPUMapWrite(addr uint16, data byte) bool { return false }
func (m *mockMapper) PPUMapRead(addr uint16) (byte, bool) {
	if addr <= 0x1FFF {
		return m.chr[addr], true
	}
	return 0, false
}
func (m *mockMapper) PPUMapWrite(addr uint16, data byte) bool {
	if addr <= 0x1FFF {
		m.chr[addr] = data
		return true
	}
	return false
}
func (m *mockMapper) Mirroring() byte     { return m.mirror }
func (m *mockMapper) Clock()              {}
func (m *mockMapper) IRQPending() bool    { return false }
func (m *mockMapper) ClearIRQ()           {}
func (m *mockMapper) Save() []byte        { return nil }
func (m *mockMapper) Load(b []byte) error { return nil }

func newTestPPU() (*PPU, *mockMapper) {
	m := &mockMapper{mirror: cartridge.MirrorVertical}
	cart := &cartridge.Cartridge{Mapper: m, Mirror: m.mirror, IsCHRRAM: true}
	p := New()
	p.ConnectCartridge(cart)
	return p, m
}

func TestSettingVramAddr(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0, 0)
	p.ReadRegister(2)
	p.WriteRegister(5, 0x7D)
	if p.fineX != 0b101 {
		t.Errorf("fineX=%03b, want 101", p.fineX)
	}
	p.WriteRegister(5, 0x5E)
	if p.tempAddr != 0b110000101101111 {
		t.Errorf("t=%015b", p.tempAddr)
	}
	if p.vramAddr != 0 {
		t.Errorf("v=%04X, want 0", p.vramAddr)
	}
	p.WriteRegister(6, 0x3D)
	if p.tempAddr != 0b011110101101111 {
		t.Errorf("t=%015b", p.tempAddr)
	}
	p.WriteRegister(6, 0xF0)
	if p.tempAddr != 0b011110111110000 {
		t.Errorf("t=%015b", p.tempAddr)
	}
	if p.vramAddr != p.tempAddr {
		t.Errorf("v=%04X, want t=%04X", p.vramAddr, p.tempAddr)
	}
	if p.fineX != 0b101 {
		t.Errorf("fineX clobbered: %03b", p.fineX)
	}
}

func TestSettingVramAddrScrollFirst(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(6, 0x04)
	if p.tempAddr != 0b0000100_00000000 {
		t.Errorf("t=%015b", p.tempAddr)
	}
	p.WriteRegister(5, 0x3E)
	if p.tempAddr != 0b1100100_11100000 {
		t.Errorf("t=%015b", p.tempAddr)
	}
	p.WriteRegister(5, 0x7D)
	if p.tempAddr != 0b1100100_11101111 {
		t.Errorf("t=%015b", p.tempAddr)
	}
	if p.fineX != 0b101 {
		t.Errorf("fineX=%03b", p.fineX)
	}
	p.WriteRegister(6, 0xEF)
	if p.vramAddr != 0b1100100_11101111 {
		t.Errorf("v=%015b", p.vramAddr)
	}
}

func TestStatusReadClearsToggleAndVBlank(t *testing.T) {
	p, _ := newTestPPU()

	p.Status |= statusVBlank
	p.WriteRegister(6, 0x12) // w -> 1

	data := p.ReadRegister(2)
	if data&statusVBlank == 0 {
		t.Error("first status read should report VBlank")
	}
	if p.writeToggle {
		t.Error("status read must clear w")
	}
	if p.Status&statusVBlank != 0 {
		t.Error("status read must clear VBlank")
	}
	if data := p.ReadRegister(2); data&statusVBlank != 0 {
		t.Errorf("second read still has VBlank: %02X", data)
	}
}

func TestDotScanlineInvariant(t *testing.T) {
	p, _ := newTestPPU()
	p.Mask = maskShowBackground // exercise the odd-frame skip too

	for i := 0; i < 341*262*3; i++ {
		p.Clock()
		if p.Dot < 0 || p.Dot > 340 {
			t.Fatalf("dot out of range: %d", p.Dot)
		}
		if p.Scanline < -1 || p.Scanline > 260 {
			t.Fatalf("scanline out of range: %d", p.Scanline)
		}
	}
}

func TestPaletteMirrors(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(6, 0x3F)
	p.WriteRegister(6, 0x10)
	p.WriteRegister(7, 0x2A) // write $3F10, lands in $3F00

	if p.palette[0] != 0x2A {
		t.Errorf("palette[0]=%02X, want 2A", p.palette[0])
	}
	if got := p.readPalette(0x3F10); got != 0x2A {
		t.Errorf("read $3F10 = %02X, want 2A", got)
	}
	// Non-mirrored entries stay separate.
	p.writePalette(0x3F05, 0x11)
	p.writePalette(0x3F15, 0x22)
	if p.readPalette(0x3F05) != 0x11 || p.readPalette(0x3F15) != 0x22 {
		t.Error("only the background-color entries mirror")
	}
}

func TestDataReadBuffered(t *testing.T) {
	p, _ := newTestPPU()

	// Write $55 then $AA at $2100.
	p.WriteRegister(6, 0x21)
	p.WriteRegister(6, 0x00)
	p.WriteRegister(7, 0x55)
	p.WriteRegister(7, 0xAA)

	p.WriteRegister(6, 0x21)
	p.WriteRegister(6, 0x00)

	first := p.ReadRegister(7) // stale buffer
	second := p.ReadRegister(7)
	third := p.ReadRegister(7)
	if second != 0x55 || third != 0xAA {
		t.Errorf("buffered reads: %02X %02X %02X", first, second, third)
	}
}

func TestPaletteReadUnbuffered(t *testing.T) {
	p, _ := newTestPPU()

	p.writePalette(0x3F01, 0x16)
	p.WriteRegister(6, 0x3F)
	p.WriteRegister(6, 0x01)

	if got := p.ReadRegister(7) & 0x3F; got != 0x16 {
		t.Errorf("palette read = %02X, want 16", got)
	}
}

func TestAddressIncrementStep(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(6, 0x20)
	p.WriteRegister(6, 0x00)
	p.WriteRegister(7, 0x01)
	if p.vramAddr != 0x2001 {
		t.Errorf("v=%04X, want 2001", p.vramAddr)
	}

	p.Ctrl |= ctrlIncrement32
	p.WriteRegister(7, 0x02)
	if p.vramAddr != 0x2021 {
		t.Errorf("v=%04X, want 2021", p.vramAddr)
	}
}

func TestVBlankTimingAndNMI(t *testing.T) {
	p, _ := newTestPPU()
	p.Ctrl = ctrlNMIEnable

	// Run from the pre-render line to (241,1).
	for !(p.Scanline == 241 && p.Dot == 1) {
		p.Clock()
	}
	if p.Status&statusVBlank != 0 {
		t.Error("VBlank must not be set before (241,1) executes")
	}
	p.Clock()
	if p.Status&statusVBlank == 0 {
		t.Error("VBlank flag not set at (241,1)")
	}
	if !p.NMILine() {
		t.Error("NMI line must rise with VBlank and NMI enabled")
	}

	// Clears at pre-render.
	for !(p.Scanline == -1 && p.Dot == 2) {
		p.Clock()
	}
	if p.Status&statusVBlank != 0 {
		t.Error("VBlank must clear on the pre-render line")
	}
	if p.NMILine() {
		t.Error("NMI line must drop with VBlank")
	}
}

func TestStatusReadSuppressesVBlank(t *testing.T) {
	p, _ := newTestPPU()
	p.Ctrl = ctrlNMIEnable

	for !(p.Scanline == 241 && p.Dot == 0) {
		p.Clock()
	}
	p.ReadRegister(2) // the race: read one dot before the flag sets
	p.Clock()         // (241,0)
	p.Clock()         // (241,1), where the flag would have set
	if p.Status&statusVBlank != 0 {
		t.Error("status read at (241,0) must suppress the VBlank flag")
	}
	if p.NMILine() {
		t.Error("suppressed frame must not raise NMI")
	}
}

func TestOAMAccess(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(3, 0x10)
	p.WriteRegister(4, 0xAB)
	if p.oam[0x10] != 0xAB {
		t.Error("OAMDATA write failed")
	}
	if p.oamAddr != 0x11 {
		t.Error("OAMDATA write must increment OAMADDR")
	}

	p.WriteRegister(3, 0x10)
	if got := p.ReadRegister(4); got != 0xAB {
		t.Errorf("OAMDATA read = %02X", got)
	}
	if p.oamAddr != 0x10 {
		t.Error("OAMDATA read must not increment OAMADDR")
	}

	// Attribute bytes mask the unimplemented bits.
	p.WriteRegister(3, 0x02)
	p.WriteRegister(4, 0xFF)
	p.WriteRegister(3, 0x02)
	if got := p.ReadRegister(4); got != 0xE3 {
		t.Errorf("attribute read = %02X, want E3", got)
	}
}

func TestOAMDMAWrite(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(3, 0xFE)
	p.WriteOAMDMA(0x11)
	p.WriteOAMDMA(0x22)
	p.WriteOAMDMA(0x33) // wraps to 0

	if p.oam[0xFE] != 0x11 || p.oam[0xFF] != 0x22 || p.oam[0x00] != 0x33 {
		t.Error("OAM DMA writes must go through OAMADDR with wrap")
	}
}

func TestSpriteEvaluation(t *testing.T) {
	p, _ := newTestPPU()
	p.Mask = maskShowBackground | maskShowSprites

	// Park every sprite off-screen, then put sprite 0 and sprite 5 on
	// line 10.
	for i := range p.oam {
		p.oam[i] = 0xEF
	}
	p.oam[0] = 10 // y
	p.oam[1] = 1  // tile
	p.oam[2] = 0  // attributes
	p.oam[3] = 50 // x
	p.oam[5*4] = 10
	p.oam[5*4+1] = 2
	p.oam[5*4+2] = 0x40
	p.oam[5*4+3] = 60

	p.Scanline = 10
	p.Dot = 0
	for p.Dot != 0 || p.Scanline != 11 {
		p.Clock()
	}

	if p.spriteCount != 2 {
		t.Fatalf("spriteCount=%d, want 2", p.spriteCount)
	}
	if !p.sprite0Line {
		t.Error("sprite 0 must be flagged for the line")
	}
	if p.sprites[0].x != 50 || p.sprites[1].x != 60 {
		t.Errorf("sprite x: %d, %d", p.sprites[0].x, p.sprites[1].x)
	}
	if p.Status&statusSpriteOverflow != 0 {
		t.Error("no overflow with two sprites")
	}
}

func TestSpriteOverflowFlag(t *testing.T) {
	p, _ := newTestPPU()
	p.Mask = maskShowBackground | maskShowSprites

	for i := 0; i < 9; i++ {
		p.oam[i*4] = 20
	}
	for i := 9; i < 64; i++ {
		p.oam[i*4] = 0xEF
	}

	p.Scanline = 20
	p.Dot = 0
	for p.Dot != 300 {
		p.Clock()
	}

	if p.Status&statusSpriteOverflow == 0 {
		t.Error("nine in-range sprites must set the overflow flag")
	}
	if p.spriteCount > 8 {
		t.Errorf("spriteCount=%d", p.spriteCount)
	}
}

func TestSecondaryOAMClearReads(t *testing.T) {
	p, _ := newTestPPU()
	p.Mask = maskShowBackground

	p.Scanline = 5
	p.Dot = 0
	for p.Dot != 40 {
		p.Clock()
	}
	if got := p.ReadRegister(4); got != 0xFF {
		t.Errorf("OAMDATA during secondary OAM clear = %02X, want FF", got)
	}
}

// TestRenderSolidBackground fills the nametable with a solid tile and
// checks the framebuffer comes out in that palette entry.
func TestRenderSolidBackground(t *testing.T) {
	p, m := newTestPPU()

	// Tile 0: all pixels use color 1.
	for i := 0; i < 8; i++ {
		m.chr[i] = 0xFF
	}

	// Nametable 0 all tile 0, attributes 0.
	for i := 0; i < 0x0400; i++ {
		p.vram[i] = 0
	}

	p.palette[0] = 0x0F
	p.palette[1] = 0x16

	p.Ctrl = 0
	p.Mask = maskShowBackground | maskShowLeftBG

	for i := 0; i < 2*341*262; i++ {
		p.Clock()
	}

	for _, pos := range [][2]int{{0, 0}, {128, 120}, {255, 239}} {
		got := p.pixels[pos[1]*256+pos[0]]
		if got != 0x16 {
			t.Errorf("pixel (%d,%d) = %02X, want 16", pos[0], pos[1], got)
		}
	}
}

func TestOddFrameSkip(t *testing.T) {
	p, _ := newTestPPU()
	p.Mask = maskShowBackground

	dotsPerFrame := func() int {
		n := 0
		for {
			p.Clock()
			n++
			if p.Scanline == -1 && p.Dot == 0 {
				return n
			}
		}
	}

	// Consume the partial first frame, then measure two full frames.
	dotsPerFrame()
	a := dotsPerFrame()
	b := dotsPerFrame()
	if a == b {
		t.Fatalf("consecutive frames had equal length %d; one dot must be skipped", a)
	}
	if a+b != 341*262*2-1 {
		t.Errorf("frame pair %d+%d dots, want %d", a, b, 341*262*2-1)
	}
}
