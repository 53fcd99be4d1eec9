package cartridge

import (
	"os"
	"path/filepath"
	"testing"
)

// buildROM assembles a minimal iNES image.
func buildROM(prgBanks, chrBanks int, flags6, flags7 byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, byte(prgBanks), byte(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append([]byte{}, header...)
	data = append(data, make([]byte, prgBanks*16384)...)
	data = append(data, make([]byte, chrBanks*8192)...)
	return data
}

func TestNewFromBytes(t *testing.T) {
	cart, err := NewFromBytes(buildROM(2, 1, 0x31, 0x00))
	if err != nil {
		t.Fatal(err)
	}

	if len(cart.PRGROM) != 2*16384 {
		t.Errorf("PRGROM size %d, want %d", len(cart.PRGROM), 2*16384)
	}
	if len(cart.CHRROM) != 8192 {
		t.Errorf("CHRROM size %d, want %d", len(cart.CHRROM), 8192)
	}
	if cart.MapperID != 3 {
		t.Errorf("mapper %d, want 3", cart.MapperID)
	}
	if cart.Mirror != MirrorVertical {
		t.Errorf("mirroring %d, want vertical", cart.Mirror)
	}
	if cart.IsCHRRAM {
		t.Error("CHR ROM image must not be flagged as CHR RAM")
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, buildROM(1, 1, 0x00, 0x00), 0o644); err != nil {
		t.Fatal(err)
	}

	cart, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if cart.MapperID != 0 {
		t.Errorf("mapper %d, want 0", cart.MapperID)
	}
	if cart.Mirror != MirrorHorizontal {
		t.Errorf("mirroring %d, want horizontal", cart.Mirror)
	}
}

func TestHeaderErrors(t *testing.T) {
	if _, err := NewFromBytes([]byte{1, 2, 3}); err == nil {
		t.Error("short image must fail")
	}
	bad := buildROM(1, 1, 0, 0)
	bad[0] = 'X'
	if _, err := NewFromBytes(bad); err == nil {
		t.Error("bad magic must fail")
	}
	if _, err := NewFromBytes(buildROM(1, 1, 0x00, 0xF0)); err == nil {
		t.Error("unsupported mapper must fail")
	}
}

func TestCHRRAMAllocation(t *testing.T) {
	cart, err := NewFromBytes(buildROM(1, 0, 0x00, 0x00))
	if err != nil {
		t.Fatal(err)
	}
	if !cart.IsCHRRAM || len(cart.CHRROM) != 8192 {
		t.Error("CHR size 0 must allocate 8 KiB of CHR RAM")
	}

	cart.PPUWrite(0x1000, 0xAB)
	if got, _ := cart.PPURead(0x1000); got != 0xAB {
		t.Error("CHR RAM must be writable")
	}
}

func TestTrainerSkipped(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0x04, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append([]byte{}, header...)
	data = append(data, make([]byte, 512)...) // trainer
	prg := make([]byte, 16384)
	prg[0] = 0xAB
	data = append(data, prg...)
	data = append(data, make([]byte, 8192)...)

	cart, err := NewFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cart.PRGROM[0] != 0xAB {
		t.Error("trainer must be skipped before PRG data")
	}
}

func TestNROMMirroredPRG(t *testing.T) {
	rom := buildROM(1, 1, 0, 0)
	rom[16+0x1234] = 0x42
	cart, _ := NewFromBytes(rom)

	a, _ := cart.CPURead(0x9234)
	b, _ := cart.CPURead(0xD234)
	if a != 0x42 || b != 0x42 {
		t.Error("16 KiB NROM must mirror into the upper bank")
	}
}

func TestUxROMBanking(t *testing.T) {
	rom := buildROM(4, 0, 0x20, 0) // mapper 2
	for bank := 0; bank < 4; bank++ {
		rom[16+bank*16384] = byte(0xB0 + bank)
	}
	cart, _ := NewFromBytes(rom)

	if got, _ := cart.CPURead(0xC000); got != 0xB3 {
		t.Errorf("fixed bank = %02X, want B3", got)
	}
	if got, _ := cart.CPURead(0x8000); got != 0xB0 {
		t.Errorf("initial switchable bank = %02X, want B0", got)
	}

	if !cart.CPUWrite(0x8000, 2) {
		t.Fatal("ROM-space write must reach the mapper")
	}
	if got, _ := cart.CPURead(0x8000); got != 0xB2 {
		t.Errorf("after bank switch = %02X, want B2", got)
	}
	if got, _ := cart.CPURead(0xC000); got != 0xB3 {
		t.Error("fixed bank must not move")
	}
}

func TestCNROMBanking(t *testing.T) {
	rom := buildROM(1, 2, 0x30, 0) // mapper 3
	rom[16+16384] = 0xC0           // CHR bank 0 first byte
	rom[16+16384+8192] = 0xC1      // CHR bank 1 first byte
	cart, _ := NewFromBytes(rom)

	if got, _ := cart.PPURead(0x0000); got != 0xC0 {
		t.Errorf("CHR bank 0 = %02X", got)
	}
	cart.CPUWrite(0x8000, 1)
	if got, _ := cart.PPURead(0x0000); got != 0xC1 {
		t.Errorf("CHR bank 1 = %02X", got)
	}
}

// mmc1Write clocks the mapper between serial writes the way the CPU
// would; back-to-back writes are deliberately ignored by the hardware.
func mmc1Write(m *mmc1, addr uint16, data byte) {
	m.Clock()
	m.Clock()
	m.CPUMapWrite(addr, data)
}

func mmc1WriteRegister(m *mmc1, addr uint16, value byte) {
	for i := 0; i < 5; i++ {
		mmc1Write(m, addr, value>>i&1)
	}
}

func TestMMC1SerialWrites(t *testing.T) {
	rom := buildROM(8, 2, 0x10, 0) // mapper 1
	cart, _ := NewFromBytes(rom)
	m := cart.Mapper.(*mmc1)

	// Select PRG mode 3 (fix last bank at $C000), mirroring vertical.
	mmc1WriteRegister(m, 0x8000, 0x0E)
	if m.control != 0x0E {
		t.Errorf("control = %02X, want 0E", m.control)
	}
	if cart.Mirroring() != MirrorVertical {
		t.Error("mirroring must follow the control register")
	}

	mmc1WriteRegister(m, 0xE000, 0x05)
	if m.prgBank != 0x05 {
		t.Errorf("prgBank = %02X, want 05", m.prgBank)
	}
}

func TestMMC1ResetBit(t *testing.T) {
	rom := buildROM(8, 2, 0x10, 0)
	cart, _ := NewFromBytes(rom)
	m := cart.Mapper.(*mmc1)

	mmc1Write(m, 0x8000, 1)
	mmc1Write(m, 0x8000, 1)
	mmc1Write(m, 0x8000, 0x80) // reset
	if m.writeCount != 0 || m.shiftRegister != 0 {
		t.Error("bit 7 write must clear the shift register")
	}
	if m.control&0x0C != 0x0C {
		t.Error("reset must restore PRG mode 3")
	}
}

func TestMMC1IgnoresConsecutiveWrites(t *testing.T) {
	rom := buildROM(8, 2, 0x10, 0)
	cart, _ := NewFromBytes(rom)
	m := cart.Mapper.(*mmc1)

	m.Clock()
	m.CPUMapWrite(0x8000, 1)
	m.CPUMapWrite(0x8000, 1) // same cycle cluster: ignored
	if m.writeCount != 1 {
		t.Errorf("writeCount = %d, want 1", m.writeCount)
	}
}

func TestMMC3Banking(t *testing.T) {
	rom := buildROM(8, 8, 0x40, 0) // mapper 4: 16 x 8 KiB PRG, 64 x 1 KiB CHR
	for bank := 0; bank < 16; bank++ {
		rom[16+bank*8192] = byte(bank)
	}
	cart, _ := NewFromBytes(rom)
	m := cart.Mapper.(*mmc3)

	// Last bank fixed at $E000, second-to-last at $C000 by default.
	if got, _ := m.CPUMapRead(0xE000); got != 15 {
		t.Errorf("$E000 bank = %d, want 15", got)
	}
	if got, _ := m.CPUMapRead(0xC000); got != 14 {
		t.Errorf("$C000 bank = %d, want 14", got)
	}

	// Map R6 -> bank 3 at $8000.
	m.CPUMapWrite(0x8000, 6)
	m.CPUMapWrite(0x8001, 3)
	if got, _ := m.CPUMapRead(0x8000); got != 3 {
		t.Errorf("$8000 bank = %d, want 3", got)
	}

	// PRG mode flip swaps $8000 and $C000.
	m.CPUMapWrite(0x8000, 6|0x40)
	if got, _ := m.CPUMapRead(0xC000); got != 3 {
		t.Errorf("$C000 bank after flip = %d, want 3", got)
	}
	if got, _ := m.CPUMapRead(0x8000); got != 14 {
		t.Errorf("$8000 bank after flip = %d, want 14", got)
	}
}

// clockA12Low simulates the PPU holding A12 low for a few CPU cycles
// of background fetches before a sprite-table fetch raises it.
func clockA12Low(m *mmc3, cpuCycles int) {
	m.PPUMapRead(0x0000)
	for i := 0; i < cpuCycles; i++ {
		m.Clock()
	}
}

func TestMMC3ScanlineIRQ(t *testing.T) {
	rom := buildROM(8, 8, 0x40, 0)
	cart, _ := NewFromBytes(rom)
	m := cart.Mapper.(*mmc3)

	m.CPUMapWrite(0xC000, 2) // latch
	m.CPUMapWrite(0xC001, 0) // reload
	m.CPUMapWrite(0xE001, 0) // IRQ enable

	// First filtered edge reloads the counter (2), the next two count
	// it down to zero and assert the IRQ.
	for i := 0; i < 3; i++ {
		if m.IRQPending() {
			t.Fatalf("IRQ asserted after %d edges", i)
		}
		clockA12Low(m, 4)
		m.PPUMapRead(0x1000)
	}
	if !m.IRQPending() {
		t.Fatal("IRQ must assert when the counter reaches zero")
	}

	m.CPUMapWrite(0xE000, 0)
	if m.IRQPending() {
		t.Error("IRQ disable must acknowledge the line")
	}
}

func TestMMC3A12Filter(t *testing.T) {
	rom := buildROM(8, 8, 0x40, 0)
	cart, _ := NewFromBytes(rom)
	m := cart.Mapper.(*mmc3)

	m.CPUMapWrite(0xC000, 0)
	m.CPUMapWrite(0xC001, 0)
	m.CPUMapWrite(0xE001, 0)

	// Rapid A12 toggles without the low time do not clock the counter.
	for i := 0; i < 10; i++ {
		m.PPUMapRead(0x0000)
		m.PPUMapRead(0x1000)
	}
	if m.IRQPending() {
		t.Error("unfiltered A12 toggles must not clock the IRQ counter")
	}
}

func TestMMC3MirroringControl(t *testing.T) {
	rom := buildROM(8, 8, 0x41, 0) // vertical from the header
	cart, _ := NewFromBytes(rom)

	cart.CPUWrite(0xA000, 1)
	if cart.Mirroring() != MirrorHorizontal {
		t.Error("MMC3 $A000 odd bit selects horizontal")
	}
	cart.CPUWrite(0xA000, 0)
	if cart.Mirroring() != MirrorVertical {
		t.Error("MMC3 $A000 even bit selects vertical")
	}
}

func TestAxROMBankAndMirroring(t *testing.T) {
	rom := buildROM(8, 0, 0x70, 0) // mapper 7: 4 x 32 KiB banks
	for bank := 0; bank < 4; bank++ {
		rom[16+bank*32768] = byte(0xA0 + bank)
	}
	cart, _ := NewFromBytes(rom)

	if got, _ := cart.CPURead(0x8000); got != 0xA0 {
		t.Errorf("initial bank = %02X", got)
	}
	cart.CPUWrite(0x8000, 0x02)
	if got, _ := cart.CPURead(0x8000); got != 0xA2 {
		t.Errorf("bank 2 = %02X", got)
	}
	if cart.Mirroring() != MirrorOneScreenLower {
		t.Error("default one-screen lower")
	}
	cart.CPUWrite(0x8000, 0x12)
	if cart.Mirroring() != MirrorOneScreenUpper {
		t.Error("bit 4 selects the upper nametable")
	}
}

func TestColorDreamsBanking(t *testing.T) {
	rom := buildROM(4, 2, 0xB0, 0) // mapper 11: 2 x 32 KiB PRG, 2 x 8 KiB CHR
	rom[16] = 0xD0
	rom[16+32768] = 0xD1
	rom[16+4*16384] = 0xE0
	rom[16+4*16384+8192] = 0xE1
	cart, _ := NewFromBytes(rom)

	cart.CPUWrite(0x8000, 0x11) // PRG bank 1, CHR bank 1
	if got, _ := cart.CPURead(0x8000); got != 0xD1 {
		t.Errorf("PRG bank = %02X", got)
	}
	if got, _ := cart.PPURead(0x0000); got != 0xE1 {
		t.Errorf("CHR bank = %02X", got)
	}
}

func TestMapperStateRoundTrip(t *testing.T) {
	rom := buildROM(4, 0, 0x20, 0)
	cart, _ := NewFromBytes(rom)
	cart.CPUWrite(0x8000, 2)

	state := cart.SaveState()

	cart2, _ := NewFromBytes(rom)
	if err := cart2.LoadState(state); err != nil {
		t.Fatal(err)
	}
	if cart2.Mapper.(*uxrom).prgBankSelect != 2 {
		t.Error("mapper state must round-trip")
	}
}
