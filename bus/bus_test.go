package bus

import (
	"testing"
)

// buildROM assembles an iNES image with the given mapper whose reset
// vector points at $8000.
func buildROM(prgBanks, chrBanks int, mapperID byte, prg []byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, byte(prgBanks), byte(chrBanks), mapperID << 4, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prgData := make([]byte, prgBanks*16384)
	copy(prgData, prg)
	// Reset vector -> $8000 in the last bank.
	prgData[len(prgData)-4] = 0x00
	prgData[len(prgData)-3] = 0x80
	data := append([]byte{}, header...)
	data = append(data, prgData...)
	data = append(data, make([]byte, chrBanks*8192)...)
	return data
}

// nopROM is an NROM image running an endless stream of NOPs.
func nopROM() []byte {
	prg := make([]byte, 16384)
	for i := range prg {
		prg[i] = 0xEA
	}
	return buildROM(1, 1, 0, prg)
}

func settle(b *Bus) {
	for !b.CPU().Idle() {
		b.Clock()
	}
}

func TestNewFromROM(t *testing.T) {
	b, err := NewFromROM(nopROM())
	if err != nil {
		t.Fatal(err)
	}
	if b.Cartridge() == nil {
		t.Fatal("cartridge not inserted")
	}
	if b.CPU().PC != 0x8000 {
		t.Errorf("PC=%04X, want reset vector 8000", b.CPU().PC)
	}
}

func TestNewFromROMRejectsGarbage(t *testing.T) {
	if _, err := NewFromROM([]byte("definitely not a rom")); err == nil {
		t.Error("bad image must fail construction")
	}
}

func TestRAMMirroring(t *testing.T) {
	b, _ := NewFromROM(nopROM())

	b.Write(0x0005, 0x42)
	for _, addr := range []uint16{0x0005, 0x0805, 0x1005, 0x1805} {
		if got := b.Read(addr); got != 0x42 {
			t.Errorf("read %04X = %02X, want 42", addr, got)
		}
	}

	b.Write(0x1805, 0x24)
	if got := b.Read(0x0005); got != 0x24 {
		t.Error("mirrored write must land in the same cell")
	}
}

func TestPRGWritesReachMapper(t *testing.T) {
	prg := make([]byte, 4*16384)
	for bank := 0; bank < 4; bank++ {
		prg[bank*16384] = byte(0xB0 + bank)
	}
	rom := buildROM(4, 0, 2, prg) // UxROM
	b, err := NewFromROM(rom)
	if err != nil {
		t.Fatal(err)
	}

	// A write into ROM space must latch the bank register.
	b.Write(0x8123, 1)
	if got := b.Read(0x8000); got != 0xB1 {
		t.Errorf("after ROM-space write, $8000 = %02X, want B1", got)
	}
	b.Write(0xFFFF, 3)
	if got := b.Read(0x8000); got != 0xB3 {
		t.Errorf("after ROM-space write, $8000 = %02X, want B3", got)
	}
}

func TestOAMDMACyclesAndCopy(t *testing.T) {
	b, _ := NewFromROM(nopROM())
	settle(b)
	c := b.CPU()

	for i := 0; i < 256; i++ {
		b.Write(uint16(0x0200+i), byte(i))
	}
	b.Write(0x2003, 0x00) // OAMADDR = 0

	c.TotalCycles = 100 // even start
	b.Write(0x4014, 0x02)

	start := c.TotalCycles
	for !c.Idle() {
		b.Clock()
	}
	if got := c.TotalCycles - start; got != 513 {
		t.Errorf("DMA on even cycle consumed %d cycles, want 513", got)
	}

	// Spot-check the copy through OAMDATA.
	for _, i := range []int{0, 1, 127, 255} {
		b.Write(0x2003, byte(i))
		want := byte(i)
		if i%4 == 2 {
			want &= 0xE3 // attribute byte mask
		}
		if got := b.Read(0x2004); got != want {
			t.Errorf("OAM[%d] = %02X, want %02X", i, got, want)
		}
	}

	// Odd start costs the extra alignment cycle.
	c.TotalCycles = 101
	b.Write(0x4014, 0x02)
	start = c.TotalCycles
	for !c.Idle() {
		b.Clock()
	}
	if got := c.TotalCycles - start; got != 514 {
		t.Errorf("DMA on odd cycle consumed %d cycles, want 514", got)
	}
}

func TestControllerThroughBus(t *testing.T) {
	b, _ := NewFromROM(nopROM())

	b.SetButtons1([8]bool{true, false, false, true}) // A and Start
	b.Write(0x4016, 1)
	b.Write(0x4016, 0)

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := b.Read(0x4016) & 1; got != w {
			t.Errorf("pad bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestOpenBusReads(t *testing.T) {
	b, _ := NewFromROM(nopROM())

	v := b.Read(0x8000) // drives 0xEA onto the bus
	if got := b.Read(0x4018); got != v {
		t.Errorf("unmapped read = %02X, want last bus value %02X", got, v)
	}
}

func TestStepFrame(t *testing.T) {
	b, _ := NewFromROM(nopROM())

	b.StepFrame()
	if !b.FrameReady() {
		t.Fatal("StepFrame must leave a frame ready")
	}
	frame := b.TakeFrame()
	if len(frame) != 256*240 {
		t.Errorf("frame length %d", len(frame))
	}
	if b.FrameReady() {
		t.Error("TakeFrame must clear the ready flag")
	}
}

func TestProgramExecution(t *testing.T) {
	// LDA #$42; STA $0002; JMP $8005
	prg := make([]byte, 16384)
	copy(prg, []byte{
		0xA9, 0x42, // LDA #$42
		0x8D, 0x02, 0x00, // STA $0002
		0x4C, 0x05, 0x80, // JMP $8005
	})
	b, err := NewFromROM(buildROM(1, 1, 0, prg))
	if err != nil {
		t.Fatal(err)
	}

	b.StepFrame()
	if got := b.Read(0x0002); got != 0x42 {
		t.Errorf("$0002 = %02X, want 42", got)
	}
}

func TestNMIDeliveredOnVBlank(t *testing.T) {
	// Enable NMI, then spin. The NMI handler at $9000 stores $AB in
	// $0010 and parks.
	prg := make([]byte, 16384)
	copy(prg, []byte{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000 (NMI enable)
		0x4C, 0x05, 0x80, // JMP $8005
	})
	handler := []byte{
		0xA9, 0xAB, // LDA #$AB
		0x8D, 0x10, 0x00, // STA $0010
		0x4C, 0x05, 0x90, // JMP $9005
	}
	copy(prg[0x1000:], handler) // $9000
	// NMI vector -> $9000
	prg[0x3FFA] = 0x00
	prg[0x3FFB] = 0x90

	b, err := NewFromROM(buildROM(1, 1, 0, prg))
	if err != nil {
		t.Fatal(err)
	}

	// Two frames is more than enough to reach vblank and the handler.
	b.StepFrame()
	b.TakeFrame()
	b.StepFrame()

	if got := b.Read(0x0010); got != 0xAB {
		t.Errorf("$0010 = %02X, want AB (NMI handler ran)", got)
	}
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	b, _ := NewFromROM(nopROM())
	b.Write(0x0123, 0x55)
	b.StepFrame()

	path := t.TempDir() + "/roundtrip.state"
	if err := b.SaveState(path); err != nil {
		t.Fatal(err)
	}

	b2, _ := NewFromROM(nopROM())
	if err := b2.LoadState(path); err != nil {
		t.Fatal(err)
	}
	if got := b2.Read(0x0123); got != 0x55 {
		t.Errorf("restored RAM = %02X, want 55", got)
	}
	if b2.SystemClocks != b.SystemClocks {
		t.Error("system clock must round-trip")
	}
	if b2.CPU().PC != b.CPU().PC {
		t.Error("CPU state must round-trip")
	}
}

func TestStepInstruction(t *testing.T) {
	b, _ := NewFromROM(nopROM())
	settle(b)

	pc := b.CPU().PC
	b.StepInstruction()
	if b.CPU().PC != pc+1 {
		t.Errorf("PC advanced %04X -> %04X, want one NOP", pc, b.CPU().PC)
	}
}
