package apu

import "testing"

func TestLengthCounterLoad(t *testing.T) {
	a := New()

	a.CPUWrite(0x4015, 0x01) // enable pulse 1
	a.CPUWrite(0x4003, 0x08) // length index 1 -> 254
	if a.pulse1.lengthCounter != 254 {
		t.Errorf("length counter = %d, want 254", a.pulse1.lengthCounter)
	}

	// Disabled channels ignore length loads.
	a.CPUWrite(0x4015, 0x00)
	if a.pulse1.lengthCounter != 0 {
		t.Error("disabling a channel must clear its length counter")
	}
	a.CPUWrite(0x4003, 0x08)
	if a.pulse1.lengthCounter != 0 {
		t.Error("disabled channel must not load its length counter")
	}
}

func TestStatusRegister(t *testing.T) {
	a := New()

	a.CPUWrite(0x4015, 0x0F)
	a.CPUWrite(0x4003, 0x08)
	a.CPUWrite(0x4007, 0x08)
	a.CPUWrite(0x400B, 0x08)
	a.CPUWrite(0x400F, 0x08)

	if got := a.CPURead(0x4015) & 0x0F; got != 0x0F {
		t.Errorf("$4015 = %02X, want low nibble 0F", got)
	}

	a.CPUWrite(0x4015, 0x00)
	if got := a.CPURead(0x4015) & 0x0F; got != 0 {
		t.Errorf("$4015 after disable = %02X", got)
	}
}

func TestFrameIRQ(t *testing.T) {
	a := New()
	a.CPUWrite(0x4017, 0x00) // 4-step mode, IRQ enabled

	// Run one full 4-step sequence: 14915 APU cycles = 2*14915 CPU.
	for i := 0; i < 2*14916; i++ {
		a.Clock()
	}
	if !a.IRQLine() {
		t.Fatal("4-step sequence end must assert the frame IRQ")
	}

	// Reading $4015 reports and clears it.
	if a.CPURead(0x4015)&0x40 == 0 {
		t.Error("$4015 must report the frame IRQ")
	}
	if a.IRQLine() {
		t.Error("$4015 read must clear the frame IRQ")
	}
}

func TestFrameIRQInhibit(t *testing.T) {
	a := New()
	a.CPUWrite(0x4017, 0x40) // IRQ inhibit

	for i := 0; i < 2*14916; i++ {
		a.Clock()
	}
	if a.IRQLine() {
		t.Error("inhibited frame counter must not assert IRQ")
	}

	// Setting inhibit also acknowledges a pending IRQ.
	a.CPUWrite(0x4017, 0x00)
	for i := 0; i < 2*14916; i++ {
		a.Clock()
	}
	if !a.IRQLine() {
		t.Fatal("expected pending IRQ")
	}
	a.CPUWrite(0x4017, 0x40)
	if a.IRQLine() {
		t.Error("writing $4017 with bit 6 must clear the frame IRQ")
	}
}

func TestFiveStepModeNoIRQ(t *testing.T) {
	a := New()
	a.CPUWrite(0x4017, 0x80)

	for i := 0; i < 2*18642; i++ {
		a.Clock()
	}
	if a.IRQLine() {
		t.Error("5-step mode never asserts the frame IRQ")
	}
}

func TestLengthCounterClockedByHalfFrames(t *testing.T) {
	a := New()
	a.CPUWrite(0x4017, 0x40) // keep IRQ quiet
	a.CPUWrite(0x4015, 0x01)
	a.CPUWrite(0x4003, 0x18) // length index 3 -> 2

	if a.pulse1.lengthCounter != 2 {
		t.Fatalf("length counter = %d, want 2", a.pulse1.lengthCounter)
	}

	// Two half-frame clocks drain it.
	for i := 0; i < 2*14916; i++ {
		a.Clock()
	}
	if a.pulse1.lengthCounter != 0 {
		t.Errorf("length counter = %d after a full sequence, want 0", a.pulse1.lengthCounter)
	}
}

func TestEnvelopeDecay(t *testing.T) {
	a := New()
	a.CPUWrite(0x4015, 0x01)
	a.CPUWrite(0x4000, 0x00) // envelope, period 0
	a.CPUWrite(0x4003, 0x08) // restarts envelope

	a.clockQuarterFrame() // start flag -> counter 15
	if a.pulse1.envelopeCounter != 15 {
		t.Fatalf("envelope = %d, want 15", a.pulse1.envelopeCounter)
	}
	a.clockQuarterFrame()
	if a.pulse1.envelopeCounter != 14 {
		t.Errorf("envelope = %d, want 14", a.pulse1.envelopeCounter)
	}
}

func TestPulseSweepNegateModes(t *testing.T) {
	a := New()

	a.pulse1.timer = 0x100
	a.pulse1.sweepNegate = true
	a.pulse1.sweepShift = 2
	if got := a.pulse1.sweepTarget(); got != 0x100-0x40-1 {
		t.Errorf("pulse 1 negate target = %X, want one's complement", got)
	}

	a.pulse2.timer = 0x100
	a.pulse2.sweepNegate = true
	a.pulse2.sweepShift = 2
	if got := a.pulse2.sweepTarget(); got != 0x100-0x40 {
		t.Errorf("pulse 2 negate target = %X", got)
	}
}

func TestSweepOverflowMutes(t *testing.T) {
	a := New()
	a.CPUWrite(0x4015, 0x01)
	a.CPUWrite(0x4000, 0x3F) // constant volume 15, duty 0
	a.CPUWrite(0x4002, 0xFF)
	a.CPUWrite(0x4003, 0x0F) // timer 0x7FF

	p := a.pulse1
	p.sweepShift = 0 // target = 2*timer > 0x7FF
	if !p.sweepMuted() {
		t.Error("sweep target past 0x7FF must mute the channel")
	}
	if p.output() != 0 {
		t.Error("muted channel must output 0")
	}
}

func TestNoiseLFSR(t *testing.T) {
	a := New()
	n := a.noise
	if n.shiftRegister != 1 {
		t.Fatal("LFSR must seed to 1")
	}
	n.timerCounter = 0
	n.clockTimer()
	// feedback = bit1 ^ bit0 of 1 = 1 -> shifts into bit 14
	if n.shiftRegister != 0x4000 {
		t.Errorf("LFSR = %04X, want 4000", n.shiftRegister)
	}
}

func TestMixerSilenceIsZero(t *testing.T) {
	a := New()
	if a.output() != 0 {
		t.Error("all channels silent must mix to 0")
	}
}

func TestSampleGeneration(t *testing.T) {
	a := New()
	for i := 0; i < 1789773/10; i++ {
		a.Clock()
	}
	// A tenth of a second of CPU clocks should yield ~4410 samples.
	if n := len(a.sampleBuffer); n < 4000 || n > 5000 {
		t.Errorf("generated %d samples, want about 4410", n)
	}

	buf := make([]byte, 400)
	n, err := a.ReadSamples(buf)
	if err != nil || n != 400 {
		t.Errorf("ReadSamples = %d, %v", n, err)
	}
}
