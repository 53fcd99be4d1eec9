package apu

// BusReader is the slice of the system bus the DMC sample fetcher
// needs.
type BusReader interface {
	Read(addr uint16) byte
}

// APU is the 2A03's audio unit: two pulse channels, triangle, noise,
// DMC, and the frame counter that paces envelopes, sweeps and length
// counters. Clock is called once per CPU cycle.
type APU struct {
	pulse1   *PulseChannel
	pulse2   *PulseChannel
	triangle *TriangleChannel
	noise    *NoiseChannel
	dmc      *DMCChannel

	cycle uint64
	bus   BusReader

	frameCounter uint64
	sequenceMode byte // 0: 4-step, 1: 5-step
	irqInhibit   bool
	frameIRQ     bool
	dmcIRQ       bool

	sampleRate         float64
	cpuClockRate       float64
	sampleCycleCounter float64
	sampleBuffer       []float32
}

// New creates a new APU instance.
func New() *APU {
	a := &APU{
		pulse1:       &PulseChannel{isPulse1: true},
		pulse2:       &PulseChannel{},
		triangle:     &TriangleChannel{},
		noise:        &NoiseChannel{},
		dmc:          &DMCChannel{},
		sampleRate:   44100.0,
		cpuClockRate: 1789773.0,
		sampleBuffer: make([]float32, 0, 44100),
	}
	a.noise.shiftRegister = 1
	return a
}

// ConnectBus gives the DMC its window into CPU memory.
func (a *APU) ConnectBus(bus BusReader) {
	a.bus = bus
}

// Reset silences every channel and clears the IRQ lines.
func (a *APU) Reset() {
	a.pulse1.setEnabled(false)
	a.pulse2.setEnabled(false)
	a.triangle.setEnabled(false)
	a.noise.setEnabled(false)
	a.dmc.setEnabled(false)
	a.frameCounter = 0
	a.frameIRQ = false
	a.dmcIRQ = false
	a.dmc.irqPending = false
}

// IRQLine reports the APU's combined IRQ output (frame counter + DMC).
func (a *APU) IRQLine() bool {
	return a.frameIRQ || a.dmcIRQ
}

// Clock advances the APU by one CPU cycle.
func (a *APU) Clock() {
	// The triangle timer runs at CPU rate, the others at half rate.
	a.triangle.clockTimer()
	if a.cycle%2 == 1 {
		a.pulse1.clockTimer()
		a.pulse2.clockTimer()
		a.noise.clockTimer()
		a.dmc.clockTimer(a.bus)
	}

	if a.dmc.irqPending {
		a.dmcIRQ = true
	}

	if a.cycle%2 == 0 {
		a.clockFrameCounter()
	}

	// Downsample to the host rate.
	a.sampleCycleCounter += a.sampleRate / a.cpuClockRate
	if a.sampleCycleCounter >= 1 {
		a.sampleCycleCounter--
		a.sampleBuffer = append(a.sampleBuffer, a.output())
	}

	a.cycle++
}

// clockFrameCounter steps the 4- or 5-step sequence, counted in APU
// (half-CPU) cycles.
func (a *APU) clockFrameCounter() {
	a.frameCounter++

	if a.sequenceMode == 0 {
		switch a.frameCounter {
		case 3729:
			a.clockQuarterFrame()
		case 7457:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case 11186:
			a.clockQuarterFrame()
		case 14915:
			a.clockQuarterFrame()
			a.clockHalfFrame()
			if !a.irqInhibit {
				a.frameIRQ = true
			}
			a.frameCounter = 0
		}
	} else {
		switch a.frameCounter {
		case 3729:
			a.clockQuarterFrame()
		case 7457:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case 11186:
			a.clockQuarterFrame()
		case 18641:
			a.clockQuarterFrame()
			a.clockHalfFrame()
			a.frameCounter = 0
		}
	}
}

func (a *APU) clockQuarterFrame() {
	a.pulse1.clockEnvelope()
	a.pulse2.clockEnvelope()
	a.triangle.clockLinear()
	a.noise.clockEnvelope()
}

func (a *APU) clockHalfFrame() {
	a.pulse1.clockLength()
	a.pulse1.clockSweep()
	a.pulse2.clockLength()
	a.pulse2.clockSweep()
	a.triangle.clockLength()
	a.noise.clockLength()
}

// output mixes the channels with the linear approximation of the
// 2A03's resistor network.
func (a *APU) output() float32 {
	p1 := a.pulse1.output()
	p2 := a.pulse2.output()
	t := a.triangle.output()
	n := a.noise.output()
	d := a.dmc.output()

	pulseOut := 0.00752 * float32(p1+p2)
	tndOut := 0.00851*float32(t) + 0.00494*float32(n) + 0.00335*float32(d)
	return pulseOut + tndOut
}

// CPURead handles reads of the APU's registers; only $4015 responds.
func (a *APU) CPURead(addr uint16) byte {
	var data byte
	if addr != 0x4015 {
		return 0
	}

	if a.pulse1.lengthCounter > 0 {
		data |= 0x01
	}
	if a.pulse2.lengthCounter > 0 {
		data |= 0x02
	}
	if a.triangle.lengthCounter > 0 {
		data |= 0x04
	}
	if a.noise.lengthCounter > 0 {
		data |= 0x08
	}
	if a.dmc.bytesRemaining > 0 {
		data |= 0x10
	}
	if a.frameIRQ {
		data |= 0x40
	}
	if a.dmcIRQ {
		data |= 0x80
	}

	// The frame interrupt flag clears on read; the DMC flag does not.
	a.frameIRQ = false
	return data
}

// CPUWrite handles writes to the APU's registers.
func (a *APU) CPUWrite(addr uint16, data byte) {
	switch {
	case addr >= 0x4000 && addr <= 0x4003:
		a.pulse1.writeRegister(addr&0x03, data)
	case addr >= 0x4004 && addr <= 0x4007:
		a.pulse2.writeRegister(addr&0x03, data)
	case addr >= 0x4008 && addr <= 0x400B:
		a.triangle.writeRegister(addr&0x03, data)
	case addr >= 0x400C && addr <= 0x400F:
		a.noise.writeRegister(addr&0x03, data)
	case addr >= 0x4010 && addr <= 0x4013:
		a.dmc.writeRegister(addr&0x03, data)

	case addr == 0x4015:
		a.pulse1.setEnabled(data&0x01 != 0)
		a.pulse2.setEnabled(data&0x02 != 0)
		a.triangle.setEnabled(data&0x04 != 0)
		a.noise.setEnabled(data&0x08 != 0)
		a.dmc.setEnabled(data&0x10 != 0)
		a.dmcIRQ = false
		a.dmc.irqPending = false

	case addr == 0x4017:
		a.sequenceMode = data >> 7 & 1
		a.irqInhibit = data>>6&1 == 1
		if a.irqInhibit {
			a.frameIRQ = false
		}
		a.frameCounter = 0
		if a.sequenceMode == 1 {
			// 5-step mode clocks the units immediately.
			a.clockQuarterFrame()
			a.clockHalfFrame()
		}
	}
}

// ReadSamples drains generated samples into a 16-bit stereo byte
// buffer; it has the shape of io.Reader so an audio player can stream
// from it.
func (a *APU) ReadSamples(p []byte) (int, error) {
	numSamples := len(p) / 4 // 2 channels x 2 bytes
	if numSamples > len(a.sampleBuffer) {
		numSamples = len(a.sampleBuffer)
	}

	written := 0
	for i := 0; i < numSamples; i++ {
		s := int16(a.sampleBuffer[i] * 32767)
		p[written] = byte(s)
		p[written+1] = byte(s >> 8)
		p[written+2] = byte(s)
		p[written+3] = byte(s >> 8)
		written += 4
	}

	a.sampleBuffer = a.sampleBuffer[numSamples:]
	return written, nil
}

// Samples hands out and clears the pending mono sample buffer.
func (a *APU) Samples() []float32 {
	out := a.sampleBuffer
	a.sampleBuffer = a.sampleBuffer[len(a.sampleBuffer):]
	return out
}
