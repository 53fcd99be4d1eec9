package apu

type PulseState struct {
	Enabled, IsPulse1, LengthCounterHalt, ConstantVolume, SweepEnabled, SweepNegate, SweepReloadFlag, EnvelopeStartFlag bool
	DutyCycle, Volume, SweepPeriod, SweepShift, LengthCounter, DutySequencer, SweepCounter                              byte
	EnvelopeDivider, EnvelopeCounter                                                                                    byte
	Timer, TimerCounter                                                                                                 uint16
}

type TriangleState struct {
	Enabled, LengthCounterHalt, LinearCounterReloadFlag        bool
	LinearCounterLoad, LinearCounter, LengthCounter, Sequencer byte
	Timer, TimerCounter                                        uint16
}

type NoiseState struct {
	Enabled, LengthCounterHalt, ConstantVolume, Mode, EnvelopeStartFlag  bool
	Volume, TimerPeriod, LengthCounter, EnvelopeDivider, EnvelopeCounter byte
	ShiftRegister, TimerCounter                                          uint16
}

type DMCState struct {
	Enabled, IrqEnabled, Loop, SampleBufferEmpty, IrqPending           bool
	RateIndex, OutputLevel, ShiftRegister, BitsRemaining, SampleBuffer byte
	Timer, SampleAddress, SampleLength, CurrentAddress, BytesRemaining uint16
}

type State struct {
	Pulse1, Pulse2               PulseState
	Triangle                     TriangleState
	Noise                        NoiseState
	DMC                          DMCState
	Cycle, FrameCounter          uint64
	SequenceMode                 byte
	IrqInhibit, FrameIRQ, DmcIRQ bool
	SampleCycleCounter           float64
}

func (p *PulseChannel) saveState() PulseState {
	return PulseState{
		p.enabled, p.isPulse1, p.lengthCounterHalt, p.constantVolume, p.sweepEnabled, p.sweepNegate, p.sweepReloadFlag, p.envelopeStartFlag,
		p.dutyCycle, p.volume, p.sweepPeriod, p.sweepShift, p.lengthCounter, p.dutySequencer, p.sweepCounter,
		p.envelopeDivider, p.envelopeCounter,
		p.timer, p.timerCounter,
	}
}

func (p *PulseChannel) loadState(s PulseState) {
	p.enabled, p.isPulse1, p.lengthCounterHalt, p.constantVolume, p.sweepEnabled, p.sweepNegate, p.sweepReloadFlag, p.envelopeStartFlag = s.Enabled, s.IsPulse1, s.LengthCounterHalt, s.ConstantVolume, s.SweepEnabled, s.SweepNegate, s.SweepReloadFlag, s.EnvelopeStartFlag
	p.dutyCycle, p.volume, p.sweepPeriod, p.sweepShift, p.lengthCounter, p.dutySequencer, p.sweepCounter = s.DutyCycle, s.Volume, s.SweepPeriod, s.SweepShift, s.LengthCounter, s.DutySequencer, s.SweepCounter
	p.envelopeDivider, p.envelopeCounter = s.EnvelopeDivider, s.EnvelopeCounter
	p.timer, p.timerCounter = s.Timer, s.TimerCounter
}

func (t *TriangleChannel) saveState() TriangleState {
	return TriangleState{
		t.enabled, t.lengthCounterHalt, t.linearCounterReloadFlag,
		t.linearCounterLoad, t.linearCounter, t.lengthCounter, t.sequencer,
		t.timer, t.timerCounter,
	}
}

func (t *TriangleChannel) loadState(s TriangleState) {
	t.enabled, t.lengthCounterHalt, t.linearCounterReloadFlag = s.Enabled, s.LengthCounterHalt, s.LinearCounterReloadFlag
	t.linearCounterLoad, t.linearCounter, t.lengthCounter, t.sequencer = s.LinearCounterLoad, s.LinearCounter, s.LengthCounter, s.Sequencer
	t.timer, t.timerCounter = s.Timer, s.TimerCounter
}

func (n *NoiseChannel) saveState() NoiseState {
	return NoiseState{
		n.enabled, n.lengthCounterHalt, n.constantVolume, n.mode, n.envelopeStartFlag,
		n.volume, n.timerPeriod, n.lengthCounter, n.envelopeDivider, n.envelopeCounter,
		n.shiftRegister, n.timerCounter,
	}
}

func (n *NoiseChannel) loadState(s NoiseState) {
	n.enabled, n.lengthCounterHalt, n.constantVolume, n.mode, n.envelopeStartFlag = s.Enabled, s.LengthCounterHalt, s.ConstantVolume, s.Mode, s.EnvelopeStartFlag
	n.volume, n.timerPeriod, n.lengthCounter, n.envelopeDivider, n.envelopeCounter = s.Volume, s.TimerPeriod, s.LengthCounter, s.EnvelopeDivider, s.EnvelopeCounter
	n.shiftRegister, n.timerCounter = s.ShiftRegister, s.TimerCounter
}

func (d *DMCChannel) saveState() DMCState {
	return DMCState{
		d.enabled, d.irqEnabled, d.loop, d.sampleBufferEmpty, d.irqPending,
		d.rateIndex, d.outputLevel, d.shiftRegister, d.bitsRemaining, d.sampleBuffer,
		d.timer, d.sampleAddress, d.sampleLength, d.currentAddress, d.bytesRemaining,
	}
}

func (d *DMCChannel) loadState(s DMCState) {
	d.enabled, d.irqEnabled, d.loop, d.sampleBufferEmpty, d.irqPending = s.Enabled, s.IrqEnabled, s.Loop, s.SampleBufferEmpty, s.IrqPending
	d.rateIndex, d.outputLevel, d.shiftRegister, d.bitsRemaining, d.sampleBuffer = s.RateIndex, s.OutputLevel, s.ShiftRegister, s.BitsRemaining, s.SampleBuffer
	d.timer, d.sampleAddress, d.sampleLength, d.currentAddress, d.bytesRemaining = s.Timer, s.SampleAddress, s.SampleLength, s.CurrentAddress, s.BytesRemaining
}

func (a *APU) SaveState() State {
	return State{
		a.pulse1.saveState(), a.pulse2.saveState(), a.triangle.saveState(), a.noise.saveState(), a.dmc.saveState(),
		a.cycle, a.frameCounter, a.sequenceMode, a.irqInhibit, a.frameIRQ, a.dmcIRQ, a.sampleCycleCounter,
	}
}

func (a *APU) LoadState(s State) {
	a.pulse1.loadState(s.Pulse1)
	a.pulse2.loadState(s.Pulse2)
	a.triangle.loadState(s.Triangle)
	a.noise.loadState(s.Noise)
	a.dmc.loadState(s.DMC)
	a.cycle, a.frameCounter, a.sequenceMode, a.irqInhibit, a.frameIRQ, a.dmcIRQ, a.sampleCycleCounter = s.Cycle, s.FrameCounter, s.SequenceMode, s.IrqInhibit, s.FrameIRQ, s.DmcIRQ, s.SampleCycleCounter
}
