package bus

import (
	"github.com/meadori/dotnes/apu"
	"github.com/meadori/dotnes/cartridge"
	"github.com/meadori/dotnes/controller"
	"github.com/meadori/dotnes/cpu"
	"github.com/meadori/dotnes/ppu"
)

// Bus owns the whole machine: work RAM, the three chips, the pads and
// the cartridge. One Clock call advances the system by a single PPU
// dot; the CPU runs every third dot (the NTSC 3:1 ratio) and the APU
// and mapper tick alongside it. Interrupt lines are sampled at the end
// of each CPU cycle.
type Bus struct {
	cpu         *cpu.CPU
	PPU         *ppu.PPU
	APU         *apu.APU
	Controller1 *controller.Controller
	Controller2 *controller.Controller
	cart        *cartridge.Cartridge

	ram          [2048]byte
	SystemClocks uint64
	openBus      byte // last value driven on the CPU data bus
	nmiPrevious  bool

	paused        bool
	stepRequested bool
}

// New creates a Bus with every component attached but no cartridge.
func New() *Bus {
	b := &Bus{
		cpu:         cpu.New(),
		PPU:         ppu.New(),
		APU:         apu.New(),
		Controller1: controller.New(),
		Controller2: controller.New(),
	}
	b.cpu.ConnectBus(b)
	b.APU.ConnectBus(b)
	return b
}

// NewFromROM builds a ready-to-run machine from a raw iNES image.
func NewFromROM(data []byte) (*Bus, error) {
	cart, err := cartridge.NewFromBytes(data)
	if err != nil {
		return nil, err
	}
	b := New()
	b.LoadCartridge(cart)
	return b, nil
}

// LoadCartridge inserts a cartridge and resets the machine.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.PPU.ConnectCartridge(cart)
	b.Reset()
}

// Cartridge returns the inserted cartridge, if any.
func (b *Bus) Cartridge() *cartridge.Cartridge {
	return b.cart
}

// CPU exposes the processor for debuggers and test harnesses.
func (b *Bus) CPU() *cpu.CPU {
	return b.cpu
}

// Reset pulls the reset line on every component.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.PPU.Reset()
	b.APU.Reset()
	b.SystemClocks = 0
	b.nmiPrevious = false
}

// Clock advances the simulation by one PPU dot. The sub-step order is
// fixed: PPU first, then on CPU cycle boundaries the CPU's bus access,
// the APU, the mapper, and finally the interrupt line sampling.
func (b *Bus) Clock() {
	b.PPU.Clock()

	if b.SystemClocks%3 == 0 {
		b.cpu.Clock()
		b.APU.Clock()
		if b.cart != nil {
			b.cart.Mapper.Clock()
		}

		// The CPU latches a rising edge of the PPU's NMI output and
		// samples the IRQ level from the APU and the mapper.
		nmi := b.PPU.NMILine()
		if nmi && !b.nmiPrevious {
			b.cpu.TriggerNMI()
		}
		b.nmiPrevious = nmi

		irq := b.APU.IRQLine()
		if b.cart != nil && b.cart.Mapper.IRQPending() {
			irq = true
		}
		b.cpu.SetIRQ(irq)
	}

	b.SystemClocks++
}

// StepFrame runs the machine until the PPU finishes the current frame.
func (b *Bus) StepFrame() {
	for !b.PPU.FrameReady() {
		b.Clock()
	}
}

// StepInstruction runs the machine until the CPU reaches its next
// instruction boundary.
func (b *Bus) StepInstruction() {
	// Leave the current boundary first.
	b.Clock()
	b.Clock()
	b.Clock()
	for !b.cpu.Idle() {
		b.Clock()
	}
}

// FrameReady reports whether a completed frame awaits the host.
func (b *Bus) FrameReady() bool {
	return b.PPU.FrameReady()
}

// TakeFrame consumes the completed framebuffer (palette indices).
func (b *Bus) TakeFrame() []byte {
	return b.PPU.TakeFrame()
}

// GetFramePixels returns the current framebuffer without consuming it.
func (b *Bus) GetFramePixels() []byte {
	return b.PPU.Pixels()
}

// SetButtons1 and SetButtons2 latch host input between frames.
func (b *Bus) SetButtons1(buttons [8]bool) {
	b.Controller1.SetButtons(buttons)
}

func (b *Bus) SetButtons2(buttons [8]bool) {
	b.Controller2.SetButtons(buttons)
}

// SetController1 latches pad 1 from a packed byte, A in bit 0 through
// Right in bit 7.
func (b *Bus) SetController1(state byte) {
	b.Controller1.SetByte(state)
}

// AudioSamples drains the mono samples generated since the last call.
func (b *Bus) AudioSamples() []float32 {
	return b.APU.Samples()
}

// SetPaused stops or resumes StepFrame-driven execution.
func (b *Bus) SetPaused(paused bool) {
	b.paused = paused
}

// Paused reports the debugger pause flag.
func (b *Bus) Paused() bool {
	return b.paused
}

// RequestStep asks the front-end loop to execute one instruction while
// paused.
func (b *Bus) RequestStep() {
	b.stepRequested = true
}

// TakeStepRequest consumes a pending single-step request.
func (b *Bus) TakeStepRequest() bool {
	r := b.stepRequested
	b.stepRequested = false
	return r
}

// GetCPUState reports the CPU registers for the debugger.
func (b *Bus) GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles uint64) {
	c := b.cpu
	return c.A, c.X, c.Y, c.SP, c.P, c.PC, c.TotalCycles
}

// GetMemoryBlock copies a span of CPU address space for the debugger.
// It goes through Read, so it observes what the CPU would.
func (b *Bus) GetMemoryBlock(addr uint16, size uint16) []byte {
	out := make([]byte, size)
	for i := uint16(0); i < size; i++ {
		out[i] = b.Read(addr + i)
	}
	return out
}

// Read performs a CPU-side bus read. Unmapped regions return the last
// value driven on the bus.
func (b *Bus) Read(addr uint16) byte {
	var data byte

	switch {
	case addr <= 0x1FFF:
		data = b.ram[addr&0x07FF]

	case addr <= 0x3FFF:
		data = b.PPU.ReadRegister(addr & 0x0007)

	case addr == 0x4015:
		data = b.APU.CPURead(addr)

	case addr == 0x4016:
		data = b.Controller1.Read() | b.openBus&0xA0

	case addr == 0x4017:
		data = b.Controller2.Read() | b.openBus&0xA0

	case addr >= 0x4000 && addr <= 0x401F:
		// Write-only and unused register space reads as open bus.
		data = b.openBus

	default: // $4020-$FFFF
		var ok bool
		if b.cart != nil {
			data, ok = b.cart.CPURead(addr)
		}
		if !ok {
			data = b.openBus
		}
	}

	b.openBus = data
	return data
}

// Write performs a CPU-side bus write.
func (b *Bus) Write(addr uint16, data byte) {
	b.openBus = data

	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = data

	case addr <= 0x3FFF:
		b.PPU.WriteRegister(addr&0x0007, data)

	case addr == 0x4014:
		b.oamDMA(data)

	case addr == 0x4016:
		b.Controller1.Write(data)
		b.Controller2.Write(data)

	case addr == 0x4017:
		b.APU.CPUWrite(addr, data)

	case addr >= 0x4000 && addr <= 0x4015:
		b.APU.CPUWrite(addr, data)

	case addr >= 0x4020:
		// The mapper sees every write in this range, ROM included.
		if b.cart != nil {
			b.cart.CPUWrite(addr, data)
		}
	}
}

// oamDMA copies a 256-byte page into OAM and suspends the CPU for 513
// cycles, 514 when the write lands on an odd CPU cycle.
func (b *Bus) oamDMA(page byte) {
	base := uint16(page) << 8
	for i := uint16(0); i < 256; i++ {
		b.PPU.WriteOAMDMA(b.Read(base | i))
	}

	stall := 513
	if b.cpu.TotalCycles%2 == 1 {
		stall++
	}
	b.cpu.AddStall(stall)
}
