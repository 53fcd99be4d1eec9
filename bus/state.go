package bus

import (
	"encoding/gob"
	"os"

	"github.com/meadori/dotnes/apu"
	"github.com/meadori/dotnes/cartridge"
	"github.com/meadori/dotnes/cpu"
	"github.com/meadori/dotnes/ppu"
)

// State is the whole-machine snapshot used by save states and the
// debugger's LoadState call.
type State struct {
	Ram          [2048]byte
	SystemClocks uint64
	OpenBus      byte
	NmiPrevious  bool
	CPU          cpu.State
	PPU          ppu.State
	APU          apu.State
	Cartridge    cartridge.State
}

// SaveState saves the entire emulator state to a file.
func (b *Bus) SaveState(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	s := State{
		Ram:          b.ram,
		SystemClocks: b.SystemClocks,
		OpenBus:      b.openBus,
		NmiPrevious:  b.nmiPrevious,
		CPU:          b.cpu.SaveState(),
		PPU:          b.PPU.SaveState(),
		APU:          b.APU.SaveState(),
	}
	if b.cart != nil {
		s.Cartridge = b.cart.SaveState()
	}

	return gob.NewEncoder(file).Encode(s)
}

// LoadState loads the emulator state from a file.
func (b *Bus) LoadState(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var s State
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return err
	}

	b.ram = s.Ram
	b.SystemClocks = s.SystemClocks
	b.openBus = s.OpenBus
	b.nmiPrevious = s.NmiPrevious
	b.cpu.LoadState(s.CPU)
	b.PPU.LoadState(s.PPU)
	b.APU.LoadState(s.APU)

	if b.cart != nil {
		return b.cart.LoadState(s.Cartridge)
	}
	return nil
}
