package cartridge

import (
	"bytes"
	"encoding/gob"
)

// State is a snapshot of the cartridge's mutable memory: CHR RAM, PRG
// RAM, and whatever registers the mapper carries.
type State struct {
	CHRRAM      []byte
	PRGRAM      []byte
	MapperState []byte
}

type prgRAMCarrier interface {
	prgRAMBytes() []byte
}

func (c *Cartridge) SaveState() State {
	s := State{}
	if c.IsCHRRAM {
		s.CHRRAM = make([]byte, len(c.CHRROM))
		copy(s.CHRRAM, c.CHRROM)
	}

	if m, ok := c.Mapper.(prgRAMCarrier); ok {
		ram := m.prgRAMBytes()
		s.PRGRAM = make([]byte, len(ram))
		copy(s.PRGRAM, ram)
	}

	s.MapperState = c.Mapper.Save()
	return s
}

func (c *Cartridge) LoadState(s State) error {
	if c.IsCHRRAM && len(s.CHRRAM) > 0 {
		copy(c.CHRROM, s.CHRRAM)
	}

	if m, ok := c.Mapper.(prgRAMCarrier); ok && len(s.PRGRAM) > 0 {
		copy(m.prgRAMBytes(), s.PRGRAM)
	}

	return c.Mapper.Load(s.MapperState)
}

func (n *nrom) prgRAMBytes() []byte { return n.prgRAM }
func (m *mmc1) prgRAMBytes() []byte { return m.prgRAM }
func (m *mmc3) prgRAMBytes() []byte { return m.prgRAM }

// NROM has no registers.
func (n *nrom) Save() []byte        { return nil }
func (n *nrom) Load(b []byte) error { return nil }

func (u *uxrom) Save() []byte { return []byte{byte(u.prgBankSelect)} }
func (u *uxrom) Load(b []byte) error {
	if len(b) > 0 {
		u.prgBankSelect = int(b[0])
	}
	return nil
}

func (c *cnrom) Save() []byte { return []byte{byte(c.chrBankSelect)} }
func (c *cnrom) Load(b []byte) error {
	if len(b) > 0 {
		c.chrBankSelect = int(b[0])
	}
	return nil
}

func (a *axrom) Save() []byte {
	var upper byte
	if a.upperScreen {
		upper = 1
	}
	return []byte{byte(a.prgBankSelect), upper}
}

func (a *axrom) Load(b []byte) error {
	if len(b) >= 2 {
		a.prgBankSelect = int(b[0])
		a.upperScreen = b[1] != 0
	}
	return nil
}

func (c *colordreams) Save() []byte {
	return []byte{byte(c.prgBankSelect), byte(c.chrBankSelect)}
}

func (c *colordreams) Load(b []byte) error {
	if len(b) >= 2 {
		c.prgBankSelect = int(b[0])
		c.chrBankSelect = int(b[1])
	}
	return nil
}

// MMC1State mirrors the mmc1 registers for gob encoding.
type MMC1State struct {
	Control, ChrBank0, ChrBank1, PrgBank, ShiftRegister, WriteCount byte
	Cycles, LastWriteCycle                                          uint64
	WroteBefore                                                     bool
}

func (m *mmc1) Save() []byte {
	var buf bytes.Buffer
	gob.NewEncoder(&buf).Encode(MMC1State{
		m.control, m.chrBank0, m.chrBank1, m.prgBank, m.shiftRegister, m.writeCount,
		m.cycles, m.lastWriteCycle, m.wroteBefore,
	})
	return buf.Bytes()
}

func (m *mmc1) Load(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var s MMC1State
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&s); err != nil {
		return err
	}
	m.control, m.chrBank0, m.chrBank1, m.prgBank, m.shiftRegister, m.writeCount = s.Control, s.ChrBank0, s.ChrBank1, s.PrgBank, s.ShiftRegister, s.WriteCount
	m.cycles, m.lastWriteCycle, m.wroteBefore = s.Cycles, s.LastWriteCycle, s.WroteBefore
	return nil
}

// MMC3State mirrors the mmc3 registers for gob encoding.
type MMC3State struct {
	TargetRegister                             byte
	PrgBankMode, ChrInversion                  bool
	Registers                                  [8]byte
	IrqCounter, IrqLatch                       byte
	IrqReload, IrqEnabled, IrqPending, LastA12 bool
	LowCycles                                  int
	FourScreen                                 bool
	Mirroring                                  byte
}

func (m *mmc3) Save() []byte {
	var buf bytes.Buffer
	gob.NewEncoder(&buf).Encode(MMC3State{
		m.targetRegister, m.prgBankMode, m.chrInversion, m.registers,
		m.irqCounter, m.irqLatch, m.irqReload, m.irqEnabled, m.irqPending, m.lastA12,
		m.lowCycles, m.fourScreen, m.mirroring,
	})
	return buf.Bytes()
}

func (m *mmc3) Load(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var s MMC3State
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&s); err != nil {
		return err
	}
	m.targetRegister, m.prgBankMode, m.chrInversion, m.registers = s.TargetRegister, s.PrgBankMode, s.ChrInversion, s.Registers
	m.irqCounter, m.irqLatch, m.irqReload, m.irqEnabled, m.irqPending, m.lastA12 = s.IrqCounter, s.IrqLatch, s.IrqReload, s.IrqEnabled, s.IrqPending, s.LastA12
	m.lowCycles, m.fourScreen, m.mirroring = s.LowCycles, s.FourScreen, s.Mirroring
	return nil
}
