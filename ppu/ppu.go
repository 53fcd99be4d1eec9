package ppu

import (
	"github.com/meadori/dotnes/cartridge"
)

// Status register bits.
const (
	statusSpriteOverflow byte = 1 << 5
	statusSprite0Hit     byte = 1 << 6
	statusVBlank         byte = 1 << 7
)

// Ctrl register bits.
const (
	ctrlIncrement32  byte = 1 << 2
	ctrlSpriteTable  byte = 1 << 3
	ctrlPatternTable byte = 1 << 4
	ctrlSpriteSize   byte = 1 << 5
	ctrlNMIEnable    byte = 1 << 7
)

// Mask register bits.
const (
	maskGreyscale      byte = 1 << 0
	maskShowLeftBG     byte = 1 << 1
	maskShowLeftSprite byte = 1 << 2
	maskShowBackground byte = 1 << 3
	maskShowSprites    byte = 1 << 4
)

// PPU is the 2C02: one Clock call is one dot. A frame is 262 scanlines
// of 341 dots; the pre-render scanline is tracked as -1 and the first
// dot of odd frames is skipped while rendering is on.
type PPU struct {
	cart *cartridge.Cartridge

	vram         [4096]byte // 2 KiB on board, 4 KiB for four-screen boards
	palette      [32]byte
	oam          [256]byte
	secondaryOAM [32]byte

	Ctrl   byte
	Mask   byte
	Status byte

	oamAddr    byte
	openBus    byte // the CPU-facing I/O latch
	dataBuffer byte

	// Loopy internal registers.
	vramAddr    uint16 // v
	tempAddr    uint16 // t
	fineX       byte   // x
	writeToggle bool   // w

	Scanline int // -1 (pre-render) .. 260
	Dot      int // 0 .. 340
	Frame    uint64
	oddFrame bool

	// Background pipeline.
	bgNextTileID     byte
	bgNextTileAttrib byte
	bgNextTileLSB    byte
	bgNextTileMSB    byte
	bgShifterLo      uint16
	bgShifterHi      uint16
	bgAttribLo       uint16
	bgAttribHi       uint16

	// Sprite units feeding the current scanline, loaded during the
	// previous line's fetch window.
	sprites     [8]spriteUnit
	spriteCount byte
	sprite0Line bool

	// Evaluation state for the line being scanned.
	evalSprite  byte
	evalByte    byte
	evalRead    byte
	evalFound   byte
	evalDone    bool
	sprite0Next bool
	oamClear    bool

	nmiOccurred    bool
	suppressVBlank bool

	frameReady bool
	pixels     [256 * 240]byte
}

type spriteUnit struct {
	patternLo byte
	patternHi byte
	attr      byte
	x         byte
}

// New creates a new PPU instance.
func New() *PPU {
	return &PPU{Scanline: -1}
}

// ConnectCartridge attaches the cartridge providing CHR storage and
// nametable mirroring.
func (p *PPU) ConnectCartridge(cart *cartridge.Cartridge) {
	p.cart = cart
}

// Reset returns the PPU to its power-on state. VRAM contents survive.
func (p *PPU) Reset() {
	p.Ctrl = 0
	p.Mask = 0
	p.Status = 0
	p.oamAddr = 0
	p.dataBuffer = 0
	p.vramAddr = 0
	p.tempAddr = 0
	p.fineX = 0
	p.writeToggle = false
	p.Scanline = -1
	p.Dot = 0
	p.oddFrame = false
	p.nmiOccurred = false
	p.suppressVBlank = false
	p.frameReady = false
}

// NMILine reports the state of the NMI output pin.
func (p *PPU) NMILine() bool {
	return p.nmiOccurred && p.Ctrl&ctrlNMIEnable != 0
}

// FrameReady reports whether a completed frame is waiting for the host.
func (p *PPU) FrameReady() bool {
	return p.frameReady
}

// TakeFrame hands out the finished framebuffer (palette indices,
// 256x240) and clears the frame-ready flag.
func (p *PPU) TakeFrame() []byte {
	p.frameReady = false
	return p.pixels[:]
}

// Pixels exposes the framebuffer without consuming the ready flag.
func (p *PPU) Pixels() []byte {
	return p.pixels[:]
}

func (p *PPU) renderingEnabled() bool {
	return p.Mask&(maskShowBackground|maskShowSprites) != 0
}

func (p *PPU) spriteHeight() int {
	if p.Ctrl&ctrlSpriteSize != 0 {
		return 16
	}
	return 8
}

// Clock advances the PPU by a single dot.
func (p *PPU) Clock() {
	rendering := p.renderingEnabled()
	visibleLine := p.Scanline >= 0 && p.Scanline <= 239
	preLine := p.Scanline == -1
	renderLine := visibleLine || preLine

	if preLine && p.Dot == 1 {
		p.Status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
		p.nmiOccurred = false
		p.suppressVBlank = false
		// No sprite evaluation runs on the pre-render line, so its
		// fetch window loads an empty set and line 0 shows no sprites.
		p.evalFound = 0
		p.sprite0Next = false
	}

	if rendering && renderLine {
		p.backgroundCycle(preLine)
	}

	if visibleLine && p.Dot >= 1 && p.Dot <= 256 {
		p.renderPixel()
	}

	if rendering && renderLine {
		p.spriteCycle(visibleLine)
	}

	if p.Scanline == 240 && p.Dot == 0 {
		p.frameReady = true
	}

	if p.Scanline == 241 && p.Dot == 1 && !p.suppressVBlank {
		p.Status |= statusVBlank
		p.nmiOccurred = true
	}

	p.advanceDot(rendering)
}

// backgroundCycle runs the 8-dot tile fetch pipeline and the loopy
// address updates for one dot of a rendering scanline.
func (p *PPU) backgroundCycle(preLine bool) {
	dot := p.Dot

	if (dot >= 2 && dot <= 257) || (dot >= 322 && dot <= 337) {
		p.shiftBackground()

		switch (dot - 1) % 8 {
		case 0:
			p.loadBackgroundShifters()
			p.bgNextTileID = p.ppuRead(0x2000 | p.vramAddr&0x0FFF)
		case 2:
			attr := p.ppuRead(0x23C0 | p.vramAddr&0x0C00 | p.vramAddr>>4&0x38 | p.vramAddr>>2&0x07)
			if p.vramAddr>>1&1 != 0 {
				attr >>= 2
			}
			if p.vramAddr>>6&1 != 0 {
				attr >>= 4
			}
			p.bgNextTileAttrib = attr & 0x03
		case 4:
			p.bgNextTileLSB = p.ppuRead(p.patternAddress())
		case 6:
			p.bgNextTileMSB = p.ppuRead(p.patternAddress() + 8)
		case 7:
			p.incrementX()
		}
	}

	if dot == 256 {
		p.incrementY()
	}
	if dot == 257 {
		p.copyX()
	}
	if preLine && dot >= 280 && dot <= 304 {
		p.copyY()
	}

	// Unused nametable fetches at the end of the line; MMC3 counts the
	// address traffic, the data goes nowhere.
	if dot == 338 || dot == 340 {
		p.bgNextTileID = p.ppuRead(0x2000 | p.vramAddr&0x0FFF)
	}
}

func (p *PPU) patternAddress() uint16 {
	table := uint16(0)
	if p.Ctrl&ctrlPatternTable != 0 {
		table = 0x1000
	}
	fineY := p.vramAddr >> 12 & 0x7
	return table + uint16(p.bgNextTileID)*16 + fineY
}

func (p *PPU) shiftBackground() {
	p.bgShifterLo <<= 1
	p.bgShifterHi <<= 1
	p.bgAttribLo <<= 1
	p.bgAttribHi <<= 1
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShifterLo = p.bgShifterLo&0xFF00 | uint16(p.bgNextTileLSB)
	p.bgShifterHi = p.bgShifterHi&0xFF00 | uint16(p.bgNextTileMSB)
	if p.bgNextTileAttrib&1 != 0 {
		p.bgAttribLo = p.bgAttribLo&0xFF00 | 0x00FF
	} else {
		p.bgAttribLo &= 0xFF00
	}
	if p.bgNextTileAttrib&2 != 0 {
		p.bgAttribHi = p.bgAttribHi&0xFF00 | 0x00FF
	} else {
		p.bgAttribHi &= 0xFF00
	}
}

// Loopy address helpers, per the scrolling wrap rules.

func (p *PPU) incrementX() {
	if p.vramAddr&0x001F == 31 {
		p.vramAddr &^= 0x001F
		p.vramAddr ^= 0x0400
	} else {
		p.vramAddr++
	}
}

func (p *PPU) incrementY() {
	if p.vramAddr&0x7000 != 0x7000 {
		p.vramAddr += 0x1000
	} else {
		p.vramAddr &^= 0x7000
		y := p.vramAddr & 0x03E0 >> 5
		switch y {
		case 29:
			y = 0
			p.vramAddr ^= 0x0800
		case 31:
			y = 0
		default:
			y++
		}
		p.vramAddr = p.vramAddr&^uint16(0x03E0) | y<<5
	}
}

func (p *PPU) copyX() {
	p.vramAddr = p.vramAddr&0xFBE0 | p.tempAddr&0x041F
}

func (p *PPU) copyY() {
	p.vramAddr = p.vramAddr&0x841F | p.tempAddr&0x7BE0
}

// renderPixel resolves one dot of the multiplexer: background versus
// sprite pixel, priority, and the sprite-0 collision flag.
func (p *PPU) renderPixel() {
	x := p.Dot - 1
	y := p.Scanline

	var bgPixel, bgPalette byte
	if p.Mask&maskShowBackground != 0 && !(x < 8 && p.Mask&maskShowLeftBG == 0) {
		mux := uint16(0x8000) >> p.fineX
		var p0, p1, a0, a1 byte
		if p.bgShifterLo&mux != 0 {
			p0 = 1
		}
		if p.bgShifterHi&mux != 0 {
			p1 = 1
		}
		if p.bgAttribLo&mux != 0 {
			a0 = 1
		}
		if p.bgAttribHi&mux != 0 {
			a1 = 1
		}
		bgPixel = p1<<1 | p0
		bgPalette = a1<<1 | a0
	}

	var spPixel, spPalette byte
	var spBehind, spZero bool
	if p.Mask&maskShowSprites != 0 && !(x < 8 && p.Mask&maskShowLeftSprite == 0) {
		for i := 0; i < int(p.spriteCount); i++ {
			s := &p.sprites[i]
			offset := x - int(s.x)
			if offset < 0 || offset > 7 {
				continue
			}
			lo := s.patternLo >> (7 - offset) & 1
			hi := s.patternHi >> (7 - offset) & 1
			pixel := hi<<1 | lo
			if pixel == 0 {
				continue
			}
			spPixel = pixel
			spPalette = s.attr & 0x03
			spBehind = s.attr&0x20 != 0
			spZero = i == 0 && p.sprite0Line
			break
		}
	}

	var entry byte
	switch {
	case bgPixel == 0 && spPixel == 0:
		entry = 0
	case bgPixel == 0:
		entry = 0x10 | spPalette<<2 | spPixel
	case spPixel == 0:
		entry = bgPalette<<2 | bgPixel
	default:
		if spZero && x != 255 {
			p.Status |= statusSprite0Hit
		}
		if spBehind {
			entry = bgPalette<<2 | bgPixel
		} else {
			entry = 0x10 | spPalette<<2 | spPixel
		}
	}

	var index byte
	if p.renderingEnabled() {
		index = p.readPalette(uint16(entry))
	} else if p.vramAddr >= 0x3F00 && p.vramAddr <= 0x3FFF {
		// Rendering off with v parked in palette space shows that entry.
		index = p.readPalette(p.vramAddr)
	} else {
		index = p.readPalette(0)
	}
	if p.Mask&maskGreyscale != 0 {
		index &= 0x30
	}

	p.pixels[y*256+x] = index & 0x3F
}

func (p *PPU) advanceDot(rendering bool) {
	// Odd frames skip (339, -1) -> (0, 0) while rendering. Frame
	// parity still flips at the end-of-frame wrap below.
	if rendering && p.oddFrame && p.Scanline == -1 && p.Dot == 339 {
		p.Dot = 0
		p.Scanline = 0
		return
	}

	p.Dot++
	if p.Dot > 340 {
		p.Dot = 0
		p.Scanline++
		if p.Scanline > 260 {
			p.Scanline = -1
			p.oddFrame = !p.oddFrame
			p.Frame++
		}
	}
}

// ---- PPU address space ----

var mirrorLookup = [5][4]uint16{
	{0, 0, 1, 1}, // horizontal
	{0, 1, 0, 1}, // vertical
	{0, 0, 0, 0}, // one-screen lower
	{1, 1, 1, 1}, // one-screen upper
	{0, 1, 2, 3}, // four-screen
}

func (p *PPU) mirrorAddress(addr uint16) uint16 {
	mode := cartridge.MirrorHorizontal
	if p.cart != nil {
		mode = p.cart.Mirroring()
	}
	addr = (addr - 0x2000) & 0x0FFF
	table := addr / 0x0400
	offset := addr & 0x03FF
	return mirrorLookup[mode][table]*0x0400 + offset
}

func (p *PPU) readPalette(addr uint16) byte {
	addr &= 0x1F
	if addr >= 0x10 && addr%4 == 0 {
		addr -= 0x10
	}
	return p.palette[addr]
}

func (p *PPU) writePalette(addr uint16, data byte) {
	addr &= 0x1F
	if addr >= 0x10 && addr%4 == 0 {
		addr -= 0x10
	}
	p.palette[addr] = data
}

func (p *PPU) ppuRead(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.cart != nil {
			if data, ok := p.cart.PPURead(addr); ok {
				return data
			}
		}
		return 0
	case addr <= 0x3EFF:
		return p.vram[p.mirrorAddress(addr)]
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) ppuWrite(addr uint16, data byte) {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.cart != nil {
			p.cart.PPUWrite(addr, data)
		}
	case addr <= 0x3EFF:
		p.vram[p.mirrorAddress(addr)] = data
	default:
		p.writePalette(addr, data)
	}
}
