package ppu

// State is a gob-friendly snapshot of the PPU.
type State struct {
	Vram         [4096]byte
	Palette      [32]byte
	Oam          [256]byte
	SecondaryOam [32]byte

	Ctrl, Mask, Status, OamAddr, OpenBus, DataBuffer byte

	VramAddr, TempAddr uint16
	FineX              byte
	WriteToggle        bool

	Scanline, Dot int
	Frame         uint64
	OddFrame      bool

	BgNextTileID, BgNextTileAttrib, BgNextTileLSB, BgNextTileMSB byte
	BgShifterLo, BgShifterHi, BgAttribLo, BgAttribHi             uint16

	Sprites     [8]SpriteState
	SpriteCount byte
	Sprite0Line bool

	EvalSprite, EvalByte, EvalRead, EvalFound byte
	EvalDone, Sprite0Next, OamClear           bool

	NmiOccurred, SuppressVBlank, FrameReady bool

	Pixels []byte
}

type SpriteState struct {
	PatternLo, PatternHi, Attr, X byte
}

func (p *PPU) SaveState() State {
	s := State{
		Vram: p.vram, Palette: p.palette, Oam: p.oam, SecondaryOam: p.secondaryOAM,
		Ctrl: p.Ctrl, Mask: p.Mask, Status: p.Status, OamAddr: p.oamAddr, OpenBus: p.openBus, DataBuffer: p.dataBuffer,
		VramAddr: p.vramAddr, TempAddr: p.tempAddr, FineX: p.fineX, WriteToggle: p.writeToggle,
		Scanline: p.Scanline, Dot: p.Dot, Frame: p.Frame, OddFrame: p.oddFrame,
		BgNextTileID: p.bgNextTileID, BgNextTileAttrib: p.bgNextTileAttrib, BgNextTileLSB: p.bgNextTileLSB, BgNextTileMSB: p.bgNextTileMSB,
		BgShifterLo: p.bgShifterLo, BgShifterHi: p.bgShifterHi, BgAttribLo: p.bgAttribLo, BgAttribHi: p.bgAttribHi,
		SpriteCount: p.spriteCount, Sprite0Line: p.sprite0Line,
		EvalSprite: p.evalSprite, EvalByte: p.evalByte, EvalRead: p.evalRead, EvalFound: p.evalFound,
		EvalDone: p.evalDone, Sprite0Next: p.sprite0Next, OamClear: p.oamClear,
		NmiOccurred: p.nmiOccurred, SuppressVBlank: p.suppressVBlank, FrameReady: p.frameReady,
	}
	for i, sp := range p.sprites {
		s.Sprites[i] = SpriteState{sp.patternLo, sp.patternHi, sp.attr, sp.x}
	}
	s.Pixels = make([]byte, len(p.pixels))
	copy(s.Pixels, p.pixels[:])
	return s
}

func (p *PPU) LoadState(s State) {
	p.vram, p.palette, p.oam, p.secondaryOAM = s.Vram, s.Palette, s.Oam, s.SecondaryOam
	p.Ctrl, p.Mask, p.Status, p.oamAddr, p.openBus, p.dataBuffer = s.Ctrl, s.Mask, s.Status, s.OamAddr, s.OpenBus, s.DataBuffer
	p.vramAddr, p.tempAddr, p.fineX, p.writeToggle = s.VramAddr, s.TempAddr, s.FineX, s.WriteToggle
	p.Scanline, p.Dot, p.Frame, p.oddFrame = s.Scanline, s.Dot, s.Frame, s.OddFrame
	p.bgNextTileID, p.bgNextTileAttrib, p.bgNextTileLSB, p.bgNextTileMSB = s.BgNextTileID, s.BgNextTileAttrib, s.BgNextTileLSB, s.BgNextTileMSB
	p.bgShifterLo, p.bgShifterHi, p.bgAttribLo, p.bgAttribHi = s.BgShifterLo, s.BgShifterHi, s.BgAttribLo, s.BgAttribHi
	p.spriteCount, p.sprite0Line = s.SpriteCount, s.Sprite0Line
	p.evalSprite, p.evalByte, p.evalRead, p.evalFound = s.EvalSprite, s.EvalByte, s.EvalRead, s.EvalFound
	p.evalDone, p.sprite0Next, p.oamClear = s.EvalDone, s.Sprite0Next, s.OamClear
	p.nmiOccurred, p.suppressVBlank, p.frameReady = s.NmiOccurred, s.SuppressVBlank, s.FrameReady
	for i, sp := range s.Sprites {
		p.sprites[i] = spriteUnit{sp.PatternLo, sp.PatternHi, sp.Attr, sp.X}
	}
	if len(s.Pixels) == len(p.pixels) {
		copy(p.pixels[:], s.Pixels)
	}
}
