package ppu

// spriteCycle advances the sprite side of the pipeline for one dot:
// secondary OAM clear on dots 1-64, the scan of primary OAM on 65-256,
// and the pattern fetch window on 257-320, which is also what feeds
// MMC3's A12 counter between background tiles.
func (p *PPU) spriteCycle(visibleLine bool) {
	dot := p.Dot

	switch {
	case dot >= 1 && dot <= 64:
		if !visibleLine {
			return
		}
		if dot == 1 {
			p.oamClear = true
			p.evalSprite = 0
			p.evalByte = 0
			p.evalFound = 0
			p.evalDone = false
			p.sprite0Next = false
		}
		// One byte of secondary OAM turns to $FF every other dot.
		if dot%2 == 0 {
			p.secondaryOAM[dot/2-1] = 0xFF
		}

	case dot >= 65 && dot <= 256:
		if !visibleLine {
			return
		}
		p.oamClear = false
		if p.evalDone {
			return
		}
		// Odd dots read from primary OAM, even dots act on the value.
		if dot%2 == 1 {
			p.evalRead = p.oam[int(p.evalSprite)*4+int(p.evalByte)]
		} else {
			p.evalStep()
		}

	case dot >= 257 && dot <= 320:
		// OAMADDR is forced to zero throughout the fetch window.
		p.oamAddr = 0
		p.spriteFetch(dot)
	}
}

// evalStep consumes one read byte in the OAM scan. The hardware's
// diagonal overflow scan bug is not reproduced; a ninth in-range
// sprite simply sets the overflow flag.
func (p *PPU) evalStep() {
	if p.evalDone {
		return
	}

	if p.evalByte == 0 {
		if p.evalFound < 8 {
			p.secondaryOAM[p.evalFound*4] = p.evalRead
		}
		row := p.Scanline - int(p.evalRead)
		inRange := row >= 0 && row < p.spriteHeight()
		if inRange && p.evalFound < 8 {
			if p.evalSprite == 0 {
				p.sprite0Next = true
			}
			p.evalByte = 1
			return
		}
		if inRange {
			p.Status |= statusSpriteOverflow
		}
		p.advanceEval()
		return
	}

	p.secondaryOAM[p.evalFound*4+p.evalByte] = p.evalRead
	p.evalByte++
	if p.evalByte == 4 {
		p.evalFound++
		p.evalByte = 0
		p.advanceEval()
	}
}

func (p *PPU) advanceEval() {
	p.evalSprite++
	if p.evalSprite >= 64 {
		p.evalDone = true
	}
}

// spriteFetch loads the eight sprite units from secondary OAM, eight
// dots apiece. Empty slots fetch tile $FF like the real chip, keeping
// the CHR address traffic identical whether or not sprites were found.
func (p *PPU) spriteFetch(dot int) {
	offset := (dot - 257) % 8
	idx := (dot - 257) / 8

	if dot == 257 {
		p.spriteCount = p.evalFound
		if p.spriteCount > 8 {
			p.spriteCount = 8
		}
		p.sprite0Line = p.sprite0Next
	}

	y := p.secondaryOAM[idx*4]
	tile := p.secondaryOAM[idx*4+1]
	attr := p.secondaryOAM[idx*4+2]

	switch offset {
	case 4:
		p.sprites[idx].patternLo = p.ppuRead(p.spritePatternAddress(tile, attr, int(y)))
	case 6:
		s := &p.sprites[idx]
		s.patternHi = p.ppuRead(p.spritePatternAddress(tile, attr, int(y)) + 8)
		s.attr = attr
		s.x = p.secondaryOAM[idx*4+3]
		if attr&0x40 != 0 { // horizontal flip
			s.patternLo = reverseByte(s.patternLo)
			s.patternHi = reverseByte(s.patternHi)
		}
	}
}

// spritePatternAddress computes the CHR address of the sprite's
// pattern row for the line currently being evaluated.
func (p *PPU) spritePatternAddress(tile, attr byte, y int) uint16 {
	row := p.Scanline - y

	if p.Ctrl&ctrlSpriteSize == 0 {
		row &= 7
		if attr&0x80 != 0 { // vertical flip
			row = 7 - row
		}
		table := uint16(0)
		if p.Ctrl&ctrlSpriteTable != 0 {
			table = 0x1000
		}
		return table + uint16(tile)*16 + uint16(row)
	}

	// 8x16: the tile's bit 0 selects the pattern table.
	row &= 15
	if attr&0x80 != 0 {
		row = 15 - row
	}
	table := uint16(tile&1) * 0x1000
	tile &= 0xFE
	if row > 7 {
		tile++
		row -= 8
	}
	return table + uint16(tile)*16 + uint16(row)
}

func reverseByte(b byte) byte {
	b = b&0xF0>>4 | b&0x0F<<4
	b = b&0xCC>>2 | b&0x33<<2
	b = b&0xAA>>1 | b&0x55<<1
	return b
}
