package ppu

import "image/color"

// DebugMapper allows side-effect free CHR reads for debug views.
type DebugMapper interface {
	PPUDebugRead(addr uint16) (byte, bool)
}

// DebugRead reads PPU memory without triggering hardware side effects
// (buffer updates, address increments, MMC3's A12 counter).
func (p *PPU) DebugRead(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.cart == nil {
			return 0
		}
		if dm, ok := p.cart.Mapper.(DebugMapper); ok {
			data, _ := dm.PPUDebugRead(addr)
			return data
		}
		data, _ := p.cart.PPURead(addr)
		return data
	case addr <= 0x3EFF:
		return p.vram[p.mirrorAddress(addr)]
	default:
		return p.readPalette(addr)
	}
}

// PatternTable renders pattern table i (0 or 1) through background
// palette pal into a 128x128 RGBA buffer for the debugger.
func (p *PPU) PatternTable(i int, pal byte, dest []byte) {
	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := uint16(tileY*256 + tileX*16)
			for row := uint16(0); row < 8; row++ {
				lsb := p.DebugRead(uint16(i)*0x1000 + offset + row)
				msb := p.DebugRead(uint16(i)*0x1000 + offset + row + 8)

				for col := 0; col < 8; col++ {
					pixel := lsb&0x01 | msb&0x01<<1
					lsb >>= 1
					msb >>= 1

					x := tileX*8 + (7 - col)
					y := tileY*8 + int(row)

					var c color.RGBA
					if pixel == 0 {
						c = color.RGBA{0, 0, 0, 255}
					} else {
						c = SystemPalette[p.DebugRead(0x3F00+uint16(pal)*4+uint16(pixel))&0x3F]
					}

					idx := (y*128 + x) * 4
					dest[idx] = c.R
					dest[idx+1] = c.G
					dest[idx+2] = c.B
					dest[idx+3] = 255
				}
			}
		}
	}
}
