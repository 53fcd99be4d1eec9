package display

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"

	"github.com/meadori/dotnes/bus"
	"github.com/meadori/dotnes/cartridge"
	"github.com/meadori/dotnes/controller"
	"github.com/meadori/dotnes/ppu"
	"github.com/meadori/dotnes/server"
)

const (
	sampleRate   = 44100
	screenWidth  = 256
	screenHeight = 240
)

// soundStream adapts the APU's sample buffer to the audio player.
type soundStream struct {
	bus *bus.Bus
}

func (s *soundStream) Read(p []byte) (int, error) {
	n, err := s.bus.APU.ReadSamples(p)
	if err != nil {
		return n, err
	}
	// Pad underruns with silence so the player keeps streaming.
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

// Display is the ebiten front-end: it steps the machine one frame per
// tick, converts the palette-index framebuffer to RGBA, polls the
// keyboard and merges in remote input from the gRPC server.
type Display struct {
	bus         *bus.Bus
	grpcServer  *server.GRPCServer
	audioPlayer *audio.Player

	frameImage    *ebiten.Image
	framePix      []byte
	scanlineImage *ebiten.Image
	showScanlines bool

	recordFile  *os.File
	lastButtons [8]bool
	frames      int

	romLoadChan chan string
}

// New creates a new Display instance.
func New(b *bus.Bus, srv *server.GRPCServer, recFile *os.File) *Display {
	audioContext := audio.NewContext(sampleRate)
	player, err := audioContext.NewPlayer(&soundStream{bus: b})
	if err != nil {
		log.Printf("Error creating audio player: %v", err)
	} else {
		player.Play()
	}

	scanImg := ebiten.NewImage(screenWidth, screenHeight)
	for y := 0; y < screenHeight; y += 2 {
		vector.DrawFilledRect(scanImg, 0, float32(y), screenWidth, 1, color.RGBA{0, 0, 0, 70}, false)
	}

	return &Display{
		bus:           b,
		grpcServer:    srv,
		audioPlayer:   player,
		frameImage:    ebiten.NewImage(screenWidth, screenHeight),
		framePix:      make([]byte, screenWidth*screenHeight*4),
		scanlineImage: scanImg,
		recordFile:    recFile,
		romLoadChan:   make(chan string, 1),
	}
}

func (d *Display) loadROM(path string) {
	cart, err := cartridge.New(path)
	if err != nil {
		log.Printf("Error loading ROM: %v", err)
		return
	}
	d.bus.LoadCartridge(cart)
}

func (d *Display) pollButtons() [8]bool {
	var b [8]bool
	b[controller.ButtonA] = ebiten.IsKeyPressed(ebiten.KeyZ)
	b[controller.ButtonB] = ebiten.IsKeyPressed(ebiten.KeyX)
	b[controller.ButtonSelect] = ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	b[controller.ButtonStart] = ebiten.IsKeyPressed(ebiten.KeyEnter)
	b[controller.ButtonUp] = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	b[controller.ButtonDown] = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	b[controller.ButtonLeft] = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	b[controller.ButtonRight] = ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	if d.grpcServer != nil {
		p1, p2 := d.grpcServer.Buttons()
		for i := range b {
			b[i] = b[i] || p1[i]
		}
		d.bus.SetButtons2(p2)
	}
	return b
}

func (d *Display) writeRecord(frames int, b [8]bool) {
	names := []string{"A", "B", "SELECT", "START", "UP", "DOWN", "LEFT", "RIGHT"}
	var pressed []string
	for i, on := range b {
		if on {
			pressed = append(pressed, names[i])
		}
	}
	line := "NONE"
	if len(pressed) > 0 {
		line = strings.Join(pressed, "+")
	}
	fmt.Fprintf(d.recordFile, "%d %s\n", frames, line)
}

// Update proceeds the emulation by one frame per tick.
func (d *Display) Update() error {
	select {
	case filename := <-d.romLoadChan:
		d.loadROM(filename)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		go func() {
			filename, err := dialog.File().Filter("NES ROM", "nes").Load()
			if err != nil {
				log.Println(err)
				return
			}
			d.romLoadChan <- filename
		}()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.bus.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		d.bus.SetPaused(!d.bus.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		d.showScanlines = !d.showScanlines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := d.bus.SaveState("dotnes.state"); err != nil {
			log.Printf("save state: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF7) {
		if err := d.bus.LoadState("dotnes.state"); err != nil {
			log.Printf("load state: %v", err)
		}
	}

	buttons := d.pollButtons()
	d.bus.SetButtons1(buttons)
	if d.recordFile != nil && buttons != d.lastButtons {
		d.writeRecord(d.frames, buttons)
		d.lastButtons = buttons
	}

	if d.bus.Cartridge() == nil {
		return nil
	}

	if d.bus.Paused() {
		if d.bus.TakeStepRequest() {
			d.bus.StepInstruction()
		}
	} else {
		d.bus.StepFrame()
		d.frames++
	}

	d.blitFrame()
	return nil
}

// blitFrame resolves palette indices through the system palette into
// the RGBA texture.
func (d *Display) blitFrame() {
	frame := d.bus.TakeFrame()
	for i, idx := range frame {
		c := ppu.SystemPalette[idx&0x3F]
		d.framePix[i*4] = c.R
		d.framePix[i*4+1] = c.G
		d.framePix[i*4+2] = c.B
		d.framePix[i*4+3] = 0xFF
	}
	d.frameImage.WritePixels(d.framePix)
}

// Draw renders the frame.
func (d *Display) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.frameImage, nil)
	if d.showScanlines {
		screen.DrawImage(d.scanlineImage, nil)
	}
	if d.bus.Cartridge() == nil {
		ebitenutil.DebugPrintAt(screen, "Press O to load a ROM", 64, 112)
	} else if d.bus.Paused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 4, 4)
	}
}

// Layout reports the logical screen size; ebiten scales it to the
// window.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
