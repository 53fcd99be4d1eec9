package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meadori/dotnes/bus"
	"github.com/meadori/dotnes/cartridge"
	"github.com/meadori/dotnes/display"
	"github.com/meadori/dotnes/server"
)

func main() {
	romPath := flag.String("rom", "", "Path to a .nes ROM to load at startup")
	listen := flag.String("listen", ":50051", "gRPC control server address (empty to disable)")
	record := flag.String("record", "", "Write an input-recording script to this file")
	scale := flag.Int("scale", 3, "Window scale factor")
	flag.Parse()

	b := bus.New()

	var srv *server.GRPCServer
	if *listen != "" {
		srv = server.NewGRPCServer()
		srv.SetBus(b)
		if err := srv.Start(*listen); err != nil {
			log.Fatalf("starting gRPC server: %v", err)
		}
		defer srv.Stop()
	}

	var recFile *os.File
	if *record != "" {
		f, err := os.Create(*record)
		if err != nil {
			log.Fatalf("creating record file: %v", err)
		}
		defer f.Close()
		recFile = f
	}

	if *romPath != "" {
		cart, err := cartridge.New(*romPath)
		if err != nil {
			log.Fatalf("loading ROM: %v", err)
		}
		b.LoadCartridge(cart)
	}

	d := display.New(b, srv, recFile)

	ebiten.SetWindowSize(256**scale, 240**scale)
	ebiten.SetWindowTitle("dotnes")
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}
