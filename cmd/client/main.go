// Command client replays a recorded input script against a running
// emulator over the gRPC control service.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/meadori/dotnes/api"
)

func parseButtons(buttonStr string) *api.InputState {
	state := &api.InputState{PlayerIndex: 1}
	if buttonStr == "NONE" {
		return state
	}

	for _, b := range strings.Split(buttonStr, "+") {
		switch strings.ToUpper(b) {
		case "A":
			state.A = true
		case "B":
			state.B = true
		case "SELECT":
			state.Select = true
		case "START":
			state.Start = true
		case "UP":
			state.Up = true
		case "DOWN":
			state.Down = true
		case "LEFT":
			state.Left = true
		case "RIGHT":
			state.Right = true
		}
	}
	return state
}

func main() {
	scriptFile := flag.String("script", "", "Path to the recorded script file to replay")
	addr := flag.String("addr", "localhost:50051", "Emulator gRPC address")
	flag.Parse()

	if *scriptFile == "" {
		log.Fatalf("Please provide a script file using -script <file.script>")
	}

	file, err := os.Open(*scriptFile)
	if err != nil {
		log.Fatalf("Failed to open script file: %v", err)
	}
	defer file.Close()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := api.NewControllerServiceClient(conn)

	// Each script line is "<frame> <buttons>"; frames tick at 60 Hz.
	const frameDuration = time.Second / 60

	scanner := bufio.NewScanner(file)
	currentFrame := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			log.Printf("skipping malformed line: %q", line)
			continue
		}

		frame, err := strconv.Atoi(parts[0])
		if err != nil {
			log.Printf("skipping malformed frame number: %q", parts[0])
			continue
		}

		if frame > currentFrame {
			time.Sleep(time.Duration(frame-currentFrame) * frameDuration)
			currentFrame = frame
		}

		if _, err := client.SendInput(context.Background(), parseButtons(parts[1])); err != nil {
			log.Fatalf("SendInput failed: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading script: %v", err)
	}
}
