package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/meadori/dotnes/api"
)

func main() {
	addr := "localhost:50051"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	fmt.Println("dotnes debugger")
	fmt.Printf("Connecting to emulator on %s...\n", addr)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := api.NewControllerServiceClient(conn)
	fmt.Println("Connected. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("(vdb) ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		ctx := context.Background()

		switch parts[0] {
		case "help", "h":
			fmt.Println("Commands:")
			fmt.Println("  run, c        - Resume execution")
			fmt.Println("  pause, p      - Pause execution")
			fmt.Println("  step, s       - Step one instruction")
			fmt.Println("  regs, r       - Print CPU registers")
			fmt.Println("  x <addr> [n]  - Examine memory (hex address)")
			fmt.Println("  reset         - Reset the machine")
			fmt.Println("  load <file>   - Load a save state")
			fmt.Println("  quit, q       - Exit debugger")

		case "quit", "q", "exit":
			return

		case "run", "c":
			if _, err := client.Resume(ctx, &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

		case "pause", "p":
			if _, err := client.Pause(ctx, &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Println("Emulator paused.")
			}

		case "step", "s":
			if _, err := client.Step(ctx, &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

		case "regs", "r":
			st, err := client.GetCpuState(ctx, &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X CYC:%d\n",
				st.A, st.X, st.Y, st.P, st.Sp, st.Pc, st.Cycles)

		case "x":
			if len(parts) < 2 {
				fmt.Println("usage: x <hex addr> [count]")
				continue
			}
			addrVal, err := strconv.ParseUint(strings.TrimPrefix(parts[1], "0x"), 16, 16)
			if err != nil {
				fmt.Printf("bad address: %v\n", err)
				continue
			}
			count := uint64(16)
			if len(parts) > 2 {
				if n, err := strconv.ParseUint(parts[2], 10, 16); err == nil {
					count = n
				}
			}
			resp, err := client.ReadMemory(ctx, &api.MemoryRequest{Address: uint32(addrVal), Size: uint32(count)})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			for i, b := range resp.Data {
				if i%16 == 0 {
					fmt.Printf("\n%04X: ", addrVal+uint64(i))
				}
				fmt.Printf("%02X ", b)
			}
			fmt.Println()

		case "reset":
			if _, err := client.Reset(ctx, &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

		case "load":
			if len(parts) < 2 {
				fmt.Println("usage: load <file>")
				continue
			}
			if _, err := client.LoadState(ctx, &api.StateRequest{Filename: parts[1]}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

		default:
			fmt.Printf("unknown command %q, try 'help'\n", parts[0])
		}
	}
}
