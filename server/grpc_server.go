package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"google.golang.org/grpc"

	"github.com/meadori/dotnes/api"
)

// EmuInterface is the slice of the system bus the remote-control
// service needs. The emulator's main package wires the real bus in.
type EmuInterface interface {
	Read(addr uint16) byte
	GetFramePixels() []byte
	GetMemoryBlock(addr uint16, size uint16) []byte
	GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles uint64)
	LoadState(filename string) error
	Reset()
	SetPaused(bool)
	RequestStep()
}

// GRPCServer exposes the emulator over api.ControllerService: remote
// pad input for scripted runs and the memory/CPU/frame inspection the
// vdb debugger uses.
type GRPCServer struct {
	api.UnimplementedControllerServiceServer

	mu       sync.Mutex
	P1State  [8]bool
	P2State  [8]bool
	listener net.Listener
	server   *grpc.Server
	emuBus   EmuInterface
}

// NewGRPCServer initializes the gRPC controller server.
func NewGRPCServer() *GRPCServer {
	return &GRPCServer{}
}

// SetBus assigns the system bus to the server.
func (s *GRPCServer) SetBus(b EmuInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emuBus = b
}

// Start listens on addr and serves until Stop.
func (s *GRPCServer) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = lis
	s.server = grpc.NewServer()
	api.RegisterControllerServiceServer(s.server, s)

	go func() {
		log.Printf("gRPC control server listening on %s", addr)
		if err := s.server.Serve(lis); err != nil {
			log.Printf("gRPC server stopped: %v", err)
		}
	}()
	return nil
}

// Stop shuts the server down.
func (s *GRPCServer) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}

// Buttons returns the last remote input for both pads.
func (s *GRPCServer) Buttons() ([8]bool, [8]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.P1State, s.P2State
}

func (s *GRPCServer) bus() (EmuInterface, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emuBus == nil {
		return nil, fmt.Errorf("emulator bus not connected")
	}
	return s.emuBus, nil
}

// SendInput latches one pad's buttons.
func (s *GRPCServer) SendInput(ctx context.Context, in *api.InputState) (*api.Empty, error) {
	state := [8]bool{in.A, in.B, in.Select, in.Start, in.Up, in.Down, in.Left, in.Right}

	s.mu.Lock()
	if in.PlayerIndex == 2 {
		s.P2State = state
	} else {
		s.P1State = state
	}
	s.mu.Unlock()
	return &api.Empty{}, nil
}

// GetFrame returns the raw framebuffer (palette indices).
func (s *GRPCServer) GetFrame(ctx context.Context, in *api.Empty) (*api.FrameResponse, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	pixels := bus.GetFramePixels()
	out := make([]byte, len(pixels))
	copy(out, pixels)
	return &api.FrameResponse{Pixels: out}, nil
}

// ReadMemory returns a block of CPU address space.
func (s *GRPCServer) ReadMemory(ctx context.Context, in *api.MemoryRequest) (*api.MemoryResponse, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	size := in.Size
	if size == 0 {
		size = 1
	}
	if size > 0x100 {
		size = 0x100
	}
	return &api.MemoryResponse{Data: bus.GetMemoryBlock(uint16(in.Address), uint16(size))}, nil
}

// GetCpuState reports the CPU registers.
func (s *GRPCServer) GetCpuState(ctx context.Context, in *api.Empty) (*api.CpuStateResponse, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	a, x, y, sp, p, pc, cycles := bus.GetCPUState()
	return &api.CpuStateResponse{
		A: uint32(a), X: uint32(x), Y: uint32(y),
		Sp: uint32(sp), P: uint32(p), Pc: uint32(pc),
		Cycles: cycles,
	}, nil
}

// Pause halts frame stepping.
func (s *GRPCServer) Pause(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	bus.SetPaused(true)
	return &api.Empty{}, nil
}

// Resume restarts frame stepping.
func (s *GRPCServer) Resume(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	bus.SetPaused(false)
	return &api.Empty{}, nil
}

// Step executes one instruction while paused.
func (s *GRPCServer) Step(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	bus.RequestStep()
	return &api.Empty{}, nil
}

// Reset pulls the machine's reset line.
func (s *GRPCServer) Reset(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	bus.Reset()
	return &api.Empty{}, nil
}

// LoadState loads a save-state file into the running machine.
func (s *GRPCServer) LoadState(ctx context.Context, in *api.StateRequest) (*api.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	if err := bus.LoadState(in.Filename); err != nil {
		return nil, err
	}
	return &api.Empty{}, nil
}
