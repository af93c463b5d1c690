// Command nesrun is the host shell spec.md names but leaves external to
// the CPU core: it owns the window, blits the $0200-$0600 frame buffer,
// polls keyboard input into $FF, and seeds $FE with a random byte on
// every instruction boundary.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"nescycle/cpu"
	"nescycle/ines"
	"nescycle/nesbus"
)

var romFile = flag.String("rom", "", "Path to an iNES ROM to run.")

const (
	frameBase   = 0x0200
	frameSize   = 1024 // 32x32 pixels, one byte each
	frameWidth  = 32
	frameHeight = 32
	inputAddr   = 0x00FF
	rngAddr     = 0x00FE
)

// nesPalette is the classic 16-color palette used by the "draw a pixel
// per frame-buffer byte" starter kernels this host loop follows.
var nesPalette = [16][3]byte{
	{0, 0, 0}, {255, 255, 255}, {0x88, 0x88, 0x88}, {0xAA, 0x00, 0x00},
	{0xAA, 0x00, 0xAA}, {0x00, 0xAA, 0x00}, {0x00, 0x00, 0xAA}, {0xFF, 0xFF, 0x00},
	{0xFF, 0xAA, 0x00}, {0x55, 0x33, 0x00}, {0xFF, 0x55, 0x55}, {0x33, 0x33, 0x33},
	{0x77, 0x77, 0x77}, {0x55, 0xFF, 0x55}, {0x55, 0x55, 0xFF}, {0xCC, 0xCC, 0xCC},
}

// game wraps a Cpu in an ebiten.Game. The Cpu runs on its own goroutine,
// ticked directly rather than through RunWithCallback so every Tick -- not
// just the instruction-boundary hook -- happens under mu; Draw takes the
// same lock before reading the frame buffer, so it never reads memory while
// a Tick is in progress. It can still run between two cycles of one
// instruction.
type game struct {
	mu  sync.Mutex
	c   *cpu.Cpu
	bus *nesbus.Bus

	lastKey byte
}

// hook runs at an instruction boundary with g.mu already held by run.
func (g *game) hook(c *cpu.Cpu) {
	c.Mem.Write(inputAddr, g.lastKey)
	c.Mem.Write(rngAddr, byte(rand.Intn(256)))
}

func (g *game) pollInput() {
	keys := map[ebiten.Key]byte{
		ebiten.KeyW: 0x77, ebiten.KeyA: 0x61, ebiten.KeyS: 0x73, ebiten.KeyD: 0x64,
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for k, code := range keys {
		if ebiten.IsKeyPressed(k) {
			g.lastKey = code
			return
		}
	}
}

func (g *game) Update() error {
	g.pollInput()
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return frameWidth, frameHeight
}

func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 0; i < frameSize; i++ {
		v := g.c.Mem.Read(uint16(frameBase + i))
		rgb := nesPalette[v&0x0F]
		x, y := i%frameWidth, i/frameWidth
		screen.Set(x, y, colorOf(rgb))
	}
}

func colorOf(rgb [3]byte) ebitenColor {
	return ebitenColor{rgb[0], rgb[1], rgb[2], 255}
}

// ebitenColor implements color.Color without pulling in image/color for
// three field reads.
type ebitenColor struct{ r, g, b, a byte }

func (c ebitenColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, uint32(c.a) * 0x101
}

// run drives the Cpu one Tick at a time under mu, so every cycle -- not
// just the boundary hook -- is serialized against Draw; mu is released
// between cycles, not held for a whole instruction. It checks
// ctx.Done() at each instruction boundary, the same granularity
// RunWithCallback's hook would have used.
func (g *game) run(ctx context.Context) {
	for {
		g.mu.Lock()
		if len(g.c.PendingMicroOps()) == 0 {
			select {
			case <-ctx.Done():
				g.c.Halt()
			default:
				g.hook(g.c)
			}
		}
		g.c.Tick()
		running := g.c.Running()
		g.mu.Unlock()

		if !running {
			return
		}
	}
}

func main() {
	flag.Parse()
	if *romFile == "" {
		log.Fatalf("usage: %s -rom <path>", os.Args[0])
	}

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	rom, err := ines.Load(f)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	bus, err := nesbus.New(rom)
	if err != nil {
		log.Fatalf("building bus: %v", err)
	}

	c := cpu.New(bus)
	c.Reset()

	g := &game{c: c, bus: bus}

	ctx, cancel := context.WithCancel(context.Background())
	go g.run(ctx)

	ebiten.SetWindowSize(frameWidth*8, frameHeight*8)
	ebiten.SetWindowTitle("nescycle")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	cancel()
}
