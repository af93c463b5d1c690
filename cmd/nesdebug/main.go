// Command nesdebug is a small cobra CLI around the cpu package: run a ROM
// headlessly to its first BRK, or produce a static disassembly listing.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"nescycle/cpu"
	"nescycle/disasm"
	"nescycle/ines"
	"nescycle/nesbus"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nesdebug",
		Short: "Inspect and drive the nescycle 6502 core from a terminal",
	}

	var interactive bool
	runCmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a ROM and run it headlessly to its first BRK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCpu(args[0])
			if err != nil {
				return err
			}
			if interactive {
				if err := c.EnableDebug(); err != nil {
					return fmt.Errorf("debug TUI: %w", err)
				}
				return nil
			}
			c.Run()
			fmt.Println(c)
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "drive the step-by-step debug TUI instead of running to completion")

	var startAddr uint16
	var length int
	disasmCmd := &cobra.Command{
		Use:   "disasm <rom>",
		Short: "Print a static disassembly of a ROM's PRG bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rom, err := ines.Load(f)
			if err != nil {
				return err
			}

			code := rom.PRG
			if length > 0 && length < len(code) {
				code = code[:length]
			}
			for _, line := range disasm.Listing(code, startAddr) {
				fmt.Println(line)
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&startAddr, "start", 0x8000, "address the first disassembled byte is assumed to sit at")
	disasmCmd.Flags().IntVar(&length, "length", 0, "bytes to disassemble (0 = whole PRG bank)")

	rootCmd.AddCommand(runCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadCpu(path string) (*cpu.Cpu, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM: %w", err)
	}
	defer f.Close()

	rom, err := ines.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	bus, err := nesbus.New(rom)
	if err != nil {
		return nil, fmt.Errorf("building bus: %w", err)
	}

	c := cpu.New(bus)
	c.Reset()
	return c, nil
}
