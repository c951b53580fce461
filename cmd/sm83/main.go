package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// config holds the command line options of the harness.
type config struct {
	image    string
	pc       uint
	steps    uint64
	trace    bool
	debug    bool
	stateIn  string
	stateOut string
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.image, "image", "", "The memory image to load at 0x0000 (raw, .gz, .zip or .7z)")
	flag.UintVar(&cfg.pc, "pc", 0x0100, "The address to start executing from")
	flag.Uint64Var(&cfg.steps, "steps", 1_000_000, "The maximum number of steps to run")
	flag.BoolVar(&cfg.trace, "trace", false, "Log every instruction before it executes")
	flag.BoolVar(&cfg.debug, "debug", false, "Stop at the LD B, B software breakpoint")
	flag.StringVar(&cfg.stateIn, "state-in", "", "The state file to resume from")
	flag.StringVar(&cfg.stateOut, "state-out", "", "The state file to save to when the run ends")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOutput(os.Stderr, cfg.verbose || cfg.trace)
	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Fatal(err.Error())
	}
}

// run executes the harness until the step budget is spent, the CPU
// locks or a breakpoint is hit, then writes the final registers and
// memory checksum to out.
func run(cfg config, logger log.Logger, out io.Writer) error {
	var m *mmu.MMU
	var c *cpu.CPU

	opts := []cpu.Opt{cpu.WithLogger(logger)}
	if cfg.debug {
		opts = append(opts, cpu.Debug())
	}

	if cfg.stateIn != "" {
		s, err := types.LoadStateFile(cfg.stateIn)
		if err != nil {
			return fmt.Errorf("loading state %s: %w", cfg.stateIn, err)
		}
		m = mmu.NewMMU(mmu.WithLogger(logger))
		c = cpu.NewCPU(m, nil, append(opts, cpu.WithState(s))...)
		m.Load(s)
		if err := s.Err(); err != nil {
			return fmt.Errorf("loading state %s: %w", cfg.stateIn, err)
		}
		logger.Infof("resumed from %s at %04X", cfg.stateIn, c.PC)
	} else {
		if cfg.image == "" {
			return fmt.Errorf("no image given, use -image or -state-in")
		}
		image, err := utils.LoadFile(cfg.image)
		if err != nil {
			return fmt.Errorf("loading image %s: %w", cfg.image, err)
		}
		m = mmu.NewMMU(mmu.WithLogger(logger))
		n := m.LoadImage(image)
		logger.Infof("loaded %d bytes from %s", n, cfg.image)

		c = cpu.NewCPU(m, nil, opts...)
		c.PC = uint16(cfg.pc)
	}

	var steps uint64
	for ; steps < cfg.steps; steps++ {
		if cfg.trace && !c.Halted() && !c.Locked() {
			logger.Debugf("%s", c.Trace())
		}
		c.Step()

		if c.Locked() {
			logger.Errorf("stopped after %d steps: %s", steps+1, c.Err())
			steps++
			break
		}
		if c.DebugBreakpoint {
			logger.Infof("breakpoint at %04X after %d steps", c.PC-1, steps+1)
			steps++
			break
		}
	}

	fmt.Fprintf(out, "steps=%d cycles=%d\n", steps, c.Cycles())
	fmt.Fprintf(out, "emulated=%s\n", c.Elapsed())
	fmt.Fprintf(out, "AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X IME=%t %s\n",
		c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP, c.PC, c.IME(), c.Flags())
	fmt.Fprintf(out, "checksum=%016x\n", m.Checksum())

	if cfg.stateOut != "" {
		s := types.NewState()
		c.Save(s)
		m.Save(s)
		if err := s.SaveToFile(cfg.stateOut); err != nil {
			return fmt.Errorf("saving state %s: %w", cfg.stateOut, err)
		}
		logger.Infof("saved state to %s", cfg.stateOut)
	}

	return nil
}
