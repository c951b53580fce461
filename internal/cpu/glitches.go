package cpu

// halt enters HALT mode. When the IME is disabled and an interrupt is
// already pending, the CPU does not halt at all; instead it fails to
// increment PC when fetching the next opcode, so the byte following
// HALT is read twice.
//
//	HALT
func (c *CPU) halt() {
	if !c.IRQ.IME && c.IRQ.HasInterrupts() {
		c.haltBug = true
		c.log.Debugf("cpu: HALT bug triggered at %04X", c.PC-1)
		return
	}
	c.mode = ModeHalt
	c.log.Debugf("cpu: halted at %04X", c.PC-1)
}

// fetchOpcode reads the opcode at PC. PC is left unchanged for the
// single fetch following a HALT bug.
func (c *CPU) fetchOpcode() uint8 {
	if c.haltBug {
		c.haltBug = false
		return c.b.Read(c.PC)
	}
	return c.fetch()
}
