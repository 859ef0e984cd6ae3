// Package vm implements the forkable machine state of the corevm virtual
// machine.
//
// A State owns a register file and references a memory segment. Forking a
// State copies the register file immediately and shares the memory segment
// until one of the states writes to it. Every memory write goes through
// Materialize, which gives the writer a private copy whenever the segment is
// still shared.
//
// Registers carry a symbolic flag for use by a concolic execution engine: a
// symbolic register's concrete value is not trusted, and its behaviour is
// tracked by externally built path constraints instead.
package vm
