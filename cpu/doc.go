// Package cpu implements the assembler and the virtual CPU for branchscope.
//
// The CPU is a byte-precise subset of the 6502: registers A, X and Y, the
// carry, zero, overflow and negative flags, a growable byte stack, and a
// variable store in place of numeric memory. Programs are bounded by a tick
// budget rather than by a cycle count.
//
// The assembler accepts a 6502-style syntax with global, '@' local and
// anonymous (':') labels, and resolves every label reference to a program
// index before execution. The custom `branch` instruction performs the
// conditional branch selected at run time by the branch-type variable, and
// records whether it was taken.
package cpu
