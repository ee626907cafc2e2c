package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// VarKey names a variable slot: an identifier, an identifier with a
// non-zero offset, or a bare numeric address (empty Name).
//
// Name and Offset are kept apart, so the slot `foo` offset 3 is not the
// same slot as a variable literally named "foo+3".
type VarKey struct {
	Name   string
	Offset int
}

// Var returns the key for a plain identifier.
func Var(name string) VarKey {
	return VarKey{Name: name}
}

// String returns the key as written in assembly source.
func (key VarKey) String() string {
	switch {
	case len(key.Name) == 0:
		return fmt.Sprintf("%d", key.Offset)
	case key.Offset == 0:
		return key.Name
	}
	return fmt.Sprintf("%s%+d", key.Name, key.Offset)
}

// Reserved variables. The '!' prefix cannot appear in an assembled
// identifier, so programs can neither read nor clobber them.
var (
	VAR_BRANCH_TYPE = VarKey{Name: "!branchType"} // Selected branch mnemonic.
	VAR_BRANCH_HIT  = VarKey{Name: "!branchHit"}  // 1 if the last `branch` condition held.
)

// Vars is the variable store. Unknown keys read as 0.
type Vars struct {
	slot map[VarKey]int
}

// Get returns the value of a slot, or 0 if unset.
func (vars *Vars) Get(key VarKey) int {
	return vars.slot[key]
}

// Lookup returns the value of a slot, and whether it has been set.
func (vars *Vars) Lookup(key VarKey) (value int, ok bool) {
	value, ok = vars.slot[key]
	return
}

// Set sets the value of a slot.
func (vars *Vars) Set(key VarKey, value int) {
	if vars.slot == nil {
		vars.slot = make(map[VarKey]int, 8)
	}
	vars.slot[key] = value
}

// Delete removes a slot.
func (vars *Vars) Delete(key VarKey) {
	delete(vars.slot, key)
}

// Len returns the number of set slots, reserved slots included.
func (vars *Vars) Len() int {
	return len(vars.slot)
}

// All iterates over all set slots, in no particular order.
func (vars *Vars) All() iter.Seq2[VarKey, int] {
	return maps.All(vars.slot)
}

// Clone returns an independent copy of the store.
func (vars *Vars) Clone() (clone Vars) {
	clone.slot = maps.Clone(vars.slot)
	return
}

// SetBranchType selects which conditional branch `branch` performs.
func (vars *Vars) SetBranchType(mn Mnemonic) (err error) {
	if !mn.IsConditionalBranch() {
		err = ErrBranchType(mn.String())
		return
	}
	vars.Set(VAR_BRANCH_TYPE, int(mn))
	return
}

// BranchType returns the selected conditional branch. Defaults to bcc.
func (vars *Vars) BranchType() Mnemonic {
	value, ok := vars.Lookup(VAR_BRANCH_TYPE)
	if !ok || !Mnemonic(value).IsConditionalBranch() {
		return MN_BCC
	}
	return Mnemonic(value)
}

// BranchHit reports whether the last executed `branch` instruction was
// taken. ok is false if no `branch` instruction was ever executed.
func (vars *Vars) BranchHit() (hit bool, ok bool) {
	value, ok := vars.Lookup(VAR_BRANCH_HIT)
	hit = value != 0
	return
}

func (vars *Vars) setBranchHit(hit bool) {
	value := 0
	if hit {
		value = 1
	}
	vars.Set(VAR_BRANCH_HIT, value)
}

// String lists the user variables, sorted by key.
func (vars *Vars) String() string {
	var lines []string
	for key, value := range vars.slot {
		if strings.HasPrefix(key.Name, "!") {
			continue
		}
		lines = append(lines, fmt.Sprintf("%v=%d", key, value))
	}
	slices.Sort(lines)
	return strings.Join(lines, " ")
}
