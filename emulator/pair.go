package emulator

import (
	"strings"

	"github.com/ezrec/branchscope/cpu"
)

// Pair is a pair of opposite branch hypotheses over one flag.
type Pair struct {
	Name  string
	Set   cpu.Mnemonic // Taken when the flag is set.
	Clear cpu.Mnemonic // Taken when the flag is clear.
}

func (pair Pair) String() string {
	return pair.Name
}

// Pairs are the four flag pairs, in report order.
var Pairs = []Pair{
	{Name: "carry", Set: cpu.MN_BCS, Clear: cpu.MN_BCC},
	{Name: "zero", Set: cpu.MN_BEQ, Clear: cpu.MN_BNE},
	{Name: "sign", Set: cpu.MN_BMI, Clear: cpu.MN_BPL},
	{Name: "overflow", Set: cpu.MN_BVS, Clear: cpu.MN_BVC},
}

// LookupPair finds one of the Pairs by name, ignoring case.
func LookupPair(name string) (pair Pair, err error) {
	for _, pair = range Pairs {
		if strings.EqualFold(pair.Name, name) {
			return
		}
	}

	pair = Pair{}
	err = ErrPairUnknown(name)
	return
}

// NewPair makes a custom pair from two conditional branch names.
func NewPair(set, clear string) (pair Pair, err error) {
	pair.Set, err = cpu.ParseBranch(set)
	if err != nil {
		return
	}
	pair.Clear, err = cpu.ParseBranch(clear)
	if err != nil {
		return
	}

	pair.Name = pair.Set.String() + "/" + pair.Clear.String()
	return
}
