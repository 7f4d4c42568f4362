// Package catalog exposes the static criteria card catalog: how many
// law rows each criteria card carries. The catalog is a CUE document
// embedded in the binary and validated at load time.
package catalog

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed criteria.cue
var criteriaCUE string

// lawCounts[i] is the number of law rows on criteria card i+1.
var lawCounts = mustLawCounts()

// mustLawCounts compiles and decodes the embedded catalog. The CUE
// schema constrains every count to 1..9; a failure here means the
// embedded asset is broken, so it panics at package init.
func mustLawCounts() []int {
	ctx := cuecontext.New()
	v := ctx.CompileString(criteriaCUE, cue.Filename("criteria.cue"))
	if err := v.Err(); err != nil {
		panic(fmt.Sprintf("catalog: compiling criteria.cue: %v", err))
	}
	var counts []int
	if err := v.LookupPath(cue.ParsePath("laws")).Decode(&counts); err != nil {
		panic(fmt.Sprintf("catalog: decoding criteria.cue: %v", err))
	}
	if len(counts) == 0 {
		panic("catalog: criteria.cue has no law counts")
	}
	return counts
}

// Cards returns the number of criteria cards in the catalog.
func Cards() int {
	return len(lawCounts)
}

// LawCount returns the number of law rows on a criteria card.
// criteria is the 1-based card id; unknown ids return (0, false).
func LawCount(criteria int) (int, bool) {
	if criteria < 1 || criteria > len(lawCounts) {
		return 0, false
	}
	return lawCounts[criteria-1], true
}

// TotalLawRows sums the law rows across a dealt hand of criterias.
// Unknown criteria ids contribute zero rows.
func TotalLawRows(criterias []int) int {
	total := 0
	for _, c := range criterias {
		n, _ := LawCount(c)
		total += n
	}
	return total
}
