// Package methods holds the rule tables for every shipped romanization
// standard, one file per source language. Tables are data: ordered
// character maps plus pre/post rule lists executed by internal/translit.
package methods

import (
	"fmt"

	"github.com/srobertson/xlit/internal/translit"
)

// nonWord is the boundary class used where a rule needs word-initial or
// word-final context. RE2's \b only understands ASCII, so the class is
// explicit: anything that is not a letter, digit, or underscore.
const nonWord = `[^\p{L}\p{N}_]`

var specs = []func() translit.Spec{
	azeriIC,
	belarussianIC,
	bulgarianIC,
	georgianIC,
	kazakhIC,
	kyrghyzIC,
	macedonianIC,
	mongolianMNS,
	russianChinesePinyin,
	russianJapaneseHepburn,
	russianALALC,
	russianBGN,
	russianGOST779B,
	russianIC,
	russianISO9,
	russianScientific,
	serbianIC,
	tajikIC,
	tatarIC,
	turkmenIC,
	ukrainianIC,
	ukrainianNationalStandard,
	ukrainianChineseAcademic,
	uyghurIC,
	uzbekIC,
}

// All compiles every shipped standard in declaration order. A table defect
// in any standard fails the whole discovery; a partially usable catalog is
// worse than a loud startup failure.
func All() ([]*translit.Method, error) {
	out := make([]*translit.Method, 0, len(specs))
	for _, spec := range specs {
		m, err := translit.NewMethod(spec())
		if err != nil {
			return nil, fmt.Errorf("compiling shipped methods: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

// collapseDoubled builds pre-rules that reduce a doubled source letter to a
// single one before the map would emit a doubled multigraph ("жж" must give
// "zh", never "zhzh"). The case of the first letter wins, so "Жж", "ЖЖ" both
// collapse to "Ж" while "жЖ", "жж" collapse to "ж".
func collapseDoubled(letters ...[2]rune) []translit.Rule {
	rules := make([]translit.Rule, 0, len(letters)*4)
	for _, l := range letters {
		lo, up := string(l[0]), string(l[1])
		rules = append(rules,
			translit.Rule{Pattern: up + up, Rewrite: up},
			translit.Rule{Pattern: up + lo, Rewrite: up},
			translit.Rule{Pattern: lo + up, Rewrite: lo},
			translit.Rule{Pattern: lo + lo, Rewrite: lo},
		)
	}
	return rules
}
