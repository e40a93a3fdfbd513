package matchsim

import (
	"strconv"
	"strings"
)

// Formation holds the outfield line counts of a formation code.
type Formation struct {
	Defenders   int
	Midfielders int
	Forwards    int
}

var DefaultFormation = Formation{Defenders: 4, Midfielders: 3, Forwards: 3}

// ParseFormation reads codes such as "4-4-2" or "4-2-3-1". Four-part codes fold
// the two middle lines into midfield. Anything it cannot read yields 4-3-3.
func ParseFormation(code string) Formation {
	parts := strings.Split(strings.TrimSpace(code), "-")
	counts := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return DefaultFormation
		}
		counts = append(counts, n)
	}

	switch len(counts) {
	case 3:
		return Formation{Defenders: counts[0], Midfielders: counts[1], Forwards: counts[2]}
	case 4:
		return Formation{Defenders: counts[0], Midfielders: counts[1] + counts[2], Forwards: counts[3]}
	default:
		return DefaultFormation
	}
}
