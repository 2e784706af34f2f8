package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Placement is a player's 1-based finishing rank in a single race.
// The zero value is the DNF sentinel. Clients historically submitted both
// the integer 0 and the literal string "DNF"; they are interchangeable.
type Placement int

const PlacementDNF Placement = 0

// pointsTable maps placement rank (1st through 12th) to points.
var pointsTable = [12]int{15, 12, 10, 8, 7, 6, 5, 4, 3, 2, 1, 0}

func (p Placement) IsDNF() bool {
	return p <= PlacementDNF
}

// Points returns the points awarded for the placement. DNF and any rank
// beyond the table award zero.
func (p Placement) Points() int {
	if p.IsDNF() {
		return 0
	}
	index := int(p) - 1
	if index >= len(pointsTable) {
		return 0
	}
	return pointsTable[index]
}

func (p Placement) MarshalJSON() ([]byte, error) {
	if p.IsDNF() {
		return []byte(`"DNF"`), nil
	}
	return json.Marshal(int(p))
}

func (p *Placement) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if strings.EqualFold(strings.TrimSpace(asString), "DNF") {
			*p = PlacementDNF
			return nil
		}
		return fmt.Errorf("invalid placement %q", asString)
	}

	var asInt int
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("placement must be an integer or \"DNF\": %w", err)
	}
	if asInt < 0 {
		return fmt.Errorf("invalid placement %d", asInt)
	}

	*p = Placement(asInt)
	return nil
}
