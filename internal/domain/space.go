package domain

import (
	"math/big"
	"sort"
	"strings"
)

type Availability int

const (
	Available Availability = iota
	Booked
)

type Point struct {
	X float64
	Y float64
}

type Space struct {
	UniqueID     string
	SpaceID      string
	Label        string
	Occupant     string
	Coordinates  *Point
	Availability Availability
}

// SpaceCategory drives both the selection list colours and the floor-plan markers.
type SpaceCategory int

const (
	CategoryPreferred SpaceCategory = iota
	CategoryAvailable
	CategoryFollowed
	CategoryTaken
)

func (c SpaceCategory) String() string {
	switch c {
	case CategoryPreferred:
		return "preferred"
	case CategoryAvailable:
		return "available"
	case CategoryFollowed:
		return "followed"
	default:
		return "taken"
	}
}

// Classify puts a space in exactly one category.
func Classify(space Space, preferredID string, followed map[string]bool) SpaceCategory {
	if space.Availability == Available {
		if preferredID != "" && space.SpaceID == preferredID {
			return CategoryPreferred
		}
		return CategoryAvailable
	}
	if followed[space.Occupant] {
		return CategoryFollowed
	}
	return CategoryTaken
}

// NaturalLess compares labels by alternating non-digit and digit runs; digit runs
// compare numerically and the rest case-insensitively, so "Desk 2" < "Desk 10".
func NaturalLess(a, b string) bool {
	ra, rb := splitRuns(a), splitRuns(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if c := compareRun(ra[i], rb[i]); c != 0 {
			return c < 0
		}
	}
	return len(ra) < len(rb)
}

type labelRun struct {
	text    string
	numeric bool
}

func splitRuns(s string) []labelRun {
	var runs []labelRun
	var cur strings.Builder
	curNumeric := false
	for i, r := range s {
		digit := r >= '0' && r <= '9'
		if i > 0 && digit != curNumeric {
			runs = append(runs, labelRun{text: cur.String(), numeric: curNumeric})
			cur.Reset()
		}
		curNumeric = digit
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, labelRun{text: cur.String(), numeric: curNumeric})
	}
	return runs
}

func compareRun(a, b labelRun) int {
	if a.numeric && b.numeric {
		na, okA := new(big.Int).SetString(a.text, 10)
		nb, okB := new(big.Int).SetString(b.text, 10)
		if okA && okB {
			if c := na.Cmp(nb); c != 0 {
				return c
			}
			return strings.Compare(a.text, b.text)
		}
	}
	if a.numeric != b.numeric {
		// digits sort before letters, as in a plain string compare
		if a.numeric {
			return -1
		}
		return 1
	}
	return strings.Compare(strings.ToLower(a.text), strings.ToLower(b.text))
}

// SortSpaces orders spaces by natural label order, keeping input order for ties.
func SortSpaces(spaces []Space) {
	sort.SliceStable(spaces, func(i, j int) bool {
		return NaturalLess(spaces[i].Label, spaces[j].Label)
	})
}

// OccupancyMap maps occupant display names to desk labels. The occupant of
// ownSpaceID is reported as YouName.
func OccupancyMap(booked []Space, ownSpaceID string) map[string]string {
	out := make(map[string]string, len(booked))
	for _, space := range booked {
		name := space.Occupant
		if ownSpaceID != "" && space.SpaceID == ownSpaceID {
			name = YouName
		}
		if name == "" {
			continue
		}
		out[name] = space.Label
	}
	return out
}
