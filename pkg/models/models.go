package models

import "strings"

// Denomination identifies one of the four coin types held by the bank.
// Its numeric value doubles as the reserve's position in a ReserveCollection.
type Denomination uint8

const (
	Quarter Denomination = iota
	Dime
	Nickel
	Penny
)

// DenominationCount is the number of denominations the bank tracks.
const DenominationCount = 4

var denominationInfo = [DenominationCount]struct {
	name       string
	singular   string
	minorUnits int64
}{
	Quarter: {name: "Quarters", singular: "quarter", minorUnits: 25},
	Dime:    {name: "Dimes", singular: "dime", minorUnits: 10},
	Nickel:  {name: "Nickels", singular: "nickel", minorUnits: 5},
	Penny:   {name: "Pennies", singular: "penny", minorUnits: 1},
}

// Denominations lists every denomination in collection order.
func Denominations() []Denomination {
	return []Denomination{Quarter, Dime, Nickel, Penny}
}

// ParseDenomination matches a singular coin name, ignoring case.
func ParseDenomination(name string) (Denomination, bool) {
	lower := strings.ToLower(name)
	for _, d := range Denominations() {
		if denominationInfo[d].singular == lower {
			return d, true
		}
	}
	return 0, false
}

// AcceptedNames returns the singular names ParseDenomination understands.
func AcceptedNames() []string {
	names := make([]string, 0, DenominationCount)
	for _, d := range Denominations() {
		names = append(names, denominationInfo[d].singular)
	}
	return names
}

// Valid reports whether d is one of the four known denominations.
func (d Denomination) Valid() bool {
	return int(d) < DenominationCount
}

// Name is the display name used in responses, e.g. "Quarters".
func (d Denomination) Name() string {
	if !d.Valid() {
		return ""
	}
	return denominationInfo[d].name
}

// String returns the singular form accepted on input.
func (d Denomination) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return denominationInfo[d].singular
}

// MinorUnits is the face value of a single coin in cents.
func (d Denomination) MinorUnits() int64 {
	if !d.Valid() {
		return 0
	}
	return denominationInfo[d].minorUnits
}

// Reserve is one denomination's current and maximum coin count.
type Reserve struct {
	Denomination Denomination
	CurrentCount uint
	MaxCount     uint
}

// Value is the monetary value of the coins currently held, in cents.
func (r Reserve) Value() int64 {
	return r.Denomination.MinorUnits() * int64(r.CurrentCount)
}

// ReserveCollection holds exactly one Reserve per denomination, indexed by Denomination.
type ReserveCollection [DenominationCount]Reserve

// TotalMinorUnits sums the value of every reserve in cents.
func (c ReserveCollection) TotalMinorUnits() int64 {
	var total int64
	for _, r := range c {
		total += r.Value()
	}
	return total
}

// SeedReserves returns the collection the bank starts with.
func SeedReserves() ReserveCollection {
	return ReserveCollection{
		Quarter: {Denomination: Quarter, CurrentCount: 4, MaxCount: 20},
		Dime:    {Denomination: Dime, CurrentCount: 8, MaxCount: 50},
		Nickel:  {Denomination: Nickel, CurrentCount: 0, MaxCount: 15},
		Penny:   {Denomination: Penny, CurrentCount: 0, MaxCount: 50},
	}
}
