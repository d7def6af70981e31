package identity

import (
	"strconv"
	"strings"
)

// UnknownID is the fallback identifier used when the identity fields are
// incomplete. It is a documented sentinel, not an error: records stored
// under it are still valid records.
const UnknownID = "unknown"

// Fields holds the demographic inputs a rater identifier is derived from.
// The initials are the first two letters of each parent's given name.
type Fields struct {
	MotherInitials string `json:"mother_initials"`
	FatherInitials string `json:"father_initials"`
	BirthDay       int    `json:"birth_day"`
	BirthMonth     int    `json:"birth_month"`
	BirthYear      int    `json:"birth_year"`
	Siblings       int    `json:"siblings"`
}

// Normalize lowercases the initials and truncates them to two runes,
// mirroring what the questionnaire form does as the rater types.
func (f Fields) Normalize() Fields {
	f.MotherInitials = normalizeInitials(f.MotherInitials)
	f.FatherInitials = normalizeInitials(f.FatherInitials)
	return f
}

// Valid reports whether the fields are sufficient to derive a real
// identifier, i.e. both initials are non-empty after normalization.
func (f Fields) Valid() bool {
	n := f.Normalize()
	return n.MotherInitials != "" && n.FatherInitials != ""
}

// DeriveID computes the rater identifier:
//
//	mother_initials + father_initials + (day+month) + (digitSum(year) * (siblings+1))
//
// The same inputs always yield the same identifier. Invalid input degrades
// to UnknownID rather than failing.
func DeriveID(f Fields) string {
	n := f.Normalize()
	if !n.Valid() {
		return UnknownID
	}

	dateSum := n.BirthDay + n.BirthMonth
	siblingFactor := digitSum(n.BirthYear) * (n.Siblings + 1)

	var b strings.Builder
	b.WriteString(n.MotherInitials)
	b.WriteString(n.FatherInitials)
	b.WriteString(strconv.Itoa(dateSum))
	b.WriteString(strconv.Itoa(siblingFactor))
	return b.String()
}

func normalizeInitials(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// digitSum returns the sum of the decimal digits of the absolute value of n.
func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
