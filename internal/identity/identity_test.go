package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name     string
		fields   Fields
		expected string
	}{
		{
			name: "documented example",
			fields: Fields{
				MotherInitials: "an",
				FatherInitials: "jo",
				BirthDay:       5,
				BirthMonth:     7,
				BirthYear:      1990,
				Siblings:       2,
			},
			// date sum 12, digit sum of 1990 is 19, factor 19*3=57
			expected: "anjo1257",
		},
		{
			name: "no siblings keeps factor at digit sum",
			fields: Fields{
				MotherInitials: "ma",
				FatherInitials: "pe",
				BirthDay:       1,
				BirthMonth:     1,
				BirthYear:      2000,
				Siblings:       0,
			},
			expected: "mape22",
		},
		{
			name: "initials are lowercased and truncated",
			fields: Fields{
				MotherInitials: "ANNA",
				FatherInitials: "Jo",
				BirthDay:       5,
				BirthMonth:     7,
				BirthYear:      1990,
				Siblings:       2,
			},
			expected: "anjo1257",
		},
		{
			name: "missing mother initials degrades to unknown",
			fields: Fields{
				FatherInitials: "jo",
				BirthDay:       5,
				BirthMonth:     7,
				BirthYear:      1990,
				Siblings:       2,
			},
			expected: UnknownID,
		},
		{
			name: "missing father initials degrades to unknown",
			fields: Fields{
				MotherInitials: "an",
				BirthDay:       5,
				BirthMonth:     7,
				BirthYear:      1990,
			},
			expected: UnknownID,
		},
		{
			name: "whitespace-only initials degrade to unknown",
			fields: Fields{
				MotherInitials: "  ",
				FatherInitials: "jo",
				BirthYear:      1990,
			},
			expected: UnknownID,
		},
		{
			name: "negative year uses absolute value for digit sum",
			fields: Fields{
				MotherInitials: "an",
				FatherInitials: "jo",
				BirthDay:       5,
				BirthMonth:     7,
				BirthYear:      -1990,
				Siblings:       2,
			},
			expected: "anjo1257",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveID(tt.fields))
		})
	}
}

func TestDeriveIDDeterministic(t *testing.T) {
	fields := Fields{
		MotherInitials: "el",
		FatherInitials: "ka",
		BirthDay:       23,
		BirthMonth:     11,
		BirthYear:      1987,
		Siblings:       1,
	}

	first := DeriveID(fields)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveID(fields))
	}
}

func TestFieldsValid(t *testing.T) {
	assert.True(t, Fields{MotherInitials: "an", FatherInitials: "jo"}.Valid())
	assert.False(t, Fields{MotherInitials: "an"}.Valid())
	assert.False(t, Fields{FatherInitials: "jo"}.Valid())
	assert.False(t, Fields{}.Valid())
}

func TestDigitSum(t *testing.T) {
	assert.Equal(t, 19, digitSum(1990))
	assert.Equal(t, 2, digitSum(2000))
	assert.Equal(t, 0, digitSum(0))
	assert.Equal(t, 19, digitSum(-1990))
}
