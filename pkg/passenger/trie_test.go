package passenger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	r := NewRegistry()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "john", want: "John"},
		{in: "jOHN", want: "John"},
		{in: "J", want: "J"},
		{in: "élodie", want: "Élodie"},
		{in: "mary ANN", want: "Mary ann"},
		{in: "", want: ""},
	}
	for _, tt := range testCases {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Normalize(tt.in))
		})
	}
}

func TestSearchForPassengers(t *testing.T) {
	r := NewRegistry()
	r.AddPassengers([]string{"john", "Joanna", "JOHNNY", "alex", "john", "", "Élodie"})

	testCases := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "shared prefix", prefix: "jo", want: []string{"Joanna", "John", "Johnny"}},
		{name: "prefix is case insensitive", prefix: "JOHN", want: []string{"John", "Johnny"}},
		{name: "full name", prefix: "alex", want: []string{"Alex"}},
		{name: "unknown prefix", prefix: "zed", want: []string{}},
		{name: "longer than any name", prefix: "johnnyboy", want: []string{}},
		{name: "non ascii", prefix: "él", want: []string{"Élodie"}},
		{name: "empty prefix lists everyone", prefix: "", want: []string{"Alex", "Joanna", "John", "Johnny", "Élodie"}},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.SearchForPassengers(tt.prefix))
		})
	}

	assert.Equal(t, 5, r.Size(), "duplicates and empty names are not stored")
}
