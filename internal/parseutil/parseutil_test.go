package parseutil

import "testing"

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"Dollar amount", "$45.00", 45.00},
		{"Amount with suffix", "$80.00 / player", 80.00},
		{"Thousands separator", "$1,250.50", 1250.50},
		{"Bare thousands", "1,200", 1200},
		{"Decimal comma", "From €32,50", 32.50},
		{"Decimal comma single digit", "45,5", 45.5},
		{"Integer only", "120", 120},
		{"No number", "Call for pricing", 0},
		{"Empty", "", 0},
		{"Whitespace", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.raw); got != tt.want {
				t.Errorf("Price(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIntInText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback int
		want     int
	}{
		{"Plain number", "4", 1, 4},
		{"Number in text", "up to 3 players", 1, 3},
		{"No number", "foursome", 7, 7},
		{"Empty", "", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntInText(tt.raw, tt.fallback); got != tt.want {
				t.Errorf("IntInText(%q, %d) = %d, want %d", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"Single count", "2 players", 2},
		{"Range takes upper bound", "1-4 players", 4},
		{"Unparseable defaults to four", "any", 4},
		{"Zero defaults to four", "0 players", 4},
		{"Empty defaults to four", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Capacity(tt.raw); got != tt.want {
				t.Errorf("Capacity(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHoles(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"Nine holes", "9 Holes", 9},
		{"Eighteen holes", "18 Holes", 18},
		{"Both mentioned prefers eighteen", "9 or 18 holes", 18},
		{"Unparseable defaults to eighteen", "full round", 18},
		{"Empty defaults to eighteen", "", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Holes(tt.raw); got != tt.want {
				t.Errorf("Holes(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
