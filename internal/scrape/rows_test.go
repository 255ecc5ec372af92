package scrape

import (
	"testing"
)

func TestParseRows(t *testing.T) {
	rows := []rawRow{
		{
			CourseName:  "Pebble Creek",
			TimeText:    "7:30 AM",
			PriceText:   "$80.00",
			HolesText:   "9 Holes",
			PlayersText: "1-4 players",
			BookingURL:  "https://golfnow.test/book/1",
		},
		{
			CourseName:  "Pebble Creek",
			TimeText:    "8:00 AM",
			PriceText:   "$120.00",
			HolesText:   "18 Holes",
			PlayersText: "2 players",
			BookingURL:  "https://golfnow.test/book/2",
		},
	}

	listings := parseRows(3, "GolfNow", "2023-06-01", rows)
	if len(listings) != 2 {
		t.Fatalf("parseRows() returned %d listings, want 2", len(listings))
	}

	first := listings[0]
	if first.PlatformID != 3 {
		t.Errorf("PlatformID = %d, want 3", first.PlatformID)
	}
	if first.Holes != 9 || first.Capacity != 4 || first.TotalCost != 80.00 {
		t.Errorf("parsed fields = holes %d, capacity %d, cost %v", first.Holes, first.Capacity, first.TotalCost)
	}
	if first.DateTime.Hour() != 7 || first.DateTime.Minute() != 30 {
		t.Errorf("DateTime = %v, want 07:30", first.DateTime)
	}
	if listings[1].Capacity != 2 {
		t.Errorf("second row capacity = %d, want 2", listings[1].Capacity)
	}
}

func TestParseRowsDegradesDefensively(t *testing.T) {
	rows := []rawRow{
		{
			// Garbage numeric text should default, not drop the row.
			CourseName:  "Pebble Creek",
			TimeText:    "7:30 AM",
			PriceText:   "call pro shop",
			HolesText:   "regulation",
			PlayersText: "group",
			BookingURL:  "https://golfnow.test/book/1",
		},
	}

	listings := parseRows(1, "GolfNow", "2023-06-01", rows)
	if len(listings) != 1 {
		t.Fatalf("parseRows() returned %d listings, want 1", len(listings))
	}

	got := listings[0]
	if got.Holes != 18 {
		t.Errorf("Holes = %d, want default 18", got.Holes)
	}
	if got.Capacity != 4 {
		t.Errorf("Capacity = %d, want default 4", got.Capacity)
	}
	if got.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", got.TotalCost)
	}
}

func TestParseRowsSkipsRowsWithoutIdentity(t *testing.T) {
	rows := []rawRow{
		{CourseName: "", TimeText: "7:30 AM", BookingURL: "https://x/1"},
		{CourseName: "Pebble Creek", TimeText: "7:30 AM", BookingURL: ""},
		{CourseName: "Pebble Creek", TimeText: "8:00 AM", BookingURL: "https://x/2"},
	}

	listings := parseRows(1, "GolfNow", "2023-06-01", rows)
	if len(listings) != 1 {
		t.Fatalf("parseRows() returned %d listings, want 1", len(listings))
	}
	if listings[0].BookingURL != "https://x/2" {
		t.Errorf("kept wrong row: %+v", listings[0])
	}
}

func TestParseRowsEmpty(t *testing.T) {
	// No results container means no rows; that is zero listings, not an error.
	if got := parseRows(1, "GolfNow", "2023-06-01", nil); len(got) != 0 {
		t.Errorf("parseRows(nil) = %v, want empty", got)
	}
}

func TestSearchURL(t *testing.T) {
	g := NewGolfNow(3)

	tests := []struct {
		name    string
		params  Params
		want    string
		wantErr bool
	}{
		{
			name:   "Full criteria",
			params: Params{Location: "90210", Date: "2023-06-01", Players: 2, Holes: 18},
			want:   "https://www.golfnow.com/tee-times/search#90210/06-01-2023/2/18",
		},
		{
			name:   "Zero players defaults to one, zero holes searches both",
			params: Params{Location: "10001", Date: "2023-06-01"},
			want:   "https://www.golfnow.com/tee-times/search#10001/06-01-2023/1/0",
		},
		{
			name:    "Bad date",
			params:  Params{Location: "90210", Date: "06/01/2023"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.searchURL(tt.params)
			if (err != nil) != tt.wantErr {
				t.Fatalf("searchURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("searchURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScrapersRegistry(t *testing.T) {
	g := NewGolfNow(3)
	registry := Scrapers{g.Name(): g}

	if _, ok := registry.For("GolfNow"); !ok {
		t.Error("For(GolfNow) not found")
	}
	if _, ok := registry.For("TeeOff"); ok {
		t.Error("For(TeeOff) should be absent")
	}
}
