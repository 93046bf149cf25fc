package models

import "testing"

func TestFilterTrains(t *testing.T) {
	trains := []Train{
		{Number: "9412", Destination: "Milano Centrale", Platform: "3"},
		{Number: "2110", Destination: "Roma Termini", Platform: "12"},
		{Number: "8805", Destination: "Milano Rogoredo", Platform: "3"},
	}

	tests := []struct {
		name        string
		platform    string
		destination string
		want        []string
	}{
		{"no filter", "", "", []string{"9412", "2110", "8805"}},
		{"platform", "3", "", []string{"9412", "8805"}},
		{"destination substring", "", "milano", []string{"9412", "8805"}},
		{"both", "3", "rogoredo", []string{"8805"}},
		{"nothing matches", "7", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTrains(trains, tt.platform, tt.destination)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d trains, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Number != tt.want[i] {
					t.Errorf("train %d = %q, want %q", i, got[i].Number, tt.want[i])
				}
			}
		})
	}
}

func TestBoard_IsEmpty(t *testing.T) {
	var nilBoard *Board
	if !nilBoard.IsEmpty() {
		t.Error("nil board should be empty")
	}
	b := &Board{Trains: []Train{{Number: "1"}}}
	if b.IsEmpty() {
		t.Error("board with trains reported empty")
	}
}

func TestStation_Label(t *testing.T) {
	if got := (Station{ID: "1728", Name: "Milano Centrale"}).Label(); got != "Milano Centrale" {
		t.Errorf("Label() = %q", got)
	}
	if got := (Station{ID: "1728"}).Label(); got != "1728" {
		t.Errorf("Label() = %q, want id fallback", got)
	}
}
