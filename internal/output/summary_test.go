package output

import (
	"testing"

	"github.com/mobil-koeln/treni-cli/internal/models"
	"github.com/mobil-koeln/treni-cli/internal/testutil"
)

func TestTrainSummary(t *testing.T) {
	tests := []struct {
		name  string
		train models.Train
		want  string
	}{
		{
			name:  "on time",
			train: models.Train{Number: "9412", Destination: "Milano Centrale", Time: "14:32", Platform: "5"},
			want:  "Train to Milano Centrale (9412), with scheduled departure at 14:32 from platform 5, on time",
		},
		{
			name:  "delayed",
			train: models.Train{Number: "2619", Destination: "Venezia", Time: "09:05", Platform: "12", Delay: 7, IsDelayed: true},
			want:  "Train to Venezia (2619), with scheduled departure at 09:05 from platform 12, delayed by 7 minutes",
		},
		{
			name:  "no platform",
			train: models.Train{Number: "10001", Destination: "Bergamo", Time: "14:45"},
			want:  "Train to Bergamo (10001), with scheduled departure at 14:45 from platform -, on time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, TrainSummary(tt.train), tt.want)
		})
	}
}

func TestTrainLabel(t *testing.T) {
	testutil.AssertEqual(t, TrainLabel(models.Train{Number: "9547", Carrier: "TRENITALIA"}), "TRENITALIA 9547")
	testutil.AssertEqual(t, TrainLabel(models.Train{Number: "9547"}), "9547")
}

func TestDelayTag(t *testing.T) {
	testutil.AssertEqual(t, DelayTag(models.Train{Delay: 7, IsDelayed: true}), "+7'")
	testutil.AssertEqual(t, DelayTag(models.Train{}), "")
}
