package models

import "testing"

func TestRankForPoints(t *testing.T) {
	tests := []struct {
		points int64
		want   string
	}{
		{0, RankNewHand},
		{99, RankNewHand},
		{100, RankRegular},
		{499, RankRegular},
		{500, RankGrinder},
		{1499, RankGrinder},
		{1500, RankHighRoller},
		{4999, RankHighRoller},
		{5000, RankLegend},
		{1000000, RankLegend},
	}

	for _, tt := range tests {
		if got := RankForPoints(tt.points); got != tt.want {
			t.Errorf("RankForPoints(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}
