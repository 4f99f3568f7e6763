package gamify

import (
	"testing"
	"time"
)

func Test_ClassifyBadge(t *testing.T) {
	tests := []struct {
		points int
		want   Badge
	}{
		{0, BadgeBronze},
		{1, BadgeBronze},
		{99, BadgeBronze},
		{100, BadgeSilver},
		{499, BadgeSilver},
		{500, BadgeGold},
		{999, BadgeGold},
		{1000, BadgePlatinum},
		{2499, BadgePlatinum},
		{2500, BadgeDiamond},
		{100000, BadgeDiamond},
	}
	for _, tt := range tests {
		if got := ClassifyBadge(tt.points); got != tt.want {
			t.Errorf("ClassifyBadge(%d) = %s; want %s", tt.points, got, tt.want)
		}
	}

	// more points never demotes
	prev := ClassifyBadge(0)
	rank := map[Badge]int{BadgeBronze: 0, BadgeSilver: 1, BadgeGold: 2, BadgePlatinum: 3, BadgeDiamond: 4}
	for pts := 0; pts <= 3000; pts++ {
		got := ClassifyBadge(pts)
		if rank[got] < rank[prev] {
			t.Fatalf("ClassifyBadge(%d) = %s demotes from %s", pts, got, prev)
		}
		prev = got
	}
}

func Test_Kind_Points(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindQuizCompleted, 10},
		{KindRoadmapStepCompleted, 25},
		{KindDailyLogin, 5},
		{KindResourceViewed, 2},
		{KindProjectCompleted, 50},
		{KindMentorChatStarted, 5},
		{KindProfileCompleted, 20},
	}
	for _, tt := range tests {
		if !tt.kind.Known() {
			t.Errorf("%s.Known() = false", tt.kind)
		}
		if got := tt.kind.Points(); got != tt.want {
			t.Errorf("%s.Points() = %d; want %d", tt.kind, got, tt.want)
		}
	}

	if Kind("HACKING").Known() {
		t.Error(`Kind("HACKING").Known() = true`)
	}
	if got := Kind("HACKING").Points(); got != 0 {
		t.Errorf(`Kind("HACKING").Points() = %d; want 0`, got)
	}
}

func Test_Timeframe(t *testing.T) {
	for _, tf := range []Timeframe{TimeframeAll, TimeframeMonthly, TimeframeWeekly} {
		if !tf.Valid() {
			t.Errorf("%s.Valid() = false", tf)
		}
	}
	if Timeframe("yearly").Valid() {
		t.Error(`Timeframe("yearly").Valid() = true`)
	}

	now := time.Now().UTC()
	if since := TimeframeAll.Since(now); !since.IsZero() {
		t.Errorf("all.Since() = %v; want zero", since)
	}
	if since := TimeframeWeekly.Since(now); !since.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("weekly.Since() = %v; want %v", since, now.AddDate(0, 0, -7))
	}
	if since := TimeframeMonthly.Since(now); !since.Equal(now.AddDate(0, 0, -30)) {
		t.Errorf("monthly.Since() = %v; want %v", since, now.AddDate(0, 0, -30))
	}
}
