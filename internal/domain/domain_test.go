package domain

import "testing"

func TestClueCountAndFull(t *testing.T) {
	var g Grid
	if g.ClueCount() != 0 || g.Full() {
		t.Fatalf("empty grid: count=%d full=%v", g.ClueCount(), g.Full())
	}
	g[0][0] = 1
	g[8][8] = 9
	if g.ClueCount() != 2 {
		t.Fatalf("count = %d, want 2", g.ClueCount())
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = uint8(c + 1)
		}
	}
	if !g.Full() || g.ClueCount() != 81 {
		t.Fatalf("filled grid: count=%d full=%v", g.ClueCount(), g.Full())
	}
}

func TestParseDifficultyRoundtrip(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		if got := ParseDifficulty(d.String()); got != d {
			t.Fatalf("roundtrip %v -> %q -> %v", d, d.String(), got)
		}
	}
	if ParseDifficulty("  HARD ") != Hard {
		t.Fatalf("case/space-insensitive parse failed")
	}
	if ParseDifficulty("nonsense") != Medium {
		t.Fatalf("unknown labels should default to medium")
	}
}

func TestTargetCluesOrdering(t *testing.T) {
	// harder labels request fewer clues
	if !(Easy.TargetClues() > Medium.TargetClues() &&
		Medium.TargetClues() > Hard.TargetClues() &&
		Hard.TargetClues() > Expert.TargetClues()) {
		t.Fatalf("clue budgets not strictly decreasing")
	}
	if Expert.TargetClues() < 17 {
		t.Fatalf("expert budget below the 17-clue minimum")
	}
}
