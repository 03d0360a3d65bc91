package validator

import (
	"context"
	"testing"

	"svw.info/puzzlegen/internal/domain"
)

func TestValidateFindsConflicts(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][8] = 5 // row conflict
	b.Values[8][0] = 5 // column conflict

	ok, conf, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatalf("conflicting board reported valid")
	}
	if len(conf) == 0 {
		t.Fatalf("no conflict coordinates reported")
	}
}

func TestValidateEmptyBoard(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{})
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("empty board: ok=%v conf=%v err=%v", ok, conf, err)
	}
}

func TestValidateBoxConflict(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 7
	b.Values[1][1] = 7 // same 3x3 box, different row and column

	ok, _, err := New().Validate(context.Background(), &b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatalf("box conflict not detected")
	}
}

func TestComplete(t *testing.T) {
	solved := domain.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	v := New()
	ctx := context.Background()
	if !v.Complete(ctx, &domain.Board{Values: solved}) {
		t.Fatalf("valid complete grid reported incomplete")
	}
	partial := solved
	partial[4][4] = 0
	if v.Complete(ctx, &domain.Board{Values: partial}) {
		t.Fatalf("grid with a hole reported complete")
	}
	invalid := solved
	invalid[0][0] = solved[0][1]
	if v.Complete(ctx, &domain.Board{Values: invalid}) {
		t.Fatalf("conflicting grid reported complete")
	}
}
