// FILE: internal/board/board_test.go
package board

import (
	"strings"
	"testing"

	"gridchess/internal/core"
	"gridchess/internal/piece"
)

const startPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		startPlacement,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
		"r3k2r/8/8/8/8/8/8/R3K2R",
		"4k3/8/8/8/8/8/8/4K3",
	}
	for _, placement := range placements {
		b, err := FromPlacement(placement)
		if err != nil {
			t.Fatalf("parse %q: %v", placement, err)
		}
		if got := b.PlacementString(); got != placement {
			t.Errorf("round trip %q = %q", placement, got)
		}
	}
}

func TestFromPlacementRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"8",
		"8/8/8/8/8/8/8/7",
		"8/8/8/8/8/8/8/9",
		"x7/8/8/8/8/8/8/8",
		"8/8//8/8/8/8/8",
	}
	for _, placement := range bad {
		if _, err := FromPlacement(placement); err == nil {
			t.Errorf("FromPlacement(%q): want error", placement)
		}
	}
}

func TestPutReturnsDisplaced(t *testing.T) {
	b := New()
	sq := core.Position{File: 3, Rank: 3}
	if _, displaced := b.Put(piece.New(core.Pawn, core.SideWhite), sq); displaced {
		t.Error("empty square reported displacement")
	}
	prev, displaced := b.Put(piece.New(core.Queen, core.SideBlack), sq)
	if !displaced || prev.Kind != core.Pawn || prev.Side != core.SideWhite {
		t.Errorf("displaced = %v/%v, want white pawn", prev, displaced)
	}
}

func TestRemove(t *testing.T) {
	b := New()
	sq := core.Position{File: 0, Rank: 0}
	if _, ok := b.Remove(sq); ok {
		t.Error("removed from empty square")
	}
	b.Put(piece.New(core.Rook, core.SideWhite), sq)
	pc, ok := b.Remove(sq)
	if !ok || pc.Kind != core.Rook {
		t.Errorf("removed = %v/%v, want white rook", pc, ok)
	}
	if _, occupied := b.Get(sq); occupied {
		t.Error("square still occupied after removal")
	}
}

func TestPiecesOrder(t *testing.T) {
	b, err := FromPlacement(startPlacement)
	if err != nil {
		t.Fatal(err)
	}
	placements := b.Pieces()
	if len(placements) != 32 {
		t.Fatalf("pieces = %d, want 32", len(placements))
	}
	first := placements[0]
	if first.Pos != (core.Position{File: 0, Rank: 7}) || first.Piece.Kind != core.Rook {
		t.Errorf("first placement = %+v, want black rook on a8", first)
	}
	last := placements[len(placements)-1]
	if last.Pos != (core.Position{File: 7, Rank: 0}) {
		t.Errorf("last placement = %+v, want h1", last)
	}
}

func TestFind(t *testing.T) {
	b, err := FromPlacement(startPlacement)
	if err != nil {
		t.Fatal(err)
	}
	kings := b.Find(piece.New(core.King, core.SideWhite))
	if len(kings) != 1 || kings[0] != (core.Position{File: 4, Rank: 0}) {
		t.Errorf("white kings = %v, want e1", kings)
	}
	pawns := b.Find(piece.New(core.Pawn, core.SideBlack))
	if len(pawns) != 8 {
		t.Errorf("black pawns = %d, want 8", len(pawns))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := FromPlacement(startPlacement)
	if err != nil {
		t.Fatal(err)
	}
	c := b.Clone()
	c.Remove(core.Position{File: 4, Rank: 1})
	if _, ok := b.Get(core.Position{File: 4, Rank: 1}); !ok {
		t.Error("removal on clone reached the original")
	}
}

func TestSizedBoard(t *testing.T) {
	b := NewSized(10, 10)
	if b.Files() != 10 || b.Ranks() != 10 {
		t.Fatalf("dims = %dx%d, want 10x10", b.Files(), b.Ranks())
	}
	edge := core.Position{File: 9, Rank: 9}
	if !b.Contains(edge) {
		t.Error("j10 not on a 10x10 board")
	}
	if b.Contains(core.Position{File: 10, Rank: 0}) {
		t.Error("file 10 on a 10x10 board")
	}
	b.Put(piece.New(core.King, core.SideBlack), edge)
	if got := b.PlacementString(); !strings.HasPrefix(got, "9k/") {
		t.Errorf("placement = %q, want leading 9k", got)
	}
}

func TestASCII(t *testing.T) {
	b, err := FromPlacement(startPlacement)
	if err != nil {
		t.Fatal(err)
	}
	art := b.ASCII()
	lines := strings.Split(art, "\n")
	if len(lines) < 9 {
		t.Fatalf("ascii board has %d lines:\n%s", len(lines), art)
	}
	if !strings.Contains(art, "r n b q k b n r") {
		t.Errorf("missing black back rank:\n%s", art)
	}
	if !strings.Contains(lines[len(lines)-1], "a") || !strings.Contains(lines[len(lines)-1], "h") {
		t.Errorf("missing file letters:\n%s", art)
	}
}
