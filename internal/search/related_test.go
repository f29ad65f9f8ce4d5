package search

import (
	"testing"

	"github.com/tbourn/go-soft-portal/internal/domain"
)

func TestRelated_RanksBySimilarity(t *testing.T) {
	entries := []domain.Software{
		{ID: "t", Name: "Secure Firewall", Description: "network threat protection", Category: "Security"},
		{ID: "a", Name: "Net Guard", Description: "network threat protection suite", Category: "Security"},
		{ID: "b", Name: "Paint", Description: "drawing tool", Category: "Design"},
		{ID: "c", Name: "Packet Sniffer", Description: "network analyzer", Category: "Developer Tools"},
	}
	got := Related(entries, entries[0], 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 related, got %+v", got)
	}
	if got[0].Software.ID != "a" || got[1].Software.ID != "c" {
		t.Fatalf("unexpected order: %s, %s", got[0].Software.ID, got[1].Software.ID)
	}
	if got[0].Score <= got[1].Score {
		t.Fatalf("scores not descending: %v %v", got[0].Score, got[1].Score)
	}
}

func TestRelated_ExcludesTargetAndCapsK(t *testing.T) {
	entries := []domain.Software{
		{ID: "1", Name: "alpha tool"},
		{ID: "2", Name: "alpha tool", Downloads: 5},
		{ID: "3", Name: "alpha tool", Downloads: 9},
		{ID: "4", Name: "alpha tool"},
		{ID: "5", Name: "alpha tool"},
	}
	got := Related(entries, entries[0], 0)
	if len(got) != 3 {
		t.Fatalf("default k should be 3, got %d", len(got))
	}
	for _, r := range got {
		if r.Software.ID == "1" {
			t.Fatalf("target must not relate to itself")
		}
	}
	if got[0].Software.ID != "3" || got[1].Software.ID != "2" {
		t.Fatalf("ties should break on downloads: %s %s", got[0].Software.ID, got[1].Software.ID)
	}
}

func TestRelated_Options(t *testing.T) {
	target := domain.Software{ID: "t", Name: "the editor", Category: "Design"}
	other := domain.Software{ID: "o", Name: "the player", Category: "Design"}

	// Only the category bonus connects them by default.
	got := Related([]domain.Software{target, other}, target, 3)
	if len(got) != 1 || got[0].Score != 0.1 {
		t.Fatalf("expected category bonus only, got %+v", got)
	}
	if got := Related([]domain.Software{target, other}, target, 3, WithCategoryBoost(0)); len(got) != 0 {
		t.Fatalf("no overlap and no boost should yield nothing, got %+v", got)
	}
	// Without stop-word removal "the" overlaps.
	got = Related([]domain.Software{target, other}, target, 3, WithStopwords(nil), WithCategoryBoost(0))
	if len(got) != 1 {
		t.Fatalf("expected overlap on 'the', got %+v", got)
	}
	if got := Related([]domain.Software{target, other}, target, 3, WithMinScore(0.5)); len(got) != 0 {
		t.Fatalf("min score should filter, got %+v", got)
	}

	detailed := domain.Software{ID: "d", Name: "x", DetailedDescription: "editor"}
	if got := Related([]domain.Software{target, detailed}, target, 3, WithCategoryBoost(0), WithDetailedDescription()); len(got) != 1 {
		t.Fatalf("detailed description should be tokenized, got %+v", got)
	}
}

func TestRelated_EmptyTarget(t *testing.T) {
	if got := Related([]domain.Software{{ID: "x", Name: "a"}}, domain.Software{ID: "t"}, 3); got != nil {
		t.Fatalf("target without tokens should yield nil, got %+v", got)
	}
}
