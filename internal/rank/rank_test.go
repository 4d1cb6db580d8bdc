package rank

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tbourn/go-rankings-backend/internal/domain"
)

// fakeSearcher serves canned pages and records the pages requested.
type fakeSearcher struct {
	total     int
	pages     map[int][]domain.User
	errOnPage int // page number that fails; 0 disables
	requested []int
}

func (f *fakeSearcher) SearchUsersByLocation(_ context.Context, _ string, page, perPage int) (domain.SearchUsersResponse, error) {
	f.requested = append(f.requested, page)
	if f.errOnPage != 0 && page == f.errOnPage {
		return domain.SearchUsersResponse{}, errors.New("boom")
	}
	return domain.SearchUsersResponse{TotalCount: f.total, Items: f.pages[page]}, nil
}

// fullPage builds perPage users named p<page>u<i>.
func fullPage(page, perPage int) []domain.User {
	users := make([]domain.User, perPage)
	for i := range users {
		users[i] = domain.User{Login: fmt.Sprintf("p%du%d", page, i)}
	}
	return users
}

func TestRank_FoundOnFirstPage(t *testing.T) {
	page1 := fullPage(1, 100)
	page1[4].Login = "Target"
	f := &fakeSearcher{total: 250, pages: map[int][]domain.User{1: page1}}

	got := NewCalculator(f).Rank(context.Background(), "Greece", "target") // case-insensitive
	if got.Rank != 5 || got.Total != 250 {
		t.Fatalf("Rank = %+v; want rank 5, total 250", got)
	}
	if len(f.requested) != 1 {
		t.Fatalf("requested pages %v; want only page 1", f.requested)
	}
}

func TestRank_FoundOnLaterPage(t *testing.T) {
	page3 := fullPage(3, 100)
	page3[9].Login = "target"
	f := &fakeSearcher{total: 480, pages: map[int][]domain.User{
		1: fullPage(1, 100), 2: fullPage(2, 100), 3: page3,
	}}

	got := NewCalculator(f).Rank(context.Background(), "Greece", "target")
	// (p-1)*perPage + idx + 1 = 2*100 + 9 + 1
	if got.Rank != 210 || got.Total != 480 {
		t.Fatalf("Rank = %+v; want rank 210, total 480", got)
	}
}

func TestRank_PageCeiling(t *testing.T) {
	pages := map[int][]domain.User{}
	for p := 1; p <= 10; p++ {
		pages[p] = fullPage(p, 100)
	}
	f := &fakeSearcher{total: 50_000, pages: pages}

	got := NewCalculator(f).Rank(context.Background(), "India", "absent")
	if got.Rank != 0 || got.Total != 50_000 {
		t.Fatalf("Rank = %+v; want unranked with observed total", got)
	}
	// min(5, ceil(min(50000,1000)/100)) = 5 pages scanned at most.
	if len(f.requested) != 5 {
		t.Fatalf("requested %d pages (%v); want 5", len(f.requested), f.requested)
	}
}

func TestRank_StopsOnShortPage(t *testing.T) {
	f := &fakeSearcher{total: 700, pages: map[int][]domain.User{
		1: fullPage(1, 100),
		2: fullPage(2, 30), // short page ends the result set
		3: fullPage(3, 100),
	}}

	got := NewCalculator(f).Rank(context.Background(), "Greece", "absent")
	if got.Rank != 0 || got.Total != 700 {
		t.Fatalf("Rank = %+v", got)
	}
	if len(f.requested) != 2 {
		t.Fatalf("requested %v; must stop after the short page", f.requested)
	}
}

func TestRank_FirstPageFailureYieldsZero(t *testing.T) {
	f := &fakeSearcher{total: 100, errOnPage: 1}
	got := NewCalculator(f).Rank(context.Background(), "Greece", "anyone")
	if got.Rank != 0 || got.Total != 0 {
		t.Fatalf("Rank = %+v; want zero result", got)
	}
}

func TestRank_LaterPageFailureKeepsTotal(t *testing.T) {
	f := &fakeSearcher{total: 900, errOnPage: 3, pages: map[int][]domain.User{
		1: fullPage(1, 100), 2: fullPage(2, 100),
	}}
	got := NewCalculator(f).Rank(context.Background(), "Greece", "absent")
	if got.Rank != 0 || got.Total != 900 {
		t.Fatalf("Rank = %+v; want unranked with total 900", got)
	}
}

func TestRank_SmallTotalScansOnePage(t *testing.T) {
	f := &fakeSearcher{total: 40, pages: map[int][]domain.User{1: fullPage(1, 40)}}
	got := NewCalculator(f).Rank(context.Background(), "Greece", "absent")
	if got.Rank != 0 || got.Total != 40 {
		t.Fatalf("Rank = %+v", got)
	}
	if len(f.requested) != 1 {
		t.Fatalf("requested %v; ceil(40/100) caps the scan at page 1", f.requested)
	}
}
