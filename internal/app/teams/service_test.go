package teams

import (
	"context"
	"errors"
	"testing"

	domain "mlb-companion/internal/domain/teams"
)

type stubDirectory struct {
	teams  []domain.Team
	detail domain.Detail
	err    error
	calls  int
}

func (s *stubDirectory) Teams(context.Context, string) ([]domain.Team, error) {
	s.calls++
	return s.teams, s.err
}

func (s *stubDirectory) Team(context.Context, string, int) (domain.Detail, error) {
	return s.detail, s.err
}

func directoryOf(names ...string) *stubDirectory {
	teams := make([]domain.Team, len(names))
	for i, name := range names {
		teams[i] = domain.Team{ID: i + 1, Name: name}
	}
	return &stubDirectory{teams: teams}
}

func names(teams []domain.Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.Name
	}
	return out
}

func TestListSortsByName(t *testing.T) {
	dir := directoryOf("Mets", "Cubs", "Yankees")
	svc := NewService(dir)

	asc, err := svc.List(context.Background(), "token", Query{Sort: SortAsc})
	if err != nil {
		t.Fatalf("list asc: %v", err)
	}
	got := names(asc)
	want := []string{"Cubs", "Mets", "Yankees"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("asc order = %v", got)
		}
	}

	desc, err := svc.List(context.Background(), "token", Query{Sort: SortDesc})
	if err != nil {
		t.Fatalf("list desc: %v", err)
	}
	if names(desc)[0] != "Yankees" {
		t.Fatalf("desc order = %v", names(desc))
	}
}

func TestListFiltersCaseInsensitively(t *testing.T) {
	dir := directoryOf("Chicago Cubs", "New York Mets", "New York Yankees")
	svc := NewService(dir)

	got, err := svc.List(context.Background(), "token", Query{Name: "new york"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matched %d teams, want 2", len(got))
	}
}

func TestListServesCacheAfterFirstFetch(t *testing.T) {
	dir := directoryOf("Cubs")
	svc := NewService(dir)

	if _, err := svc.List(context.Background(), "token", Query{}); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if _, err := svc.List(context.Background(), "token", Query{}); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if dir.calls != 1 {
		t.Fatalf("directory fetched %d times, want 1", dir.calls)
	}
}

func TestRefreshReplacesCache(t *testing.T) {
	dir := directoryOf("Cubs")
	svc := NewService(dir)

	if err := svc.Refresh(context.Background(), "service-token"); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if svc.CachedAt().IsZero() {
		t.Fatal("refresh should record the cache time")
	}

	dir.teams = []domain.Team{{ID: 2, Name: "Mets"}}
	if err := svc.Refresh(context.Background(), "service-token"); err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	got, err := svc.List(context.Background(), "token", Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Mets" {
		t.Fatalf("cache not replaced: %v", names(got))
	}
}

func TestListErrorPropagates(t *testing.T) {
	dir := &stubDirectory{err: errors.New("backend down")}
	svc := NewService(dir)

	if _, err := svc.List(context.Background(), "token", Query{}); err == nil {
		t.Fatal("expected the fetch error to surface")
	}
}
