package seed

import (
	"context"
	"strings"
	"testing"

	"review-mine/internal/domain"
)

func TestCheck_BundledSeedIsClean(t *testing.T) {
	ds, err := NewEmbeddedSource().Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if problems := Check(ds); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestCheck_ReportsProblems(t *testing.T) {
	weekly := -1
	ds := domain.Dataset{
		Users: []domain.UserProfile{
			{ID: "a", TrustScore: 120, WeeklyReviews: &weekly, ActiveDomains: []domain.Domain{"Cooking"}},
			{ID: "a", Reviews: []domain.Review{
				{ID: "r1", Domain: domain.DomainSocial, Rating: 9, Tag: domain.TagPositive},
				{ID: "r1", Domain: "Cooking", Rating: 3, Tag: "MEH"},
			}},
		},
		Posts: []domain.MicroPost{{ID: "p1", Author: &domain.PostAuthor{ID: "ghost"}}},
	}

	problems := Check(ds)
	want := []string{
		"trustScore 120.0 out of range",
		"negative weeklyReviews",
		`unknown active domain "Cooking"`,
		`duplicate id "a"`,
		"rating 9 out of range",
		`duplicate review id "r1"`,
		`unknown domain "Cooking"`,
		`unknown tag "MEH"`,
		`author "ghost" is not a known user`,
	}
	joined := make([]string, len(problems))
	for i, p := range problems {
		joined[i] = p.String()
	}
	all := strings.Join(joined, "\n")
	for _, w := range want {
		if !strings.Contains(all, w) {
			t.Fatalf("expected problem %q in:\n%s", w, all)
		}
	}
}

func TestCheck_EmptyDataset(t *testing.T) {
	problems := Check(domain.Dataset{})
	if len(problems) != 1 || problems[0].Path != "users" {
		t.Fatalf("expected single users problem, got %v", problems)
	}
}
