package seed

import (
	"fmt"

	"review-mine/internal/domain"
)

// Problem describe una inconsistencia encontrada en un dataset.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	return p.Path + ": " + p.Message
}

// Check revisa un dataset antes de usarlo como seed. Decode no valida nada;
// esto es lo que corre seed_check.
func Check(ds domain.Dataset) []Problem {
	var problems []Problem
	add := func(path, format string, args ...any) {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if len(ds.Users) == 0 {
		add("users", "dataset has no users")
	}

	seenUsers := make(map[string]bool, len(ds.Users))
	for i, u := range ds.Users {
		path := fmt.Sprintf("users[%d]", i)
		if u.ID == "" {
			add(path, "missing id")
		} else if seenUsers[u.ID] {
			add(path, "duplicate id %q", u.ID)
		}
		seenUsers[u.ID] = true

		if u.TrustScore < 0 || u.TrustScore > 100 {
			add(path, "trustScore %.1f out of range", u.TrustScore)
		}
		if u.WeeklyReviews != nil && *u.WeeklyReviews < 0 {
			add(path, "negative weeklyReviews")
		}
		for _, d := range u.ActiveDomains {
			if !d.Valid() {
				add(path, "unknown active domain %q", d)
			}
		}

		seenReviews := make(map[string]bool, len(u.Reviews))
		for j, r := range u.Reviews {
			rpath := fmt.Sprintf("%s.reviews[%d]", path, j)
			if r.ID != "" && seenReviews[r.ID] {
				add(rpath, "duplicate review id %q", r.ID)
			}
			seenReviews[r.ID] = true
			if !r.Domain.Valid() {
				add(rpath, "unknown domain %q", r.Domain)
			}
			if !r.RatingInRange() {
				add(rpath, "rating %d out of range", r.Rating)
			}
			if !r.Tag.Valid() {
				add(rpath, "unknown tag %q", r.Tag)
			}
		}
	}

	for i, p := range ds.Posts {
		path := fmt.Sprintf("posts[%d]", i)
		if p.ID == "" {
			add(path, "missing id")
		}
		if p.Author != nil && !seenUsers[p.Author.ID] {
			add(path, "author %q is not a known user", p.Author.ID)
		}
	}
	return problems
}
