package service

import (
	"cmp"
	"slices"
	"strings"

	"review-mine/internal/domain"
)

const (
	LeaderboardSize     = 3
	CompactTrendingSize = 5
	FeaturedSize        = 3
	FeaturedMinTrust    = 90
	RadarFullMark       = domain.MaxRating
)

// Todas las funciones de este archivo son puras: no mutan sus entradas.
// Los empates en ordenamientos respetan el orden original del dataset.

// DomainAverage promedia los ratings de un dominio. Sin reviews devuelve 0.
func DomainAverage(reviews []domain.Review, d domain.Domain) float64 {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.Domain != d {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// RadarPoint es un eje del grafico radar.
type RadarPoint struct {
	Domain   domain.Domain `json:"domain"`
	Label    string        `json:"label"`
	Value    float64       `json:"value"`
	FullMark int           `json:"fullMark"`
}

// RadarPoints devuelve un punto por cada dominio, en el orden fijo de domain.AllDomains.
// labels traduce el dominio; si falta la clave se usa el nombre del dominio.
func RadarPoints(reviews []domain.Review, labels map[domain.Domain]string) []RadarPoint {
	domains := domain.AllDomains()
	points := make([]RadarPoint, 0, len(domains))
	for _, d := range domains {
		label, ok := labels[d]
		if !ok || label == "" {
			label = string(d)
		}
		points = append(points, RadarPoint{
			Domain:   d,
			Label:    label,
			Value:    DomainAverage(reviews, d),
			FullMark: RadarFullMark,
		})
	}
	return points
}

// DomainStat resume las reviews de un dominio.
type DomainStat struct {
	Domain  domain.Domain `json:"domain"`
	Count   int           `json:"count"`
	Average float64       `json:"average"`
}

// DomainBreakdown cuenta y promedia por dominio, en orden fijo.
func DomainBreakdown(reviews []domain.Review) []DomainStat {
	domains := domain.AllDomains()
	stats := make([]DomainStat, 0, len(domains))
	for _, d := range domains {
		count := 0
		for _, r := range reviews {
			if r.Domain == d {
				count++
			}
		}
		stats = append(stats, DomainStat{Domain: d, Count: count, Average: DomainAverage(reviews, d)})
	}
	return stats
}

// TagRatio es la fraccion (0..1) de reviews con el tag dado.
func TagRatio(reviews []domain.Review, tag domain.FeedbackTag) float64 {
	if len(reviews) == 0 {
		return 0
	}
	n := 0
	for _, r := range reviews {
		if r.Tag == tag {
			n++
		}
	}
	return float64(n) / float64(len(reviews))
}

// DomainLeaderboard devuelve hasta 3 usuarios con el dominio activo, por trust score descendente.
func DomainLeaderboard(users []domain.UserProfile, d domain.Domain) []domain.UserProfile {
	ranked := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		if u.HasDomain(d) {
			ranked = append(ranked, u)
		}
	}
	slices.SortStableFunc(ranked, func(a, b domain.UserProfile) int {
		return cmp.Compare(b.TrustScore, a.TrustScore)
	})
	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}
	return ranked
}

// PodiumOrder reordena un top-3 rankeado como [2, 1, 3]. Las posiciones ausentes se omiten.
func PodiumOrder[T any](ranked []T) []T {
	out := make([]T, 0, LeaderboardSize)
	if len(ranked) > 1 {
		out = append(out, ranked[1])
	}
	if len(ranked) > 0 {
		out = append(out, ranked[0])
	}
	if len(ranked) > 2 {
		out = append(out, ranked[2])
	}
	return out
}

// TopTrending ordena por reviews semanales (ausente = 0). n <= 0 no limita.
func TopTrending(users []domain.UserProfile, n int) []domain.UserProfile {
	ranked := slices.Clone(users)
	if ranked == nil {
		ranked = []domain.UserProfile{}
	}
	slices.SortStableFunc(ranked, func(a, b domain.UserProfile) int {
		return cmp.Compare(b.WeeklyReviewCount(), a.WeeklyReviewCount())
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// FeaturedProfiles son los primeros 3 perfiles con trust score mayor a 90, en orden del dataset.
func FeaturedProfiles(users []domain.UserProfile) []domain.UserProfile {
	out := make([]domain.UserProfile, 0, FeaturedSize)
	for _, u := range users {
		if u.TrustScore > FeaturedMinTrust {
			out = append(out, u)
			if len(out) == FeaturedSize {
				break
			}
		}
	}
	return out
}

// SearchUsers filtra por substring case-insensitive en nombre o handle. Termino vacio = todos.
func SearchUsers(users []domain.UserProfile, term string) []domain.UserProfile {
	needle := strings.ToLower(term)
	out := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		if needle == "" ||
			strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Username), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Paginate devuelve la ventana [(page-1)*size, page*size). Fuera de rango devuelve vacio.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return slices.Clone(items[start:end])
}

// PageCount es ceil(n/size), con minimo 1: una lista vacia es "pagina 1 de 1".
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Page es una ventana paginada lista para serializar.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

func NewPage[T any](items []T, page, size int) Page[T] {
	return Page[T]{
		Items:      Paginate(items, page, size),
		Page:       page,
		PageSize:   size,
		TotalPages: PageCount(len(items), size),
		TotalItems: len(items),
	}
}
