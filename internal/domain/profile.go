package domain

// UserProfile es la identidad y el snapshot de reputacion de un usuario.
// TrustScore viene precalculado (0-100); no se deriva de las reviews.
type UserProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Username       string   `json:"username"`
	Avatar         string   `json:"avatar"`
	TrustScore     float64  `json:"trustScore"`
	ActiveDomains  []Domain `json:"activeDomains"`
	Reviews        []Review `json:"reviews"`
	Badges         []string `json:"badges,omitempty"`
	TopSkills      []string `json:"topSkills,omitempty"`
	WeeklyReviews  *int     `json:"weeklyReviews,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	Personality    []string `json:"personality,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	Habits         []string `json:"habits,omitempty"`
}

// HasDomain indica si el perfil acepta feedback en el dominio d.
func (p UserProfile) HasDomain(d Domain) bool {
	for _, active := range p.ActiveDomains {
		if active == d {
			return true
		}
	}
	return false
}

// WeeklyReviewCount trata el conteo ausente como 0.
func (p UserProfile) WeeklyReviewCount() int {
	if p.WeeklyReviews == nil {
		return 0
	}
	return *p.WeeklyReviews
}

// Level es el "LVL" que muestra la tarjeta de perfil.
func (p UserProfile) Level() int {
	return int(p.TrustScore) / 10
}

// Clone copia profunda, para que nadie mute el cache por referencia.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.ActiveDomains = cloneSlice(p.ActiveDomains)
	out.Reviews = cloneSlice(p.Reviews)
	out.Badges = cloneSlice(p.Badges)
	out.TopSkills = cloneSlice(p.TopSkills)
	out.Personality = cloneSlice(p.Personality)
	out.Interests = cloneSlice(p.Interests)
	out.Habits = cloneSlice(p.Habits)
	if p.WeeklyReviews != nil {
		n := *p.WeeklyReviews
		out.WeeklyReviews = &n
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
