package domain

// Domain es una de las seis categorias fijas de feedback.
type Domain string

const (
	DomainProfessional  Domain = "Professional"
	DomainCommunication Domain = "Communication"
	DomainReliability   Domain = "Reliability"
	DomainLeadership    Domain = "Leadership"
	DomainSocial        Domain = "Social"
	DomainDating        Domain = "Dating"
)

var allDomains = []Domain{
	DomainProfessional,
	DomainCommunication,
	DomainReliability,
	DomainLeadership,
	DomainSocial,
	DomainDating,
}

// AllDomains devuelve los seis dominios en orden fijo (el orden del radar).
func AllDomains() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

func (d Domain) Valid() bool {
	for _, known := range allDomains {
		if d == known {
			return true
		}
	}
	return false
}

// FeedbackTag clasifica el sentimiento de una review.
type FeedbackTag string

const (
	TagPositive     FeedbackTag = "POSITIVE"
	TagNeutral      FeedbackTag = "NEUTRAL"
	TagConstructive FeedbackTag = "CONSTRUCTIVE"
)

func (t FeedbackTag) Valid() bool {
	switch t {
	case TagPositive, TagNeutral, TagConstructive:
		return true
	}
	return false
}

const (
	MinRating = 1
	MaxRating = 5
)

// Review es un feedback recibido por un perfil.
// CreatedAt es solo para mostrar; no se garantiza formato.
type Review struct {
	ID        string      `json:"id"`
	Domain    Domain      `json:"domain"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	Tag       FeedbackTag `json:"tag"`
	CreatedAt string      `json:"createdAt"`
}

func (r Review) RatingInRange() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}
