package i18n

import (
	"fmt"
	"reflect"

	"review-mine/internal/domain"
)

// Translations es la tabla fija de textos de un idioma. Una clave faltante es un
// error de compilacion; un valor vacio se detecta en Validate al arrancar.
type Translations struct {
	Nav     NavText     `json:"nav"`
	Common  CommonText  `json:"common"`
	Domains DomainText  `json:"domains"`
	Pricing PricingText `json:"pricing"`
	Auth    AuthText    `json:"auth"`
}

type NavText struct {
	Network string `json:"network"`
	Pricing string `json:"pricing"`
	Profile string `json:"profile"`
	Access  string `json:"access"`
}

type CommonText struct {
	NodeNetwork       string `json:"node_network"`
	NetworkSub        string `json:"network_sub"`
	SearchPlaceholder string `json:"search_placeholder"`
	FeaturedMiners    string `json:"featured_miners"`
	TrustRank         string `json:"trust_rank"`
	AllNodes          string `json:"all_nodes"`
	InsightStream     string `json:"insight_stream"`
	NetworkStats      string `json:"network_stats"`
	TrendingNow       string `json:"trending_now"`
	TrustRate         string `json:"trust_rate"`
	Verified          string `json:"verified"`
	CopyLink          string `json:"copy_link"`
	Copied            string `json:"copied"`
	SubmitFeedback    string `json:"submit_feedback"`
	Skills            string `json:"skills"`
	Radar             string `json:"radar"`
	GrowthInsight     string `json:"growth_insight"`
	AIMining          string `json:"ai_mining"`
	AILoading         string `json:"ai_loading"`
	AIButton          string `json:"ai_button"`
	FeedbackMines     string `json:"feedback_mines"`
	EmptyNode         string `json:"empty_node"`
	SelectDomain      string `json:"select_domain"`
	RatingProtocol    string `json:"rating_protocol"`
	GrowthObs         string `json:"growth_obs"`
	Cancel            string `json:"cancel"`
	Deploy            string `json:"deploy"`
}

type DomainText struct {
	Professional  string `json:"Professional"`
	Communication string `json:"Communication"`
	Reliability   string `json:"Reliability"`
	Leadership    string `json:"Leadership"`
	Social        string `json:"Social"`
	Dating        string `json:"Dating"`
}

type PricingText struct {
	MiningTiers  string   `json:"mining_tiers"`
	PowerGrowth  string   `json:"power_growth"`
	Sub          string   `json:"sub"`
	FreeTitle    string   `json:"free_title"`
	ProTitle     string   `json:"pro_title"`
	PerMonth     string   `json:"mo"`
	Active       string   `json:"active"`
	Upgrade      string   `json:"upgrade"`
	Recommended  string   `json:"recommended"`
	FeaturesFree []string `json:"features_free"`
	FeaturesPro  []string `json:"features_pro"`
}

type AuthText struct {
	LoginTitle    string `json:"login_h1"`
	LoginSub      string `json:"login_sub"`
	UserID        string `json:"user_id"`
	SecurityKey   string `json:"security_key"`
	InitSession   string `json:"init_session"`
	RegisterTitle string `json:"reg_h1"`
	RegisterSub   string `json:"reg_sub"`
	FullName      string `json:"full_desig"`
	Alias         string `json:"net_alias"`
	Authorize     string `json:"authorize"`
}

// DomainLabels mapea cada dominio a su etiqueta traducida.
func (t *Translations) DomainLabels() map[domain.Domain]string {
	return map[domain.Domain]string{
		domain.DomainProfessional:  t.Domains.Professional,
		domain.DomainCommunication: t.Domains.Communication,
		domain.DomainReliability:   t.Domains.Reliability,
		domain.DomainLeadership:    t.Domains.Leadership,
		domain.DomainSocial:        t.Domains.Social,
		domain.DomainDating:        t.Domains.Dating,
	}
}

// Validate falla si algun texto o lista quedo vacio.
func (t *Translations) Validate() error {
	return validateValue(reflect.ValueOf(*t), "")
}

func validateValue(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Name
			if path != "" {
				name = path + "." + name
			}
			if err := validateValue(v.Field(i), name); err != nil {
				return err
			}
		}
	case reflect.String:
		if v.String() == "" {
			return fmt.Errorf("missing translation %s", path)
		}
	case reflect.Slice:
		if v.Len() == 0 {
			return fmt.Errorf("missing translation list %s", path)
		}
		for i := 0; i < v.Len(); i++ {
			if err := validateValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}
