package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

// Catalog guarda las tablas validadas. Se crea una vez al arrancar.
type Catalog struct {
	tables   map[Language]*Translations
	fallback Language
	matcher  language.Matcher
}

// NewCatalog valida todas las tablas; cualquier texto faltante aborta el arranque.
func NewCatalog(fallback string) (*Catalog, error) {
	tables := map[Language]*Translations{
		English:    &english,
		Vietnamese: &vietnamese,
	}
	for lang, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("locale %s: %w", lang, err)
		}
	}
	fb := Language(strings.ToLower(fallback))
	if _, ok := tables[fb]; !ok {
		return nil, fmt.Errorf("unsupported default language %q", fallback)
	}
	// El primer tag del matcher es el fallback.
	supported := []language.Tag{language.Make(string(fb))}
	for lang := range tables {
		if lang != fb {
			supported = append(supported, language.Make(string(lang)))
		}
	}
	return &Catalog{
		tables:   tables,
		fallback: fb,
		matcher:  language.NewMatcher(supported),
	}, nil
}

// Resolve elige el idioma: primero el explicito (?lang=), despues Accept-Language.
func (c *Catalog) Resolve(explicit, acceptLanguage string) Language {
	if lang := Language(strings.ToLower(strings.TrimSpace(explicit))); lang != "" {
		if _, ok := c.tables[lang]; ok {
			return lang
		}
	}
	if acceptLanguage == "" {
		return c.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	tag, _, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.fallback
	}
	base, _ := tag.Base()
	if _, ok := c.tables[Language(base.String())]; ok {
		return Language(base.String())
	}
	return c.fallback
}

func (c *Catalog) Table(lang Language) *Translations {
	if t, ok := c.tables[lang]; ok {
		return t
	}
	return c.tables[c.fallback]
}

// Session es el contexto explicito de una vista: idioma elegido y perfil propio.
// Se construye por request y se pasa a quien lo necesite; no hay lookup global.
type Session struct {
	Language Language
	SelfID   string
	T        *Translations
}

func (c *Catalog) NewSession(explicit, acceptLanguage, selfID string) Session {
	lang := c.Resolve(explicit, acceptLanguage)
	return Session{Language: lang, SelfID: selfID, T: c.Table(lang)}
}

// ResolveProfileID traduce el id reservado "me" al perfil propio.
func (s Session) ResolveProfileID(id string) string {
	if id == "me" || id == "" {
		return s.SelfID
	}
	return id
}
