package domain

// PostAuthor referencia al autor de un micro-post.
type PostAuthor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Reaction struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// MicroPost es contenido semilla del stream de actividad. Author es nil en posts legacy anonimos.
type MicroPost struct {
	ID        string      `json:"id"`
	Author    *PostAuthor `json:"author,omitempty"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
	Reactions []Reaction  `json:"reactions,omitempty"`
}

// Dataset es la raiz agregada que se persiste como un unico documento.
type Dataset struct {
	Users []UserProfile `json:"users"`
	Posts []MicroPost   `json:"posts"`
}

// FindUser busca un perfil por id.
func (d Dataset) FindUser(id string) (UserProfile, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return UserProfile{}, false
}

// Clone copia profunda del dataset.
func (d Dataset) Clone() Dataset {
	out := Dataset{}
	if d.Users != nil {
		out.Users = make([]UserProfile, len(d.Users))
		for i, u := range d.Users {
			out.Users[i] = u.Clone()
		}
	}
	if d.Posts != nil {
		out.Posts = make([]MicroPost, len(d.Posts))
		for i, p := range d.Posts {
			cp := p
			if p.Author != nil {
				a := *p.Author
				cp.Author = &a
			}
			cp.Reactions = cloneSlice(p.Reactions)
			out.Posts[i] = cp
		}
	}
	return out
}
