package contact

import "github.com/gosimple/slug"

// Info is the contact printed on a card. URL is optional.
type Info struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	URL   string `json:"url,omitempty"`
}

// Slug returns a file-name friendly form of the contact name. Non-ASCII
// letters are transliterated; a name with nothing usable yields "card".
func (i Info) Slug() string {
	if s := slug.Make(i.Name); s != "" {
		return s
	}
	return "card"
}
