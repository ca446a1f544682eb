package domain

// Footer is the site-wide footer content. It is a single object, not a
// list; the API exposes one GET and one PUT for it.
type Footer struct {
	About     string `json:"about"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}
