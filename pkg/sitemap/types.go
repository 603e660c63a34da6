package sitemap

// Footer is the renderer-agnostic footer tree. JSON tags double as the names
// templates use to reach each value.
type Footer struct {
	Home      Home      `json:"home"`
	Sections  []Section `json:"sections"`
	Copyright string    `json:"copyright,omitempty"`
	Language  string    `json:"language,omitempty"`
}

// Home is the logo link pointing at the site root.
type Home struct {
	Href  string `json:"href"`
	Class string `json:"class,omitempty"`
	Icon  *Image `json:"icon,omitempty"`
}

// Image describes the optional footer logo.
type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Section is a titled column of links.
type Section struct {
	Title    string `json:"title"`
	TitleKey string `json:"titleKey,omitempty"`
	Links    []Link `json:"links"`
}

// Link is a single anchor. External links open in a new tab without leaking
// the referrer.
type Link struct {
	Label    string `json:"label"`
	LabelKey string `json:"labelKey,omitempty"`
	Href     string `json:"href"`
	External bool   `json:"external,omitempty"`
	Class    string `json:"class,omitempty"`
	Attrs    []Attr `json:"attrs,omitempty"`
}

// Attr is an extra attribute rendered verbatim on a link, in order.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

const (
	ExternalTarget = "_blank"
	ExternalRel    = "noreferrer noopener"
)
