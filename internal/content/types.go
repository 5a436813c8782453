// Package content holds the static portfolio data: profile, skills,
// projects and reviews. It is loaded once at startup and never mutated.
package content

// MediaKind distinguishes videos from images in a project's media.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// MediaItem is one entry in a project's gallery.
type MediaItem struct {
	Kind MediaKind `json:"kind" yaml:"kind"`
	URL  string    `json:"url" yaml:"url"`
}

// Project is a showcased piece of work.
type Project struct {
	Title            string      `json:"title" yaml:"title"`
	ShortDescription string      `json:"shortDescription" yaml:"shortDescription"`
	LongDescription  string      `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	TechTags         []string    `json:"techTags" yaml:"techTags"`
	Media            []MediaItem `json:"media" yaml:"media"`
}

// Skill is a named skill with a proficiency level from 0 to 100.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// Review is a client testimonial.
type Review struct {
	Name    string `json:"name" yaml:"name"`
	Company string `json:"company" yaml:"company"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// Service is one of the offerings listed in the about section.
type Service struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Link is an external profile link shown in the contact section.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Profile describes the portfolio owner.
type Profile struct {
	Name     string    `json:"name" yaml:"name"`
	Role     string    `json:"role" yaml:"role"`
	Tagline  string    `json:"tagline" yaml:"tagline"`
	About    string    `json:"about" yaml:"about"`
	Services []Service `json:"services" yaml:"services"`
	Pitch    string    `json:"pitch" yaml:"pitch"`
	Email    string    `json:"email" yaml:"email"`
	Links    []Link    `json:"links" yaml:"links"`
}

// Site is the full content set for one portfolio.
type Site struct {
	Profile  Profile   `json:"profile" yaml:"profile"`
	Skills   []Skill   `json:"skills" yaml:"skills"`
	Projects []Project `json:"projects" yaml:"projects"`
	Reviews  []Review  `json:"reviews" yaml:"reviews"`
}
