package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed content/portfolio.yaml
var defaultContent []byte

type Owner struct {
	Name     string `yaml:"name" validate:"required"`
	Role     string `yaml:"role" validate:"required"`
	Tagline  string `yaml:"tagline" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Location string `yaml:"location"`
}

// Link is a labelled anchor. Icon names a glyph from static/icons.svg.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
	Icon  string `yaml:"icon"`
}

type Highlight struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Gradient    string `yaml:"gradient"`
}

type About struct {
	Eyebrow    string      `yaml:"eyebrow"`
	Heading    string      `yaml:"heading" validate:"required"`
	Highlight  string      `yaml:"highlight"`
	Body       string      `yaml:"body" validate:"required"`
	Highlights []Highlight `yaml:"highlights" validate:"dive"`
}

type Skill struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

type SkillCategory struct {
	Title    string  `yaml:"title" validate:"required"`
	Gradient string  `yaml:"gradient"`
	Skills   []Skill `yaml:"skills" validate:"required,min=1,dive"`
}

type Experience struct {
	Title        string   `yaml:"title" validate:"required"`
	Company      string   `yaml:"company" validate:"required"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period" validate:"required"`
	Description  string   `yaml:"description"`
	Gradient     string   `yaml:"gradient"`
	Achievements []string `yaml:"achievements" validate:"dive,required"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Image       string   `yaml:"image" validate:"omitempty,url"`
	Tags        []string `yaml:"tags"`
	Icon        string   `yaml:"icon"`
	Gradient    string   `yaml:"gradient"`
	Repo        string   `yaml:"repo" validate:"omitempty,url"`
	Featured    bool     `yaml:"featured"`
}

// VisibleTags returns the tags shown on the project card: four for featured
// projects, three otherwise.
func (p Project) VisibleTags() []string {
	limit := 3
	if p.Featured {
		limit = 4
	}
	if len(p.Tags) <= limit {
		return p.Tags
	}
	return p.Tags[:limit]
}

type ContactInfo struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

type Contact struct {
	Blurb        string        `yaml:"blurb"`
	ResponseNote string        `yaml:"response_note"`
	Info         []ContactInfo `yaml:"info" validate:"dive"`
}

// Portfolio is every piece of copy rendered on the page.
type Portfolio struct {
	Owner           Owner           `yaml:"owner"`
	Nav             []Link          `yaml:"nav" validate:"required,min=1,dive"`
	Socials         []Link          `yaml:"socials" validate:"dive"`
	About           About           `yaml:"about"`
	Skills          []SkillCategory `yaml:"skills" validate:"dive"`
	Experience      []Experience    `yaml:"experience" validate:"dive"`
	ResumeURL       string          `yaml:"resume_url" validate:"omitempty,url"`
	Projects        []Project       `yaml:"projects" validate:"dive"`
	MoreProjectsURL string          `yaml:"more_projects_url" validate:"omitempty,url"`
	Contact         Contact         `yaml:"contact"`
	FooterLinks     []Link          `yaml:"footer_links" validate:"dive"`
}

// ProfileLinks returns the socials minus the mailto entry, as shown in the
// contact section.
func (p *Portfolio) ProfileLinks() []Link {
	var out []Link
	for _, l := range p.Socials {
		if l.Icon == "mail" {
			continue
		}
		out = append(out, l)
	}
	return out
}

var contentValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadPortfolio reads the portfolio document at path, or the embedded default
// document when path is empty.
func LoadPortfolio(path string) (*Portfolio, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
		data = b
	}
	return ParsePortfolio(data)
}

// ParsePortfolio decodes and validates a YAML portfolio document.
func ParsePortfolio(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := contentValidator.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &p, nil
}
