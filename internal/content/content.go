// Package content loads the portfolio copy rendered on the home page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// AllCategory selects every project or certification.
const AllCategory = "All"

type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Profile struct {
	Name      string `yaml:"name" json:"name"`
	Role      string `yaml:"role" json:"role"`
	Tagline   string `yaml:"tagline" json:"tagline"`
	Email     string `yaml:"email" json:"email"`
	Location  string `yaml:"location" json:"location"`
	Education string `yaml:"education" json:"education"`
	Resume    string `yaml:"resume" json:"resume"`
	Links     []Link `yaml:"links" json:"links"`
}

type NavItem struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Shape is one of the floating gradient shapes in the hero.
type Shape struct {
	Delay    float64 `yaml:"delay" json:"delay"`
	Width    int     `yaml:"width" json:"width"`
	Height   int     `yaml:"height" json:"height"`
	Rotate   float64 `yaml:"rotate" json:"rotate"`
	Gradient string  `yaml:"gradient" json:"gradient"`
	Pattern  string  `yaml:"pattern" json:"pattern"`
}

type Hero struct {
	Shapes []Shape `yaml:"shapes" json:"shapes"`
}

// Stat is a number animated with a count-up when it scrolls into view.
type Stat struct {
	Label    string  `yaml:"label" json:"label"`
	Value    float64 `yaml:"value" json:"value"`
	Decimals int     `yaml:"decimals" json:"decimals"`
	Prefix   string  `yaml:"prefix" json:"prefix"`
	Suffix   string  `yaml:"suffix" json:"suffix"`
}

type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Icon     string   `yaml:"icon" json:"icon"`
	Items    []string `yaml:"items" json:"items"`
}

type Job struct {
	Title        string   `yaml:"title" json:"title"`
	Company      string   `yaml:"company" json:"company"`
	Period       string   `yaml:"period" json:"period"`
	URL          string   `yaml:"url" json:"url"`
	Paragraphs   []string `yaml:"paragraphs" json:"paragraphs"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Category     string   `yaml:"category" json:"category"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	GitHub       string   `yaml:"github" json:"github"`
	Demo         string   `yaml:"demo" json:"demo"`
}

type School struct {
	Degree       string   `yaml:"degree" json:"degree"`
	Institution  string   `yaml:"institution" json:"institution"`
	Location     string   `yaml:"location" json:"location"`
	Period       string   `yaml:"period" json:"period"`
	Description  string   `yaml:"description" json:"description"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

type Certification struct {
	Name     string `yaml:"name" json:"name"`
	Issuer   string `yaml:"issuer" json:"issuer"`
	File     string `yaml:"file" json:"file"`
	Category string `yaml:"category" json:"category"`
}

// Portfolio is everything rendered on the page.
type Portfolio struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	Nav            []NavItem       `yaml:"nav" json:"nav"`
	Hero           Hero            `yaml:"hero" json:"hero"`
	About          []string        `yaml:"about" json:"about"`
	Stats          []Stat          `yaml:"stats" json:"stats"`
	Skills         []SkillGroup    `yaml:"skills" json:"skills"`
	Experience     []Job           `yaml:"experience" json:"experience"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Education      []School        `yaml:"education" json:"education"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	Achievements   []string        `yaml:"achievements" json:"achievements"`
}

// Default returns the portfolio embedded in the binary.
func Default() (*Portfolio, error) {
	return Parse(defaultYAML)
}

// Load reads a portfolio from r.
func Load(r io.Reader) (*Portfolio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the page cannot render without.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	if len(p.Nav) == 0 {
		errs = append(errs, errors.New("nav must list at least one section"))
	}
	seen := make(map[string]bool, len(p.Certifications))
	for i, c := range p.Certifications {
		if !safeFileName(c.File) {
			errs = append(errs, fmt.Errorf("certifications[%d].file %q is not a plain file name", i, c.File))
		}
		if seen[c.File] {
			errs = append(errs, fmt.Errorf("certifications[%d].file %q is duplicated", i, c.File))
		}
		seen[c.File] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// ProjectCategories returns AllCategory followed by each project category in
// first-seen order.
func (p *Portfolio) ProjectCategories() []string {
	out := []string{AllCategory}
	seen := map[string]bool{}
	for _, pr := range p.Projects {
		if !seen[pr.Category] {
			seen[pr.Category] = true
			out = append(out, pr.Category)
		}
	}
	return out
}

// FilterProjects returns the projects in category. Empty or AllCategory
// returns every project.
func (p *Portfolio) FilterProjects(category string) []Project {
	if category == "" || category == AllCategory {
		return p.Projects
	}
	var out []Project
	for _, pr := range p.Projects {
		if pr.Category == category {
			out = append(out, pr)
		}
	}
	return out
}

// CertificationCategories returns each certification category in first-seen
// order.
func (p *Portfolio) CertificationCategories() []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range p.Certifications {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}

// FilterCertifications returns the certifications in category. Empty or
// AllCategory returns every certification.
func (p *Portfolio) FilterCertifications(category string) []Certification {
	if category == "" || category == AllCategory {
		return p.Certifications
	}
	var out []Certification
	for _, c := range p.Certifications {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Certification looks up a certification by its file name.
func (p *Portfolio) Certification(file string) (Certification, bool) {
	for _, c := range p.Certifications {
		if c.File == file {
			return c, true
		}
	}
	return Certification{}, false
}

func safeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
