// Package content holds the data the pages are rendered from.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zerohexer/cspnet/internal/router"
)

//go:embed site.yaml
var defaultSite []byte

// ErrInvalidContent is wrapped by every decoding or validation failure.
var ErrInvalidContent = errors.New("invalid site content")

// Feature is one card in the home page feature grid.
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Icon        string `yaml:"icon"`
}

// Credit is one card in the credits grid.
type Credit struct {
	Name   string `yaml:"name" validate:"required"`
	Role   string `yaml:"role" validate:"required"`
	Avatar string `yaml:"avatar"`
}

// Hero is the headline block at the top of a page.
type Hero struct {
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
}

// CallToAction is the home page button and the route it leads to.
type CallToAction struct {
	Label string `yaml:"label" validate:"required"`
	Route string `yaml:"route" validate:"required,route"`
}

// TechStack is the "powered by" footer of the home page.
type TechStack struct {
	Label string   `yaml:"label" validate:"required"`
	Items []string `yaml:"items" validate:"min=1,dive,required"`
}

// Site is everything needed to render both pages.
type Site struct {
	Title       string       `yaml:"title" validate:"required"`
	Brand       string       `yaml:"brand" validate:"required"`
	Home        Hero         `yaml:"home"`
	CreditsPage Hero         `yaml:"credits_page"`
	CTA         CallToAction `yaml:"cta"`
	Features    []Feature    `yaml:"features" validate:"min=1,dive"`
	Credits     []Credit     `yaml:"credits" validate:"min=1,dive"`
	TechStack   TechStack    `yaml:"tech_stack"`
}

var validate = newValidator()

// newValidator adds the "route" tag, which accepts only routes the router knows.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("route", func(fl validator.FieldLevel) bool {
		_, err := router.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Parse decodes and validates YAML site content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := validate.Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return &site, nil
}

// Load reads and parses the content file at path.
func Load(fs afero.Fs, path string) (*Site, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading site content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Default returns the built-in site content.
func Default() *Site {
	site, err := Parse(defaultSite)
	if err != nil {
		panic(fmt.Sprintf("embedded site content: %v", err))
	}
	return site
}
