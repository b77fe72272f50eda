// Package topics catalogues the event topics published on the bus so they can
// be validated at startup and listed by the CLI.
package topics

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidTopicName is returned when a topic name is not dot-separated lowercase words.
	ErrInvalidTopicName = errors.New("topic name must be lowercase dot notation, e.g. 'site.navigated'")

	// ErrMissingDescription is returned when a topic is missing a description.
	ErrMissingDescription = errors.New("topic is missing a description")

	// ErrInvalidExample is returned when a topic's example payload is not JSON.
	ErrInvalidExample = errors.New("topic example must be a JSON document")
)

var topicNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)+$`)

// Topic describes one event topic.
type Topic struct {
	Name        string
	Description string
	// Example is a sample JSON payload.
	Example string
}

// Validate checks the topic's name, description and example.
func (t Topic) Validate() error {
	if !topicNameRegex.MatchString(t.Name) {
		return ErrInvalidTopicName
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrMissingDescription
	}
	if !json.Valid([]byte(t.Example)) {
		return ErrInvalidExample
	}
	return nil
}
