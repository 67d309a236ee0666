package debateorg

import "errors"

// Opinion is the data scraped from a single debate.org opinion page.
type Opinion struct {
	Name       string     `json:"name"`
	YesPercent string     `json:"yes_percent"`
	NoPercent  string     `json:"no_percent"`
	Arguments  []Argument `json:"arguments"`
}

// Argument is one user submitted argument on an opinion page.
type Argument struct {
	Author      string `json:"author"`
	Description string `json:"description"`
}

var (
	// ErrParse is returned when a page does not have the expected structure.
	ErrParse = errors.New("opinion page could not be parsed")
	// ErrNotFound is returned when the opinion page does not exist upstream.
	ErrNotFound = errors.New("opinion page does not exist")
	// ErrUpstream is returned for every other failure to retrieve a page.
	ErrUpstream = errors.New("opinion page could not be retrieved")
)
