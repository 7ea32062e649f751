package model

import "strings"

// LanguageTag is the closed set of script-level language labels.
type LanguageTag string

const (
	English  LanguageTag = "en"
	Thai     LanguageTag = "th"
	Japanese LanguageTag = "ja"
	Chinese  LanguageTag = "zh"
	Unknown  LanguageTag = "unknown"
)

// ParseLanguageTag maps a caller-supplied code ("th", "EN", "ja-JP") onto a tag.
// Unrecognised codes become Unknown.
func ParseLanguageTag(code string) LanguageTag {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch LanguageTag(code) {
	case English, Thai, Japanese, Chinese:
		return LanguageTag(code)
	}
	return Unknown
}

// Place is one business decoded from a response. Empty strings and nil
// pointers mean the field was not found.
type Place struct {
	// ID has the form 0x…:0x…
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Address     string   `json:"address,omitempty" yaml:"address,omitempty"`
	Rating      *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty" yaml:"reviewCount,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Phone       string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website     string   `json:"website,omitempty" yaml:"website,omitempty"`

	// Complete is false when a required field is listed in Missing.
	Complete bool     `json:"complete" yaml:"complete"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Review is one user review decoded from a review list.
type Review struct {
	Author       string      `json:"author,omitempty" yaml:"author,omitempty"`
	Rating       *float64    `json:"rating,omitempty" yaml:"rating,omitempty"`
	Text         string      `json:"text,omitempty" yaml:"text,omitempty"`
	RelativeDate string      `json:"relativeDate,omitempty" yaml:"relativeDate,omitempty"`
	HelpfulCount *int        `json:"helpfulCount,omitempty" yaml:"helpfulCount,omitempty"`
	Language     LanguageTag `json:"language" yaml:"language"`
	Complete     bool        `json:"complete" yaml:"complete"`
	Missing      []string    `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Query is the metadata the caller attaches to a response body. Language
// selects review filtering; Region is passed through ("th").
type Query struct {
	Language LanguageTag `json:"language,omitempty" yaml:"language,omitempty"`
	Region   string      `json:"region,omitempty" yaml:"region,omitempty"`
}

// Result is what Process returns for one response body. Place is nil when
// the body holds no place root; Dropped counts reviews excluded by the
// language policy.
type Result struct {
	Query   Query    `json:"query" yaml:"query"`
	Place   *Place   `json:"place,omitempty" yaml:"place,omitempty"`
	Reviews []Review `json:"reviews" yaml:"reviews"`
	Dropped int      `json:"dropped" yaml:"dropped"`
}
