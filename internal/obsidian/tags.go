package obsidian

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	hyphensRe    = regexp.MustCompile(`-+`)
)

// NormalizeTag normalizes a tag according to Obsidian conventions: case is
// kept, a leading # is dropped, whitespace runs become single hyphens,
// "&" becomes "and" and "/" is kept for hierarchy.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	tag = strings.ReplaceAll(tag, "&", "and")
	tag = strings.ReplaceAll(tag, "#", "")
	tag = whitespaceRe.ReplaceAllString(tag, "-")
	tag = hyphensRe.ReplaceAllString(tag, "-")

	return strings.Trim(tag, "-")
}

// TagSet provides tag collection with automatic normalization and deduplication.
type TagSet struct {
	tags map[string]bool
}

// NewTagSet creates a new TagSet for collecting tags.
func NewTagSet() *TagSet {
	return &TagSet{
		tags: make(map[string]bool),
	}
}

// Add adds a tag to the set after normalization.
func (ts *TagSet) Add(tag string) {
	if normalized := NormalizeTag(tag); normalized != "" {
		ts.tags[normalized] = true
	}
}

// AddFormat adds a formatted tag (like fmt.Sprintf).
func (ts *TagSet) AddFormat(format string, args ...interface{}) {
	ts.Add(fmt.Sprintf(format, args...))
}

// GetSorted returns all tags as a sorted slice.
func (ts *TagSet) GetSorted() []string {
	result := make([]string, 0, len(ts.tags))
	for tag := range ts.tags {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// tagsFromAny safely extracts a string slice from a polymorphic YAML value.
// YAML unmarshaling can produce []interface{} or []string, this handles both.
func tagsFromAny(val any) []string {
	switch v := val.(type) {
	case []string:
		result := make([]string, 0, len(v))
		for _, s := range v {
			if s != "" {
				result = append(result, s)
			}
		}
		return result
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok && str != "" {
				result = append(result, str)
			}
		}
		return result
	}
	return []string{}
}

// DecadeTag returns a year/<decade> tag such as "year/1960s".
func DecadeTag(year int) string {
	if year <= 0 {
		return "year/unknown"
	}
	return fmt.Sprintf("year/%ds", year-year%10)
}
