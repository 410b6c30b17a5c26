// Package courses loads the campus course catalog once at startup. The
// catalog is immutable after loading; everything downstream (the feed's
// course validation, the UI dropdowns) reads from the same snapshot.
package courses

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/labstack/gommon/log"
)

// fallback keeps the feed usable when courses.json is missing or broken.
var fallback = []string{
	"CS124", "CS128", "CS173", "MATH221", "MATH231",
	"ENG100", "CS100", "RHET105", "PHY211", "PHY212",
}

type catalogFile struct {
	Courses map[string][]string `json:"courses"`
}

type Catalog struct {
	codes    []string
	subjects []string
	members  map[string]struct{}
}

// Load reads the subject-to-numbers mapping from the given JSON file. Any
// read or parse failure logs a warning and returns the fallback catalog;
// the feed must always have something to validate against.
func Load(path string) *Catalog {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("failed to read course catalog %s, using fallback: %v", path, err)
		return newCatalog(fallback, nil)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil || len(file.Courses) == 0 {
		log.Warnf("failed to parse course catalog %s, using fallback: %v", path, err)
		return newCatalog(fallback, nil)
	}

	subjects := make([]string, 0, len(file.Courses))
	for subject := range file.Courses {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	var codes []string
	for _, subject := range subjects {
		numbers := append([]string(nil), file.Courses[subject]...)
		sort.Strings(numbers)
		for _, number := range numbers {
			codes = append(codes, subject+number)
		}
	}
	return newCatalog(codes, subjects)
}

func newCatalog(codes, subjects []string) *Catalog {
	members := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		members[code] = struct{}{}
	}
	return &Catalog{codes: codes, subjects: subjects, members: members}
}

// Has reports whether the code is a known course.
func (c *Catalog) Has(code string) bool {
	_, ok := c.members[code]
	return ok
}

// Codes returns all course codes in subject+number order.
func (c *Catalog) Codes() []string {
	return append([]string(nil), c.codes...)
}

// Subjects returns the sorted subject prefixes, empty for the fallback.
func (c *Catalog) Subjects() []string {
	return append([]string(nil), c.subjects...)
}
