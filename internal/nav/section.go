package nav

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section names one of the scrollable regions of the page. Its value is
// the id of the DOM anchor that wraps the region.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Projects Section = "projects"
	Contact  Section = "contact"
)

// Sections lists every section in declaration order. The scroll tracker
// scans them in this order.
var Sections = []Section{Home, About, Projects, Contact}

// ParseSection maps an anchor id to its Section.
func ParseSection(id string) (Section, bool) {
	for _, s := range Sections {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

func (s Section) Valid() bool {
	_, ok := ParseSection(string(s))
	return ok
}

// Label is the navigation text for the section, e.g. "Projects".
func (s Section) Label() string {
	return cases.Title(language.English).String(string(s))
}

func (s Section) String() string { return string(s) }
