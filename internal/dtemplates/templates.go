package dtemplates

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Description is the displayable text of a question: a short prompt line
// and an optional extended explanation.
type Description struct {
	Short    string
	Extended string
}

// Template is one stanza of a templates file.
type Template struct {
	Name    string
	Type    string
	Default string

	// descriptions maps a locale ("de", "fr-CA", ...) to its translated
	// description. The untranslated text lives under the empty key.
	descriptions map[string]Description
}

// Catalog is a parsed templates file keyed by template name.
type Catalog struct {
	templates map[string]Template
}

// LoadFile parses the templates file at path.
func LoadFile(path string) (Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer file.Close()
	catalog, err := Parse(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return catalog, nil
}

// Parse reads stanzas separated by blank lines. Each stanza needs at least
// a Template and a Type field. Continuation lines (leading space) extend
// the preceding field; a lone " ." separates paragraphs in extended
// descriptions.
func Parse(r io.Reader) (Catalog, error) {
	catalog := Catalog{templates: map[string]Template{}}

	scanner := bufio.NewScanner(r)
	var stanza []string
	flush := func() error {
		if len(stanza) == 0 {
			return nil
		}
		tmpl, err := parseStanza(stanza)
		stanza = stanza[:0]
		if err != nil {
			return err
		}
		catalog.templates[tmpl.Name] = tmpl
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return Catalog{}, err
			}
			continue
		}
		stanza = append(stanza, line)
	}
	if err := scanner.Err(); err != nil {
		return Catalog{}, fmt.Errorf("scan templates: %w", err)
	}
	if err := flush(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

// Find returns the template with the given name.
func (c Catalog) Find(name string) (Template, bool) {
	tmpl, ok := c.templates[name]
	return tmpl, ok
}

// Names returns all template names, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of templates in the catalog.
func (c Catalog) Len() int {
	return len(c.templates)
}

// Describe returns the description best matching the requested locales
// (in preference order, e.g. the values of LC_MESSAGES and LANG). With no
// usable match it returns the untranslated text.
func (t Template) Describe(locales ...string) Description {
	fallback := t.descriptions[""]

	available := make([]language.Tag, 0, len(t.descriptions))
	keys := make([]string, 0, len(t.descriptions))
	for key := range t.descriptions {
		if key == "" {
			continue
		}
		tag, err := language.Parse(key)
		if err != nil {
			continue
		}
		available = append(available, tag)
		keys = append(keys, key)
	}
	if len(available) == 0 {
		return fallback
	}

	var wanted []language.Tag
	for _, locale := range locales {
		tag, err := language.Parse(normalizeLocale(locale))
		if err != nil {
			continue
		}
		wanted = append(wanted, tag)
	}
	if len(wanted) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(available)
	_, index, confidence := matcher.Match(wanted...)
	if confidence == language.No {
		return fallback
	}
	return t.descriptions[keys[index]]
}

// Locales lists the translation locales a template carries, sorted.
func (t Template) Locales() []string {
	locales := make([]string, 0, len(t.descriptions))
	for key := range t.descriptions {
		if key != "" {
			locales = append(locales, key)
		}
	}
	sort.Strings(locales)
	return locales
}

// normalizeLocale turns POSIX locale names (de_DE.UTF-8) into BCP 47 form.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func parseStanza(lines []string) (Template, error) {
	tmpl := Template{descriptions: map[string]Description{}}

	var field string
	var value strings.Builder
	commit := func() {
		if field != "" {
			tmpl.setField(field, value.String())
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if field == "" {
				return Template{}, fmt.Errorf("continuation line without field: %q", line)
			}
			value.WriteByte('\n')
			value.WriteString(strings.TrimLeft(line, " \t"))
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return Template{}, fmt.Errorf("malformed field line: %q", line)
		}
		commit()
		field = strings.TrimSpace(name)
		value.Reset()
		value.WriteString(strings.TrimSpace(rest))
	}
	commit()

	if tmpl.Name == "" {
		return Template{}, fmt.Errorf("stanza missing Template field")
	}
	if tmpl.Type == "" {
		return Template{}, fmt.Errorf("template %s missing Type field", tmpl.Name)
	}
	return tmpl, nil
}

func (t *Template) setField(field, value string) {
	switch {
	case field == "Template":
		t.Name = value
	case field == "Type":
		t.Type = value
	case field == "Default":
		t.Default = value
	case field == "Description":
		t.descriptions[""] = splitDescription(value)
	case strings.HasPrefix(field, "Description-"):
		locale := strings.TrimPrefix(field, "Description-")
		if idx := strings.Index(locale, "."); idx >= 0 {
			locale = locale[:idx]
		}
		t.descriptions[strings.ReplaceAll(locale, "_", "-")] = splitDescription(value)
	default:
		// Unknown fields (Choices, Owners, ...) are tolerated and dropped.
	}
}

func splitDescription(value string) Description {
	short, extended, _ := strings.Cut(value, "\n")
	var paragraphs []string
	for _, line := range strings.Split(extended, "\n") {
		if line == "." {
			paragraphs = append(paragraphs, "")
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return Description{
		Short:    strings.TrimSpace(short),
		Extended: strings.TrimSpace(strings.Join(paragraphs, "\n")),
	}
}
