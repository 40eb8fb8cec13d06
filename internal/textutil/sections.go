package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Section names a labeled region of a résumé.
type Section string

// Known sections. Other holds text that precedes the first header.
const (
	Contacto        Section = "contacto"
	Educacion       Section = "educacion"
	Experiencia     Section = "experiencia"
	Habilidades     Section = "habilidades"
	Proyectos       Section = "proyectos"
	Idiomas         Section = "idiomas"
	Certificaciones Section = "certificaciones"
	Referencias     Section = "referencias"
	Resumen         Section = "resumen"
	Logros          Section = "logros"
	Other           Section = "other"
)

// maxHeaderLen bounds the trimmed length of a line that may be a header.
const maxHeaderLen = 50

type sectionRule struct {
	section  Section
	patterns []*regexp.Regexp
}

// sectionRules is evaluated top to bottom; the first section whose patterns
// match a line claims it.
var sectionRules = []sectionRule{
	{Contacto, []*regexp.Regexp{
		wordPattern(`contacto|información personal|datos personales|datos de contacto|información de contacto`),
		wordPattern(`contact information|personal information|contact details`),
		regexp.MustCompile(`(?i)^[^@\n]{0,40}[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	}},
	{Educacion, []*regexp.Regexp{
		wordPattern(`educación|formación académica|estudios|formación|títulos académicos`),
		wordPattern(`education|academic background|studies|qualifications|degrees`),
	}},
	{Experiencia, []*regexp.Regexp{
		wordPattern(`experiencia(?:\s+laboral|\s+profesional)?|trayectoria(?:\s+profesional)?|historial(?:\s+laboral)?`),
		wordPattern(`experience|work experience|professional experience|employment history|career history`),
	}},
	{Habilidades, []*regexp.Regexp{
		wordPattern(`habilidades|competencias|skills|aptitudes|conocimientos|capacidades`),
		wordPattern(`skills|competencies|technical skills|core competencies`),
		wordPattern(`conocimientos técnicos|habilidades técnicas|lenguajes|technologies`),
	}},
	{Proyectos, []*regexp.Regexp{
		wordPattern(`proyectos|portfolio|trabajos realizados|proyectos destacados`),
		wordPattern(`projects|portfolio|relevant projects|case studies`),
	}},
	{Idiomas, []*regexp.Regexp{
		wordPattern(`idiomas|lenguajes|conocimientos de idiomas|nivel de idiomas`),
		wordPattern(`languages|language skills|language proficiency`),
	}},
	{Certificaciones, []*regexp.Regexp{
		wordPattern(`certificaciones|certificados|diplomas|acreditaciones|cursos`),
		wordPattern(`certifications|certificates|credentials|accreditations|courses`),
	}},
	{Referencias, []*regexp.Regexp{
		wordPattern(`referencias|recomendaciones|contactos de referencia`),
		wordPattern(`references|recommendations|referees`),
	}},
	{Resumen, []*regexp.Regexp{
		wordPattern(`resumen|perfil|perfil profesional|objetivo profesional|sobre mí|acerca de mí`),
		wordPattern(`summary|profile|professional profile|career objective|about me`),
	}},
	{Logros, []*regexp.Regexp{
		wordPattern(`logros|reconocimientos|éxitos|premios|méritos`),
		wordPattern(`achievements|accomplishments|honors|awards|recognitions`),
	}},
}

// Header is a line recognized as a section title.
type Header struct {
	Line    int
	Section Section
	Text    string
}

// SectionMap maps sections to their content. Sections partition the lines
// of the source text; header lines themselves belong to no section.
type SectionMap struct {
	content map[Section]string
	order   []Section
	headers []Header
}

// Get returns the content of s, or "" when s was not detected.
func (m SectionMap) Get(s Section) string {
	return m.content[s]
}

// Has reports whether s was detected with non-empty content.
func (m SectionMap) Has(s Section) bool {
	return m.content[s] != ""
}

// Present lists the non-other sections with content, in document order.
func (m SectionMap) Present() []Section {
	out := make([]Section, 0, len(m.order))
	for _, s := range m.order {
		if s != Other && m.content[s] != "" {
			out = append(out, s)
		}
	}
	return out
}

// Headers returns the detected header lines in document order.
func (m SectionMap) Headers() []Header {
	out := make([]Header, len(m.headers))
	copy(out, m.headers)
	return out
}

// MatchHeader returns the section claimed by line, if any.
func MatchHeader(line string) (Section, bool) {
	trimmed := strings.TrimSpace(line)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 || n >= maxHeaderLen {
		return "", false
	}
	for _, rule := range sectionRules {
		for _, re := range rule.patterns {
			if re.MatchString(trimmed) {
				return rule.section, true
			}
		}
	}
	return "", false
}

// DetectSections scans text line by line for section headers.
// Content before the first header goes to Other; with no headers at all the
// whole text is Other. A section whose header repeats accumulates the content
// of every occurrence.
func DetectSections(text string) SectionMap {
	lines := strings.Split(text, "\n")
	m := SectionMap{content: make(map[Section]string)}

	for i, line := range lines {
		if s, ok := MatchHeader(line); ok {
			m.headers = append(m.headers, Header{Line: i, Section: s, Text: strings.TrimSpace(line)})
		}
	}

	if len(m.headers) == 0 {
		m.content[Other] = text
		m.order = append(m.order, Other)
		return m
	}

	if first := m.headers[0].Line; first > 0 {
		m.content[Other] = strings.TrimSpace(strings.Join(lines[:first], "\n"))
		m.order = append(m.order, Other)
	}

	for i, h := range m.headers {
		end := len(lines)
		if i+1 < len(m.headers) {
			end = m.headers[i+1].Line
		}
		body := strings.TrimSpace(strings.Join(lines[h.Line+1:end], "\n"))

		prev, seen := m.content[h.Section]
		if !seen {
			m.order = append(m.order, h.Section)
		}
		switch {
		case prev == "":
			m.content[h.Section] = body
		case body != "":
			m.content[h.Section] = prev + "\n" + body
		}
	}
	return m
}
