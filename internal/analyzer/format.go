package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"atscv/internal/model"
	"atscv/internal/textutil"
)

// Format issue messages.
const (
	issueNoSections       = "No se detectan secciones claramente definidas. Los sistemas ATS necesitan secciones claras para categorizar correctamente la información."
	issueMissingSections  = "Secciones importantes con contenido insuficiente o ausente: %s. Los sistemas ATS buscan estas secciones específicamente."
	issueLongLines        = "Líneas de texto demasiado largas. Esto suele indicar un formato de múltiples columnas que los ATS no pueden procesar correctamente. Utiliza un diseño de una sola columna."
	issueShortLines       = "Líneas de texto muy cortas. Podría indicar un formato demasiado fragmentado que dificulta la lectura automática. Evita el uso excesivo de saltos de línea."
	issueTables           = "Se detectaron posibles tablas (%d). Los sistemas ATS suelen tener problemas para procesar información en formato de tabla. Convierte las tablas a listas con viñetas o texto sencillo."
	issueGraphics         = "Se detectaron posibles elementos gráficos o caracteres especiales. Los sistemas ATS pueden confundirse con estos elementos. Usa formato de texto simple."
	issueDateFormats      = "Formatos de fecha inconsistentes en la sección de experiencia. Usa un único formato de fecha para mejorar la legibilidad ATS."
	issueBulletStyles     = "Estilos de viñetas inconsistentes en el CV. Usa un solo tipo de viñeta para mejorar la coherencia y la legibilidad ATS."
	issueCapitalization   = "Capitalización inconsistente en los encabezados de sección. Usa un estilo consistente para los títulos de sección."
	issueMultipleSpaces   = "Uso excesivo de espacios múltiples. Los sistemas ATS pueden interpretar incorrectamente el espaciado. Usa un solo espacio entre palabras."
	issuePageCount        = "El CV tiene %d páginas, lo que es %s. La mayoría de reclutadores prefieren CVs de 1-2 páginas, y los sistemas ATS pueden tener problemas con documentos extensos. Considera priorizar la información más relevante."
	issueDensity          = "El CV tiene una alta densidad de texto por página. Los sistemas ATS prefieren documentos con espaciado adecuado. Considera añadir más espacio en blanco para mejorar la legibilidad."
	severityConsiderable  = "considerablemente largo"
	severitySlight        = "ligeramente largo"
	densityThreshold      = 5000
	criticalSectionMinLen = 50
)

type criticalSection struct {
	section textutil.Section
	label   string
}

var criticalSections = []criticalSection{
	{textutil.Experiencia, "experiencia laboral"},
	{textutil.Educacion, "educación"},
	{textutil.Habilidades, "habilidades"},
}

var tableRowRes = []*regexp.Regexp{
	regexp.MustCompile(`\|.*\|`),
	regexp.MustCompile(`\t.*\t`),
	regexp.MustCompile(`\s{3,}[^\s]+\s{3,}`),
	regexp.MustCompile(`^\s*[•\-*]\s+.*\s{4,}.*$`),
	regexp.MustCompile(`^\s*\d+[.)]\s+.*\s{4,}.*$`),
}

var (
	separatorRe    = regexp.MustCompile(`^[=\-_*]{5,}$`)
	multiSpaceRe   = regexp.MustCompile(`  +`)
	graphicSymbols = "☑☐☒√✓✔✕✖✗▪■□▫▬▭▮▯◆◇◈◉○●◌◍↑↓←→↔↕⇑⇓⇐⇒"
)

// dateStyles maps a date writing style to the patterns that reveal it.
// English and Spanish month names count as the same style.
var dateStyles = []struct {
	name string
	re   *regexp.Regexp
}{
	{"d/m/y", regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)},
	{"d-m-y", regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{2,4}\b`)},
	{"y/m/d", regexp.MustCompile(`\b\d{4}/\d{1,2}/\d{1,2}\b`)},
	{"y-m-d", regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`)},
	{"month year", regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|Ene|Abr|Ago|Dic)[a-z]* \d{2,4}\b`)},
	{"year month", regexp.MustCompile(`\b\d{2,4} (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|Ene|Abr|Ago|Dic)[a-z]*\b`)},
}

var bulletStyleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*•`),
	regexp.MustCompile(`(?m)^\s*\*`),
	regexp.MustCompile(`(?m)^\s*-`),
	regexp.MustCompile(`(?m)^\s*\+`),
	regexp.MustCompile(`(?m)^\s*>`),
	regexp.MustCompile(`(?m)^\s*◦`),
	regexp.MustCompile(`(?m)^\s*▪`),
	regexp.MustCompile(`(?m)^\s*✓`),
	regexp.MustCompile(`(?m)^\s*\d+\.`),
	regexp.MustCompile(`(?m)^\s*\(\d+\)`),
}

// AnalyzeFormat scores the layout of text for ATS readability.
// pageCount comes from the parsed document; values below 1 are treated as 1.
func AnalyzeFormat(text string, pageCount int) model.FormatAnalysis {
	sections := textutil.DetectSections(text)
	var issues []string
	var score model.FormatScore

	present := sections.Present()
	sectionCount := len(present)
	switch {
	case sectionCount < 3:
		issues = append(issues, issueNoSections)
		score.Structure = 30
	case sectionCount < 5:
		score.Structure = 70
	default:
		score.Structure = 100
	}

	var missing, missingLabels []string
	for _, cs := range criticalSections {
		if utf8.RuneCountInString(sections.Get(cs.section)) < criticalSectionMinLen {
			missing = append(missing, string(cs.section))
			missingLabels = append(missingLabels, cs.label)
		}
	}
	score.Sections = 100
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf(issueMissingSections, strings.Join(missingLabels, ", ")))
		score.Sections = 100 - 33*len(missing)
	}

	avg := avgCharactersPerLine(text)
	switch {
	case avg > 100:
		issues = append(issues, issueLongLines)
		score.Readability = 40
	case avg < 20 && utf8.RuneCountInString(text) > 1000:
		issues = append(issues, issueShortLines)
		score.Readability = 60
	default:
		score.Readability = 100
	}

	tables := countTables(text)
	if tables > 0 {
		issues = append(issues, fmt.Sprintf(issueTables, tables))
		score.Readability -= 20 * min(tables, 3)
	}

	graphics := countGraphicElements(text)
	if graphics > 2 {
		issues = append(issues, issueGraphics)
		score.Readability -= 15
	}
	score.Readability = max(score.Readability, 0)

	consistency := consistencyIssues(text, sections)
	issues = append(issues, consistency...)
	score.Consistency = max(100-20*len(consistency), 0)

	score.Total = int(math.Round(
		float64(score.Structure)*0.25 +
			float64(score.Readability)*0.35 +
			float64(score.Sections)*0.25 +
			float64(score.Consistency)*0.15,
	))

	if pageCount > 2 {
		severity := severitySlight
		if pageCount > 4 {
			severity = severityConsiderable
		}
		issues = append(issues, fmt.Sprintf(issuePageCount, pageCount, severity))
	}

	density := float64(utf8.RuneCountInString(text)) / float64(max(pageCount, 1))
	if density > densityThreshold {
		issues = append(issues, issueDensity)
	}

	presentNames := make([]string, 0, len(present))
	for _, s := range present {
		presentNames = append(presentNames, string(s))
	}
	if missing == nil {
		missing = []string{}
	}
	if issues == nil {
		issues = []string{}
	}

	return model.FormatAnalysis{
		FormatScore:          score,
		FormatIssues:         issues,
		SectionCount:         sectionCount,
		HasDetectedSections:  sectionCount > 2,
		AvgCharactersPerLine: avg,
		PotentialTableCount:  tables,
		GraphicElementsCount: graphics,
		TextDensity:          density,
		SectionAnalysis: model.SectionAnalysis{
			PresentSections: presentNames,
			MissingSections: missing,
		},
	}
}

func avgCharactersPerLine(text string) int {
	total, lines := 0, 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total += utf8.RuneCountInString(line)
		lines++
	}
	if lines == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(lines)))
}

// countTables counts runs of three table-like lines. A run resets after each count.
func countTables(text string) int {
	tables, run := 0, 0
	for _, line := range strings.Split(text, "\n") {
		if !isTableRow(line) {
			run = 0
			continue
		}
		run++
		if run >= 3 {
			tables++
			run = 0
		}
	}
	return tables
}

func isTableRow(line string) bool {
	for _, re := range tableRowRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// countGraphicElements counts decorative glyphs plus separator lines such as "-----".
func countGraphicElements(text string) int {
	count := 0
	for _, r := range text {
		if isGraphicRune(r) {
			count++
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if separatorRe.MatchString(strings.TrimSpace(line)) {
			count++
		}
	}
	return count
}

func isGraphicRune(r rune) bool {
	if r >= 0x2500 && r <= 0x257F {
		return true
	}
	return strings.ContainsRune(graphicSymbols, r)
}

func consistencyIssues(text string, sections textutil.SectionMap) []string {
	var issues []string

	if exp := sections.Get(textutil.Experiencia); exp != "" {
		styles := 0
		for _, ds := range dateStyles {
			if ds.re.MatchString(exp) {
				styles++
			}
		}
		if styles > 1 {
			issues = append(issues, issueDateFormats)
		}
	}

	bullets := 0
	for _, re := range bulletStyleRes {
		if re.MatchString(text) {
			bullets++
		}
	}
	if bullets > 1 {
		issues = append(issues, issueBulletStyles)
	}

	caps := map[string]struct{}{}
	for _, s := range sections.Present() {
		if line, ok := firstContentLine(sections.Get(s)); ok {
			caps[capitalization(line)] = struct{}{}
		}
	}
	if len(caps) > 1 {
		issues = append(issues, issueCapitalization)
	}

	if len(multiSpaceRe.FindAllStringIndex(text, -1)) > 10 {
		issues = append(issues, issueMultipleSpaces)
	}
	return issues
}

// firstContentLine returns the first non-blank line of a section body, trimmed.
func firstContentLine(body string) (string, bool) {
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, true
		}
	}
	return "", false
}

// capitalization classifies a line as uppercase, capitalized or lowercase.
// A line opening with a rune that has no case, such as a digit, counts as capitalized.
func capitalization(line string) string {
	if line == strings.ToUpper(line) {
		return "uppercase"
	}
	r, _ := utf8.DecodeRuneInString(line)
	if unicode.ToUpper(r) == r {
		return "capitalized"
	}
	return "lowercase"
}
