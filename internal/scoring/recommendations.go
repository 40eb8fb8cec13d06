package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"atscv/internal/catalog"
	"atscv/internal/model"
)

// Priority levels. Only two tiers exist; an empty recommendation list is still Media.
const (
	PriorityHigh   = "Alta"
	PriorityMedium = "Media"

	highPriorityAbove = 5
)

const (
	recTooShort = "El CV es demasiado corto. Considera añadir más detalles sobre tu experiencia y habilidades."
	recTooLong  = "El CV es bastante extenso. Considera acortarlo para mantener la atención del reclutador."
	recLowScore = "La puntuación ATS es baja. Sigue las recomendaciones específicas para mejorarla."

	recMoreKeywords     = "Incluye más palabras clave relevantes para el sector tecnológico."
	recMissingEssential = "Faltan habilidades esenciales para el rol de %s: %s."
	recMissingPreferred = "Considera añadir estas habilidades preferidas para el rol de %s: %s."
	recKeyPhrases       = `Incluye más frases relacionadas con %s, como: "%s", etc.`

	recMeasurable = `Añade resultados cuantificables en tu experiencia laboral (ej: "Aumenté el rendimiento en un 25%", "Reduje los tiempos de carga en un 40%").`
	recNoRoles    = "No se detectan roles claros en tu experiencia. Asegúrate de incluir títulos de puesto específicos y destacados."

	recFileName    = `Nombra tu archivo CV de forma profesional, como "Nombre_Apellido_CV.pdf". Evita caracteres especiales, espacios y nombres genéricos como "cv.pdf" o "resume.pdf".`
	recEducation   = "Añade una sección clara de Educación con títulos, instituciones y fechas. Esta sección es fundamental para los sistemas ATS."
	recExperience  = "Incluye una sección de Experiencia Laboral bien estructurada con empresa, cargo, fechas y responsabilidades. Usa formato consistente para cada entrada."
	recSkills      = "Añade una sección específica de Habilidades Técnicas donde enumeres tus competencias. Los ATS buscan esta sección para filtrar candidatos."
	recReadability = "El formato tiene problemas de legibilidad. Usa párrafos cortos, viñetas simples y evita diseños complejos que los ATS no pueden procesar correctamente."
	recConsistency = "Hay inconsistencias en el formato. Mantén la misma estructura, estilo de viñetas y formato de fechas en todo el documento para mejorar la legibilidad ATS."
	recTables      = "Reemplaza las tablas por listas con viñetas. Las tablas son uno de los principales problemas para los sistemas ATS, ya que suelen leer de izquierda a derecha y de arriba a abajo, mezclando información de diferentes celdas."
	recGraphics    = "Elimina símbolos especiales, líneas decorativas y caracteres no estándar. Usa solo texto plano con viñetas simples (•) para garantizar la compatibilidad con ATS."
	recDensity     = "Tu CV tiene demasiada información concentrada. Aumenta el espacio entre secciones, usa márgenes adecuados y considera eliminar detalles menos relevantes para mejorar la legibilidad."
	recFonts       = "Usa fuentes estándar como Arial, Calibri, Times New Roman o Helvetica. Las fuentes decorativas o poco comunes pueden causar problemas con los sistemas ATS."
	recHeaders     = "Evita poner información importante en encabezados o pies de página. Muchos sistemas ATS no pueden leer estas áreas del documento."
)

var (
	sectionTips      = map[string]string{"educacion": recEducation, "experiencia": recExperience, "habilidades": recSkills}
	sectionTipsOrder = []string{"educacion", "experiencia", "habilidades"}
)

var professionalFileNames = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[A-Za-z]+(_[A-Za-z]+)*(_(CV|Resume|Curriculum|Vitae|Currículum|Résumé))(_[A-Za-z]+)*(\.(pdf|docx))$`),
	regexp.MustCompile(`(?i)^[A-Za-z]+([ ][A-Za-z]+)*([ ](CV|Resume|Curriculum|Vitae|Currículum|Résumé))([ ][A-Za-z]+)*(\.(pdf|docx))$`),
}

const (
	minWords         = 300
	maxWords         = 1000
	lowScore         = 50
	minKeywordsFound = 10
	minReadability   = 60
	minConsistency   = 70
	maxGraphics      = 2
	maxDensity       = 5000
	keyPhraseSamples = 3
)

// GenerateRecommendations evaluates every rule against the aggregate analysis.
// cvText is the raw résumé text used for key phrase checks. An empty or unknown
// roleID skips the role rules.
func GenerateRecommendations(a model.Analysis, cvText, roleID string) model.RecommendationSet {
	recs := model.Recommendations{
		General:    []string{},
		Keywords:   []string{},
		Skills:     []string{},
		Experience: []string{},
		Formatting: []string{},
	}

	basic := a.Basic
	if basic.WordCount < minWords {
		recs.General = append(recs.General, recTooShort)
	}
	if basic.WordCount > maxWords {
		recs.General = append(recs.General, recTooLong)
	}
	if basic.ATSScore < lowScore {
		recs.General = append(recs.General, recLowScore)
	}

	keywordsFound := len(a.Keywords.Keywords)
	if a.Keywords.Keywords == nil {
		keywordsFound = len(basic.KeywordsFound)
	}
	if keywordsFound < minKeywordsFound {
		recs.Keywords = append(recs.Keywords, recMoreKeywords)
	}

	if role, ok := catalog.Role(roleID); roleID != "" && ok {
		if missing := missingSkills(role.EssentialSkills, basic.Skills); len(missing) > 0 {
			recs.Skills = append(recs.Skills, fmt.Sprintf(recMissingEssential, role.Title, strings.Join(missing, ", ")))
		}
		if missing := missingSkills(role.PreferredSkills, basic.Skills); len(missing) > 0 {
			recs.Skills = append(recs.Skills, fmt.Sprintf(recMissingPreferred, role.Title, strings.Join(missing, ", ")))
		}

		lower := strings.ToLower(cvText)
		var found int
		var missing []string
		for _, p := range role.KeyPhrases {
			if strings.Contains(lower, strings.ToLower(p)) {
				found++
			} else {
				missing = append(missing, p)
			}
		}
		if float64(found) < float64(len(role.KeyPhrases))/2 {
			if len(missing) > keyPhraseSamples {
				missing = missing[:keyPhraseSamples]
			}
			recs.Keywords = append(recs.Keywords, fmt.Sprintf(recKeyPhrases, role.Title, strings.Join(missing, `", "`)))
		}
	}

	if !a.Experience.HasMeasurableResults {
		recs.Experience = append(recs.Experience, recMeasurable)
	}
	if len(a.Experience.Roles) == 0 {
		recs.Experience = append(recs.Experience, recNoRoles)
	}

	recs.Formatting = formattingRecommendations(a.Format, a.DocumentInfo.FileName)

	total := recs.Total()
	priority := PriorityMedium
	if total > highPriorityAbove {
		priority = PriorityHigh
	}
	return model.RecommendationSet{
		Recommendations:      recs,
		TotalRecommendations: total,
		Priority:             priority,
	}
}

func formattingRecommendations(f model.FormatAnalysis, fileName string) []string {
	out := make([]string, 0, len(f.FormatIssues)+4)
	seen := map[string]struct{}{}
	for _, issue := range f.FormatIssues {
		if _, ok := seen[issue]; ok {
			continue
		}
		seen[issue] = struct{}{}
		out = append(out, issue)
	}

	if !IsProfessionalFileName(fileName) {
		out = append(out, recFileName)
	}

	missing := map[string]struct{}{}
	for _, s := range f.SectionAnalysis.MissingSections {
		missing[s] = struct{}{}
	}
	for _, s := range sectionTipsOrder {
		if _, ok := missing[s]; ok {
			out = append(out, sectionTips[s])
		}
	}

	if f.FormatScore.Readability < minReadability {
		out = append(out, recReadability)
	}
	if f.FormatScore.Consistency < minConsistency {
		out = append(out, recConsistency)
	}
	if f.PotentialTableCount > 0 {
		out = append(out, recTables)
	}
	if f.GraphicElementsCount > maxGraphics {
		out = append(out, recGraphics)
	}
	if f.TextDensity > maxDensity {
		out = append(out, recDensity)
	}
	return append(out, recFonts, recHeaders)
}

// IsProfessionalFileName reports whether name looks like "Nombre_Apellido_CV.pdf"
// or its space-separated variant.
func IsProfessionalFileName(name string) bool {
	for _, re := range professionalFileNames {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func missingSkills(required, found []string) []string {
	have := make(map[string]struct{}, len(found))
	for _, s := range found {
		have[strings.ToLower(s)] = struct{}{}
	}
	var out []string
	for _, s := range required {
		if _, ok := have[strings.ToLower(s)]; !ok {
			out = append(out, s)
		}
	}
	return out
}
