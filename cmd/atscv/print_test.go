package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/parser"
)

func TestPrintLocateDiagnostic(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"none", "", "No se encontró ningún CV en " + dir},
		{"explicit missing", filepath.Join(dir, "nope.pdf"), "El archivo no existe: " + filepath.Join(dir, "nope.pdf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Locate(tt.path, dir)

			var buf bytes.Buffer
			printLocateDiagnostic(&buf, err, dir)

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SUGERENCIAS")
			assert.Contains(t, buf.String(), "Formatos aceptados: PDF, DOCX")
		})
	}

	t.Run("ambiguous", func(t *testing.T) {
		var buf bytes.Buffer
		printLocateDiagnostic(&buf, fmt.Errorf("locate: %w", parser.ErrAmbiguousSource), dir)
		assert.Contains(t, buf.String(), "Se encontraron múltiples archivos CV en "+dir)
	})
}

func TestPrintProcessingDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	printProcessingDiagnostic(&buf, parser.ErrParseFailure)

	assert.Contains(t, buf.String(), "Error procesando el CV: "+parser.ErrParseFailure.Error())
	assert.Contains(t, buf.String(), "POSIBLES SOLUCIONES")
}

func TestPrintReport(t *testing.T) {
	a := &model.Analysis{
		Basic:      model.BasicAnalysis{Skills: []string{"python", "docker"}, KeywordsFound: []string{"python"}},
		Experience: model.ExperienceAnalysis{YearsOfExperience: 6},
		Keywords: model.KeywordAnalysis{
			ProfileMatch: &model.ProfileMatch{EssentialKeywords: model.ProfileKeywordMatch{Percentage: 75}},
		},
		Format: model.FormatAnalysis{
			FormatScore:  model.FormatScore{Structure: 80, Readability: 55, Total: 70},
			FormatIssues: []string{"Se detectaron líneas muy largas"},
			SectionCount: 4,
		},
		CategorizedSkills: model.CategorizedSkills{catalog.CategoryProgramming: {"python"}},
		ATSScores:         model.ATSScore{Total: 64, Content: 60},
		DocumentInfo:      model.DocumentInfo{Pages: 2, CharacterCount: 4200, TargetRole: "BACKEND_DEVELOPER"},
		Recommendations: model.Recommendations{
			Formatting: []string{"Usa fuentes estándar"},
			Skills:     []string{"Agrega Go"},
		},
		Priority:             "Media",
		TotalRecommendations: 2,
		ReportLocation:       "results/analisis-x.json",
	}

	var buf bytes.Buffer
	printReport(&buf, a)
	out := buf.String()

	assert.Contains(t, out, "PUNTUACIÓN ATS TOTAL: 64%")
	assert.Contains(t, out, "Puntuación de formato: 70%")
	assert.Contains(t, out, "Palabras clave encontradas: 1")
	assert.Contains(t, out, "Años de experiencia estimados: 6")
	assert.Contains(t, out, ": 75%")
	assert.Contains(t, out, "⚠️ Se detectaron líneas muy largas")
	assert.Contains(t, out, catalog.CategoryProgramming+": python")
	assert.Contains(t, out, "Prioridad: Media")
	assert.Contains(t, out, "FORMATO (PRIORITARIO):\n  ✦ Usa fuentes estándar")
	assert.Contains(t, out, "SKILLS:\n  ✦ Agrega Go")
	assert.NotContains(t, out, "GENERAL:")
	assert.Contains(t, out, "results/analisis-x.json")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("FORMATO (PRIORITARIO)")), bytes.Index(buf.Bytes(), []byte("SKILLS:")))
}
