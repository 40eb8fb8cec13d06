package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"atscv/internal/catalog"
	"atscv/internal/model"
	"atscv/internal/parser"
)

func printLocateDiagnostic(w io.Writer, err error, samplesDir string) {
	var pe *parser.ParseError
	switch {
	case errors.Is(err, parser.ErrAmbiguousSource):
		fmt.Fprintf(w, "❌ Se encontraron múltiples archivos CV en %s. Por favor, deja solo uno para evitar ambigüedades.\n", samplesDir)
	case errors.As(err, &pe) && pe.Path != samplesDir:
		fmt.Fprintf(w, "❌ El archivo no existe: %s\n", pe.Path)
	default:
		fmt.Fprintf(w, "❌ No se encontró ningún CV en %s. Por favor, coloca tu CV en esta carpeta.\n", samplesDir)
	}
	fmt.Fprintln(w, "\n📝 SUGERENCIAS:")
	fmt.Fprintf(w, "1. Coloca tu CV en la carpeta %s\n", samplesDir)
	fmt.Fprintln(w, `2. Asegúrate de que tu archivo tenga la palabra "cv", "resume" o "curriculum" en el nombre`)
	fmt.Fprintln(w, "3. Formatos aceptados: PDF, DOCX")
}

func printProcessingDiagnostic(w io.Writer, err error) {
	fmt.Fprintf(w, "❌ Error procesando el CV: %v\n", err)
	fmt.Fprintln(w, "\n🔧 POSIBLES SOLUCIONES:")
	fmt.Fprintln(w, "1. Verifica que el formato del CV sea válido (PDF o DOCX)")
	fmt.Fprintln(w, "2. Comprueba que el CV no esté dañado o protegido")
	fmt.Fprintln(w, "3. Intenta con otro archivo CV")
}

func printReport(w io.Writer, a *model.Analysis) {
	info := a.DocumentInfo
	fmt.Fprintln(w, "✅ Documento analizado correctamente")
	fmt.Fprintf(w, "📊 Número de páginas: %d\n", info.Pages)
	fmt.Fprintf(w, "📝 Total de caracteres: %d\n", info.CharacterCount)

	roleTitle := "General"
	role, hasRole := catalog.Role(info.TargetRole)
	if hasRole {
		roleTitle = role.Title
	}
	fmt.Fprintf(w, "🎯 Analizando para el puesto: %s\n", roleTitle)

	fmt.Fprintln(w, "\n📊 RESULTADOS DEL ANÁLISIS DEL CV")
	fmt.Fprintln(w, "==============================")

	fmt.Fprintf(w, "\n🏆 PUNTUACIÓN ATS TOTAL: %d%%\n", a.ATSScores.Total)
	fmt.Fprintf(w, "   ├─ Puntuación de contenido: %d%%\n", a.ATSScores.Content)
	fmt.Fprintf(w, "   └─ Puntuación de formato: %d%%\n", a.Format.FormatScore.Total)

	keywordCount := a.Keywords.KeywordCount
	if keywordCount == 0 {
		keywordCount = len(a.Basic.KeywordsFound)
	}
	fmt.Fprintln(w, "\n📋 RESUMEN:")
	fmt.Fprintf(w, "✓ Palabras clave encontradas: %d\n", keywordCount)
	fmt.Fprintf(w, "✓ Habilidades detectadas: %d\n", len(a.Basic.Skills))
	fmt.Fprintf(w, "✓ Años de experiencia estimados: %d\n", a.Experience.YearsOfExperience)
	if hasRole && a.Keywords.ProfileMatch != nil {
		fmt.Fprintf(w, "✓ Compatibilidad con puesto %s: %d%%\n", role.Title, a.Keywords.ProfileMatch.EssentialKeywords.Percentage)
	}

	fmt.Fprintln(w, "\n📑 ANÁLISIS DE FORMATO:")
	fmt.Fprintf(w, "✓ Puntuación de estructura: %d%%\n", a.Format.FormatScore.Structure)
	fmt.Fprintf(w, "✓ Puntuación de legibilidad: %d%%\n", a.Format.FormatScore.Readability)
	fmt.Fprintf(w, "✓ Secciones detectadas: %d\n", a.Format.SectionCount)

	if len(a.Format.FormatIssues) > 0 {
		fmt.Fprintln(w, "\n⚠️ PROBLEMAS DE FORMATO DETECTADOS:")
		for _, issue := range a.Format.FormatIssues {
			fmt.Fprintf(w, "  ⚠️ %s\n", issue)
		}
	}

	fmt.Fprintln(w, "\n🔧 HABILIDADES POR CATEGORÍA:")
	for _, category := range catalog.SkillCategories() {
		if skills := a.CategorizedSkills[category]; len(skills) > 0 {
			fmt.Fprintf(w, "  %s: %s\n", category, strings.Join(skills, ", "))
		}
	}

	if a.TotalRecommendations > 0 {
		fmt.Fprintln(w, "\n💡 RECOMENDACIONES PARA MEJORAR:")
		fmt.Fprintf(w, "  Prioridad: %s\n", a.Priority)

		if len(a.Recommendations.Formatting) > 0 {
			fmt.Fprintln(w, "\n  FORMATO (PRIORITARIO):")
			printBullets(w, a.Recommendations.Formatting)
		}
		others := []struct {
			name string
			recs []string
		}{
			{"GENERAL", a.Recommendations.General},
			{"KEYWORDS", a.Recommendations.Keywords},
			{"SKILLS", a.Recommendations.Skills},
			{"EXPERIENCE", a.Recommendations.Experience},
		}
		for _, o := range others {
			if len(o.recs) > 0 {
				fmt.Fprintf(w, "\n  %s:\n", o.name)
				printBullets(w, o.recs)
			}
		}
	}

	if a.ReportLocation != "" {
		fmt.Fprintf(w, "\n💾 Resultados guardados en: %s\n", a.ReportLocation)
	}
	fmt.Fprintln(w, "\n✅ Análisis completado.")
}

func printBullets(w io.Writer, recs []string) {
	for _, r := range recs {
		fmt.Fprintf(w, "  ✦ %s\n", r)
	}
}
