package analyzer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"atscv/internal/model"
	"atscv/internal/textutil"
)

var now = time.Now

var jobTitles = []string{
	"desarrollador", "developer", "ingeniero", "engineer", "arquitecto", "architect",
	"programador", "programmer", "analista", "analyst", "diseñador", "designer",
	"líder", "lead", "jefe", "head", "director", "manager", "consultor", "consultant",
	"devops", "fullstack", "frontend", "backend", "full stack", "front end", "back end",
	"qa", "tester", "sre", "data scientist", "científico de datos",
}

// A role is a title word followed by up to 30 word or blank characters on the same line.
var roleRe = regexp.MustCompile(`(?im)(?:^|[^\p{L}\p{N}_])((?:` + strings.Join(jobTitles, "|") + `)[ \t]+[\p{L}\p{N}_ \t]{1,29}[\p{L}\p{N}_])`)

var achievementRes = []*regexp.Regexp{
	achievementPattern(`logré|logrado|conseguí|conseguido|desarrollé|desarrollado|implementé|implementado`),
	achievementPattern(`reduje|reducido|aumenté|aumentado|mejoré|mejorado|optimicé|optimizado`),
	achievementPattern(`lideré|liderado|dirigí|dirigido|gestioné|gestionado|coordiné|coordinado`),
}

var (
	measurableRe = regexp.MustCompile(`(?i)\d+%|\d+ veces|incremento|aumento|reducción|optimización`)
	yearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// achievementPattern matches a sentence fragment from an achievement verb to the next period.
func achievementPattern(stems string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)(?:^|[^\p{L}\p{N}_])((?:` + stems + `)(?:[^\p{L}\p{N}_.\n][^.\n]*)?\.)`)
}

// AnalyzeExperience inspects the experience section, or the whole text when
// there is none, for dates, job titles and achievements.
func AnalyzeExperience(text string) model.ExperienceAnalysis {
	sections := textutil.DetectSections(text)
	scope := text
	if sections.Has(textutil.Experiencia) {
		scope = sections.Get(textutil.Experiencia)
	}

	roles := extractRoles(scope)
	achievements := extractAchievements(scope)

	measurable := false
	for _, a := range achievements {
		if measurableRe.MatchString(a) {
			measurable = true
			break
		}
	}

	return model.ExperienceAnalysis{
		YearsOfExperience:    yearsOfExperience(textutil.ExtractDates(scope), now().Year()),
		Roles:                roles,
		JobCount:             len(roles),
		Achievements:         achievements,
		AchievementCount:     len(achievements),
		HasMeasurableResults: measurable,
	}
}

// yearsOfExperience is the span between the oldest and newest year mentioned,
// ignoring years after currentYear. Fewer than two distinct years yields 0.
func yearsOfExperience(dates []string, currentYear int) int {
	minYear, maxYear, distinct := 0, 0, 0
	seen := map[int]struct{}{}
	for _, d := range dates {
		m := yearRe.FindString(d)
		if m == "" {
			continue
		}
		y, err := strconv.Atoi(m)
		if err != nil || y > currentYear {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		distinct++
		if distinct == 1 || y < minYear {
			minYear = y
		}
		if distinct == 1 || y > maxYear {
			maxYear = y
		}
	}
	if distinct < 2 {
		return 0
	}
	return maxYear - minYear
}

func extractRoles(text string) []string {
	set := &textutil.OrderedSet{}
	for _, loc := range roleRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		// A match cut off by the length limit ends mid-word; drop the partial word.
		if end < len(text) {
			if r, _ := utf8.DecodeRuneInString(text[end:]); textutil.IsWordRune(r) {
				cut := strings.LastIndexAny(text[start:end], " \t")
				if cut < 0 {
					continue
				}
				end = start + cut
			}
		}
		role := strings.TrimSpace(text[start:end])
		if !strings.ContainsAny(role, " \t") {
			continue
		}
		set.Add(role)
	}
	return set.Items()
}

func extractAchievements(text string) []string {
	set := &textutil.OrderedSet{}
	for _, re := range achievementRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			set.Add(strings.TrimSpace(m[1]))
		}
	}
	return set.Items()
}
