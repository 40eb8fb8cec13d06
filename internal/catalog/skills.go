package catalog

// Skill categories. Otras collects skills with no mapping.
const (
	CategoryProgramming   = "Lenguajes de Programación"
	CategoryFrameworks    = "Frameworks y Bibliotecas"
	CategoryDatabases     = "Bases de Datos"
	CategoryCloudDevOps   = "Cloud y DevOps"
	CategorySoftSkills    = "Habilidades Blandas"
	CategoryMethodologies = "Metodologías"
	CategoryTools         = "Herramientas"
	CategoryOther         = "Otras"
)

var skillCategoryOrder = []string{
	CategoryProgramming,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryCloudDevOps,
	CategorySoftSkills,
	CategoryMethodologies,
	CategoryOther,
}

// skillVocabulary is matched by lower-case substring.
var skillVocabulary = []string{
	"javascript", "python", "java", "react", "node", "express", "sql", "nosql",
	"mongodb", "aws", "azure", "docker", "kubernetes", "git", "agile", "scrum",
	"comunicación", "liderazgo", "gestión de proyectos", "resolución de problemas",
	"html", "css", "typescript", "php", "c#", ".net", "angular", "vue", "spring",
	"django", "flask", "laravel", "ruby", "go", "rust", "scala", "swift",
	"microservicios", "devops", "ci/cd", "jenkins", "github actions",
}

var skillCategory = map[string]string{
	"javascript": CategoryProgramming,
	"python":     CategoryProgramming,
	"java":       CategoryProgramming,
	"typescript": CategoryProgramming,
	"php":        CategoryProgramming,
	"c#":         CategoryProgramming,
	"ruby":       CategoryProgramming,
	"go":         CategoryProgramming,
	"rust":       CategoryProgramming,
	"scala":      CategoryProgramming,
	"swift":      CategoryProgramming,
	"html":       CategoryProgramming,
	"css":        CategoryProgramming,

	"react":   CategoryFrameworks,
	"angular": CategoryFrameworks,
	"vue":     CategoryFrameworks,
	"node":    CategoryFrameworks,
	"express": CategoryFrameworks,
	"spring":  CategoryFrameworks,
	"django":  CategoryFrameworks,
	"flask":   CategoryFrameworks,
	"laravel": CategoryFrameworks,
	".net":    CategoryFrameworks,

	"sql":        CategoryDatabases,
	"nosql":      CategoryDatabases,
	"mongodb":    CategoryDatabases,
	"mysql":      CategoryDatabases,
	"postgresql": CategoryDatabases,
	"oracle":     CategoryDatabases,
	"redis":      CategoryDatabases,

	"aws":            CategoryCloudDevOps,
	"azure":          CategoryCloudDevOps,
	"gcp":            CategoryCloudDevOps,
	"docker":         CategoryCloudDevOps,
	"kubernetes":     CategoryCloudDevOps,
	"devops":         CategoryCloudDevOps,
	"ci/cd":          CategoryCloudDevOps,
	"jenkins":        CategoryCloudDevOps,
	"github actions": CategoryCloudDevOps,
	"git":            CategoryCloudDevOps,
	"microservicios": CategoryCloudDevOps,

	"comunicación":            CategorySoftSkills,
	"liderazgo":               CategorySoftSkills,
	"gestión de proyectos":    CategorySoftSkills,
	"resolución de problemas": CategorySoftSkills,
	"trabajo en equipo":       CategorySoftSkills,

	"agile":  CategoryMethodologies,
	"scrum":  CategoryMethodologies,
	"kanban": CategoryMethodologies,
}

// SkillVocabulary returns the lower-case skills recognized in résumés.
func SkillVocabulary() []string {
	out := make([]string, len(skillVocabulary))
	copy(out, skillVocabulary)
	return out
}

// SkillCategories returns the category names in display order, ending with CategoryOther.
func SkillCategories() []string {
	out := make([]string, len(skillCategoryOrder))
	copy(out, skillCategoryOrder)
	return out
}

// CategoryOf returns the category of a lower-case skill, or CategoryOther.
func CategoryOf(skill string) string {
	if c, ok := skillCategory[skill]; ok {
		return c
	}
	return CategoryOther
}
