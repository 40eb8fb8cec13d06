// Package catalog holds the fixed vocabularies used by the analyzers:
// job keywords, the skill vocabulary with its categories and the job role
// profiles. Every lookup returns a copy so callers cannot alter the tables.
package catalog

var jobKeywords = []string{
	// languages
	"JavaScript", "Python", "Java", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"Go", "Rust", "TypeScript", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash",
	"HTML", "CSS", "SQL", "NoSQL",

	// frameworks
	"React", "Angular", "Vue.js", "Next.js", "Svelte", "Express", "Django", "Flask",
	"Spring", "Laravel", "Ruby on Rails", "ASP.NET", ".NET Core", "Bootstrap",
	"jQuery", "TensorFlow", "PyTorch", "Keras", "Pandas", "NumPy", "Node.js",

	// databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra", "Oracle", "SQL Server",
	"DynamoDB", "Firebase", "Elasticsearch", "Neo4j", "MariaDB",

	// cloud and devops
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "GitLab CI",
	"GitHub Actions", "Terraform", "Ansible", "Puppet", "Chef", "Prometheus",
	"Grafana", "ELK Stack", "CI/CD", "DevOps", "SRE", "Microservicios",

	// version control
	"Git", "GitHub", "GitLab", "Bitbucket", "SVN",

	// methodologies
	"Agile", "Scrum", "Kanban", "Lean", "XP", "Waterfall", "TDD", "BDD",

	// roles
	"Desarrollador", "Developer", "Ingeniero", "Engineer", "Arquitecto", "Architect",
	"Full Stack", "Frontend", "Backend", "Mobile", "iOS", "Android",
	"QA", "Tester", "Project Manager", "Product Owner", "Scrum Master",
	"UX Designer", "UI Designer", "Data Scientist", "Data Engineer", "Data Analyst",
	"Machine Learning", "IA", "Artificial Intelligence",

	// soft skills
	"Trabajo en equipo", "Teamwork", "Comunicación", "Communication",
	"Liderazgo", "Leadership", "Resolución de problemas", "Problem solving",
	"Pensamiento crítico", "Critical thinking", "Adaptabilidad", "Adaptability",
	"Creatividad", "Creativity", "Gestión del tiempo", "Time management",

	// action verbs
	"Desarrollé", "Implemented", "Lideré", "Led", "Diseñé", "Designed",
	"Optimicé", "Optimized", "Aumenté", "Increased", "Reduje", "Reduced",
	"Mejoré", "Improved", "Automaticé", "Automated", "Gestioné", "Managed",
	"Coordiné", "Coordinated", "Colaboré", "Collaborated", "Creé", "Created",
}

// JobKeywords returns the common technology job keywords in catalog order.
func JobKeywords() []string {
	out := make([]string, len(jobKeywords))
	copy(out, jobKeywords)
	return out
}
