package catalog

// DefaultRoleID is the role used when a request does not name one.
const DefaultRoleID = "FULLSTACK_DEVELOPER"

// JobRoleProfile describes what a target role expects from a résumé.
type JobRoleProfile struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	EssentialSkills       []string           `json:"essentialSkills"`
	PreferredSkills       []string           `json:"preferredSkills"`
	KeyPhrases            []string           `json:"keyPhrases"`
	SkillWeightByCategory map[string]float64 `json:"skillWeightByCategory"`
}

// RoleSummary is the public listing entry for a role.
type RoleSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var jobRoles = []JobRoleProfile{
	{
		ID:              "FRONTEND_DEVELOPER",
		Title:           "Desarrollador Frontend",
		EssentialSkills: []string{"JavaScript", "HTML", "CSS"},
		PreferredSkills: []string{"React", "Angular", "Vue.js", "TypeScript", "SASS"},
		KeyPhrases: []string{
			"desarrollo de interfaces", "experiencia de usuario", "componentes web",
			"optimización frontend", "responsive design", "mobile first",
		},
		SkillWeightByCategory: map[string]float64{
			CategoryProgramming: 0.4,
			CategoryFrameworks:  0.35,
			CategorySoftSkills:  0.15,
			CategoryTools:       0.1,
		},
	},
	{
		ID:              "BACKEND_DEVELOPER",
		Title:           "Desarrollador Backend",
		EssentialSkills: []string{"Java", "Python", "Node.js", "SQL"},
		PreferredSkills: []string{"Spring", "Django", "Express", "MongoDB", "PostgreSQL", "AWS"},
		KeyPhrases: []string{
			"desarrollo de APIs", "arquitectura de servicios", "bases de datos",
			"optimización de consultas", "servicios web", "seguridad",
		},
		SkillWeightByCategory: map[string]float64{
			CategoryProgramming: 0.35,
			CategoryDatabases:   0.3,
			CategoryFrameworks:  0.2,
			CategoryCloudDevOps: 0.15,
		},
	},
	{
		ID:              "FULLSTACK_DEVELOPER",
		Title:           "Desarrollador Full Stack",
		EssentialSkills: []string{"JavaScript", "HTML", "CSS", "SQL", "Node.js"},
		PreferredSkills: []string{"React", "Angular", "Vue.js", "Express", "MongoDB", "PostgreSQL", "Git"},
		KeyPhrases: []string{
			"desarrollo frontend y backend", "arquitectura completa", "implementación de aplicaciones",
			"desarrollo full-stack", "soluciones end-to-end",
		},
		SkillWeightByCategory: map[string]float64{
			CategoryProgramming: 0.3,
			CategoryFrameworks:  0.25,
			CategoryDatabases:   0.2,
			CategoryCloudDevOps: 0.15,
			CategorySoftSkills:  0.1,
		},
	},
	{
		ID:              "DEVOPS_ENGINEER",
		Title:           "Ingeniero DevOps",
		EssentialSkills: []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Git"},
		PreferredSkills: []string{"Terraform", "Ansible", "Jenkins", "Prometheus", "Linux", "Python"},
		KeyPhrases: []string{
			"automatización", "infraestructura como código", "integración continua",
			"despliegue continuo", "monitorización", "observabilidad",
		},
		SkillWeightByCategory: map[string]float64{
			CategoryCloudDevOps: 0.6,
			CategoryProgramming: 0.2,
			CategoryTools:       0.15,
			CategorySoftSkills:  0.05,
		},
	},
	{
		ID:              "DATA_SCIENTIST",
		Title:           "Científico de Datos",
		EssentialSkills: []string{"Python", "SQL", "R"},
		PreferredSkills: []string{"Machine Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy", "Estadística"},
		KeyPhrases: []string{
			"análisis de datos", "machine learning", "modelado predictivo",
			"visualización de datos", "minería de datos", "big data",
		},
		SkillWeightByCategory: map[string]float64{
			CategoryProgramming: 0.35,
			CategoryDatabases:   0.2,
			CategoryTools:       0.3,
			CategorySoftSkills:  0.15,
		},
	},
}

// Roles lists every role as {id, title} in catalog order.
func Roles() []RoleSummary {
	out := make([]RoleSummary, 0, len(jobRoles))
	for _, r := range jobRoles {
		out = append(out, RoleSummary{ID: r.ID, Title: r.Title})
	}
	return out
}

// Role looks up a role profile by id.
func Role(id string) (JobRoleProfile, bool) {
	for _, r := range jobRoles {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return JobRoleProfile{}, false
}

func (p JobRoleProfile) clone() JobRoleProfile {
	out := p
	out.EssentialSkills = append([]string(nil), p.EssentialSkills...)
	out.PreferredSkills = append([]string(nil), p.PreferredSkills...)
	out.KeyPhrases = append([]string(nil), p.KeyPhrases...)
	out.SkillWeightByCategory = make(map[string]float64, len(p.SkillWeightByCategory))
	for k, v := range p.SkillWeightByCategory {
		out.SkillWeightByCategory[k] = v
	}
	return out
}
