package resume

// NormalizedResume is the canonical resume record. Every field is populated;
// slices are never nil.
type NormalizedResume struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	LinkedIn   string       `json:"linkedin"`
	GitHub     string       `json:"github"`
	Summary    string       `json:"summary"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`
}

// Experience is a single work history entry.
type Experience struct {
	Position  string   `json:"position"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// Education is a single education entry.
type Education struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduation_date"`
}

// Project is a single project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Empty returns an all-default record.
func Empty() NormalizedResume {
	return NormalizedResume{
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
	}
}

// Input mirrors the loosely-typed payload the editor submits.
type Input struct {
	PersonalInfo PersonalInfo   `json:"personalInfo"`
	Sections     []InputSection `json:"sections"`
}

// PersonalInfo is the identity block of Input.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// InputSection is one tagged section of Input. Content is used by summary,
// Items by every other section kind.
type InputSection struct {
	ID      string `json:"id"`
	Content string `json:"content,omitempty"`
	Items   []any  `json:"items,omitempty"`
}

// ToInput re-encodes r in the editor payload shape. Normalizing the result
// yields r again.
func (r NormalizedResume) ToInput() Input {
	in := Input{
		PersonalInfo: PersonalInfo{
			Name:     r.Name,
			Email:    r.Email,
			Phone:    r.Phone,
			Location: r.Location,
			LinkedIn: r.LinkedIn,
			GitHub:   r.GitHub,
		},
		Sections: []InputSection{{ID: SectionSummary, Content: r.Summary}},
	}

	skills := make([]any, 0, len(r.Skills))
	for _, s := range r.Skills {
		skills = append(skills, s)
	}
	in.Sections = append(in.Sections, InputSection{ID: SectionSkills, Items: skills})

	exp := make([]any, 0, len(r.Experience))
	for _, e := range r.Experience {
		exp = append(exp, map[string]any{
			"position":  e.Position,
			"company":   e.Company,
			"location":  e.Location,
			"startDate": e.StartDate,
			"endDate":   e.EndDate,
			"bullets":   e.Bullets,
		})
	}
	in.Sections = append(in.Sections, InputSection{ID: SectionExperience, Items: exp})

	edu := make([]any, 0, len(r.Education))
	for _, e := range r.Education {
		edu = append(edu, map[string]any{
			"degree":         e.Degree,
			"school":         e.School,
			"field":          e.Field,
			"graduationDate": e.GraduationDate,
		})
	}
	in.Sections = append(in.Sections, InputSection{ID: SectionEducation, Items: edu})

	projects := make([]any, 0, len(r.Projects))
	for _, p := range r.Projects {
		projects = append(projects, map[string]any{
			"title":        p.Title,
			"description":  p.Description,
			"technologies": p.Technologies,
		})
	}
	in.Sections = append(in.Sections, InputSection{ID: SectionProjects, Items: projects})

	return in
}
