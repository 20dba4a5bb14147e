package models

// Normalize returns a copy of cv that satisfies the record invariants: a
// contact block always exists, skill levels are canonical, required lists are
// non-nil and an empty optional activity list is absent.
func Normalize(cv *CV) *CV {
	if cv == nil {
		cv = &CV{}
	}
	next := *cv
	if next.ContactInfo == nil {
		next.ContactInfo = NewContactInfo("", nil)
	}
	next.Skills = NormalizeSkills(next.Skills)
	next.Experiences = NormalizeExperiences(next.Experiences)
	next.Education = NormalizeEducation(next.Education)
	if next.Certificates == nil {
		next.Certificates = []Certificate{}
	}
	if next.Courses == nil {
		next.Courses = []Course{}
	}
	return &next
}

// NormalizeSkills coerces every level to a canonical value. The input is
// returned as is when every level is already canonical.
func NormalizeSkills(skills []Skill) []Skill {
	if skills == nil {
		return []Skill{}
	}
	valid := true
	for _, s := range skills {
		if !s.Level.Valid() {
			valid = false
			break
		}
	}
	if valid {
		return skills
	}
	out := make([]Skill, len(skills))
	for i, s := range skills {
		s.Level = ParseSkillLevel(string(s.Level))
		out[i] = s
	}
	return out
}

// NormalizeExperiences replaces nil bullet and technology lists with empty ones.
func NormalizeExperiences(exps []Experience) []Experience {
	out := make([]Experience, len(exps))
	for i, e := range exps {
		if e.Responsibilities == nil {
			e.Responsibilities = []string{}
		}
		if e.Technologies == nil {
			e.Technologies = []string{}
		}
		out[i] = e
	}
	return out
}

// NormalizeEducation drops empty activity lists.
func NormalizeEducation(edu []Education) []Education {
	out := make([]Education, len(edu))
	for i, e := range edu {
		if len(e.Activities) == 0 {
			e.Activities = nil
		}
		out[i] = e
	}
	return out
}
