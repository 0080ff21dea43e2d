package document

// Normalize заполняет отсутствующие секции пустыми значениями.
// Идемпотентна: Normalize(Normalize(d)) == Normalize(d).
// Порядок элементов внутри секций не меняется.
func Normalize(d Data) Data {
	if d.Experience == nil {
		d.Experience = []ExperienceItem{}
	}
	if d.Education == nil {
		d.Education = []EducationItem{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	return d
}
