package editor

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/artem13815/cvforge/pkg/document"
)

// Путь поля: "personal.name", "experience[0].title", "skills[2].level".
var rePath = regexp.MustCompile(`^([a-z]+)(?:\[(\d+)\])?\.([a-zA-Z]+)$`)

// setField заменяет ровно одно адресуемое поле в data.
// Индекс, равный длине секции, добавляет новую пустую запись
// (так формы редактора добавляют строки). Неизвестный путь — ошибка,
// data при этом не меняется.
func setField(data *document.Data, path, value string) error {
	m := rePath.FindStringSubmatch(path)
	if m == nil {
		return fmt.Errorf("malformed field path %q", path)
	}
	section, idxStr, field := m[1], m[2], m[3]

	if section == "personal" {
		if idxStr != "" {
			return fmt.Errorf("section %q is not indexed", section)
		}
		return setPersonalField(&data.Personal, field, value)
	}

	if idxStr == "" {
		return fmt.Errorf("section %q requires an index", section)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return fmt.Errorf("malformed index in path %q", path)
	}

	// Правка применяется к локальной копии записи и попадает в секцию
	// только после успешной проверки поля: ошибка не оставляет ни
	// фантомной записи, ни частичной правки.
	switch section {
	case "experience":
		if idx > len(data.Experience) {
			return fmt.Errorf("experience index %d out of range", idx)
		}
		var item document.ExperienceItem
		if idx < len(data.Experience) {
			item = data.Experience[idx]
		}
		if err := setExperienceField(&item, field, value); err != nil {
			return err
		}
		if idx == len(data.Experience) {
			data.Experience = append(data.Experience, item)
		} else {
			data.Experience[idx] = item
		}
		return nil
	case "education":
		if idx > len(data.Education) {
			return fmt.Errorf("education index %d out of range", idx)
		}
		var item document.EducationItem
		if idx < len(data.Education) {
			item = data.Education[idx]
		}
		if err := setEducationField(&item, field, value); err != nil {
			return err
		}
		if idx == len(data.Education) {
			data.Education = append(data.Education, item)
		} else {
			data.Education[idx] = item
		}
		return nil
	case "skills":
		if idx > len(data.Skills) {
			return fmt.Errorf("skills index %d out of range", idx)
		}
		var item document.Skill
		if idx < len(data.Skills) {
			item = data.Skills[idx]
		}
		if err := setSkillField(&item, field, value); err != nil {
			return err
		}
		if idx == len(data.Skills) {
			data.Skills = append(data.Skills, item)
		} else {
			data.Skills[idx] = item
		}
		return nil
	}
	return fmt.Errorf("unknown section %q", section)
}

func setPersonalField(p *document.Personal, field, value string) error {
	switch field {
	case "name":
		p.Name = value
	case "headline":
		p.Headline = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "summary":
		p.Summary = value
	default:
		return fmt.Errorf("unknown personal field %q", field)
	}
	return nil
}

func setExperienceField(e *document.ExperienceItem, field, value string) error {
	switch field {
	case "title":
		e.Title = value
	case "organization":
		e.Organization = value
	case "start":
		e.Start = value
	case "end":
		e.End = value
	case "description":
		e.Description = value
	default:
		return fmt.Errorf("unknown experience field %q", field)
	}
	return nil
}

func setEducationField(e *document.EducationItem, field, value string) error {
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "start":
		e.Start = value
	case "end":
		e.End = value
	default:
		return fmt.Errorf("unknown education field %q", field)
	}
	return nil
}

func setSkillField(s *document.Skill, field, value string) error {
	switch field {
	case "name":
		s.Name = value
	case "level":
		s.Level = value
	default:
		return fmt.Errorf("unknown skill field %q", field)
	}
	return nil
}
