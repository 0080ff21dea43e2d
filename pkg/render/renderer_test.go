package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvforge/pkg/document"
	"github.com/artem13815/cvforge/pkg/i18n"
)

func sampleData() document.Data {
	return document.Data{
		Personal: document.Personal{
			Name:     "Анна Иванова",
			Headline: "Go-разработчик",
			Email:    "anna@example.com",
			Summary:  "Пять лет опыта в бэкенде.",
		},
		Experience: []document.ExperienceItem{
			{Title: "Engineer", Organization: "Acme", Start: "2021-02", Description: "Backend services"},
		},
		Education: []document.EducationItem{
			{Institution: "МГУ", Degree: "специалист", Start: "2014", End: "2019"},
		},
		Skills: []document.Skill{{Name: "Go", Level: "advanced"}, {Name: "PostgreSQL"}},
	}
}

func TestRenderDeterministic(t *testing.T) {
	data := sampleData()
	for _, locale := range []string{"ru", "en"} {
		bundle := i18n.Resolve(locale)
		first, err := HTML(data, bundle)
		require.NoError(t, err)
		second, err := HTML(data, bundle)
		require.NoError(t, err)
		assert.Equal(t, first, second, "locale %s", locale)
	}
}

func TestRenderContainsLocalizedHeadings(t *testing.T) {
	data := sampleData()

	ru, err := HTML(data, i18n.Resolve("ru"))
	require.NoError(t, err)
	assert.Contains(t, ru, "Опыт работы")
	assert.Contains(t, ru, "Анна Иванова")

	en, err := HTML(data, i18n.Resolve("en"))
	require.NoError(t, err)
	assert.Contains(t, en, "Experience")
	assert.NotContains(t, en, "Опыт работы")
}

func TestRenderMissingSectionsDegradeGracefully(t *testing.T) {
	html, err := HTML(document.Data{Personal: document.Personal{Name: "Анна"}}, i18n.Resolve("en"))
	require.NoError(t, err)
	assert.NotContains(t, html, "Experience")
	assert.NotContains(t, html, "Education")
	assert.NotContains(t, html, "Skills")
	assert.Contains(t, html, "Анна")
}

func TestRenderEmptyDocument(t *testing.T) {
	html, err := HTML(document.Data{}, i18n.Resolve("ru"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, "<body>"))
}

func TestRenderEscapesUserContent(t *testing.T) {
	data := document.Data{Personal: document.Personal{Name: `<script>alert(1)</script>`}}
	html, err := HTML(data, i18n.Resolve("ru"))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderPresentLabelForOpenEndedRole(t *testing.T) {
	data := document.Data{
		Experience: []document.ExperienceItem{{Title: "Engineer", Start: "2023-01"}},
	}
	ru, err := HTML(data, i18n.Resolve("ru"))
	require.NoError(t, err)
	assert.Contains(t, ru, "по настоящее время")
}
