package document

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsMissingSections(t *testing.T) {
	d := Normalize(Data{})
	require.NotNil(t, d.Experience)
	require.NotNil(t, d.Education)
	require.NotNil(t, d.Skills)
	assert.Empty(t, d.Experience)
	assert.Empty(t, d.Education)
	assert.Empty(t, d.Skills)
}

func TestNormalizeIdempotent(t *testing.T) {
	in := Data{
		Personal: Personal{Name: "Анна Иванова", Summary: "Go-разработчик"},
		Experience: []ExperienceItem{
			{Title: "Engineer", Organization: "Acme", Start: "2021-02"},
			{Title: "Senior Engineer", Organization: "Acme", Start: "2023-06"},
		},
	}
	once := Normalize(in)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeKeepsOrder(t *testing.T) {
	in := Data{Skills: []Skill{{Name: "Go"}, {Name: "PostgreSQL"}, {Name: "Docker"}}}
	out := Normalize(in)
	require.Len(t, out.Skills, 3)
	assert.Equal(t, "Go", out.Skills[0].Name)
	assert.Equal(t, "PostgreSQL", out.Skills[1].Name)
	assert.Equal(t, "Docker", out.Skills[2].Name)
}

func TestNewDocumentHasAllSections(t *testing.T) {
	owner := uuid.New()
	d := New(owner)
	assert.Equal(t, owner, d.OwnerID)
	assert.NotEqual(t, uuid.Nil, d.ID)
	require.NotNil(t, d.Data.Experience)
	require.NotNil(t, d.Data.Education)
	require.NotNil(t, d.Data.Skills)
}
