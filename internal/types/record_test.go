package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone_DeepCopiesSlices(t *testing.T) {
	original := CVRecord{
		PersonalInfo: PersonalInfo{Name: "Ousmane SY"},
		Education: []EducationEntry{
			{Period: "2015 - 2018", Degree: "BSc", School: "ENSAE", Details: []string{"Statistics"}},
		},
		Experience: []ExperienceEntry{
			{Period: "2019 - 2023", Role: "Data Engineer", Company: "Acme", Details: []string{"Built pipelines"}},
		},
		Skills:   []string{"Python", "SQL"},
		Language: LangFrench,
	}

	clone := original.Clone()
	clone.PersonalInfo.Name = "changed"
	clone.Education[0].Details[0] = "changed"
	clone.Experience[0].Details[0] = "changed"
	clone.Skills[0] = "changed"

	assert.Equal(t, "Ousmane SY", original.PersonalInfo.Name)
	assert.Equal(t, "Statistics", original.Education[0].Details[0])
	assert.Equal(t, "Built pipelines", original.Experience[0].Details[0])
	assert.Equal(t, "Python", original.Skills[0])
}

func TestClone_EmptyRecord(t *testing.T) {
	clone := CVRecord{}.Clone()
	assert.NotNil(t, clone.Education)
	assert.NotNil(t, clone.Experience)
	assert.NotNil(t, clone.Skills)
}

func TestEducationEntry_Renderable(t *testing.T) {
	assert.False(t, EducationEntry{}.Renderable())
	assert.False(t, EducationEntry{Degree: "  ", School: "\t"}.Renderable())
	assert.True(t, EducationEntry{Degree: "BSc"}.Renderable())
	assert.True(t, EducationEntry{School: "ENSAE"}.Renderable())
}

func TestExperienceEntry_Renderable(t *testing.T) {
	assert.False(t, ExperienceEntry{Period: "2020"}.Renderable())
	assert.True(t, ExperienceEntry{Role: "Engineer"}.Renderable())
	assert.True(t, ExperienceEntry{Company: "Acme"}.Renderable())
}
