package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcv/internal/types"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	rec := Normalize(types.CVRecord{}, "")

	assert.Equal(t, DefaultPhotoPath, rec.PersonalInfo.PhotoPath)
	assert.Equal(t, types.LangFrench, rec.Language)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Skills)
}

func TestNormalize_CustomPhotoPath(t *testing.T) {
	rec := Normalize(types.CVRecord{}, "assets/custom.png")
	assert.Equal(t, "assets/custom.png", rec.PersonalInfo.PhotoPath)

	// A record that already carries a photo keeps it.
	withPhoto := types.CVRecord{PersonalInfo: types.PersonalInfo{PhotoPath: "mine.jpg"}}
	assert.Equal(t, "mine.jpg", Normalize(withPhoto, "assets/custom.png").PersonalInfo.PhotoPath)
}

func TestNormalize_UnknownLanguageFallsBackToFrench(t *testing.T) {
	rec := Normalize(types.CVRecord{Language: "de"}, "")
	assert.Equal(t, types.LangFrench, rec.Language)

	rec = Normalize(types.CVRecord{Language: types.LangEnglish}, "")
	assert.Equal(t, types.LangEnglish, rec.Language)
}

func TestNormalize_Idempotent(t *testing.T) {
	input := types.CVRecord{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace"},
		Education:    []types.EducationEntry{{Degree: "BSc"}},
		Skills:       []string{"Go"},
		Language:     types.LangEnglish,
	}

	once := Normalize(input, "")
	twice := Normalize(once, "")
	assert.Equal(t, once, twice)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	input := types.CVRecord{Education: []types.EducationEntry{{Degree: "BSc"}}}
	_ = Normalize(input, "")
	assert.Nil(t, input.Education[0].Details)
}

func TestFilter_DropsBlankSkills(t *testing.T) {
	rec := Filter(types.CVRecord{Skills: []string{"Go", "  ", "", "SQL"}})
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
}

func TestFilter_DropsEntriesWithoutTitleFields(t *testing.T) {
	rec := Filter(types.CVRecord{
		Education: []types.EducationEntry{
			{Degree: "", School: ""},
			{Degree: "BSc", School: ""},
		},
	})

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "BSc", rec.Education[0].Degree)
}

func TestFilter_DropsBlankDetails(t *testing.T) {
	rec := Filter(types.CVRecord{
		Experience: []types.ExperienceEntry{
			{Role: "Engineer", Details: []string{"Built things", "  ", ""}},
		},
	})

	require.Len(t, rec.Experience, 1)
	assert.Equal(t, []string{"Built things"}, rec.Experience[0].Details)
}

func TestFilter_PreservesOrder(t *testing.T) {
	rec := Filter(types.CVRecord{
		Experience: []types.ExperienceEntry{
			{Role: "A"}, {Role: "B"}, {Role: "C"},
		},
	})

	require.Len(t, rec.Experience, 3)
	assert.Equal(t, "A", rec.Experience[0].Role)
	assert.Equal(t, "B", rec.Experience[1].Role)
	assert.Equal(t, "C", rec.Experience[2].Role)
}

func TestFilter_Idempotent(t *testing.T) {
	input := types.CVRecord{
		Skills: []string{"Go", " "},
		Education: []types.EducationEntry{
			{Degree: "BSc", Details: []string{"", "Maths"}},
			{},
		},
	}

	once := Filter(input)
	twice := Filter(once)
	assert.Equal(t, once, twice)
}
