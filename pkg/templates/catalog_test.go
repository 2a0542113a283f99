package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/cvbuilder/pkg/models"
)

func TestListOrder(t *testing.T) {
	assert.Equal(t, []models.TemplateID{
		models.TemplateClassic,
		models.TemplateModern,
		models.TemplateMinimalist,
		models.TemplateElite,
	}, List())
}

func TestGetFallsBackToClassic(t *testing.T) {
	assert.Equal(t, models.TemplateClassic, Get("does-not-exist").ID)
	assert.Equal(t, models.TemplateElite, Get(models.TemplateElite).ID)
	assert.True(t, Get(models.TemplateClassic).SkillLevels)
	assert.True(t, Get(models.TemplateElite).SkillGroups)
}

func TestDefaultContent(t *testing.T) {
	for _, id := range List() {
		t.Run(string(id), func(t *testing.T) {
			doc := DefaultContent(id)
			assert.Equal(t, id, doc.Template)
			assert.Equal(t, "Your Full Name", doc.Identity.Name)
			assert.Equal(t, "Your Professional Title", doc.Identity.Title)
			assert.Contains(t, doc.Identity.Email, "@")
			assert.NotEmpty(t, doc.Summary)
			require.NotEmpty(t, doc.Experience)
			require.NotEmpty(t, doc.Education)
			require.NotEmpty(t, doc.Skills)
			assert.Equal(t, models.DefaultPresentation(), doc.Presentation)

			for _, s := range doc.Skills {
				assert.Equal(t, Get(id).SkillLevels, s.Rated, "skill %q rated flag", s.Name)
			}
		})
	}
}

func TestDefaultContentFreshIDs(t *testing.T) {
	a := DefaultContent(models.TemplateClassic)
	b := DefaultContent(models.TemplateClassic)

	seen := map[string]bool{}
	for _, e := range append(a.Experience, a.Education...) {
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID], "duplicate entry id %s", e.ID)
		seen[e.ID] = true
	}
	assert.NotEqual(t, a.Experience[0].ID, b.Experience[0].ID)
}

func TestNewEntry(t *testing.T) {
	exp := NewEntry(models.TemplateClassic, models.SectionExperience)
	assert.Equal(t, "Job Title", exp.Title)
	assert.Equal(t, "Year - Year", exp.DateRange)
	assert.NotEmpty(t, exp.ID)

	edu := NewEntry(models.TemplateModern, models.SectionEducation)
	assert.Equal(t, "Degree", edu.Title)
	assert.Equal(t, "Institution Name", edu.Subtitle)
	assert.Empty(t, edu.Description)

	eliteEdu := NewEntry(models.TemplateElite, models.SectionEducation)
	assert.Equal(t, "Honors/Awards", eliteEdu.Description)
}

func TestNewSkill(t *testing.T) {
	classic := NewSkill(models.TemplateClassic)
	assert.Equal(t, "New Skill", classic.Name)
	assert.True(t, classic.Rated)
	assert.Equal(t, 70, classic.Level)

	modern := NewSkill(models.TemplateModern)
	assert.False(t, modern.Rated)

	elite := NewSkill(models.TemplateElite)
	assert.Equal(t, "Technical Skills", elite.Group)
}
