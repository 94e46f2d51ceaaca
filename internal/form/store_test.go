package form

import (
	"sync"
	"testing"

	"github.com/fadilmartias/skillsyncer/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_GuaranteesOneProjectSlot(t *testing.T) {
	s := NewStore(dto.ApplicationDraft{})
	d := s.Draft()

	require.Len(t, d.Projects, 1)
	assert.NotNil(t, d.Projects[0].TechnologiesUsed)
	assert.NotNil(t, d.Skills.TechnicalSkills)
	assert.NotNil(t, d.Skills.SoftSkills)
}

func TestStore_SetReplacesOnlyTheLeaf(t *testing.T) {
	s := NewStore(completeDraft())
	before := s.Draft()

	require.NoError(t, s.Set("personalDetails", "fullName", "Asha V."))
	after := s.Draft()

	assert.Equal(t, "Asha V.", after.PersonalDetails.FullName)
	assert.Equal(t, before.PersonalDetails.EmailAddress, after.PersonalDetails.EmailAddress)
	assert.Equal(t, before.EducationDetails, after.EducationDetails)
	// Earlier snapshots are untouched.
	assert.Equal(t, "Asha Verma", before.PersonalDetails.FullName)
}

func TestStore_SetClearsMatchingErrorOnly(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())
	s.SetErrors(ValidationErrors{
		"personalDetails.fullName":      "Full name is required",
		"personalDetails.contactNumber": "Contact number is required",
	})

	require.NoError(t, s.Set("personalDetails", "fullName", "Ravi"))

	assert.Equal(t, []string{"personalDetails.contactNumber"}, s.Errors().Keys())
}

func TestStore_SetNestedProjectAndNumericConversion(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())

	require.NoError(t, s.Set("projects.0", "projectName", "Tracker"))
	require.NoError(t, s.Set("workExperience", "totalYearsExperience", 2.0))

	d := s.Draft()
	assert.Equal(t, "Tracker", d.Projects[0].ProjectName)
	assert.Equal(t, 2, d.WorkExperience.TotalYearsExperience)
}

func TestStore_SetRejectsBadPaths(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())

	assert.ErrorIs(t, s.Set("personalDetails", "nickname", "x"), ErrUnknownPath)
	assert.ErrorIs(t, s.Set("projects.4", "role", "Lead"), ErrIndexRange)
	assert.ErrorIs(t, s.Set("declarations", "consentToShare", "yes"), ErrTypeMismatch)
}

func TestStore_SetCopiesSliceValues(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())
	skills := []string{"Go", "SQL"}

	require.NoError(t, s.Set("skills", "technicalSkills", skills))
	skills[0] = "Rust"

	assert.Equal(t, []string{"Go", "SQL"}, s.Draft().Skills.TechnicalSkills)
}

func TestStore_AppendTrimsAndIgnoresBlank(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())

	require.NoError(t, s.Append("skills.technicalSkills", "  Go "))
	require.NoError(t, s.Append("skills.technicalSkills", "   "))
	require.NoError(t, s.Append("skills.technicalSkills", "Go"))

	assert.Equal(t, []string{"Go", "Go"}, s.Draft().Skills.TechnicalSkills)
}

func TestStore_AppendClearsSequenceError(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())
	s.SetError("skills.technicalSkills", "At least one technical skill is required")

	require.NoError(t, s.Append("skills.technicalSkills", "Docker"))

	assert.True(t, s.Errors().Empty())
}

func TestStore_AppendProjectGetsEmptyTechnologies(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())

	require.NoError(t, s.Append("projects", dto.Project{ProjectName: "Second"}))
	require.NoError(t, s.Append("projects.1.technologiesUsed", "React"))

	d := s.Draft()
	require.Len(t, d.Projects, 2)
	assert.Equal(t, []string{"React"}, d.Projects[1].TechnologiesUsed)
	assert.Empty(t, d.Projects[0].TechnologiesUsed)
}

func TestStore_AppendRequiresSequence(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())
	assert.ErrorIs(t, s.Append("personalDetails.fullName", "x"), ErrNotSequence)
}

func TestStore_RemoveByIndex(t *testing.T) {
	d := dto.NewApplicationDraft()
	d.Skills.SoftSkills = []string{"Teamwork", "Writing", "Speaking"}
	s := NewStore(d)

	require.NoError(t, s.Remove("skills.softSkills", 1))
	assert.Equal(t, []string{"Teamwork", "Speaking"}, s.Draft().Skills.SoftSkills)

	assert.ErrorIs(t, s.Remove("skills.softSkills", 5), ErrIndexRange)
	assert.ErrorIs(t, s.Remove("skills.softSkills", -1), ErrIndexRange)
}

func TestStore_RemoveKeepsLastProject(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())

	assert.ErrorIs(t, s.Remove("projects", 0), ErrLastProject)
	assert.Len(t, s.Draft().Projects, 1)

	require.NoError(t, s.Append("projects", dto.Project{ProjectName: "Extra"}))
	require.NoError(t, s.Remove("projects", 0))

	d := s.Draft()
	require.Len(t, d.Projects, 1)
	assert.Equal(t, "Extra", d.Projects[0].ProjectName)
}

func TestStore_DraftIsIndependentCopy(t *testing.T) {
	s := NewStore(completeDraft())

	d := s.Draft()
	d.Skills.TechnicalSkills[0] = "COBOL"
	d.Projects[0].TechnologiesUsed = append(d.Projects[0].TechnologiesUsed, "Fortran")

	fresh := s.Draft()
	assert.Equal(t, "Go", fresh.Skills.TechnicalSkills[0])
	assert.Empty(t, fresh.Projects[0].TechnologiesUsed)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(completeDraft())
	s.SetError("x", "y")

	s.Reset()

	assert.Equal(t, dto.NewApplicationDraft(), s.Draft())
	assert.True(t, s.Errors().Empty())
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore(dto.NewApplicationDraft())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Append("skills.softSkills", "Focus")
		}()
	}
	wg.Wait()

	assert.Len(t, s.Draft().Skills.SoftSkills, 50)
}
