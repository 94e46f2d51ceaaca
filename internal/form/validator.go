package form

import (
	"strings"

	"github.com/fadilmartias/skillsyncer/internal/dto"
)

const (
	FirstStep = 1
	LastStep  = 7
)

// Wizard steps. Work experience and projects carry no required fields.
const (
	StepPersonal = iota + 1
	StepEducation
	StepExperience
	StepSkills
	StepProjects
	StepAdditional
	StepDeclarations
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidateStep returns the required-field errors of one wizard step. It is
// pure: the same draft always yields the same set.
func ValidateStep(step int, d dto.ApplicationDraft) ValidationErrors {
	errs := ValidationErrors{}

	switch step {
	case StepPersonal:
		p := d.PersonalDetails
		if blank(p.FullName) {
			errs["personalDetails.fullName"] = "Full name is required"
		}
		if blank(p.DateOfBirth) {
			errs["personalDetails.dateOfBirth"] = "Date of birth is required"
		}
		if blank(p.Gender) {
			errs["personalDetails.gender"] = "Gender is required"
		}
		if blank(p.ContactNumber) {
			errs["personalDetails.contactNumber"] = "Contact number is required"
		}
		if blank(p.EmailAddress) {
			errs["personalDetails.emailAddress"] = "Email address is required"
		}

	case StepEducation:
		e := d.EducationDetails
		if blank(e.HighestQualification) {
			errs["educationDetails.highestQualification"] = "Highest qualification is required"
		}
		if blank(e.InstitutionName) {
			errs["educationDetails.institutionName"] = "Institution name is required"
		}
		if blank(e.YearOfGraduation) {
			errs["educationDetails.yearOfGraduation"] = "Year of graduation is required"
		}
		if blank(e.CgpaPercentage) {
			errs["educationDetails.cgpaPercentage"] = "CGPA/Percentage is required"
		}

	case StepSkills:
		if len(d.Skills.TechnicalSkills) == 0 {
			errs["skills.technicalSkills"] = "At least one technical skill is required"
		}

	case StepAdditional:
		if blank(d.AdditionalInfo.WhyJoinInternship) {
			errs["additionalInfo.whyJoinInternship"] = "Please explain why you want to join this internship"
		}
		if blank(d.AdditionalInfo.ResumeURL) {
			errs["additionalInfo.resumeUrl"] = "Resume is required"
		}

	case StepDeclarations:
		if !d.Declarations.InformationTruthful {
			errs["declarations.informationTruthful"] = "You must declare that the information is truthful"
		}
		if !d.Declarations.ConsentToShare {
			errs["declarations.consentToShare"] = "You must consent to share information with the company"
		}
	}

	return errs
}

// ValidateAll merges the errors of every step.
func ValidateAll(d dto.ApplicationDraft) ValidationErrors {
	errs := ValidationErrors{}
	for step := FirstStep; step <= LastStep; step++ {
		errs.merge(ValidateStep(step, d))
	}
	return errs
}
