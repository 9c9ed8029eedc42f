package models

import (
	"regexp"
	"slices"
	"strings"

	dErrors "museum/pkg/domain-errors"
	"museum/pkg/email"
	strutil "museum/pkg/platform/strings"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneSeparator = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

	Genders            = []string{"male", "female", "other", "prefer not to say"}
	EmploymentStatuses = []string{"employed", "unemployed", "student", "self-employed", "freelancer"}
	TrainingModes      = []string{"online", "offline", "hybrid"}
)

// RegisterRequest is the body of training register and update.
type RegisterRequest struct {
	FirstName                  string   `json:"first_name"`
	LastName                   string   `json:"last_name"`
	Email                      string   `json:"email"`
	PhoneNumber                string   `json:"phone_number"`
	DateOfBirth                Date     `json:"date_of_birth"`
	Gender                     string   `json:"gender"`
	CountryOfOrigin            string   `json:"country_of_origin"`
	StateOfOrigin              string   `json:"state_of_origin"`
	LocalGovernmentArea        string   `json:"local_government_area"`
	Address                    string   `json:"address"`
	HighestLevelOfEducation    string   `json:"highest_level_of_education"`
	FieldOfStudy               string   `json:"field_of_study"`
	InstitutionName            string   `json:"institution_name"`
	GraduationYear             int      `json:"graduation_year"`
	EmploymentStatus           string   `json:"employment_status"`
	YearsOfExperience          string   `json:"years_of_experience"`
	JobTitle                   string   `json:"job_title"`
	CompanyName                string   `json:"company_name"`
	PreferredTrainingTrack     string   `json:"preferred_training_track"`
	TrainingMode               string   `json:"training_mode"`
	PreferredStartDate         Date     `json:"preferred_start_date"`
	TrainingDurationPreference string   `json:"training_duration_preference"`
	ProgrammingLanguages       []string `json:"programming_languages"`
	FrameworksAndTechnologies  []string `json:"frameworks_and_technologies"`
}

// Validate normalizes the request and checks everything that does not depend
// on the current date. Age and graduation year are checked by the service.
func (r *RegisterRequest) Validate() error {
	strutil.TrimFields(r)
	r.Email = email.Normalize(r.Email)
	r.Gender = strings.ToLower(r.Gender)
	r.EmploymentStatus = strings.ToLower(r.EmploymentStatus)
	r.TrainingMode = strings.ToLower(r.TrainingMode)
	r.ProgrammingLanguages = strutil.DedupeFold(r.ProgrammingLanguages)
	r.FrameworksAndTechnologies = strutil.DedupeFold(r.FrameworksAndTechnologies)

	if missing := r.missingFields(); len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation,
			"The following required fields are missing: "+strings.Join(missing, ", "))
	}
	if !email.IsValid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid email address")
	}
	if !ValidPhone(r.PhoneNumber) {
		return dErrors.New(dErrors.CodeValidation, "Please provide a valid phone number")
	}
	if r.Gender != "" && !slices.Contains(Genders, r.Gender) {
		return dErrors.New(dErrors.CodeValidation, "Invalid gender selection")
	}
	if !slices.Contains(EmploymentStatuses, r.EmploymentStatus) {
		return dErrors.New(dErrors.CodeValidation, "Invalid employment status")
	}
	if !slices.Contains(TrainingModes, r.TrainingMode) {
		return dErrors.New(dErrors.CodeValidation, "Invalid training mode. Choose from: online, offline, hybrid")
	}
	return nil
}

func (r *RegisterRequest) missingFields() []string {
	required := []struct {
		field string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"phone_number", r.PhoneNumber},
		{"country_of_origin", r.CountryOfOrigin},
		{"state_of_origin", r.StateOfOrigin},
		{"local_government_area", r.LocalGovernmentArea},
		{"address", r.Address},
		{"highest_level_of_education", r.HighestLevelOfEducation},
		{"employment_status", r.EmploymentStatus},
		{"preferred_training_track", r.PreferredTrainingTrack},
		{"training_mode", r.TrainingMode},
	}
	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, strutil.Humanize(f.field))
		}
	}
	return missing
}

// Registration builds the row to store. Blank optional fields become NULL.
func (r *RegisterRequest) Registration() *Registration {
	reg := &Registration{
		FirstName:                  r.FirstName,
		LastName:                   r.LastName,
		Email:                      r.Email,
		PhoneNumber:                r.PhoneNumber,
		Gender:                     optional(r.Gender),
		CountryOfOrigin:            r.CountryOfOrigin,
		StateOfOrigin:              r.StateOfOrigin,
		LocalGovernmentArea:        r.LocalGovernmentArea,
		Address:                    r.Address,
		HighestLevelOfEducation:    r.HighestLevelOfEducation,
		FieldOfStudy:               optional(r.FieldOfStudy),
		InstitutionName:            optional(r.InstitutionName),
		EmploymentStatus:           r.EmploymentStatus,
		YearsOfExperience:          optional(r.YearsOfExperience),
		JobTitle:                   optional(r.JobTitle),
		CompanyName:                optional(r.CompanyName),
		PreferredTrainingTrack:     r.PreferredTrainingTrack,
		TrainingMode:               r.TrainingMode,
		TrainingDurationPreference: optional(r.TrainingDurationPreference),
		ProgrammingLanguages:       r.ProgrammingLanguages,
		FrameworksAndTechnologies:  r.FrameworksAndTechnologies,
	}
	if !r.DateOfBirth.IsZero() {
		dob := r.DateOfBirth
		reg.DateOfBirth = &dob
	}
	if !r.PreferredStartDate.IsZero() {
		start := r.PreferredStartDate
		reg.PreferredStartDate = &start
	}
	if r.GraduationYear != 0 {
		year := r.GraduationYear
		reg.GraduationYear = &year
	}
	return reg
}

// CheckRequest is the body of POST /api/training/check.
type CheckRequest struct {
	Email string `json:"email"`
}

func (r *CheckRequest) Validate() error {
	r.Email = email.Normalize(r.Email)
	if r.Email == "" || !email.IsValid(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "Valid email is required")
	}
	return nil
}

// ValidPhone checks an international-style number after dropping spaces,
// dashes and parentheses.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phoneSeparator.Replace(phone))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
