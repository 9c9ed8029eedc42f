// Package models holds training programme registrations.
package models

import "time"

// Registration is a row of the trainingform table.
type Registration struct {
	ID                         int64     `json:"id"`
	FirstName                  string    `json:"first_name"`
	LastName                   string    `json:"last_name"`
	Email                      string    `json:"email"`
	PhoneNumber                string    `json:"phone_number"`
	DateOfBirth                *Date     `json:"date_of_birth"`
	Gender                     *string   `json:"gender"`
	CountryOfOrigin            string    `json:"country_of_origin"`
	StateOfOrigin              string    `json:"state_of_origin"`
	LocalGovernmentArea        string    `json:"local_government_area"`
	Address                    string    `json:"address"`
	HighestLevelOfEducation    string    `json:"highest_level_of_education"`
	FieldOfStudy               *string   `json:"field_of_study"`
	InstitutionName            *string   `json:"institution_name"`
	GraduationYear             *int      `json:"graduation_year"`
	EmploymentStatus           string    `json:"employment_status"`
	YearsOfExperience          *string   `json:"years_of_experience"`
	JobTitle                   *string   `json:"job_title"`
	CompanyName                *string   `json:"company_name"`
	PreferredTrainingTrack     string    `json:"preferred_training_track"`
	TrainingMode               string    `json:"training_mode"`
	PreferredStartDate         *Date     `json:"preferred_start_date"`
	TrainingDurationPreference *string   `json:"training_duration_preference"`
	ProgrammingLanguages       []string  `json:"programming_languages"`
	FrameworksAndTechnologies  []string  `json:"frameworks_and_technologies"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

func (r *Registration) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Summary is the short view returned after registering.
type Summary struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	TrainingTrack    string    `json:"training_track"`
	TrainingMode     string    `json:"training_mode"`
	RegistrationDate time.Time `json:"registration_date"`
}

func (r *Registration) Summary() Summary {
	return Summary{
		ID:               r.ID,
		Name:             r.FullName(),
		Email:            r.Email,
		TrainingTrack:    r.PreferredTrainingTrack,
		TrainingMode:     r.TrainingMode,
		RegistrationDate: r.CreatedAt,
	}
}

// Stats aggregates registrations.
type Stats struct {
	TotalRegistrations     int64 `json:"total_registrations"`
	OnlineRegistrations    int64 `json:"online_registrations"`
	OfflineRegistrations   int64 `json:"offline_registrations"`
	HybridRegistrations    int64 `json:"hybrid_registrations"`
	EmployedParticipants   int64 `json:"employed_participants"`
	UnemployedParticipants int64 `json:"unemployed_participants"`
	StudentParticipants    int64 `json:"student_participants"`
}

type TrackCount struct {
	Track string `json:"preferred_training_track"`
	Count int64  `json:"count"`
}

// Existing is what the duplicate check reveals about a prior registration.
type Existing struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
}
