package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDogRequest struct {
	ClientID      *uuid.UUID `json:"client_id"`
	Name          string     `json:"name"`
	Breed         string     `json:"breed"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Sex           string     `json:"sex"`
	IsAltered     *bool      `json:"is_altered"`
	ColorMarkings string     `json:"color_markings"`
	WeightKg      *float64   `json:"weight_kg"`
	Status        string     `json:"status"`

	BehavioralNotes  string `json:"behavioral_notes"`
	TrainingGoals    string `json:"training_goals"`
	PreviousTraining string `json:"previous_training"`

	VaccinationRabies     *time.Time `json:"vaccination_rabies"`
	VaccinationDHPP       *time.Time `json:"vaccination_dhpp"`
	VaccinationBordetella *time.Time `json:"vaccination_bordetella"`
	Parasites             *time.Time `json:"parasites"`

	VeterinarianName  string `json:"veterinarian_name"`
	VeterinarianPhone string `json:"veterinarian_phone"`
	MedicalNotes      string `json:"medical_notes"`
}

type UpdateDogRequest struct {
	ClientID      *uuid.UUID `json:"client_id"`
	Name          *string    `json:"name"`
	Breed         *string    `json:"breed"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Sex           *string    `json:"sex"`
	IsAltered     *bool      `json:"is_altered"`
	ColorMarkings *string    `json:"color_markings"`
	WeightKg      *float64   `json:"weight_kg"`
	Status        *string    `json:"status"`

	BehavioralNotes  *string `json:"behavioral_notes"`
	TrainingGoals    *string `json:"training_goals"`
	PreviousTraining *string `json:"previous_training"`

	VaccinationRabies     *time.Time `json:"vaccination_rabies"`
	VaccinationDHPP       *time.Time `json:"vaccination_dhpp"`
	VaccinationBordetella *time.Time `json:"vaccination_bordetella"`
	Parasites             *time.Time `json:"parasites"`

	VeterinarianName  *string `json:"veterinarian_name"`
	VeterinarianPhone *string `json:"veterinarian_phone"`
	MedicalNotes      *string `json:"medical_notes"`
}

type PhotoUploadResponse struct {
	PhotoURL string `json:"photo_url"`
}
