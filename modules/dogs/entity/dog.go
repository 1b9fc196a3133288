package entity

import (
	"time"

	"github.com/darkr4m/actually-star-k9/core/entity"

	"github.com/google/uuid"
)

type DogSex string

const (
	DogSexMale    DogSex = "MALE"
	DogSexFemale  DogSex = "FEMALE"
	DogSexUnknown DogSex = "UNKNOWN"
)

func (s DogSex) Valid() bool {
	switch s {
	case DogSexMale, DogSexFemale, DogSexUnknown:
		return true
	}
	return false
}

// DogStatus tracks where a dog sits in the training pipeline.
type DogStatus string

const (
	DogStatusProspective DogStatus = "PROSPECTIVE"
	DogStatusActive      DogStatus = "ACTIVE"
	DogStatusOnHold      DogStatus = "ON_HOLD"
	DogStatusGraduated   DogStatus = "GRADUATED"
	DogStatusInactive    DogStatus = "INACTIVE"
)

func (s DogStatus) Valid() bool {
	switch s {
	case DogStatusProspective, DogStatusActive, DogStatusOnHold, DogStatusGraduated, DogStatusInactive:
		return true
	}
	return false
}

// Dog is a training record. Medical and vaccination fields are optional and
// stay nil until the trainer records them.
type Dog struct {
	ClientID      *uuid.UUID `db:"client_id" json:"client_id"`
	Name          string     `db:"name" json:"name"`
	Breed         string     `db:"breed" json:"breed"`
	DateOfBirth   *time.Time `db:"date_of_birth" json:"date_of_birth"`
	Sex           DogSex     `db:"sex" json:"sex"`
	IsAltered     *bool      `db:"is_altered" json:"is_altered"`
	ColorMarkings string     `db:"color_markings" json:"color_markings"`
	WeightKg      *float64   `db:"weight_kg" json:"weight_kg"`
	Status        DogStatus  `db:"status" json:"status"`
	PhotoURL      string     `db:"photo_url" json:"photo_url"`

	BehavioralNotes  string `db:"behavioral_notes" json:"behavioral_notes"`
	TrainingGoals    string `db:"training_goals" json:"training_goals"`
	PreviousTraining string `db:"previous_training" json:"previous_training"`

	VaccinationRabies     *time.Time `db:"vaccination_rabies" json:"vaccination_rabies"`
	VaccinationDHPP       *time.Time `db:"vaccination_dhpp" json:"vaccination_dhpp"`
	VaccinationBordetella *time.Time `db:"vaccination_bordetella" json:"vaccination_bordetella"`
	Parasites             *time.Time `db:"parasites" json:"parasites"`

	VeterinarianName  string `db:"veterinarian_name" json:"veterinarian_name"`
	VeterinarianPhone string `db:"veterinarian_phone" json:"veterinarian_phone"`
	MedicalNotes      string `db:"medical_notes" json:"medical_notes"`
	entity.BaseEntity
}
