package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/modules/dogs/entity"

	"github.com/google/uuid"
)

type DogRepository interface {
	CreateDog(ctx context.Context, dog *entity.Dog) (*entity.Dog, error)
	GetDogByID(ctx context.Context, id uuid.UUID) (*entity.Dog, error)
	ListDogs(ctx context.Context, qp *params.QueryParams) ([]*entity.Dog, int, error)
	UpdateDog(ctx context.Context, dog *entity.Dog) (*entity.Dog, error)
	DeleteDog(ctx context.Context, id uuid.UUID) error
	SetPhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error
}

type dogRepository struct {
	db database.IDatabase
}

func NewDogRepository(db database.IDatabase) DogRepository {
	return &dogRepository{db: db}
}

const dogColumns = `id, client_id, name, breed, date_of_birth, sex, is_altered,
	color_markings, weight_kg, status, photo_url, behavioral_notes, training_goals,
	previous_training, vaccination_rabies, vaccination_dhpp, vaccination_bordetella,
	parasites, veterinarian_name, veterinarian_phone, medical_notes, created_at, updated_at`

func (r *dogRepository) CreateDog(ctx context.Context, dog *entity.Dog) (*entity.Dog, error) {
	query := fmt.Sprintf(`
		INSERT INTO dogs
			(client_id, name, breed, date_of_birth, sex, is_altered, color_markings,
			 weight_kg, status, behavioral_notes, training_goals, previous_training,
			 vaccination_rabies, vaccination_dhpp, vaccination_bordetella, parasites,
			 veterinarian_name, veterinarian_phone, medical_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING %s`, dogColumns)

	var created entity.Dog
	err := r.db.GetContext(ctx, &created, query,
		dog.ClientID, dog.Name, dog.Breed, dog.DateOfBirth, dog.Sex, dog.IsAltered,
		dog.ColorMarkings, dog.WeightKg, dog.Status, dog.BehavioralNotes,
		dog.TrainingGoals, dog.PreviousTraining, dog.VaccinationRabies,
		dog.VaccinationDHPP, dog.VaccinationBordetella, dog.Parasites,
		dog.VeterinarianName, dog.VeterinarianPhone, dog.MedicalNotes)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *dogRepository) GetDogByID(ctx context.Context, id uuid.UUID) (*entity.Dog, error) {
	query := fmt.Sprintf(`SELECT %s FROM dogs WHERE id = $1`, dogColumns)

	var dog entity.Dog
	err := r.db.GetContext(ctx, &dog, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) ListDogs(ctx context.Context, qp *params.QueryParams) ([]*entity.Dog, int, error) {
	where := ""
	args := []any{}
	if qp.Search != "" {
		where = `WHERE name ILIKE $1 OR breed ILIKE $1`
		args = append(args, "%"+qp.Search+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM dogs %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM dogs %s
		ORDER BY name
		LIMIT $%d OFFSET $%d`, dogColumns, where, len(args)+1, len(args)+2)
	args = append(args, qp.PageSize, (qp.PageNumber-1)*qp.PageSize)

	dogs := []*entity.Dog{}
	if err := r.db.SelectContext(ctx, &dogs, query, args...); err != nil {
		return nil, 0, err
	}
	return dogs, total, nil
}

func (r *dogRepository) UpdateDog(ctx context.Context, dog *entity.Dog) (*entity.Dog, error) {
	query := fmt.Sprintf(`
		UPDATE dogs SET
			client_id = $2,
			name = $3,
			breed = $4,
			date_of_birth = $5,
			sex = $6,
			is_altered = $7,
			color_markings = $8,
			weight_kg = $9,
			status = $10,
			behavioral_notes = $11,
			training_goals = $12,
			previous_training = $13,
			vaccination_rabies = $14,
			vaccination_dhpp = $15,
			vaccination_bordetella = $16,
			parasites = $17,
			veterinarian_name = $18,
			veterinarian_phone = $19,
			medical_notes = $20,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, dogColumns)

	var updated entity.Dog
	err := r.db.GetContext(ctx, &updated, query,
		dog.ID, dog.ClientID, dog.Name, dog.Breed, dog.DateOfBirth, dog.Sex,
		dog.IsAltered, dog.ColorMarkings, dog.WeightKg, dog.Status,
		dog.BehavioralNotes, dog.TrainingGoals, dog.PreviousTraining,
		dog.VaccinationRabies, dog.VaccinationDHPP, dog.VaccinationBordetella,
		dog.Parasites, dog.VeterinarianName, dog.VeterinarianPhone, dog.MedicalNotes)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *dogRepository) DeleteDog(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *dogRepository) SetPhotoURL(ctx context.Context, id uuid.UUID, photoURL string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dogs SET photo_url = $2, updated_at = NOW() WHERE id = $1`, id, photoURL)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
