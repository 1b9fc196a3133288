package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/darkr4m/actually-star-k9/core/database"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/modules/clients/entity"

	"github.com/google/uuid"
)

type ClientRepository interface {
	CreateClient(ctx context.Context, client *entity.Client) (*entity.Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*entity.Client, error)
	ListClients(ctx context.Context, qp *params.QueryParams) ([]*entity.Client, int, error)
	UpdateClient(ctx context.Context, client *entity.Client) (*entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error

	CreateAddress(ctx context.Context, address *entity.Address) (*entity.Address, error)
	ListAddresses(ctx context.Context, clientID uuid.UUID) ([]*entity.Address, error)
	DeleteAddress(ctx context.Context, clientID, addressID uuid.UUID) error
}

type clientRepository struct {
	db database.IDatabase
}

func NewClientRepository(db database.IDatabase) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, first_name, last_name, email, phone_number,
	emergency_contact_name, emergency_contact_phone, created_at, updated_at`

func (r *clientRepository) CreateClient(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := fmt.Sprintf(`
		INSERT INTO clients
			(first_name, last_name, email, phone_number, emergency_contact_name, emergency_contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, clientColumns)

	var created entity.Client
	err := r.db.GetContext(ctx, &created, query,
		client.FirstName, client.LastName, client.Email, client.PhoneNumber,
		client.EmergencyContactName, client.EmergencyContactPhone)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *clientRepository) GetClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1`, clientColumns)

	var client entity.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetClientByEmail(ctx context.Context, email string) (*entity.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE email = $1`, clientColumns)

	var client entity.Client
	err := r.db.GetContext(ctx, &client, query, email)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients returns one page plus the unpaged total. Search matches name
// and email, case insensitively.
func (r *clientRepository) ListClients(ctx context.Context, qp *params.QueryParams) ([]*entity.Client, int, error) {
	where := ""
	args := []any{}
	if qp.Search != "" {
		where = `WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+qp.Search+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM clients %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM clients %s
		ORDER BY last_name, first_name
		LIMIT $%d OFFSET $%d`, clientColumns, where, len(args)+1, len(args)+2)
	args = append(args, qp.PageSize, (qp.PageNumber-1)*qp.PageSize)

	clients := []*entity.Client{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := fmt.Sprintf(`
		UPDATE clients SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone_number = $5,
			emergency_contact_name = $6,
			emergency_contact_phone = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, clientColumns)

	var updated entity.Client
	err := r.db.GetContext(ctx, &updated, query,
		client.ID, client.FirstName, client.LastName, client.Email,
		client.PhoneNumber, client.EmergencyContactName, client.EmergencyContactPhone)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
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

const addressColumns = `id, client_id, address_type, street_address_1, street_address_2,
	city, state_province, postal_code, country, created_at, updated_at`

func (r *clientRepository) CreateAddress(ctx context.Context, address *entity.Address) (*entity.Address, error) {
	query := fmt.Sprintf(`
		INSERT INTO addresses
			(client_id, address_type, street_address_1, street_address_2, city, state_province, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, addressColumns)

	var created entity.Address
	err := r.db.GetContext(ctx, &created, query,
		address.ClientID, address.AddressType, address.StreetAddress1, address.StreetAddress2,
		address.City, address.StateProvince, address.PostalCode, address.Country)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *clientRepository) ListAddresses(ctx context.Context, clientID uuid.UUID) ([]*entity.Address, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM addresses
		WHERE client_id = $1
		ORDER BY created_at`, addressColumns)

	addresses := []*entity.Address{}
	if err := r.db.SelectContext(ctx, &addresses, query, clientID); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *clientRepository) DeleteAddress(ctx context.Context, clientID, addressID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND client_id = $2`, addressID, clientID)
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
