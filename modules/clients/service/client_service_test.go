package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"
	"time"

	"github.com/darkr4m/actually-star-k9/core/errors"
	"github.com/darkr4m/actually-star-k9/core/params"
	"github.com/darkr4m/actually-star-k9/modules/clients/dto"
	"github.com/darkr4m/actually-star-k9/modules/clients/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients   map[uuid.UUID]*entity.Client
	addresses map[uuid.UUID]*entity.Address
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		clients:   make(map[uuid.UUID]*entity.Client),
		addresses: make(map[uuid.UUID]*entity.Address),
	}
}

func (f *fakeClientRepo) CreateClient(_ context.Context, client *entity.Client) (*entity.Client, error) {
	created := *client
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.clients[created.ID] = &created
	return &created, nil
}

func (f *fakeClientRepo) GetClientByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	return f.clients[id], nil
}

func (f *fakeClientRepo) GetClientByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) ListClients(_ context.Context, _ *params.QueryParams) ([]*entity.Client, int, error) {
	out := make([]*entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeClientRepo) UpdateClient(_ context.Context, client *entity.Client) (*entity.Client, error) {
	if _, ok := f.clients[client.ID]; !ok {
		return nil, nil
	}
	updated := *client
	f.clients[client.ID] = &updated
	return &updated, nil
}

func (f *fakeClientRepo) DeleteClient(_ context.Context, id uuid.UUID) error {
	if _, ok := f.clients[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) CreateAddress(_ context.Context, address *entity.Address) (*entity.Address, error) {
	created := *address
	created.ID = uuid.New()
	f.addresses[created.ID] = &created
	return &created, nil
}

func (f *fakeClientRepo) ListAddresses(_ context.Context, clientID uuid.UUID) ([]*entity.Address, error) {
	out := []*entity.Address{}
	for _, a := range f.addresses {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) DeleteAddress(_ context.Context, clientID, addressID uuid.UUID) error {
	a, ok := f.addresses[addressID]
	if !ok || a.ClientID != clientID {
		return sql.ErrNoRows
	}
	delete(f.addresses, addressID)
	return nil
}

func appErrCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func createRequest() *dto.CreateClientRequest {
	return &dto.CreateClientRequest{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "Dana@Example.com",
	}
}

func TestCreateClient(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	client, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", client.Email)
	assert.NotEqual(t, uuid.Nil, client.ID)
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	_, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.CreateClient(context.Background(), createRequest())
	assert.Equal(t, errors.ErrAlreadyExists, appErrCode(t, err))
}

func TestGetClientWithAddresses(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo)

	client, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.AddAddress(context.Background(), client.ID, &dto.AddressRequest{
		StreetAddress1: "123 Main St",
		City:           "Springfield",
	})
	require.NoError(t, err)

	loaded, err := svc.GetClient(context.Background(), client.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Addresses, 1)
	assert.Equal(t, entity.AddressTypePhysical, loaded.Addresses[0].AddressType)
	assert.Equal(t, "US", loaded.Addresses[0].Country)
}

func TestListClients(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	_, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)

	page, err := svc.ListClients(context.Background(), &params.QueryParams{PageNumber: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalItems)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 20, page.PageSize)
}

func TestGetClientNotFound(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	_, err := svc.GetClient(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrNotFound, appErrCode(t, err))
}

func TestUpdateClientPartial(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	client, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)

	phone := "555-0199"
	updated, err := svc.UpdateClient(context.Background(), client.ID, &dto.UpdateClientRequest{
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.PhoneNumber)
	assert.Equal(t, "Dana", updated.FirstName, "untouched fields keep their value")
}

func TestUpdateClientNotFound(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	_, err := svc.UpdateClient(context.Background(), uuid.New(), &dto.UpdateClientRequest{})
	assert.Equal(t, errors.ErrNotFound, appErrCode(t, err))
}

func TestDeleteClient(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	client, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClient(context.Background(), client.ID))

	err = svc.DeleteClient(context.Background(), client.ID)
	assert.Equal(t, errors.ErrNotFound, appErrCode(t, err))
}

func TestAddAddressUnknownClient(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	_, err := svc.AddAddress(context.Background(), uuid.New(), &dto.AddressRequest{
		StreetAddress1: "123 Main St",
		City:           "Springfield",
	})
	assert.Equal(t, errors.ErrNotFound, appErrCode(t, err))
}

func TestRemoveAddressScopedToClient(t *testing.T) {
	svc := NewClientService(newFakeClientRepo())

	client, err := svc.CreateClient(context.Background(), createRequest())
	require.NoError(t, err)
	address, err := svc.AddAddress(context.Background(), client.ID, &dto.AddressRequest{
		StreetAddress1: "123 Main St",
		City:           "Springfield",
	})
	require.NoError(t, err)

	// A different client id must not be able to delete the address.
	err = svc.RemoveAddress(context.Background(), uuid.New(), address.ID)
	assert.Equal(t, errors.ErrNotFound, appErrCode(t, err))

	require.NoError(t, svc.RemoveAddress(context.Background(), client.ID, address.ID))
}
