package document

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo — минимальная in-memory реализация Repository для тестов.
type memRepo struct {
	docs      map[uuid.UUID]Document
	saveCalls int
}

func newMemRepo() *memRepo { return &memRepo{docs: map[uuid.UUID]Document{}} }

func (r *memRepo) Create(_ context.Context, d Document) error {
	r.docs[d.ID] = d
	return nil
}

func (r *memRepo) Get(_ context.Context, id uuid.UUID) (Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return d, nil
}

func (r *memRepo) Save(_ context.Context, id, ownerID uuid.UUID, data Data) (Document, error) {
	r.saveCalls++
	d, ok := r.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	if d.OwnerID != ownerID {
		return Document{}, ErrForbidden
	}
	d.Data = Normalize(data)
	r.docs[id] = d
	return d, nil
}

func (r *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]Document, error) {
	var res []Document
	for _, d := range r.docs {
		if d.OwnerID == ownerID {
			res = append(res, d)
		}
	}
	return res, nil
}

func (r *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	d, ok := r.docs[id]
	if !ok || d.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func TestCreateBlankThenLoadKeepsEmptySections(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner)
	require.NoError(t, err)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Data.Experience)
	require.NotNil(t, loaded.Data.Education)
	require.NotNil(t, loaded.Data.Skills)
	assert.Empty(t, loaded.Data.Experience)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner)
	require.NoError(t, err)

	payload := Data{
		Personal:   Personal{Name: "Анна Иванова"},
		Experience: []ExperienceItem{{Title: "Engineer", Organization: "Acme"}},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	saved, err := svc.Save(context.Background(), created.ID, owner, raw)
	require.NoError(t, err)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, Normalize(payload), loaded.Data)
	assert.Equal(t, saved.Data, loaded.Data)
}

func TestSaveByWrongOwnerLeavesDataUnchanged(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner)
	require.NoError(t, err)

	raw, _ := json.Marshal(Data{Personal: Personal{Name: "intruder"}})
	_, err = svc.Save(context.Background(), created.ID, uuid.New(), raw)
	require.ErrorIs(t, err, ErrForbidden)

	loaded, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Data.Personal.Name)
}

func TestSaveInvalidPayloadRejectedBeforeWrite(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner)
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), created.ID, owner, []byte(`{"experience": 42}`))
	require.Error(t, err)
	var ve ErrValidation
	assert.ErrorAs(t, err, &ve)
	assert.Zero(t, repo.saveCalls, "invalid payload must be rejected before any write")
}

func TestGetMissingIDIsNotFound(t *testing.T) {
	svc := NewService(newMemRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
