package station

import (
	"context"
	"testing"

	"radioreg/internal/domain"
	"radioreg/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStationRepo struct {
	mock.Mock
}

func (m *mockStationRepo) Exists(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStationRepo) Fetch(ctx context.Context, search, region string) ([]domain.Station, error) {
	args := m.Called(ctx, search, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *mockStationRepo) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *mockStationRepo) Add(ctx context.Context, s *domain.Station) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStationRepo) Update(ctx context.Context, id int64, s *domain.Station) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *mockStationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStationRepo) UpdateNotes(ctx context.Context, id int64, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}

func (m *mockStationRepo) SetPhotoPath(ctx context.Context, id int64, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *mockStationRepo) SetPDFPath(ctx context.Context, id int64, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

type mockAttachmentStore struct {
	mock.Mock
}

func (m *mockAttachmentStore) SavePhoto(hint string, data []byte) (string, error) {
	args := m.Called(hint, data)
	return args.String(0), args.Error(1)
}

func (m *mockAttachmentStore) SaveDocument(hint string, data []byte) (string, error) {
	args := m.Called(hint, data)
	return args.String(0), args.Error(1)
}

func (m *mockAttachmentStore) Abs(rel string) string {
	args := m.Called(rel)
	return args.String(0)
}

func TestService_CreateBlankName(t *testing.T) {
	repo := new(mockStationRepo)
	service := NewService(repo, new(mockAttachmentStore))

	_, err := service.Create(context.Background(), UpsertStationRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Add")
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	repo := new(mockStationRepo)
	service := NewService(repo, new(mockAttachmentStore))

	repo.On("Exists", mock.Anything, "БС Варзоб", int64(0)).Return(false, nil)
	repo.On("Add", mock.Anything, mock.Anything).Return(int64(1), nil)

	st, err := service.Create(context.Background(), UpsertStationRequest{Name: " БС Варзоб "})
	require.NoError(t, err)

	assert.Equal(t, "БС Варзоб", st.Name)
	assert.Equal(t, domain.RegionRRP, st.Region)
	assert.Equal(t, domain.StationBase, st.Type)
	assert.Equal(t, domain.StatusActive, st.Status)
	repo.AssertExpectations(t)
}

func TestService_CreateDuplicateName(t *testing.T) {
	repo := new(mockStationRepo)
	service := NewService(repo, new(mockAttachmentStore))

	repo.On("Exists", mock.Anything, "БС Варзоб", int64(0)).Return(true, nil)

	_, err := service.Create(context.Background(), UpsertStationRequest{Name: "БС Варзоб"})

	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	repo.AssertNotCalled(t, "Add")
}

func TestService_UpdatePreservesAttachmentPaths(t *testing.T) {
	repo := new(mockStationRepo)
	service := NewService(repo, new(mockAttachmentStore))

	current := &domain.Station{
		ID:        7,
		Name:      "БС Варзоб",
		PhotoPath: "photos/varzob.jpg",
		PDFPath:   "pdfs/varzob.pdf",
	}
	repo.On("GetByID", mock.Anything, int64(7)).Return(current, nil)
	repo.On("Exists", mock.Anything, "БС Варзоб", int64(7)).Return(false, nil)
	repo.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(s *domain.Station) bool {
		return s.PhotoPath == "photos/varzob.jpg" && s.PDFPath == "pdfs/varzob.pdf"
	})).Return(nil)

	_, err := service.Update(context.Background(), 7, UpsertStationRequest{Name: "БС Варзоб"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_AttachPhotoRejectsWrongType(t *testing.T) {
	repo := new(mockStationRepo)
	service := NewService(repo, new(mockAttachmentStore))

	_, err := service.AttachPhoto(context.Background(), 1, "notes.txt", []byte("plain text"))

	assert.ErrorIs(t, err, ErrInvalidFileType)
	repo.AssertNotCalled(t, "SetPhotoPath")
}

func TestService_AttachDocumentWriteFailure(t *testing.T) {
	repo := new(mockStationRepo)
	store := new(mockAttachmentStore)
	service := NewService(repo, store)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Station{ID: 1}, nil)
	store.On("SaveDocument", "contract.pdf", mock.Anything).Return("", assert.AnError)

	_, err := service.AttachDocument(context.Background(), 1, "contract.pdf", []byte("%PDF-1.4 test"))

	assert.ErrorIs(t, err, ErrAttachmentWrite)
	repo.AssertNotCalled(t, "SetPDFPath")
}

func TestService_AttachmentPathMissing(t *testing.T) {
	repo := new(mockStationRepo)
	service := NewService(repo, new(mockAttachmentStore))

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Station{ID: 1}, nil)

	_, err := service.AttachmentPath(context.Background(), 1, "photo")

	assert.ErrorIs(t, err, ErrNoAttachment)
}
