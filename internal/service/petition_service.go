package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dseu-petition/petition-api/internal/models"
	"github.com/dseu-petition/petition-api/internal/storage"
)

// Sentinel errors so handlers can map service failures to the right
// HTTP status instead of folding storage faults into 404s.
var (
	ErrNotFound      = errors.New("petition not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type PetitionService struct {
	petitions PetitionStore
	blobs     BlobStore
	validate  *validator.Validate
}

func NewPetitionService(petitions PetitionStore, blobs BlobStore) *PetitionService {
	return &PetitionService{
		petitions: petitions,
		blobs:     blobs,
		validate:  validator.New(),
	}
}

type FileUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type SubmissionInput struct {
	FullName           string `validate:"required,min=2"`
	CollegeName        string `validate:"required,min=2"`
	RollNumber         string `validate:"required,min=2"`
	PhoneNumber        string `validate:"required,len=10,number"`
	Email              string `validate:"required,email"`
	ProblemDescription string `validate:"required,min=50"`
	ProfilePhoto       FileUpload
	SignaturePhoto     FileUpload
	AadharCard         FileUpload
}

// Submit runs the submission workflow: validate every field and file,
// upload the three documents in sequence, then insert one pending row.
// Nothing is uploaded before validation passes and no row is written
// unless all three uploads succeed; blobs already written are deleted
// best-effort when a later step fails.
func (s *PetitionService) Submit(ctx context.Context, userID uuid.UUID, in SubmissionInput) (*models.Petition, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	files := []struct {
		category string
		file     FileUpload
	}{
		{storage.CategoryProfile, in.ProfilePhoto},
		{storage.CategorySignature, in.SignaturePhoto},
		{storage.CategoryAadhar, in.AadharCard},
	}
	for _, f := range files {
		if len(f.file.Data) == 0 {
			return nil, fmt.Errorf("%s file is required", f.category)
		}
		if len(f.file.Data) > storage.MaxFileSize {
			return nil, fmt.Errorf("%s: %w", f.category, storage.ErrTooLarge)
		}
		if !storage.AllowedType(f.category, f.file.ContentType) {
			return nil, fmt.Errorf("%s: content type %q not allowed", f.category, f.file.ContentType)
		}
	}

	var keys []string
	cleanup := func() {
		for _, k := range keys {
			if err := s.blobs.Delete(k); err != nil {
				log.Printf("Warning: orphaned blob %s not removed: %v", k, err)
			}
		}
	}

	for _, f := range files {
		key, err := s.blobs.Put(f.category, f.file.FileName, f.file.ContentType, f.file.Data)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("upload %s: %w", f.category, err)
		}
		keys = append(keys, key)
	}

	petition := &models.Petition{
		UserID:             userID,
		FullName:           in.FullName,
		CollegeName:        in.CollegeName,
		RollNumber:         in.RollNumber,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
		ProblemDescription: in.ProblemDescription,
		ProfileURL:         s.blobs.PublicURL(keys[0]),
		SignatureURL:       s.blobs.PublicURL(keys[1]),
		AadharURL:          s.blobs.PublicURL(keys[2]),
		Status:             models.StatusPending,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.petitions.Create(ctx, petition); err != nil {
		cleanup()
		return nil, fmt.Errorf("save petition: %w", err)
	}
	return petition, nil
}

// Review sets a petition's status to verified or rejected. Re-applying the
// same status is a no-op with the same result.
func (s *PetitionService) Review(ctx context.Context, id uuid.UUID, status string) (*models.Petition, error) {
	if !models.ValidReviewStatus(status) {
		return nil, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}
	petition, err := s.petitions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if petition == nil {
		return nil, ErrNotFound
	}
	if err := s.petitions.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	petition.Status = status
	return petition, nil
}

func (s *PetitionService) Get(ctx context.Context, id uuid.UUID) (*models.Petition, error) {
	petition, err := s.petitions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if petition == nil {
		return nil, ErrNotFound
	}
	return petition, nil
}

// Latest returns the caller's most recent petition, the one "my petition"
// downloads refer to. Users may submit more than once.
func (s *PetitionService) Latest(ctx context.Context, userID uuid.UUID) (*models.Petition, error) {
	petition, err := s.petitions.LatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if petition == nil {
		return nil, ErrNotFound
	}
	return petition, nil
}

func (s *PetitionService) List(ctx context.Context, status, search string) ([]models.Petition, error) {
	return s.petitions.List(ctx, status, search)
}

var fieldMessages = map[string]string{
	"FullName":           "full name must be at least 2 characters",
	"CollegeName":        "college name is required",
	"RollNumber":         "roll number is required",
	"PhoneNumber":        "phone number must be 10 digits",
	"Email":              "invalid email address",
	"ProblemDescription": "please provide a detailed description (minimum 50 characters)",
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
