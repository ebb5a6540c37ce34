package service

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"gym-api/internal/domain"
	"gym-api/internal/repository"
	"gym-api/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentDetail is an assignment enriched with the display names of the
// trainer and (optionally) the member it belongs to.
type AssignmentDetail struct {
	domain.Assignment
	TrainerName string `json:"trainerName"`
	MemberName  string `json:"memberName,omitempty"`
}

// MediaUploadTicket carries a presigned upload URL along with the stored
// media metadata. The client PUTs the file directly to UploadURL.
type MediaUploadTicket struct {
	Media     domain.AssignmentMedia `json:"media"`
	UploadURL string                 `json:"uploadUrl"`
}

// MediaDownload pairs media metadata with a presigned download URL.
type MediaDownload struct {
	Media       domain.AssignmentMedia `json:"media"`
	DownloadURL string                 `json:"downloadUrl"`
}

// AssignmentService exposes assignment CRUD and media attachment.
type AssignmentService interface {
	CreateAssignment(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	GetAssignmentByID(ctx context.Context, assignmentID primitive.ObjectID) (*AssignmentDetail, error)
	GetAssignments(ctx context.Context) ([]AssignmentDetail, error)
	DeleteAssignment(ctx context.Context, assignmentID primitive.ObjectID) error
	RequestMediaUpload(ctx context.Context, assignmentID primitive.ObjectID, fileName, contentType, description string) (*MediaUploadTicket, error)
	GetMediaDownloads(ctx context.Context, assignmentID primitive.ObjectID) ([]MediaDownload, error)
}

// assignmentService implements the AssignmentService interface.
type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	trainerRepo    repository.TrainerRepository
	memberRepo     repository.MemberRepository
	fileStorage    storage.FileStorage
}

// NewAssignmentService creates a new instance of assignmentService.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	trainerRepo repository.TrainerRepository,
	memberRepo repository.MemberRepository,
	fileStorage storage.FileStorage,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		trainerRepo:    trainerRepo,
		memberRepo:     memberRepo,
		fileStorage:    fileStorage,
	}
}

// CreateAssignment handles creation of a new assignment by a trainer.
func (s *assignmentService) CreateAssignment(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	if assignment.Title == "" || assignment.TrainerID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}

	// The trainer must exist; a dangling reference would break the
	// denormalized listing.
	if _, err := s.trainerRepo.GetByID(ctx, assignment.TrainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	assignmentID, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetByID(ctx, assignmentID)
}

// GetAssignmentByID retrieves a single assignment with display names.
func (s *assignmentService) GetAssignmentByID(ctx context.Context, assignmentID primitive.ObjectID) (*AssignmentDetail, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	detail := s.toDetail(ctx, *assignment)
	return &detail, nil
}

// GetAssignments retrieves all assignments with display names denormalized
// into each entry.
func (s *assignmentService) GetAssignments(ctx context.Context) ([]AssignmentDetail, error) {
	assignments, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]AssignmentDetail, len(assignments))
	for i, a := range assignments {
		details[i] = s.toDetail(ctx, a)
	}
	return details, nil
}

// toDetail resolves display names best-effort; a missing reference leaves
// the name empty rather than failing the listing.
func (s *assignmentService) toDetail(ctx context.Context, assignment domain.Assignment) AssignmentDetail {
	detail := AssignmentDetail{Assignment: assignment}

	if trainer, err := s.trainerRepo.GetByID(ctx, assignment.TrainerID); err == nil {
		detail.TrainerName = trainer.FullName()
	}
	if assignment.MemberID != nil {
		if member, err := s.memberRepo.GetByID(ctx, *assignment.MemberID); err == nil {
			detail.MemberName = member.FullName()
		}
	}
	return detail
}

// DeleteAssignment soft-deletes an assignment.
func (s *assignmentService) DeleteAssignment(ctx context.Context, assignmentID primitive.ObjectID) error {
	err := s.assignmentRepo.Delete(ctx, assignmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrAssignmentNotFound
	}
	return err
}

// RequestMediaUpload records media metadata on the assignment and returns
// a presigned URL the client uploads the file to.
func (s *assignmentService) RequestMediaUpload(ctx context.Context, assignmentID primitive.ObjectID, fileName, contentType, description string) (*MediaUploadTicket, error) {
	if fileName == "" || contentType == "" {
		return nil, ErrValidationFailed
	}

	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	objectKey := "assignments/" + assignmentID.Hex() + "/" + uuid.NewString() + filepath.Ext(fileName)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	media := domain.AssignmentMedia{
		ID:               primitive.NewObjectID(),
		ObjectKey:        objectKey,
		OriginalFileName: fileName,
		ContentType:      contentType,
		Description:      description,
		UploadedAt:       time.Now().UTC(),
	}

	if err := s.assignmentRepo.AddMedia(ctx, assignmentID, media); err != nil {
		return nil, err
	}

	return &MediaUploadTicket{Media: media, UploadURL: uploadURL}, nil
}

// GetMediaDownloads returns presigned download URLs for every media item
// attached to the assignment.
func (s *assignmentService) GetMediaDownloads(ctx context.Context, assignmentID primitive.ObjectID) ([]MediaDownload, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	downloads := make([]MediaDownload, 0, len(assignment.Media))
	for _, media := range assignment.Media {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, media.ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, err
		}
		downloads = append(downloads, MediaDownload{Media: media, DownloadURL: url})
	}
	return downloads, nil
}
