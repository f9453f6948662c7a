package service

import (
	"context"
	"fmt"
	"io"

	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/ingest"
	"assignment-admin-backend/internal/logger"
	"assignment-admin-backend/internal/repository"

	"github.com/gabriel-vasile/mimetype"
)

// ImportOptions bounds what a single upload may cost
type ImportOptions struct {
	MaxUploadBytes int64
	BcryptCost     int
}

// ImportService runs CSV imports of employees, users and organization details
type ImportService struct {
	employeeRepo  repository.EmployeeRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	orgDetailRepo repository.OrganizationDetailRepositoryInterface
	options       ImportOptions
}

// NewImportService creates a new import service
func NewImportService(
	employeeRepo repository.EmployeeRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	orgDetailRepo repository.OrganizationDetailRepositoryInterface,
	options ImportOptions,
) *ImportService {
	return &ImportService{
		employeeRepo:  employeeRepo,
		userRepo:      userRepo,
		orgDetailRepo: orgDetailRepo,
		options:       options,
	}
}

// ImportResponse is returned to the caller after a successful import run
type ImportResponse struct {
	Imported int    `json:"imported" example:"42"`
	Message  string `json:"message" example:"Successfully imported 42 employees"`
}

// Import reads the whole upload, checks that it is delimited text and runs the
// pipeline for kind. Row level failures are logged and skipped; only problems
// with the file as a whole are returned as errors.
func (s *ImportService) Import(ctx context.Context, kind ingest.Kind, filename string, r io.Reader) (*ImportResponse, error) {
	log := logger.ForImport(ctx, string(kind), filename)

	content, err := s.readUpload(r)
	if err != nil {
		return nil, err
	}

	if len(content) > 0 {
		detected := mimetype.Detect(content)
		if !isDelimitedText(detected) {
			log.WithField("mime", detected.String()).Warn("Rejected upload that is not delimited text")
			return nil, apperrors.ErrUnsupportedImportFile
		}
	}

	var outcome *ingest.Outcome
	switch kind {
	case ingest.KindEmployee:
		outcome, err = ingest.NewEmployeePipeline(s.employeeRepo).Run(ctx, content, log)
	case ingest.KindUser:
		outcome, err = ingest.NewUserPipeline(s.userRepo, s.options.BcryptCost).Run(ctx, content, log)
	case ingest.KindOrganizationDetail:
		outcome, err = ingest.NewOrganizationDetailPipeline(s.orgDetailRepo).Run(ctx, content, log)
	default:
		return nil, apperrors.NewValidationError("kind", fmt.Sprintf("unsupported import kind %q", kind))
	}
	if err != nil {
		log.WithError(err).Error("CSV import rejected")
		return nil, err
	}

	return &ImportResponse{
		Imported: outcome.Imported,
		Message:  outcome.Message(),
	}, nil
}

func (s *ImportService) readUpload(r io.Reader) ([]byte, error) {
	if s.options.MaxUploadBytes <= 0 {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("Error reading CSV file: %v", err))
		}
		return content, nil
	}

	content, err := io.ReadAll(io.LimitReader(r, s.options.MaxUploadBytes+1))
	if err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("Error reading CSV file: %v", err))
	}
	if int64(len(content)) > s.options.MaxUploadBytes {
		return nil, apperrors.ErrImportFileTooLarge
	}
	return content, nil
}

func isDelimitedText(detected *mimetype.MIME) bool {
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
