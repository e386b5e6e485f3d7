// Copyright (C) 2025 infratrack-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/database/repositories"
	"github.com/infratrack-dev/infratrack/monitoring"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/storage"
	"github.com/labstack/echo/v4"
)

const defaultDocumentCategory = "GENERAL"

type fileService struct {
	documentRepository   shared.DocumentRepository
	contractorRepository shared.ContractorRepository
	projectRepository    shared.ProjectRepository
	submissionRepository shared.SubmissionRepository
	objectStorage        shared.ObjectStorage
	maxSize              int64
	now                  func() time.Time
}

var _ shared.FileService = &fileService{}

func NewFileService(
	documentRepository shared.DocumentRepository,
	contractorRepository shared.ContractorRepository,
	projectRepository shared.ProjectRepository,
	submissionRepository shared.SubmissionRepository,
	objectStorage shared.ObjectStorage,
	cfg shared.Config,
) *fileService {
	return &fileService{
		documentRepository:   documentRepository,
		contractorRepository: contractorRepository,
		projectRepository:    projectRepository,
		submissionRepository: submissionRepository,
		objectStorage:        objectStorage,
		maxSize:              cfg.UploadMaxSize,
		now:                  time.Now,
	}
}

// checkAttachment makes sure contractors only attach files to projects
// they are assigned to and to their own submissions. Government roles may
// attach to anything.
func (s *fileService) checkAttachment(uploader shared.AuthSession, file shared.UploadedFile) error {
	if uploader.GetRole() != models.RoleContractor || (file.ProjectID == nil && file.SubmissionID == nil) {
		return nil
	}

	contractor, err := s.contractorRepository.FindByUserID(uploader.GetUserID())
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusForbidden, "contractor profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch contractor profile").WithInternal(err)
	}

	if file.ProjectID != nil {
		project, err := s.projectRepository.Read(*file.ProjectID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return echo.NewHTTPError(http.StatusBadRequest, "referenced project does not exist")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch project").WithInternal(err)
		}
		if !project.IsAssignedTo(contractor.ID) {
			return echo.NewHTTPError(http.StatusForbidden, "you are not assigned to this project")
		}
	}

	if file.SubmissionID != nil {
		submission, err := s.submissionRepository.Read(*file.SubmissionID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return echo.NewHTTPError(http.StatusBadRequest, "referenced submission does not exist")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch submission").WithInternal(err)
		}
		if submission.ContractorID != contractor.ID {
			return echo.NewHTTPError(http.StatusForbidden, "you can only attach files to your own submissions")
		}
	}
	return nil
}

func (s *fileService) Upload(ctx context.Context, uploader shared.AuthSession, file shared.UploadedFile) (models.Document, error) {
	if file.Size <= 0 {
		return models.Document{}, echo.NewHTTPError(http.StatusBadRequest, "file is empty")
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return models.Document{}, echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds the maximum size of %d bytes", s.maxSize))
	}

	if err := s.checkAttachment(uploader, file); err != nil {
		return models.Document{}, err
	}

	category := strings.ToUpper(strings.TrimSpace(file.Category))
	if category == "" {
		category = defaultDocumentCategory
	}
	fileName := path.Base(strings.ReplaceAll(file.FileName, "\\", "/"))

	key := storage.ObjectKey(category, fileName, s.now())
	if err := s.objectStorage.Put(ctx, key, file.Content, file.Size, file.MimeType); err != nil {
		return models.Document{}, echo.NewHTTPError(http.StatusInternalServerError, "could not store file").WithInternal(err)
	}

	document := models.Document{
		ProjectID:    file.ProjectID,
		SubmissionID: file.SubmissionID,
		FileName:     fileName,
		FilePath:     key,
		MimeType:     file.MimeType,
		Size:         file.Size,
		Category:     category,
		UploadedBy:   uploader.GetUserID(),
	}
	if err := s.documentRepository.Create(nil, &document); err != nil {
		if delErr := s.objectStorage.Delete(ctx, key); delErr != nil {
			slog.Warn("could not remove orphaned object", "key", key, "err", delErr)
		}
		if database.IsForeignKeyError(err) {
			return models.Document{}, echo.NewHTTPError(http.StatusBadRequest, "referenced project or submission does not exist").WithInternal(err)
		}
		return models.Document{}, echo.NewHTTPError(http.StatusInternalServerError, "could not save document").WithInternal(err)
	}

	monitoring.FileUploadBytes.Add(float64(file.Size))
	return document, nil
}

func (s *fileService) Open(ctx context.Context, document models.Document) (io.ReadCloser, error) {
	r, err := s.objectStorage.Get(ctx, document.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "file content not found").WithInternal(err)
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "could not read file").WithInternal(err)
	}
	return r, nil
}

// Delete removes the document. Only the uploader and administrators may do so.
func (s *fileService) Delete(ctx context.Context, actor shared.AuthSession, id uuid.UUID) error {
	document, err := s.documentRepository.Read(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "file not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch file").WithInternal(err)
	}

	if document.UploadedBy != actor.GetUserID() && actor.GetRole() != models.RoleGovernmentAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "only the uploader or an administrator can delete this file")
	}

	if err := s.documentRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete file").WithInternal(err)
	}
	if err := s.objectStorage.Delete(ctx, document.FilePath); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		slog.Warn("could not remove stored object", "key", document.FilePath, "err", err)
	}
	return nil
}
