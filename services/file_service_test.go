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
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/storage"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFileServiceUnderTest(t *testing.T, maxSize int64) (*fileService, *mocks.DocumentRepository, *mocks.ObjectStorage) {
	documents := mocks.NewDocumentRepository(t)
	objects := mocks.NewObjectStorage(t)
	s := NewFileService(documents, mocks.NewContractorRepository(t), mocks.NewProjectRepository(t), mocks.NewSubmissionRepository(t), objects, shared.Config{UploadMaxSize: maxSize})
	s.now = func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) }
	return s, documents, objects
}

func TestFileUpload(t *testing.T) {
	uploader := accesscontrol.NewSession(uuid.New(), "c@buildit.ng", models.RoleContractor)

	t.Run("should reject files above the configured size", func(t *testing.T) {
		s, _, _ := newFileServiceUnderTest(t, 4)
		_, err := s.Upload(context.Background(), uploader, shared.UploadedFile{FileName: "a.pdf", Size: 5, Content: strings.NewReader("12345")})
		assert.Equal(t, 413, httpStatus(t, err))
	})

	t.Run("should store the content and record the document", func(t *testing.T) {
		s, documents, objects := newFileServiceUnderTest(t, 1024)
		objects.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.Contains(key, "/2025/07/") && strings.HasSuffix(key, "-front-gate.jpg")
		}), mock.Anything, int64(3), "image/jpeg").Return(nil)
		documents.On("Create", mock.Anything, mock.MatchedBy(func(d *models.Document) bool {
			return d.FileName == "Front Gate.jpg" && d.Category == "SITE_PHOTO" && d.UploadedBy == uploader.GetUserID()
		})).Return(nil)

		doc, err := s.Upload(context.Background(), uploader, shared.UploadedFile{
			FileName: "C:\\photos\\Front Gate.jpg",
			MimeType: "image/jpeg",
			Size:     3,
			Category: "site_photo",
			Content:  strings.NewReader("abc"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), doc.Size)
	})

	t.Run("should remove the stored object if the document cannot be saved", func(t *testing.T) {
		s, documents, objects := newFileServiceUnderTest(t, 1024)
		objects.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		documents.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23503"})
		objects.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

		officer := accesscontrol.NewSession(uuid.New(), "o@gov.ng", models.RoleGovernmentOfficer)
		_, err := s.Upload(context.Background(), officer, shared.UploadedFile{FileName: "a.pdf", Size: 1, ProjectID: &uuid.UUID{}, Content: strings.NewReader("a")})
		assert.Equal(t, 400, httpStatus(t, err))
	})
}

func TestFileUploadAttachment(t *testing.T) {
	uploader := accesscontrol.NewSession(uuid.New(), "c@buildit.ng", models.RoleContractor)
	profile := models.ContractorProfile{Model: models.Model{ID: uuid.New()}, UserID: uploader.GetUserID()}
	otherContractor := uuid.New()

	setup := func(t *testing.T) (*fileService, *mocks.ContractorRepository, *mocks.ProjectRepository, *mocks.SubmissionRepository, *mocks.ObjectStorage) {
		contractors := mocks.NewContractorRepository(t)
		projects := mocks.NewProjectRepository(t)
		submissions := mocks.NewSubmissionRepository(t)
		objects := mocks.NewObjectStorage(t)
		s := NewFileService(mocks.NewDocumentRepository(t), contractors, projects, submissions, objects, shared.Config{UploadMaxSize: 1024})
		return s, contractors, projects, submissions, objects
	}

	t.Run("should forbid attaching to a project of another contractor", func(t *testing.T) {
		s, contractors, projects, _, objects := setup(t)
		project := models.Project{Model: models.Model{ID: uuid.New()}, ContractorID: &otherContractor}
		contractors.On("FindByUserID", uploader.GetUserID()).Return(profile, nil)
		projects.On("Read", project.ID).Return(project, nil)

		_, err := s.Upload(context.Background(), uploader, shared.UploadedFile{FileName: "a.pdf", Size: 1, ProjectID: &project.ID, Content: strings.NewReader("a")})
		assert.Equal(t, 403, httpStatus(t, err))
		objects.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should forbid attaching to a submission of another contractor", func(t *testing.T) {
		s, contractors, _, submissions, objects := setup(t)
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, ContractorID: otherContractor}
		contractors.On("FindByUserID", uploader.GetUserID()).Return(profile, nil)
		submissions.On("Read", submission.ID).Return(submission, nil)

		_, err := s.Upload(context.Background(), uploader, shared.UploadedFile{FileName: "a.pdf", Size: 1, SubmissionID: &submission.ID, Content: strings.NewReader("a")})
		assert.Equal(t, 403, httpStatus(t, err))
		objects.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return 400 for an unknown project", func(t *testing.T) {
		s, contractors, projects, _, _ := setup(t)
		projectID := uuid.New()
		contractors.On("FindByUserID", uploader.GetUserID()).Return(profile, nil)
		projects.On("Read", projectID).Return(models.Project{}, gorm.ErrRecordNotFound)

		_, err := s.Upload(context.Background(), uploader, shared.UploadedFile{FileName: "a.pdf", Size: 1, ProjectID: &projectID, Content: strings.NewReader("a")})
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should let the contractor attach to an assigned project and an own submission", func(t *testing.T) {
		s, contractors, projects, submissions, objects := setup(t)
		project := models.Project{Model: models.Model{ID: uuid.New()}, ContractorID: &profile.ID}
		submission := models.Submission{Model: models.Model{ID: uuid.New()}, ContractorID: profile.ID, ProjectID: project.ID}
		contractors.On("FindByUserID", uploader.GetUserID()).Return(profile, nil)
		projects.On("Read", project.ID).Return(project, nil)
		submissions.On("Read", submission.ID).Return(submission, nil)
		objects.On("Put", mock.Anything, mock.Anything, mock.Anything, int64(1), mock.Anything).Return(nil)
		s.documentRepository.(*mocks.DocumentRepository).On("Create", mock.Anything, mock.Anything).Return(nil)

		doc, err := s.Upload(context.Background(), uploader, shared.UploadedFile{FileName: "a.pdf", Size: 1, ProjectID: &project.ID, SubmissionID: &submission.ID, Content: strings.NewReader("a")})
		require.NoError(t, err)
		assert.Equal(t, &project.ID, doc.ProjectID)
	})

	t.Run("should let officers attach to any project", func(t *testing.T) {
		s, _, _, _, objects := setup(t)
		projectID := uuid.New()
		objects.On("Put", mock.Anything, mock.Anything, mock.Anything, int64(1), mock.Anything).Return(nil)
		s.documentRepository.(*mocks.DocumentRepository).On("Create", mock.Anything, mock.Anything).Return(nil)

		officer := accesscontrol.NewSession(uuid.New(), "o@gov.ng", models.RoleGovernmentOfficer)
		_, err := s.Upload(context.Background(), officer, shared.UploadedFile{FileName: "a.pdf", Size: 1, ProjectID: &projectID, Content: strings.NewReader("a")})
		assert.NoError(t, err)
	})
}

func TestFileOpenAndDelete(t *testing.T) {
	owner := accesscontrol.NewSession(uuid.New(), "o@gov.ng", models.RoleGovernmentOfficer)
	doc := models.Document{Model: models.Model{ID: uuid.New()}, FilePath: "general/2025/07/x.pdf", UploadedBy: owner.GetUserID()}

	t.Run("should return 404 if the content is gone", func(t *testing.T) {
		s, _, objects := newFileServiceUnderTest(t, 1024)
		objects.On("Get", mock.Anything, doc.FilePath).Return(nil, storage.ErrObjectNotFound)

		_, err := s.Open(context.Background(), doc)
		assert.Equal(t, 404, httpStatus(t, err))
	})

	t.Run("should stream the stored content", func(t *testing.T) {
		s, _, objects := newFileServiceUnderTest(t, 1024)
		objects.On("Get", mock.Anything, doc.FilePath).Return(io.NopCloser(strings.NewReader("pdf")), nil)

		r, err := s.Open(context.Background(), doc)
		require.NoError(t, err)
		b, _ := io.ReadAll(r)
		assert.Equal(t, "pdf", string(b))
	})

	t.Run("should forbid other users to delete the file", func(t *testing.T) {
		s, documents, _ := newFileServiceUnderTest(t, 1024)
		documents.On("Read", doc.ID).Return(doc, nil)

		other := accesscontrol.NewSession(uuid.New(), "x@gov.ng", models.RoleMEOfficer)
		err := s.Delete(context.Background(), other, doc.ID)
		assert.Equal(t, 403, httpStatus(t, err))
	})

	t.Run("should let an admin delete any file", func(t *testing.T) {
		s, documents, objects := newFileServiceUnderTest(t, 1024)
		documents.On("Read", doc.ID).Return(doc, nil)
		documents.On("Delete", mock.Anything, doc.ID).Return(nil)
		objects.On("Delete", mock.Anything, doc.FilePath).Return(nil)

		admin := accesscontrol.NewSession(uuid.New(), "a@gov.ng", models.RoleGovernmentAdmin)
		assert.NoError(t, s.Delete(context.Background(), admin, doc.ID))
	})

	t.Run("should return 404 for an unknown file", func(t *testing.T) {
		s, documents, _ := newFileServiceUnderTest(t, 1024)
		id := uuid.New()
		documents.On("Read", id).Return(models.Document{}, gorm.ErrRecordNotFound)

		assert.Equal(t, 404, httpStatus(t, s.Delete(context.Background(), owner, id)))
	})
}
