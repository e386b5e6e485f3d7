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

package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/accesscontrol"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/mocks"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMultipartContext(t *testing.T, fields map[string]string, fileName string, content []byte, session shared.AuthSession) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest("POST", "/api/files/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, session)
	return ctx, rec
}

func TestFileControllerUpload(t *testing.T) {
	uploader := accesscontrol.NewSession(uuid.New(), "c@infratrack.test", models.RoleContractor)

	t.Run("should return 400 if no file is attached", func(t *testing.T) {
		controller := NewFileController(mocks.NewFileService(t), mocks.NewDocumentRepository(t))
		ctx, _ := newMultipartContext(t, map[string]string{"category": "PHOTO"}, "", nil, uploader)

		err := controller.Upload(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should return 400 for a malformed project id", func(t *testing.T) {
		controller := NewFileController(mocks.NewFileService(t), mocks.NewDocumentRepository(t))
		ctx, _ := newMultipartContext(t, map[string]string{"projectId": "abc"}, "site.jpg", []byte("jpg"), uploader)

		err := controller.Upload(ctx)
		assert.Equal(t, 400, httpStatus(t, err))
	})

	t.Run("should store the file and respond with its download url", func(t *testing.T) {
		fileService := mocks.NewFileService(t)
		controller := NewFileController(fileService, mocks.NewDocumentRepository(t))
		projectID := uuid.New()
		stored := models.Document{Model: models.Model{ID: uuid.New()}, FileName: "site.jpg", ProjectID: &projectID}

		fileService.On("Upload", mock.Anything, uploader, mock.MatchedBy(func(f shared.UploadedFile) bool {
			content, err := io.ReadAll(f.Content)
			return err == nil && string(content) == "jpeg bytes" &&
				f.FileName == "site.jpg" &&
				f.Size == int64(len("jpeg bytes")) &&
				f.Category == "PHOTO" &&
				f.ProjectID != nil && *f.ProjectID == projectID &&
				f.SubmissionID == nil
		})).Return(stored, nil)

		ctx, rec := newMultipartContext(t, map[string]string{"category": "PHOTO", "projectId": projectID.String()}, "site.jpg", []byte("jpeg bytes"), uploader)
		require.NoError(t, controller.Upload(ctx))
		assert.Equal(t, 201, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				URL string `json:"url"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "/api/files/"+stored.ID.String()+"/download", body.Data.URL)
	})
}

func TestFileControllerDownload(t *testing.T) {
	userID := uuid.New()

	t.Run("should stream the file as an attachment", func(t *testing.T) {
		fileService := mocks.NewFileService(t)
		documents := mocks.NewDocumentRepository(t)
		controller := NewFileController(fileService, documents)
		document := models.Document{Model: models.Model{ID: uuid.New()}, FileName: "report.pdf", MimeType: "application/pdf", UploadedBy: userID}

		documents.On("Read", document.ID).Return(document, nil)
		fileService.On("Open", mock.Anything, document).Return(io.NopCloser(strings.NewReader("%PDF")), nil)

		ctx, rec := newJSONContext("GET", "/", "", accesscontrol.NewSession(userID, "c@infratrack.test", models.RoleContractor))
		ctx.SetParamNames("id")
		ctx.SetParamValues(document.ID.String())

		require.NoError(t, controller.Download(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, "%PDF", rec.Body.String())
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename=report.pdf`, rec.Header().Get(echo.HeaderContentDisposition))
	})

	t.Run("should forbid contractors to download files of others", func(t *testing.T) {
		documents := mocks.NewDocumentRepository(t)
		controller := NewFileController(mocks.NewFileService(t), documents)
		document := models.Document{Model: models.Model{ID: uuid.New()}, UploadedBy: uuid.New()}
		documents.On("Read", document.ID).Return(document, nil)

		ctx, _ := newJSONContext("GET", "/", "", accesscontrol.NewSession(userID, "c@infratrack.test", models.RoleContractor))
		ctx.SetParamNames("id")
		ctx.SetParamValues(document.ID.String())

		err := controller.Download(ctx)
		assert.Equal(t, 403, httpStatus(t, err))
	})
}
