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
	"mime"
	"strings"

	"github.com/google/uuid"
	"github.com/infratrack-dev/infratrack/database/models"
	"github.com/infratrack-dev/infratrack/dtos"
	"github.com/infratrack-dev/infratrack/shared"
	"github.com/infratrack-dev/infratrack/utils"
	"github.com/labstack/echo/v4"
)

type FileController struct {
	fileService        shared.FileService
	documentRepository shared.DocumentRepository
}

func NewFileController(fileService shared.FileService, documentRepository shared.DocumentRepository) *FileController {
	return &FileController{
		fileService:        fileService,
		documentRepository: documentRepository,
	}
}

func downloadURL(document models.Document) string {
	return "/api/files/" + document.ID.String() + "/download"
}

func formUUID(ctx shared.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(ctx.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, echo.NewHTTPError(400, "invalid "+name).WithInternal(err)
	}
	return &id, nil
}

// @Summary Upload a file
// @Accept multipart/form-data
// @Param file formData file true "The file"
// @Param category formData string false "Document category"
// @Param projectId formData string false "Project id"
// @Param submissionId formData string false "Submission id"
// @Success 201 {object} dtos.UploadResponse
// @Router /files/upload [post]
func (c *FileController) Upload(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(400, "no file uploaded").WithInternal(err)
	}

	projectID, err := formUUID(ctx, "projectId")
	if err != nil {
		return err
	}
	submissionID, err := formUUID(ctx, "submissionId")
	if err != nil {
		return err
	}

	content, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(400, "could not read uploaded file").WithInternal(err)
	}
	defer content.Close()

	mimeType := fileHeader.Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		mimeType = echo.MIMEOctetStream
	}

	document, err := c.fileService.Upload(ctx.Request().Context(), shared.GetSession(ctx), shared.UploadedFile{
		FileName:     fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		Category:     ctx.FormValue("category"),
		ProjectID:    projectID,
		SubmissionID: submissionID,
		Content:      content,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(201, shared.OKWithMessage("file uploaded successfully", dtos.UploadResponse{
		Document: document,
		URL:      downloadURL(document),
	}))
}

func (c *FileController) List(ctx shared.Context) error {
	projectID, err := uuidQuery(ctx, "projectId")
	if err != nil {
		return err
	}
	submissionID, err := uuidQuery(ctx, "submissionId")
	if err != nil {
		return err
	}

	filter := shared.DocumentFilter{
		ProjectID:    projectID,
		SubmissionID: submissionID,
		Category:     utils.EmptyThenNil(strings.ToUpper(ctx.QueryParam("category"))),
	}

	session := shared.GetSession(ctx)
	if session.GetRole() == models.RoleContractor {
		filter.UploadedBy = utils.Ptr(session.GetUserID())
	}

	page, err := c.documentRepository.ListPaged(shared.GetPageInfo(ctx), filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch files").WithInternal(err)
	}

	inMemory := shared.GetInMemoryFilter(ctx)
	page = page.Filter(func(d models.Document) bool {
		return inMemory.MatchesSearch(d.FileName)
	})
	return ctx.JSON(200, shared.OK(page))
}

func (c *FileController) Read(ctx shared.Context) error {
	document, err := c.readVisible(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, shared.OK(dtos.UploadResponse{
		Document: document,
		URL:      downloadURL(document),
	}))
}

func (c *FileController) Download(ctx shared.Context) error {
	document, err := c.readVisible(ctx)
	if err != nil {
		return err
	}

	content, err := c.fileService.Open(ctx.Request().Context(), document)
	if err != nil {
		return err
	}
	defer content.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": document.FileName}))
	return ctx.Stream(200, document.MimeType, content)
}

func (c *FileController) Delete(ctx shared.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.fileService.Delete(ctx.Request().Context(), shared.GetSession(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(200, shared.OKWithMessage("file deleted successfully", nil))
}

// readVisible loads the document from the path. Contractors only see their
// own uploads.
func (c *FileController) readVisible(ctx shared.Context) (models.Document, error) {
	id, err := idParam(ctx, "id")
	if err != nil {
		return models.Document{}, err
	}

	document, err := c.documentRepository.Read(id)
	if err != nil {
		return models.Document{}, readError(err, "file")
	}

	session := shared.GetSession(ctx)
	if session.GetRole() == models.RoleContractor && document.UploadedBy != session.GetUserID() {
		return models.Document{}, echo.NewHTTPError(403, "you can only access your own files")
	}
	return document, nil
}
