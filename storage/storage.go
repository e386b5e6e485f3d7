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

package storage

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/infratrack-dev/infratrack/shared"
)

var ErrObjectNotFound = errors.New("object not found")

// NewObjectStorage uses S3 when S3_BUCKET is set and the local disk otherwise.
func NewObjectStorage(cfg shared.Config) (shared.ObjectStorage, error) {
	if cfg.S3Bucket != "" {
		slog.Info("storing documents in s3", "bucket", cfg.S3Bucket)
		return NewS3Storage(context.Background(), GetS3ConfigFromEnv(cfg.S3Bucket))
	}
	slog.Info("storing documents on local disk", "dir", cfg.UploadDir)
	return NewLocalStorage(cfg.UploadDir)
}

// ObjectKey builds a collision free key which keeps a readable file name.
func ObjectKey(category string, fileName string, now time.Time) string {
	ext := strings.ToLower(path.Ext(fileName))
	base := slug.Make(strings.TrimSuffix(fileName, path.Ext(fileName)))
	if base == "" {
		base = "file"
	}
	folder := slug.Make(category)
	if folder == "" {
		folder = "general"
	}
	return path.Join(folder, now.Format("2006/01"), uuid.NewString()+"-"+base+ext)
}
