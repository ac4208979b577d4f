package dto

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"visitpazar/shared/constant"

	"github.com/google/uuid"
)

type UploadMediaRequest struct {
	File    *multipart.FileHeader `form:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	Content multipart.File        `json:"-"`
}

func (r *UploadMediaRequest) ContentType() string {
	if r.File == nil {
		return constant.Empty
	}

	return r.File.Header.Get(constant.RequestHeaderContentType)
}

// ObjectName is a fresh random name that keeps the uploaded file's extension.
func (r *UploadMediaRequest) ObjectName() string {
	ext := constant.Empty
	if r.File != nil {
		ext = strings.ToLower(filepath.Ext(r.File.Filename))
	}

	return uuid.NewString() + ext
}

type UploadMediaResponse struct {
	URL string `json:"url"`
}
