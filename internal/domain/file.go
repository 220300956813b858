package domain

import (
	"context"
	"io"

	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/storage"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

var allowedImageMimes = []string{"image/jpeg", "image/png", "image/gif"}

type FileDomain interface {
	UploadImage(context.Context, *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	fileStorage storage.Storage
}

func NewFileDomain(fileStorage storage.Storage) *fileDomain {
	return &fileDomain{fileStorage: fileStorage}
}

// UploadImage stores an image from the "image" multipart field and returns
// the public URL to put into a post.
func (d *fileDomain) UploadImage(
	ctx context.Context, req *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := httpReq.FormFile("image")
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Error retrieving the file")
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	if !slices.Contains(allowedImageMimes, mime) {
		return nil, errorx.New(errorx.BadRequest, "We just accept jpeg, gif or png")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read uploaded file: %v", err)
		return nil, errorx.Unknown
	}

	uresp, err := d.fileStorage.Upload(ctx, &storage.UploadObject{
		Bucket:   "images",
		Prefix:   "posts",
		FileName: header.Filename,
		Mime:     mime,
		Data:     data,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadImageResponse{Url: uresp.Url}, nil
}
