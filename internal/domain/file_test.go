package domain

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/inkwell-lab/backend/internal/model"
	"github.com/inkwell-lab/backend/pkg/errorx"
	"github.com/inkwell-lab/backend/pkg/storage"
	"github.com/inkwell-lab/backend/pkg/testutil"
	"github.com/inkwell-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func uploadContext(t *testing.T, ctx context.Context, field, mime string) context.Context {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(2, 3, color.RGBA{255, 0, 0, 255})

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="out.png"`)
	header.Set("Content-Type", mime)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, img))
	require.NoError(t, writer.Close())

	request := httptest.NewRequest("POST", "/upload/", body)
	request.Header.Add("Content-Type", writer.FormDataContentType())
	ctx = testutil.MockContextWithRequest(ctx, request)
	return xcontext.WithRequestUserID(ctx, testutil.User1.ID)
}

func Test_fileDomain_UploadImage(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = uploadContext(t, ctx, "image", "image/png")

	var uploaded *storage.UploadObject
	stg := &testutil.MockStorage{
		UploadFunc: func(ctx context.Context, obj *storage.UploadObject) (*storage.UploadResponse, error) {
			uploaded = obj
			return &storage.UploadResponse{Url: "https://cdn.example.com/posts/out.png"}, nil
		},
	}

	domain := NewFileDomain(stg)
	resp, err := domain.UploadImage(ctx, &model.UploadImageRequest{})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/posts/out.png", resp.Url)
	require.NotNil(t, uploaded)
	require.Equal(t, "out.png", uploaded.FileName)
	require.NotEmpty(t, uploaded.Data)
}

func Test_fileDomain_UploadImage_badMime(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = uploadContext(t, ctx, "image", "text/plain")

	domain := NewFileDomain(&testutil.MockStorage{})
	_, err := domain.UploadImage(ctx, &model.UploadImageRequest{})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_fileDomain_UploadImage_missingField(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = uploadContext(t, ctx, "avatar", "image/png")

	domain := NewFileDomain(&testutil.MockStorage{})
	_, err := domain.UploadImage(ctx, &model.UploadImageRequest{})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
