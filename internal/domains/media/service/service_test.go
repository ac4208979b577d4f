package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"visitpazar/infras/otel/mocks"
	s3Mocks "visitpazar/infras/s3/mocks"
	"visitpazar/internal/domains/media/model/dto"
	"visitpazar/internal/domains/media/service"
	"visitpazar/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func uploadRequest() dto.UploadMediaRequest {
	return dto.UploadMediaRequest{
		File: &multipart.FileHeader{
			Filename: "Stara-Dzamija.PNG",
			Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
			Size:     4,
		},
	}
}

func TestMediaService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := s3Mocks.NewMockS3(ctrl)
	svc := service.New(storage, mocks.NewOtel())

	storage.EXPECT().Enabled().Return(true)
	storage.EXPECT().
		UploadFile(gomock.Any(), "media", gomock.Any(), "image/png", gomock.Any()).
		DoAndReturn(func(_ context.Context, directory, fileName, _ string, _ any) (string, error) {
			assert.True(t, strings.HasSuffix(fileName, ".png"))

			return "https://cdn.visitpazar.rs/" + directory + "/" + fileName, nil
		})

	res, err := svc.Upload(context.Background(), uploadRequest())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.URL, "https://cdn.visitpazar.rs/media/"))
}

func TestMediaService_UploadDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := s3Mocks.NewMockS3(ctrl)
	svc := service.New(storage, mocks.NewOtel())

	storage.EXPECT().Enabled().Return(false)

	_, err := svc.Upload(context.Background(), uploadRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestMediaService_UploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := s3Mocks.NewMockS3(ctrl)
	svc := service.New(storage, mocks.NewOtel())

	storage.EXPECT().Enabled().Return(true)
	storage.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("access denied"))

	_, err := svc.Upload(context.Background(), uploadRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
