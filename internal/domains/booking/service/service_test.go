package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"visitpazar/infras/otel/mocks"
	bookingMocks "visitpazar/internal/domains/booking/mocks"
	"visitpazar/internal/domains/booking/model"
	"visitpazar/internal/domains/booking/model/dto"
	"visitpazar/internal/domains/booking/service"
	"visitpazar/shared"
	gDto "visitpazar/shared/dto"
	"visitpazar/shared/failure"

	"go.uber.org/mock/gomock"
)

func TestBookingService_Create(t *testing.T) {
	date := gDto.DateTime{}
	if err := date.UnmarshalJSON([]byte(`"2025-07-01T10:00:00Z"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := dto.CreateBookingRequest{
		Type:        "restaurant",
		ReferenceID: "665f1c2e8a1b2c3d4e5f6a7b",
		UserName:    "Ana",
		UserContact: "ana@example.com",
		Date:        &date,
		PartySize:   shared.Ptr(4),
	}

	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) (string, error) {
						if b.PartySize != 4 {
							t.Errorf("expected party size 4, got %d", b.PartySize)
						}

						return "665f1c2e8a1b2c3d4e5f6a7c", nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return("", errors.New(strings.Repeat("e", 400)))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bookingMocks.NewMockBooking(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel())
			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				if failure.GetCode(err) != http.StatusInternalServerError {
					t.Errorf("expected code 500, got %d", failure.GetCode(err))
				}

				if len(err.Error()) > 200 {
					t.Errorf("expected message truncated to 200 characters, got %d", len(err.Error()))
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if res.ID != "665f1c2e8a1b2c3d4e5f6a7c" {
				t.Errorf("unexpected id %s", res.ID)
			}
		})
	}
}
