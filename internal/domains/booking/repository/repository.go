package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"visitpazar/infras/mongo"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/booking/model"
	gRepo "visitpazar/shared/repository"
)

// Booking is write only, there is no listing endpoint for bookings.
type Booking interface {
	Insert(ctx context.Context, model model.Booking) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *mongo.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.CollectionName, db, otel),
	}
}
