package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"visitpazar/infras/mongo"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/event/model"
	gDto "visitpazar/shared/dto"
	gRepo "visitpazar/shared/repository"
)

type Event interface {
	Insert(ctx context.Context, model model.Event) (string, error)
	Find(ctx context.Context, filter gDto.FilterGroup, limit int) ([]model.Event, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
}

func New(db *mongo.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.CollectionName, db, otel),
	}
}
