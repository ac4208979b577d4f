package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"visitpazar/infras/mongo"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/place/model"
	gDto "visitpazar/shared/dto"
	gRepo "visitpazar/shared/repository"
)

type Place interface {
	Insert(ctx context.Context, model model.Place) (string, error)
	Find(ctx context.Context, filter gDto.FilterGroup, limit int) ([]model.Place, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Place]
}

func New(db *mongo.Connection, otel otel.Otel) Place {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Place](model.EntityName, model.CollectionName, db, otel),
	}
}
