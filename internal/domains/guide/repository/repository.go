package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"visitpazar/infras/mongo"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/guide/model"
	gDto "visitpazar/shared/dto"
	gRepo "visitpazar/shared/repository"
)

type Guide interface {
	Insert(ctx context.Context, model model.Guide) (string, error)
	Find(ctx context.Context, filter gDto.FilterGroup, limit int) ([]model.Guide, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guide]
}

func New(db *mongo.Connection, otel otel.Otel) Guide {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guide](model.EntityName, model.CollectionName, db, otel),
	}
}
