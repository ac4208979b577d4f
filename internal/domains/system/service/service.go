package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"visitpazar/config"
	"visitpazar/infras/otel"
	"visitpazar/internal/domains/system/model/dto"
	"visitpazar/shared/constant"
	"visitpazar/shared/failure"

	"github.com/rs/zerolog/log"
)

// Database is the part of the storage connection the diagnostics report reads.
type Database interface {
	Available() bool
	Connected() bool
	CollectionNames(ctx context.Context) ([]string, error)
}

type System interface {
	Root() dto.RootResponse
	Diagnostics(ctx context.Context) dto.DiagnosticsResponse
}

type serviceImpl struct {
	db   Database
	cfg  *config.Config
	otel otel.Otel
}

func New(db Database, cfg *config.Config, otel otel.Otel) System {
	return &serviceImpl{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Root() dto.RootResponse {
	return dto.RootResponse{Message: dto.RootMessage}
}

// Diagnostics never fails; storage problems are reported in the body.
func (s *serviceImpl) Diagnostics(ctx context.Context) dto.DiagnosticsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".system.Diagnostics")
	defer scope.End()

	res := dto.DiagnosticsResponse{
		Backend:          dto.StatusRunning,
		Database:         dto.DatabaseNotAvailable,
		DatabaseURL:      setOrNot(s.cfg.DB.Mongo.URL),
		DatabaseName:     setOrNot(s.cfg.DB.Mongo.Name),
		ConnectionStatus: dto.ConnectionNotConnected,
		Collections:      []string{},
	}

	if !s.db.Connected() {
		return res
	}

	res.ConnectionStatus = dto.ConnectionConnected

	if !s.db.Available() {
		res.Database = dto.DatabaseNotInitialized

		return res
	}

	names, err := s.db.CollectionNames(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("diagnostics could not list collections")
		scope.TraceError(err)

		res.Database = dto.DatabaseErrorPrefix + failure.Truncate(err.Error(), constant.MaxStatusDetail)

		return res
	}

	if len(names) > constant.MaxDiagnosticCol {
		names = names[:constant.MaxDiagnosticCol]
	}

	res.Database = dto.DatabaseWorking
	res.Collections = names

	return res
}

func setOrNot(value string) string {
	if value == constant.Empty {
		return dto.NotSet
	}

	return dto.Set
}
