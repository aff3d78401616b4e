package usecase

import (
	"moviehub/internal/data/repository"
	"moviehub/pkg/auth"
	"moviehub/pkg/storage"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Review  ReviewService
}

func NewService(
	repo *repository.Repository,
	tokens *auth.TokenManager,
	store storage.ObjectStorage,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokens, config, log),
		Catalog: NewCatalogService(repo, store, config, log),
		Review:  NewReviewService(repo, log),
	}
}
