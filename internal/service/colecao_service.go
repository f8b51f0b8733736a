package service

import (
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"
)

// ColecaoService collection CRUD over the generic base.
type ColecaoService struct {
	*Base[models.Colecao]
}

// NewColecaoService creates the collection service.
func NewColecaoService(colecaoRepo *repository.GormColecaoRepository) *ColecaoService {
	return &ColecaoService{Base: NewBase[models.Colecao](colecaoRepo.Base)}
}
