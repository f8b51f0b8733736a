package service

import (
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"
)

// CategoriaService category CRUD over the generic base.
type CategoriaService struct {
	*Base[models.Categoria]
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaService creates the category service.
func NewCategoriaService(categoriaRepo *repository.GormCategoriaRepository) *CategoriaService {
	return &CategoriaService{
		Base:          NewBase[models.Categoria](categoriaRepo.Base),
		categoriaRepo: categoriaRepo,
	}
}

// CountProdutos counts products linked to the category.
func (s *CategoriaService) CountProdutos(categoriaID uint) (int64, error) {
	categoria, err := s.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return 0, err
	}
	if categoria == nil {
		return 0, ErrNotFound
	}
	return s.categoriaRepo.CountProdutos(categoriaID)
}
