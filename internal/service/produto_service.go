package service

import (
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"
)

// ProdutoService product catalog.
type ProdutoService struct {
	produtoRepo repository.ProdutoRepository
}

// NewProdutoService creates the product service.
func NewProdutoService(produtoRepo repository.ProdutoRepository) *ProdutoService {
	return &ProdutoService{produtoRepo: produtoRepo}
}

// Create persists a new product.
func (s *ProdutoService) Create(produto *models.Produto) (*models.Produto, error) {
	if err := s.produtoRepo.Create(produto); err != nil {
		return nil, err
	}
	return produto, nil
}

// GetByID returns the product with its associations loaded.
func (s *ProdutoService) GetByID(id uint) (*models.Produto, error) {
	produto, err := s.produtoRepo.GetWithDetalhes(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, ErrProdutoNotFound
	}
	return produto, nil
}

// GetAll returns every product.
func (s *ProdutoService) GetAll() ([]models.Produto, error) {
	return s.produtoRepo.GetAll()
}

// List returns a filtered page of products.
func (s *ProdutoService) List(filter repository.ProdutoListFilter) ([]models.Produto, int64, error) {
	return s.produtoRepo.List(filter)
}

// Update applies a partial update.
func (s *ProdutoService) Update(id uint, values map[string]interface{}) (int64, error) {
	produto, err := s.produtoRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if produto == nil {
		return 0, ErrProdutoNotFound
	}
	affected, err := s.produtoRepo.Update(id, values)
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete removes a product after checking it exists.
func (s *ProdutoService) Delete(id uint) error {
	produto, err := s.produtoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return ErrProdutoNotFound
	}
	affected, err := s.produtoRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}
