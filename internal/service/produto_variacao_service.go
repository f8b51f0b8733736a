package service

import (
	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"
)

// ProdutoVariacaoService product variations.
type ProdutoVariacaoService struct {
	variacaoRepo repository.ProdutoVariacaoRepository
	produtoRepo  repository.ProdutoRepository
}

// NewProdutoVariacaoService creates the variation service.
func NewProdutoVariacaoService(variacaoRepo repository.ProdutoVariacaoRepository, produtoRepo repository.ProdutoRepository) *ProdutoVariacaoService {
	return &ProdutoVariacaoService{
		variacaoRepo: variacaoRepo,
		produtoRepo:  produtoRepo,
	}
}

// Create validates size/gender enums and the parent product before
// persisting the variation.
func (s *ProdutoVariacaoService) Create(variacao *models.ProdutoVariacao) (*models.ProdutoVariacao, error) {
	if !constants.ValidTamanho(variacao.Tamanho) {
		return nil, ErrTamanhoInvalido
	}
	if !constants.ValidSexo(variacao.Sexo) {
		return nil, ErrSexoInvalido
	}
	produto, err := s.produtoRepo.GetByID(variacao.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, ErrProdutoNotFound
	}
	if err := s.variacaoRepo.Create(variacao); err != nil {
		return nil, err
	}
	return variacao, nil
}

// GetByID returns the variation or ErrVariacaoNotFound.
func (s *ProdutoVariacaoService) GetByID(id uint) (*models.ProdutoVariacao, error) {
	variacao, err := s.variacaoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variacao == nil {
		return nil, ErrVariacaoNotFound
	}
	return variacao, nil
}

// GetAll returns every variation.
func (s *ProdutoVariacaoService) GetAll() ([]models.ProdutoVariacao, error) {
	return s.variacaoRepo.GetAll()
}

// ListByProduto returns the variations of a product.
func (s *ProdutoVariacaoService) ListByProduto(produtoID uint) ([]models.ProdutoVariacao, error) {
	produto, err := s.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, ErrProdutoNotFound
	}
	return s.variacaoRepo.ListByProduto(produtoID)
}

// GetByProdutoCorTamanho looks a variation up by its natural key.
func (s *ProdutoVariacaoService) GetByProdutoCorTamanho(produtoID uint, cor, tamanho string) (*models.ProdutoVariacao, error) {
	variacao, err := s.variacaoRepo.GetByProdutoCorTamanho(produtoID, cor, tamanho)
	if err != nil {
		return nil, err
	}
	if variacao == nil {
		return nil, ErrVariacaoNotFound
	}
	return variacao, nil
}

// Update applies a partial update, re-validating enum fields when
// they change.
func (s *ProdutoVariacaoService) Update(id uint, values map[string]interface{}) (int64, error) {
	variacao, err := s.variacaoRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if variacao == nil {
		return 0, ErrVariacaoNotFound
	}
	if tamanho, ok := values["tamanho"].(string); ok && !constants.ValidTamanho(tamanho) {
		return 0, ErrTamanhoInvalido
	}
	if sexo, ok := values["sexo"].(string); ok && !constants.ValidSexo(sexo) {
		return 0, ErrSexoInvalido
	}
	affected, err := s.variacaoRepo.Update(id, values)
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete removes a variation after checking it exists.
func (s *ProdutoVariacaoService) Delete(id uint) error {
	variacao, err := s.variacaoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if variacao == nil {
		return ErrVariacaoNotFound
	}
	affected, err := s.variacaoRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}
