package service

import (
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/repository"
)

// CarrinhoService cart aggregation.
type CarrinhoService struct {
	carrinhoRepo repository.CarrinhoRepository
	variacaoRepo repository.ProdutoVariacaoRepository
}

// NewCarrinhoService creates the cart service.
func NewCarrinhoService(carrinhoRepo repository.CarrinhoRepository, variacaoRepo repository.ProdutoVariacaoRepository) *CarrinhoService {
	return &CarrinhoService{
		carrinhoRepo: carrinhoRepo,
		variacaoRepo: variacaoRepo,
	}
}

// GetByID returns the cart without items.
func (s *CarrinhoService) GetByID(id uint) (*models.Carrinho, error) {
	carrinho, err := s.carrinhoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if carrinho == nil {
		return nil, ErrCarrinhoNotFound
	}
	return carrinho, nil
}

// GetByUsuarioID returns the user's cart without items.
func (s *CarrinhoService) GetByUsuarioID(usuarioID uint) (*models.Carrinho, error) {
	carrinho, err := s.carrinhoRepo.GetByUsuarioID(usuarioID)
	if err != nil {
		return nil, err
	}
	if carrinho == nil {
		return nil, ErrCarrinhoNotFound
	}
	return carrinho, nil
}

// GetWithVariacoes returns the cart with its variation set. An empty
// set is a valid cart, not an error.
func (s *CarrinhoService) GetWithVariacoes(id uint) (*models.Carrinho, error) {
	carrinho, err := s.carrinhoRepo.GetWithVariacoes(id)
	if err != nil {
		return nil, err
	}
	if carrinho == nil {
		return nil, ErrCarrinhoNotFound
	}
	return carrinho, nil
}

// GetWithVariacoesByUsuarioID returns the user's cart with variations.
func (s *CarrinhoService) GetWithVariacoesByUsuarioID(usuarioID uint) (*models.Carrinho, error) {
	carrinho, err := s.carrinhoRepo.GetWithVariacoesByUsuarioID(usuarioID)
	if err != nil {
		return nil, err
	}
	if carrinho == nil {
		return nil, ErrCarrinhoNotFound
	}
	return carrinho, nil
}

// AddVariacao puts a variation into the user's cart and returns the
// updated cart. Adding a variation already present is a no-op success.
func (s *CarrinhoService) AddVariacao(usuarioID, variacaoID uint) (*models.Carrinho, error) {
	carrinho, err := s.carrinhoRepo.GetByUsuarioID(usuarioID)
	if err != nil {
		return nil, err
	}
	if carrinho == nil {
		return nil, ErrCarrinhoNotFound
	}

	variacao, err := s.variacaoRepo.GetByID(variacaoID)
	if err != nil {
		return nil, err
	}
	if variacao == nil {
		return nil, ErrVariacaoNotFound
	}

	if err := s.carrinhoRepo.AddVariacao(carrinho.ID, variacao.ID); err != nil {
		return nil, err
	}
	return s.carrinhoRepo.GetWithVariacoes(carrinho.ID)
}

// Clear removes every item from the cart in one statement. The cart
// record itself stays.
func (s *CarrinhoService) Clear(carrinhoID uint) error {
	carrinho, err := s.carrinhoRepo.GetByID(carrinhoID)
	if err != nil {
		return err
	}
	if carrinho == nil {
		return ErrCarrinhoNotFound
	}
	if _, err := s.carrinhoRepo.ClearVariacoes(carrinho.ID); err != nil {
		return err
	}
	return nil
}
