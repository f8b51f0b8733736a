package service

import (
	"time"

	"github.com/lojaviva/lojaviva-api/internal/constants"
	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/models"
	"github.com/lojaviva/lojaviva-api/internal/queue"
	"github.com/lojaviva/lojaviva-api/internal/repository"

	"gorm.io/gorm"
)

// NotificacaoService notifications with user fan-out.
type NotificacaoService struct {
	notificacaoRepo repository.NotificacaoRepository
	usuarioRepo     repository.UsuarioRepository
	emailService    *EmailService
	queueClient     *queue.Client
}

// NewNotificacaoService creates the notification service.
func NewNotificacaoService(notificacaoRepo repository.NotificacaoRepository, usuarioRepo repository.UsuarioRepository, emailService *EmailService, queueClient *queue.Client) *NotificacaoService {
	return &NotificacaoService{
		notificacaoRepo: notificacaoRepo,
		usuarioRepo:     usuarioRepo,
		emailService:    emailService,
		queueClient:     queueClient,
	}
}

// CreateComUsuarios creates the notification and links its recipients
// in one transaction, then enqueues the fan-out task.
func (s *NotificacaoService) CreateComUsuarios(mensagem string, usuarioIDs []uint) (*models.Notificacao, error) {
	notificacao := &models.Notificacao{
		Mensagem: mensagem,
		Status:   constants.NotificacaoStatusPendente,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		notificacaoRepo := s.notificacaoRepo.WithTx(tx)
		if err := notificacaoRepo.Create(notificacao); err != nil {
			return err
		}
		return notificacaoRepo.AddUsuarios(notificacao.ID, usuarioIDs)
	})
	if err != nil {
		return nil, err
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueNotificacaoDispatch(queue.NotificacaoDispatchPayload{
			NotificacaoID: notificacao.ID,
		}); err != nil {
			logger.Warnw("notificacao_dispatch_enqueue_failed", "notificacao_id", notificacao.ID, "error", err)
		}
	}
	return notificacao, nil
}

// Dispatch mails the notification to every linked user and marks it
// sent. Called from the worker.
func (s *NotificacaoService) Dispatch(notificacaoID uint) error {
	notificacao, err := s.notificacaoRepo.GetByID(notificacaoID)
	if err != nil {
		return err
	}
	if notificacao == nil {
		return ErrNotificacaoNotFound
	}

	destinatarios, err := s.notificacaoRepo.ListUsuarios(notificacao.ID)
	if err != nil {
		return err
	}

	for _, usuario := range destinatarios {
		if err := s.emailService.SendNotificacao(usuario.Email, notificacao.Mensagem); err != nil {
			logger.Warnw("notificacao_email_failed",
				"notificacao_id", notificacao.ID,
				"usuario_id", usuario.ID,
				"error", err,
			)
		}
	}

	now := time.Now()
	_, err = s.notificacaoRepo.Update(notificacao.ID, map[string]interface{}{
		"status":     constants.NotificacaoStatusEnviada,
		"data_envio": now,
	})
	return err
}

// GetByID returns the notification or ErrNotificacaoNotFound.
func (s *NotificacaoService) GetByID(id uint) (*models.Notificacao, error) {
	notificacao, err := s.notificacaoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notificacao == nil {
		return nil, ErrNotificacaoNotFound
	}
	return notificacao, nil
}

// GetAll returns every notification.
func (s *NotificacaoService) GetAll() ([]models.Notificacao, error) {
	return s.notificacaoRepo.GetAll()
}

// ListByUsuario returns notifications addressed to the user.
func (s *NotificacaoService) ListByUsuario(usuarioID uint) ([]models.Notificacao, error) {
	usuario, err := s.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUsuarioNotFound
	}
	return s.notificacaoRepo.ListByUsuario(usuarioID)
}

// Delete removes a notification after checking it exists.
func (s *NotificacaoService) Delete(id uint) error {
	notificacao, err := s.notificacaoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if notificacao == nil {
		return ErrNotificacaoNotFound
	}
	affected, err := s.notificacaoRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeleteFailed
	}
	return nil
}
