package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/lojaviva/lojaviva-api/internal/logger"
	"github.com/lojaviva/lojaviva-api/internal/provider"
	"github.com/lojaviva/lojaviva-api/internal/queue"
	"github.com/lojaviva/lojaviva-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles the asynchronous tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskResetPasswordEmail, c.handleResetPasswordEmail)
	mux.HandleFunc(queue.TaskPedidoStatusEmail, c.handlePedidoStatusEmail)
	mux.HandleFunc(queue.TaskNotificacaoDispatch, c.handleNotificacaoDispatch)
}

func (c *Consumer) handleResetPasswordEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_reset_password_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ResetPasswordEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_reset_password_email_unmarshal_failed", "error", err)
		return err
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Token == "" {
		logger.Debugw("worker_reset_password_email_skip_invalid_payload", "email", email)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_reset_password_email_skip_email_service_nil", "email", email)
		return nil
	}
	if err := c.EmailService.SendResetToken(email, payload.Token); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) {
			logger.Debugw("worker_reset_password_email_skip_disabled", "email", email)
			return nil
		}
		logger.Warnw("worker_reset_password_email_send_failed", "email", email, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handlePedidoStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_pedido_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.PedidoStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_pedido_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.PedidoID == 0 {
		logger.Debugw("worker_pedido_status_email_skip_invalid_payload", "pedido_id", payload.PedidoID)
		return nil
	}
	pedido, err := c.PedidoService.GetByID(payload.PedidoID)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			logger.Debugw("worker_pedido_status_email_skip_pedido_not_found", "pedido_id", payload.PedidoID)
			return nil
		}
		logger.Warnw("worker_pedido_status_email_fetch_pedido_failed", "pedido_id", payload.PedidoID, "error", err)
		return err
	}
	usuario, err := c.UsuarioRepo.GetByID(pedido.UsuarioID)
	if err != nil {
		logger.Warnw("worker_pedido_status_email_fetch_usuario_failed", "pedido_id", pedido.ID, "usuario_id", pedido.UsuarioID, "error", err)
		return err
	}
	if usuario == nil || strings.TrimSpace(usuario.Email) == "" {
		logger.Debugw("worker_pedido_status_email_skip_empty_receiver", "pedido_id", pedido.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_pedido_status_email_skip_email_service_nil", "pedido_id", pedido.ID)
		return nil
	}
	if status := strings.TrimSpace(payload.Status); status != "" {
		pedido.StatusPedido = status
	}
	if err := c.EmailService.SendPedidoStatusEmail(strings.TrimSpace(usuario.Email), pedido); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) {
			logger.Debugw("worker_pedido_status_email_skip_disabled", "pedido_id", pedido.ID)
			return nil
		}
		logger.Warnw("worker_pedido_status_email_send_failed",
			"pedido_id", pedido.ID,
			"usuario_id", pedido.UsuarioID,
			"status", pedido.StatusPedido,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleNotificacaoDispatch(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_notificacao_dispatch_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.NotificacaoDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_notificacao_dispatch_unmarshal_failed", "error", err)
		return err
	}
	if payload.NotificacaoID == 0 {
		logger.Debugw("worker_notificacao_dispatch_skip_invalid_payload", "notificacao_id", payload.NotificacaoID)
		return nil
	}
	if c.NotificacaoService == nil {
		logger.Warnw("worker_notificacao_dispatch_skip_service_nil", "notificacao_id", payload.NotificacaoID)
		return nil
	}
	if err := c.NotificacaoService.Dispatch(payload.NotificacaoID); err != nil {
		if errors.Is(err, service.ErrNotificacaoNotFound) {
			logger.Debugw("worker_notificacao_dispatch_skip_not_found", "notificacao_id", payload.NotificacaoID)
			return nil
		}
		logger.Warnw("worker_notificacao_dispatch_failed", "notificacao_id", payload.NotificacaoID, "error", err)
		return err
	}
	return nil
}
