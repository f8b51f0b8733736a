package queue

import (
	"encoding/json"

	"github.com/lojaviva/lojaviva-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskResetPasswordEmail password-reset e-mail task
	TaskResetPasswordEmail = constants.TaskResetPasswordEmail
	// TaskPedidoStatusEmail order status e-mail task
	TaskPedidoStatusEmail = constants.TaskPedidoStatusEmail
	// TaskNotificacaoDispatch notification fan-out task
	TaskNotificacaoDispatch = constants.TaskNotificacaoDispatch
)

// ResetPasswordEmailPayload password-reset task payload.
type ResetPasswordEmailPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// PedidoStatusEmailPayload order status task payload.
type PedidoStatusEmailPayload struct {
	PedidoID uint   `json:"pedido_id"`
	Status   string `json:"status"`
}

// NotificacaoDispatchPayload notification fan-out task payload.
type NotificacaoDispatchPayload struct {
	NotificacaoID uint `json:"notificacao_id"`
}

// NewResetPasswordEmailTask builds the password-reset e-mail task.
func NewResetPasswordEmailTask(payload ResetPasswordEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskResetPasswordEmail, body), nil
}

// NewPedidoStatusEmailTask builds the order status e-mail task.
func NewPedidoStatusEmailTask(payload PedidoStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPedidoStatusEmail, body), nil
}

// NewNotificacaoDispatchTask builds the notification fan-out task.
func NewNotificacaoDispatchTask(payload NotificacaoDispatchPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNotificacaoDispatch, body), nil
}
