package advice

import (
	"context"
	"errors"
	"strings"
	"time"

	"mindmeter/internal/identity"
	adviceModel "mindmeter/internal/model/advice"
	"mindmeter/packages/response"

	"gorm.io/gorm"
)

// AdviceService 专家建议消息
type AdviceService interface {
	Send(ctx context.Context, senderID uint, req *SendRequest) (*MessageDTO, *response.BusinessError)
	Received(ctx context.Context, userID uint) ([]MessageDTO, *response.BusinessError)
	Sent(ctx context.Context, senderID uint) ([]MessageDTO, *response.BusinessError)
	UnreadCount(ctx context.Context, userID uint) (int64, *response.BusinessError)
	MarkRead(ctx context.Context, messageID, callerID uint) *response.BusinessError
}

type adviceService struct {
	repo  AdviceRepository
	users identity.UserLookup
	now   func() time.Time
}

func NewAdviceService(repo AdviceRepository, users identity.UserLookup) AdviceService {
	return &adviceService{repo: repo, users: users, now: time.Now}
}

// Send 发送方和接收方都必须存在，新消息为未读
func (s *adviceService) Send(ctx context.Context, senderID uint, req *SendRequest) (*MessageDTO, *response.BusinessError) {
	kind, bizErr := adviceModel.ParseMessageType(req.MessageType)
	if bizErr != nil {
		return nil, bizErr
	}
	if bizErr := s.mustExist(ctx, senderID, "Sender not found"); bizErr != nil {
		return nil, bizErr
	}
	if bizErr := s.mustExist(ctx, req.ReceiverID, "Receiver not found"); bizErr != nil {
		return nil, bizErr
	}

	m := &adviceModel.Message{
		SenderID:    senderID,
		ReceiverID:  req.ReceiverID,
		Message:     strings.TrimSpace(req.Message),
		MessageType: kind,
		IsRead:      false,
		SentAt:      s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, response.NewInternalError("failed to send advice", err)
	}

	dto := toDTO(m)
	return &dto, nil
}

func (s *adviceService) Received(ctx context.Context, userID uint) ([]MessageDTO, *response.BusinessError) {
	rows, err := s.repo.Received(ctx, userID)
	if err != nil {
		return nil, response.NewInternalError("failed to list advice", err)
	}

	out := make([]MessageDTO, 0, len(rows))
	for i := range rows {
		dto := toDTO(&rows[i].Message)
		dto.SenderName = strings.TrimSpace(rows[i].SenderFirstName + " " + rows[i].SenderLastName)
		out = append(out, dto)
	}
	return out, nil
}

func (s *adviceService) Sent(ctx context.Context, senderID uint) ([]MessageDTO, *response.BusinessError) {
	msgs, err := s.repo.Sent(ctx, senderID)
	if err != nil {
		return nil, response.NewInternalError("failed to list sent advice", err)
	}

	out := make([]MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, toDTO(&msgs[i]))
	}
	return out, nil
}

func (s *adviceService) UnreadCount(ctx context.Context, userID uint) (int64, *response.BusinessError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, response.NewInternalError("failed to count unread advice", err)
	}
	return count, nil
}

// MarkRead 只有接收者可以标记
func (s *adviceService) MarkRead(ctx context.Context, messageID, callerID uint) *response.BusinessError {
	m, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Message not found")
		}
		return response.NewInternalError("failed to load advice", err)
	}
	if m.ReceiverID != callerID {
		return response.NewForbiddenError("Only the receiver can mark this message as read")
	}
	if m.IsRead {
		return nil
	}
	if err := s.repo.MarkRead(ctx, messageID); err != nil {
		return response.NewInternalError("failed to mark advice as read", err)
	}
	return nil
}

func (s *adviceService) mustExist(ctx context.Context, id uint, msg string) *response.BusinessError {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError(msg)
		}
		return response.NewInternalError("failed to load user", err)
	}
	return nil
}
