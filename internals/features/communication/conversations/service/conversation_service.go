package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/conversations/dto"
	"ksms_backend/internals/features/communication/conversations/model"
	userModel "ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

type ConversationService struct {
	db       *gorm.DB
	messages *lifecycle.Manager[model.ChatMessageModel]
}

func NewConversationService(db *gorm.DB) *ConversationService {
	return &ConversationService{
		db:       db,
		messages: lifecycle.New[model.ChatMessageModel](db, "message", lifecycle.WithOrder("created_at ASC")),
	}
}

func requireTeacher(tx *gorm.DB, teacherID uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := tx.Where("id = ? AND role = ?", teacherID, constants.RoleTeacher).First(&u).Error
	if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Teacher not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load teacher")
	}
	return &u, nil
}

// conversationFor returns the teacher's thread, creating it on first use.
func conversationFor(tx *gorm.DB, teacherID uuid.UUID) (*model.ConversationModel, error) {
	conv := model.ConversationModel{TeacherID: teacherID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&conv).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create conversation")
	}
	var out model.ConversationModel
	if err := tx.Where("teacher_id = ?", teacherID).First(&out).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "load conversation")
	}
	return &out, nil
}

func (s *ConversationService) post(ctx context.Context, teacherID uuid.UUID, sender constants.ChatSender, req dto.SendRequest) (*model.ChatMessageModel, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	var msg *model.ChatMessageModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireTeacher(tx, teacherID); err != nil {
			return err
		}
		conv, err := conversationFor(tx, teacherID)
		if err != nil {
			return err
		}
		msg = &model.ChatMessageModel{
			ConversationID: conv.ID,
			TeacherID:      teacherID,
			Sender:         sender,
			Content:        req.Content,
		}
		if err := s.messages.WithTx(tx).Create(ctx, msg); err != nil {
			return err
		}
		return tx.Model(conv).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// SendToAdmin posts a teacher message into the teacher's thread.
func (s *ConversationService) SendToAdmin(ctx context.Context, teacherID uuid.UUID, req dto.SendRequest) (*model.ChatMessageModel, error) {
	return s.post(ctx, teacherID, constants.SenderTeacher, req)
}

// Reply posts an admin message into a teacher's thread.
func (s *ConversationService) Reply(ctx context.Context, teacherID uuid.UUID, req dto.SendRequest) (*model.ChatMessageModel, error) {
	return s.post(ctx, teacherID, constants.SenderAdmin, req)
}

// History lists a thread oldest first. A nil sender means both sides.
func (s *ConversationService) History(ctx context.Context, teacherID uuid.UUID, sender *constants.ChatSender, p helper.Paging) ([]model.ChatMessageModel, int64, error) {
	scopes := []lifecycle.Scope{func(db *gorm.DB) *gorm.DB { return db.Where("teacher_id = ?", teacherID) }}
	if sender != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("sender = ?", *sender) })
	}
	return s.messages.List(ctx, p, scopes...)
}

// Inbox lists every thread, most recently active first.
func (s *ConversationService) Inbox(ctx context.Context) ([]dto.ConversationSummary, error) {
	var convs []model.ConversationModel
	if err := s.db.WithContext(ctx).Preload("Teacher").Order("updated_at DESC").Find(&convs).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list conversations")
	}

	var counts []struct {
		ConversationID uuid.UUID
		N              int64
	}
	err := s.db.WithContext(ctx).Model(&model.ChatMessageModel{}).
		Select("conversation_id, COUNT(*) AS n").
		Group("conversation_id").
		Scan(&counts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "count chat messages")
	}
	byConv := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byConv[c.ConversationID] = c.N
	}

	out := make([]dto.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		row := dto.ConversationSummary{ID: c.ID, TeacherID: c.TeacherID, MessageCount: byConv[c.ID]}
		if c.Teacher != nil {
			row.TeacherName = c.Teacher.FullName()
			row.TeacherEmail = c.Teacher.Email
		}
		if row.MessageCount > 0 {
			last := c.UpdatedAt
			row.LastMessageAt = &last
		}
		out = append(out, row)
	}
	return out, nil
}
