package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vacation-api/internal/domain"
	"vacation-api/internal/feature/vacation"
)

type VacationRepo struct{ db *gorm.DB }

func NewVacationRepo(db *gorm.DB) *VacationRepo { return &VacationRepo{db: db} }

func (r *VacationRepo) FindByID(ctx context.Context, id int64) (*domain.VacationRequest, error) {
	var m vacation.VacationModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrVacationNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromVacationModel(&m), nil
}

func (r *VacationRepo) Insert(ctx context.Context, v *domain.VacationRequest) error {
	m := vacation.VacationModel{
		UserID: v.UserID,
		From:   v.From,
		To:     v.To,
		Reason: v.Reason,
		Status: string(v.Status),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return err
	}
	v.ID = m.ID
	v.CreatedAt = m.CreatedAt
	v.UpdatedAt = m.UpdatedAt
	return nil
}

// UpdateStatusIf UPDATE ... WHERE id = ? AND status = ?，并发审批只有一个能命中
func (r *VacationRepo) UpdateStatusIf(ctx context.Context, id int64, expected, next domain.Status, authorizerID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&vacation.VacationModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(map[string]any{"status": string(next), "authorized_by": authorizerID})
	return res.RowsAffected, res.Error
}

func (r *VacationRepo) DeleteIfStatus(ctx context.Context, id int64, expected domain.Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(expected)).
		Delete(&vacation.VacationModel{})
	return res.RowsAffected, res.Error
}

func (r *VacationRepo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.VacationRequest, error) {
	var ms []vacation.VacationModel
	err := r.db.WithContext(ctx).
		Joins("User").
		Where(&vacation.VacationModel{Status: string(status)}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "from"}}).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return fromVacationModels(ms), nil
}

func (r *VacationRepo) ListByOwner(ctx context.Context, userID int64) ([]domain.VacationRequest, error) {
	var ms []vacation.VacationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "from"}, Desc: true}).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return fromVacationModels(ms), nil
}

func fromVacationModels(ms []vacation.VacationModel) []domain.VacationRequest {
	out := make([]domain.VacationRequest, 0, len(ms))
	for i := range ms {
		out = append(out, *fromVacationModel(&ms[i]))
	}
	return out
}

func fromVacationModel(m *vacation.VacationModel) *domain.VacationRequest {
	v := &domain.VacationRequest{
		ID:           m.ID,
		UserID:       m.UserID,
		From:         m.From,
		To:           m.To,
		Reason:       m.Reason,
		Status:       domain.Status(m.Status),
		AuthorizedBy: m.AuthorizedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.User != nil {
		u := fromUserModel(m.User)
		u.PasswordHash = ""
		v.User = u
	}
	return v
}

var (
	_ domain.UserRepository     = (*UserRepo)(nil)
	_ domain.VacationRepository = (*VacationRepo)(nil)
)
