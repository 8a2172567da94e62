package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/domain"
)

// VacationService 休假申请状态机：pending -> approved | rejected。
// 角色校验在 transport 层由 Guard 完成，这里只关心归属和状态前置条件。
type VacationService struct {
	repo   domain.VacationRepository
	logger *zap.Logger
}

func NewVacationService(repo domain.VacationRepository, logger ...*zap.Logger) *VacationService {
	l := zap.L().Named("vacation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.service")
	}
	return &VacationService{repo: repo, logger: l}
}

func (s *VacationService) Create(ctx context.Context, ownerID int64, from, to time.Time, reason string) (*domain.VacationRequest, error) {
	v, err := domain.NewVacationRequest(ownerID, from, to, reason)
	if err != nil {
		s.logger.Warn("create vacation rejected", zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	if err := s.repo.Insert(ctx, v); err != nil {
		s.logger.Error("create vacation persist failed", zap.Int64("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	vacationTransitions.WithLabelValues(string(domain.StatusPending)).Inc()
	s.logger.Info("vacation created",
		zap.Int64("vacation_id", v.ID),
		zap.Int64("user_id", ownerID),
		zap.Int("days", v.Days()),
	)
	return v, nil
}

func (s *VacationService) Approve(ctx context.Context, id, managerID int64) (*domain.VacationRequest, error) {
	return s.decide(ctx, id, managerID, domain.StatusApproved)
}

func (s *VacationService) Reject(ctx context.Context, id, managerID int64) (*domain.VacationRequest, error) {
	return s.decide(ctx, id, managerID, domain.StatusRejected)
}

func (s *VacationService) decide(ctx context.Context, id, managerID int64, next domain.Status) (*domain.VacationRequest, error) {
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Status != domain.StatusPending {
		return nil, domain.ErrNotPending
	}

	// 0 行即被并发请求抢先处理，直接返回，不重试
	n, err := s.repo.UpdateStatusIf(ctx, id, domain.StatusPending, next, managerID)
	if err != nil {
		s.logger.Error("vacation status update failed", zap.Int64("vacation_id", id), zap.Error(err))
		return nil, err
	}
	if n == 0 {
		s.logger.Warn("vacation already decided", zap.Int64("vacation_id", id), zap.String("status", string(next)))
		return nil, domain.ErrVacationNotFound
	}
	vacationTransitions.WithLabelValues(string(next)).Inc()
	s.logger.Info("vacation decided",
		zap.Int64("vacation_id", id),
		zap.String("status", string(next)),
		zap.Int64("authorized_by", managerID),
	)

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *VacationService) Delete(ctx context.Context, id, actorID int64) error {
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.UserID != actorID {
		s.logger.Warn("delete vacation not owner", zap.Int64("vacation_id", id), zap.Int64("actor_id", actorID))
		return domain.ErrNotVacationOwner
	}
	if cur.Status != domain.StatusPending {
		return domain.ErrDeleteNotPending
	}

	n, err := s.repo.DeleteIfStatus(ctx, id, domain.StatusPending)
	if err != nil {
		s.logger.Error("delete vacation failed", zap.Int64("vacation_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return domain.ErrVacationNotFound
	}
	vacationTransitions.WithLabelValues("deleted").Inc()
	s.logger.Info("vacation deleted", zap.Int64("vacation_id", id), zap.Int64("user_id", actorID))
	return nil
}

// List manager 看全部待审批（带申请人信息），employee 只看自己的
func (s *VacationService) List(ctx context.Context, p auth.Principal) ([]domain.VacationRequest, error) {
	if auth.HasRole(p, auth.RoleManager) {
		return s.repo.ListByStatus(ctx, domain.StatusPending)
	}
	return s.repo.ListByOwner(ctx, p.ID)
}
