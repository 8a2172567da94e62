package domain

import (
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"

	MaxVacationDays = 60
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal approved / rejected 之后不再变化
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// VacationRequest 休假申请。User 仅在联表查询时填充（列表视图的冗余快照）
type VacationRequest struct {
	ID           int64
	UserID       int64
	User         *User
	From         time.Time
	To           time.Time
	Reason       string
	Status       Status
	AuthorizedBy *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewVacationRequest 构造待审批申请并校验不变量
func NewVacationRequest(userID int64, from, to time.Time, reason string) (*VacationRequest, error) {
	v := &VacationRequest{
		UserID: userID,
		From:   truncateDay(from),
		To:     truncateDay(to),
		Reason: strings.TrimSpace(reason),
		Status: StatusPending,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *VacationRequest) Validate() error {
	if strings.TrimSpace(v.Reason) == "" {
		return ErrEmptyReason
	}
	if v.From.After(v.To) {
		return ErrInvertedRange
	}
	if v.Days() > MaxVacationDays {
		return ErrVacationTooLong
	}
	return nil
}

// Days to - from 的自然日差（不含首日）
func (v *VacationRequest) Days() int {
	return int(truncateDay(v.To).Sub(truncateDay(v.From)).Hours() / 24)
}

// ParseDate 解析 YYYY-MM-DD，统一为 UTC 零点
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
