package router

import (
	"vacation-api/internal/domain"
)

type userView struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employeeCode"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type ownerView struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employeeCode"`
	Role         string `json:"role"`
}

type vacationView struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	User         *ownerView `json:"user,omitempty"`
	From         string     `json:"from"`
	To           string     `json:"to"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	AuthorizedBy *int64     `json:"authorizedBy"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		EmployeeCode: u.EmployeeCode,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt.UTC().Format(domain.TimestampLayout),
		UpdatedAt:    u.UpdatedAt.UTC().Format(domain.TimestampLayout),
	}
}

func toUserViews(us []domain.User) []userView {
	out := make([]userView, 0, len(us))
	for i := range us {
		out = append(out, toUserView(&us[i]))
	}
	return out
}

func toVacationView(v *domain.VacationRequest) vacationView {
	out := vacationView{
		ID:           v.ID,
		UserID:       v.UserID,
		From:         v.From.Format(domain.DateLayout),
		To:           v.To.Format(domain.DateLayout),
		Reason:       v.Reason,
		Status:       string(v.Status),
		AuthorizedBy: v.AuthorizedBy,
		CreatedAt:    v.CreatedAt.UTC().Format(domain.TimestampLayout),
		UpdatedAt:    v.UpdatedAt.UTC().Format(domain.TimestampLayout),
	}
	if u := v.User; u != nil {
		out.User = &ownerView{ID: u.ID, Email: u.Email, Name: u.Name, EmployeeCode: u.EmployeeCode, Role: u.Role.String()}
	}
	return out
}

func toVacationViews(vs []domain.VacationRequest) []vacationView {
	out := make([]vacationView, 0, len(vs))
	for i := range vs {
		out = append(out, toVacationView(&vs[i]))
	}
	return out
}
