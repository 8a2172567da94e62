package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/domain"
	"vacation-api/internal/service"
	"vacation-api/internal/transport/http/ez"
)

type vacationModule struct{ svc *service.VacationService }

type createVacationIn struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (m vacationModule) Mount(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, []vacationView]{
		Method: http.MethodGet,
		Path:   "/vacations",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, p auth.Principal, _ *struct{}) ([]vacationView, error) {
			vs, err := m.svc.List(c.Request.Context(), p)
			if err != nil {
				return nil, err
			}
			return toVacationViews(vs), nil
		},
	})

	ez.RegisterAction(e, ez.Action[createVacationIn, vacationView]{
		Method: http.MethodPost,
		Path:   "/vacations",
		Binder: ez.BindJSON,
		Role:   auth.RoleEmployee,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, p auth.Principal, in *createVacationIn) (vacationView, error) {
			from, err := domain.ParseDate(in.StartDate)
			if err != nil {
				return vacationView{}, err
			}
			to, err := domain.ParseDate(in.EndDate)
			if err != nil {
				return vacationView{}, err
			}
			v, err := m.svc.Create(c.Request.Context(), p.ID, from, to, in.Reason)
			if err != nil {
				return vacationView{}, err
			}
			return toVacationView(v), nil
		},
	})

	type decideFn func(s *service.VacationService, ctx context.Context, id, managerID int64) (*domain.VacationRequest, error)
	decide := func(path string, fn decideFn) {
		ez.RegisterAction(e, ez.Action[struct{}, vacationView]{
			Method: http.MethodPut,
			Path:   path,
			Binder: ez.BindNone,
			Role:   auth.RoleManager,
			Handler: func(c *gin.Context, p auth.Principal, _ *struct{}) (vacationView, error) {
				id, err := ez.ParamID(c, "id")
				if err != nil {
					return vacationView{}, err
				}
				v, err := fn(m.svc, c.Request.Context(), id, p.ID)
				if err != nil {
					return vacationView{}, err
				}
				return toVacationView(v), nil
			},
		})
	}
	decide("/vacations/:id/approve", (*service.VacationService).Approve)
	decide("/vacations/:id/reject", (*service.VacationService).Reject)

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/vacations/:id",
		Binder: ez.BindNone,
		Role:   auth.RoleEmployee,
		Handler: func(c *gin.Context, p auth.Principal, _ *struct{}) (gin.H, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			if err := m.svc.Delete(c.Request.Context(), id, p.ID); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
