package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/domain"
	"vacation-api/internal/service"
	"vacation-api/internal/transport/http/ez"
)

// 用户管理仅 manager 可用
type userModule struct{ svc *service.UserService }

type userIn struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employeeCode"`
	Role         string `json:"role"`
}

func (in *userIn) input() domain.UserInput {
	return domain.UserInput{
		Email:        in.Email,
		Password:     in.Password,
		Name:         in.Name,
		EmployeeCode: in.EmployeeCode,
		Role:         auth.Role(in.Role),
	}
}

func (m userModule) Mount(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[userIn, userView]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: ez.BindJSON,
		Role:   auth.RoleManager,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, _ auth.Principal, in *userIn) (userView, error) {
			u, err := m.svc.Create(c.Request.Context(), in.input())
			if err != nil {
				return userView{}, err
			}
			return toUserView(u), nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []userView]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindNone,
		Role:   auth.RoleManager,
		Handler: func(c *gin.Context, _ auth.Principal, _ *struct{}) ([]userView, error) {
			us, err := m.svc.List(c.Request.Context())
			if err != nil {
				return nil, err
			}
			return toUserViews(us), nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, userView]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Role:   auth.RoleManager,
		Handler: func(c *gin.Context, _ auth.Principal, _ *struct{}) (userView, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return userView{}, err
			}
			u, err := m.svc.Get(c.Request.Context(), id)
			if err != nil {
				return userView{}, err
			}
			return toUserView(u), nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []vacationView]{
		Method: http.MethodGet,
		Path:   "/users/:id/vacations",
		Binder: ez.BindNone,
		Role:   auth.RoleManager,
		Handler: func(c *gin.Context, _ auth.Principal, _ *struct{}) ([]vacationView, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			vs, err := m.svc.ListVacations(c.Request.Context(), id)
			if err != nil {
				return nil, err
			}
			return toVacationViews(vs), nil
		},
	})

	ez.RegisterAction(e, ez.Action[userIn, userView]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: ez.BindJSON,
		Role:   auth.RoleManager,
		Handler: func(c *gin.Context, _ auth.Principal, in *userIn) (userView, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return userView{}, err
			}
			u, err := m.svc.Update(c.Request.Context(), id, in.input())
			if err != nil {
				return userView{}, err
			}
			return toUserView(u), nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Role:   auth.RoleManager,
		Handler: func(c *gin.Context, p auth.Principal, _ *struct{}) (gin.H, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			if err := m.svc.Delete(c.Request.Context(), p.ID, id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
