package handler

import (
	"net/http"

	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-manager-api/internal/api/handler/router"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/charting"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/customizing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/managing"
	"github.com/vfg2006/portfolio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/portfolio-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Portfolio(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/portfolio",
			Method:      http.MethodGet,
			Handler:     GetPortfolio(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Projects(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects",
			Method:      http.MethodGet,
			Handler:     ListProjects(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects",
			Method:      http.MethodPost,
			Handler:     CreateProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodGet,
			Handler:     GetProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/projects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProject(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Milestones(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/milestones",
			Method:      http.MethodGet,
			Handler:     ListMilestones(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones",
			Method:      http.MethodPost,
			Handler:     CreateMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/milestones/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/milestones/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMilestone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/milestones/:id/updates",
			Method:      http.MethodGet,
			Handler:     ListMilestoneUpdates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones/:id/updates",
			Method:      http.MethodPost,
			Handler:     AddMilestoneUpdate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Lookups(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/lookups",
			Method:      http.MethodGet,
			Handler:     ListLookups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/lookups",
			Method:      http.MethodPost,
			Handler:     CreateLookup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/lookups/:id",
			Method:      http.MethodPut,
			Handler:     UpdateLookup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/lookups/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteLookup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/groups",
			Method:      http.MethodGet,
			Handler:     GetGroups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/drilldown",
			Method:      http.MethodGet,
			Handler:     GetDrillDown(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/filters/reconcile",
			Method:      http.MethodGet,
			Handler:     ReconcileFilters(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/fields",
			Method:      http.MethodGet,
			Handler:     ListReportFields(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports",
			Method:      http.MethodPost,
			Handler:     BuildReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/export",
			Method:      http.MethodPost,
			Handler:     ExportReportCSV(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/milestones/:id/updates/export",
			Method:      http.MethodGet,
			Handler:     ExportMilestoneUpdatesCSV(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Gantt(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects/:id/gantt",
			Method:      http.MethodGet,
			Handler:     GetProjectGantt(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service customizing.Customizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/layout",
			Method:      http.MethodGet,
			Handler:     GetDashboardLayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/layout",
			Method:      http.MethodPut,
			Handler:     SaveDashboardLayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/layout",
			Method:      http.MethodDelete,
			Handler:     ResetDashboardLayout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Snapshots(snapshotRepository repository.SnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots/periods",
			Method:      http.MethodGet,
			Handler:     GetSnapshotPeriods(snapshotRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/snapshots/periods/:period",
			Method:      http.MethodGet,
			Handler:     GetSnapshotByPeriod(snapshotRepository),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
