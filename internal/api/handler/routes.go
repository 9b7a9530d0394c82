package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/outreach-crm-api/internal/api/handler/router"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/reporting"
	"github.com/vfg2006/outreach-crm-api/pkg/middleware"
)

// Acesso por perfil; rotas públicas não levam middleware
var (
	anyRole        = []func(http.Handler) http.Handler{middleware.AllRoles()}
	adminOnly      = []func(http.Handler) http.Handler{middleware.AdminOnly()}
	managementOnly = []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()}
)

func route(method, path string, h http.Handler, middlewares []func(http.Handler) http.Handler) router.Route {
	return router.Route{Method: method, Path: path, Handler: h, Middlewares: middlewares}
}

func Healthcheck() []router.Route {
	return []router.Route{
		route(http.MethodGet, "/healthcheck", HealthcheckHandler(), nil),
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		route(http.MethodGet, "/metrics", MetricsHandler(gatherer), nil),
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		route(http.MethodPost, "/v1/login", Login(service), nil),
		route(http.MethodGet, "/v1/me", GetMe(service), anyRole),
		route(http.MethodPut, "/v1/me/password", ChangePassword(service), anyRole),
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		route(http.MethodGet, "/v1/users", ListUsers(service), adminOnly),
		route(http.MethodPost, "/v1/users", CreateUser(service), adminOnly),
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		route(http.MethodGet, "/v1/projects", ListProjects(service), anyRole),
		route(http.MethodGet, "/v1/projects/:id/report", GetProjectReport(service), anyRole),
		route(http.MethodGet, "/v1/projects/:id/periods", GetAvailablePeriods(service), anyRole),
		route(http.MethodGet, "/v1/projects/:id/cold-call-funnel", GetColdCallFunnel(service), anyRole),
		route(http.MethodPost, "/v1/projects/:id/refresh", RefreshProject(service), managementOnly),
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		route(http.MethodPost, "/v1/cron/:type/run", RunCronJob(services), managementOnly),
		route(http.MethodGet, "/v1/cron/status", GetCronStatus(services), managementOnly),
	}
}
