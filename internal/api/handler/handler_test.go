package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/internal/scheduler"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/outreach-crm-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/outreach-crm-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/outreach-crm-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-crm-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newRequest(method, target, body string, params httprouter.Params) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
	return req.WithContext(ctx)
}

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func projectParams(id string) httprouter.Params {
	return httprouter.Params{{Key: "id", Value: id}}
}

func TestGetProjectReport(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(reporter *reportingmocks.MockReporter)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Relatório mensal por padrão",
			target: "/v1/projects/PRJ001/report",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().GetProjectReport(gomock.Any(), "PRJ001", domain.ViewModeMonth).Return(&domain.ProjectReportResponse{
					Report: &domain.Report{
						ViewMode: domain.ViewModeMonth,
						Periods:  []string{"Jan '24"},
						Metrics:  map[string]*domain.MetricRow{"Jan '24": {ConversationsInProgress: 1}},
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.ProjectReportResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, []string{"Jan '24"}, body.Report.Periods)
				assert.Equal(t, 1, body.Report.Metrics["Jan '24"].ConversationsInProgress)
			},
		},
		{
			name:   "Relatório anual",
			target: "/v1/projects/PRJ001/report?view=YEAR",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().GetProjectReport(gomock.Any(), "PRJ001", domain.ViewModeYear).Return(&domain.ProjectReportResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "View inválida",
			target:     "/v1/projects/PRJ001/report?view=week",
			setup:      func(reporter *reportingmocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Projeto não encontrado",
			target: "/v1/projects/PRJ001/report",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().GetProjectReport(gomock.Any(), "PRJ001", domain.ViewModeMonth).
					Return(nil, reporting.NewReportError(reporting.ErrProjectNotFound, apiErrors.ErrProjectNotFound, "PRJ001", ""))
			},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrProjectNotFound, body.Code)
			},
		},
		{
			name:   "Backend do CRM fora do ar",
			target: "/v1/projects/PRJ001/report",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().GetProjectReport(gomock.Any(), "PRJ001", domain.ViewModeMonth).
					Return(nil, reporting.NewReportError(reporting.ErrBackendUnavailable, apiErrors.ErrExternalService, "PRJ001", "502"))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "Erro inesperado",
			target: "/v1/projects/PRJ001/report",
			setup: func(reporter *reportingmocks.MockReporter) {
				reporter.EXPECT().GetProjectReport(gomock.Any(), "PRJ001", domain.ViewModeMonth).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportingmocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			rec := httptest.NewRecorder()
			GetProjectReport(reporter).ServeHTTP(rec, newRequest(http.MethodGet, tt.target, "", projectParams("PRJ001")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetAvailablePeriods(gomock.Any(), "PRJ001", domain.ViewModeYear).
		Return(&domain.AvailablePeriods{ViewMode: domain.ViewModeYear, Periods: []string{"2023", "2024"}}, nil)

	rec := httptest.NewRecorder()
	GetAvailablePeriods(reporter).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/projects/PRJ001/periods?view=year", "", projectParams("PRJ001")))

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.AvailablePeriods
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2023", "2024"}, body.Periods)
}

func TestGetColdCallFunnel(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetColdCallFunnel(gomock.Any(), "PRJ001").Return(&domain.ColdCallReportResponse{
		Funnel:  &domain.ColdCallFunnel{Counts: domain.ColdCallCounts{ProspectData: 3, SQL: 1}},
		Summary: domain.SummaryRatios{SQLRate: 33.33},
	}, nil)

	rec := httptest.NewRecorder()
	GetColdCallFunnel(reporter).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/projects/PRJ001/cold-call-funnel", "", projectParams("PRJ001")))

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.ColdCallReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 33.33, body.Summary.SQLRate)
	assert.Equal(t, 3, body.Funnel.Counts.ProspectData)
}

func TestRefreshProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().RefreshProject(gomock.Any(), "PRJ001").Return(nil)

	rec := httptest.NewRecorder()
	RefreshProject(reporter).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/projects/PRJ001/refresh", "", projectParams("PRJ001")))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	RefreshProject(reporter).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/projects//refresh", "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().ListProjects(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	ListProjects(reporter).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/projects", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

type fakeSyncJob struct {
	err       error
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() error {
	f.triggered++
	return f.err
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.triggered > 0}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		job        *fakeSyncJob
		wantStatus int
		wantCode   string
	}{
		{name: "Dispara atualização de relatórios", cronType: CronJobTypeReports, job: &fakeSyncJob{}, wantStatus: http.StatusAccepted},
		{name: "Dispara todas", cronType: CronJobTypeAll, job: &fakeSyncJob{}, wantStatus: http.StatusAccepted},
		{
			name:       "Atualização já em andamento",
			cronType:   CronJobTypeReports,
			job:        &fakeSyncJob{err: scheduler.ErrSyncAlreadyRunning},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrSyncAlreadyRunning,
		},
		{
			name:       "Tipo desconhecido",
			cronType:   "meta",
			job:        &fakeSyncJob{},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrUnknownSyncType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := CronJobServices{ReportSnapshotSyncService: tt.job}
			params := httprouter.Params{{Key: "type", Value: tt.cronType}}

			rec := httptest.NewRecorder()
			RunCronJob(services).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", "", params))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{ReportSnapshotSyncService: &fakeSyncJob{triggered: 1}}

	rec := httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/cron/status", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reports":{"sync_running":true}}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().LoginUser("ana@acme.com", "Senha@123").Return("token-jwt", nil)
	rec := httptest.NewRecorder()
	Login(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/login", `{"email":"ana@acme.com","password":"Senha@123"}`, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"token-jwt"}`, rec.Body.String())

	auth.EXPECT().LoginUser("ana@acme.com", "errada").
		Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
	rec = httptest.NewRecorder()
	Login(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/login", `{"email":"ana@acme.com","password":"errada"}`, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	Login(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/login", `{`, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().GetUserProfile(7).Return(&domain.User{ID: 7, Name: "Ana"}, nil)

	rec := httptest.NewRecorder()
	req := withClaims(newRequest(http.MethodGet, "/v1/me", "", nil), &domain.Claims{UserID: 7})
	GetMe(auth).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)

	rec = httptest.NewRecorder()
	GetMe(auth).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/me", "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().ChangePassword(7, "Antiga@123", "Nova@1234").Return(nil)
	rec := httptest.NewRecorder()
	req := withClaims(newRequest(http.MethodPut, "/v1/me/password", `{"current_password":"Antiga@123","new_password":"Nova@1234"}`, nil), &domain.Claims{UserID: 7})
	ChangePassword(auth).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	auth.EXPECT().ChangePassword(7, "errada", "Nova@1234").
		Return(authenticating.NewUserAuthError(authenticating.ErrWrongPassword, apiErrors.ErrInvalidCredentials, 7, ""))
	rec = httptest.NewRecorder()
	req = withClaims(newRequest(http.MethodPut, "/v1/me/password", `{"current_password":"errada","new_password":"Nova@1234"}`, nil), &domain.Claims{UserID: 7})
	ChangePassword(auth).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(req *domain.CreateUserRequest) (*domain.User, error) {
		assert.Equal(t, "bia@acme.com", req.Email)
		return &domain.User{ID: 10, Email: req.Email, RoleID: domain.RoleSDR}, nil
	})

	rec := httptest.NewRecorder()
	CreateUser(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/users", `{"name":"Bia","email":"bia@acme.com","password":"Senha@123"}`, nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	auth.EXPECT().CreateUser(gomock.Any()).
		Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado"))
	rec = httptest.NewRecorder()
	CreateUser(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/users", `{"name":"Bia","email":"bia@acme.com","password":"Senha@123"}`, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ListUser().Return(nil, nil)

	rec := httptest.NewRecorder()
	ListUsers(auth).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/users", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
