package crmclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	crmdomain "github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/outreach-crm-api/internal/config"
	"github.com/vfg2006/outreach-crm-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound é retornado quando o backend responde 404
var ErrNotFound = errors.New("crm: recurso não encontrado")

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	GetProject(ctx context.Context, projectID string) (*crmdomain.Project, error)
	ListProjects(ctx context.Context) ([]crmdomain.Project, error)
	GetProjectAnalytics(ctx context.Context, projectID string) (*crmdomain.ProjectAnalytics, error)
	ListActivities(ctx context.Context, projectID string) ([]crmdomain.Activity, error)
	ListContacts(ctx context.Context, projectID string) ([]crmdomain.Contact, error)
}

type CRMClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	timeout    time.Duration
	pageSize   int
	backoff    utils.Backoff
}

func NewClient(cfg *config.Config) Client {
	return &CRMClient{
		httpClient: &http.Client{},
		baseURL:    cfg.CRM.BaseURL,
		token:      cfg.CRM.APIToken,
		timeout:    cfg.CRM.Timeout(),
		pageSize:   cfg.CRM.PageSize,
		backoff:    utils.NewBackoff(cfg.CRM.RetryBase(), cfg.CRM.MaxRetries),
	}
}

// StatusError representa uma resposta do backend fora da faixa 2xx
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("crm: requisição falhou com status %d", e.StatusCode)
	}
	return fmt.Sprintf("crm: requisição falhou com status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

func (e *StatusError) retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// get executa um GET no backend e decodifica o corpo em out. Falhas de transporte e respostas 5xx
// são repetidas com backoff exponencial.
func (c *CRMClient) get(ctx context.Context, resource string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = query.Encode()

	return c.backoff.Do(ctx, func(attempt int) error {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"url":     endpoint.String(),
				"attempt": attempt,
			}).Warn("crm: repetindo requisição")
		}

		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return utils.Permanent(errors.Wrap(err, "erro ao criar a requisição"))
		}

		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return utils.Permanent(errors.Wrap(ctx.Err(), "requisição cancelada"))
			}
			return errors.Wrap(err, "erro ao executar a requisição")
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := readStatusError(resp)
			if statusErr.retryable() {
				return statusErr
			}
			return utils.Permanent(statusErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return utils.Permanent(errors.Wrap(err, "erro ao decodificar a resposta"))
		}

		return nil
	})
}

func readStatusError(resp *http.Response) *StatusError {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return statusErr
	}

	var payload crmdomain.ErrorResponse
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			statusErr.Message = payload.Message
		} else {
			statusErr.Message = payload.Error
		}
		return statusErr
	}

	statusErr.Message = string(body)
	return statusErr
}
