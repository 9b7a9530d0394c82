package crmclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	crmdomain "github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/domain"
)

func (c *CRMClient) GetProject(ctx context.Context, projectID string) (*crmdomain.Project, error) {
	var project crmdomain.Project
	if err := c.get(ctx, "/projects/"+projectID, nil, &project); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar o projeto %s", projectID)
	}

	return &project, nil
}

func (c *CRMClient) ListProjects(ctx context.Context) ([]crmdomain.Project, error) {
	projects, err := listAll[crmdomain.Project](ctx, c, "/projects", url.Values{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os projetos")
	}

	return projects, nil
}

func (c *CRMClient) GetProjectAnalytics(ctx context.Context, projectID string) (*crmdomain.ProjectAnalytics, error) {
	var analytics crmdomain.ProjectAnalytics
	if err := c.get(ctx, "/projects/"+projectID+"/analytics", nil, &analytics); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar as métricas do projeto %s", projectID)
	}

	return &analytics, nil
}
