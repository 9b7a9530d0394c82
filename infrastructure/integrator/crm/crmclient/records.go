package crmclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	crmdomain "github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/domain"
)

// Limite de páginas por listagem, evita laço infinito se o backend ignorar a paginação
const maxPages = 1000

func (c *CRMClient) ListActivities(ctx context.Context, projectID string) ([]crmdomain.Activity, error) {
	activities, err := listAll[crmdomain.Activity](ctx, c, "/activities", url.Values{"projectId": {projectID}})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar as atividades do projeto %s", projectID)
	}

	return activities, nil
}

func (c *CRMClient) ListContacts(ctx context.Context, projectID string) ([]crmdomain.Contact, error) {
	contacts, err := listAll[crmdomain.Contact](ctx, c, "/contacts", url.Values{"projectId": {projectID}})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar os contatos do projeto %s", projectID)
	}

	return contacts, nil
}

func listAll[T any](ctx context.Context, c *CRMClient, resource string, filters url.Values) ([]T, error) {
	items := make([]T, 0)

	for page := 1; page <= maxPages; page++ {
		query := url.Values{}
		for key, values := range filters {
			query[key] = values
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(c.pageSize))

		var response crmdomain.Page[T]
		if err := c.get(ctx, resource, query, &response); err != nil {
			return nil, errors.Wrapf(err, "página %d", page)
		}

		items = append(items, response.Data...)

		if len(response.Data) == 0 || !response.HasNext(page) {
			return items, nil
		}
	}

	return nil, errors.Errorf("paginação de %s excedeu %d páginas", resource, maxPages)
}
