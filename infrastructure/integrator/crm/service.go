package crm

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	crmdomain "github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/domain"
	"github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type CRMIntegrator interface {
	GetProjectSnapshot(ctx context.Context, projectID string) (*domain.ProjectSnapshot, error)
	ListActiveProjects(ctx context.Context) ([]*domain.Project, error)
}

type CRMService struct {
	Client crmclient.Client
}

func New(client crmclient.Client) CRMIntegrator {
	return &CRMService{
		Client: client,
	}
}

// GetProjectSnapshot busca projeto, métricas, atividades e contatos em paralelo e devolve
// tudo já validado. Falha nas métricas do backend não impede o relatório.
func (s *CRMService) GetProjectSnapshot(ctx context.Context, projectID string) (*domain.ProjectSnapshot, error) {
	var (
		project       *crmdomain.Project
		analytics     *crmdomain.ProjectAnalytics
		activities    []crmdomain.Activity
		contacts      []crmdomain.Contact
		projectErr    error
		analyticsErr  error
		activitiesErr error
		contactsErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		project, projectErr = s.Client.GetProject(ctx, projectID)
	}()

	go func() {
		defer wg.Done()
		analytics, analyticsErr = s.Client.GetProjectAnalytics(ctx, projectID)
	}()

	go func() {
		defer wg.Done()
		activities, activitiesErr = s.Client.ListActivities(ctx, projectID)
	}()

	go func() {
		defer wg.Done()
		contacts, contactsErr = s.Client.ListContacts(ctx, projectID)
	}()

	wg.Wait()

	for _, err := range []error{projectErr, activitiesErr, contactsErr} {
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": projectID,
				"error":      err.Error(),
			}).Error("crm: falha ao buscar dados do projeto")
			return nil, err
		}
	}

	snapshot := &domain.ProjectSnapshot{
		Project:    project.ToDomain(),
		Activities: crmdomain.ActivitiesToDomain(activities),
		Contacts:   crmdomain.ContactsToDomain(contacts),
	}

	if analyticsErr != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": projectID,
			"error":      analyticsErr.Error(),
		}).Warn("crm: métricas do backend indisponíveis, taxas de reunião e ganho ficarão zeradas")
	} else {
		snapshot.Analytics = analytics.ToDomain()
	}

	logrus.WithFields(logrus.Fields{
		"project_id": projectID,
		"activities": len(snapshot.Activities),
		"contacts":   len(snapshot.Contacts),
	}).Debug("crm: dados do projeto carregados")

	return snapshot, nil
}

func (s *CRMService) ListActiveProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.Client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Project, 0, len(projects))
	for _, project := range projects {
		converted := project.ToDomain()
		if converted.Active && converted.ID != "" {
			active = append(active, converted)
		}
	}

	return active, nil
}
