package reporting

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm"
	"github.com/vfg2006/outreach-crm-api/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/outreach-crm-api/infrastructure/repository"
	"github.com/vfg2006/outreach-crm-api/internal/config"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/internal/funnel"
	"github.com/vfg2006/outreach-crm-api/pkg/apiErrors"
	"github.com/vfg2006/outreach-crm-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service calcula os relatórios a partir dos dados do CRM e, com cache habilitado,
// guarda o último cálculo de cada projeto como snapshot
type Service struct {
	cfg                *config.Config
	crmService         crm.CRMIntegrator
	snapshotRepository repository.ReportSnapshotRepository
	metrics            *Metrics
	sequencer          *sequencer
	cacheTTL           time.Duration
	useCache           bool
	now                func() time.Time
}

// computedReports reúne tudo que uma única busca no CRM produz
type computedReports struct {
	sequence int64
	reports  map[domain.ViewMode]*domain.ProjectReportResponse
	coldCall *domain.ColdCallReportResponse
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(cfg *config.Config, crmService crm.CRMIntegrator, metrics *Metrics) *Service {
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}

	return &Service{
		cfg:        cfg,
		crmService: crmService,
		metrics:    metrics,
		sequencer:  newSequencer(time.Now),
		useCache:   false, // Inicialmente não usa cache
		now:        time.Now,
	}
}

// WithCache habilita o uso de snapshots dos relatórios
func (s *Service) WithCache(snapshotRepo repository.ReportSnapshotRepository, ttl time.Duration) *Service {
	s.snapshotRepository = snapshotRepo
	s.cacheTTL = ttl
	s.useCache = snapshotRepo != nil && ttl > 0
	return s
}

func (s *Service) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.crmService.ListActiveProjects(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar projetos do CRM")
		return nil, NewReportError(ErrBackendUnavailable, apiErrors.ErrExternalService, "", err.Error())
	}

	return projects, nil
}

func (s *Service) GetProjectReport(ctx context.Context, projectID string, mode domain.ViewMode) (*domain.ProjectReportResponse, error) {
	if err := validateRequest(projectID, mode); err != nil {
		return nil, err
	}

	cached := &domain.ProjectReportResponse{}
	if s.loadSnapshot(ctx, projectID, domain.SnapshotKindReport, mode, cached) {
		s.metrics.cacheHits.WithLabelValues(string(domain.SnapshotKindReport)).Inc()
		cached.Cached = true
		return cached, nil
	}

	computed, err := s.computeAndStore(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return computed.reports[mode], nil
}

func (s *Service) GetColdCallFunnel(ctx context.Context, projectID string) (*domain.ColdCallReportResponse, error) {
	if err := validateRequest(projectID, domain.ViewModeMonth); err != nil {
		return nil, err
	}

	cached := &domain.ColdCallReportResponse{}
	if s.loadSnapshot(ctx, projectID, domain.SnapshotKindColdCall, "", cached) {
		s.metrics.cacheHits.WithLabelValues(string(domain.SnapshotKindColdCall)).Inc()
		cached.Cached = true
		return cached, nil
	}

	computed, err := s.computeAndStore(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return computed.coldCall, nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context, projectID string, mode domain.ViewMode) (*domain.AvailablePeriods, error) {
	response, err := s.GetProjectReport(ctx, projectID, mode)
	if err != nil {
		return nil, err
	}

	periods := []string{}
	if response.Report != nil && response.Report.Periods != nil {
		periods = response.Report.Periods
	}

	return &domain.AvailablePeriods{
		ViewMode: mode,
		Periods:  periods,
	}, nil
}

func (s *Service) RefreshProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return NewReportError(ErrMissingProjectID, apiErrors.ErrMissingRequiredData, "", "")
	}

	_, err := s.computeAndStore(ctx, projectID)
	return err
}

// computeAndStore busca os dados do projeto uma única vez e calcula os relatórios mensal, anual
// e o funil de cold calling. Só grava os snapshots se nenhuma busca mais nova começou nesse meio tempo.
func (s *Service) computeAndStore(ctx context.Context, projectID string) (*computedReports, error) {
	logger := log.ForContext(ctx).WithField("project_id", projectID)

	sequence := s.sequencer.Next(projectID)

	start := s.now()
	snapshot, err := s.crmService.GetProjectSnapshot(ctx, projectID)
	s.metrics.fetchSeconds.Observe(s.now().Sub(start).Seconds())
	if err != nil {
		s.metrics.computations.WithLabelValues(resultError).Inc()
		return nil, translateCRMError(projectID, err)
	}

	s.metrics.activities.Observe(float64(len(snapshot.Activities)))

	computed := s.compute(snapshot, sequence)

	if !s.useCache {
		s.metrics.computations.WithLabelValues(resultSuccess).Inc()
		return computed, nil
	}

	if !s.sequencer.IsLatest(projectID, sequence) {
		s.metrics.computations.WithLabelValues(resultSuperseded).Inc()
		logger.Info("Cálculo superado por uma busca mais recente, snapshot não será gravado")
		return computed, nil
	}

	s.metrics.computations.WithLabelValues(resultSuccess).Inc()
	s.storeSnapshots(ctx, projectID, computed)

	return computed, nil
}

func (s *Service) compute(snapshot *domain.ProjectSnapshot, sequence int64) *computedReports {
	computedAt := s.now().UTC()
	location := time.UTC
	if s.cfg != nil && s.cfg.Report.Location != nil {
		location = s.cfg.Report.Location
	}

	breakdown := funnel.StatusBreakdown(snapshot.Activities)

	computed := &computedReports{
		sequence: sequence,
		reports:  make(map[domain.ViewMode]*domain.ProjectReportResponse, 2),
	}

	for _, mode := range []domain.ViewMode{domain.ViewModeMonth, domain.ViewModeYear} {
		report := funnel.ComputeReport(snapshot.Activities, snapshot.Contacts, mode, funnel.WithLocation(location))
		computed.reports[mode] = &domain.ProjectReportResponse{
			Project:         snapshot.Project,
			Report:          report,
			Totals:          report.Totals(),
			StatusBreakdown: breakdown,
			ComputedAt:      computedAt,
		}
	}

	coldCall := funnel.ComputeColdCallFunnel(snapshot.Activities, snapshot.Contacts)
	computed.coldCall = &domain.ColdCallReportResponse{
		Project:    snapshot.Project,
		Funnel:     coldCall,
		Summary:    funnel.ComputeSummary(coldCall.Counts, snapshot.Analytics),
		ComputedAt: computedAt,
	}

	return computed
}

// storeSnapshots grava os três relatórios. Falha no banco não impede a resposta.
func (s *Service) storeSnapshots(ctx context.Context, projectID string, computed *computedReports) {
	logger := log.ForContext(ctx).WithField("project_id", projectID)

	type entry struct {
		kind    domain.SnapshotKind
		mode    domain.ViewMode
		payload any
	}

	entries := []entry{
		{domain.SnapshotKindReport, domain.ViewModeMonth, computed.reports[domain.ViewModeMonth]},
		{domain.SnapshotKindReport, domain.ViewModeYear, computed.reports[domain.ViewModeYear]},
		{domain.SnapshotKindColdCall, "", computed.coldCall},
	}

	for _, e := range entries {
		payload, err := json.Marshal(e.payload)
		if err != nil {
			logger.WithError(err).Error("Erro ao serializar relatório")
			continue
		}

		err = s.snapshotRepository.SaveOrUpdate(&domain.ReportSnapshot{
			ProjectID:  projectID,
			Kind:       e.kind,
			ViewMode:   e.mode,
			Payload:    payload,
			Sequence:   computed.sequence,
			ComputedAt: computed.coldCall.ComputedAt,
		})
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"kind":      e.kind,
				"view_mode": e.mode,
			}).Warn("Erro ao gravar snapshot de relatório")
		}
	}
}

// loadSnapshot preenche out com o snapshot armazenado quando ele existe e ainda está dentro do TTL
func (s *Service) loadSnapshot(ctx context.Context, projectID string, kind domain.SnapshotKind, mode domain.ViewMode, out any) bool {
	if !s.useCache {
		return false
	}

	snapshot, err := s.snapshotRepository.GetLatest(projectID, kind, mode)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("project_id", projectID).Warn("Erro ao buscar snapshot de relatório, recalculando")
		return false
	}

	if !snapshot.IsFresh(s.cacheTTL, s.now()) {
		return false
	}

	if err := json.Unmarshal(snapshot.Payload, out); err != nil {
		log.ForContext(ctx).WithError(err).WithField("project_id", projectID).Warn("Snapshot de relatório inválido, recalculando")
		return false
	}

	return true
}

func validateRequest(projectID string, mode domain.ViewMode) error {
	if projectID == "" {
		return NewReportError(ErrMissingProjectID, apiErrors.ErrMissingRequiredData, "", "")
	}

	if mode != domain.ViewModeMonth && mode != domain.ViewModeYear {
		return NewReportError(domain.ErrInvalidViewMode, apiErrors.ErrInvalidFormat, projectID, string(mode))
	}

	return nil
}

func translateCRMError(projectID string, err error) error {
	if errors.Is(err, crmclient.ErrNotFound) {
		return NewReportError(ErrProjectNotFound, apiErrors.ErrProjectNotFound, projectID, "")
	}

	return NewReportError(ErrBackendUnavailable, apiErrors.ErrExternalService, projectID, err.Error())
}

var _ Reporter = (*Service)(nil)
