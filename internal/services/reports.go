package services

import (
	"strings"

	"github.com/mrlokans/fleet/internal/database/memory"
	"github.com/mrlokans/fleet/internal/entities"
)

// ReportService coordinates reports. A blank comment is answered with
// ErrInvalidInput ("no report created") instead of a validation error.
type ReportService struct {
	repo *memory.Repository[*entities.Report]
	recorder
}

func (s *ReportService) Create(comment string) (*entities.Report, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrInvalidInput
	}

	report, err := entities.NewReport(comment)
	if err == nil {
		err = s.repo.Add(report)
	}
	if err != nil {
		s.record(entities.AuditEventCreate, entities.EntityReport, "", err)
		return nil, err
	}
	s.record(entities.AuditEventCreate, entities.EntityReport, report.ID, nil)
	return report, nil
}

func (s *ReportService) Get(id string) (*entities.Report, bool) {
	return s.repo.Get(id)
}

func (s *ReportService) GetAll() []*entities.Report {
	return s.repo.GetAll()
}

func (s *ReportService) Update(id string, req entities.ReportUpdate) (*entities.Report, error) {
	if req.Comment != nil {
		comment := strings.TrimSpace(*req.Comment)
		if comment == "" {
			return nil, ErrInvalidInput
		}
		req.Comment = &comment
	}

	report, ok, err := s.repo.Update(id, func(r *entities.Report) error {
		return r.Update(req)
	})
	if !ok {
		return nil, missing(entities.EntityReport, id)
	}
	s.record(entities.AuditEventUpdate, entities.EntityReport, id, err)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Delete removes the report and returns what was removed. Buses keep the
// identifier; readers skip it.
func (s *ReportService) Delete(id string) (*entities.Report, bool) {
	report, ok := s.repo.Get(id)
	if !ok {
		return nil, false
	}
	s.repo.Delete(id)
	s.record(entities.AuditEventDelete, entities.EntityReport, id, nil)
	return report, true
}
