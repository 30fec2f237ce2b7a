package services

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type overviewService struct {
	stateRepo     ports.StateRepository
	authorityRepo ports.AuthorityRepository
	electionRepo  ports.ElectionRepository
	popRepo       ports.PopulationRepository
	now           func() time.Time
}

func NewOverviewService(
	stateRepo ports.StateRepository,
	authorityRepo ports.AuthorityRepository,
	electionRepo ports.ElectionRepository,
	popRepo ports.PopulationRepository,
) ports.OverviewService {
	return &overviewService{
		stateRepo:     stateRepo,
		authorityRepo: authorityRepo,
		electionRepo:  electionRepo,
		popRepo:       popRepo,
		now:           time.Now,
	}
}

// TableRows builds the national comparison table, one row per state in the
// reference-list order.
func (s *overviewService) TableRows(ctx context.Context) ([]ports.TableRow, error) {
	states, err := s.stateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	authoritiesByState, err := s.authoritiesByState(ctx)
	if err != nil {
		return nil, err
	}
	elections, err := s.electionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	popsByFIPS, err := s.populationsByFIPS(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")

	rows := make([]ports.TableRow, 0, len(states))
	for _, state := range states {
		authority := authoritiesByState[state.Code]

		var youth *domain.YouthRegistration
		if authority != nil {
			youth = &authority.YouthRegistration
		}
		status := domain.PreregStatusFor(youth)

		row := ports.TableRow{
			Code:        state.Code,
			Name:        state.Name,
			FIPS:        state.FIPS,
			Slug:        state.Slug,
			Status:      status,
			Color:       domain.PreregStatusColors[status],
			BorderColor: domain.PreregStatusBorderColors[status],
		}

		if youth != nil {
			row.EligibilityText = domain.VoterEligibilityText(youth)
		}

		if next := domain.NextElectionForState(elections, state.Code, today); next != nil {
			row.NextElection = &ports.ElectionView{
				Date:          next.Date,
				FormattedDate: domain.FormatElectionDate(next.Date),
				Description:   next.Description,
			}
		}

		if pop := popsByFIPS[state.FIPS]; pop != nil {
			row.Pop18 = pop.Pop18
		}
		row.Pop18Display = humanize.Comma(row.Pop18)

		if authority != nil {
			row.ByMailSupported = authority.Registration.ByMail.Supported
			row.OnlineSupported = authority.Registration.Online.Supported
			row.RequiresDMVID = requiresDMVID(authority)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// MapEntries colors every state for the national pre-registration map.
func (s *overviewService) MapEntries(ctx context.Context) ([]ports.MapEntry, error) {
	states, err := s.stateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	authoritiesByState, err := s.authoritiesByState(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.MapEntry, 0, len(states))
	for _, state := range states {
		var youth *domain.YouthRegistration
		if authority := authoritiesByState[state.Code]; authority != nil {
			youth = &authority.YouthRegistration
		}
		status := domain.PreregStatusFor(youth)

		entries = append(entries, ports.MapEntry{
			FIPS:        state.FIPS,
			Code:        state.Code,
			Slug:        state.Slug,
			Status:      status,
			Color:       domain.PreregStatusColors[status],
			BorderColor: domain.PreregStatusBorderColors[status],
		})
	}

	return entries, nil
}

func (s *overviewService) authoritiesByState(ctx context.Context) (map[string]*domain.Authority, error) {
	authorities, err := s.authorityRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byState := make(map[string]*domain.Authority, len(authorities))
	for i := range authorities {
		byState[domain.StateCodeFromOcdID(authorities[i].OcdID)] = &authorities[i]
	}
	return byState, nil
}

func (s *overviewService) populationsByFIPS(ctx context.Context) (map[string]*domain.StatePopulation, error) {
	populations, err := s.popRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byFIPS := make(map[string]*domain.StatePopulation, len(populations))
	for i := range populations {
		byFIPS[populations[i].FIPS] = &populations[i]
	}
	return byFIPS, nil
}

// requiresDMVID reports whether the STATE_DL_OR_ID bullet fires on the
// online registration instructions, falling back to the youth online
// instructions when the adult channel has none.
func requiresDMVID(authority *domain.Authority) bool {
	instructions := &authority.Registration.Online.Instructions
	if *instructions == "" {
		instructions = authority.YouthRegistration.OnlineInstructions
	}
	extraction := domain.ExtractIDRequirements(instructions)
	for _, t := range extraction.Bullets {
		if t == domain.StateDLOrID {
			return true
		}
	}
	return false
}
