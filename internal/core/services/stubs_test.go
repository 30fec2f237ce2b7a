package services

import (
	"context"

	"github.com/thecivicscenter/prereg/internal/core/domain"
)

type stubStateRepo struct {
	states []domain.State
	err    error
}

func (s *stubStateRepo) GetAll(ctx context.Context) ([]domain.State, error) {
	return s.states, s.err
}

func (s *stubStateRepo) GetBySlug(ctx context.Context, slug string) (*domain.State, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.states {
		if s.states[i].Slug == slug {
			return &s.states[i], nil
		}
	}
	return nil, domain.ErrStateNotFound
}

type stubAuthorityRepo struct {
	authorities []domain.Authority
	replaced    []domain.Authority
	err         error
}

func (s *stubAuthorityRepo) ReplaceAll(ctx context.Context, authorities []domain.Authority) error {
	if s.err != nil {
		return s.err
	}
	s.replaced = authorities
	return nil
}

func (s *stubAuthorityRepo) GetAll(ctx context.Context) ([]domain.Authority, error) {
	return s.authorities, s.err
}

func (s *stubAuthorityRepo) GetByStateCode(ctx context.Context, code string) (*domain.Authority, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.authorities {
		if domain.StateCodeFromOcdID(s.authorities[i].OcdID) == code {
			return &s.authorities[i], nil
		}
	}
	return nil, domain.ErrAuthorityNotFound
}

type stubElectionRepo struct {
	elections []domain.Election
	replaced  []domain.Election
	err       error
}

func (s *stubElectionRepo) ReplaceAll(ctx context.Context, elections []domain.Election) error {
	if s.err != nil {
		return s.err
	}
	s.replaced = elections
	return nil
}

func (s *stubElectionRepo) GetAll(ctx context.Context) ([]domain.Election, error) {
	return s.elections, s.err
}

type stubPopulationRepo struct {
	populations []domain.StatePopulation
	replaced    []domain.StatePopulation
	err         error
}

func (s *stubPopulationRepo) ReplaceAll(ctx context.Context, populations []domain.StatePopulation) error {
	if s.err != nil {
		return s.err
	}
	s.replaced = populations
	return nil
}

func (s *stubPopulationRepo) GetAll(ctx context.Context) ([]domain.StatePopulation, error) {
	return s.populations, s.err
}

func (s *stubPopulationRepo) GetByFIPS(ctx context.Context, fips string) (*domain.StatePopulation, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.populations {
		if s.populations[i].FIPS == fips {
			return &s.populations[i], nil
		}
	}
	return nil, nil
}

type stubAuthorityFeed struct {
	authorities []domain.Authority
	err         error
}

func (s *stubAuthorityFeed) FetchAuthorities(ctx context.Context) ([]domain.Authority, error) {
	return s.authorities, s.err
}

type stubElectionFeed struct {
	elections []domain.Election
	err       error
}

func (s *stubElectionFeed) FetchElections(ctx context.Context) ([]domain.Election, error) {
	return s.elections, s.err
}

type stubPopulationFeed struct {
	populations []domain.StatePopulation
	err         error
}

func (s *stubPopulationFeed) FetchPopulations(ctx context.Context) ([]domain.StatePopulation, error) {
	return s.populations, s.err
}
