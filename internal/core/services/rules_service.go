package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type rulesService struct {
	stateRepo     ports.StateRepository
	authorityRepo ports.AuthorityRepository
	electionRepo  ports.ElectionRepository
	popRepo       ports.PopulationRepository
	now           func() time.Time
}

func NewRulesService(
	stateRepo ports.StateRepository,
	authorityRepo ports.AuthorityRepository,
	electionRepo ports.ElectionRepository,
	popRepo ports.PopulationRepository,
) ports.RulesService {
	return &rulesService{
		stateRepo:     stateRepo,
		authorityRepo: authorityRepo,
		electionRepo:  electionRepo,
		popRepo:       popRepo,
		now:           time.Now,
	}
}

func (s *rulesService) StateRules(ctx context.Context, slug string) (*ports.StateRules, error) {
	state, err := s.stateRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	authority, err := s.authorityRepo.GetByStateCode(ctx, state.Code)
	if err != nil {
		// A state without snapshot data still gets a page.
		if !errors.Is(err, domain.ErrAuthorityNotFound) {
			return nil, err
		}
		authority = nil
	}

	elections, err := s.electionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	rules := &ports.StateRules{
		State:       *state,
		Elections:   electionViews(domain.UpcomingElectionsForState(elections, state.Code, today)),
		UsefulLinks: usefulLinks(state, authority),
	}

	if pop, err := s.popRepo.GetByFIPS(ctx, state.FIPS); err == nil && pop != nil {
		rules.Population = &ports.PopulationView{
			Count:   pop.Pop18,
			Display: humanize.Comma(pop.Pop18),
		}
	}

	if authority != nil {
		youth := &authority.YouthRegistration
		status := domain.PreregStatusFor(youth)
		rules.Eligibility = &ports.EligibilityView{
			Status:      status,
			Color:       domain.PreregStatusColors[status],
			BorderColor: domain.PreregStatusBorderColors[status],
			Text:        domain.VoterEligibilityText(youth),
			ImpactText:  domain.StudentImpactText(youth, now),
		}
		rules.Online = onlineBlock(authority)
		rules.ByMail = byMailBlock(authority)
	}

	return rules, nil
}

func electionViews(elections []domain.Election) []ports.ElectionView {
	views := make([]ports.ElectionView, 0, len(elections))
	for i := range elections {
		e := &elections[i]
		view := ports.ElectionView{
			Date:          e.Date,
			FormattedDate: domain.FormatElectionDate(e.Date),
			Description:   e.Description,
		}
		if deadline := domain.GetRegistrationDeadline(e); deadline != nil {
			view.RegisterBy = domain.FormatDeadlineSuffix(deadline)
		}
		views = append(views, view)
	}
	return views
}

func usefulLinks(state *domain.State, authority *domain.Authority) []ports.LinkView {
	links := []ports.LinkView{
		{
			Label: fmt.Sprintf("Conducting a Voter Registration Drive in %s", state.Name),
			URL:   fmt.Sprintf("https://fairelectionscenter.org/voter-registration-drive-guides/%s/", state.Slug),
		},
	}
	if authority != nil && authority.Registration.FormURL != nil {
		links = append(links, ports.LinkView{
			Label: "Paper Registration Form",
			URL:   *authority.Registration.FormURL,
		})
	}
	if authority != nil {
		if url := authority.YouthRegistration.OnlineRegistrationURL(); url != nil {
			links = append(links, ports.LinkView{
				Label: "Online Pre-registration",
				URL:   *url,
			})
		}
	}
	return links
}

func onlineBlock(authority *domain.Authority) *ports.InstructionBlock {
	if !authority.Registration.Online.Supported {
		return nil
	}
	reg := authority.Registration.Online.Instructions
	return instructionBlock("Registration Online:", &reg, authority.YouthRegistration.OnlineInstructions)
}

func byMailBlock(authority *domain.Authority) *ports.InstructionBlock {
	if !authority.Registration.ByMail.Supported {
		return nil
	}
	reg := concatByMailInstructions(&authority.Registration.ByMail)
	return instructionBlock("Registration by Mail:", reg, authority.YouthRegistration.ByMailInstructions)
}

// concatByMailInstructions joins the by-mail sub-instructions (id,
// signature, citizen, new voter) into one text with break-tag separators,
// matching how the channel instructions arrive from the feed.
func concatByMailInstructions(byMail *domain.ByMailRegistration) *string {
	var parts []string
	for _, p := range []*string{
		byMail.IDInstructions,
		byMail.SignatureInstructions,
		byMail.CitizenInstructions,
		byMail.NewVoterInstructions,
	} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, "<br>")
	return &joined
}

func instructionBlock(title string, regInstructions, preRegInstructions *string) *ports.InstructionBlock {
	regExtraction := domain.ExtractIDRequirements(regInstructions)
	preRegExtraction := domain.ExtractIDRequirements(preRegInstructions)

	block := &ports.InstructionBlock{
		Title:   title,
		Bullets: bulletViews(domain.MergeIDRequirements(regExtraction.Bullets, preRegExtraction.Bullets)),
	}
	block.Registration = domain.InstructionParagraphs(regExtraction.FullText)
	block.Preregistration = domain.InstructionParagraphs(preRegExtraction.FullText)
	return block
}

func bulletViews(types []domain.RequirementType) []ports.BulletView {
	views := make([]ports.BulletView, 0, len(types))
	for _, t := range types {
		req, ok := domain.LookupIDRequirement(t)
		if !ok {
			continue
		}
		views = append(views, ports.BulletView{
			Type:       t,
			Label:      req.Label,
			Definition: req.Definition,
		})
	}
	return views
}
