package domain

import "context"

//go:generate mockgen -destination mocks/mock_portfolio_service.go -package mocks github.com/rllL1/portfolio/internal/domain PortfolioService

// SkillGroup is one category column of the skills section
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []*Skill      `json:"skills"`
}

// Portfolio is everything the public page needs in one document
type Portfolio struct {
	Hero        *HeroSection    `json:"hero"`
	Settings    *SiteSettings   `json:"settings"`
	SkillGroups []SkillGroup    `json:"skill_groups"`
	Projects    []*Project      `json:"projects"`
	Work        []*TimelineItem `json:"work"`
	Education   []*TimelineItem `json:"education"`
	SocialLinks []*SocialLink   `json:"social_links"`
}

// GroupSkills buckets skills by category in SkillCategories order, dropping empty groups
func GroupSkills(skills []*Skill) []SkillGroup {
	byCategory := make(map[SkillCategory][]*Skill)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	groups := make([]SkillGroup, 0, len(SkillCategories))
	for _, c := range SkillCategories {
		if len(byCategory[c]) == 0 {
			continue
		}
		groups = append(groups, SkillGroup{Category: c, Skills: byCategory[c]})
	}
	return groups
}

// SplitTimeline separates work and education while keeping the input order
func SplitTimeline(items []*TimelineItem) (work, education []*TimelineItem) {
	work = []*TimelineItem{}
	education = []*TimelineItem{}
	for _, item := range items {
		switch item.Kind {
		case TimelineKindWork:
			work = append(work, item)
		case TimelineKindEducation:
			education = append(education, item)
		}
	}
	return work, education
}

type PortfolioService interface {
	GetPortfolio(ctx context.Context) (*Portfolio, error)
	RenderPage(ctx context.Context) (string, error)
	Invalidate()
}
