package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/domain/mocks"
	"github.com/rllL1/portfolio/pkg/logger"
)

func TestProjectService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProjectRepository(ctrl)
	service := NewProjectService(mockRepo, nil, logger.NewTestLogger(t))
	ctx := context.Background()

	t.Run("appends to the end when no position is given", func(t *testing.T) {
		mockRepo.EXPECT().Count(ctx).Return(4, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Project) error {
			assert.Equal(t, 4, p.OrderIndex)
			assert.NotEmpty(t, p.ID)
			return nil
		})

		project, err := service.CreateProject(ctx, &domain.Project{Title: "Library", OrderIndex: domain.AppendOrder})
		require.NoError(t, err)
		assert.Equal(t, 4, project.OrderIndex)
	})

	t.Run("keeps an explicit position", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		project, err := service.CreateProject(ctx, &domain.Project{Title: "Library", OrderIndex: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, project.OrderIndex)
	})

	t.Run("count failure", func(t *testing.T) {
		mockRepo.EXPECT().Count(ctx).Return(0, errors.New("db down"))

		_, err := service.CreateProject(ctx, &domain.Project{Title: "Library", OrderIndex: domain.AppendOrder})
		assert.Error(t, err)
	})

	t.Run("create failure", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := service.CreateProject(ctx, &domain.Project{Title: "Library", OrderIndex: 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create project")
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProjectRepository(ctrl)
	service := NewProjectService(mockRepo, nil, logger.NewTestLogger(t))
	ctx := context.Background()

	t.Run("returns the re-queried row", func(t *testing.T) {
		input := &domain.Project{ID: "p1", Title: "New title", OrderIndex: domain.AppendOrder}
		stored := &domain.Project{ID: "p1", Title: "New title", OrderIndex: 2}

		mockRepo.EXPECT().Update(ctx, input).Return(nil)
		mockRepo.EXPECT().GetByID(ctx, "p1").Return(stored, nil)

		project, err := service.UpdateProject(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 2, project.OrderIndex)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(domain.NewNotFound("project", "p9"))

		_, err := service.UpdateProject(ctx, &domain.Project{ID: "p9"})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestProjectService_DeleteAndReorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProjectRepository(ctrl)
	service := NewProjectService(mockRepo, nil, logger.NewTestLogger(t))
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx, "p1").Return(nil)
	assert.NoError(t, service.DeleteProject(ctx, "p1"))

	mockRepo.EXPECT().Delete(ctx, "p2").Return(domain.NewNotFound("project", "p2"))
	assert.True(t, domain.IsNotFound(service.DeleteProject(ctx, "p2")))

	mockRepo.EXPECT().Reorder(ctx, []string{"b", "a"}).Return(nil)
	assert.NoError(t, service.ReorderProjects(ctx, []string{"b", "a"}))

	mockRepo.EXPECT().Reorder(ctx, gomock.Any()).Return(errors.New("tx failed"))
	assert.Error(t, service.ReorderProjects(ctx, []string{"a"}))

	mockRepo.EXPECT().List(ctx).Return([]*domain.Project{{ID: "p1"}}, nil)
	projects, err := service.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestSkillService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSkillRepository(ctrl)
	service := NewSkillService(mockRepo, logger.NewTestLogger(t))
	ctx := context.Background()

	mockRepo.EXPECT().Count(ctx).Return(2, nil)
	mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	skill, err := service.CreateSkill(ctx, &domain.Skill{Name: "Go", Category: domain.SkillCategoryLanguages, OrderIndex: domain.AppendOrder})
	require.NoError(t, err)
	assert.Equal(t, 2, skill.OrderIndex)

	mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetByID(ctx, skill.ID).Return(skill, nil)
	_, err = service.UpdateSkill(ctx, skill)
	assert.NoError(t, err)

	mockRepo.EXPECT().List(ctx).Return(nil, errors.New("boom"))
	_, err = service.ListSkills(ctx)
	assert.Error(t, err)

	mockRepo.EXPECT().Delete(ctx, "gone").Return(domain.NewNotFound("skill", "gone"))
	assert.True(t, domain.IsNotFound(service.DeleteSkill(ctx, "gone")))

	mockRepo.EXPECT().Reorder(ctx, []string{"x"}).Return(domain.NewNotFound("skill", "x"))
	assert.True(t, domain.IsNotFound(service.ReorderSkills(ctx, []string{"x"})))
}

func TestTimelineService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTimelineRepository(ctrl)
	service := NewTimelineService(mockRepo, logger.NewTestLogger(t))
	ctx := context.Background()

	mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	item, err := service.CreateTimelineItem(ctx, &domain.TimelineItem{Title: "Dev", Kind: domain.TimelineKindWork, OrderIndex: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(domain.NewNotFound("timeline item", item.ID))
	_, err = service.UpdateTimelineItem(ctx, item)
	assert.True(t, domain.IsNotFound(err))

	mockRepo.EXPECT().List(ctx).Return([]*domain.TimelineItem{item}, nil)
	items, err := service.ListTimeline(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	mockRepo.EXPECT().Delete(ctx, item.ID).Return(nil)
	assert.NoError(t, service.DeleteTimelineItem(ctx, item.ID))

	mockRepo.EXPECT().Reorder(ctx, []string{item.ID}).Return(nil)
	assert.NoError(t, service.ReorderTimeline(ctx, []string{item.ID}))
}

func TestSiteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSiteRepository(ctrl)
	service := NewSiteService(mockRepo, logger.NewTestLogger(t))
	ctx := context.Background()

	t.Run("missing hero", func(t *testing.T) {
		mockRepo.EXPECT().GetHero(ctx).Return(nil, domain.NewNotFound("hero", ""))

		_, err := service.GetHero(ctx)
		require.Error(t, err)
		assert.Equal(t, "no hero data", err.Error())
	})

	t.Run("upsert", func(t *testing.T) {
		hero := &domain.HeroSection{Title: "Hello"}
		mockRepo.EXPECT().UpsertHero(ctx, hero).DoAndReturn(func(_ context.Context, h *domain.HeroSection) error {
			h.ID = "h1"
			return nil
		})

		saved, err := service.UpsertHero(ctx, hero)
		require.NoError(t, err)
		assert.Equal(t, "h1", saved.ID)
	})

	t.Run("settings", func(t *testing.T) {
		settings := &domain.SiteSettings{ID: "s1", SiteTitle: "Portfolio"}
		mockRepo.EXPECT().GetSettings(ctx).Return(settings, nil)
		mockRepo.EXPECT().UpdateSettings(ctx, settings).Return(errors.New("db down"))

		got, err := service.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Portfolio", got.SiteTitle)

		_, err = service.UpdateSettings(ctx, settings)
		assert.Error(t, err)
		assert.False(t, domain.IsNotFound(err))
	})

	t.Run("social links", func(t *testing.T) {
		mockRepo.EXPECT().ListSocialLinks(ctx).Return([]*domain.SocialLink{{ID: "l1", Platform: "GitHub"}}, nil)
		mockRepo.EXPECT().UpdateSocialLinkURL(ctx, "l1", "https://github.com/rllL1").Return(nil)

		links, err := service.ListSocialLinks(ctx)
		require.NoError(t, err)
		assert.Len(t, links, 1)
		assert.NoError(t, service.UpdateSocialLink(ctx, "l1", "https://github.com/rllL1"))
	})
}
