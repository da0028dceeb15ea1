package service

import (
	"context"
	"time"

	"oneiro/internal/models"
)

// dreamRepoStub is a stub for repository.DreamRepository.
type dreamRepoStub struct {
	createFn            func(context.Context, *models.Dream) error
	getByIDFn           func(context.Context, uint) (*models.Dream, error)
	getByIDForUserFn    func(context.Context, uint, uint) (*models.Dream, error)
	setInterpretationFn func(context.Context, uint, string) error
	setImageURLFn       func(context.Context, uint, string) error
	updateFn            func(context.Context, *models.Dream) error
	deleteFn            func(context.Context, uint) error
	listByUserFn        func(context.Context, uint, int, int) ([]*models.Dream, int64, error)
	listPublicFn        func(context.Context, int, int) ([]*models.Dream, int64, error)
}

func (s *dreamRepoStub) Create(ctx context.Context, dream *models.Dream) error {
	return s.createFn(ctx, dream)
}
func (s *dreamRepoStub) GetByID(ctx context.Context, id uint) (*models.Dream, error) {
	return s.getByIDFn(ctx, id)
}
func (s *dreamRepoStub) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Dream, error) {
	return s.getByIDForUserFn(ctx, id, userID)
}
func (s *dreamRepoStub) SetInterpretation(ctx context.Context, id uint, interpretation string) error {
	return s.setInterpretationFn(ctx, id, interpretation)
}
func (s *dreamRepoStub) SetImageURL(ctx context.Context, id uint, imageURL string) error {
	return s.setImageURLFn(ctx, id, imageURL)
}
func (s *dreamRepoStub) Update(ctx context.Context, dream *models.Dream) error {
	return s.updateFn(ctx, dream)
}
func (s *dreamRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *dreamRepoStub) ListByUser(ctx context.Context, userID uint, page, limit int) ([]*models.Dream, int64, error) {
	return s.listByUserFn(ctx, userID, page, limit)
}
func (s *dreamRepoStub) ListPublic(ctx context.Context, page, limit int) ([]*models.Dream, int64, error) {
	return s.listPublicFn(ctx, page, limit)
}

func noopDreamRepo() *dreamRepoStub {
	return &dreamRepoStub{
		createFn: func(_ context.Context, dream *models.Dream) error {
			dream.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Dream, error) {
			return &models.Dream{ID: id, UserID: 1, Title: "t", Description: "d", Date: time.Now()}, nil
		},
		getByIDForUserFn: func(_ context.Context, id, userID uint) (*models.Dream, error) {
			return &models.Dream{ID: id, UserID: userID}, nil
		},
		setInterpretationFn: func(_ context.Context, _ uint, _ string) error { return nil },
		setImageURLFn:       func(_ context.Context, _ uint, _ string) error { return nil },
		updateFn:            func(_ context.Context, _ *models.Dream) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
		listByUserFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Dream, int64, error) {
			return nil, 0, nil
		},
		listPublicFn: func(_ context.Context, _, _ int) ([]*models.Dream, int64, error) {
			return nil, 0, nil
		},
	}
}

// creditRepoStub is a stub for repository.CreditRepository.
type creditRepoStub struct {
	getOrCreateFn func(context.Context, uint) (*models.Credit, error)
	deductFn      func(context.Context, uint, int) error
}

func (s *creditRepoStub) GetOrCreate(ctx context.Context, userID uint) (*models.Credit, error) {
	return s.getOrCreateFn(ctx, userID)
}
func (s *creditRepoStub) Deduct(ctx context.Context, userID uint, amount int) error {
	return s.deductFn(ctx, userID, amount)
}

func creditRepoWithBalance(amount int) *creditRepoStub {
	return &creditRepoStub{
		getOrCreateFn: func(_ context.Context, userID uint) (*models.Credit, error) {
			return &models.Credit{UserID: userID, Amount: amount}, nil
		},
		deductFn: func(_ context.Context, _ uint, _ int) error { return nil },
	}
}

// socialRepoStub is a stub for repository.SocialRepository.
type socialRepoStub struct {
	toggleLikeFn     func(context.Context, uint, uint) (bool, error)
	createCommentFn  func(context.Context, *models.DreamComment) error
	getCommentByIDFn func(context.Context, uint) (*models.DreamComment, error)
	updateCommentFn  func(context.Context, *models.DreamComment) error
	deleteCommentFn  func(context.Context, uint) error
}

func (s *socialRepoStub) ToggleLike(ctx context.Context, dreamID, userID uint) (bool, error) {
	return s.toggleLikeFn(ctx, dreamID, userID)
}
func (s *socialRepoStub) CreateComment(ctx context.Context, comment *models.DreamComment) error {
	return s.createCommentFn(ctx, comment)
}
func (s *socialRepoStub) GetCommentByID(ctx context.Context, id uint) (*models.DreamComment, error) {
	return s.getCommentByIDFn(ctx, id)
}
func (s *socialRepoStub) UpdateComment(ctx context.Context, comment *models.DreamComment) error {
	return s.updateCommentFn(ctx, comment)
}
func (s *socialRepoStub) DeleteComment(ctx context.Context, id uint) error {
	return s.deleteCommentFn(ctx, id)
}

func noopSocialRepo() *socialRepoStub {
	return &socialRepoStub{
		toggleLikeFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		createCommentFn: func(_ context.Context, comment *models.DreamComment) error {
			comment.ID = 1
			return nil
		},
		getCommentByIDFn: func(_ context.Context, id uint) (*models.DreamComment, error) {
			return &models.DreamComment{ID: id, UserID: 1, DreamID: 1, Content: "c"}, nil
		},
		updateCommentFn: func(_ context.Context, _ *models.DreamComment) error { return nil },
		deleteCommentFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// interpreterStub is a stub for ai.Interpreter.
type interpreterStub struct {
	interpretFn func(context.Context, string) (string, error)
}

func (s *interpreterStub) Interpret(ctx context.Context, description string) (string, error) {
	return s.interpretFn(ctx, description)
}

// illustratorStub is a stub for ai.Illustrator.
type illustratorStub struct {
	illustrateFn func(context.Context, string, string) (string, error)
}

func (s *illustratorStub) Illustrate(ctx context.Context, description, style string) (string, error) {
	return s.illustrateFn(ctx, description, style)
}

func workingInterpreter() *interpreterStub {
	return &interpreterStub{
		interpretFn: func(_ context.Context, _ string) (string, error) {
			return "an interpretation", nil
		},
	}
}

func workingIllustrator() *illustratorStub {
	return &illustratorStub{
		illustrateFn: func(_ context.Context, _, _ string) (string, error) {
			return "https://img.example/dream.png", nil
		},
	}
}
