package handler_test

import (
	"context"

	"helloteam.app/api/internal/auth"
	"helloteam.app/api/internal/model"
	"helloteam.app/api/internal/service"
	"helloteam.app/api/internal/tenant"
)

type mockAuthService struct {
	signUpFn           func(ctx context.Context, in service.SignUpInput) (*auth.LoginResult, error)
	socialSignUpFn     func(ctx context.Context, in service.SocialSignUpInput) (*auth.LoginResult, error)
	loginFn            func(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error)
	refreshFn          func(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	authorizationFn    func(state string) (string, error)
	federatedFn        func(ctx context.Context, code string) (*auth.LoginResult, error)
	switchFn           func(ctx context.Context, user *model.User, workspaceID int64) (*auth.LoginResult, error)
	sendVerificationFn func(ctx context.Context, user *model.User) error
	verifyEmailFn      func(ctx context.Context, user *model.User, token string) (*model.User, error)
	recoverFn          func(ctx context.Context, email string) error
	checkResetFn       func(ctx context.Context, tokenID string) error
	resetFn            func(ctx context.Context, tokenID, newPassword string) error
	emailOwnerFn       func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, in service.SignUpInput) (*auth.LoginResult, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, in)
	}
	return nil, nil
}

func (m *mockAuthService) SocialSignUp(ctx context.Context, in service.SocialSignUpInput) (*auth.LoginResult, error) {
	if m.socialSignUpFn != nil {
		return m.socialSignUpFn(ctx, in)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return nil, nil
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, refreshToken)
	}
	return nil, nil
}

func (m *mockAuthService) FederatedAuthorizationURL(state string) (string, error) {
	if m.authorizationFn != nil {
		return m.authorizationFn(state)
	}
	return "", nil
}

func (m *mockAuthService) LoginWithFederated(ctx context.Context, code string) (*auth.LoginResult, error) {
	if m.federatedFn != nil {
		return m.federatedFn(ctx, code)
	}
	return nil, nil
}

func (m *mockAuthService) SwitchWorkspace(ctx context.Context, user *model.User, workspaceID int64) (*auth.LoginResult, error) {
	if m.switchFn != nil {
		return m.switchFn(ctx, user, workspaceID)
	}
	return nil, nil
}

func (m *mockAuthService) SendVerificationEmail(ctx context.Context, user *model.User) error {
	if m.sendVerificationFn != nil {
		return m.sendVerificationFn(ctx, user)
	}
	return nil
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, user *model.User, token string) (*model.User, error) {
	if m.verifyEmailFn != nil {
		return m.verifyEmailFn(ctx, user, token)
	}
	return user, nil
}

func (m *mockAuthService) RecoverPassword(ctx context.Context, email string) error {
	if m.recoverFn != nil {
		return m.recoverFn(ctx, email)
	}
	return nil
}

func (m *mockAuthService) CheckResetToken(ctx context.Context, tokenID string) error {
	if m.checkResetFn != nil {
		return m.checkResetFn(ctx, tokenID)
	}
	return nil
}

func (m *mockAuthService) ResetPassword(ctx context.Context, tokenID, newPassword string) error {
	if m.resetFn != nil {
		return m.resetFn(ctx, tokenID, newPassword)
	}
	return nil
}

func (m *mockAuthService) EmailOwner(ctx context.Context, email string) (*model.User, error) {
	if m.emailOwnerFn != nil {
		return m.emailOwnerFn(ctx, email)
	}
	return nil, nil
}

type mockWorkspaceService struct {
	listForUserFn   func(ctx context.Context, userID int64) ([]model.Workspace, error)
	orgTypesFn      func(ctx context.Context) ([]model.OrganizationType, error)
	nameAvailableFn func(ctx context.Context, name string) (bool, error)
}

func (m *mockWorkspaceService) ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWorkspaceService) ListOrganizationTypes(ctx context.Context) ([]model.OrganizationType, error) {
	if m.orgTypesFn != nil {
		return m.orgTypesFn(ctx)
	}
	return nil, nil
}

func (m *mockWorkspaceService) IsNameAvailable(ctx context.Context, name string) (bool, error) {
	if m.nameAvailableFn != nil {
		return m.nameAvailableFn(ctx, name)
	}
	return true, nil
}

type mockLeadService struct {
	captureFn func(ctx context.Context, email, lastInteraction string) (*model.Lead, error)
}

func (m *mockLeadService) Capture(ctx context.Context, email, lastInteraction string) (*model.Lead, error) {
	if m.captureFn != nil {
		return m.captureFn(ctx, email, lastInteraction)
	}
	return &model.Lead{Email: email, LastInteraction: lastInteraction}, nil
}

type mockUserService struct {
	getFn    func(ctx context.Context, id int64) (*model.User, error)
	updateFn func(ctx context.Context, caller *model.User, targetID int64, in service.UpdateUserInput) (*service.UpdateUserResult, error)
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) Update(ctx context.Context, caller *model.User, targetID int64, in service.UpdateUserInput) (*service.UpdateUserResult, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, targetID, in)
	}
	return nil, nil
}

type mockInvitationService struct {
	listFn   func(ctx context.Context, scope tenant.Scope) ([]model.StaffInvitation, error)
	createFn func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateInvitationInput) (*model.StaffInvitation, error)
	getFn    func(ctx context.Context, scope tenant.Scope, code string) (*model.StaffInvitation, error)
	deleteFn func(ctx context.Context, scope tenant.Scope, code string) error
	acceptFn func(ctx context.Context, user *model.User, code string, role model.StaffRole) (*model.WorkspaceStaff, error)
}

func (m *mockInvitationService) List(ctx context.Context, scope tenant.Scope) ([]model.StaffInvitation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, scope)
	}
	return nil, nil
}

func (m *mockInvitationService) Create(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateInvitationInput) (*model.StaffInvitation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, rc, scope, in)
	}
	return nil, nil
}

func (m *mockInvitationService) Get(ctx context.Context, scope tenant.Scope, code string) (*model.StaffInvitation, error) {
	if m.getFn != nil {
		return m.getFn(ctx, scope, code)
	}
	return nil, nil
}

func (m *mockInvitationService) Delete(ctx context.Context, scope tenant.Scope, code string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, scope, code)
	}
	return nil
}

func (m *mockInvitationService) Accept(ctx context.Context, user *model.User, code string, role model.StaffRole) (*model.WorkspaceStaff, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, user, code, role)
	}
	return nil, nil
}

type mockFeedService struct {
	listPostsFn      func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, limit, offset int32) ([]model.FeedPost, error)
	createPostFn     func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreatePostInput) (*model.FeedPost, error)
	getPostFn        func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) (*model.FeedPost, error)
	updatePostFn     func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64, content string) (*model.FeedPost, error)
	deletePostFn     func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) error
	postLikesFn      func(ctx context.Context, scope tenant.Scope, postID int64) ([]model.Activity, error)
	listCommentsFn   func(ctx context.Context, scope tenant.Scope, postID *int64) ([]model.Comment, error)
	createCommentFn  func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateCommentInput) (*model.Comment, error)
	getCommentFn     func(ctx context.Context, scope tenant.Scope, commentID int64) (*model.Comment, error)
	updateCommentFn  func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64, content string) (*model.Comment, error)
	deleteCommentFn  func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64) error
	listActivitiesFn func(ctx context.Context, scope tenant.Scope, targetType *model.TargetType, targetID *int64) ([]model.Activity, error)
	createActivityFn func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateActivityInput) (*model.Activity, error)
	deleteActivityFn func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, activityID int64) error
}

func (m *mockFeedService) ListPosts(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, limit, offset int32) ([]model.FeedPost, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx, rc, scope, limit, offset)
	}
	return nil, nil
}

func (m *mockFeedService) CreatePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreatePostInput) (*model.FeedPost, error) {
	if m.createPostFn != nil {
		return m.createPostFn(ctx, rc, scope, in)
	}
	return nil, nil
}

func (m *mockFeedService) GetPost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) (*model.FeedPost, error) {
	if m.getPostFn != nil {
		return m.getPostFn(ctx, rc, scope, postID)
	}
	return nil, nil
}

func (m *mockFeedService) UpdatePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64, content string) (*model.FeedPost, error) {
	if m.updatePostFn != nil {
		return m.updatePostFn(ctx, rc, scope, postID, content)
	}
	return nil, nil
}

func (m *mockFeedService) DeletePost(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, postID int64) error {
	if m.deletePostFn != nil {
		return m.deletePostFn(ctx, rc, scope, postID)
	}
	return nil
}

func (m *mockFeedService) PostLikes(ctx context.Context, scope tenant.Scope, postID int64) ([]model.Activity, error) {
	if m.postLikesFn != nil {
		return m.postLikesFn(ctx, scope, postID)
	}
	return nil, nil
}

func (m *mockFeedService) ListComments(ctx context.Context, scope tenant.Scope, postID *int64) ([]model.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, scope, postID)
	}
	return nil, nil
}

func (m *mockFeedService) CreateComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateCommentInput) (*model.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, rc, scope, in)
	}
	return nil, nil
}

func (m *mockFeedService) GetComment(ctx context.Context, scope tenant.Scope, commentID int64) (*model.Comment, error) {
	if m.getCommentFn != nil {
		return m.getCommentFn(ctx, scope, commentID)
	}
	return nil, nil
}

func (m *mockFeedService) UpdateComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64, content string) (*model.Comment, error) {
	if m.updateCommentFn != nil {
		return m.updateCommentFn(ctx, rc, scope, commentID, content)
	}
	return nil, nil
}

func (m *mockFeedService) DeleteComment(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, commentID int64) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, rc, scope, commentID)
	}
	return nil
}

func (m *mockFeedService) ListActivities(ctx context.Context, scope tenant.Scope, targetType *model.TargetType, targetID *int64) ([]model.Activity, error) {
	if m.listActivitiesFn != nil {
		return m.listActivitiesFn(ctx, scope, targetType, targetID)
	}
	return nil, nil
}

func (m *mockFeedService) CreateActivity(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateActivityInput) (*model.Activity, error) {
	if m.createActivityFn != nil {
		return m.createActivityFn(ctx, rc, scope, in)
	}
	return nil, nil
}

func (m *mockFeedService) DeleteActivity(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, activityID int64) error {
	if m.deleteActivityFn != nil {
		return m.deleteActivityFn(ctx, rc, scope, activityID)
	}
	return nil
}

type mockMediaService struct {
	listImagesFn  func(ctx context.Context, scope tenant.Scope) ([]model.Image, error)
	createImageFn func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateImageInput) (*model.Image, error)
	getImageFn    func(ctx context.Context, scope tenant.Scope, imageID int64) (*model.Image, error)
	deleteImageFn func(ctx context.Context, scope tenant.Scope, imageID int64) error
	listVideosFn  func(ctx context.Context, scope tenant.Scope) ([]model.Video, error)
	createVideoFn func(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateVideoInput) (*model.Video, error)
	getVideoFn    func(ctx context.Context, scope tenant.Scope, videoID int64) (*model.Video, error)
	deleteVideoFn func(ctx context.Context, scope tenant.Scope, videoID int64) error
}

func (m *mockMediaService) ListImages(ctx context.Context, scope tenant.Scope) ([]model.Image, error) {
	if m.listImagesFn != nil {
		return m.listImagesFn(ctx, scope)
	}
	return nil, nil
}

func (m *mockMediaService) CreateImage(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateImageInput) (*model.Image, error) {
	if m.createImageFn != nil {
		return m.createImageFn(ctx, rc, scope, in)
	}
	return nil, nil
}

func (m *mockMediaService) GetImage(ctx context.Context, scope tenant.Scope, imageID int64) (*model.Image, error) {
	if m.getImageFn != nil {
		return m.getImageFn(ctx, scope, imageID)
	}
	return nil, nil
}

func (m *mockMediaService) DeleteImage(ctx context.Context, scope tenant.Scope, imageID int64) error {
	if m.deleteImageFn != nil {
		return m.deleteImageFn(ctx, scope, imageID)
	}
	return nil
}

func (m *mockMediaService) ListVideos(ctx context.Context, scope tenant.Scope) ([]model.Video, error) {
	if m.listVideosFn != nil {
		return m.listVideosFn(ctx, scope)
	}
	return nil, nil
}

func (m *mockMediaService) CreateVideo(ctx context.Context, rc auth.RequestContext, scope tenant.Scope, in service.CreateVideoInput) (*model.Video, error) {
	if m.createVideoFn != nil {
		return m.createVideoFn(ctx, rc, scope, in)
	}
	return nil, nil
}

func (m *mockMediaService) GetVideo(ctx context.Context, scope tenant.Scope, videoID int64) (*model.Video, error) {
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, scope, videoID)
	}
	return nil, nil
}

func (m *mockMediaService) DeleteVideo(ctx context.Context, scope tenant.Scope, videoID int64) error {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, scope, videoID)
	}
	return nil
}
