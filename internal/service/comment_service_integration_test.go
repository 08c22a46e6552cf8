package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"forum/internal/events"
	"forum/internal/models"
	"forum/internal/repository"
	"forum/internal/service"
	"forum/internal/testutil"
	"forum/pkg/logger"
)

// CommentServiceIntegrationTestSuite defines test suite
type CommentServiceIntegrationTestSuite struct {
	suite.Suite
	testDB         *testutil.TestDatabase
	commentService *service.CommentService
	author         *models.User
	other          *models.User
	admin          *models.User
	post           *models.Post
}

// SetupSuite runs before all tests
func (s *CommentServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	commentRepo := repository.NewCommentRepository(s.testDB.DB)
	postRepo := repository.NewPostRepository(s.testDB.DB)
	s.commentService = service.NewCommentService(commentRepo, postRepo, events.NoopBroker{}, nil)
}

// TearDownSuite runs after all tests
func (s *CommentServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database, fresh users and post)
func (s *CommentServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.author = testutil.CreateTestUser(s.T(), s.testDB.DB, "author", "Pass123456", models.RoleUserID)
	s.other = testutil.CreateTestUser(s.T(), s.testDB.DB, "other", "Pass123456", models.RoleUserID)
	s.admin = testutil.CreateTestUser(s.T(), s.testDB.DB, "admin", "Pass123456", models.RoleAdminID)
	s.post = testutil.CreateTestPost(s.T(), s.testDB.DB, s.author.ID, "Discussion", "topic", date(2026, time.August, 1))
}

// TestCreateComment tests commenting on an existing post
func (s *CommentServiceIntegrationTestSuite) TestCreateComment() {
	comment, err := s.commentService.CreateComment(actorFor(s.other), s.post.ID, "Nice post")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), comment)
	assert.NotZero(s.T(), comment.ID)
	assert.Equal(s.T(), "Nice post", comment.Content)
	assert.Equal(s.T(), "other", comment.AuthorName)
	assert.Equal(s.T(), s.post.ID, comment.PostID)
}

// TestCreateCommentMissingPost tests that commenting on a missing post fails
func (s *CommentServiceIntegrationTestSuite) TestCreateCommentMissingPost() {
	comment, err := s.commentService.CreateComment(actorFor(s.other), 99999, "Into the void")
	assert.ErrorIs(s.T(), err, service.ErrPostNotFound)
	assert.Nil(s.T(), comment)
}

// TestListCommentsOldestFirst tests conversation ordering under a post
func (s *CommentServiceIntegrationTestSuite) TestListCommentsOldestFirst() {
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "first", date(2026, time.August, 1))
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.author.ID, "second", date(2026, time.August, 2))
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "third", date(2026, time.August, 3))

	result, err := s.commentService.ListCommentsForPost(s.post.ID, 1, 10, "")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), result.Items, 3)
	assert.Equal(s.T(), "first", result.Items[0].Content)
	assert.Equal(s.T(), "second", result.Items[1].Content)
	assert.Equal(s.T(), "third", result.Items[2].Content)
}

// TestListCommentsMissingPost tests that a missing post yields an empty
// page rather than an error
func (s *CommentServiceIntegrationTestSuite) TestListCommentsMissingPost() {
	result, err := s.commentService.ListCommentsForPost(99999, 1, 10, "")
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), result.Items)
	assert.Equal(s.T(), int64(0), result.TotalCount)
	assert.Equal(s.T(), 0, result.TotalPages)
}

// TestListCommentsPagination tests page math over 12 comments with size 10
func (s *CommentServiceIntegrationTestSuite) TestListCommentsPagination() {
	for i := 1; i <= 12; i++ {
		testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID,
			fmt.Sprintf("comment %d", i), date(2026, time.August, 1))
	}

	page1, err := s.commentService.ListCommentsForPost(s.post.ID, 1, 10, "")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), page1.Items, 10)
	assert.Equal(s.T(), int64(12), page1.TotalCount)
	assert.Equal(s.T(), 2, page1.TotalPages)

	page2, err := s.commentService.ListCommentsForPost(s.post.ID, 2, 10, "")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), page2.Items, 2)
}

// TestListCommentsSearch tests case-insensitive search on content
func (s *CommentServiceIntegrationTestSuite) TestListCommentsSearch() {
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "Totally AGREE with this", date(2026, time.August, 1))
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "I disagree", date(2026, time.August, 2))
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "unrelated", date(2026, time.August, 3))

	result, err := s.commentService.ListCommentsForPost(s.post.ID, 1, 10, "agree")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), result.TotalCount)
}

// TestListMyComments tests the actor-scoped listing, newest first
func (s *CommentServiceIntegrationTestSuite) TestListMyComments() {
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "mine old", date(2026, time.August, 1))
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.author.ID, "not mine", date(2026, time.August, 2))
	testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "mine new", date(2026, time.August, 3))

	result, err := s.commentService.ListMyComments(actorFor(s.other), 1, 10, "")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), result.Items, 2)
	assert.Equal(s.T(), "mine new", result.Items[0].Content)
	assert.Equal(s.T(), "mine old", result.Items[1].Content)
}

// TestUpdateComment tests an author rewriting their own comment
func (s *CommentServiceIntegrationTestSuite) TestUpdateComment() {
	comment := testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "tpyo", date(2026, time.August, 1))

	err := s.commentService.UpdateComment(actorFor(s.other), comment.ID, "typo fixed")
	assert.NoError(s.T(), err)

	var updated models.Comment
	s.testDB.DB.First(&updated, comment.ID)
	assert.Equal(s.T(), "typo fixed", updated.Content)
}

// TestUpdateCommentForbidden tests that edits stay with the author, even
// against admins
func (s *CommentServiceIntegrationTestSuite) TestUpdateCommentForbidden() {
	comment := testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "original", date(2026, time.August, 1))

	err := s.commentService.UpdateComment(actorFor(s.author), comment.ID, "edited")
	assert.ErrorIs(s.T(), err, service.ErrForbidden)

	err = s.commentService.UpdateComment(actorFor(s.admin), comment.ID, "edited")
	assert.ErrorIs(s.T(), err, service.ErrForbidden)

	var unchanged models.Comment
	s.testDB.DB.First(&unchanged, comment.ID)
	assert.Equal(s.T(), "original", unchanged.Content)
}

// TestUpdateCommentNotFound tests updating a missing comment
func (s *CommentServiceIntegrationTestSuite) TestUpdateCommentNotFound() {
	err := s.commentService.UpdateComment(actorFor(s.other), 99999, "x")
	assert.ErrorIs(s.T(), err, service.ErrCommentNotFound)
}

// TestDeleteComment tests archiving a single comment
func (s *CommentServiceIntegrationTestSuite) TestDeleteComment() {
	created := date(2026, time.August, 1)
	comment := testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "regret", created)

	err := s.commentService.DeleteComment(actorFor(s.other), comment.ID)
	assert.NoError(s.T(), err)

	// Gone from the active table
	var count int64
	s.testDB.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.Equal(s.T(), int64(0), count)

	// Archived under its original id with matching fields
	var archived models.DeletedComment
	err = s.testDB.DB.First(&archived, "comment_id = ?", comment.ID).Error
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "regret", archived.Content)
	assert.Equal(s.T(), s.other.ID, *archived.UserID)
	assert.Equal(s.T(), s.post.ID, *archived.PostID)
	assert.False(s.T(), archived.DeletedDate.Before(*archived.CreatedDate))

	// The post itself is untouched
	var postCount int64
	s.testDB.DB.Model(&models.Post{}).Where("id = ?", s.post.ID).Count(&postCount)
	assert.Equal(s.T(), int64(1), postCount)
}

// TestDeleteCommentByAdmin tests admin moderation of someone else's comment
func (s *CommentServiceIntegrationTestSuite) TestDeleteCommentByAdmin() {
	comment := testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "flagged", date(2026, time.August, 1))

	err := s.commentService.DeleteComment(actorFor(s.admin), comment.ID)
	assert.NoError(s.T(), err)

	var count int64
	s.testDB.DB.Model(&models.DeletedComment{}).Where("comment_id = ?", comment.ID).Count(&count)
	assert.Equal(s.T(), int64(1), count)
}

// TestDeleteCommentForbidden tests that an unrelated user cannot delete
func (s *CommentServiceIntegrationTestSuite) TestDeleteCommentForbidden() {
	comment := testutil.CreateTestComment(s.T(), s.testDB.DB, s.post.ID, s.other.ID, "safe", date(2026, time.August, 1))

	err := s.commentService.DeleteComment(actorFor(s.author), comment.ID)
	assert.ErrorIs(s.T(), err, service.ErrForbidden)

	var count int64
	s.testDB.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count)
	assert.Equal(s.T(), int64(1), count)
}

// TestSuite runs all tests in the suite
func TestCommentServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceIntegrationTestSuite))
}
