package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pressfeed/pressfeed/model"
)

// feedOrder is the canonical feed ordering for every post listing.
const feedOrder = "created_at DESC, id DESC"

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) CreateUser(user *model.User) error {
	return s.DB.Create(user).Error
}

// DeleteUser cascades in application space instead of relying on backend
// specific foreign key behavior, so the same semantics hold on postgres
// and on the embedded test database.
func (s *GormStore) DeleteUser(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var postIds []uint
		if err := tx.Model(&model.Post{}).Where("author_id = ?", id).
			Pluck("id", &postIds).Error; err != nil {
			return err
		}
		if len(postIds) > 0 {
			if err := tx.Where("post_id IN ?", postIds).
				Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", id).
			Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).
			Delete(&model.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR author_id = ?", id, id).
			Delete(&model.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{Id: id}).Error
	})
}

func (s *GormStore) GetUser(id string) (*model.User, error) {
	var user model.User
	result := s.DB.First(&user, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	result := s.DB.Where("username = ?", username).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *GormStore) CreateGroup(group *model.Group) error {
	return s.DB.Create(group).Error
}

func (s *GormStore) DeleteGroup(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{ID: id}).Error
	})
}

func (s *GormStore) GetGroupBySlug(slug string) (*model.Group, error) {
	var group model.Group
	result := s.DB.Where("slug = ?", slug).First(&group)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (s *GormStore) CreatePost(post *model.Post) error {
	return s.DB.Create(post).Error
}

func (s *GormStore) GetPost(id uint) (*model.Post, error) {
	var post model.Post
	result := s.DB.Preload("Author").Preload("Group").First(&post, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &post, nil
}

// UpdatePost persists text, group and image. The author column is never
// touched: authorship is immutable after creation.
func (s *GormStore) UpdatePost(post *model.Post) error {
	return s.DB.Model(&model.Post{ID: post.ID}).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (s *GormStore) FindPosts(filter PostFilter) ([]*model.Post, error) {
	if filter.AuthorIn != nil && len(filter.AuthorIn) == 0 {
		return []*model.Post{}, nil
	}

	query := s.DB.Model(&model.Post{}).
		Preload("Author").
		Preload("Group").
		Order(feedOrder)
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.GroupID != 0 {
		query = query.Where("group_id = ?", filter.GroupID)
	}
	if filter.AuthorIn != nil {
		query = query.Where("author_id IN ?", filter.AuthorIn)
	}

	posts := []*model.Post{}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *GormStore) CountPostsByAuthor(authorID string) (int64, error) {
	var count int64
	err := s.DB.Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (s *GormStore) CreateComment(comment *model.Comment) error {
	return s.DB.Create(comment).Error
}

func (s *GormStore) FindCommentsByPost(postID uint) ([]*model.Comment, error) {
	comments := []*model.Comment{}
	err := s.DB.Model(&model.Comment{}).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) CreateFollow(userID, authorID string) error {
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Follow{UserID: userID, AuthorID: authorID}).Error
}

func (s *GormStore) DeleteFollow(userID, authorID string) error {
	var edge model.Follow
	result := s.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&edge)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if result.Error != nil {
		return result.Error
	}
	return s.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
}

func (s *GormStore) FollowExists(userID, authorID string) (bool, error) {
	var count int64
	err := s.DB.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) FollowedAuthorIDs(userID string) ([]string, error) {
	authorIds := []string{}
	err := s.DB.Model(&model.Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &authorIds).Error
	if err != nil {
		return nil, err
	}
	return authorIds, nil
}
