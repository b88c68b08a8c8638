package model

import "time"

/*

Comment is a remark left on a post by an authenticated user.

ID: primary key
CreatedAt: time when entity is created

PostID:
Post: the commented post, "belongs-to" relation; removed with the post
AuthorID:
Author: comment author, "belongs-to" relation; removed with the author
Text: comment body, never edited after creation

Comments are listed newest-first.

*/

type Comment struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	PostID    uint `gorm:"constraint:OnDelete:CASCADE;"`
	Post      *Post
	AuthorID  string `gorm:"constraint:OnDelete:CASCADE;"`
	Author    User
	Text      string `json:"text"`
}
