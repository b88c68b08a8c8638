package model

import "time"

// MaxPostTextLength bounds the text of a single post.
const MaxPostTextLength = 300

/*

Post is a piece of user-authored content.

ID: primary key, auto-increment; the monotonic id doubles as the
tie-breaker when two posts share a creation timestamp
CreatedAt: time when entity is created

Text: post body in plain text, at most MaxPostTextLength characters
AuthorID:
Author: user who wrote the post, "belongs-to" relation; immutable after
		creation, removed together with the author
GroupID:
Group: optional topical category, "belongs-to" relation; set to null when
		the group is deleted
Image: path of an attached image, empty when none; the file itself is
		stored outside this service
Comments: comments on this post, removed together with the post

Feed ordering is always created_at descending, id descending.

*/

type Post struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Text      string `json:"text"`
	AuthorID  string `gorm:"constraint:OnDelete:CASCADE;"`
	Author    User
	GroupID   *uint      `gorm:"constraint:OnDelete:SET NULL;"`
	Group     *Group     `gorm:"constraint:OnDelete:SET NULL;"`
	Image     string     `json:"image"`
	Comments  []*Comment `json:"comments" gorm:"foreignKey:PostID"`
}
