package model

import "time"

/*

User is an author identity managed by the upstream auth system.

Id: primary key, assigned by the identity provider (uuid)
CreatedAt: time when entity is created

Username: unique handle, used in profile urls
Posts: posts authored by this user, "has-many" relation
Comments: comments authored by this user, "has-many" relation

Deleting a user cascades to their posts, comments and follow edges in
either direction.

*/

type User struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Username  string     `gorm:"uniqueIndex"`
	Posts     []*Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments  []*Comment `json:"comments" gorm:"foreignKey:AuthorID"`
}
