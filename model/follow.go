package model

import "time"

/*

Follow is a directed "user follows author" edge between two users.

UserID: the follower, part of the composite primary key
AuthorID: the followed author, part of the composite primary key
CreatedAt: time when relation is created

The composite key keeps the (user, author) pair unique; a check constraint
rejects self-follow edges at the storage layer. The edge is removed when
either endpoint user is deleted.

*/

type Follow struct {
	UserID    string `gorm:"primaryKey;check:chk_no_self_follow,user_id <> author_id"`
	AuthorID  string `gorm:"primaryKey"`
	CreatedAt time.Time
}
