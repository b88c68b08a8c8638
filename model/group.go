package model

/*

Group is a topical category a post can be filed under.

ID: primary key
Title: display title
Slug: unique url fragment, used in group feed urls
Description: free-form description

Groups live independently of posts. Deleting a group keeps its posts and
nulls their group reference.

*/

type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`
}
