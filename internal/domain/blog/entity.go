package blog

import "time"

// Post represents a blog post entity.
type Post struct {
	ID        int64     // ID is the unique identifier for the post
	Title     string    // Title is the post headline
	Subtitle  string    // Subtitle is the secondary headline
	Body      string    // Body is the post content in markdown
	ImageURL  string    // ImageURL is the header image location
	AuthorID  int64     // AuthorID references the owning user
	Author    string    // Author is the display name of the owning user
	CreatedAt time.Time // CreatedAt is when the post was published
}

// Comment represents a comment attached to a post.
type Comment struct {
	ID        int64     // ID is the unique identifier for the comment
	PostID    int64     // PostID references the parent post
	AuthorID  int64     // AuthorID references the commenting user
	Author    string    // Author is the display name of the commenting user
	Text      string    // Text is the comment content
	CreatedAt time.Time // CreatedAt is when the comment was written
}
