package db

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

// User is a frontend account. The role is stored and returned but never
// enforced against a caller identity.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  UserRole           `json:"role,omitempty" bson:"role,omitempty"`
}

type Blog struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title    string             `json:"title" bson:"title"`
	Content  string             `json:"content,omitempty" bson:"content,omitempty"`
	Author   string             `json:"author,omitempty" bson:"author,omitempty"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
	Category string             `json:"category,omitempty" bson:"category,omitempty"`
}

// TeamMember carries a public image path produced by the upload storage. The
// path is only written to the database after the file bytes hit the disk.
type TeamMember struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Position string             `json:"position" bson:"position"`
	Facebook string             `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Github   string             `json:"github,omitempty" bson:"github,omitempty"`
	Linkedin string             `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
}

type Review struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Email  string             `json:"email,omitempty" bson:"email,omitempty"`
	Rating int                `json:"rating,omitempty" bson:"rating,omitempty"`
	Text   string             `json:"text,omitempty" bson:"text,omitempty"`
}

type ReviewVideo struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title    string             `json:"title,omitempty" bson:"title,omitempty"`
	VideoURL string             `json:"videoUrl" bson:"videoUrl"`
}

type Client struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Logo    string             `json:"logo,omitempty" bson:"logo,omitempty"`
	Website string             `json:"website,omitempty" bson:"website,omitempty"`
}

type FreeCourse struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
}

// Enrollment is queryable by email for the per-user listing.
type Enrollment struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email  string             `json:"email" bson:"email"`
	Name   string             `json:"name,omitempty" bson:"name,omitempty"`
	Course string             `json:"course,omitempty" bson:"course,omitempty"`
	Phone  string             `json:"phone,omitempty" bson:"phone,omitempty"`
}
