package db

// Collection is the JSON envelope produced by String() and consumed by
// Import(): the whole content database, one slice per collection.
type Collection struct {
	Users        []User        `json:"users" bson:"users"`
	Blogs        []Blog        `json:"blogs" bson:"blogs"`
	Team         []TeamMember  `json:"team" bson:"team"`
	Reviews      []Review      `json:"reviews" bson:"reviews"`
	ReviewVideos []ReviewVideo `json:"reviewVideos" bson:"reviewVideos"`
	Clients      []Client      `json:"clients" bson:"clients"`
	FreeCourses  []FreeCourse  `json:"freeCourses" bson:"freeCourses"`
	Enrollments  []Enrollment  `json:"enrollments" bson:"enrollments"`
}
