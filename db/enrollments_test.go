package db

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEnrollments(t *testing.T) {
	defer func() { _ = testDB.Reset() }()
	c := qt.New(t)
	// seed enrollments for two different emails
	_, err := testDB.AddEnrollment(&Enrollment{Email: testEnrollEmail, Course: "Go"})
	c.Assert(err, qt.IsNil)
	_, err = testDB.AddEnrollment(&Enrollment{Email: testEnrollEmail, Course: "Mongo"})
	c.Assert(err, qt.IsNil)
	_, err = testDB.AddEnrollment(&Enrollment{Email: "other@email.test", Course: "React"})
	c.Assert(err, qt.IsNil)
	// no filter returns everything
	all, err := testDB.Enrollments("")
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 3)
	// the filter matches exactly, case-sensitive
	scoped, err := testDB.Enrollments(testEnrollEmail)
	c.Assert(err, qt.IsNil)
	c.Assert(scoped, qt.HasLen, 2)
	for _, enrollment := range scoped {
		c.Assert(enrollment.Email, qt.Equals, testEnrollEmail)
	}
	upper, err := testDB.Enrollments("STUDENT@EMAIL.TEST")
	c.Assert(err, qt.IsNil)
	c.Assert(upper, qt.HasLen, 0)
}

func TestDelEnrollment(t *testing.T) {
	defer func() { _ = testDB.Reset() }()
	c := qt.New(t)
	id, err := testDB.AddEnrollment(&Enrollment{Email: testEnrollEmail})
	c.Assert(err, qt.IsNil)
	deleted, err := testDB.DelEnrollment(id)
	c.Assert(err, qt.IsNil)
	c.Assert(deleted, qt.Equals, int64(1))
	deleted, err = testDB.DelEnrollment(id)
	c.Assert(err, qt.IsNil)
	c.Assert(deleted, qt.Equals, int64(0))
}
