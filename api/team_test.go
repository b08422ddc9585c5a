package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/uploads"
)

// publicImagePathRgx matches the public path of a stored team image, with the
// generated <unix-milli>-<random-suffix> name and the original extension.
var publicImagePathRgx = regexp.MustCompile(`^/uploads/teamImages/\d+-[a-f0-9]+\.png$`)

// testPNG is a tiny valid PNG header, enough for content type detection.
var testPNG = []byte("\x89PNG\r\n\x1a\n" + strings.Repeat("0", 32))

// testMultipartRequest helper function executes a multipart form request
// against the test server. A nil fileBytes skips the file part, leaving only
// the plain form fields. It returns the trimmed response body and the status
// code.
func testMultipartRequest(t *testing.T, method, path string, fields map[string]string,
	fileName string, fileBytes []byte,
) ([]byte, int) {
	var buff bytes.Buffer
	form := multipart.NewWriter(&buff)
	for name, value := range fields {
		qt.Assert(t, form.WriteField(name, value), qt.IsNil)
	}
	if fileBytes != nil {
		part, err := form.CreateFormFile("image", fileName)
		qt.Assert(t, err, qt.IsNil)
		_, err = part.Write(fileBytes)
		qt.Assert(t, err, qt.IsNil)
	}
	qt.Assert(t, form.Close(), qt.IsNil)
	req, err := http.NewRequest(method, testURL(path), &buff)
	qt.Assert(t, err, qt.IsNil)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	qt.Assert(t, err, qt.IsNil)
	defer func() { _ = resp.Body.Close() }()
	respBody, err := io.ReadAll(resp.Body)
	qt.Assert(t, err, qt.IsNil)
	return bytes.TrimSpace(respBody), resp.StatusCode
}

func TestTeamHandlers(t *testing.T) {
	c := qt.New(t)
	defer func() {
		if err := testDB.Reset(); err != nil {
			c.Logf("error resetting test database: %v", err)
		}
	}()

	// create a member with an image file
	resp, code := testMultipartRequest(t, http.MethodPost, teamEndpoint, map[string]string{
		"name":     "Member One",
		"position": "Developer",
		"github":   "https://github.com/member",
		"email":    "member@email.test",
	}, "avatar.png", testPNG)
	c.Assert(code, qt.Equals, http.StatusOK)
	var inserted InsertResult
	c.Assert(json.Unmarshal(resp, &inserted), qt.IsNil)
	c.Assert(inserted.Acknowledged, qt.IsTrue)
	c.Assert(inserted.InsertedID, qt.IsNotNil)

	// the listing carries the generated public image path
	resp, code = testRequest(t, http.MethodGet, teamEndpoint, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var members []db.TeamMember
	c.Assert(json.Unmarshal(resp, &members), qt.IsNil)
	c.Assert(members, qt.HasLen, 1)
	c.Assert(members[0].Name, qt.Equals, "Member One")
	c.Assert(publicImagePathRgx.MatchString(members[0].Image), qt.IsTrue,
		qt.Commentf("unexpected image path %q", members[0].Image))
	imagePath := members[0].Image

	// the image bytes must be retrievable through that exact path
	imgResp, err := http.Get(testURL(imagePath))
	c.Assert(err, qt.IsNil)
	defer func() { _ = imgResp.Body.Close() }()
	c.Assert(imgResp.StatusCode, qt.Equals, http.StatusOK)
	imgBody, err := io.ReadAll(imgResp.Body)
	c.Assert(err, qt.IsNil)
	c.Assert(bytes.Equal(imgBody, testPNG), qt.IsTrue)
	c.Assert(imgResp.Header.Get("Content-Type"), qt.Equals, "image/png")

	// update without a new file, the image form field is stored verbatim
	memberPath := fmt.Sprintf("/team/%s", inserted.InsertedID.Hex())
	resp, code = testMultipartRequest(t, http.MethodPut, memberPath, map[string]string{
		"name":     "Member One",
		"position": "Lead",
		"image":    imagePath,
	}, "", nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var updated UpdateResult
	c.Assert(json.Unmarshal(resp, &updated), qt.IsNil)
	c.Assert(updated.ModifiedCount, qt.Equals, int64(1))

	resp, code = testRequest(t, http.MethodGet, teamEndpoint, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(resp, &members), qt.IsNil)
	c.Assert(members, qt.HasLen, 1)
	c.Assert(members[0].Position, qt.Equals, "Lead")
	c.Assert(members[0].Image, qt.Equals, imagePath)

	// update with a new file generates a distinct path, the old file stays
	resp, code = testMultipartRequest(t, http.MethodPut, memberPath, map[string]string{
		"name": "Member One",
	}, "new-avatar.png", testPNG)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(resp, &updated), qt.IsNil)
	c.Assert(updated.ModifiedCount, qt.Equals, int64(1))

	resp, code = testRequest(t, http.MethodGet, teamEndpoint, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(resp, &members), qt.IsNil)
	c.Assert(members, qt.HasLen, 1)
	c.Assert(publicImagePathRgx.MatchString(members[0].Image), qt.IsTrue)
	c.Assert(members[0].Image, qt.Not(qt.Equals), imagePath)
	oldImage, err := http.Get(testURL(imagePath))
	c.Assert(err, qt.IsNil)
	_ = oldImage.Body.Close()
	c.Assert(oldImage.StatusCode, qt.Equals, http.StatusOK)

	// delete the member, twice for idempotency
	resp, code = testRequest(t, http.MethodDelete, memberPath, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var deleted DeleteResult
	c.Assert(json.Unmarshal(resp, &deleted), qt.IsNil)
	c.Assert(deleted.DeletedCount, qt.Equals, int64(1))
	resp, code = testRequest(t, http.MethodDelete, memberPath, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(resp, &deleted), qt.IsNil)
	c.Assert(deleted.DeletedCount, qt.Equals, int64(0))
}

func TestAddTeamMemberWithoutImage(t *testing.T) {
	c := qt.New(t)
	defer func() {
		if err := testDB.Reset(); err != nil {
			c.Logf("error resetting test database: %v", err)
		}
	}()

	// without a file the image form field is used verbatim, empty included
	resp, code := testMultipartRequest(t, http.MethodPost, teamEndpoint, map[string]string{
		"name":     "Member Two",
		"position": "Designer",
	}, "", nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var inserted InsertResult
	c.Assert(json.Unmarshal(resp, &inserted), qt.IsNil)
	c.Assert(inserted.InsertedID, qt.IsNotNil)

	resp, code = testRequest(t, http.MethodGet, teamEndpoint, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var members []db.TeamMember
	c.Assert(json.Unmarshal(resp, &members), qt.IsNil)
	c.Assert(members, qt.HasLen, 1)
	c.Assert(members[0].Image, qt.Equals, "")
}

func TestServeTeamImage(t *testing.T) {
	c := qt.New(t)

	// an unknown but well formed name is a 404
	resp, err := http.Get(testURL(uploads.PublicPrefix + "/1234-abcd.png"))
	c.Assert(err, qt.IsNil)
	_ = resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusNotFound)

	// a name outside the generated format is a 400
	resp, err = http.Get(testURL(uploads.PublicPrefix + "/not-a-generated-name"))
	c.Assert(err, qt.IsNil)
	_ = resp.Body.Close()
	c.Assert(resp.StatusCode, qt.Equals, http.StatusBadRequest)
}
