// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	// nilai tidak masuk akal dinormalkan
	p = BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x?page=3&per_page=10", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 10, got.PerPage)
	assert.Equal(t, 20, got.Offset)

	// alias ?limit= dan clamp ke max
	_, err = app.Test(httptest.NewRequest("GET", "/x?limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, 100, got.PerPage)

	// default
	_, err = app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PerPage)
	assert.Equal(t, 0, got.Offset)
}

func TestJsonError_Envelope(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "Kode ruangan sudah dipakai")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "CONFLICT", out.ErrorCode)
	assert.Equal(t, "Kode ruangan sudah dipakai", out.Message)
}

func TestJsonList_PaginationCount(t *testing.T) {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		p := BuildPaginationFromPage(2, 1, 20)
		return JsonList(c, "", []string{"a", "b"}, &p)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/list", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Success    bool `json:"success"`
		Pagination struct {
			Count int   `json:"count"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Success)
	assert.Equal(t, 2, out.Pagination.Count)
	assert.Equal(t, int64(2), out.Pagination.Total)
}
